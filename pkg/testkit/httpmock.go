// Package testkit provides the HTTP mocking used by service tests: a
// RoundTripper that answers outgoing requests from canned stubs so no test
// ever touches the real storefront API.
//
//	mt := testkit.Install(t,
//	    testkit.Stub{Method: "GET", URL: base + "/products", JSON: records},
//	)
//	// ... exercise the service ...
//	mt.AssertAllCalled(t)
package testkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danghq/shopdesk/pkg/fetch"
)

// Stub describes one canned response. Method matches exactly ("" matches
// any); URL is a prefix match. Status defaults to 200. JSON, when set, is
// marshalled as the body; otherwise Body is sent verbatim.
type Stub struct {
	Method string
	URL    string
	Status int
	Body   string
	JSON   interface{}
}

type stubEntry struct {
	stub   Stub
	calls  int
	bodies [][]byte
}

// Transport implements http.RoundTripper over a list of stubs.
// Unmatched requests get a plain 404 so clients exercise their
// failure-collapsing path rather than erroring out.
type Transport struct {
	mu       sync.Mutex
	entries  []stubEntry
	requests int
}

// NewTransport builds a Transport from stubs. First match wins.
func NewTransport(stubs ...Stub) *Transport {
	t := &Transport{}
	for _, s := range stubs {
		t.entries = append(t.entries, stubEntry{stub: s})
	}
	return t
}

// Install sets a stubbed transport on the shared fetch client and restores
// the real one when the test finishes.
func Install(t *testing.T, stubs ...Stub) *Transport {
	t.Helper()
	mt := NewTransport(stubs...)
	fetch.DefaultClient.Transport = mt
	t.Cleanup(fetch.ResetTransport)
	return mt
}

// RoundTrip answers the request from the first matching stub.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.requests++

	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}

	for i := range t.entries {
		e := &t.entries[i]
		if e.stub.Method != "" && e.stub.Method != req.Method {
			continue
		}
		if !strings.HasPrefix(req.URL.String(), e.stub.URL) {
			continue
		}
		e.calls++
		e.bodies = append(e.bodies, body)
		return buildResponse(req, e.stub)
	}

	return &http.Response{
		StatusCode: http.StatusNotFound,
		Status:     "404 Not Found",
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(`{"error":"no stub configured"}`)),
		Request:    req,
	}, nil
}

// Requests reports the total number of round trips seen, matched or not.
func (t *Transport) Requests() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.requests
}

// Calls reports how many requests matched the i-th stub.
func (t *Transport) Calls(i int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entries[i].calls
}

// RequestBody returns the body of the most recent request that matched the
// i-th stub, or nil if it was never called. Lets tests decode the payload a
// client actually sent.
func (t *Transport) RequestBody(i int) []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	bodies := t.entries[i].bodies
	if len(bodies) == 0 {
		return nil
	}
	return bodies[len(bodies)-1]
}

// AssertAllCalled fails the test if any stub was never matched.
func (t *Transport) AssertAllCalled(tt *testing.T) {
	tt.Helper()
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, e := range t.entries {
		require.NotZero(tt, e.calls,
			"stub %s %s was never called", e.stub.Method, e.stub.URL)
	}
}

func buildResponse(req *http.Request, s Stub) (*http.Response, error) {
	code := s.Status
	if code == 0 {
		code = http.StatusOK
	}

	body := []byte(s.Body)
	if s.JSON != nil {
		raw, err := json.Marshal(s.JSON)
		if err != nil {
			return nil, fmt.Errorf("testkit: marshal stub body: %w", err)
		}
		body = raw
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &http.Response{
		StatusCode: code,
		Status:     fmt.Sprintf("%d %s", code, http.StatusText(code)),
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(body)),
		Request:    req,
	}, nil
}
