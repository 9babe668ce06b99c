package logger

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMongoHandler(sink *[][]interface{}) *MongoHandler {
	h := &MongoHandler{
		queue:   make(chan logDocument, mongoQueueSize),
		done:    make(chan struct{}),
		flushed: make(chan struct{}),
	}
	h.insert = func(_ context.Context, batch []interface{}) {
		copied := make([]interface{}, len(batch))
		copy(copied, batch)
		*sink = append(*sink, copied)
	}
	go h.drainLoop()
	return h
}

func record(msg string) slog.Record {
	return slog.NewRecord(time.Now(), slog.LevelInfo, msg, 0)
}

// Close must not return before the drain goroutine has flushed everything
// still sitting in the queue.
func TestMongoHandlerCloseFlushesPending(t *testing.T) {
	var batches [][]interface{}
	h := newTestMongoHandler(&batches)

	for i := 0; i < 5; i++ {
		require.NoError(t, h.Handle(context.Background(), record("msg")))
	}
	h.Close()

	total := 0
	for _, b := range batches {
		total += len(b)
	}
	assert.Equal(t, 5, total)
}

func TestMongoHandlerCloseIsIdempotent(t *testing.T) {
	var batches [][]interface{}
	h := newTestMongoHandler(&batches)

	h.Close()
	h.Close()
}

func TestMongoHandlerWithAttrsSharesQueue(t *testing.T) {
	var batches [][]interface{}
	h := newTestMongoHandler(&batches)

	child := h.WithAttrs([]slog.Attr{slog.String("svc", "shopdesk")})
	require.NoError(t, child.Handle(context.Background(), record("from child")))
	h.Close()

	require.Len(t, batches, 1)
	require.Len(t, batches[0], 1)
	doc := batches[0][0].(logDocument)
	assert.Equal(t, "from child", doc.Msg)
	assert.Equal(t, "shopdesk", doc.Attrs["svc"])
}

func TestMongoHandlerDropsWhenQueueFull(t *testing.T) {
	h := &MongoHandler{
		queue:   make(chan logDocument, 1),
		done:    make(chan struct{}),
		flushed: make(chan struct{}),
	}
	// No drain goroutine: the second Handle finds the queue full and must
	// drop instead of blocking.
	require.NoError(t, h.Handle(context.Background(), record("kept")))
	require.NoError(t, h.Handle(context.Background(), record("dropped")))
	assert.Len(t, h.queue, 1)
}
