package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/danghq/shopdesk/pkg/listing"
)

// derivePage runs the listing pipeline and clamps the page into range:
// below one up to the first, past the end down to the last. The pipeline
// itself never clamps; that is this caller's job. Returns the page and
// the query actually used.
func derivePage[T any](items []T, t listing.Table[T], q listing.Query) (listing.Page[T], listing.Query) {
	if q.Page < 1 {
		q.Page = 1
	}
	page := listing.Derive(items, t, q)
	if q.Page > page.TotalPages {
		q.Page = page.TotalPages
		page = listing.Derive(items, t, q)
	}
	return page, q
}

// parseID parses a positional numeric id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// reportSubmit prints field errors or a success line for a submit action.
// result is the created/updated record, nil when the API rejected it.
func reportSubmit[T any](action string, result *T, errs map[string]string) error {
	if len(errs) > 0 {
		for field, msg := range errs {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
		return fmt.Errorf("%s: invalid input", action)
	}
	if result == nil {
		return fmt.Errorf("%s failed", action)
	}
	fmt.Printf("OK: %s.\n", action)
	return nil
}
