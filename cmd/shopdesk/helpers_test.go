package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghq/shopdesk/pkg/listing"
)

func numbersTable() ([]int, listing.Table[int]) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	return items, listing.Table[int]{}
}

func TestDerivePageClampsBelowOne(t *testing.T) {
	items, table := numbersTable()

	for _, raw := range []int{0, -3} {
		page, q := derivePage(items, table, listing.Query{Page: raw, PerPage: 3})
		assert.Equal(t, 1, q.Page, "page %d should clamp to the first", raw)
		require.NotEmpty(t, page.Items)
		assert.Equal(t, 1, page.Items[0])
	}
}

func TestDerivePageClampsPastTheEnd(t *testing.T) {
	items, table := numbersTable()

	page, q := derivePage(items, table, listing.Query{Page: 99, PerPage: 3})
	assert.Equal(t, 4, q.Page)
	assert.Equal(t, []int{10}, page.Items)
}

func TestDerivePageInRangeUntouched(t *testing.T) {
	items, table := numbersTable()

	page, q := derivePage(items, table, listing.Query{Page: 2, PerPage: 3})
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, []int{4, 5, 6}, page.Items)
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, bad := range []string{"", "abc", "0", "-1"} {
		_, err := parseID(bad)
		assert.Error(t, err, "arg %q", bad)
	}
}
