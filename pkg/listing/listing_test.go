package listing_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghq/shopdesk/pkg/collection"
	"github.com/danghq/shopdesk/pkg/listing"
)

type row struct {
	Name       string
	Slug       *string
	Price      float64
	CategoryID int
	Hot        bool
}

func strPtr(s string) *string { return &s }

func table() listing.Table[row] {
	return listing.Table[row]{
		SearchText: func(r row) string { return r.Name },
		CategoryID: func(r row) int { return r.CategoryID },
		Columns: map[string]listing.Comparator[row]{
			"name":  listing.String(func(r row) string { return r.Name }),
			"slug":  listing.NullableString(func(r row) *string { return r.Slug }),
			"price": listing.Number(func(r row) float64 { return r.Price }),
			"hot":   listing.Bool(func(r row) bool { return r.Hot }),
		},
	}
}

func TestSearchIgnoresPunctuation(t *testing.T) {
	items := []row{{Name: "Apple Watch"}, {Name: "iPhone"}}

	page := listing.Derive(items, table(), listing.Query{Search: "apple-watch"})

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Apple Watch", page.Items[0].Name)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	items := []row{{Name: "Nokia 3310"}, {Name: "Galaxy S9"}}

	page := listing.Derive(items, table(), listing.Query{Search: "NOKIA"})

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Nokia 3310", page.Items[0].Name)
}

func TestCategoryFilter(t *testing.T) {
	items := []row{
		{Name: "a", CategoryID: 1},
		{Name: "b", CategoryID: 2},
		{Name: "c", CategoryID: 1},
	}

	page := listing.Derive(items, table(), listing.Query{Category: listing.CategoryFilter(1)})
	assert.Equal(t, 2, page.Total)

	page = listing.Derive(items, table(), listing.Query{Category: listing.AllCategories})
	assert.Equal(t, 3, page.Total)

	// Malformed filter values match nothing.
	page = listing.Derive(items, table(), listing.Query{Category: "category-x"})
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestPagination(t *testing.T) {
	var items []row
	for i := 0; i < 10; i++ {
		items = append(items, row{Name: fmt.Sprintf("item %d", i)})
	}

	page := listing.Derive(items, table(), listing.Query{Page: 2, PerPage: 7})

	assert.Len(t, page.Items, 3)
	assert.Equal(t, 10, page.Total)
	assert.Equal(t, 2, page.TotalPages)
}

func TestPaginationPastEndIsEmptyNotClamped(t *testing.T) {
	items := []row{{Name: "only"}}

	page := listing.Derive(items, table(), listing.Query{Page: 5, PerPage: 7})

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}

func TestEmptyInputStillHasOnePage(t *testing.T) {
	page := listing.Derive(nil, table(), listing.Query{})

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestSortReverseSymmetry(t *testing.T) {
	items := []row{
		{Name: "b", Price: 20},
		{Name: "a", Price: 10},
		{Name: "c", Price: 30},
	}

	asc := listing.Derive(items, table(), listing.Query{SortBy: "price"})
	desc := listing.Derive(items, table(), listing.Query{SortBy: "price", Dir: listing.Desc})

	require.Len(t, asc.Items, 3)
	assert.Equal(t, collection.Reverse(asc.Items), desc.Items)
}

func TestSortIsStable(t *testing.T) {
	items := []row{
		{Name: "first", Price: 10},
		{Name: "second", Price: 10},
		{Name: "third", Price: 10},
	}

	page := listing.Derive(items, table(), listing.Query{SortBy: "price"})

	require.Len(t, page.Items, 3)
	assert.Equal(t, "first", page.Items[0].Name)
	assert.Equal(t, "second", page.Items[1].Name)
	assert.Equal(t, "third", page.Items[2].Name)
}

func TestNullableSortsNullsLastBothDirections(t *testing.T) {
	items := []row{
		{Name: "no slug"},
		{Name: "beta", Slug: strPtr("beta")},
		{Name: "alpha", Slug: strPtr("alpha")},
	}

	asc := listing.Derive(items, table(), listing.Query{SortBy: "slug"})
	require.Len(t, asc.Items, 3)
	assert.Equal(t, "alpha", asc.Items[0].Name)
	assert.Equal(t, "beta", asc.Items[1].Name)
	assert.Equal(t, "no slug", asc.Items[2].Name)

	desc := listing.Derive(items, table(), listing.Query{SortBy: "slug", Dir: listing.Desc})
	require.Len(t, desc.Items, 3)
	assert.Equal(t, "beta", desc.Items[0].Name)
	assert.Equal(t, "alpha", desc.Items[1].Name)
	assert.Equal(t, "no slug", desc.Items[2].Name)
}

func TestBoolSortsTrueFirstAscending(t *testing.T) {
	items := []row{
		{Name: "cold"},
		{Name: "hot", Hot: true},
	}

	page := listing.Derive(items, table(), listing.Query{SortBy: "hot"})

	require.Len(t, page.Items, 2)
	assert.Equal(t, "hot", page.Items[0].Name)
}

func TestUnknownSortKeyKeepsInputOrder(t *testing.T) {
	items := []row{{Name: "z"}, {Name: "a"}}

	page := listing.Derive(items, table(), listing.Query{SortBy: "nope"})

	require.Len(t, page.Items, 2)
	assert.Equal(t, "z", page.Items[0].Name)
}

func TestDeriveInvariants(t *testing.T) {
	items := []row{
		{Name: "Apple Watch", CategoryID: 1},
		{Name: "apple tv", CategoryID: 2},
		{Name: "iPhone", CategoryID: 1},
		{Name: "Pixel", CategoryID: 2},
	}

	for _, q := range []listing.Query{
		{},
		{Search: "apple"},
		{Category: listing.CategoryFilter(2)},
		{Search: "apple", Category: listing.CategoryFilter(1), SortBy: "name", Page: 1, PerPage: 2},
		{Page: 99, PerPage: 1},
	} {
		page := listing.Derive(items, table(), q)

		assert.GreaterOrEqual(t, page.TotalPages, 1)
		perPage := q.PerPage
		if perPage < 1 {
			perPage = listing.DefaultPerPage
		}
		assert.LessOrEqual(t, len(page.Items), perPage)
	}
}
