// Package listing derives the visible page of an admin table from a raw
// collection: search → category filter → stable sort → pagination.
//
// The pipeline is pure — it owns no state and every call derives the page
// from its inputs alone. Define a Table once per row type, then:
//
//	page := listing.Derive(products, productTable, listing.Query{
//	    Search:  "apple watch",
//	    Category: listing.AllCategories,
//	    SortBy:  "price",
//	    Dir:     listing.Desc,
//	    Page:    1,
//	    PerPage: 7,
//	})
package listing

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/danghq/shopdesk/pkg/collection"
)

// AllCategories passes every row through the category filter.
const AllCategories = "all"

// categoryPrefix is the encoding the UI uses for a concrete category
// filter, e.g. "category-3".
const categoryPrefix = "category-"

// DefaultPerPage matches the admin tables' fixed page size.
const DefaultPerPage = 7

// Direction is the sort direction. It inverts the comparison sign only;
// null placement is unaffected.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Query carries the UI-supplied listing state.
type Query struct {
	Search   string
	Category string // AllCategories or "category-<id>"
	SortBy   string // column key; unknown keys leave input order untouched
	Dir      Direction
	Page     int // 1-based; pages past the end are the caller's to clamp
	PerPage  int
}

// Page is one derived page of rows.
type Page[T any] struct {
	Items      []T
	Total      int // rows surviving search + category filter
	TotalPages int // ceil(Total/PerPage), at least 1
}

// Comparator orders two rows for one column. desc inverts the sign of the
// value comparison but never the null placement.
type Comparator[T any] func(a, b T, desc bool) int

// Table describes how to search, filter and sort one row type.
type Table[T any] struct {
	// SearchText yields the field the search box matches against.
	SearchText func(T) string
	// CategoryID yields the row's category reference; nil disables the
	// category filter for this table.
	CategoryID func(T) int
	// Columns maps sort keys to comparators.
	Columns map[string]Comparator[T]
}

// collator provides locale-aware string ordering. It is not safe for
// concurrent use; the pipeline runs on the single UI goroutine.
var collator = collate.New(language.Und)

// ── Comparators ──────────────────────────────────────────────────────────────

// Number compares numeric columns by subtraction.
func Number[T any, N int | int64 | float64](key func(T) N) Comparator[T] {
	return func(a, b T, desc bool) int {
		cmp := 0
		switch {
		case key(a) < key(b):
			cmp = -1
		case key(a) > key(b):
			cmp = 1
		}
		return invert(cmp, desc)
	}
}

// String compares string columns with locale-aware ordering.
func String[T any](key func(T) string) Comparator[T] {
	return func(a, b T, desc bool) int {
		return invert(collator.CompareString(key(a), key(b)), desc)
	}
}

// NullableString compares optional string columns. Nils sort after every
// non-nil value regardless of direction.
func NullableString[T any](key func(T) *string) Comparator[T] {
	return func(a, b T, desc bool) int {
		av, bv := key(a), key(b)
		switch {
		case av == nil && bv == nil:
			return 0
		case av == nil:
			return 1
		case bv == nil:
			return -1
		}
		return invert(collator.CompareString(*av, *bv), desc)
	}
}

// Bool compares boolean columns, true before false ascending.
func Bool[T any](key func(T) bool) Comparator[T] {
	return func(a, b T, desc bool) int {
		av, bv := key(a), key(b)
		cmp := 0
		switch {
		case av == bv:
			cmp = 0
		case av:
			cmp = -1
		default:
			cmp = 1
		}
		return invert(cmp, desc)
	}
}

func invert(cmp int, desc bool) int {
	if desc {
		return -cmp
	}
	return cmp
}

// ── Search normalisation ─────────────────────────────────────────────────────

var searchStripRE = regexp.MustCompile(`[^\w\s]`)

// Normalize lowercases s and strips every character that is neither
// alphanumeric nor whitespace.
func Normalize(s string) string {
	return strings.TrimSpace(searchStripRE.ReplaceAllString(strings.ToLower(s), ""))
}

var spaceRE = regexp.MustCompile(`\s+`)

// collapse additionally drops whitespace so punctuation and spacing never
// prevent a match: "apple-watch" finds "Apple Watch" and vice versa.
func collapse(s string) string {
	return spaceRE.ReplaceAllString(Normalize(s), "")
}

// ── Derivation ───────────────────────────────────────────────────────────────

// Derive produces the visible page for q. Rows must satisfy both the search
// predicate and the category predicate; sorting is stable; pagination is
// 1-based with TotalPages never below 1. Derive does not clamp Page — a page
// past the end yields an empty Items slice.
func Derive[T any](items []T, t Table[T], q Query) Page[T] {
	perPage := q.PerPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	search := collapse(q.Search)
	catID, catAll := parseCategory(q.Category)

	filtered := collection.Filter(items, func(v T) bool {
		if search != "" && t.SearchText != nil {
			if !strings.Contains(collapse(t.SearchText(v)), search) {
				return false
			}
		}
		if !catAll {
			if t.CategoryID == nil || t.CategoryID(v) != catID {
				return false
			}
		}
		return true
	})

	if cmp, ok := t.Columns[q.SortBy]; ok {
		desc := q.Dir == Desc
		collection.SortStable(filtered, func(a, b T) bool { return cmp(a, b, desc) < 0 })
	}

	total := len(filtered)
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}

	return Page[T]{
		Items:      collection.Paginate(filtered, q.Page, perPage),
		Total:      total,
		TotalPages: pages,
	}
}

// parseCategory decodes a category filter value. Anything other than
// AllCategories or a well-formed "category-<id>" matches no rows, which
// mirrors how the filter buttons behave.
func parseCategory(filter string) (id int, all bool) {
	if filter == "" || filter == AllCategories {
		return 0, true
	}
	raw, ok := strings.CutPrefix(filter, categoryPrefix)
	if !ok {
		return -1, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return -1, false
	}
	return id, false
}

// CategoryFilter encodes a category id in the filter format Derive expects.
func CategoryFilter(id int) string {
	return categoryPrefix + strconv.Itoa(id)
}
