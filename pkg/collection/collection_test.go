package collection_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danghq/shopdesk/pkg/collection"
)

func TestMap(t *testing.T) {
	got := collection.Map([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestFilter(t *testing.T) {
	got := collection.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, got)
}

func TestFirst(t *testing.T) {
	v, ok := collection.First([]int{1, 2, 3}, func(n int) bool { return n > 1 })
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = collection.First([]int{1}, func(n int) bool { return n > 5 })
	assert.False(t, ok)
}

func TestKeyBy(t *testing.T) {
	type item struct{ ID int }
	got := collection.KeyBy([]item{{1}, {2}}, func(i item) int { return i.ID })
	assert.Equal(t, item{2}, got[2])
}

func TestCountBy(t *testing.T) {
	got := collection.CountBy([]string{"a", "b", "a", "a"}, func(s string) string { return s })
	assert.Equal(t, 3, got["a"])
	assert.Equal(t, 1, got["b"])
	assert.Equal(t, 0, got["c"])
}

func TestPaginate(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, collection.Paginate(s, 1, 2))
	assert.Equal(t, []int{5}, collection.Paginate(s, 3, 2))
	assert.Empty(t, collection.Paginate(s, 4, 2))
}

func TestReverseLeavesInputUntouched(t *testing.T) {
	s := []int{1, 2, 3}
	got := collection.Reverse(s)

	assert.Equal(t, []int{3, 2, 1}, got)
	assert.Equal(t, []int{1, 2, 3}, s)
}
