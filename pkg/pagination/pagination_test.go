package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(8, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(21, 0))
}

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	first := Paginate(items, 1, DefaultPageSize)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, first.Items)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 23, first.TotalItems)

	last := Paginate(items, 3, DefaultPageSize)
	assert.Equal(t, []int{20, 21, 22}, last.Items)

	clamped := Paginate(items, 99, DefaultPageSize)
	assert.Equal(t, 3, clamped.Page)
	assert.Equal(t, last.Items, clamped.Items)

	low := Paginate(items, 0, DefaultPageSize)
	assert.Equal(t, 1, low.Page)
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate([]string{}, 2, 10)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 0, page.TotalPages)
}
