package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intRange(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate_EmptyListStillHasOnePage(t *testing.T) {
	items, info := Paginate([]int{}, 1, DiscoveryPageSize)

	assert.Empty(t, items)
	assert.Equal(t, 1, info.Page)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, 0, info.TotalItems)
}

func TestPaginate_FullAndPartialPages(t *testing.T) {
	all := intRange(25)

	page1, info := Paginate(all, 1, 10)
	require.Equal(t, 3, info.TotalPages)
	assert.Equal(t, intRange(10), page1)

	page3, _ := Paginate(all, 3, 10)
	assert.Equal(t, []int{20, 21, 22, 23, 24}, page3)
}

func TestPaginate_PagesCoverEveryItemExactlyOnce(t *testing.T) {
	all := intRange(37)

	_, info := Paginate(all, 1, 10)
	var seen []int
	for page := 1; page <= info.TotalPages; page++ {
		items, pageInfo := Paginate(all, page, 10)
		if page < info.TotalPages {
			assert.Len(t, items, 10)
		}
		assert.Equal(t, page, pageInfo.Page)
		seen = append(seen, items...)
	}

	assert.Equal(t, all, seen)
}

func TestPaginate_ClampsOutOfRangePages(t *testing.T) {
	all := intRange(15)

	// beyond the last page clamps down
	items, info := Paginate(all, 99, 10)
	assert.Equal(t, 2, info.Page)
	assert.Len(t, items, 5)

	// below the first page clamps up
	items, info = Paginate(all, 0, 10)
	assert.Equal(t, 1, info.Page)
	assert.Len(t, items, 10)

	items, info = Paginate(all, -3, 10)
	assert.Equal(t, 1, info.Page)
	assert.Len(t, items, 10)
}

func TestPaginate_ExactMultipleOfPageSize(t *testing.T) {
	all := intRange(20)

	_, info := Paginate(all, 1, 10)
	assert.Equal(t, 2, info.TotalPages)

	last, _ := Paginate(all, 2, 10)
	assert.Len(t, last, 10)
}
