package services

// DiscoveryPageSize is the fixed number of events per discovery page
const DiscoveryPageSize = 10

// PageInfo describes the slice returned by Paginate
type PageInfo struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// Paginate slices items into the requested fixed-size page. There is always at
// least one page, and an out-of-range request is clamped rather than rejected,
// so a page that became invalid after a filter change degrades silently.
func Paginate[T any](items []T, page, pageSize int) ([]T, PageInfo) {
	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], PageInfo{
		Page:       page,
		TotalPages: totalPages,
		TotalItems: len(items),
	}
}
