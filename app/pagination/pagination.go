package pagination

import "inkwell/app/models"

// PerPage is the fixed page size for listing and search results.
const PerPage = 6

// Page is one slice of an ordered result set plus navigation metadata.
type Page struct {
	Items       []*models.Post
	CurrentPage int
	TotalPages  int
	TotalCount  int
	HasNext     bool
	HasPrevious bool
}

// Paginate slices items into pages of perPage and returns the requested
// 1-based page. Out-of-range page numbers are clamped to the nearest
// valid page, never rejected. An empty input still counts as one page.
//
// Pure function: same input, same output, no side effects.
func Paginate(items []*models.Post, page, perPage int) Page {
	if perPage < 1 {
		perPage = PerPage
	}

	total := len(items)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:       items[start:end],
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
