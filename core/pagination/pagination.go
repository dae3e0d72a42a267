// ABOUTME: Pagination utilities for course search results
// ABOUTME: Computes the bounded page-button window and clamps page navigation

package pagination

// MaxButtons is the largest number of page buttons shown at once
const MaxButtons = 5

// Window returns at most MaxButtons page numbers centred on currentPage
// where possible, pinned to the first or last pages near the edges.
func Window(currentPage, totalPages int) []int {
	if totalPages < 1 {
		return []int{}
	}

	// Handle invalid page
	currentPage = Clamp(currentPage, totalPages)

	var start, end int
	switch {
	case totalPages <= MaxButtons:
		start, end = 1, totalPages
	case currentPage <= 3:
		start, end = 1, MaxButtons
	case currentPage >= totalPages-2:
		start, end = totalPages-MaxButtons+1, totalPages
	default:
		start, end = currentPage-2, currentPage+2
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// Clamp bounds a navigation target to [1, totalPages]
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// TotalPages derives the page count from a result total. When the backend
// reports no total, the count falls back to what the current page proves
// exists: the current page, plus one more if this page came back full.
func TotalPages(totalResults, perPage, currentPage, returned int) int {
	// Handle invalid perPage
	if perPage < 1 {
		perPage = 10
	}

	if totalResults > 0 {
		pages := (totalResults + perPage - 1) / perPage
		if pages < 1 {
			return 1
		}
		return pages
	}

	if currentPage < 1 {
		currentPage = 1
	}
	if returned >= perPage {
		return currentPage + 1
	}
	if returned == 0 && currentPage == 1 {
		return 0
	}
	return currentPage
}
