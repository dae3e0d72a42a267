// ABOUTME: Search domain models for fetch modes, page state and the rendered search state
// ABOUTME: SearchState is the complete output handed to the rendering layer

package domain

// SearchMode is the fetch strategy selected for a (query, filters) pair
type SearchMode string

const (
	// ModeSearch runs a free-text query against the catalog
	ModeSearch SearchMode = "search"

	// ModeLatestFiltered shows the newest courses matching active filters
	ModeLatestFiltered SearchMode = "latest-filtered"

	// ModeIdle skips the main fetch; curated sections are the only content
	ModeIdle SearchMode = "idle"
)

// PageState is recomputed from each successful response, never merged
type PageState struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalResults int `json:"totalResults"`
}

// SearchState is what the engine produces for the rendering layer
type SearchState struct {
	Query         string             `json:"query"`
	Filters       FilterSet          `json:"filters"`
	Mode          SearchMode         `json:"mode"`
	Results       []NormalizedCourse `json:"results"`
	TotalResults  int                `json:"totalResults"`
	TotalPages    int                `json:"totalPages"`
	CurrentPage   int                `json:"currentPage"`
	PageWindow    []int              `json:"pageWindow"`
	Loading       bool               `json:"loading"`
	Error         *string            `json:"error"`
	ActiveFilters []ActiveFilterChip `json:"activeFilters"`
	Facets        FilterOptions      `json:"facets"`
}

// FilterOptions lists the values the filter UI can offer.
// Categories is a fixed list; the others come from backend facets.
type FilterOptions struct {
	Categories  []string `json:"categories"`
	SkillLevels []string `json:"skillLevels"`
	Languages   []string `json:"languages"`
	Features    []string `json:"features"`
}
