// ABOUTME: Request DTOs for search session endpoints
// ABOUTME: Huma validates shape from struct tags; filter values are validated by the engine

package requests

import "strings"

// QueryRequest carries the raw search box text
type QueryRequest struct {
	// Query is the free-text query; surrounding whitespace is ignored for mode selection
	Query string `json:"query" maxLength:"200" doc:"Free-text search query"`

	// Immediate skips the debounce, as pressing enter in the search box does
	Immediate bool `json:"immediate,omitempty" doc:"Fetch immediately instead of after the debounce period"`
}

// FilterRequest selects or clears one filter value
type FilterRequest struct {
	Dimension string `json:"dimension" enum:"contentType,duration,date,category,sort,skillLevel,language,feature" doc:"Filter dimension"`
	Value     string `json:"value" maxLength:"100" doc:"Filter value; selecting the active single-select value clears it"`
}

// ApplyDefaults trims the value
func (r *FilterRequest) ApplyDefaults() {
	r.Value = strings.TrimSpace(r.Value)
}

// PageRequest navigates to a results page
type PageRequest struct {
	// Page is clamped to the known page range
	Page int `json:"page" minimum:"1" doc:"Page number (1-based)"`
}
