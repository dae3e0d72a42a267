// ABOUTME: Catalog request and response models for the paginated course-listing endpoint
// ABOUTME: Describes the wire contract independent of the HTTP client that speaks it

package domain

// ListRequest is one call to the course-listing endpoint
type ListRequest struct {
	Page       int
	Limit      int
	Search     string
	Categories []string
	Status     string
	Filters    RequestFilters
}

// RequestFilters is the nested filters object of a listing request
type RequestFilters struct {
	SkillLevel    []string   `json:"skillLevel,omitempty"`
	CourseType    string     `json:"courseType,omitempty"`
	Language      string     `json:"language,omitempty"`
	Features      []string   `json:"features,omitempty"`
	SortBy        string     `json:"sortBy,omitempty"`
	DurationRange *NumRange  `json:"durationRange,omitempty"`
	DateRange     *DateRange `json:"dateRange,omitempty"`
}

// NumRange is an inclusive numeric range; a nil bound is open
type NumRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// DateRange bounds course dates with RFC3339 timestamps
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// ListResponse is a decoded listing response, unwrapped from any "data" envelope
type ListResponse struct {
	Courses []RawCourse
	Total   int
	Facets  Facets
}

// Facets are backend-reported distinct filter values
type Facets struct {
	Categories  []string
	SkillLevels []string
	Languages   []string
	Features    []string
}
