// ABOUTME: Response DTOs for search session endpoints
// ABOUTME: Filter sets are rendered as sorted lists so responses are stable

package responses

// CourseResponse is one normalized course card
type CourseResponse struct {
	ID               string   `json:"id" doc:"Course identifier"`
	Title            string   `json:"title" doc:"Course title"`
	ThumbnailURL     string   `json:"thumbnailUrl" doc:"Thumbnail image URL or placeholder"`
	DurationLabel    string   `json:"durationLabel" doc:"Human-readable duration"`
	Rating           float64  `json:"rating" doc:"Average rating"`
	EnrolledCount    int      `json:"enrolledCount" doc:"Number of enrolled students"`
	Category         string   `json:"category" doc:"Primary category"`
	CompletionRate   int      `json:"completionRate" minimum:"0" maximum:"100" doc:"Completion percentage"`
	SkillLevel       string   `json:"skillLevel" doc:"Skill level"`
	LastUpdatedLabel string   `json:"lastUpdatedLabel" doc:"Relative last-updated text"`
	Instructor       string   `json:"instructor,omitempty" doc:"Instructor name"`
	PreviewAvailable bool     `json:"previewAvailable" doc:"Whether a preview is available"`
	Certification    bool     `json:"certification" doc:"Whether the course awards a certificate"`
	Language         string   `json:"language" doc:"Course language"`
	Description      string   `json:"description,omitempty" doc:"Course overview"`
	Price            float64  `json:"price" doc:"Individual price"`
	ReviewsCount     int      `json:"reviewsCount" doc:"Number of reviews"`
	Tags             []string `json:"tags" doc:"Course tags"`
	Status           string   `json:"status,omitempty" doc:"Publication status"`
}

// FiltersResponse is the selected value of every filter dimension
type FiltersResponse struct {
	ContentType    string   `json:"contentType"`
	DurationBucket string   `json:"durationBucket,omitempty"`
	DateBucket     string   `json:"dateBucket,omitempty"`
	Categories     []string `json:"categories"`
	SortKey        string   `json:"sortKey"`
	SkillLevels    []string `json:"skillLevels"`
	Language       string   `json:"language,omitempty"`
	Features       []string `json:"features"`
}

// ChipResponse is one removable active-filter chip
type ChipResponse struct {
	Dimension string `json:"dimension"`
	Label     string `json:"label"`
	Value     string `json:"value"`
}

// FacetsResponse lists filter values the UI can offer for this result set
type FacetsResponse struct {
	Categories  []string `json:"categories"`
	SkillLevels []string `json:"skillLevels"`
	Languages   []string `json:"languages"`
	Features    []string `json:"features"`
}

// SearchStateResponse is a snapshot of one search view
type SearchStateResponse struct {
	Query            string           `json:"query"`
	Mode             string           `json:"mode" enum:"search,latest-filtered,idle" doc:"Fetch strategy in effect"`
	Results          []CourseResponse `json:"results"`
	TotalResults     int              `json:"totalResults"`
	TotalPages       int              `json:"totalPages"`
	CurrentPage      int              `json:"currentPage"`
	PageWindow       []int            `json:"pageWindow" doc:"Page numbers to render in the paginator"`
	Loading          bool             `json:"loading"`
	Error            *string          `json:"error" doc:"Message shown in place of results after a failed fetch"`
	Filters          FiltersResponse  `json:"filters"`
	ActiveFilters    []ChipResponse   `json:"activeFilters"`
	HasActiveFilters bool             `json:"hasActiveFilters"`
	Facets           FacetsResponse   `json:"facets"`
}

// SessionResponse wraps a session's state
type SessionResponse struct {
	ID string `json:"id" doc:"Session identifier"`

	// ScrollSeq advances each time the view should scroll to the top
	ScrollSeq int64               `json:"scrollSeq" doc:"Increments whenever a page change requests scroll-to-top"`
	State     SearchStateResponse `json:"state"`
}

// SectionResponse is one curated course list
type SectionResponse struct {
	Key     string           `json:"key" enum:"trending,most_viewed,recommended,new_courses"`
	Courses []CourseResponse `json:"courses"`
	Loaded  bool             `json:"loaded"`
	Loading bool             `json:"loading"`
}

// SectionsResponse lists curated sections for a session
type SectionsResponse struct {
	ID string `json:"id" doc:"Session identifier"`

	// Visible is true only while the session is idle
	Visible  bool              `json:"visible" doc:"Whether sections are shown; false once a query or filter is active"`
	Sections []SectionResponse `json:"sections"`
}

// FilterOptionResponse is one selectable value with its label
type FilterOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptionsResponse lists the fixed filter catalogs
type FilterOptionsResponse struct {
	ContentTypes    []FilterOptionResponse `json:"contentTypes"`
	DurationBuckets []FilterOptionResponse `json:"durationBuckets"`
	DateBuckets     []FilterOptionResponse `json:"dateBuckets"`
	SortKeys        []FilterOptionResponse `json:"sortKeys"`
	Categories      []string               `json:"categories"`
}
