// ABOUTME: Filter domain models describing the user's selected filter dimensions
// ABOUTME: FilterSet is the single source of truth; chips are always derived from it

package domain

// Dimension names a filterable dimension of the course catalog
type Dimension string

const (
	DimensionContentType Dimension = "contentType"
	DimensionDuration    Dimension = "duration"
	DimensionDate        Dimension = "date"
	DimensionCategory    Dimension = "category"
	DimensionSort        Dimension = "sort"
	DimensionSkillLevel  Dimension = "skillLevel"
	DimensionLanguage    Dimension = "language"
	DimensionFeature     Dimension = "feature"
)

// Default values for single-select dimensions
const (
	ContentTypeAll = "all"
	SortRelevance  = "relevance"
)

// FilterSet holds every filter dimension the user can change.
// Categories, SkillLevels and Features are multi-select sets; all other
// dimensions are single-select where the empty string (or the dimension's
// default) means "no filter".
type FilterSet struct {
	ContentType    string          `json:"contentType"`
	DurationBucket string          `json:"durationBucket"`
	DateBucket     string          `json:"dateBucket"`
	Categories     map[string]bool `json:"categories"`
	SortKey        string          `json:"sortKey"`

	// Auxiliary dimensions populated from backend facets
	SkillLevels map[string]bool `json:"skillLevels"`
	Language    string          `json:"language"`
	Features    map[string]bool `json:"features"`
}

// NewFilterSet returns a FilterSet with every dimension at its default
func NewFilterSet() FilterSet {
	return FilterSet{
		ContentType: ContentTypeAll,
		SortKey:     SortRelevance,
		Categories:  map[string]bool{},
		SkillLevels: map[string]bool{},
		Features:    map[string]bool{},
	}
}

// Clone returns a deep copy so transitions never share set storage
func (f FilterSet) Clone() FilterSet {
	out := f
	out.Categories = cloneSet(f.Categories)
	out.SkillLevels = cloneSet(f.SkillLevels)
	out.Features = cloneSet(f.Features)
	return out
}

func cloneSet(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for k, v := range in {
		if v {
			out[k] = true
		}
	}
	return out
}

// ActiveFilterChip is a removable UI token for one active filter value
type ActiveFilterChip struct {
	Dimension Dimension `json:"dimension"`
	Label     string    `json:"label"`
	Value     string    `json:"value"`
}
