// ABOUTME: Public types for the course search library
// ABOUTME: Aliases the core models so consumers never import internal packages

package coursesearch

import (
	"course-search-api/core/domain"
	"course-search-api/core/filters"
)

// State is a snapshot of the search view
type State = domain.SearchState

// Course is one normalized course card
type Course = domain.NormalizedCourse

// Filters holds every selected filter dimension
type Filters = domain.FilterSet

// Chip is a removable active-filter token
type Chip = domain.ActiveFilterChip

// Section is one curated course list
type Section = domain.Section

// Dimension names a filterable dimension
type Dimension = domain.Dimension

// FilterOption is a selectable value with its label
type FilterOption = filters.Option

// Filter dimensions
const (
	ContentType = domain.DimensionContentType
	Duration    = domain.DimensionDuration
	Date        = domain.DimensionDate
	Category    = domain.DimensionCategory
	Sort        = domain.DimensionSort
	SkillLevel  = domain.DimensionSkillLevel
	Language    = domain.DimensionLanguage
	Feature     = domain.DimensionFeature
)

// Search modes
const (
	ModeSearch         = domain.ModeSearch
	ModeLatestFiltered = domain.ModeLatestFiltered
	ModeIdle           = domain.ModeIdle
)

// FilterCatalog lists the fixed options of every fixed dimension
type FilterCatalog struct {
	ContentTypes    []FilterOption
	DurationBuckets []FilterOption
	DateBuckets     []FilterOption
	SortKeys        []FilterOption
	Categories      []string
}

// Options returns the fixed filter catalogs
func Options() FilterCatalog {
	return FilterCatalog{
		ContentTypes:    append([]FilterOption(nil), filters.ContentTypes...),
		DurationBuckets: append([]FilterOption(nil), filters.DurationBuckets...),
		DateBuckets:     append([]FilterOption(nil), filters.DateBuckets...),
		SortKeys:        append([]FilterOption(nil), filters.SortKeys...),
		Categories:      append([]string(nil), filters.Categories...),
	}
}
