// ABOUTME: Filter option catalogs with display labels for every fixed dimension
// ABOUTME: Categories are a fixed list; auxiliary options come from backend facets

package filters

import (
	"course-search-api/core/domain"
)

// Option is a selectable filter value with its display label
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ContentTypes are the single-select course delivery formats
var ContentTypes = []Option{
	{Value: domain.ContentTypeAll, Label: "All Courses"},
	{Value: "live", Label: "Live Courses"},
	{Value: "blended", Label: "Blended Courses"},
	{Value: "self-paced", Label: "Self-Paced Courses"},
}

// DurationBuckets group course length in weeks
var DurationBuckets = []Option{
	{Value: "short", Label: "Under 4 weeks"},
	{Value: "medium", Label: "1-3 months"},
	{Value: "long", Label: "3+ months"},
}

// DateBuckets group course recency
var DateBuckets = []Option{
	{Value: "week", Label: "Last 7 days"},
	{Value: "month", Label: "Last 30 days"},
	{Value: "year", Label: "Last 12 months"},
}

// SortKeys are the user-facing sort orders
var SortKeys = []Option{
	{Value: domain.SortRelevance, Label: "Most Relevant"},
	{Value: "date", Label: "Newest"},
	{Value: "rating", Label: "Highest Rated"},
	{Value: "popularity", Label: "Most Popular"},
}

// Categories is the fixed category list offered by the filter UI.
// The backend's categories facet is ignored in favour of this list.
var Categories = []string{
	"AI and Data Science",
	"Business and Management",
	"Career Development",
	"Communication Skills",
	"Data and Analytics",
	"Digital Marketing",
	"Finance and Accounts",
	"Health and Fitness",
	"Language and Linguistics",
	"Personal Development",
	"Programming",
	"Sales and Marketing",
	"Technical Skills",
}

func labelFor(options []Option, value string) (string, bool) {
	for _, o := range options {
		if o.Value == value {
			return o.Label, true
		}
	}
	return "", false
}

func isCategory(value string) bool {
	for _, c := range Categories {
		if c == value {
			return true
		}
	}
	return false
}

// Options builds the option lists for the filter UI from response facets
func Options(facets domain.Facets) domain.FilterOptions {
	return domain.FilterOptions{
		Categories:  append([]string(nil), Categories...),
		SkillLevels: dedupe(facets.SkillLevels),
		Languages:   dedupe(facets.Languages),
		Features:    dedupe(facets.Features),
	}
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
