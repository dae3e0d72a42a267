// ABOUTME: Fetch planning decides the search mode and builds the listing request
// ABOUTME: Pure functions of (query, filters, page, now) so every mode rule is testable

package search

import (
	"strings"
	"time"

	"course-search-api/core/domain"
	"course-search-api/core/filters"
)

// Config holds the engine's tunables
type Config struct {
	// SearchPageSize is the page size in search mode
	SearchPageSize int

	// LatestPageSize is the fixed page size in latest-filtered mode
	LatestPageSize int

	// Debounce is the quiet period before a query-driven fetch
	Debounce time.Duration

	// Status restricts listings to a course status; empty sends none
	Status string
}

// DefaultConfig returns the standard engine configuration
func DefaultConfig() Config {
	return Config{
		SearchPageSize: 12,
		LatestPageSize: 5,
		Debounce:       300 * time.Millisecond,
		Status:         "Published",
	}
}

// Plan is the outcome of mode selection
type Plan struct {
	Mode    domain.SearchMode
	Request domain.ListRequest
}

// sortParams maps user-facing sort keys to backend sortBy values
var sortParams = map[string]string{
	domain.SortRelevance: "relevance",
	"date":               "newest",
	"rating":             "rating",
	"popularity":         "popular",
}

// SortParam maps a user-facing sort key to the backend's sortBy value
func SortParam(key string) string {
	if p, ok := sortParams[key]; ok {
		return p
	}
	return sortParams[domain.SortRelevance]
}

// ModeFor selects exactly one fetch mode
func ModeFor(query string, f domain.FilterSet) domain.SearchMode {
	switch {
	case strings.TrimSpace(query) != "":
		return domain.ModeSearch
	case filters.HasActive(f):
		return domain.ModeLatestFiltered
	default:
		return domain.ModeIdle
	}
}

// PlanFetch selects the mode for (query, f, page) and builds its request.
// Idle plans carry no request.
func PlanFetch(query string, f domain.FilterSet, page int, cfg Config, now time.Time) Plan {
	query = strings.TrimSpace(query)
	mode := ModeFor(query, f)

	switch mode {
	case domain.ModeSearch:
		if page < 1 {
			page = 1
		}
		req := baseRequest(f, cfg, now)
		req.Page = page
		req.Limit = cfg.SearchPageSize
		req.Search = query
		req.Filters.SortBy = SortParam(f.SortKey)
		return Plan{Mode: mode, Request: req}
	case domain.ModeLatestFiltered:
		req := baseRequest(f, cfg, now)
		req.Page = 1
		req.Limit = cfg.LatestPageSize
		req.Filters.SortBy = "newest"
		return Plan{Mode: mode, Request: req}
	default:
		return Plan{Mode: domain.ModeIdle}
	}
}

func baseRequest(f domain.FilterSet, cfg Config, now time.Time) domain.ListRequest {
	req := domain.ListRequest{
		Categories: filters.Members(f.Categories),
		Status:     cfg.Status,
		Filters: domain.RequestFilters{
			SkillLevel:    filters.Members(f.SkillLevels),
			Language:      f.Language,
			Features:      filters.Members(f.Features),
			DurationRange: durationRange(f.DurationBucket),
			DateRange:     dateRange(f.DateBucket, now),
		},
	}
	if f.ContentType != domain.ContentTypeAll {
		req.Filters.CourseType = f.ContentType
	}
	if len(req.Categories) == 0 {
		req.Categories = nil
	}
	if len(req.Filters.SkillLevel) == 0 {
		req.Filters.SkillLevel = nil
	}
	if len(req.Filters.Features) == 0 {
		req.Filters.Features = nil
	}
	return req
}

// durationRange maps a duration bucket to a range in weeks
func durationRange(bucket string) *domain.NumRange {
	bound := func(v float64) *float64 { return &v }

	switch bucket {
	case "short":
		return &domain.NumRange{Min: bound(0), Max: bound(4)}
	case "medium":
		return &domain.NumRange{Min: bound(4), Max: bound(12)}
	case "long":
		return &domain.NumRange{Min: bound(12)}
	default:
		return nil
	}
}

func dateRange(bucket string, now time.Time) *domain.DateRange {
	var span time.Duration
	switch bucket {
	case "week":
		span = 7 * 24 * time.Hour
	case "month":
		span = 30 * 24 * time.Hour
	case "year":
		span = 365 * 24 * time.Hour
	default:
		return nil
	}

	now = now.UTC()
	return &domain.DateRange{
		Start: now.Add(-span).Format(time.RFC3339),
		End:   now.Format(time.RFC3339),
	}
}
