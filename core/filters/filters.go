// ABOUTME: Filter state transitions and active-filter chip derivation
// ABOUTME: Every transition returns a new FilterSet; chips are a pure function of it

package filters

import (
	"sort"

	"course-search-api/core/domain"
	coreerrors "course-search-api/core/errors"
)

// Toggle applies one user selection to f and returns the new FilterSet.
// Multi-select dimensions flip set membership; single-select dimensions
// clear back to their default when the active value is selected again.
func Toggle(f domain.FilterSet, dim domain.Dimension, value string) (domain.FilterSet, error) {
	next := f.Clone()

	switch dim {
	case domain.DimensionContentType:
		if _, ok := labelFor(ContentTypes, value); !ok {
			return f, invalid(dim, value)
		}
		next.ContentType = toggleSingle(f.ContentType, value, domain.ContentTypeAll)
	case domain.DimensionDuration:
		if _, ok := labelFor(DurationBuckets, value); !ok {
			return f, invalid(dim, value)
		}
		next.DurationBucket = toggleSingle(f.DurationBucket, value, "")
	case domain.DimensionDate:
		if _, ok := labelFor(DateBuckets, value); !ok {
			return f, invalid(dim, value)
		}
		next.DateBucket = toggleSingle(f.DateBucket, value, "")
	case domain.DimensionSort:
		if _, ok := labelFor(SortKeys, value); !ok {
			return f, invalid(dim, value)
		}
		next.SortKey = toggleSingle(f.SortKey, value, domain.SortRelevance)
	case domain.DimensionCategory:
		if !isCategory(value) {
			return f, invalid(dim, value)
		}
		toggleMember(next.Categories, value)
	case domain.DimensionSkillLevel:
		if value == "" {
			return f, invalid(dim, value)
		}
		toggleMember(next.SkillLevels, value)
	case domain.DimensionFeature:
		if value == "" {
			return f, invalid(dim, value)
		}
		toggleMember(next.Features, value)
	case domain.DimensionLanguage:
		if value == "" {
			return f, invalid(dim, value)
		}
		next.Language = toggleSingle(f.Language, value, "")
	default:
		return f, &coreerrors.ValidationError{Field: "dimension", Message: "unknown filter dimension " + string(dim)}
	}

	return next, nil
}

// Remove clears exactly what chip represents: one member of a multi-select
// set, or the whole single-select dimension.
func Remove(f domain.FilterSet, chip domain.ActiveFilterChip) domain.FilterSet {
	next := f.Clone()

	switch chip.Dimension {
	case domain.DimensionContentType:
		next.ContentType = domain.ContentTypeAll
	case domain.DimensionDuration:
		next.DurationBucket = ""
	case domain.DimensionDate:
		next.DateBucket = ""
	case domain.DimensionSort:
		next.SortKey = domain.SortRelevance
	case domain.DimensionCategory:
		delete(next.Categories, chip.Value)
	case domain.DimensionSkillLevel:
		delete(next.SkillLevels, chip.Value)
	case domain.DimensionFeature:
		delete(next.Features, chip.Value)
	case domain.DimensionLanguage:
		next.Language = ""
	}

	return next
}

// Clear resets every dimension to its default
func Clear() domain.FilterSet {
	return domain.NewFilterSet()
}

// HasActive reports whether any filter dimension narrows the result set.
// Sort order is not a filter.
func HasActive(f domain.FilterSet) bool {
	return f.ContentType != "" && f.ContentType != domain.ContentTypeAll ||
		f.DurationBucket != "" ||
		f.DateBucket != "" ||
		f.Language != "" ||
		len(members(f.Categories)) > 0 ||
		len(members(f.SkillLevels)) > 0 ||
		len(members(f.Features)) > 0
}

// DeriveChips lists one chip per active filter value in a stable order
func DeriveChips(f domain.FilterSet) []domain.ActiveFilterChip {
	chips := []domain.ActiveFilterChip{}

	if f.ContentType != "" && f.ContentType != domain.ContentTypeAll {
		chips = append(chips, chip(domain.DimensionContentType, f.ContentType, ContentTypes))
	}
	if f.DurationBucket != "" {
		chips = append(chips, chip(domain.DimensionDuration, f.DurationBucket, DurationBuckets))
	}
	if f.DateBucket != "" {
		chips = append(chips, chip(domain.DimensionDate, f.DateBucket, DateBuckets))
	}
	for _, c := range members(f.Categories) {
		chips = append(chips, domain.ActiveFilterChip{Dimension: domain.DimensionCategory, Label: c, Value: c})
	}
	for _, s := range members(f.SkillLevels) {
		chips = append(chips, domain.ActiveFilterChip{Dimension: domain.DimensionSkillLevel, Label: s, Value: s})
	}
	if f.Language != "" {
		chips = append(chips, domain.ActiveFilterChip{Dimension: domain.DimensionLanguage, Label: f.Language, Value: f.Language})
	}
	for _, ft := range members(f.Features) {
		chips = append(chips, domain.ActiveFilterChip{Dimension: domain.DimensionFeature, Label: ft, Value: ft})
	}

	return chips
}

// Members returns the selected values of a set in sorted order
func Members(set map[string]bool) []string {
	return members(set)
}

func members(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k, v := range set {
		if v {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func chip(dim domain.Dimension, value string, options []Option) domain.ActiveFilterChip {
	label, ok := labelFor(options, value)
	if !ok {
		label = value
	}
	return domain.ActiveFilterChip{Dimension: dim, Label: label, Value: value}
}

func toggleSingle(current, value, def string) string {
	if current == value {
		return def
	}
	return value
}

func toggleMember(set map[string]bool, value string) {
	if set[value] {
		delete(set, value)
		return
	}
	set[value] = true
}

func invalid(dim domain.Dimension, value string) error {
	return &coreerrors.ValidationError{
		Field:   string(dim),
		Message: "unsupported value '" + value + "'",
	}
}
