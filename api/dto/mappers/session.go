// ABOUTME: Mappers for converting search state and sections to API DTOs
// ABOUTME: Course cards are copied field-by-name; filter sets become sorted lists

package mappers

import (
	"github.com/jinzhu/copier"

	"course-search-api/api/dto/responses"
	"course-search-api/core/domain"
	"course-search-api/core/filters"
)

// ToCourseResponses converts normalized courses to course DTOs
func ToCourseResponses(courses []domain.NormalizedCourse) []responses.CourseResponse {
	out := make([]responses.CourseResponse, 0, len(courses))
	if len(courses) == 0 {
		return out
	}
	if err := copier.CopyWithOption(&out, &courses, copier.Option{DeepCopy: true}); err != nil {
		return make([]responses.CourseResponse, 0)
	}
	for i := range out {
		if out[i].Tags == nil {
			out[i].Tags = []string{}
		}
	}
	return out
}

// ToFiltersResponse renders a FilterSet with sets as sorted lists
func ToFiltersResponse(f domain.FilterSet) responses.FiltersResponse {
	return responses.FiltersResponse{
		ContentType:    f.ContentType,
		DurationBucket: f.DurationBucket,
		DateBucket:     f.DateBucket,
		Categories:     filters.Members(f.Categories),
		SortKey:        f.SortKey,
		SkillLevels:    filters.Members(f.SkillLevels),
		Language:       f.Language,
		Features:       filters.Members(f.Features),
	}
}

// ToSearchStateResponse converts an engine snapshot to its DTO
func ToSearchStateResponse(s domain.SearchState) responses.SearchStateResponse {
	chips := make([]responses.ChipResponse, 0, len(s.ActiveFilters))
	for _, c := range s.ActiveFilters {
		chips = append(chips, responses.ChipResponse{
			Dimension: string(c.Dimension),
			Label:     c.Label,
			Value:     c.Value,
		})
	}

	window := s.PageWindow
	if window == nil {
		window = []int{}
	}

	return responses.SearchStateResponse{
		Query:            s.Query,
		Mode:             string(s.Mode),
		Results:          ToCourseResponses(s.Results),
		TotalResults:     s.TotalResults,
		TotalPages:       s.TotalPages,
		CurrentPage:      s.CurrentPage,
		PageWindow:       window,
		Loading:          s.Loading,
		Error:            s.Error,
		Filters:          ToFiltersResponse(s.Filters),
		ActiveFilters:    chips,
		HasActiveFilters: filters.HasActive(s.Filters),
		Facets: responses.FacetsResponse{
			Categories:  nonNil(s.Facets.Categories),
			SkillLevels: nonNil(s.Facets.SkillLevels),
			Languages:   nonNil(s.Facets.Languages),
			Features:    nonNil(s.Facets.Features),
		},
	}
}

// ToSectionsResponse converts curated sections to their DTO
func ToSectionsResponse(id string, visible bool, sections []domain.Section) responses.SectionsResponse {
	out := responses.SectionsResponse{
		ID:       id,
		Visible:  visible,
		Sections: make([]responses.SectionResponse, 0, len(sections)),
	}
	for _, sec := range sections {
		out.Sections = append(out.Sections, responses.SectionResponse{
			Key:     string(sec.Key),
			Courses: ToCourseResponses(sec.Courses),
			Loaded:  sec.Loaded,
			Loading: sec.Loading,
		})
	}
	return out
}

// ToFilterOptionsResponse lists the fixed filter catalogs
func ToFilterOptionsResponse() responses.FilterOptionsResponse {
	return responses.FilterOptionsResponse{
		ContentTypes:    toOptions(filters.ContentTypes),
		DurationBuckets: toOptions(filters.DurationBuckets),
		DateBuckets:     toOptions(filters.DateBuckets),
		SortKeys:        toOptions(filters.SortKeys),
		Categories:      append([]string(nil), filters.Categories...),
	}
}

func toOptions(options []filters.Option) []responses.FilterOptionResponse {
	out := make([]responses.FilterOptionResponse, 0, len(options))
	for _, o := range options {
		out = append(out, responses.FilterOptionResponse{Value: o.Value, Label: o.Label})
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
