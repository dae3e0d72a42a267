// ABOUTME: Result normalizer maps raw catalog records of any schema generation to NormalizedCourse
// ABOUTME: Field resolution is ordered and defensive; a bad record is dropped, never fatal

package normalize

import (
	"math"
	"strings"
	"time"

	"course-search-api/core/domain"
	coreerrors "course-search-api/core/errors"
	"course-search-api/core/interfaces"
	"course-search-api/pkg/utils/duration"
	"course-search-api/pkg/utils/html"
	"course-search-api/pkg/utils/parse"
	timeutil "course-search-api/pkg/utils/time"
)

// Defaults applied when no source field is present
const (
	DefaultTitle      = "Untitled Course"
	DefaultThumbnail  = "/images/course-placeholder.png"
	DefaultSkillLevel = "All Levels"
	DefaultLanguage   = "English"
)

// Source paths, first usable value wins
var (
	idPaths          = []string{"_id", "id", "course_id"}
	titlePaths       = []string{"course_title", "title"}
	thumbnailPaths   = []string{"thumbnail_url", "course_image", "thumbnail", "image"}
	ratingPaths      = []string{"meta.ratings.average", "avg_rating", "rating"}
	updatedPaths     = []string{"meta.lastUpdated", "updatedAt", "updated_at", "createdAt"}
	durationPaths    = []string{"course_duration", "duration"}
	categoryPaths    = []string{"course_category", "category"}
	levelPaths       = []string{"course_level", "skill_level", "level"}
	languagePaths    = []string{"course_language", "language"}
	tagPaths         = []string{"course_tags", "tags"}
	previewPaths     = []string{"preview_available", "is_preview_available"}
	certPaths        = []string{"is_Certification", "is_certification", "certification", "has_certificate"}
	reviewCountPaths = []string{"meta.ratings.count", "reviews_count"}
	completedPaths   = []string{"meta.completions", "completed_count"}
)

// Normalize maps one raw record to its canonical form relative to now.
// The result depends only on raw and now. It returns a *TransformError and a
// nil course when the record cannot be identified.
func Normalize(raw domain.RawCourse, now time.Time) (*domain.NormalizedCourse, error) {
	if len(raw) == 0 {
		return nil, &coreerrors.TransformError{Field: "record", Reason: "empty record"}
	}

	id, ok := firstString(raw, idPaths...)
	if !ok {
		return nil, &coreerrors.TransformError{Field: "id", Reason: "no identifier in _id, id or course_id"}
	}

	enrolled := enrolledCount(raw)

	course := &domain.NormalizedCourse{
		ID:               id,
		Title:            stringOr(raw, DefaultTitle, titlePaths...),
		ThumbnailURL:     stringOr(raw, DefaultThumbnail, thumbnailPaths...),
		DurationLabel:    durationLabel(raw),
		Rating:           rating(raw),
		EnrolledCount:    enrolled,
		Category:         category(raw),
		CompletionRate:   completionRate(raw, enrolled),
		SkillLevel:       stringOr(raw, DefaultSkillLevel, levelPaths...),
		LastUpdatedLabel: lastUpdatedLabel(raw, now),
		Instructor:       instructor(raw),
		PreviewAvailable: previewAvailable(raw),
		Certification:    certification(raw),
		Language:         stringOr(raw, DefaultLanguage, languagePaths...),
		Description:      description(raw),
		Price:            price(raw),
		ReviewsCount:     reviewsCount(raw),
		Tags:             tags(raw),
		Status:           stringOr(raw, "", "status"),
	}

	return course, nil
}

// Batch normalizes every record, dropping and logging the ones that fail.
// It returns the surviving courses in input order and the number dropped.
func Batch(raws []domain.RawCourse, now time.Time, logger interfaces.Logger) ([]domain.NormalizedCourse, int) {
	courses := make([]domain.NormalizedCourse, 0, len(raws))
	dropped := 0

	for i, raw := range raws {
		course, err := Normalize(raw, now)
		if err != nil {
			dropped++
			if te, ok := err.(*coreerrors.TransformError); ok {
				te.Index = i
			}
			if logger != nil {
				logger.Warn("Dropping course that failed normalization", map[string]interface{}{
					"index": i,
					"error": err.Error(),
				})
			}
			continue
		}
		courses = append(courses, *course)
	}

	return courses, dropped
}

func firstString(raw domain.RawCourse, paths ...string) (string, bool) {
	for _, p := range paths {
		v, ok := raw.Lookup(p)
		if !ok {
			continue
		}
		if s, ok := parse.String(v); ok {
			return s, true
		}
	}
	return "", false
}

func stringOr(raw domain.RawCourse, def string, paths ...string) string {
	if s, ok := firstString(raw, paths...); ok {
		return s
	}
	return def
}

func description(raw domain.RawCourse) string {
	if v, ok := raw.Lookup("course_description"); ok {
		if obj, isObj := v.(map[string]interface{}); isObj {
			if s, ok := parse.String(obj["program_overview"]); ok {
				if text := html.StripHTML(s); text != "" {
					return text
				}
			}
		} else if s, ok := parse.String(v); ok {
			if text := html.StripHTML(s); text != "" {
				return text
			}
		}
	}
	if s, ok := firstString(raw, "description"); ok {
		return html.StripHTML(s)
	}
	return ""
}

func price(raw domain.RawCourse) float64 {
	if v, ok := raw.Lookup("prices"); ok {
		if list, isList := v.([]interface{}); isList && len(list) > 0 {
			if entry, isObj := list[0].(map[string]interface{}); isObj {
				for _, key := range []string{"individual", "batch"} {
					if f, ok := parse.Float(entry[key]); ok {
						return f
					}
				}
			}
		}
	}
	if v, ok := raw.Lookup("price"); ok {
		return parse.FloatOrZero(v)
	}
	return 0
}

func rating(raw domain.RawCourse) float64 {
	for _, p := range ratingPaths {
		if v, ok := raw.Lookup(p); ok {
			if f, ok := parse.Float(v); ok {
				return f
			}
		}
	}
	return 0
}

func enrolledCount(raw domain.RawCourse) int {
	if v, ok := raw.Lookup("meta.enrollments"); ok {
		if n, ok := parse.Int(v); ok {
			return n
		}
	}
	if v, ok := raw.Lookup("enrolled_students"); ok {
		if n, isList := parse.Len(v); isList {
			return n
		}
	}
	if v, ok := raw.Lookup("enrolled_count"); ok {
		if n, ok := parse.Int(v); ok {
			return n
		}
	}
	return 0
}

func completionRate(raw domain.RawCourse, enrolled int) int {
	if enrolled <= 0 {
		return 0
	}

	completed := completedCount(raw)
	rate := int(math.Round(100 * float64(completed) / float64(enrolled)))
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}

func completedCount(raw domain.RawCourse) int {
	for _, p := range completedPaths {
		if v, ok := raw.Lookup(p); ok {
			if n, ok := parse.Int(v); ok {
				return n
			}
		}
	}

	v, ok := raw.Lookup("enrolled_students")
	if !ok {
		return 0
	}
	students, isList := v.([]interface{})
	if !isList {
		return 0
	}

	count := 0
	for _, s := range students {
		student, isObj := s.(map[string]interface{})
		if !isObj {
			continue
		}
		status, _ := parse.String(student["status"])
		if parse.Bool(student["completed"]) || strings.EqualFold(status, "completed") {
			count++
		}
	}
	return count
}

func durationLabel(raw domain.RawCourse) string {
	s, ok := firstString(raw, durationPaths...)
	if !ok {
		return ""
	}
	return duration.FormatCourseDuration(s)
}

func lastUpdatedLabel(raw domain.RawCourse, now time.Time) string {
	for _, p := range updatedPaths {
		v, ok := raw.Lookup(p)
		if !ok {
			continue
		}
		if t := timeutil.ParseValue(v); !t.IsZero() {
			return timeutil.UpdatedLabel(t, now)
		}
	}
	return ""
}

func category(raw domain.RawCourse) string {
	for _, p := range categoryPaths {
		v, ok := raw.Lookup(p)
		if !ok {
			continue
		}
		if list, isList := v.([]interface{}); isList {
			if values := parse.Strings(list); len(values) > 0 {
				return values[0]
			}
			continue
		}
		if s, ok := parse.String(v); ok {
			return s
		}
	}
	return ""
}

func instructor(raw domain.RawCourse) string {
	for _, p := range []string{"instructor", "assigned_instructor"} {
		v, ok := raw.Lookup(p)
		if !ok {
			continue
		}
		if obj, isObj := v.(map[string]interface{}); isObj {
			for _, key := range []string{"name", "full_name"} {
				if s, ok := parse.String(obj[key]); ok {
					return s
				}
			}
			continue
		}
		if s, ok := parse.String(v); ok {
			return s
		}
	}
	return ""
}

func previewAvailable(raw domain.RawCourse) bool {
	if v, ok := raw.First(previewPaths...); ok {
		return parse.Bool(v)
	}
	_, hasVideo := firstString(raw, "preview_video")
	return hasVideo
}

func certification(raw domain.RawCourse) bool {
	v, ok := raw.First(certPaths...)
	if !ok {
		return false
	}
	if s, isString := v.(string); isString {
		if strings.EqualFold(strings.TrimSpace(s), "certification") {
			return true
		}
	}
	return parse.Bool(v)
}

func reviewsCount(raw domain.RawCourse) int {
	for _, p := range reviewCountPaths {
		if v, ok := raw.Lookup(p); ok {
			if n, ok := parse.Int(v); ok {
				return n
			}
		}
	}
	if v, ok := raw.Lookup("reviews"); ok {
		if n, isList := parse.Len(v); isList {
			return n
		}
	}
	return 0
}

func tags(raw domain.RawCourse) []string {
	for _, p := range tagPaths {
		if v, ok := raw.Lookup(p); ok {
			if values := parse.Strings(v); len(values) > 0 {
				return values
			}
		}
	}
	return []string{}
}
