// ABOUTME: Course domain models for raw catalog records and normalized display records
// ABOUTME: RawCourse keeps the backend's loose schema; NormalizedCourse is the canonical shape

package domain

import "strings"

// RawCourse is an unprocessed course record as returned by the catalog backend.
// Field names vary between schema generations (course_title vs title,
// course_image vs thumbnail vs image), so the record is kept as decoded JSON.
type RawCourse map[string]interface{}

// Lookup resolves a dotted path such as "meta.ratings.average" through nested objects.
// It returns false when any segment is missing or is not an object.
func (r RawCourse) Lookup(path string) (interface{}, bool) {
	if r == nil || path == "" {
		return nil, false
	}

	var current interface{} = map[string]interface{}(r)
	for _, segment := range strings.Split(path, ".") {
		obj, ok := asObject(current)
		if !ok {
			return nil, false
		}
		value, exists := obj[segment]
		if !exists || value == nil {
			return nil, false
		}
		current = value
	}

	return current, true
}

// First returns the first present, non-nil value among paths, in order.
func (r RawCourse) First(paths ...string) (interface{}, bool) {
	for _, p := range paths {
		if v, ok := r.Lookup(p); ok {
			return v, true
		}
	}
	return nil, false
}

func asObject(v interface{}) (map[string]interface{}, bool) {
	switch obj := v.(type) {
	case map[string]interface{}:
		return obj, true
	case RawCourse:
		return obj, true
	default:
		return nil, false
	}
}

// NormalizedCourse is the canonical, display-ready course record
type NormalizedCourse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ThumbnailURL     string   `json:"thumbnailUrl"`
	DurationLabel    string   `json:"durationLabel"`
	Rating           float64  `json:"rating"`
	EnrolledCount    int      `json:"enrolledCount"`
	Category         string   `json:"category"`
	CompletionRate   int      `json:"completionRate"`
	SkillLevel       string   `json:"skillLevel"`
	LastUpdatedLabel string   `json:"lastUpdatedLabel"`
	Instructor       string   `json:"instructor"`
	PreviewAvailable bool     `json:"previewAvailable"`
	Certification    bool     `json:"certification"`
	Language         string   `json:"language"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	ReviewsCount     int      `json:"reviewsCount"`
	Tags             []string `json:"tags"`
	Status           string   `json:"status"`
}
