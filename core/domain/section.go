// ABOUTME: Curated section models shown while the search view is idle
// ABOUTME: Each section has its own slot so one failure never touches another

package domain

// SectionKey identifies a curated course list
type SectionKey string

const (
	SectionTrending    SectionKey = "trending"
	SectionMostViewed  SectionKey = "most_viewed"
	SectionRecommended SectionKey = "recommended"
	SectionNewCourses  SectionKey = "new_courses"
)

// SectionKeys lists sections in display order
var SectionKeys = []SectionKey{
	SectionTrending,
	SectionMostViewed,
	SectionRecommended,
	SectionNewCourses,
}

// Section is one curated list slot
type Section struct {
	Key     SectionKey         `json:"key"`
	Courses []NormalizedCourse `json:"courses"`
	Loaded  bool               `json:"loaded"`
	Loading bool               `json:"loading"`
}
