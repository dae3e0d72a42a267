// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the course catalog, metrics and the rendering viewport

package interfaces

import (
	"context"

	"course-search-api/core/domain"
)

// CourseCatalog lists courses from the paginated course-listing endpoint.
// Implementations return typed errors from core/errors.
type CourseCatalog interface {
	ListCourses(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error)
}

// Metrics records engine activity. A nil Metrics in Dependencies is replaced by a no-op.
type Metrics interface {
	FetchDispatched(mode domain.SearchMode)
	FetchDiscarded(mode domain.SearchMode)
	FetchFailed(mode domain.SearchMode, kind string)
	ItemsDropped(count int)
	SectionFailed(section domain.SectionKey)
}

// Viewport is the rendering surface the engine scrolls on page change
type Viewport interface {
	ScrollToTop()
}
