package search

import (
	"context"
	"fmt"
	"sync"

	"course-search-api/core/domain"
)

// mockCatalog is a mock implementation of the CourseCatalog interface
type mockCatalog struct {
	mu       sync.Mutex
	requests []domain.ListRequest
	listFunc func(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error)
}

func (m *mockCatalog) ListCourses(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.listFunc != nil {
		return m.listFunc(ctx, req)
	}
	return &domain.ListResponse{}, nil
}

func (m *mockCatalog) calls() []domain.ListRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ListRequest(nil), m.requests...)
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

// mockMetrics counts engine events
type mockMetrics struct {
	mu         sync.Mutex
	dispatched int
	discarded  int
	failed     map[string]int
	dropped    int
}

func (m *mockMetrics) FetchDispatched(mode domain.SearchMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatched++
}

func (m *mockMetrics) FetchDiscarded(mode domain.SearchMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.discarded++
}

func (m *mockMetrics) FetchFailed(mode domain.SearchMode, kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed == nil {
		m.failed = map[string]int{}
	}
	m.failed[kind]++
}

func (m *mockMetrics) ItemsDropped(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dropped += count
}

func (m *mockMetrics) SectionFailed(section domain.SectionKey) {}

func (m *mockMetrics) discardedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.discarded
}

// mockViewport counts scroll requests
type mockViewport struct {
	mu      sync.Mutex
	scrolls int
}

func (m *mockViewport) ScrollToTop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scrolls++
}

func (m *mockViewport) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scrolls
}

// mockSections records idle-mode loads
type mockSections struct {
	mu    sync.Mutex
	loads int
}

func (m *mockSections) LoadAll(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
}

func (m *mockSections) NeedsLoad() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads == 0
}

func (m *mockSections) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}

// rawCourses builds n identifiable raw records with the given id prefix
func rawCourses(prefix string, n int) []domain.RawCourse {
	out := make([]domain.RawCourse, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.RawCourse{
			"_id":          fmt.Sprintf("%s-%d", prefix, i),
			"course_title": fmt.Sprintf("%s course %d", prefix, i),
		})
	}
	return out
}
