// ABOUTME: Section loader fills the curated idle-mode lists (trending, most viewed, recommended, new)
// ABOUTME: Each section fetches concurrently into its own slot; one failure never touches another

package sections

import (
	"context"
	"sync"

	"course-search-api/core/domain"
	coreerrors "course-search-api/core/errors"
	"course-search-api/core/interfaces"
	"course-search-api/core/normalize"
)

// DefaultSize is the number of courses in each curated section
const DefaultSize = 4

// Preset is the fixed request shape behind one section
type Preset struct {
	Key        domain.SectionKey
	Categories []string
	SortBy     string
}

// DefaultPresets returns the four standard sections. Recommended is narrowed
// to interests when any are given.
func DefaultPresets(interests []string) []Preset {
	return []Preset{
		{Key: domain.SectionTrending, SortBy: "popular"},
		{Key: domain.SectionMostViewed, SortBy: "views"},
		{Key: domain.SectionRecommended, SortBy: "rating", Categories: interests},
		{Key: domain.SectionNewCourses, SortBy: "newest"},
	}
}

// Loader owns one slot per preset
type Loader struct {
	deps    interfaces.Dependencies
	presets []Preset
	size    int
	status  string

	mu    sync.Mutex
	slots map[domain.SectionKey]*domain.Section
}

// NewLoader creates a loader with an empty slot for every preset
func NewLoader(deps interfaces.Dependencies, presets []Preset, size int, status string) *Loader {
	if size < 1 {
		size = DefaultSize
	}
	slots := make(map[domain.SectionKey]*domain.Section, len(presets))
	for _, p := range presets {
		slots[p.Key] = &domain.Section{Key: p.Key, Courses: []domain.NormalizedCourse{}}
	}
	return &Loader{
		deps:    deps,
		presets: presets,
		size:    size,
		status:  status,
		slots:   slots,
	}
}

// LoadAll fetches every section concurrently and returns once all have
// resolved. Each section commits as soon as its own fetch resolves.
func (l *Loader) LoadAll(ctx context.Context) {
	var wg sync.WaitGroup
	for _, p := range l.presets {
		wg.Add(1)
		go func(p Preset) {
			defer wg.Done()
			_ = l.load(ctx, p)
		}(p)
	}
	wg.Wait()
}

// Load fetches a single section
func (l *Loader) Load(ctx context.Context, key domain.SectionKey) error {
	for _, p := range l.presets {
		if p.Key == key {
			return l.load(ctx, p)
		}
	}
	return &coreerrors.NotFoundError{Resource: "section", ID: string(key)}
}

// NeedsLoad reports whether any section is neither loaded nor loading
func (l *Loader) NeedsLoad() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, s := range l.slots {
		if !s.Loaded && !s.Loading {
			return true
		}
	}
	return false
}

// Sections returns copies of every slot in display order
func (l *Loader) Sections() []domain.Section {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Section, 0, len(l.presets))
	for _, p := range l.presets {
		s := *l.slots[p.Key]
		s.Courses = append([]domain.NormalizedCourse{}, s.Courses...)
		out = append(out, s)
	}
	return out
}

func (l *Loader) load(ctx context.Context, p Preset) error {
	l.mu.Lock()
	l.slots[p.Key].Loading = true
	l.mu.Unlock()

	resp, err := l.deps.Catalog.ListCourses(ctx, l.request(p))

	var courses []domain.NormalizedCourse
	if err == nil {
		var dropped int
		courses, dropped = normalize.Batch(resp.Courses, l.deps.Now(), l.deps.Logger)
		if dropped > 0 && l.deps.Metrics != nil {
			l.deps.Metrics.ItemsDropped(dropped)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	slot := l.slots[p.Key]
	slot.Loading = false
	if err != nil {
		if l.deps.Metrics != nil {
			l.deps.Metrics.SectionFailed(p.Key)
		}
		if l.deps.Logger != nil {
			l.deps.Logger.Warn("Section load failed", map[string]interface{}{
				"section": string(p.Key),
				"kind":    coreerrors.Kind(err),
				"error":   err.Error(),
			})
		}
		return err
	}

	if len(courses) > l.size {
		courses = courses[:l.size]
	}
	slot.Courses = courses
	slot.Loaded = true
	return nil
}

func (l *Loader) request(p Preset) domain.ListRequest {
	req := domain.ListRequest{
		Page:   1,
		Limit:  l.size,
		Status: l.status,
		Filters: domain.RequestFilters{
			SortBy: p.SortBy,
		},
	}
	if len(p.Categories) > 0 {
		req.Categories = append([]string{}, p.Categories...)
	}
	return req
}
