// ABOUTME: Search engine orchestrates debounced queries, filter changes and paginated fetches
// ABOUTME: Only the most recently issued fetch may commit state; stale responses are discarded

package search

import (
	"context"
	"sync"

	"github.com/jinzhu/copier"

	"course-search-api/core/domain"
	coreerrors "course-search-api/core/errors"
	"course-search-api/core/filters"
	"course-search-api/core/interfaces"
	"course-search-api/core/normalize"
	"course-search-api/core/pagination"
	"course-search-api/pkg/debounce"
)

// SectionLoader populates curated sections while the engine is idle
type SectionLoader interface {
	LoadAll(ctx context.Context)
	NeedsLoad() bool
}

// Listener receives a snapshot after every state change. Listeners run on
// the goroutine that changed state and must not call mutating Engine methods.
type Listener func(domain.SearchState)

// Option configures an Engine
type Option func(*Engine)

// WithViewport sets the surface scrolled on page change
func WithViewport(v interfaces.Viewport) Option {
	return func(e *Engine) { e.viewport = v }
}

// WithSections sets the loader run when the engine enters idle mode
func WithSections(l SectionLoader) Option {
	return func(e *Engine) { e.sections = l }
}

// Engine owns one search view's state. All methods are safe for concurrent use.
type Engine struct {
	deps      interfaces.Dependencies
	cfg       Config
	viewport  interfaces.Viewport
	sections  SectionLoader
	debouncer *debounce.Debouncer

	ctx    context.Context
	cancel context.CancelFunc

	// mu guards state, token, listeners and work tracking
	mu        sync.Mutex
	state     domain.SearchState
	token     uint64
	listeners map[int]Listener
	nextID    int

	// queued is set while a debounced query fetch waits to run; querySeq
	// identifies the latest one. running counts fetch and section goroutines.
	// done is open while either is outstanding and nil once settled.
	queued   bool
	querySeq uint64
	running  int
	done     chan struct{}

	// pubMu keeps deliveries in mutation order
	pubMu sync.Mutex
	wg    sync.WaitGroup
}

// settledCh is returned by Settled when no work is outstanding
var settledCh = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// NewEngine creates an idle engine. Call Start to run the initial dispatch.
func NewEngine(deps interfaces.Dependencies, cfg Config, opts ...Option) *Engine {
	if deps.Metrics == nil {
		deps.Metrics = noopMetrics{}
	}
	defaults := DefaultConfig()
	if cfg.SearchPageSize < 1 {
		cfg.SearchPageSize = defaults.SearchPageSize
	}
	if cfg.LatestPageSize < 1 {
		cfg.LatestPageSize = defaults.LatestPageSize
	}
	if cfg.Debounce < 0 {
		cfg.Debounce = 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		deps:      deps,
		cfg:       cfg,
		debouncer: debounce.New(cfg.Debounce),
		ctx:       ctx,
		cancel:    cancel,
		listeners: make(map[int]Listener),
		state: domain.SearchState{
			Filters:       domain.NewFilterSet(),
			Mode:          domain.ModeIdle,
			Results:       []domain.NormalizedCourse{},
			CurrentPage:   1,
			PageWindow:    []int{},
			ActiveFilters: []domain.ActiveFilterChip{},
			Facets:        filters.Options(domain.Facets{}),
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Restore replaces the inputs (query, filters, page) without fetching.
// Used to rehydrate a persisted session before Start.
func (e *Engine) Restore(query string, f domain.FilterSet, page int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Query = query
	e.state.Filters = f.Clone()
	e.state.ActiveFilters = filters.DeriveChips(e.state.Filters)
	if page < 1 {
		page = 1
	}
	e.state.CurrentPage = page
}

// Start dispatches for the current inputs
func (e *Engine) Start() {
	e.mu.Lock()
	e.dispatchLocked()
}

// Close cancels pending work and in-flight fetches, then waits for them
func (e *Engine) Close() {
	e.mu.Lock()
	e.debouncer.Cancel()
	e.queued = false
	e.cancel()
	e.settleLocked()
	e.mu.Unlock()

	e.wg.Wait()
}

// Settled returns a channel closed once no query fetch is waiting out its
// debounce and every dispatched fetch and section load has resolved
func (e *Engine) Settled() <-chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.done == nil {
		return settledCh
	}
	return e.done
}

// Wait blocks until the engine has settled
func (e *Engine) Wait() {
	<-e.Settled()
}

// Subscribe registers l and returns a function that removes it
func (e *Engine) Subscribe(l Listener) func() {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.listeners[id] = l
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.listeners, id)
		e.mu.Unlock()
	}
}

// State returns a deep copy of the current state
func (e *Engine) State() domain.SearchState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// SetQuery records the query text and schedules a debounced fetch. Each call
// resets the quiet period, so a burst of keystrokes produces one fetch.
func (e *Engine) SetQuery(query string) {
	e.mu.Lock()
	if e.ctx.Err() != nil {
		e.mu.Unlock()
		return
	}
	if e.state.Query != query {
		e.state.CurrentPage = 1
	}
	e.state.Query = query

	e.querySeq++
	seq := e.querySeq
	e.queued = true
	e.busyLocked()
	e.debouncer.Schedule(func() { e.dispatchQueued(seq) })
	e.publishLocked()
}

// Apply fetches immediately for the current inputs, skipping the debounce
func (e *Engine) Apply() {
	e.mu.Lock()
	e.dispatchLocked()
}

// ToggleFilter applies one filter selection, resets to page 1 and fetches
// immediately. Unknown values are rejected and leave state untouched.
func (e *Engine) ToggleFilter(dim domain.Dimension, value string) error {
	e.mu.Lock()
	next, err := filters.Toggle(e.state.Filters, dim, value)
	if err != nil {
		e.mu.Unlock()
		return err
	}

	e.replaceFiltersLocked(next)
	return nil
}

// RemoveChip clears the filter value behind chip and fetches immediately
func (e *Engine) RemoveChip(chip domain.ActiveFilterChip) {
	e.mu.Lock()
	e.replaceFiltersLocked(filters.Remove(e.state.Filters, chip))
}

// ClearAll resets every filter dimension in one transition and fetches.
// The query text is kept.
func (e *Engine) ClearAll() {
	e.mu.Lock()
	e.replaceFiltersLocked(filters.Clear())
}

// GoToPage clamps page to the known range, scrolls the viewport to the top
// and fetches that page. Navigating to the current page is a no-op.
func (e *Engine) GoToPage(page int) {
	e.mu.Lock()
	total := e.state.TotalPages
	if e.state.Mode != domain.ModeSearch {
		total = 1
	}
	target := pagination.Clamp(page, total)
	if target == e.state.CurrentPage {
		e.mu.Unlock()
		return
	}

	e.state.CurrentPage = target
	e.dispatchLocked()

	if e.viewport != nil {
		e.viewport.ScrollToTop()
	}
}

// replaceFiltersLocked commits next and dispatches. It releases mu.
func (e *Engine) replaceFiltersLocked(next domain.FilterSet) {
	e.state.Filters = next
	e.state.ActiveFilters = filters.DeriveChips(next)
	e.state.CurrentPage = 1
	e.dispatchLocked()
}

// dispatchQueued runs a debounced query fetch unless a newer query was typed
// or an immediate dispatch already covered it
func (e *Engine) dispatchQueued(seq uint64) {
	e.mu.Lock()
	if !e.queued || seq != e.querySeq {
		e.mu.Unlock()
		return
	}
	e.dispatchLocked()
}

// dispatchLocked issues a new token for the current inputs and releases mu.
// Issuing supersedes every earlier fetch and any queued query, including
// when the new mode is idle.
func (e *Engine) dispatchLocked() {
	if e.ctx.Err() != nil {
		e.mu.Unlock()
		return
	}
	if e.queued {
		e.queued = false
		e.debouncer.Cancel()
	}

	e.token++
	token := e.token
	plan := PlanFetch(e.state.Query, e.state.Filters, e.state.CurrentPage, e.cfg, e.deps.Now())
	e.state.Mode = plan.Mode
	e.state.Error = nil

	if plan.Mode == domain.ModeIdle {
		e.state.Loading = false
		e.state.Results = []domain.NormalizedCourse{}
		e.state.TotalResults = 0
		e.state.TotalPages = 0
		e.state.CurrentPage = 1
		e.state.PageWindow = []int{}

		if e.sections != nil && e.sections.NeedsLoad() {
			e.goLocked(func() { e.sections.LoadAll(e.ctx) })
		}
		e.settleLocked()
		e.publishLocked()
		return
	}

	e.state.Loading = true
	e.goLocked(func() { e.run(token, plan) })

	e.deps.Metrics.FetchDispatched(plan.Mode)
	e.logDebug("Dispatching fetch", map[string]interface{}{
		"token": token,
		"mode":  string(plan.Mode),
		"page":  plan.Request.Page,
		"query": plan.Request.Search,
	})
	e.publishLocked()
}

// goLocked runs fn on a tracked goroutine
func (e *Engine) goLocked(fn func()) {
	e.running++
	e.busyLocked()
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer e.finish()
		fn()
	}()
}

func (e *Engine) finish() {
	e.mu.Lock()
	e.running--
	e.settleLocked()
	e.mu.Unlock()
}

func (e *Engine) busyLocked() {
	if e.done == nil {
		e.done = make(chan struct{})
	}
}

func (e *Engine) settleLocked() {
	if e.done != nil && !e.queued && e.running == 0 {
		close(e.done)
		e.done = nil
	}
}

func (e *Engine) run(token uint64, plan Plan) {
	resp, err := e.deps.Catalog.ListCourses(e.ctx, plan.Request)
	if e.ctx.Err() != nil {
		return
	}

	var courses []domain.NormalizedCourse
	if err == nil {
		var dropped int
		courses, dropped = normalize.Batch(resp.Courses, e.deps.Now(), e.deps.Logger)
		if dropped > 0 {
			e.deps.Metrics.ItemsDropped(dropped)
		}
	}

	e.mu.Lock()
	if token != e.token {
		e.mu.Unlock()
		e.deps.Metrics.FetchDiscarded(plan.Mode)
		e.logDebug("Discarding stale response", map[string]interface{}{
			"token":  token,
			"latest": e.currentToken(),
			"mode":   string(plan.Mode),
		})
		return
	}

	e.state.Loading = false
	if err != nil {
		e.commitFailureLocked(err)
		e.publishLocked()
		e.deps.Metrics.FetchFailed(plan.Mode, coreerrors.Kind(err))
		if e.deps.Logger != nil {
			e.deps.Logger.Error("Course fetch failed", map[string]interface{}{
				"token": token,
				"mode":  string(plan.Mode),
				"kind":  coreerrors.Kind(err),
				"error": err.Error(),
			})
		}
		return
	}

	e.commitSuccessLocked(plan, resp, courses)
	e.publishLocked()
}

func (e *Engine) commitFailureLocked(err error) {
	msg := coreerrors.UserMessage(err)
	e.state.Error = &msg
	e.state.Results = []domain.NormalizedCourse{}
	e.state.TotalResults = 0
	e.state.TotalPages = 0
	e.state.PageWindow = []int{}
}

func (e *Engine) commitSuccessLocked(plan Plan, resp *domain.ListResponse, courses []domain.NormalizedCourse) {
	if courses == nil {
		courses = []domain.NormalizedCourse{}
	}
	e.state.Results = courses
	e.state.Facets = filters.Options(resp.Facets)

	if plan.Mode == domain.ModeLatestFiltered {
		e.state.TotalResults = resp.Total
		if e.state.TotalResults < len(courses) {
			e.state.TotalResults = len(courses)
		}
		e.state.TotalPages = 1
		e.state.CurrentPage = 1
		e.state.PageWindow = []int{}
		return
	}

	e.state.TotalResults = resp.Total
	e.state.TotalPages = pagination.TotalPages(resp.Total, plan.Request.Limit, plan.Request.Page, len(resp.Courses))
	e.state.PageWindow = pagination.Window(e.state.CurrentPage, e.state.TotalPages)
}

// publishLocked snapshots state, releases mu and delivers to listeners.
// pubMu is taken before mu is released so deliveries keep mutation order.
func (e *Engine) publishLocked() {
	snap := e.snapshotLocked()
	listeners := make([]Listener, 0, len(e.listeners))
	for _, l := range e.listeners {
		listeners = append(listeners, l)
	}
	e.pubMu.Lock()
	e.mu.Unlock()
	defer e.pubMu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

func (e *Engine) snapshotLocked() domain.SearchState {
	var out domain.SearchState
	if err := copier.CopyWithOption(&out, &e.state, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which identical types never hit
		out = e.state
	}
	return out
}

func (e *Engine) currentToken() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.token
}

func (e *Engine) logDebug(msg string, fields map[string]interface{}) {
	if e.deps.Logger != nil {
		e.deps.Logger.Debug(msg, fields)
	}
}

type noopMetrics struct{}

func (noopMetrics) FetchDispatched(domain.SearchMode)     {}
func (noopMetrics) FetchDiscarded(domain.SearchMode)      {}
func (noopMetrics) FetchFailed(domain.SearchMode, string) {}
func (noopMetrics) ItemsDropped(int)                      {}
func (noopMetrics) SectionFailed(domain.SectionKey)       {}
