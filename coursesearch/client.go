// ABOUTME: Main client for the course search library
// ABOUTME: Runs one search view in-process without the HTTP gateway

package coursesearch

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"course-search-api/core/catalog"
	"course-search-api/core/interfaces"
	"course-search-api/core/search"
	"course-search-api/core/sections"
)

// Config holds the configuration for the client
type Config struct {
	HTTPClient interfaces.HTTPClient
	Logger     interfaces.Logger
	Metrics    interfaces.Metrics
	Viewport   interfaces.Viewport

	// Search tunes the engine
	Search search.Config

	// SectionsEnabled loads curated sections while idle
	SectionsEnabled bool
	SectionSize     int
	Interests       []string

	Clock func() time.Time
}

// Client is one in-process search view
type Client struct {
	engine   *search.Engine
	sections *sections.Loader
	closed   atomic.Bool
}

// New creates a client for the course-listing endpoint at baseURL.
// Call Start to run the initial dispatch.
func New(baseURL string, options ...Option) (*Client, error) {
	if u, err := url.Parse(baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, NewError(ErrorTypeConfiguration, "base URL must be an absolute URL")
	}

	config := defaultConfig()
	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
		Metrics:    config.Metrics,
		Clock:      config.Clock,
	}
	deps.Catalog = catalog.NewClient(baseURL, deps)

	c := &Client{}
	opts := []search.Option{}
	if config.Viewport != nil {
		opts = append(opts, search.WithViewport(config.Viewport))
	}
	if config.SectionsEnabled {
		c.sections = sections.NewLoader(deps, sections.DefaultPresets(config.Interests), config.SectionSize, config.Search.Status)
		opts = append(opts, search.WithSections(c.sections))
	}
	c.engine = search.NewEngine(deps, config.Search, opts...)

	return c, nil
}

// Start dispatches for the initial (empty) inputs
func (c *Client) Start() error {
	if c.closed.Load() {
		return ErrClientClosed
	}
	c.engine.Start()
	return nil
}

// Close cancels in-flight fetches and waits for them
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.engine.Close()
	return nil
}

// State returns the current search state
func (c *Client) State() State {
	return c.engine.State()
}

// Subscribe delivers every state change to fn until the returned func is called.
// fn must not call mutating Client methods synchronously.
func (c *Client) Subscribe(fn func(State)) func() {
	return c.engine.Subscribe(search.Listener(fn))
}

// Wait blocks until queued and in-flight fetches resolve
func (c *Client) Wait() {
	c.engine.Wait()
}

// WaitContext blocks until queued and in-flight fetches resolve or ctx is done
func (c *Client) WaitContext(ctx context.Context) error {
	select {
	case <-c.engine.Settled():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SetQuery records the query text; the fetch runs once typing goes quiet
func (c *Client) SetQuery(query string) {
	c.engine.SetQuery(query)
}

// Apply fetches immediately for the current inputs
func (c *Client) Apply() {
	c.engine.Apply()
}

// ToggleFilter selects or deselects one filter value
func (c *Client) ToggleFilter(dim Dimension, value string) error {
	return wrapError(c.engine.ToggleFilter(dim, value))
}

// RemoveChip clears the filter value behind chip
func (c *Client) RemoveChip(chip Chip) {
	c.engine.RemoveChip(chip)
}

// ClearAll resets every filter dimension
func (c *Client) ClearAll() {
	c.engine.ClearAll()
}

// GoToPage navigates to page, clamped to the known range
func (c *Client) GoToPage(page int) {
	c.engine.GoToPage(page)
}

// Sections returns the curated sections, or nil when disabled
func (c *Client) Sections() []Section {
	if c.sections == nil {
		return nil
	}
	return c.sections.Sections()
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		HTTPClient:      DefaultHTTPClient(),
		Logger:          DefaultLogger(),
		Search:          search.DefaultConfig(),
		SectionsEnabled: true,
		SectionSize:     sections.DefaultSize,
	}
}
