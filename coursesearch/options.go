// ABOUTME: Configuration options for the course search library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package coursesearch

import (
	"time"

	"course-search-api/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics sets a metrics recorder
func WithMetrics(metrics interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = metrics
		return nil
	}
}

// WithViewport sets the surface scrolled to the top on page change
func WithViewport(v interfaces.Viewport) Option {
	return func(c *Config) error {
		c.Viewport = v
		return nil
	}
}

// WithDebounce sets the quiet period before a query-driven fetch
func WithDebounce(d time.Duration) Option {
	return func(c *Config) error {
		if d < 0 {
			return NewError(ErrorTypeConfiguration, "debounce cannot be negative")
		}
		c.Search.Debounce = d
		return nil
	}
}

// WithPageSizes sets the search and latest-filtered page sizes
func WithPageSizes(search, latest int) Option {
	return func(c *Config) error {
		if search < 1 || latest < 1 {
			return NewError(ErrorTypeConfiguration, "page sizes must be at least 1")
		}
		c.Search.SearchPageSize = search
		c.Search.LatestPageSize = latest
		return nil
	}
}

// WithStatus restricts listings to a course status; empty sends none
func WithStatus(status string) Option {
	return func(c *Config) error {
		c.Search.Status = status
		return nil
	}
}

// WithSections enables or disables curated sections
func WithSections(enabled bool) Option {
	return func(c *Config) error {
		c.SectionsEnabled = enabled
		return nil
	}
}

// WithSectionSize sets how many courses each curated section shows
func WithSectionSize(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewError(ErrorTypeConfiguration, "section size must be at least 1")
		}
		c.SectionSize = n
		return nil
	}
}

// WithInterests narrows the recommended section to these categories
func WithInterests(categories ...string) Option {
	return func(c *Config) error {
		c.Interests = append([]string(nil), categories...)
		return nil
	}
}

// WithClock sets the time source used for date ranges and labels
func WithClock(now func() time.Time) Option {
	return func(c *Config) error {
		c.Clock = now
		return nil
	}
}
