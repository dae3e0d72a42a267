// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

import "time"

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache persists session inputs for the gateway
	Cache Cache

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Catalog lists courses
	Catalog CourseCatalog

	// Metrics records engine activity
	Metrics Metrics

	// Clock returns the current time; defaults to time.Now
	Clock func() time.Time
}

// Now returns the current time from Clock, falling back to time.Now
func (d Dependencies) Now() time.Time {
	if d.Clock != nil {
		return d.Clock()
	}
	return time.Now()
}
