// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package coursesearch

import (
	"os"
	"time"

	"course-search-api/core/interfaces"
	httpInfra "course-search-api/infrastructure/http/standard"
	"course-search-api/infrastructure/logger/structured"
)

// DefaultTimeout bounds each catalog request
const DefaultTimeout = 10 * time.Second

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(DefaultTimeout)
}

// DefaultLogger creates a JSON logger that writes warnings and above to stderr
func DefaultLogger() interfaces.Logger {
	return structured.NewWithWriter(os.Stderr, "warn")
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}
