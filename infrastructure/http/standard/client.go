// ABOUTME: Standard HTTP client implementation with timeout support and request logging
// ABOUTME: Sends each request exactly once; recovery is left to the user re-triggering a search

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"course-search-api/core/interfaces"
)

const userAgent = "CourseSearchAPI/1.0"

// Option configures a StandardHTTPClient
type Option func(*StandardHTTPClient)

// WithLogger logs every round trip at debug level and failures at warn
func WithLogger(logger interfaces.Logger) Option {
	return func(c *StandardHTTPClient) {
		c.client.Transport = &loggingTransport{next: c.client.Transport, logger: logger}
	}
}

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: http.DefaultTransport,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

// Post performs an HTTP POST request
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *StandardHTTPClient) do(req *http.Request) (interfaces.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// loggingTransport records method, URL, status and latency
type loggingTransport struct {
	next   http.RoundTripper
	logger interfaces.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	fields := map[string]interface{}{
		"method":      req.Method,
		"url":         req.URL.Redacted(),
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		fields["error"] = err.Error()
		t.logger.Warn("Upstream request failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	t.logger.Debug("Upstream request", fields)
	return resp, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
