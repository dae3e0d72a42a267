// Package api provides the HTTP API layer for the Course Search service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Search Sessions
//
// Each client creates a session and drives it with small mutations. Every
// mutation returns the new state immediately, usually with loading set;
// GET /v1/sessions/{id}?waitMs=N waits for in-flight fetches to settle.
//
//	POST   /v1/sessions                    create an idle session
//	GET    /v1/sessions/{id}               current state
//	PUT    /v1/sessions/{id}/query         set query text (debounced)
//	POST   /v1/sessions/{id}/apply         fetch now
//	POST   /v1/sessions/{id}/filters       toggle one filter value
//	DELETE /v1/sessions/{id}/filters       clear all filters
//	POST   /v1/sessions/{id}/chips/remove  remove one active filter chip
//	PUT    /v1/sessions/{id}/page          go to page
//	GET    /v1/sessions/{id}/sections      curated sections
//	GET    /v1/filter-options              fixed filter catalogs
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type FilterRequest struct {
//	    Dimension string `json:"dimension" enum:"contentType,duration,date,category,sort,skillLevel,language,feature"`
//	    Value     string `json:"value" maxLength:"100"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "validation error on field 'duration': unsupported value 'forever'"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
