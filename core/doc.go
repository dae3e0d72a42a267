// Package core contains the business logic for the Course Search API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure models (RawCourse, NormalizedCourse, FilterSet, SearchState, Section)
// - catalog: Client for the paginated course-listing endpoint
// - normalize: Maps raw records of any schema generation to NormalizedCourse
// - filters: FilterSet transitions, chip derivation and option catalogs
// - pagination: Page window, clamping and total page fallback
// - search: Fetch planning and the Engine that owns one search view
// - sections: Curated course lists shown while a view is idle
// - session: Live engines per client session with persisted inputs
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, metrics)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Only the most recently issued fetch may change what the user sees
//
// # Usage Example
//
//	import (
//	    "course-search-api/core/catalog"
//	    "course-search-api/core/domain"
//	    "course-search-api/core/interfaces"
//	    "course-search-api/core/search"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//	deps.Catalog = catalog.NewClient("https://example.com/api/courses", deps)
//
//	engine := search.NewEngine(deps, search.DefaultConfig())
//	unsubscribe := engine.Subscribe(func(s domain.SearchState) {
//	    render(s)
//	})
//	engine.Start()
//	engine.SetQuery("golang")
package core
