package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-search-api/api/dto/responses"
	"course-search-api/core/domain"
	"course-search-api/core/interfaces"
	"course-search-api/core/search"
	"course-search-api/core/sections"
	"course-search-api/core/session"
	"course-search-api/infrastructure/cache/memory"
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
	return &domain.ListResponse{
		Courses: []domain.RawCourse{
			{"_id": "c-1", "course_title": "First"},
			{"_id": "c-2", "course_title": "Second"},
		},
		Total: 60,
	}, nil
}

func (m *mockCatalog) last() domain.ListRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[len(m.requests)-1]
}

func newSessionAPI(t *testing.T, cat *mockCatalog, withSections bool) humatest.TestAPI {
	t.Helper()
	return newSessionAPIWithDebounce(t, cat, withSections, 0)
}

func newSessionAPIWithDebounce(t *testing.T, cat *mockCatalog, withSections bool, debounce time.Duration) humatest.TestAPI {
	t.Helper()

	deps := interfaces.Dependencies{
		Cache:   memory.NewMemoryCache(),
		Catalog: cat,
		Clock:   func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) },
	}

	build := func(viewport interfaces.Viewport) (*search.Engine, *sections.Loader) {
		cfg := search.DefaultConfig()
		cfg.Debounce = debounce
		opts := []search.Option{search.WithViewport(viewport)}

		var loader *sections.Loader
		if withSections {
			loader = sections.NewLoader(deps, sections.DefaultPresets(nil), sections.DefaultSize, cfg.Status)
			opts = append(opts, search.WithSections(loader))
		}
		return search.NewEngine(deps, cfg, opts...), loader
	}

	manager := session.NewManager(deps, build, time.Hour)
	t.Cleanup(manager.Close)

	_, api := humatest.New(t)
	NewSessionHandler(manager).RegisterRoutes(api)
	return api
}

func decodeSession(t *testing.T, body []byte) responses.SessionResponse {
	t.Helper()
	var out responses.SessionResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func createSession(t *testing.T, api humatest.TestAPI) responses.SessionResponse {
	t.Helper()
	resp := api.Post("/v1/sessions")
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	return decodeSession(t, resp.Body.Bytes())
}

func settled(t *testing.T, api humatest.TestAPI, id string) responses.SessionResponse {
	t.Helper()
	resp := api.Get("/v1/sessions/" + id + "?waitMs=2000")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	return decodeSession(t, resp.Body.Bytes())
}

func TestSessionHandler_RegisterRoutes(t *testing.T) {
	api := newSessionAPI(t, &mockCatalog{}, true)
	openapi := api.OpenAPI()

	require.NotNil(t, openapi.Paths)
	assert.NotNil(t, openapi.Paths["/v1/sessions"].Post)
	assert.NotNil(t, openapi.Paths["/v1/sessions/{id}"].Get)
	assert.NotNil(t, openapi.Paths["/v1/sessions/{id}"].Delete)
	assert.NotNil(t, openapi.Paths["/v1/sessions/{id}/query"].Put)
	assert.NotNil(t, openapi.Paths["/v1/sessions/{id}/apply"].Post)
	assert.NotNil(t, openapi.Paths["/v1/sessions/{id}/filters"].Post)
	assert.NotNil(t, openapi.Paths["/v1/sessions/{id}/filters"].Delete)
	assert.NotNil(t, openapi.Paths["/v1/sessions/{id}/chips/remove"].Post)
	assert.NotNil(t, openapi.Paths["/v1/sessions/{id}/page"].Put)
	assert.NotNil(t, openapi.Paths["/v1/sessions/{id}/sections"].Get)
	assert.NotNil(t, openapi.Paths["/v1/filter-options"].Get)
}

func TestSessionHandler_CreateIsIdle(t *testing.T) {
	api := newSessionAPI(t, &mockCatalog{}, true)

	created := createSession(t, api)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "idle", created.State.Mode)
	assert.Empty(t, created.State.Results)
	assert.False(t, created.State.HasActiveFilters)
	assert.Equal(t, "all", created.State.Filters.ContentType)
}

func TestSessionHandler_GetUnknownSession(t *testing.T) {
	api := newSessionAPI(t, &mockCatalog{}, false)

	resp := api.Get("/v1/sessions/6f1c2d1e-8a41-4f0e-9d55-3f1b8f4b2a10")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSessionHandler_ImmediateQuerySearches(t *testing.T) {
	cat := &mockCatalog{}
	api := newSessionAPI(t, cat, false)
	created := createSession(t, api)

	resp := api.Put("/v1/sessions/"+created.ID+"/query", map[string]interface{}{
		"query":     "golang",
		"immediate": true,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	state := settled(t, api, created.ID).State
	assert.Equal(t, "search", state.Mode)
	assert.Equal(t, "golang", state.Query)
	assert.Len(t, state.Results, 2)
	assert.Equal(t, "c-1", state.Results[0].ID)
	assert.Equal(t, 60, state.TotalResults)
	assert.Equal(t, 5, state.TotalPages)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, state.PageWindow)
	assert.False(t, state.Loading)

	req := cat.last()
	assert.Equal(t, "golang", req.Search)
	assert.Equal(t, 12, req.Limit)
}

func TestSessionHandler_ToggleFilterUsesLatestMode(t *testing.T) {
	cat := &mockCatalog{}
	api := newSessionAPI(t, cat, false)
	created := createSession(t, api)

	resp := api.Post("/v1/sessions/"+created.ID+"/filters", map[string]interface{}{
		"dimension": "category",
		"value":     "Programming",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	state := settled(t, api, created.ID).State
	assert.Equal(t, "latest-filtered", state.Mode)
	assert.Equal(t, []string{"Programming"}, state.Filters.Categories)
	require.Len(t, state.ActiveFilters, 1)
	assert.Equal(t, "category", state.ActiveFilters[0].Dimension)
	assert.True(t, state.HasActiveFilters)

	req := cat.last()
	assert.Equal(t, 5, req.Limit)
	assert.Equal(t, "newest", req.Filters.SortBy)
}

func TestSessionHandler_ToggleFilterRejectsUnknownValue(t *testing.T) {
	api := newSessionAPI(t, &mockCatalog{}, false)
	created := createSession(t, api)

	resp := api.Post("/v1/sessions/"+created.ID+"/filters", map[string]interface{}{
		"dimension": "duration",
		"value":     "forever",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = api.Post("/v1/sessions/"+created.ID+"/filters", map[string]interface{}{
		"dimension": "colour",
		"value":     "red",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestSessionHandler_RemoveChipAndClearAll(t *testing.T) {
	api := newSessionAPI(t, &mockCatalog{}, false)
	created := createSession(t, api)
	path := "/v1/sessions/" + created.ID

	api.Post(path+"/filters", map[string]interface{}{"dimension": "category", "value": "Programming"})
	api.Post(path+"/filters", map[string]interface{}{"dimension": "duration", "value": "short"})
	api.Post(path+"/filters", map[string]interface{}{"dimension": "date", "value": "week"})

	resp := api.Post(path+"/chips/remove", map[string]interface{}{"dimension": "duration", "value": "short"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	state := settled(t, api, created.ID).State
	assert.Empty(t, state.Filters.DurationBucket)
	assert.Equal(t, "week", state.Filters.DateBucket)
	assert.Len(t, state.ActiveFilters, 2)

	resp = api.Delete(path + "/filters")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	state = settled(t, api, created.ID).State
	assert.Empty(t, state.ActiveFilters)
	assert.False(t, state.HasActiveFilters)
	assert.Equal(t, "idle", state.Mode)
}

func TestSessionHandler_GoToPageSignalsScroll(t *testing.T) {
	cat := &mockCatalog{}
	api := newSessionAPI(t, cat, false)
	created := createSession(t, api)
	path := "/v1/sessions/" + created.ID

	api.Put(path+"/query", map[string]interface{}{"query": "go", "immediate": true})
	settled(t, api, created.ID)

	resp := api.Put(path+"/page", map[string]interface{}{"page": 3})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, int64(1), decodeSession(t, resp.Body.Bytes()).ScrollSeq)

	state := settled(t, api, created.ID).State
	assert.Equal(t, 3, state.CurrentPage)
	assert.Equal(t, 3, cat.last().Page)

	// Out-of-range pages are clamped to the last page
	api.Put(path+"/page", map[string]interface{}{"page": 99})
	out := settled(t, api, created.ID)
	assert.Equal(t, 5, out.State.CurrentPage)
	assert.Equal(t, int64(2), out.ScrollSeq)
}

func TestSessionHandler_GoToPageRejectsZero(t *testing.T) {
	api := newSessionAPI(t, &mockCatalog{}, false)
	created := createSession(t, api)

	resp := api.Put("/v1/sessions/"+created.ID+"/page", map[string]interface{}{"page": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestSessionHandler_FailureShowsMessage(t *testing.T) {
	cat := &mockCatalog{
		listFunc: func(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error) {
			return nil, errors.New("connection reset")
		},
	}
	api := newSessionAPI(t, cat, false)
	created := createSession(t, api)

	api.Post("/v1/sessions/"+created.ID+"/filters", map[string]interface{}{"dimension": "category", "value": "Programming"})

	state := settled(t, api, created.ID).State
	require.NotNil(t, state.Error)
	assert.Equal(t, "Failed to fetch results: connection reset", *state.Error)
	assert.Empty(t, state.Results)
}

func TestSessionHandler_Sections(t *testing.T) {
	cat := &mockCatalog{}
	api := newSessionAPI(t, cat, true)
	created := createSession(t, api)

	resp := api.Get("/v1/sessions/" + created.ID + "/sections?waitMs=2000")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var out responses.SectionsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.True(t, out.Visible)
	require.Len(t, out.Sections, 4)
	assert.Equal(t, "trending", out.Sections[0].Key)
	for _, sec := range out.Sections {
		assert.True(t, sec.Loaded, sec.Key)
		assert.Len(t, sec.Courses, 2)
	}

	api.Put("/v1/sessions/"+created.ID+"/query", map[string]interface{}{"query": "go", "immediate": true})
	resp = api.Get("/v1/sessions/" + created.ID + "/sections")
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.False(t, out.Visible)
}

func TestSessionHandler_SectionsDisabled(t *testing.T) {
	api := newSessionAPI(t, &mockCatalog{}, false)
	created := createSession(t, api)

	resp := api.Get("/v1/sessions/" + created.ID + "/sections")
	require.Equal(t, http.StatusOK, resp.Code)

	var out responses.SectionsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.False(t, out.Visible)
	assert.Empty(t, out.Sections)
}

func TestSessionHandler_Delete(t *testing.T) {
	api := newSessionAPI(t, &mockCatalog{}, false)
	created := createSession(t, api)

	resp := api.Delete("/v1/sessions/" + created.ID)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = api.Get("/v1/sessions/" + created.ID)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSessionHandler_FilterOptions(t *testing.T) {
	api := newSessionAPI(t, &mockCatalog{}, false)

	resp := api.Get("/v1/filter-options")
	require.Equal(t, http.StatusOK, resp.Code)

	var out responses.FilterOptionsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Len(t, out.ContentTypes, 4)
	assert.Equal(t, "Under 4 weeks", out.DurationBuckets[0].Label)
	assert.Contains(t, out.Categories, "Programming")
}

func TestSessionHandler_GetWaitsForDebouncedQuery(t *testing.T) {
	cat := &mockCatalog{}
	api := newSessionAPIWithDebounce(t, cat, false, search.DefaultConfig().Debounce)
	created := createSession(t, api)

	resp := api.Put("/v1/sessions/"+created.ID+"/query", map[string]interface{}{
		"query": "react",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	typed := decodeSession(t, resp.Body.Bytes())
	assert.Equal(t, "react", typed.State.Query)
	assert.Equal(t, "idle", typed.State.Mode)

	state := settled(t, api, created.ID).State
	assert.Equal(t, "search", state.Mode)
	assert.Len(t, state.Results, 2)
	assert.False(t, state.Loading)
	assert.Equal(t, "react", cat.last().Search)
}
