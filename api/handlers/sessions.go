// ABOUTME: Search session handlers for the Huma API
// ABOUTME: Each session wraps one search engine; mutations persist inputs and return the new state

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"course-search-api/api/dto/mappers"
	"course-search-api/api/dto/requests"
	"course-search-api/api/dto/responses"
	"course-search-api/core/domain"
	"course-search-api/core/session"
)

// SessionStore defines the session operations the handlers need
type SessionStore interface {
	Create(ctx context.Context) (*session.Session, error)
	Get(ctx context.Context, id string) (*session.Session, error)
	Save(ctx context.Context, s *session.Session) error
	Delete(ctx context.Context, id string) error
}

// SessionHandler handles search session HTTP requests
type SessionHandler struct {
	store SessionStore
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(store SessionStore) *SessionHandler {
	return &SessionHandler{store: store}
}

// RegisterRoutes registers all session routes
func (h *SessionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "createSession",
		Method:        http.MethodPost,
		Path:          "/v1/sessions",
		Summary:       "Create a search session",
		Description:   "Starts an idle search session and loads curated sections",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateSession)

	huma.Register(api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/v1/sessions/{id}",
		Summary:     "Get session state",
		Description: "Returns the current search state, optionally waiting for in-flight fetches to settle",
		Tags:        []string{"Sessions"},
	}, h.GetSession)

	huma.Register(api, huma.Operation{
		OperationID: "deleteSession",
		Method:      http.MethodDelete,
		Path:        "/v1/sessions/{id}",
		Summary:     "Delete a search session",
		Tags:        []string{"Sessions"},
	}, h.DeleteSession)

	huma.Register(api, huma.Operation{
		OperationID: "updateQuery",
		Method:      http.MethodPut,
		Path:        "/v1/sessions/{id}/query",
		Summary:     "Update the search query",
		Description: "Records the query text; the fetch runs once typing goes quiet unless immediate is set",
		Tags:        []string{"Search"},
	}, h.UpdateQuery)

	huma.Register(api, huma.Operation{
		OperationID: "applySearch",
		Method:      http.MethodPost,
		Path:        "/v1/sessions/{id}/apply",
		Summary:     "Fetch now",
		Description: "Fetches immediately for the current query and filters",
		Tags:        []string{"Search"},
	}, h.Apply)

	huma.Register(api, huma.Operation{
		OperationID: "toggleFilter",
		Method:      http.MethodPost,
		Path:        "/v1/sessions/{id}/filters",
		Summary:     "Toggle a filter value",
		Description: "Selects or deselects one filter value, resets to page 1 and fetches",
		Tags:        []string{"Filters"},
	}, h.ToggleFilter)

	huma.Register(api, huma.Operation{
		OperationID: "clearFilters",
		Method:      http.MethodDelete,
		Path:        "/v1/sessions/{id}/filters",
		Summary:     "Clear all filters",
		Description: "Resets every filter dimension in one step; the query is kept",
		Tags:        []string{"Filters"},
	}, h.ClearFilters)

	huma.Register(api, huma.Operation{
		OperationID: "removeChip",
		Method:      http.MethodPost,
		Path:        "/v1/sessions/{id}/chips/remove",
		Summary:     "Remove an active filter chip",
		Tags:        []string{"Filters"},
	}, h.RemoveChip)

	huma.Register(api, huma.Operation{
		OperationID: "goToPage",
		Method:      http.MethodPut,
		Path:        "/v1/sessions/{id}/page",
		Summary:     "Navigate to a results page",
		Description: "Clamps the page to the known range, signals scroll-to-top and fetches",
		Tags:        []string{"Search"},
	}, h.GoToPage)

	huma.Register(api, huma.Operation{
		OperationID: "getSections",
		Method:      http.MethodGet,
		Path:        "/v1/sessions/{id}/sections",
		Summary:     "Get curated sections",
		Description: "Returns trending, most viewed, recommended and new course lists",
		Tags:        []string{"Sections"},
	}, h.GetSections)

	huma.Register(api, huma.Operation{
		OperationID: "getFilterOptions",
		Method:      http.MethodGet,
		Path:        "/v1/filter-options",
		Summary:     "List filter options",
		Description: "Returns the fixed content type, duration, date, sort and category options",
		Tags:        []string{"Filters"},
	}, h.GetFilterOptions)
}

// SessionIDInput identifies a session
type SessionIDInput struct {
	ID string `path:"id" doc:"Session identifier"`
}

// SettleInput identifies a session and how long to wait for fetches
type SettleInput struct {
	ID     string `path:"id" doc:"Session identifier"`
	WaitMs int    `query:"waitMs" minimum:"0" maximum:"10000" default:"0" doc:"Wait up to this many milliseconds for in-flight fetches"`
}

// SessionOutput returns a session's state
type SessionOutput struct {
	Body responses.SessionResponse
}

// UpdateQueryInput defines the input for the UpdateQuery operation
type UpdateQueryInput struct {
	ID   string `path:"id"`
	Body requests.QueryRequest
}

// FilterInput defines the input for filter and chip operations
type FilterInput struct {
	ID   string `path:"id"`
	Body requests.FilterRequest
}

// PageInput defines the input for the GoToPage operation
type PageInput struct {
	ID   string `path:"id"`
	Body requests.PageRequest
}

// SectionsOutput returns curated sections
type SectionsOutput struct {
	Body responses.SectionsResponse
}

// FilterOptionsOutput returns the filter catalogs
type FilterOptionsOutput struct {
	Body responses.FilterOptionsResponse
}

// CreateSession handles POST /v1/sessions
func (h *SessionHandler) CreateSession(ctx context.Context, input *struct{}) (*SessionOutput, error) {
	s, err := h.store.Create(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return toSessionOutput(s), nil
}

// GetSession handles GET /v1/sessions/{id}
func (h *SessionHandler) GetSession(ctx context.Context, input *SettleInput) (*SessionOutput, error) {
	s, err := h.store.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	settle(ctx, s, time.Duration(input.WaitMs)*time.Millisecond)
	return toSessionOutput(s), nil
}

// DeleteSession handles DELETE /v1/sessions/{id}
func (h *SessionHandler) DeleteSession(ctx context.Context, input *SessionIDInput) (*struct{}, error) {
	if err := h.store.Delete(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}

// UpdateQuery handles PUT /v1/sessions/{id}/query
func (h *SessionHandler) UpdateQuery(ctx context.Context, input *UpdateQueryInput) (*SessionOutput, error) {
	return h.mutate(ctx, input.ID, func(s *session.Session) error {
		s.Engine.SetQuery(input.Body.Query)
		if input.Body.Immediate {
			s.Engine.Apply()
		}
		return nil
	})
}

// Apply handles POST /v1/sessions/{id}/apply
func (h *SessionHandler) Apply(ctx context.Context, input *SessionIDInput) (*SessionOutput, error) {
	return h.mutate(ctx, input.ID, func(s *session.Session) error {
		s.Engine.Apply()
		return nil
	})
}

// ToggleFilter handles POST /v1/sessions/{id}/filters
func (h *SessionHandler) ToggleFilter(ctx context.Context, input *FilterInput) (*SessionOutput, error) {
	input.Body.ApplyDefaults()
	return h.mutate(ctx, input.ID, func(s *session.Session) error {
		return s.Engine.ToggleFilter(domain.Dimension(input.Body.Dimension), input.Body.Value)
	})
}

// ClearFilters handles DELETE /v1/sessions/{id}/filters
func (h *SessionHandler) ClearFilters(ctx context.Context, input *SessionIDInput) (*SessionOutput, error) {
	return h.mutate(ctx, input.ID, func(s *session.Session) error {
		s.Engine.ClearAll()
		return nil
	})
}

// RemoveChip handles POST /v1/sessions/{id}/chips/remove
func (h *SessionHandler) RemoveChip(ctx context.Context, input *FilterInput) (*SessionOutput, error) {
	input.Body.ApplyDefaults()
	return h.mutate(ctx, input.ID, func(s *session.Session) error {
		s.Engine.RemoveChip(domain.ActiveFilterChip{
			Dimension: domain.Dimension(input.Body.Dimension),
			Value:     input.Body.Value,
		})
		return nil
	})
}

// GoToPage handles PUT /v1/sessions/{id}/page
func (h *SessionHandler) GoToPage(ctx context.Context, input *PageInput) (*SessionOutput, error) {
	return h.mutate(ctx, input.ID, func(s *session.Session) error {
		s.Engine.GoToPage(input.Body.Page)
		return nil
	})
}

// GetSections handles GET /v1/sessions/{id}/sections
func (h *SessionHandler) GetSections(ctx context.Context, input *SettleInput) (*SectionsOutput, error) {
	s, err := h.store.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	settle(ctx, s, time.Duration(input.WaitMs)*time.Millisecond)

	var sections []domain.Section
	if s.Sections != nil {
		sections = s.Sections.Sections()
	}
	visible := s.Sections != nil && s.Engine.State().Mode == domain.ModeIdle

	return &SectionsOutput{Body: mappers.ToSectionsResponse(s.ID, visible, sections)}, nil
}

// GetFilterOptions handles GET /v1/filter-options
func (h *SessionHandler) GetFilterOptions(ctx context.Context, input *struct{}) (*FilterOptionsOutput, error) {
	return &FilterOptionsOutput{Body: mappers.ToFilterOptionsResponse()}, nil
}

func (h *SessionHandler) mutate(ctx context.Context, id string, fn func(s *session.Session) error) (*SessionOutput, error) {
	s, err := h.store.Get(ctx, id)
	if err != nil {
		return nil, toHumaError(err)
	}

	if err := fn(s); err != nil {
		return nil, toHumaError(err)
	}

	if err := h.store.Save(ctx, s); err != nil {
		return nil, toHumaError(err)
	}

	return toSessionOutput(s), nil
}

// settle waits up to d for the session's queued and in-flight fetches to resolve
func settle(ctx context.Context, s *session.Session, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-s.Engine.Settled():
	case <-timer.C:
	case <-ctx.Done():
	}
}

func toSessionOutput(s *session.Session) *SessionOutput {
	return &SessionOutput{
		Body: responses.SessionResponse{
			ID:        s.ID,
			ScrollSeq: s.Viewport.Seq(),
			State:     mappers.ToSearchStateResponse(s.Engine.State()),
		},
	}
}
