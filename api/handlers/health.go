// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports liveness and the number of live search sessions

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// SessionCounter reports how many sessions are live on this instance
type SessionCounter interface {
	Len() int
}

// HealthHandler handles health check requests
type HealthHandler struct {
	sessions SessionCounter
	started  time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(sessions SessionCounter) *HealthHandler {
	return &HealthHandler{sessions: sessions, started: time.Now()}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body struct {
		Status   string `json:"status" example:"ok"`
		Sessions int    `json:"sessions" doc:"Live sessions on this instance"`
		Uptime   string `json:"uptime"`
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{}
	out.Body.Status = "ok"
	if h.sessions != nil {
		out.Body.Sessions = h.sessions.Len()
	}
	out.Body.Uptime = time.Since(h.started).Round(time.Second).String()
	return out, nil
}
