// ABOUTME: Health check handler for liveness probes
// ABOUTME: Reports service status and uptime

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		startTime: time.Now(),
	}
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the health check response
type HealthOutput struct {
	Body struct {
		Status string `json:"status" doc:"Always 'ok' when the service is up"`
		Uptime string `json:"uptime" doc:"Time since the service started"`
	}
}

// Health handles the GET /healthz endpoint
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	output := &HealthOutput{}
	output.Body.Status = "ok"
	output.Body.Uptime = time.Since(h.startTime).Round(time.Second).String()
	return output, nil
}
