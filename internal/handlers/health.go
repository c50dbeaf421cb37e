package handlers

import (
	"net/http"
	"time"

	"gemini-chat/internal/models"
)

const version = "0.1.0"

type HealthHandler struct {
	model string
}

func NewHealthHandler(model string) *HealthHandler {
	return &HealthHandler{model: model}
}

// Health reports liveness. It never calls Gemini, so it costs no quota.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]models.Check{}
	status := "healthy"
	code := http.StatusOK

	if h.model == "" {
		checks["gemini"] = models.Check{Status: "fail", Message: "model not configured"}
		status = "degraded"
		code = http.StatusServiceUnavailable
	} else {
		checks["gemini"] = models.Check{Status: "pass"}
	}

	writeJSON(w, code, models.HealthResponse{
		Status:    status,
		Version:   version,
		Model:     h.model,
		Checks:    checks,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
