package handler

import (
	"log/slog"
	"net/http"

	"github.com/osse101/BrandishItemSearch/internal/session"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessChecker reports the catalog load status
type ReadinessChecker interface {
	Status() session.Status
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz provides a readiness check based on the catalog load
// @Summary Readiness check
// @Description Returns OK once the catalog has loaded; 503 before the first load or after a failed one
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := checker.Status()
		if !status.Loaded {
			message := ErrMsgCatalogNotLoaded
			if status.Error != "" {
				message = status.Error
			}
			slog.Error(LogMsgReadinessFailed, "attempted", status.Attempted, "error", status.Error)

			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: message,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}
