package handlers

import (
	"context"
	"net/http"
	"time"
)

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

// Pinger checks database connectivity.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body of /health and /ready
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHealthHandler returns the liveness probe. Always 200.
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "ok",
			Version:   version,
			Timestamp: time.Now(),
		})
	}
}

// NewReadyHandler returns the readiness probe: 200 when the database answers, 503 otherwise.
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /ready [get]
func NewReadyHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:    "down",
				Timestamp: time.Now(),
			})
			return
		}

		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		})
	}
}
