// Package handler serves the admin HTTP surface: liveness, readiness, and
// the Prometheus scrape endpoint mounted by the server.
package handler

import (
	"net/http"

	natsclient "github.com/snapshot-reflect/reflectbot/internal/nats"
	"github.com/snapshot-reflect/reflectbot/internal/store"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	pinger     store.Pinger
	natsClient *natsclient.Client
}

// NewHealthHandler creates a new health handler. natsClient may be nil when
// audit publishing is disabled; readiness then skips the NATS check.
func NewHealthHandler(pinger store.Pinger, natsClient *natsclient.Client) *HealthHandler {
	return &HealthHandler{
		pinger:     pinger,
		natsClient: natsClient,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "store not reachable")
			return
		}
	}
	if h.natsClient != nil && !h.natsClient.IsConnected() {
		writeError(w, http.StatusServiceUnavailable, "NATS not connected")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
