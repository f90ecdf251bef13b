package handlers

import (
	"net/http"
	"time"

	"github.com/rmendes/imobi/internal/store"
)

// HealthHandler serves the service banner and probe endpoints.
type HealthHandler struct {
	store   *store.GORMStore
	version string
	started time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s *store.GORMStore, version string) *HealthHandler {
	return &HealthHandler{store: s, version: version, started: time.Now()}
}

// Root handles GET / with a service banner.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	WriteMessage(w, "API Sistema Imobiliaria "+h.version)
}

// Live handles GET /health. The process is up; nothing else is checked.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	WriteData(w, map[string]any{
		"status":  "healthy",
		"version": h.version,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}

// Ready handles GET /health/ready. It pings the database so load balancers
// only route traffic once storage is reachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := h.store.DB().DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Message: "database unavailable",
		})
		return
	}

	WriteData(w, map[string]any{"status": "ready"})
}
