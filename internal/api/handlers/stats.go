package handlers

import (
	"net/http"

	"github.com/rmendes/imobi/internal/store"
)

// StatsHandler handles GET /estatisticas.
type StatsHandler struct {
	store *store.GORMStore
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(s *store.GORMStore) *StatsHandler {
	return &StatsHandler{store: s}
}

// Get returns the caller's record counts.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	stats, err := h.store.GetStats(r.Context(), owner)
	if err != nil {
		writeStoreError(w, err, "failed to compute statistics")
		return
	}

	WriteData(w, stats)
}
