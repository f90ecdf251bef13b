package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Pagination defaults and bounds for list endpoints.
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// decodeJSONBody decodes a JSON request body into the provided pointer.
// Returns true if successful, false if decoding fails (error response is
// written automatically).
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		BadRequest(w, "invalid request body")
		return false
	}
	return true
}

// idParam parses the {id} route parameter. Returns false (response already
// written) when it is not a positive integer.
func idParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		BadRequest(w, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// pagination parses the page/limit query parameters, clamping them to sane
// bounds. Absent or invalid values fall back to page 1 / the default size.
func pagination(r *http.Request) (page, limit int) {
	page = 1
	limit = defaultPageSize

	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
		if limit > maxPageSize {
			limit = maxPageSize
		}
	}
	return page, limit
}

// listEnvelope is the Data payload of list endpoints.
type listEnvelope struct {
	Items any   `json:"items"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}
