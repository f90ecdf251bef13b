package handlers

import (
	"net/http"

	"github.com/rmendes/imobi/internal/api/middleware"
	"github.com/rmendes/imobi/internal/models"
	"github.com/rmendes/imobi/internal/store"
)

// LandlordHandler handles the /locadores endpoints.
type LandlordHandler struct {
	store *store.GORMStore
}

// NewLandlordHandler creates a new LandlordHandler.
func NewLandlordHandler(s *store.GORMStore) *LandlordHandler {
	return &LandlordHandler{store: s}
}

// ownerID extracts the authenticated user id from the request context.
// Returns false (response written) when the request carries no claims, which
// only happens if a route is miswired outside JWTAuth.
func ownerID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "token not provided")
		return 0, false
	}
	return claims.UserID, true
}

// List handles GET /locadores.
func (h *LandlordHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	page, limit := pagination(r)
	landlords, total, err := h.store.ListLandlords(r.Context(), owner, page, limit)
	if err != nil {
		writeStoreError(w, err, "failed to list locadores")
		return
	}

	WriteData(w, listEnvelope{Items: landlords, Page: page, Limit: limit, Total: total})
}

// Get handles GET /locadores/{id}.
func (h *LandlordHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	landlord, err := h.store.GetLandlord(r.Context(), id, owner)
	if err != nil {
		writeStoreError(w, err, "failed to load locador")
		return
	}

	WriteData(w, landlord)
}

// Create handles POST /locadores.
func (h *LandlordHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var landlord models.Landlord
	if !decodeJSONBody(w, r, &landlord) {
		return
	}
	landlord.ID = 0 // ids are assigned by the database

	if err := h.store.CreateLandlord(r.Context(), &landlord, owner); err != nil {
		writeStoreError(w, err, "failed to create locador")
		return
	}

	WriteCreated(w, landlord)
}

// Update handles PUT /locadores/{id}.
func (h *LandlordHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var landlord models.Landlord
	if !decodeJSONBody(w, r, &landlord) {
		return
	}
	landlord.ID = id

	if err := h.store.UpdateLandlord(r.Context(), &landlord, owner); err != nil {
		writeStoreError(w, err, "failed to update locador")
		return
	}

	WriteData(w, landlord)
}

// Delete handles DELETE /locadores/{id}.
func (h *LandlordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteLandlord(r.Context(), id, owner); err != nil {
		writeStoreError(w, err, "failed to delete locador")
		return
	}

	WriteMessage(w, "locador removed")
}
