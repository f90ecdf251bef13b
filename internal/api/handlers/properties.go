package handlers

import (
	"net/http"

	"github.com/rmendes/imobi/internal/models"
	"github.com/rmendes/imobi/internal/store"
)

// PropertyHandler handles the /imoveis endpoints.
type PropertyHandler struct {
	store *store.GORMStore
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(s *store.GORMStore) *PropertyHandler {
	return &PropertyHandler{store: s}
}

// List handles GET /imoveis.
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	page, limit := pagination(r)
	properties, total, err := h.store.ListProperties(r.Context(), owner, page, limit)
	if err != nil {
		writeStoreError(w, err, "failed to list imoveis")
		return
	}

	WriteData(w, listEnvelope{Items: properties, Page: page, Limit: limit, Total: total})
}

// Get handles GET /imoveis/{id}.
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	property, err := h.store.GetProperty(r.Context(), id, owner)
	if err != nil {
		writeStoreError(w, err, "failed to load imovel")
		return
	}

	WriteData(w, property)
}

// Create handles POST /imoveis. The referenced locador (and locatario, when
// given) must belong to the caller.
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var property models.Property
	if !decodeJSONBody(w, r, &property) {
		return
	}
	property.ID = 0

	if err := h.store.CreateProperty(r.Context(), &property, owner); err != nil {
		writeStoreError(w, err, "failed to create imovel")
		return
	}

	WriteCreated(w, property)
}

// Update handles PUT /imoveis/{id}.
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var property models.Property
	if !decodeJSONBody(w, r, &property) {
		return
	}
	property.ID = id

	if err := h.store.UpdateProperty(r.Context(), &property, owner); err != nil {
		writeStoreError(w, err, "failed to update imovel")
		return
	}

	WriteData(w, property)
}

// Delete handles DELETE /imoveis/{id}.
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteProperty(r.Context(), id, owner); err != nil {
		writeStoreError(w, err, "failed to delete imovel")
		return
	}

	WriteMessage(w, "imovel removed")
}
