package handlers

import (
	"net/http"

	"github.com/rmendes/imobi/internal/models"
	"github.com/rmendes/imobi/internal/store"
)

// TenantHandler handles the /locatarios endpoints.
type TenantHandler struct {
	store *store.GORMStore
}

// NewTenantHandler creates a new TenantHandler.
func NewTenantHandler(s *store.GORMStore) *TenantHandler {
	return &TenantHandler{store: s}
}

// List handles GET /locatarios.
func (h *TenantHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	page, limit := pagination(r)
	tenants, total, err := h.store.ListTenants(r.Context(), owner, page, limit)
	if err != nil {
		writeStoreError(w, err, "failed to list locatarios")
		return
	}

	WriteData(w, listEnvelope{Items: tenants, Page: page, Limit: limit, Total: total})
}

// Get handles GET /locatarios/{id}.
func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	tenant, err := h.store.GetTenant(r.Context(), id, owner)
	if err != nil {
		writeStoreError(w, err, "failed to load locatario")
		return
	}

	WriteData(w, tenant)
}

// Create handles POST /locatarios.
func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var tenant models.Tenant
	if !decodeJSONBody(w, r, &tenant) {
		return
	}
	tenant.ID = 0

	if err := h.store.CreateTenant(r.Context(), &tenant, owner); err != nil {
		writeStoreError(w, err, "failed to create locatario")
		return
	}

	WriteCreated(w, tenant)
}

// Update handles PUT /locatarios/{id}.
func (h *TenantHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var tenant models.Tenant
	if !decodeJSONBody(w, r, &tenant) {
		return
	}
	tenant.ID = id

	if err := h.store.UpdateTenant(r.Context(), &tenant, owner); err != nil {
		writeStoreError(w, err, "failed to update locatario")
		return
	}

	WriteData(w, tenant)
}

// Delete handles DELETE /locatarios/{id}.
func (h *TenantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteTenant(r.Context(), id, owner); err != nil {
		writeStoreError(w, err, "failed to delete locatario")
		return
	}

	WriteMessage(w, "locatario removed")
}
