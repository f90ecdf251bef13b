package handlers

import (
	"net/http"

	"github.com/rmendes/imobi/internal/store"
)

// UserHandler handles the admin-only /usuarios endpoints. The surface is
// read-only: accounts are created via /register and removed out of band.
type UserHandler struct {
	store *store.GORMStore
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(s *store.GORMStore) *UserHandler {
	return &UserHandler{store: s}
}

// List handles GET /usuarios.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		writeStoreError(w, err, "failed to list users")
		return
	}

	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = userToResponse(u)
	}
	WriteData(w, out)
}

// Get handles GET /usuarios/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	user, err := h.store.GetUserByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "failed to load user")
		return
	}

	WriteData(w, userToResponse(user))
}
