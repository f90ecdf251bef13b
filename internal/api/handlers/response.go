// Package handlers implements the HTTP endpoints of the API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rmendes/imobi/internal/logger"
	"github.com/rmendes/imobi/internal/models"
)

// Response is the envelope every endpoint answers with. Success responses
// carry the payload in Data (or flattened fields for login); failures carry a
// human-readable Message and optionally a machine-readable Error tag.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// WriteData writes a 200 envelope with a payload.
func WriteData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// WriteMessage writes a 200 envelope with only a message.
func WriteMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Response{Success: true, Message: message})
}

// WriteCreated writes a 201 envelope with a payload.
func WriteCreated(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, Response{Success: true, Data: data})
}

// BadRequest writes a 400 error envelope.
func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: message})
}

// BadRequestTagged writes a 400 error envelope with a machine-readable tag.
func BadRequestTagged(w http.ResponseWriter, message, tag string) {
	writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: message, Error: tag})
}

// Unauthorized writes a 401 error envelope.
func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, Response{Success: false, Message: message})
}

// Forbidden writes a 403 error envelope.
func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, Response{Success: false, Message: message})
}

// NotFound writes a 404 error envelope.
func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, Response{Success: false, Message: message})
}

// InternalServerError writes a 500 error envelope. The message is generic on
// purpose; details belong in the log, not the response.
func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, Response{Success: false, Message: message})
}

// writeStoreError maps store/domain errors to the envelope: ownership
// violations are 403, missing rows 404, validation failures 400, anything
// else a logged 500.
func writeStoreError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrNotOwner):
		Forbidden(w, "access denied")
	case errors.Is(err, models.ErrLandlordNotFound):
		NotFound(w, "locador not found")
	case errors.Is(err, models.ErrTenantNotFound):
		NotFound(w, "locatario not found")
	case errors.Is(err, models.ErrPropertyNotFound):
		NotFound(w, "imovel not found")
	case errors.Is(err, models.ErrUserNotFound):
		NotFound(w, "user not found")
	case errors.Is(err, models.ErrNameRequired),
		errors.Is(err, models.ErrInvalidCPF),
		errors.Is(err, models.ErrInvalidEmail),
		errors.Is(err, models.ErrAddressRequired),
		errors.Is(err, models.ErrPropertyKindRequired),
		errors.Is(err, models.ErrLandlordRequired),
		errors.Is(err, models.ErrPasswordTooShort),
		errors.Is(err, models.ErrPasswordTooLong),
		errors.Is(err, models.ErrInvalidRole):
		BadRequest(w, err.Error())
	default:
		logger.Error("request failed", "error", err)
		InternalServerError(w, fallback)
	}
}
