package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rmendes/imobi/internal/api/auth"
	"github.com/rmendes/imobi/internal/api/middleware"
	"github.com/rmendes/imobi/internal/logger"
	"github.com/rmendes/imobi/internal/models"
	"github.com/rmendes/imobi/internal/store"
)

// AuthHandler handles login, registration and identity endpoints.
type AuthHandler struct {
	store        *store.GORMStore
	tokenService *auth.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(s *store.GORMStore, tokenService *auth.TokenService) *AuthHandler {
	return &AuthHandler{store: s, tokenService: tokenService}
}

// LoginRequest is the request body for POST /login. The legacy client sends
// Portuguese field names, newer ones English; both are accepted.
type LoginRequest struct {
	Email    string `json:"email"`
	Login    string `json:"login"`
	Password string `json:"password"`
	Senha    string `json:"senha"`
}

func (r *LoginRequest) email() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Login
}

func (r *LoginRequest) password() string {
	if r.Password != "" {
		return r.Password
	}
	return r.Senha
}

// LoginResponse is the response body for POST /login.
type LoginResponse struct {
	Success   bool         `json:"success"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse is a sanitized user representation for API responses.
// Credentials never appear here.
type UserResponse struct {
	ID        uint       `json:"id"`
	Name      string     `json:"nome"`
	Email     string     `json:"email"`
	Role      string     `json:"tipo"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func userToResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

// RegisterRequest is the request body for POST /register.
type RegisterRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// Login handles POST /login.
//
// All authentication failures answer 401 "invalid credentials" regardless of
// whether the account exists, so the endpoint cannot enumerate users.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	email, password := req.email(), req.password()
	if email == "" || password == "" {
		BadRequest(w, "email and senha are required")
		return
	}

	user, err := h.store.ValidateCredentials(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			Unauthorized(w, "invalid credentials")
			return
		}
		logger.Error("login failed", "error", err)
		InternalServerError(w, "authentication failed")
		return
	}

	session, err := h.tokenService.Issue(user)
	if err != nil {
		logger.Error("token issuance failed", "user_id", user.ID, "error", err)
		InternalServerError(w, "failed to generate token")
		return
	}

	logger.Info("user logged in", "user_id", user.ID)

	writeJSON(w, http.StatusOK, LoginResponse{
		Success:   true,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      userToResponse(user),
	})
}

// Register handles POST /register.
// A duplicate email answers 400 with the "duplicate_login" tag so clients can
// point the user at the login form instead.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		BadRequest(w, "nome, email and senha are required")
		return
	}

	user := &models.User{Name: req.Name, Email: req.Email}
	if err := h.store.CreateUser(r.Context(), user, req.Password); err != nil {
		if errors.Is(err, models.ErrDuplicateUser) {
			BadRequestTagged(w, "email already registered", "duplicate_login")
			return
		}
		writeStoreError(w, err, "failed to register user")
		return
	}

	logger.Info("user registered", "user_id", user.ID)
	WriteCreated(w, userToResponse(user))
}

// Me handles GET /me. It reloads the user so the response reflects the
// current database row, not a stale token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "token not provided")
		return
	}

	user, err := h.store.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		writeStoreError(w, err, "failed to load user")
		return
	}

	WriteData(w, userToResponse(user))
}
