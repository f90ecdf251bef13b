package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rmendes/imobi/internal/api/auth"
	"github.com/rmendes/imobi/internal/models"
)

const testSecret = "test-secret-that-is-at-least-32-characters-long"

func newTokenService(t *testing.T, d time.Duration) *auth.TokenService {
	t.Helper()
	svc, err := auth.NewTokenService(auth.Config{Secret: testSecret, TokenDuration: d})
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return svc
}

func issueFor(t *testing.T, svc *auth.TokenService, user *models.User) string {
	t.Helper()
	session, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return session.Token
}

// echoClaims replies with the user id from context, proving claims were attached.
func echoClaims() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"uid": claims.UserID})
	})
}

func TestJWTAuth_Rejections(t *testing.T) {
	svc := newTokenService(t, time.Hour)
	shortLived := newTokenService(t, time.Nanosecond)
	expired := issueFor(t, shortLived, &models.User{ID: 1, Email: "a@b.c"})
	time.Sleep(5 * time.Millisecond)

	tests := []struct {
		name        string
		authHeader  string
		wantStatus  int
		wantMessage string
	}{
		{"missing header", "", http.StatusUnauthorized, "token not provided"},
		{"not bearer", "Basic abc", http.StatusUnauthorized, "token not provided"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "token expired, login again"},
		{"garbage", "Bearer not.a.token", http.StatusForbidden, "invalid token"},
	}

	handler := JWTAuth(svc)(echoClaims())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/locadores", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Success {
				t.Error("success should be false on rejection")
			}
			if body.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", body.Message, tt.wantMessage)
			}
		})
	}
}

func TestJWTAuth_ValidToken(t *testing.T) {
	svc := newTokenService(t, time.Hour)
	token := issueFor(t, svc, &models.User{ID: 7, Email: "ana@example.com", Role: "usuario"})

	req := httptest.NewRequest(http.MethodGet, "/locadores", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	JWTAuth(svc)(echoClaims()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body struct {
		UID uint `json:"uid"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.UID != 7 {
		t.Errorf("uid = %d, want 7", body.UID)
	}
}

func TestOptionalJWTAuth_NeverRejects(t *testing.T) {
	svc := newTokenService(t, time.Hour)
	handler := OptionalJWTAuth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, header := range []string{"", "Bearer garbage", "Bearer " + issueFor(t, svc, &models.User{ID: 1})} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("header %q: status = %d, want 200", header, rec.Code)
		}
	}
}

func TestRequireAdmin(t *testing.T) {
	svc := newTokenService(t, time.Hour)
	adminToken := issueFor(t, svc, &models.User{ID: 1, Email: "admin@x", Role: "admin"})
	userToken := issueFor(t, svc, &models.User{ID: 2, Email: "u@x", Role: "usuario"})

	handler := JWTAuth(svc)(RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"admin allowed", adminToken, http.StatusOK},
		{"regular user forbidden", userToken, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
