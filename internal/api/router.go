package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rmendes/imobi/internal/api/auth"
	"github.com/rmendes/imobi/internal/api/handlers"
	apiMiddleware "github.com/rmendes/imobi/internal/api/middleware"
	"github.com/rmendes/imobi/internal/logger"
	"github.com/rmendes/imobi/internal/metrics"
	"github.com/rmendes/imobi/internal/store"
)

// NewRouter creates and configures the chi router with all middleware and routes.
//
// Routes:
//   - GET  /                - service banner
//   - GET  /health          - liveness probe
//   - GET  /health/ready    - readiness probe
//   - POST /login           - authentication
//   - POST /register        - account creation
//   - GET  /me              - current identity (authenticated)
//   - /locadores/*          - landlord CRUD (authenticated, owner-scoped)
//   - /locatarios/*         - tenant CRUD (authenticated, owner-scoped)
//   - /imoveis/*            - property CRUD (authenticated, owner-scoped)
//   - GET  /estatisticas    - per-user record counts (authenticated)
//   - GET  /usuarios, /usuarios/{id} - user directory (admin only, read-only)
func NewRouter(s *store.GORMStore, tokenService *auth.TokenService, version string) http.Handler {
	r := chi.NewRouter()

	// Middleware stack - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(metrics.RequestMetrics)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	healthHandler := handlers.NewHealthHandler(s, version)
	authHandler := handlers.NewAuthHandler(s, tokenService)
	landlordHandler := handlers.NewLandlordHandler(s)
	tenantHandler := handlers.NewTenantHandler(s)
	propertyHandler := handlers.NewPropertyHandler(s)
	statsHandler := handlers.NewStatsHandler(s)
	userHandler := handlers.NewUserHandler(s)

	// Public routes
	r.Get("/", healthHandler.Root)
	r.Route("/health", func(r chi.Router) {
		r.Get("/", healthHandler.Live)
		r.Get("/ready", healthHandler.Ready)
	})
	r.Post("/login", authHandler.Login)
	r.Post("/register", authHandler.Register)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(apiMiddleware.JWTAuth(tokenService))

		r.Get("/me", authHandler.Me)
		r.Get("/estatisticas", statsHandler.Get)

		r.Route("/locadores", func(r chi.Router) {
			r.Get("/", landlordHandler.List)
			r.Post("/", landlordHandler.Create)
			r.Get("/{id}", landlordHandler.Get)
			r.Put("/{id}", landlordHandler.Update)
			r.Delete("/{id}", landlordHandler.Delete)
		})

		r.Route("/locatarios", func(r chi.Router) {
			r.Get("/", tenantHandler.List)
			r.Post("/", tenantHandler.Create)
			r.Get("/{id}", tenantHandler.Get)
			r.Put("/{id}", tenantHandler.Update)
			r.Delete("/{id}", tenantHandler.Delete)
		})

		r.Route("/imoveis", func(r chi.Router) {
			r.Get("/", propertyHandler.List)
			r.Post("/", propertyHandler.Create)
			r.Get("/{id}", propertyHandler.Get)
			r.Put("/{id}", propertyHandler.Update)
			r.Delete("/{id}", propertyHandler.Delete)
		})

		// Admin-only user directory
		r.Route("/usuarios", func(r chi.Router) {
			r.Use(apiMiddleware.RequireAdmin())
			r.Get("/", userHandler.List)
			r.Get("/{id}", userHandler.Get)
		})
	})

	return r
}

// requestLogger is a custom middleware that logs requests using the internal logger.
//
// It logs:
//   - Request start (DEBUG level): method, path, remote addr
//   - Request completion (INFO level): method, path, status, duration
//   - Healthcheck requests are logged at DEBUG level to reduce noise
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := middleware.GetReqID(r.Context())

		logger.Debug("API request started",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		logArgs := []any{
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", duration.String(),
		}

		if isHealthPath(r.URL.Path) {
			logger.Debug("API request completed", logArgs...)
		} else {
			logger.Info("API request completed", logArgs...)
		}
	})
}

func isHealthPath(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/health/")
}
