package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rmendes/imobi/internal/api/auth"
	"github.com/rmendes/imobi/internal/logger"
	"github.com/rmendes/imobi/internal/store"
)

// Server provides the REST API HTTP server with graceful shutdown.
type Server struct {
	server       *http.Server
	tokenService *auth.TokenService
	store        *store.GORMStore
	config       APIConfig
	shutdownOnce sync.Once
}

// NewServer creates a new API HTTP server.
//
// The server is created in a stopped state. Call Start() to begin serving
// requests. The token service is created internally from the config; the
// secret comes from config.JWT.Secret or the IMOBI_JWT_SECRET environment
// variable (env wins), falling back to an insecure development secret.
func NewServer(config APIConfig, s *store.GORMStore, version string) (*Server, error) {
	config.applyDefaults()

	tokenService, err := auth.NewTokenService(auth.Config{
		Secret:        config.GetJWTSecret(),
		TokenDuration: config.JWT.TokenDuration,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	router := NewRouter(s, tokenService, version)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		server:       server,
		tokenService: tokenService,
		store:        s,
		config:       config,
	}, nil
}

// Start starts the API HTTP server and blocks until the context is cancelled
// or an error occurs. Cancellation triggers graceful shutdown.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		logger.Info("API server listening", "port", s.config.Port)

		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			select {
			case errChan <- err:
			default:
				// Context was cancelled, error is not needed
			}
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("API server shutdown signal received")
		// Don't use the cancelled ctx, it would abort the drain immediately
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Stop(shutdownCtx)
	case err := <-errChan:
		return fmt.Errorf("API server failed: %w", err)
	}
}

// Stop initiates graceful shutdown of the API server.
// Stop is safe to call multiple times and concurrently with Start().
func (s *Server) Stop(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if err := s.server.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("API server shutdown error: %w", err)
			logger.Error("API server shutdown error", "error", err)
		} else {
			logger.Info("API server stopped gracefully")
		}
	})
	return shutdownErr
}

// Port returns the TCP port the server is listening on.
func (s *Server) Port() int {
	return s.config.Port
}
