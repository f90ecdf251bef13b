package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rmendes/imobi/internal/api"
	"github.com/rmendes/imobi/internal/config"
	"github.com/rmendes/imobi/internal/logger"
	"github.com/rmendes/imobi/internal/metrics"
	"github.com/rmendes/imobi/internal/store"
	"github.com/rmendes/imobi/internal/telemetry"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the imobi API server",
	Long: `Start the imobi API server with the specified configuration.

Use --config to specify a custom configuration file, or it will use the
default location at $XDG_CONFIG_HOME/imobi/config.yaml.

Examples:
  # Start with default config location
  imobi start

  # Start with custom config file
  imobi start --config /etc/imobi/config.yaml

  # Start with environment variable overrides
  IMOBI_LOGGING_LEVEL=DEBUG imobi start`,
	RunE: runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return err
	}

	if err := InitLogger(cfg); err != nil {
		return err
	}

	// Cancelled on SIGINT/SIGTERM to trigger graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	telemetryShutdown, err := telemetry.Init(ctx, cfg.Telemetry, "imobi", Version)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := telemetryShutdown(context.Background()); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}()

	if cfg.Metrics.Port > 0 {
		metrics.Serve(cfg.Metrics.Port)
		logger.Info("Metrics enabled", "port", cfg.Metrics.Port)
	} else {
		logger.Info("Metrics collection disabled")
	}

	s, err := store.New(cfg.StoreConfig())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = s.Close() }()

	generated, err := s.EnsureAdminUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure admin user: %w", err)
	}
	if generated != "" {
		// Printed once; the hash is all that survives in the database.
		fmt.Printf("Generated admin password: %s\n", generated)
		fmt.Println("Store it now - it will not be shown again.")
	}

	srv, err := api.NewServer(cfg.API, s, Version)
	if err != nil {
		return fmt.Errorf("failed to create API server: %w", err)
	}

	logger.Info("Server starting", "port", srv.Port(), "database", cfg.Database.Type)
	logger.Info("Server is running. Press Ctrl+C to stop.")

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}
