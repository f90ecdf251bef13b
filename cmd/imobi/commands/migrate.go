package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmendes/imobi/internal/config"
	"github.com/rmendes/imobi/internal/logger"
	"github.com/rmendes/imobi/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Run database migrations for the configured database.

Opening the database applies the schema automatically. For PostgreSQL
databases created by older releases, this command additionally runs the
versioned migrations that backfill the per-user ownership column.

Examples:
  # Run migrations with default config
  imobi migrate

  # Run migrations with custom config
  imobi migrate --config /etc/imobi/config.yaml`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return err
	}

	if err := InitLogger(cfg); err != nil {
		return err
	}

	logger.Info("Running database migrations", "type", cfg.Database.Type)

	ctx := context.Background()
	storeCfg := cfg.StoreConfig()

	s, err := store.New(storeCfg)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	defer func() { _ = s.Close() }()

	if storeCfg.Type == store.DatabaseTypePostgres {
		if err := store.RunMigrations(ctx, &storeCfg.Postgres); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	// Verify the schema by running a trivial query.
	if _, err := s.ListUsers(ctx); err != nil {
		return fmt.Errorf("migration verification failed: %w", err)
	}

	fmt.Printf("Migrations completed successfully (database type: %s)\n", cfg.Database.Type)
	return nil
}
