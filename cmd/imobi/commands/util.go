package commands

import (
	"fmt"

	"github.com/rmendes/imobi/internal/config"
	"github.com/rmendes/imobi/internal/logger"
	"github.com/rmendes/imobi/internal/store"
)

// InitLogger initializes the structured logger from configuration.
func InitLogger(cfg *config.Config) error {
	if err := logger.Init(cfg.LoggerConfig()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// loadConfigAndStore loads the configuration, initializes the logger and
// opens the database. Shared setup for the management commands.
func loadConfigAndStore() (*config.Config, *store.GORMStore, error) {
	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return nil, nil, err
	}

	if err := InitLogger(cfg); err != nil {
		return nil, nil, err
	}

	s, err := store.New(cfg.StoreConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	return cfg, s, nil
}
