package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitConfigToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := InitConfigToPath(path, false); err != nil {
		t.Fatalf("InitConfigToPath: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(cfg.API.JWT.Secret) != 64 {
		t.Errorf("generated secret length = %d, want 64 hex chars", len(cfg.API.JWT.Secret))
	}

	// A second init must refuse to overwrite.
	err = InitConfigToPath(path, false)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("expected already-exists error, got %v", err)
	}

	// Force regenerates the secret.
	if err := InitConfigToPath(path, true); err != nil {
		t.Fatalf("force init: %v", err)
	}
	reloaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.API.JWT.Secret == cfg.API.JWT.Secret {
		t.Error("force init did not rotate the secret")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("config mode = %v, want 0600", info.Mode().Perm())
	}
}
