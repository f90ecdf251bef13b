//go:build integration

// Package postgres exercises the GORM store against a real PostgreSQL
// instance. Run with:
//
//	go test -tags integration ./test/integration/postgres/
//
// Requires Docker, or an external database via POSTGRES_HOST.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/rmendes/imobi/internal/models"
	"github.com/rmendes/imobi/internal/store"
)

const (
	testDatabase = "imobi_test"
	testUser     = "imobi_test"
	testPassword = "imobi_test"
)

var sharedConfig *store.PostgresConfig

func TestMain(m *testing.M) {
	ctx := context.Background()

	// An external database takes precedence over a container.
	if host := os.Getenv("POSTGRES_HOST"); host != "" {
		port := 5432
		if p := os.Getenv("POSTGRES_PORT"); p != "" {
			port, _ = strconv.Atoi(p)
		}
		sharedConfig = &store.PostgresConfig{
			Host:     host,
			Port:     port,
			Database: envOr("POSTGRES_DATABASE", testDatabase),
			User:     envOr("POSTGRES_USER", testUser),
			Password: envOr("POSTGRES_PASSWORD", testPassword),
			SSLMode:  "disable",
		}
		os.Exit(m.Run())
	}

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase(testDatabase),
		tcpostgres.WithUsername(testUser),
		tcpostgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start postgres container: %v\n", err)
		os.Exit(1)
	}

	host, err := ctr.Host(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}
	port, err := ctr.MappedPort(ctx, "5432")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get container port: %v\n", err)
		os.Exit(1)
	}

	sharedConfig = &store.PostgresConfig{
		Host:     host,
		Port:     port.Int(),
		Database: testDatabase,
		User:     testUser,
		Password: testPassword,
		SSLMode:  "disable",
	}

	code := m.Run()
	_ = ctr.Terminate(ctx)
	os.Exit(code)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newPostgresStore(t *testing.T) *store.GORMStore {
	t.Helper()

	cfg := &store.Config{
		Type:     store.DatabaseTypePostgres,
		Postgres: *sharedConfig,
	}
	s, err := store.New(cfg)
	if err != nil {
		t.Fatalf("failed to open postgres store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createUser(t *testing.T, s *store.GORMStore, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Integration User", Email: email}
	if err := s.CreateUser(context.Background(), user, "integration-pass"); err != nil {
		t.Fatalf("CreateUser(%s): %v", email, err)
	}
	return user
}

func TestPostgres_UserRoundTrip(t *testing.T) {
	s := newPostgresStore(t)
	ctx := context.Background()

	email := fmt.Sprintf("roundtrip-%d@example.com", time.Now().UnixNano())
	user := createUser(t, s, email)

	got, err := s.ValidateCredentials(ctx, email, "integration-pass")
	if err != nil {
		t.Fatalf("ValidateCredentials: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("validated user id = %d, want %d", got.ID, user.ID)
	}

	if _, err := s.ValidateCredentials(ctx, email, "wrong"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}

	// Duplicate emails must hit the unique constraint, postgres flavor.
	dup := &models.User{Name: "Dup", Email: email}
	if err := s.CreateUser(ctx, dup, "another-pass"); !errors.Is(err, models.ErrDuplicateUser) {
		t.Errorf("duplicate create error = %v, want ErrDuplicateUser", err)
	}
}

func TestPostgres_OwnershipIsolation(t *testing.T) {
	s := newPostgresStore(t)
	ctx := context.Background()

	nano := time.Now().UnixNano()
	alice := createUser(t, s, fmt.Sprintf("alice-%d@example.com", nano))
	bob := createUser(t, s, fmt.Sprintf("bob-%d@example.com", nano))

	landlord := &models.Landlord{Name: "Carlos Souza", CPF: "529.982.247-25"}
	if err := s.CreateLandlord(ctx, landlord, alice.ID); err != nil {
		t.Fatalf("CreateLandlord: %v", err)
	}

	if _, err := s.GetLandlord(ctx, landlord.ID, bob.ID); !errors.Is(err, models.ErrLandlordNotFound) {
		t.Errorf("cross-tenant read error = %v, want ErrLandlordNotFound", err)
	}

	landlord.Name = "Hijacked"
	if err := s.UpdateLandlord(ctx, landlord, bob.ID); !errors.Is(err, models.ErrNotOwner) {
		t.Errorf("cross-tenant update error = %v, want ErrNotOwner", err)
	}

	if err := s.DeleteLandlord(ctx, landlord.ID, bob.ID); !errors.Is(err, models.ErrNotOwner) {
		t.Errorf("cross-tenant delete error = %v, want ErrNotOwner", err)
	}

	got, err := s.GetLandlord(ctx, landlord.ID, alice.ID)
	if err != nil {
		t.Fatalf("owner read after attacks: %v", err)
	}
	if got.Name != "Carlos Souza" {
		t.Errorf("landlord name = %q, want original", got.Name)
	}
}

func TestPostgres_VersionedMigrations(t *testing.T) {
	s := newPostgresStore(t)
	ctx := context.Background()

	// The schema already exists from AutoMigrate; the versioned migrations
	// must apply cleanly on top of it and be idempotent.
	if err := store.RunMigrations(ctx, sharedConfig); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
	if err := store.RunMigrations(ctx, sharedConfig); err != nil {
		t.Fatalf("RunMigrations (second run): %v", err)
	}

	if _, err := s.ListUsers(ctx); err != nil {
		t.Errorf("schema broken after migrations: %v", err)
	}
}
