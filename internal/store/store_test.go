package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rmendes/imobi/internal/models"
)

func newTestStore(t *testing.T) *GORMStore {
	t.Helper()
	s, err := New(&Config{
		Type:   DatabaseTypeSQLite,
		SQLite: SQLiteConfig{Path: ":memory:"},
	})
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createTestUser(t *testing.T, s *GORMStore, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test User", Email: email}
	if err := s.CreateUser(context.Background(), user, "secret123"); err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

func TestCreateUser_Duplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestUser(t, s, "ana@example.com")

	dup := &models.User{Name: "Other", Email: "ANA@example.com"}
	err := s.CreateUser(ctx, dup, "different")
	if !errors.Is(err, models.ErrDuplicateUser) {
		t.Errorf("expected ErrDuplicateUser for case-variant email, got %v", err)
	}
}

func TestValidateCredentials(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestUser(t, s, "ana@example.com")

	user, err := s.ValidateCredentials(ctx, "Ana@Example.com", "secret123")
	if err != nil {
		t.Fatalf("valid login rejected: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Errorf("unexpected email %q", user.Email)
	}
	if user.LastLogin == nil {
		t.Error("last login should be recorded")
	}

	// Wrong password and unknown user must be indistinguishable.
	_, err = s.ValidateCredentials(ctx, "ana@example.com", "wrong")
	if !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	_, err = s.ValidateCredentials(ctx, "ghost@example.com", "secret123")
	if !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateCredentials_LegacyUpgrade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Simulate a row imported from the pre-hashing database.
	legacy := &models.User{
		Name:     "Legacy",
		Email:    "legacy@example.com",
		Password: "plain-old-pass",
		Role:     "usuario",
	}
	if err := s.DB().Create(legacy).Error; err != nil {
		t.Fatalf("failed to seed legacy user: %v", err)
	}

	user, err := s.ValidateCredentials(ctx, "legacy@example.com", "plain-old-pass")
	if err != nil {
		t.Fatalf("legacy login rejected: %v", err)
	}

	// The credential must now be hashed, and the plaintext gone.
	reloaded, err := s.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Password != "" {
		t.Error("legacy plaintext should be cleared after upgrade")
	}
	if reloaded.PasswordHash == "" {
		t.Fatal("expected bcrypt hash after upgrade")
	}
	if reloaded.Credential().Kind != models.CredentialHashed {
		t.Error("credential should be hashed after upgrade")
	}

	// The same password still works against the new hash.
	if _, err := s.ValidateCredentials(ctx, "legacy@example.com", "plain-old-pass"); err != nil {
		t.Errorf("login after upgrade failed: %v", err)
	}
}

func TestEnsureAdminUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	password, err := s.EnsureAdminUser(ctx)
	if err != nil {
		t.Fatalf("EnsureAdminUser: %v", err)
	}
	if password == "" {
		t.Fatal("expected a generated password on first call")
	}

	admin, err := s.ValidateCredentials(ctx, AdminEmail, password)
	if err != nil {
		t.Fatalf("admin login with generated password failed: %v", err)
	}
	if !admin.IsAdmin() {
		t.Error("seeded admin should hold the admin role")
	}

	// Second call is a no-op.
	password, err = s.EnsureAdminUser(ctx)
	if err != nil {
		t.Fatalf("second EnsureAdminUser: %v", err)
	}
	if password != "" {
		t.Error("existing admin should not be re-seeded")
	}
}

func TestLandlordOwnership(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")
	bob := createTestUser(t, s, "bob@example.com")

	landlord := &models.Landlord{Name: "Carlos Souza", CPF: "529.982.247-25"}
	if err := s.CreateLandlord(ctx, landlord, alice.ID); err != nil {
		t.Fatalf("CreateLandlord: %v", err)
	}
	if landlord.OwnerID != alice.ID {
		t.Errorf("owner not stamped: got %d, want %d", landlord.OwnerID, alice.ID)
	}
	if landlord.CPF != "52998224725" {
		t.Errorf("cpf not normalized: %q", landlord.CPF)
	}

	// The owner sees the row.
	got, err := s.GetLandlord(ctx, landlord.ID, alice.ID)
	if err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if got.Name != "Carlos Souza" {
		t.Errorf("unexpected name %q", got.Name)
	}

	// Another user cannot even observe its existence on read.
	if _, err := s.GetLandlord(ctx, landlord.ID, bob.ID); !errors.Is(err, models.ErrLandlordNotFound) {
		t.Errorf("cross-tenant read: got %v, want ErrLandlordNotFound", err)
	}

	// Mutations distinguish foreign rows (403) from missing ones (404).
	landlord.Name = "Hacked"
	if err := s.UpdateLandlord(ctx, landlord, bob.ID); !errors.Is(err, models.ErrNotOwner) {
		t.Errorf("cross-tenant update: got %v, want ErrNotOwner", err)
	}
	if err := s.DeleteLandlord(ctx, landlord.ID, bob.ID); !errors.Is(err, models.ErrNotOwner) {
		t.Errorf("cross-tenant delete: got %v, want ErrNotOwner", err)
	}
	if err := s.DeleteLandlord(ctx, 9999, bob.ID); !errors.Is(err, models.ErrLandlordNotFound) {
		t.Errorf("missing delete: got %v, want ErrLandlordNotFound", err)
	}

	// The owner can update; ownership survives the write untouched.
	landlord.Name = "Carlos S. Souza"
	if err := s.UpdateLandlord(ctx, landlord, alice.ID); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	got, _ = s.GetLandlord(ctx, landlord.ID, alice.ID)
	if got.OwnerID != alice.ID {
		t.Errorf("owner changed on update: %d", got.OwnerID)
	}
}

func TestListLandlords_ScopedAndPaginated(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")
	bob := createTestUser(t, s, "bob@example.com")

	names := []string{"Ana", "Bruno", "Clara", "Davi", "Elisa"}
	for _, n := range names {
		l := &models.Landlord{Name: n, CPF: "52998224725"}
		if err := s.CreateLandlord(ctx, l, alice.ID); err != nil {
			t.Fatalf("seed %s: %v", n, err)
		}
	}
	other := &models.Landlord{Name: "Zeca", CPF: "52998224725"}
	if err := s.CreateLandlord(ctx, other, bob.ID); err != nil {
		t.Fatalf("seed bob: %v", err)
	}

	page1, total, err := s.ListLandlords(ctx, alice.ID, 1, 2)
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5 (bob's rows must not count)", total)
	}
	if len(page1) != 2 || page1[0].Name != "Ana" || page1[1].Name != "Bruno" {
		t.Errorf("unexpected page 1: %+v", page1)
	}

	page3, _, err := s.ListLandlords(ctx, alice.ID, 3, 2)
	if err != nil {
		t.Fatalf("list page 3: %v", err)
	}
	if len(page3) != 1 || page3[0].Name != "Elisa" {
		t.Errorf("unexpected page 3: %+v", page3)
	}
}

func TestTenantCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")

	tenant := &models.Tenant{
		Name:         "  Bia   Lima ",
		CPF:          "111.444.777-35",
		Guarantor:    "Paulo",
		GuarantorCPF: "529.982.247-25",
	}
	if err := s.CreateTenant(ctx, tenant, alice.ID); err != nil {
		t.Fatalf("CreateTenant: %v", err)
	}
	if tenant.Name != "Bia Lima" {
		t.Errorf("name not sanitized: %q", tenant.Name)
	}

	tenant.Profession = "arquiteta"
	if err := s.UpdateTenant(ctx, tenant, alice.ID); err != nil {
		t.Fatalf("UpdateTenant: %v", err)
	}

	if err := s.DeleteTenant(ctx, tenant.ID, alice.ID); err != nil {
		t.Fatalf("DeleteTenant: %v", err)
	}
	if _, err := s.GetTenant(ctx, tenant.ID, alice.ID); !errors.Is(err, models.ErrTenantNotFound) {
		t.Errorf("deleted tenant still readable: %v", err)
	}
}

func TestCreateProperty_RefsMustBeOwned(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")
	bob := createTestUser(t, s, "bob@example.com")

	aliceLandlord := &models.Landlord{Name: "Dono A", CPF: "52998224725"}
	if err := s.CreateLandlord(ctx, aliceLandlord, alice.ID); err != nil {
		t.Fatal(err)
	}
	bobLandlord := &models.Landlord{Name: "Dono B", CPF: "52998224725"}
	if err := s.CreateLandlord(ctx, bobLandlord, bob.ID); err != nil {
		t.Fatal(err)
	}

	// Referencing another user's landlord reads as not-found.
	p := &models.Property{Address: "Rua X, 10", Kind: "casa", LandlordID: bobLandlord.ID}
	if err := s.CreateProperty(ctx, p, alice.ID); !errors.Is(err, models.ErrLandlordNotFound) {
		t.Errorf("foreign landlord ref: got %v, want ErrLandlordNotFound", err)
	}

	p.LandlordID = aliceLandlord.ID
	if err := s.CreateProperty(ctx, p, alice.ID); err != nil {
		t.Fatalf("CreateProperty: %v", err)
	}

	// Same rule for the tenant reference.
	bobTenant := &models.Tenant{Name: "Inquilino B", CPF: "11144477735"}
	if err := s.CreateTenant(ctx, bobTenant, bob.ID); err != nil {
		t.Fatal(err)
	}
	p2 := &models.Property{
		Address:    "Rua Y, 20",
		Kind:       "apartamento",
		LandlordID: aliceLandlord.ID,
		TenantID:   &bobTenant.ID,
	}
	if err := s.CreateProperty(ctx, p2, alice.ID); !errors.Is(err, models.ErrTenantNotFound) {
		t.Errorf("foreign tenant ref: got %v, want ErrTenantNotFound", err)
	}
}

func TestPropertyReads_JoinNames(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")

	landlord := &models.Landlord{Name: "Carlos Souza", CPF: "52998224725"}
	if err := s.CreateLandlord(ctx, landlord, alice.ID); err != nil {
		t.Fatal(err)
	}
	tenant := &models.Tenant{Name: "Bia Lima", CPF: "11144477735"}
	if err := s.CreateTenant(ctx, tenant, alice.ID); err != nil {
		t.Fatal(err)
	}

	rented := &models.Property{
		Address:    "Rua A, 1",
		Kind:       "casa",
		LandlordID: landlord.ID,
		TenantID:   &tenant.ID,
	}
	if err := s.CreateProperty(ctx, rented, alice.ID); err != nil {
		t.Fatal(err)
	}
	vacant := &models.Property{Address: "Rua B, 2", Kind: "apartamento", LandlordID: landlord.ID}
	if err := s.CreateProperty(ctx, vacant, alice.ID); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetProperty(ctx, rented.ID, alice.ID)
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if got.LandlordName != "Carlos Souza" {
		t.Errorf("locador_nome = %q, want %q", got.LandlordName, "Carlos Souza")
	}
	if got.TenantName != "Bia Lima" {
		t.Errorf("locatario_nome = %q, want %q", got.TenantName, "Bia Lima")
	}

	list, total, err := s.ListProperties(ctx, alice.ID, 1, 20)
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Fatalf("list = %d rows, total %d", len(list), total)
	}
	// Ordered by endereco, so Rua A comes first.
	if list[0].LandlordName != "Carlos Souza" || list[0].TenantName != "Bia Lima" {
		t.Errorf("list[0] names = %q/%q", list[0].LandlordName, list[0].TenantName)
	}
	// A vacant property carries the landlord name and an empty tenant name.
	if list[1].LandlordName != "Carlos Souza" {
		t.Errorf("list[1] locador_nome = %q", list[1].LandlordName)
	}
	if list[1].TenantName != "" {
		t.Errorf("list[1] locatario_nome = %q, want empty", list[1].TenantName)
	}
}

func TestGetStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")
	bob := createTestUser(t, s, "bob@example.com")

	l := &models.Landlord{Name: "Dono", CPF: "52998224725"}
	if err := s.CreateLandlord(ctx, l, alice.ID); err != nil {
		t.Fatal(err)
	}
	tn := &models.Tenant{Name: "Inq", CPF: "11144477735"}
	if err := s.CreateTenant(ctx, tn, alice.ID); err != nil {
		t.Fatal(err)
	}
	p := &models.Property{Address: "Rua Z", Kind: "casa", LandlordID: l.ID}
	if err := s.CreateProperty(ctx, p, alice.ID); err != nil {
		t.Fatal(err)
	}

	stats, err := s.GetStats(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.Landlords != 1 || stats.Tenants != 1 || stats.Properties != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	empty, err := s.GetStats(ctx, bob.ID)
	if err != nil {
		t.Fatalf("GetStats(bob): %v", err)
	}
	if empty.Landlords != 0 || empty.Tenants != 0 || empty.Properties != 0 {
		t.Errorf("stats leak across users: %+v", empty)
	}
}
