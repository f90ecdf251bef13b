package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rmendes/imobi/internal/logger"
	"github.com/rmendes/imobi/internal/models"
)

// EnvAdminInitialPassword sets the seeded admin password instead of a
// generated one.
const EnvAdminInitialPassword = "IMOBI_ADMIN_PASSWORD"

// AdminEmail is the login of the seeded administrator account.
const AdminEmail = "admin@imobiliaria.com"

// ============================================
// USER OPERATIONS
// ============================================

func (s *GORMStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ?", models.NormalizeEmail(email)).
		First(&user).Error
	if err != nil {
		return nil, convertNotFoundError(err, models.ErrUserNotFound)
	}
	return &user, nil
}

func (s *GORMStore) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, convertNotFoundError(err, models.ErrUserNotFound)
	}
	return &user, nil
}

func (s *GORMStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	users := []*models.User{}
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser inserts a new account. The email is normalized for
// case-insensitive login and the password is stored hashed only.
func (s *GORMStore) CreateUser(ctx context.Context, user *models.User, password string) error {
	user.Email = models.NormalizeEmail(user.Email)
	if user.Role == "" {
		user.Role = string(models.RoleUser)
	}
	if err := user.Validate(); err != nil {
		return err
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.Password = ""
	user.CreatedAt = time.Now()

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.ErrDuplicateUser
		}
		return err
	}
	return nil
}

// UpdatePassword replaces the stored credential with a bcrypt hash and clears
// any legacy plaintext value.
func (s *GORMStore) UpdatePassword(ctx context.Context, userID uint, password string) error {
	hash, err := models.HashPassword(password)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"senha_hash": hash,
			"senha":      "",
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (s *GORMStore) UpdateLastLogin(ctx context.Context, userID uint, timestamp time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_login", timestamp)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// ValidateCredentials authenticates an email/password pair.
//
// Unknown email, wrong password and credential-less accounts all collapse to
// models.ErrInvalidCredentials so the API cannot be used to enumerate
// accounts. A successful login against a legacy plaintext credential upgrades
// the row to a bcrypt hash in place; if that write fails the login still
// succeeds and the failure is only logged.
func (s *GORMStore) ValidateCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	cred := user.Credential()
	ok, err := cred.Verify(password)
	if err != nil {
		if errors.Is(err, models.ErrNoCredential) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}
	if !ok {
		return nil, models.ErrInvalidCredentials
	}

	if cred.NeedsUpgrade() {
		if err := s.UpdatePassword(ctx, user.ID, password); err != nil {
			logger.Warn("failed to upgrade legacy credential",
				"user_id", user.ID,
				"error", err)
		} else {
			logger.Info("upgraded legacy credential to bcrypt", "user_id", user.ID)
		}
	}

	now := time.Now()
	if err := s.UpdateLastLogin(ctx, user.ID, now); err != nil {
		logger.Warn("failed to record last login", "user_id", user.ID, "error", err)
	}
	user.LastLogin = &now

	return user, nil
}

// ============================================
// ADMIN INITIALIZATION
// ============================================

// EnsureAdminUser seeds the administrator account if it does not exist yet.
// Returns the generated password (empty when the admin already existed or the
// password came from the environment).
func (s *GORMStore) EnsureAdminUser(ctx context.Context) (string, error) {
	_, err := s.GetUserByEmail(ctx, AdminEmail)
	if err == nil {
		return "", nil // Admin already exists
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return "", err
	}

	password := os.Getenv(EnvAdminInitialPassword)
	fromEnv := password != ""
	if !fromEnv {
		password, err = generatePassword()
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
	}

	admin := &models.User{
		Name:  "Administrador",
		Email: AdminEmail,
		Role:  string(models.RoleAdmin),
	}
	if err := s.CreateUser(ctx, admin, password); err != nil {
		return "", fmt.Errorf("failed to create admin user: %w", err)
	}

	if fromEnv {
		return "", nil
	}
	return password, nil
}

// IsAdminInitialized reports whether the seeded admin account exists.
func (s *GORMStore) IsAdminInitialized(ctx context.Context) (bool, error) {
	_, err := s.GetUserByEmail(ctx, AdminEmail)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, models.ErrUserNotFound) {
		return false, nil
	}
	return false, err
}

// generatePassword returns a random 16-byte hex password.
func generatePassword() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
