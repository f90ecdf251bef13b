package store

import (
	"context"

	"github.com/rmendes/imobi/internal/br"
	"github.com/rmendes/imobi/internal/models"
)

// ============================================
// TENANT OPERATIONS
// ============================================

func (s *GORMStore) GetTenant(ctx context.Context, id, owner uint) (*models.Tenant, error) {
	return getScoped[models.Tenant](s.db, ctx, id, owner, models.ErrTenantNotFound)
}

func (s *GORMStore) ListTenants(ctx context.Context, owner uint, page, limit int) ([]*models.Tenant, int64, error) {
	return listOwned[models.Tenant](s.db, ctx, owner, page, limit, "nome")
}

func (s *GORMStore) CreateTenant(ctx context.Context, tenant *models.Tenant, owner uint) error {
	sanitizeTenant(tenant)
	if err := tenant.Validate(); err != nil {
		return err
	}
	return createOwned(s.db, ctx, tenant, func(t *models.Tenant, o uint) { t.OwnerID = o }, owner)
}

func (s *GORMStore) UpdateTenant(ctx context.Context, tenant *models.Tenant, owner uint) error {
	existing, err := getForWrite[models.Tenant](s.db, ctx, tenant.ID, owner, models.ErrTenantNotFound)
	if err != nil {
		return err
	}

	sanitizeTenant(tenant)
	if err := tenant.Validate(); err != nil {
		return err
	}

	tenant.OwnerID = existing.OwnerID
	tenant.CreatedAt = existing.CreatedAt
	return s.db.WithContext(ctx).Save(tenant).Error
}

func (s *GORMStore) DeleteTenant(ctx context.Context, id, owner uint) error {
	return deleteOwned[models.Tenant](s.db, ctx, id, owner, models.ErrTenantNotFound)
}

func sanitizeTenant(t *models.Tenant) {
	t.Name = br.SanitizeString(t.Name)
	t.CPF = br.NormalizeCPF(t.CPF)
	t.Profession = br.SanitizeString(t.Profession)
	t.Address = br.SanitizeString(t.Address)
	t.Reference = br.SanitizeString(t.Reference)
	t.CommercialReference = br.SanitizeString(t.CommercialReference)
	t.Guarantor = br.SanitizeString(t.Guarantor)
	if t.GuarantorCPF != "" {
		t.GuarantorCPF = br.NormalizeCPF(t.GuarantorCPF)
	}
	t.Email = models.NormalizeEmail(t.Email)
}
