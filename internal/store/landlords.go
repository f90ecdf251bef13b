package store

import (
	"context"

	"github.com/rmendes/imobi/internal/br"
	"github.com/rmendes/imobi/internal/models"
)

// ============================================
// LANDLORD OPERATIONS
// ============================================

func (s *GORMStore) GetLandlord(ctx context.Context, id, owner uint) (*models.Landlord, error) {
	return getScoped[models.Landlord](s.db, ctx, id, owner, models.ErrLandlordNotFound)
}

func (s *GORMStore) ListLandlords(ctx context.Context, owner uint, page, limit int) ([]*models.Landlord, int64, error) {
	return listOwned[models.Landlord](s.db, ctx, owner, page, limit, "nome")
}

func (s *GORMStore) CreateLandlord(ctx context.Context, landlord *models.Landlord, owner uint) error {
	sanitizeLandlord(landlord)
	if err := landlord.Validate(); err != nil {
		return err
	}
	return createOwned(s.db, ctx, landlord, func(l *models.Landlord, o uint) { l.OwnerID = o }, owner)
}

func (s *GORMStore) UpdateLandlord(ctx context.Context, landlord *models.Landlord, owner uint) error {
	existing, err := getForWrite[models.Landlord](s.db, ctx, landlord.ID, owner, models.ErrLandlordNotFound)
	if err != nil {
		return err
	}

	sanitizeLandlord(landlord)
	if err := landlord.Validate(); err != nil {
		return err
	}

	// Owner and id are immutable; everything else follows the payload.
	landlord.OwnerID = existing.OwnerID
	landlord.CreatedAt = existing.CreatedAt
	return s.db.WithContext(ctx).Save(landlord).Error
}

func (s *GORMStore) DeleteLandlord(ctx context.Context, id, owner uint) error {
	return deleteOwned[models.Landlord](s.db, ctx, id, owner, models.ErrLandlordNotFound)
}

func sanitizeLandlord(l *models.Landlord) {
	l.Name = br.SanitizeString(l.Name)
	l.CPF = br.NormalizeCPF(l.CPF)
	l.Profession = br.SanitizeString(l.Profession)
	l.Address = br.SanitizeString(l.Address)
	l.Reference = br.SanitizeString(l.Reference)
	l.Email = models.NormalizeEmail(l.Email)
}
