package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/rmendes/imobi/internal/br"
	"github.com/rmendes/imobi/internal/models"
)

// ============================================
// PROPERTY OPERATIONS
// ============================================

// GetProperty retrieves a property with the landlord and tenant names
// joined in. The owner filter stays in the WHERE clause so foreign rows
// read as not-found.
func (s *GORMStore) GetProperty(ctx context.Context, id, owner uint) (*models.Property, error) {
	var property models.Property
	err := s.propertyReadQuery(ctx).
		Where("imoveis.id = ? AND imoveis.usuario_id = ?", id, owner).
		First(&property).Error
	if err != nil {
		return nil, convertNotFoundError(err, models.ErrPropertyNotFound)
	}
	return &property, nil
}

func (s *GORMStore) ListProperties(ctx context.Context, owner uint, page, limit int) ([]*models.Property, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Property{}).
		Where("usuario_id = ?", owner).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	properties := []*models.Property{}
	err := s.propertyReadQuery(ctx).
		Where("imoveis.usuario_id = ?", owner).
		Order("imoveis.endereco").
		Offset((page - 1) * limit).Limit(limit).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

// propertyReadQuery joins the referenced landlord and tenant names into the
// read model. Left joins: a dangling tenant reference leaves the name empty
// rather than hiding the property.
func (s *GORMStore) propertyReadQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.Property{}).
		Select("imoveis.*, locadores.nome AS locador_nome, locatarios.nome AS locatario_nome").
		Joins("LEFT JOIN locadores ON locadores.id = imoveis.id_locador").
		Joins("LEFT JOIN locatarios ON locatarios.id = imoveis.id_locatario")
}

// CreateProperty inserts a property after checking that the referenced
// landlord (and tenant, when set) belong to the same user. A reference to
// someone else's record is reported as not-found, never as forbidden, so
// creation cannot be used to probe other users' data.
func (s *GORMStore) CreateProperty(ctx context.Context, property *models.Property, owner uint) error {
	sanitizeProperty(property)
	if err := property.Validate(); err != nil {
		return err
	}
	if err := s.checkPropertyRefs(ctx, property, owner); err != nil {
		return err
	}
	return createOwned(s.db, ctx, property, func(p *models.Property, o uint) { p.OwnerID = o }, owner)
}

func (s *GORMStore) UpdateProperty(ctx context.Context, property *models.Property, owner uint) error {
	existing, err := getForWrite[models.Property](s.db, ctx, property.ID, owner, models.ErrPropertyNotFound)
	if err != nil {
		return err
	}

	sanitizeProperty(property)
	if err := property.Validate(); err != nil {
		return err
	}
	if err := s.checkPropertyRefs(ctx, property, owner); err != nil {
		return err
	}

	property.OwnerID = existing.OwnerID
	property.CreatedAt = existing.CreatedAt
	return s.db.WithContext(ctx).Save(property).Error
}

func (s *GORMStore) DeleteProperty(ctx context.Context, id, owner uint) error {
	return deleteOwned[models.Property](s.db, ctx, id, owner, models.ErrPropertyNotFound)
}

// checkPropertyRefs verifies the landlord and tenant references resolve to
// rows owned by the caller.
func (s *GORMStore) checkPropertyRefs(ctx context.Context, property *models.Property, owner uint) error {
	if _, err := s.GetLandlord(ctx, property.LandlordID, owner); err != nil {
		return err
	}
	if property.TenantID != nil {
		if _, err := s.GetTenant(ctx, *property.TenantID, owner); err != nil {
			return err
		}
	}
	return nil
}

func sanitizeProperty(p *models.Property) {
	p.Address = br.SanitizeString(p.Address)
	p.Kind = br.SanitizeString(p.Kind)
	p.Description = br.SanitizeString(p.Description)
	p.EnergyAccountHolder = br.SanitizeString(p.EnergyAccountHolder)
	p.WaterAccountHolder = br.SanitizeString(p.WaterAccountHolder)
	p.GasAccountHolder = br.SanitizeString(p.GasAccountHolder)
	p.CondoHolder = br.SanitizeString(p.CondoHolder)
}
