package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/rmendes/imobi/internal/models"
)

// ============================================================================
// Generic GORM Helpers
// ============================================================================
//
// These helpers reduce repetitive CRUD boilerplate across store implementation
// files and are the single place where record ownership is enforced. They are
// unexported and operate on the raw *gorm.DB to avoid coupling to GORMStore.
//
// Two lookup flavors exist on purpose:
//   - getScoped filters by owner in the WHERE clause, so a row belonging to
//     another user is indistinguishable from a missing one (reads never leak
//     existence).
//   - getForWrite loads by id alone and then checks ownership, so update and
//     delete can report models.ErrNotOwner (403) distinctly from not-found.

// owned is satisfied by every multi-tenant entity pointer.
type owned interface{ Owner() uint }

// getScoped retrieves a record of type T by id, visible only to its owner.
// A row owned by someone else yields notFoundErr, same as a missing row.
func getScoped[T any](db *gorm.DB, ctx context.Context, id, owner uint, notFoundErr error) (*T, error) {
	var result T
	err := db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", id, owner).
		First(&result).Error
	if err != nil {
		return nil, convertNotFoundError(err, notFoundErr)
	}
	return &result, nil
}

// getForWrite retrieves a record of type T by id for mutation, returning
// models.ErrNotOwner when the row exists but belongs to a different user.
func getForWrite[T any, P interface {
	*T
	owned
}](db *gorm.DB, ctx context.Context, id, owner uint, notFoundErr error) (*T, error) {
	var result T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&result).Error; err != nil {
		return nil, convertNotFoundError(err, notFoundErr)
	}
	if P(&result).Owner() != owner {
		return nil, models.ErrNotOwner
	}
	return &result, nil
}

// listOwned retrieves a page of records of type T belonging to owner, ordered
// by orderBy, plus the owner's total row count for pagination metadata.
// Returns an empty slice (not nil) on success with no records.
func listOwned[T any](db *gorm.DB, ctx context.Context, owner uint, page, limit int, orderBy string) ([]*T, int64, error) {
	var zero T
	var total int64
	q := db.WithContext(ctx).Model(&zero).Where("usuario_id = ?", owner)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	results := []*T{}
	if err := q.Order(orderBy).Offset((page - 1) * limit).Limit(limit).Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// createOwned stamps the owner id on the entity and inserts it. The owner
// always comes from the authenticated caller, never from the request payload.
func createOwned[T any, P interface {
	*T
	owned
}](db *gorm.DB, ctx context.Context, entity P, setOwner func(P, uint), owner uint) error {
	setOwner(entity, owner)
	return db.WithContext(ctx).Create(entity).Error
}

// deleteOwned removes the record after an ownership check, preserving the
// not-found vs not-owner distinction of getForWrite.
func deleteOwned[T any, P interface {
	*T
	owned
}](db *gorm.DB, ctx context.Context, id, owner uint, notFoundErr error) error {
	existing, err := getForWrite[T, P](db, ctx, id, owner, notFoundErr)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(existing).Error
}

// countOwned returns the owner's row count for type T.
func countOwned[T any](db *gorm.DB, ctx context.Context, owner uint) (int64, error) {
	var zero T
	var total int64
	err := db.WithContext(ctx).Model(&zero).Where("usuario_id = ?", owner).Count(&total).Error
	return total, err
}
