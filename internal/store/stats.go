package store

import (
	"context"

	"github.com/rmendes/imobi/internal/models"
)

// Stats holds the per-user record counts served by /estatisticas. The JSON
// keys keep the legacy wire names existing dashboards consume.
type Stats struct {
	Landlords  int64 `json:"locadores"`
	Tenants    int64 `json:"locatarios"`
	Properties int64 `json:"imoveis"`
}

// GetStats returns the record counts for a single owner.
func (s *GORMStore) GetStats(ctx context.Context, owner uint) (*Stats, error) {
	var stats Stats
	var err error

	if stats.Landlords, err = countOwned[models.Landlord](s.db, ctx, owner); err != nil {
		return nil, err
	}
	if stats.Tenants, err = countOwned[models.Tenant](s.db, ctx, owner); err != nil {
		return nil, err
	}
	if stats.Properties, err = countOwned[models.Property](s.db, ctx, owner); err != nil {
		return nil, err
	}

	return &stats, nil
}
