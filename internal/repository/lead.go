package repository

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/lead"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"
	"gorm.io/gorm"
)

type leadRepository struct {
	baseRepository[lead.Lead, *lead.Lead]
}

func NewLeadRepository(client postgres.IClient, log *logger.Logger) lead.Repository {
	return &leadRepository{
		baseRepository: newBaseRepository[lead.Lead, *lead.Lead](client, log),
	}
}

func (r *leadRepository) List(ctx context.Context, filter *types.LeadFilter) ([]*lead.Lead, error) {
	return r.list(ctx, filter, leadScope(filter))
}

func (r *leadRepository) Count(ctx context.Context, filter *types.LeadFilter) (int, error) {
	return r.count(ctx, leadScope(filter))
}

func leadScope(filter *types.LeadFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if len(filter.LeadIDs) > 0 {
			db = db.Where("id IN ?", filter.LeadIDs)
		}
		if filter.Source != "" {
			db = db.Where("source = ?", filter.Source)
		}
		if len(filter.Statuses) > 0 {
			db = db.Where("lead_status IN ?", filter.Statuses)
		}
		return applyTimeRange(db, filter.TimeRangeFilter)
	}
}
