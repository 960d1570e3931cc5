package repository

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/lienwaiver"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"
	"gorm.io/gorm"
)

type lienWaiverRepository struct {
	baseRepository[lienwaiver.LienWaiver, *lienwaiver.LienWaiver]
}

func NewLienWaiverRepository(client postgres.IClient, log *logger.Logger) lienwaiver.Repository {
	return &lienWaiverRepository{
		baseRepository: newBaseRepository[lienwaiver.LienWaiver, *lienwaiver.LienWaiver](client, log),
	}
}

func (r *lienWaiverRepository) List(ctx context.Context, filter *types.LienWaiverFilter) ([]*lienwaiver.LienWaiver, error) {
	return r.list(ctx, filter, lienWaiverScope(filter))
}

func (r *lienWaiverRepository) Count(ctx context.Context, filter *types.LienWaiverFilter) (int, error) {
	return r.count(ctx, lienWaiverScope(filter))
}

func lienWaiverScope(filter *types.LienWaiverFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if len(filter.LienWaiverIDs) > 0 {
			db = db.Where("id IN ?", filter.LienWaiverIDs)
		}
		if filter.JobID != "" {
			db = db.Where("job_id = ?", filter.JobID)
		}
		if filter.VendorID != "" {
			db = db.Where("vendor_id = ?", filter.VendorID)
		}
		if filter.WaiverType != "" {
			db = db.Where("waiver_type = ?", filter.WaiverType)
		}
		if len(filter.Statuses) > 0 {
			db = db.Where("lien_waiver_status IN ?", filter.Statuses)
		}
		return applyTimeRange(db, filter.TimeRangeFilter)
	}
}
