package repository

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/rfi"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"
	"gorm.io/gorm"
)

type rfiRepository struct {
	baseRepository[rfi.RFI, *rfi.RFI]
}

func NewRFIRepository(client postgres.IClient, log *logger.Logger) rfi.Repository {
	return &rfiRepository{
		baseRepository: newBaseRepository[rfi.RFI, *rfi.RFI](client, log),
	}
}

func (r *rfiRepository) List(ctx context.Context, filter *types.RFIFilter) ([]*rfi.RFI, error) {
	return r.list(ctx, filter, rfiScope(filter))
}

func (r *rfiRepository) Count(ctx context.Context, filter *types.RFIFilter) (int, error) {
	return r.count(ctx, rfiScope(filter))
}

func rfiScope(filter *types.RFIFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if len(filter.RFIIDs) > 0 {
			db = db.Where("id IN ?", filter.RFIIDs)
		}
		if filter.JobID != "" {
			db = db.Where("job_id = ?", filter.JobID)
		}
		if len(filter.Statuses) > 0 {
			db = db.Where("rfi_status IN ?", filter.Statuses)
		}
		return applyTimeRange(db, filter.TimeRangeFilter)
	}
}
