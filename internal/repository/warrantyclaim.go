package repository

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/warrantyclaim"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"
	"gorm.io/gorm"
)

type warrantyClaimRepository struct {
	baseRepository[warrantyclaim.WarrantyClaim, *warrantyclaim.WarrantyClaim]
}

func NewWarrantyClaimRepository(client postgres.IClient, log *logger.Logger) warrantyclaim.Repository {
	return &warrantyClaimRepository{
		baseRepository: newBaseRepository[warrantyclaim.WarrantyClaim, *warrantyclaim.WarrantyClaim](client, log),
	}
}

func (r *warrantyClaimRepository) List(ctx context.Context, filter *types.WarrantyClaimFilter) ([]*warrantyclaim.WarrantyClaim, error) {
	return r.list(ctx, filter, warrantyClaimScope(filter))
}

func (r *warrantyClaimRepository) Count(ctx context.Context, filter *types.WarrantyClaimFilter) (int, error) {
	return r.count(ctx, warrantyClaimScope(filter))
}

func warrantyClaimScope(filter *types.WarrantyClaimFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if len(filter.WarrantyClaimIDs) > 0 {
			db = db.Where("id IN ?", filter.WarrantyClaimIDs)
		}
		if filter.JobID != "" {
			db = db.Where("job_id = ?", filter.JobID)
		}
		if len(filter.Statuses) > 0 {
			db = db.Where("warranty_claim_status IN ?", filter.Statuses)
		}
		return applyTimeRange(db, filter.TimeRangeFilter)
	}
}
