package repository

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/submittal"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"
	"gorm.io/gorm"
)

type submittalRepository struct {
	baseRepository[submittal.Submittal, *submittal.Submittal]
}

func NewSubmittalRepository(client postgres.IClient, log *logger.Logger) submittal.Repository {
	return &submittalRepository{
		baseRepository: newBaseRepository[submittal.Submittal, *submittal.Submittal](client, log),
	}
}

func (r *submittalRepository) List(ctx context.Context, filter *types.SubmittalFilter) ([]*submittal.Submittal, error) {
	return r.list(ctx, filter, submittalScope(filter))
}

func (r *submittalRepository) Count(ctx context.Context, filter *types.SubmittalFilter) (int, error) {
	return r.count(ctx, submittalScope(filter))
}

func submittalScope(filter *types.SubmittalFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if len(filter.SubmittalIDs) > 0 {
			db = db.Where("id IN ?", filter.SubmittalIDs)
		}
		if filter.JobID != "" {
			db = db.Where("job_id = ?", filter.JobID)
		}
		if filter.SpecSection != "" {
			db = db.Where("spec_section = ?", filter.SpecSection)
		}
		if len(filter.Statuses) > 0 {
			db = db.Where("submittal_status IN ?", filter.Statuses)
		}
		return applyTimeRange(db, filter.TimeRangeFilter)
	}
}
