package repository

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/drawrequest"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"
	"gorm.io/gorm"
)

type drawRequestRepository struct {
	baseRepository[drawrequest.DrawRequest, *drawrequest.DrawRequest]
}

func NewDrawRequestRepository(client postgres.IClient, log *logger.Logger) drawrequest.Repository {
	return &drawRequestRepository{
		baseRepository: newBaseRepository[drawrequest.DrawRequest, *drawrequest.DrawRequest](client, log),
	}
}

func (r *drawRequestRepository) List(ctx context.Context, filter *types.DrawRequestFilter) ([]*drawrequest.DrawRequest, error) {
	return r.list(ctx, filter, drawRequestScope(filter))
}

func (r *drawRequestRepository) Count(ctx context.Context, filter *types.DrawRequestFilter) (int, error) {
	return r.count(ctx, drawRequestScope(filter))
}

func drawRequestScope(filter *types.DrawRequestFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if len(filter.DrawRequestIDs) > 0 {
			db = db.Where("id IN ?", filter.DrawRequestIDs)
		}
		if filter.JobID != "" {
			db = db.Where("job_id = ?", filter.JobID)
		}
		if len(filter.Statuses) > 0 {
			db = db.Where("draw_request_status IN ?", filter.Statuses)
		}
		return applyTimeRange(db, filter.TimeRangeFilter)
	}
}
