package repository

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/punchitem"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"
	"gorm.io/gorm"
)

type punchItemRepository struct {
	baseRepository[punchitem.PunchItem, *punchitem.PunchItem]
}

func NewPunchItemRepository(client postgres.IClient, log *logger.Logger) punchitem.Repository {
	return &punchItemRepository{
		baseRepository: newBaseRepository[punchitem.PunchItem, *punchitem.PunchItem](client, log),
	}
}

func (r *punchItemRepository) List(ctx context.Context, filter *types.PunchItemFilter) ([]*punchitem.PunchItem, error) {
	return r.list(ctx, filter, punchItemScope(filter))
}

func (r *punchItemRepository) Count(ctx context.Context, filter *types.PunchItemFilter) (int, error) {
	return r.count(ctx, punchItemScope(filter))
}

func punchItemScope(filter *types.PunchItemFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if len(filter.PunchItemIDs) > 0 {
			db = db.Where("id IN ?", filter.PunchItemIDs)
		}
		if filter.JobID != "" {
			db = db.Where("job_id = ?", filter.JobID)
		}
		if filter.Trade != "" {
			db = db.Where("trade = ?", filter.Trade)
		}
		if len(filter.Statuses) > 0 {
			db = db.Where("punch_item_status IN ?", filter.Statuses)
		}
		return applyTimeRange(db, filter.TimeRangeFilter)
	}
}
