package repository

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/changeorder"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"
	"gorm.io/gorm"
)

type changeOrderRepository struct {
	baseRepository[changeorder.ChangeOrder, *changeorder.ChangeOrder]
}

func NewChangeOrderRepository(client postgres.IClient, log *logger.Logger) changeorder.Repository {
	return &changeOrderRepository{
		baseRepository: newBaseRepository[changeorder.ChangeOrder, *changeorder.ChangeOrder](client, log),
	}
}

func (r *changeOrderRepository) List(ctx context.Context, filter *types.ChangeOrderFilter) ([]*changeorder.ChangeOrder, error) {
	return r.list(ctx, filter, changeOrderScope(filter))
}

func (r *changeOrderRepository) Count(ctx context.Context, filter *types.ChangeOrderFilter) (int, error) {
	return r.count(ctx, changeOrderScope(filter))
}

func changeOrderScope(filter *types.ChangeOrderFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if len(filter.ChangeOrderIDs) > 0 {
			db = db.Where("id IN ?", filter.ChangeOrderIDs)
		}
		if filter.JobID != "" {
			db = db.Where("job_id = ?", filter.JobID)
		}
		if len(filter.Statuses) > 0 {
			db = db.Where("change_order_status IN ?", filter.Statuses)
		}
		return applyTimeRange(db, filter.TimeRangeFilter)
	}
}
