package repository

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/purchaseorder"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"
	"gorm.io/gorm"
)

type purchaseOrderRepository struct {
	baseRepository[purchaseorder.PurchaseOrder, *purchaseorder.PurchaseOrder]
}

func NewPurchaseOrderRepository(client postgres.IClient, log *logger.Logger) purchaseorder.Repository {
	return &purchaseOrderRepository{
		baseRepository: newBaseRepository[purchaseorder.PurchaseOrder, *purchaseorder.PurchaseOrder](client, log),
	}
}

func (r *purchaseOrderRepository) List(ctx context.Context, filter *types.PurchaseOrderFilter) ([]*purchaseorder.PurchaseOrder, error) {
	return r.list(ctx, filter, purchaseOrderScope(filter))
}

func (r *purchaseOrderRepository) Count(ctx context.Context, filter *types.PurchaseOrderFilter) (int, error) {
	return r.count(ctx, purchaseOrderScope(filter))
}

func purchaseOrderScope(filter *types.PurchaseOrderFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if len(filter.PurchaseOrderIDs) > 0 {
			db = db.Where("id IN ?", filter.PurchaseOrderIDs)
		}
		if filter.JobID != "" {
			db = db.Where("job_id = ?", filter.JobID)
		}
		if filter.VendorID != "" {
			db = db.Where("vendor_id = ?", filter.VendorID)
		}
		if len(filter.Statuses) > 0 {
			db = db.Where("purchase_order_status IN ?", filter.Statuses)
		}
		return applyTimeRange(db, filter.TimeRangeFilter)
	}
}
