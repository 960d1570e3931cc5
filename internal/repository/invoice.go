package repository

import (
	"context"
	"time"

	"github.com/siteledger/siteledger/internal/domain/invoice"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	baseRepository[invoice.Invoice, *invoice.Invoice]
}

func NewInvoiceRepository(client postgres.IClient, log *logger.Logger) invoice.Repository {
	return &invoiceRepository{
		baseRepository: newBaseRepository[invoice.Invoice, *invoice.Invoice](client, log),
	}
}

func (r *invoiceRepository) List(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	return r.list(ctx, filter, invoiceScope(filter))
}

func (r *invoiceRepository) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	return r.count(ctx, invoiceScope(filter))
}

func invoiceScope(filter *types.InvoiceFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if len(filter.InvoiceIDs) > 0 {
			db = db.Where("id IN ?", filter.InvoiceIDs)
		}
		if filter.JobID != "" {
			db = db.Where("job_id = ?", filter.JobID)
		}
		if filter.VendorID != "" {
			db = db.Where("vendor_id = ?", filter.VendorID)
		}
		if len(filter.Statuses) > 0 {
			db = db.Where("invoice_status IN ?", filter.Statuses)
		}
		if filter.OverdueOnly {
			db = db.Where("invoice_status IN ?", []types.InvoiceStatus{types.InvoiceStatusSent, types.InvoiceStatusOverdue}).
				Where("due_date IS NOT NULL AND due_date < ?", time.Now().UTC())
		}
		return applyTimeRange(db, filter.TimeRangeFilter)
	}
}
