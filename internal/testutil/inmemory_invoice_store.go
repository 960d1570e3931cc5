package testutil

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/domain/invoice"
	"github.com/siteledger/siteledger/internal/types"
)

type InMemoryInvoiceStore struct {
	*InMemoryStore[invoice.Invoice, *invoice.Invoice]
}

func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		InMemoryStore: NewInMemoryStore[invoice.Invoice, *invoice.Invoice](),
	}
}

func (s *InMemoryInvoiceStore) match(filter *types.InvoiceFilter) func(m *invoice.Invoice) bool {
	return func(m *invoice.Invoice) bool {
		if filter == nil {
			return true
		}
		if len(filter.InvoiceIDs) > 0 && !lo.Contains(filter.InvoiceIDs, m.ID) {
			return false
		}
		if filter.JobID != "" && m.JobID != filter.JobID {
			return false
		}
		if filter.VendorID != "" && m.VendorID != filter.VendorID {
			return false
		}
		if len(filter.Statuses) > 0 && !lo.Contains(filter.Statuses, m.InvoiceStatus) {
			return false
		}
		if filter.OverdueOnly {
			open := m.InvoiceStatus == types.InvoiceStatusSent || m.InvoiceStatus == types.InvoiceStatusOverdue
			if !open || m.DueDate == nil || !m.DueDate.Before(time.Now().UTC()) {
				return false
			}
		}
		return matchTimeRange(m.CreatedAt, filter.TimeRangeFilter)
	}
}

func (s *InMemoryInvoiceStore) List(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	var bf types.BaseFilter
	if filter != nil {
		bf = filter
	}
	return s.list(ctx, bf, s.match(filter)), nil
}

func (s *InMemoryInvoiceStore) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	return s.count(ctx, s.match(filter)), nil
}
