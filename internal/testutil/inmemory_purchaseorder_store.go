package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/domain/purchaseorder"
	"github.com/siteledger/siteledger/internal/types"
)

type InMemoryPurchaseOrderStore struct {
	*InMemoryStore[purchaseorder.PurchaseOrder, *purchaseorder.PurchaseOrder]
}

func NewInMemoryPurchaseOrderStore() *InMemoryPurchaseOrderStore {
	return &InMemoryPurchaseOrderStore{
		InMemoryStore: NewInMemoryStore[purchaseorder.PurchaseOrder, *purchaseorder.PurchaseOrder](),
	}
}

func (s *InMemoryPurchaseOrderStore) match(filter *types.PurchaseOrderFilter) func(m *purchaseorder.PurchaseOrder) bool {
	return func(m *purchaseorder.PurchaseOrder) bool {
		if filter == nil {
			return true
		}
		if len(filter.PurchaseOrderIDs) > 0 && !lo.Contains(filter.PurchaseOrderIDs, m.ID) {
			return false
		}
		if filter.JobID != "" && m.JobID != filter.JobID {
			return false
		}
		if filter.VendorID != "" && m.VendorID != filter.VendorID {
			return false
		}
		if len(filter.Statuses) > 0 && !lo.Contains(filter.Statuses, m.PurchaseOrderStatus) {
			return false
		}
		return matchTimeRange(m.CreatedAt, filter.TimeRangeFilter)
	}
}

func (s *InMemoryPurchaseOrderStore) List(ctx context.Context, filter *types.PurchaseOrderFilter) ([]*purchaseorder.PurchaseOrder, error) {
	var bf types.BaseFilter
	if filter != nil {
		bf = filter
	}
	return s.list(ctx, bf, s.match(filter)), nil
}

func (s *InMemoryPurchaseOrderStore) Count(ctx context.Context, filter *types.PurchaseOrderFilter) (int, error) {
	return s.count(ctx, s.match(filter)), nil
}
