package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/domain/vendor"
	"github.com/siteledger/siteledger/internal/types"
)

type InMemoryVendorStore struct {
	*InMemoryStore[vendor.Vendor, *vendor.Vendor]
}

func NewInMemoryVendorStore() *InMemoryVendorStore {
	return &InMemoryVendorStore{
		InMemoryStore: NewInMemoryStore[vendor.Vendor, *vendor.Vendor](),
	}
}

func (s *InMemoryVendorStore) match(filter *types.VendorFilter) func(m *vendor.Vendor) bool {
	return func(m *vendor.Vendor) bool {
		if filter == nil {
			return true
		}
		if len(filter.VendorIDs) > 0 && !lo.Contains(filter.VendorIDs, m.ID) {
			return false
		}
		if filter.Trade != "" && m.Trade != filter.Trade {
			return false
		}
		return matchTimeRange(m.CreatedAt, filter.TimeRangeFilter)
	}
}

func (s *InMemoryVendorStore) List(ctx context.Context, filter *types.VendorFilter) ([]*vendor.Vendor, error) {
	var bf types.BaseFilter
	if filter != nil {
		bf = filter
	}
	return s.list(ctx, bf, s.match(filter)), nil
}

func (s *InMemoryVendorStore) Count(ctx context.Context, filter *types.VendorFilter) (int, error) {
	return s.count(ctx, s.match(filter)), nil
}
