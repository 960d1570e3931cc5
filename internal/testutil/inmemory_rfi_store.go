package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/domain/rfi"
	"github.com/siteledger/siteledger/internal/types"
)

type InMemoryRFIStore struct {
	*InMemoryStore[rfi.RFI, *rfi.RFI]
}

func NewInMemoryRFIStore() *InMemoryRFIStore {
	return &InMemoryRFIStore{
		InMemoryStore: NewInMemoryStore[rfi.RFI, *rfi.RFI](),
	}
}

func (s *InMemoryRFIStore) match(filter *types.RFIFilter) func(m *rfi.RFI) bool {
	return func(m *rfi.RFI) bool {
		if filter == nil {
			return true
		}
		if len(filter.RFIIDs) > 0 && !lo.Contains(filter.RFIIDs, m.ID) {
			return false
		}
		if filter.JobID != "" && m.JobID != filter.JobID {
			return false
		}
		if len(filter.Statuses) > 0 && !lo.Contains(filter.Statuses, m.RFIStatus) {
			return false
		}
		return matchTimeRange(m.CreatedAt, filter.TimeRangeFilter)
	}
}

func (s *InMemoryRFIStore) List(ctx context.Context, filter *types.RFIFilter) ([]*rfi.RFI, error) {
	var bf types.BaseFilter
	if filter != nil {
		bf = filter
	}
	return s.list(ctx, bf, s.match(filter)), nil
}

func (s *InMemoryRFIStore) Count(ctx context.Context, filter *types.RFIFilter) (int, error) {
	return s.count(ctx, s.match(filter)), nil
}
