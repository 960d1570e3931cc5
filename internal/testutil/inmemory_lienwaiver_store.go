package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/domain/lienwaiver"
	"github.com/siteledger/siteledger/internal/types"
)

type InMemoryLienWaiverStore struct {
	*InMemoryStore[lienwaiver.LienWaiver, *lienwaiver.LienWaiver]
}

func NewInMemoryLienWaiverStore() *InMemoryLienWaiverStore {
	return &InMemoryLienWaiverStore{
		InMemoryStore: NewInMemoryStore[lienwaiver.LienWaiver, *lienwaiver.LienWaiver](),
	}
}

func (s *InMemoryLienWaiverStore) match(filter *types.LienWaiverFilter) func(m *lienwaiver.LienWaiver) bool {
	return func(m *lienwaiver.LienWaiver) bool {
		if filter == nil {
			return true
		}
		if len(filter.LienWaiverIDs) > 0 && !lo.Contains(filter.LienWaiverIDs, m.ID) {
			return false
		}
		if filter.JobID != "" && m.JobID != filter.JobID {
			return false
		}
		if filter.VendorID != "" && m.VendorID != filter.VendorID {
			return false
		}
		if filter.WaiverType != "" && m.WaiverType != filter.WaiverType {
			return false
		}
		if len(filter.Statuses) > 0 && !lo.Contains(filter.Statuses, m.LienWaiverStatus) {
			return false
		}
		return matchTimeRange(m.CreatedAt, filter.TimeRangeFilter)
	}
}

func (s *InMemoryLienWaiverStore) List(ctx context.Context, filter *types.LienWaiverFilter) ([]*lienwaiver.LienWaiver, error) {
	var bf types.BaseFilter
	if filter != nil {
		bf = filter
	}
	return s.list(ctx, bf, s.match(filter)), nil
}

func (s *InMemoryLienWaiverStore) Count(ctx context.Context, filter *types.LienWaiverFilter) (int, error) {
	return s.count(ctx, s.match(filter)), nil
}
