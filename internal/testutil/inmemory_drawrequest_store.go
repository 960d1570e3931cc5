package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/domain/drawrequest"
	"github.com/siteledger/siteledger/internal/types"
)

type InMemoryDrawRequestStore struct {
	*InMemoryStore[drawrequest.DrawRequest, *drawrequest.DrawRequest]
}

func NewInMemoryDrawRequestStore() *InMemoryDrawRequestStore {
	return &InMemoryDrawRequestStore{
		InMemoryStore: NewInMemoryStore[drawrequest.DrawRequest, *drawrequest.DrawRequest](),
	}
}

func (s *InMemoryDrawRequestStore) match(filter *types.DrawRequestFilter) func(m *drawrequest.DrawRequest) bool {
	return func(m *drawrequest.DrawRequest) bool {
		if filter == nil {
			return true
		}
		if len(filter.DrawRequestIDs) > 0 && !lo.Contains(filter.DrawRequestIDs, m.ID) {
			return false
		}
		if filter.JobID != "" && m.JobID != filter.JobID {
			return false
		}
		if len(filter.Statuses) > 0 && !lo.Contains(filter.Statuses, m.DrawRequestStatus) {
			return false
		}
		return matchTimeRange(m.CreatedAt, filter.TimeRangeFilter)
	}
}

func (s *InMemoryDrawRequestStore) List(ctx context.Context, filter *types.DrawRequestFilter) ([]*drawrequest.DrawRequest, error) {
	var bf types.BaseFilter
	if filter != nil {
		bf = filter
	}
	return s.list(ctx, bf, s.match(filter)), nil
}

func (s *InMemoryDrawRequestStore) Count(ctx context.Context, filter *types.DrawRequestFilter) (int, error) {
	return s.count(ctx, s.match(filter)), nil
}
