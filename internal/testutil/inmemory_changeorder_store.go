package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/domain/changeorder"
	"github.com/siteledger/siteledger/internal/types"
)

type InMemoryChangeOrderStore struct {
	*InMemoryStore[changeorder.ChangeOrder, *changeorder.ChangeOrder]
}

func NewInMemoryChangeOrderStore() *InMemoryChangeOrderStore {
	return &InMemoryChangeOrderStore{
		InMemoryStore: NewInMemoryStore[changeorder.ChangeOrder, *changeorder.ChangeOrder](),
	}
}

func (s *InMemoryChangeOrderStore) match(filter *types.ChangeOrderFilter) func(m *changeorder.ChangeOrder) bool {
	return func(m *changeorder.ChangeOrder) bool {
		if filter == nil {
			return true
		}
		if len(filter.ChangeOrderIDs) > 0 && !lo.Contains(filter.ChangeOrderIDs, m.ID) {
			return false
		}
		if filter.JobID != "" && m.JobID != filter.JobID {
			return false
		}
		if len(filter.Statuses) > 0 && !lo.Contains(filter.Statuses, m.ChangeOrderStatus) {
			return false
		}
		return matchTimeRange(m.CreatedAt, filter.TimeRangeFilter)
	}
}

func (s *InMemoryChangeOrderStore) List(ctx context.Context, filter *types.ChangeOrderFilter) ([]*changeorder.ChangeOrder, error) {
	var bf types.BaseFilter
	if filter != nil {
		bf = filter
	}
	return s.list(ctx, bf, s.match(filter)), nil
}

func (s *InMemoryChangeOrderStore) Count(ctx context.Context, filter *types.ChangeOrderFilter) (int, error) {
	return s.count(ctx, s.match(filter)), nil
}
