package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/domain/punchitem"
	"github.com/siteledger/siteledger/internal/types"
)

type InMemoryPunchItemStore struct {
	*InMemoryStore[punchitem.PunchItem, *punchitem.PunchItem]
}

func NewInMemoryPunchItemStore() *InMemoryPunchItemStore {
	return &InMemoryPunchItemStore{
		InMemoryStore: NewInMemoryStore[punchitem.PunchItem, *punchitem.PunchItem](),
	}
}

func (s *InMemoryPunchItemStore) match(filter *types.PunchItemFilter) func(m *punchitem.PunchItem) bool {
	return func(m *punchitem.PunchItem) bool {
		if filter == nil {
			return true
		}
		if len(filter.PunchItemIDs) > 0 && !lo.Contains(filter.PunchItemIDs, m.ID) {
			return false
		}
		if filter.JobID != "" && m.JobID != filter.JobID {
			return false
		}
		if filter.Trade != "" && m.Trade != filter.Trade {
			return false
		}
		if len(filter.Statuses) > 0 && !lo.Contains(filter.Statuses, m.PunchItemStatus) {
			return false
		}
		return matchTimeRange(m.CreatedAt, filter.TimeRangeFilter)
	}
}

func (s *InMemoryPunchItemStore) List(ctx context.Context, filter *types.PunchItemFilter) ([]*punchitem.PunchItem, error) {
	var bf types.BaseFilter
	if filter != nil {
		bf = filter
	}
	return s.list(ctx, bf, s.match(filter)), nil
}

func (s *InMemoryPunchItemStore) Count(ctx context.Context, filter *types.PunchItemFilter) (int, error) {
	return s.count(ctx, s.match(filter)), nil
}
