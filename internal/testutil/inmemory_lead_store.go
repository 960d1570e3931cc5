package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/domain/lead"
	"github.com/siteledger/siteledger/internal/types"
)

type InMemoryLeadStore struct {
	*InMemoryStore[lead.Lead, *lead.Lead]
}

func NewInMemoryLeadStore() *InMemoryLeadStore {
	return &InMemoryLeadStore{
		InMemoryStore: NewInMemoryStore[lead.Lead, *lead.Lead](),
	}
}

func (s *InMemoryLeadStore) match(filter *types.LeadFilter) func(m *lead.Lead) bool {
	return func(m *lead.Lead) bool {
		if filter == nil {
			return true
		}
		if len(filter.LeadIDs) > 0 && !lo.Contains(filter.LeadIDs, m.ID) {
			return false
		}
		if filter.Source != "" && m.Source != filter.Source {
			return false
		}
		if len(filter.Statuses) > 0 && !lo.Contains(filter.Statuses, m.LeadStatus) {
			return false
		}
		return matchTimeRange(m.CreatedAt, filter.TimeRangeFilter)
	}
}

func (s *InMemoryLeadStore) List(ctx context.Context, filter *types.LeadFilter) ([]*lead.Lead, error) {
	var bf types.BaseFilter
	if filter != nil {
		bf = filter
	}
	return s.list(ctx, bf, s.match(filter)), nil
}

func (s *InMemoryLeadStore) Count(ctx context.Context, filter *types.LeadFilter) (int, error) {
	return s.count(ctx, s.match(filter)), nil
}
