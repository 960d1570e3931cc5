package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/domain/client"
	"github.com/siteledger/siteledger/internal/types"
)

type InMemoryClientStore struct {
	*InMemoryStore[client.Client, *client.Client]
}

func NewInMemoryClientStore() *InMemoryClientStore {
	return &InMemoryClientStore{
		InMemoryStore: NewInMemoryStore[client.Client, *client.Client](),
	}
}

func (s *InMemoryClientStore) match(filter *types.ClientFilter) func(m *client.Client) bool {
	return func(m *client.Client) bool {
		if filter == nil {
			return true
		}
		if len(filter.ClientIDs) > 0 && !lo.Contains(filter.ClientIDs, m.ID) {
			return false
		}
		return matchTimeRange(m.CreatedAt, filter.TimeRangeFilter)
	}
}

func (s *InMemoryClientStore) List(ctx context.Context, filter *types.ClientFilter) ([]*client.Client, error) {
	var bf types.BaseFilter
	if filter != nil {
		bf = filter
	}
	return s.list(ctx, bf, s.match(filter)), nil
}

func (s *InMemoryClientStore) Count(ctx context.Context, filter *types.ClientFilter) (int, error) {
	return s.count(ctx, s.match(filter)), nil
}
