package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/domain/submittal"
	"github.com/siteledger/siteledger/internal/types"
)

type InMemorySubmittalStore struct {
	*InMemoryStore[submittal.Submittal, *submittal.Submittal]
}

func NewInMemorySubmittalStore() *InMemorySubmittalStore {
	return &InMemorySubmittalStore{
		InMemoryStore: NewInMemoryStore[submittal.Submittal, *submittal.Submittal](),
	}
}

func (s *InMemorySubmittalStore) match(filter *types.SubmittalFilter) func(m *submittal.Submittal) bool {
	return func(m *submittal.Submittal) bool {
		if filter == nil {
			return true
		}
		if len(filter.SubmittalIDs) > 0 && !lo.Contains(filter.SubmittalIDs, m.ID) {
			return false
		}
		if filter.JobID != "" && m.JobID != filter.JobID {
			return false
		}
		if filter.SpecSection != "" && m.SpecSection != filter.SpecSection {
			return false
		}
		if len(filter.Statuses) > 0 && !lo.Contains(filter.Statuses, m.SubmittalStatus) {
			return false
		}
		return matchTimeRange(m.CreatedAt, filter.TimeRangeFilter)
	}
}

func (s *InMemorySubmittalStore) List(ctx context.Context, filter *types.SubmittalFilter) ([]*submittal.Submittal, error) {
	var bf types.BaseFilter
	if filter != nil {
		bf = filter
	}
	return s.list(ctx, bf, s.match(filter)), nil
}

func (s *InMemorySubmittalStore) Count(ctx context.Context, filter *types.SubmittalFilter) (int, error) {
	return s.count(ctx, s.match(filter)), nil
}
