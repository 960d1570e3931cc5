package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/domain/job"
	"github.com/siteledger/siteledger/internal/types"
)

type InMemoryJobStore struct {
	*InMemoryStore[job.Job, *job.Job]
}

func NewInMemoryJobStore() *InMemoryJobStore {
	return &InMemoryJobStore{
		InMemoryStore: NewInMemoryStore[job.Job, *job.Job](),
	}
}

func (s *InMemoryJobStore) match(filter *types.JobFilter) func(m *job.Job) bool {
	return func(m *job.Job) bool {
		if filter == nil {
			return true
		}
		if len(filter.JobIDs) > 0 && !lo.Contains(filter.JobIDs, m.ID) {
			return false
		}
		if filter.ClientID != "" && m.ClientID != filter.ClientID {
			return false
		}
		if len(filter.Statuses) > 0 && !lo.Contains(filter.Statuses, m.JobStatus) {
			return false
		}
		return matchTimeRange(m.CreatedAt, filter.TimeRangeFilter)
	}
}

func (s *InMemoryJobStore) List(ctx context.Context, filter *types.JobFilter) ([]*job.Job, error) {
	var bf types.BaseFilter
	if filter != nil {
		bf = filter
	}
	return s.list(ctx, bf, s.match(filter)), nil
}

func (s *InMemoryJobStore) Count(ctx context.Context, filter *types.JobFilter) (int, error) {
	return s.count(ctx, s.match(filter)), nil
}
