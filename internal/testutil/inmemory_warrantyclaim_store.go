package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/domain/warrantyclaim"
	"github.com/siteledger/siteledger/internal/types"
)

type InMemoryWarrantyClaimStore struct {
	*InMemoryStore[warrantyclaim.WarrantyClaim, *warrantyclaim.WarrantyClaim]
}

func NewInMemoryWarrantyClaimStore() *InMemoryWarrantyClaimStore {
	return &InMemoryWarrantyClaimStore{
		InMemoryStore: NewInMemoryStore[warrantyclaim.WarrantyClaim, *warrantyclaim.WarrantyClaim](),
	}
}

func (s *InMemoryWarrantyClaimStore) match(filter *types.WarrantyClaimFilter) func(m *warrantyclaim.WarrantyClaim) bool {
	return func(m *warrantyclaim.WarrantyClaim) bool {
		if filter == nil {
			return true
		}
		if len(filter.WarrantyClaimIDs) > 0 && !lo.Contains(filter.WarrantyClaimIDs, m.ID) {
			return false
		}
		if filter.JobID != "" && m.JobID != filter.JobID {
			return false
		}
		if len(filter.Statuses) > 0 && !lo.Contains(filter.Statuses, m.WarrantyClaimStatus) {
			return false
		}
		return matchTimeRange(m.CreatedAt, filter.TimeRangeFilter)
	}
}

func (s *InMemoryWarrantyClaimStore) List(ctx context.Context, filter *types.WarrantyClaimFilter) ([]*warrantyclaim.WarrantyClaim, error) {
	var bf types.BaseFilter
	if filter != nil {
		bf = filter
	}
	return s.list(ctx, bf, s.match(filter)), nil
}

func (s *InMemoryWarrantyClaimStore) Count(ctx context.Context, filter *types.WarrantyClaimFilter) (int, error) {
	return s.count(ctx, s.match(filter)), nil
}
