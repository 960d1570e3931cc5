package testutil

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/domain/insurancepolicy"
	"github.com/siteledger/siteledger/internal/types"
)

type InMemoryInsurancePolicyStore struct {
	*InMemoryStore[insurancepolicy.InsurancePolicy, *insurancepolicy.InsurancePolicy]
}

func NewInMemoryInsurancePolicyStore() *InMemoryInsurancePolicyStore {
	return &InMemoryInsurancePolicyStore{
		InMemoryStore: NewInMemoryStore[insurancepolicy.InsurancePolicy, *insurancepolicy.InsurancePolicy](),
	}
}

func (s *InMemoryInsurancePolicyStore) match(filter *types.InsurancePolicyFilter) func(m *insurancepolicy.InsurancePolicy) bool {
	return func(m *insurancepolicy.InsurancePolicy) bool {
		if filter == nil {
			return true
		}
		if len(filter.InsurancePolicyIDs) > 0 && !lo.Contains(filter.InsurancePolicyIDs, m.ID) {
			return false
		}
		if filter.VendorID != "" && m.VendorID != filter.VendorID {
			return false
		}
		if filter.CoverageType != "" && m.CoverageType != filter.CoverageType {
			return false
		}
		if len(filter.Statuses) > 0 && !lo.Contains(filter.Statuses, m.InsurancePolicyStatus) {
			return false
		}
		if filter.ExpiringSoon {
			now := time.Now().UTC()
			if m.ExpirationDate == nil || !m.ExpirationDate.After(now) || m.ExpirationDate.After(now.Add(30*24*time.Hour)) {
				return false
			}
		}
		return matchTimeRange(m.CreatedAt, filter.TimeRangeFilter)
	}
}

func (s *InMemoryInsurancePolicyStore) List(ctx context.Context, filter *types.InsurancePolicyFilter) ([]*insurancepolicy.InsurancePolicy, error) {
	var bf types.BaseFilter
	if filter != nil {
		bf = filter
	}
	return s.list(ctx, bf, s.match(filter)), nil
}

func (s *InMemoryInsurancePolicyStore) Count(ctx context.Context, filter *types.InsurancePolicyFilter) (int, error) {
	return s.count(ctx, s.match(filter)), nil
}
