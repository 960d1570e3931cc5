package testutil

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/domain/account"
	"github.com/siteledger/siteledger/internal/types"
)

type InMemoryAccountStore struct {
	*InMemoryStore[account.Account, *account.Account]
}

func NewInMemoryAccountStore() *InMemoryAccountStore {
	return &InMemoryAccountStore{
		InMemoryStore: NewInMemoryStore[account.Account, *account.Account](),
	}
}

func (s *InMemoryAccountStore) match(filter *types.AccountFilter) func(m *account.Account) bool {
	return func(m *account.Account) bool {
		if filter == nil {
			return true
		}
		if len(filter.AccountIDs) > 0 && !lo.Contains(filter.AccountIDs, m.ID) {
			return false
		}
		if filter.AccountType != "" && m.AccountType != filter.AccountType {
			return false
		}
		if filter.CodePrefix != "" && !strings.HasPrefix(m.Code, filter.CodePrefix) {
			return false
		}
		if filter.ParentID != "" && (m.ParentAccountID == nil || *m.ParentAccountID != filter.ParentID) {
			return false
		}
		return matchTimeRange(m.CreatedAt, filter.TimeRangeFilter)
	}
}

func (s *InMemoryAccountStore) List(ctx context.Context, filter *types.AccountFilter) ([]*account.Account, error) {
	var bf types.BaseFilter
	if filter != nil {
		bf = filter
	}
	return s.list(ctx, bf, s.match(filter)), nil
}

func (s *InMemoryAccountStore) Count(ctx context.Context, filter *types.AccountFilter) (int, error) {
	return s.count(ctx, s.match(filter)), nil
}
