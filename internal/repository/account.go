package repository

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/account"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"
	"gorm.io/gorm"
)

type accountRepository struct {
	baseRepository[account.Account, *account.Account]
}

func NewAccountRepository(client postgres.IClient, log *logger.Logger) account.Repository {
	return &accountRepository{
		baseRepository: newBaseRepository[account.Account, *account.Account](client, log),
	}
}

func (r *accountRepository) List(ctx context.Context, filter *types.AccountFilter) ([]*account.Account, error) {
	return r.list(ctx, filter, accountScope(filter))
}

func (r *accountRepository) Count(ctx context.Context, filter *types.AccountFilter) (int, error) {
	return r.count(ctx, accountScope(filter))
}

func accountScope(filter *types.AccountFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if len(filter.AccountIDs) > 0 {
			db = db.Where("id IN ?", filter.AccountIDs)
		}
		if filter.AccountType != "" {
			db = db.Where("account_type = ?", filter.AccountType)
		}
		if filter.CodePrefix != "" {
			db = db.Where("code LIKE ?", filter.CodePrefix+"%")
		}
		if filter.ParentID != "" {
			db = db.Where("parent_account_id = ?", filter.ParentID)
		}
		return applyTimeRange(db, filter.TimeRangeFilter)
	}
}
