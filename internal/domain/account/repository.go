package account

import (
	"context"

	"github.com/siteledger/siteledger/internal/types"
)

type Repository interface {
	Create(ctx context.Context, account *Account) error
	Get(ctx context.Context, id string) (*Account, error)
	List(ctx context.Context, filter *types.AccountFilter) ([]*Account, error)
	Count(ctx context.Context, filter *types.AccountFilter) (int, error)
	Update(ctx context.Context, account *Account) error
	Archive(ctx context.Context, id string) error
}
