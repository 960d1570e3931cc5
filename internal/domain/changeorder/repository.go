package changeorder

import (
	"context"

	"github.com/siteledger/siteledger/internal/types"
)

type Repository interface {
	Create(ctx context.Context, co *ChangeOrder) error
	Get(ctx context.Context, id string) (*ChangeOrder, error)
	List(ctx context.Context, filter *types.ChangeOrderFilter) ([]*ChangeOrder, error)
	Count(ctx context.Context, filter *types.ChangeOrderFilter) (int, error)
	Update(ctx context.Context, co *ChangeOrder) error
	Archive(ctx context.Context, id string) error
}
