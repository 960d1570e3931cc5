package drawrequest

import (
	"context"

	"github.com/siteledger/siteledger/internal/types"
)

type Repository interface {
	Create(ctx context.Context, d *DrawRequest) error
	Get(ctx context.Context, id string) (*DrawRequest, error)
	List(ctx context.Context, filter *types.DrawRequestFilter) ([]*DrawRequest, error)
	Count(ctx context.Context, filter *types.DrawRequestFilter) (int, error)
	Update(ctx context.Context, d *DrawRequest) error
	Archive(ctx context.Context, id string) error
}
