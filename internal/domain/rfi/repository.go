package rfi

import (
	"context"

	"github.com/siteledger/siteledger/internal/types"
)

type Repository interface {
	Create(ctx context.Context, r *RFI) error
	Get(ctx context.Context, id string) (*RFI, error)
	List(ctx context.Context, filter *types.RFIFilter) ([]*RFI, error)
	Count(ctx context.Context, filter *types.RFIFilter) (int, error)
	Update(ctx context.Context, r *RFI) error
	Archive(ctx context.Context, id string) error
}
