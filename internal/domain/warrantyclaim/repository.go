package warrantyclaim

import (
	"context"

	"github.com/siteledger/siteledger/internal/types"
)

type Repository interface {
	Create(ctx context.Context, w *WarrantyClaim) error
	Get(ctx context.Context, id string) (*WarrantyClaim, error)
	List(ctx context.Context, filter *types.WarrantyClaimFilter) ([]*WarrantyClaim, error)
	Count(ctx context.Context, filter *types.WarrantyClaimFilter) (int, error)
	Update(ctx context.Context, w *WarrantyClaim) error
	Archive(ctx context.Context, id string) error
}
