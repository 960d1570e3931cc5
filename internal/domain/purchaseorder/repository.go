package purchaseorder

import (
	"context"

	"github.com/siteledger/siteledger/internal/types"
)

type Repository interface {
	Create(ctx context.Context, p *PurchaseOrder) error
	Get(ctx context.Context, id string) (*PurchaseOrder, error)
	List(ctx context.Context, filter *types.PurchaseOrderFilter) ([]*PurchaseOrder, error)
	Count(ctx context.Context, filter *types.PurchaseOrderFilter) (int, error)
	Update(ctx context.Context, p *PurchaseOrder) error
	Archive(ctx context.Context, id string) error
}
