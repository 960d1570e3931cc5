package lienwaiver

import (
	"context"

	"github.com/siteledger/siteledger/internal/types"
)

type Repository interface {
	Create(ctx context.Context, l *LienWaiver) error
	Get(ctx context.Context, id string) (*LienWaiver, error)
	List(ctx context.Context, filter *types.LienWaiverFilter) ([]*LienWaiver, error)
	Count(ctx context.Context, filter *types.LienWaiverFilter) (int, error)
	Update(ctx context.Context, l *LienWaiver) error
	Archive(ctx context.Context, id string) error
}
