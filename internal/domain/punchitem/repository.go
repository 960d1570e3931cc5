package punchitem

import (
	"context"

	"github.com/siteledger/siteledger/internal/types"
)

type Repository interface {
	Create(ctx context.Context, p *PunchItem) error
	Get(ctx context.Context, id string) (*PunchItem, error)
	List(ctx context.Context, filter *types.PunchItemFilter) ([]*PunchItem, error)
	Count(ctx context.Context, filter *types.PunchItemFilter) (int, error)
	Update(ctx context.Context, p *PunchItem) error
	Archive(ctx context.Context, id string) error
}
