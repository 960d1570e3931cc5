package submittal

import (
	"context"

	"github.com/siteledger/siteledger/internal/types"
)

type Repository interface {
	Create(ctx context.Context, s *Submittal) error
	Get(ctx context.Context, id string) (*Submittal, error)
	List(ctx context.Context, filter *types.SubmittalFilter) ([]*Submittal, error)
	Count(ctx context.Context, filter *types.SubmittalFilter) (int, error)
	Update(ctx context.Context, s *Submittal) error
	Archive(ctx context.Context, id string) error
}
