package job

import (
	"context"

	"github.com/siteledger/siteledger/internal/types"
)

type Repository interface {
	Create(ctx context.Context, job *Job) error
	Get(ctx context.Context, id string) (*Job, error)
	List(ctx context.Context, filter *types.JobFilter) ([]*Job, error)
	Count(ctx context.Context, filter *types.JobFilter) (int, error)
	Update(ctx context.Context, job *Job) error
	Archive(ctx context.Context, id string) error
}
