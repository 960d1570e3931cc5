package insurancepolicy

import (
	"context"

	"github.com/siteledger/siteledger/internal/types"
)

type Repository interface {
	Create(ctx context.Context, policy *InsurancePolicy) error
	Get(ctx context.Context, id string) (*InsurancePolicy, error)
	List(ctx context.Context, filter *types.InsurancePolicyFilter) ([]*InsurancePolicy, error)
	Count(ctx context.Context, filter *types.InsurancePolicyFilter) (int, error)
	Update(ctx context.Context, policy *InsurancePolicy) error
	Archive(ctx context.Context, id string) error
}
