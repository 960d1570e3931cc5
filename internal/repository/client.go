package repository

import (
	"context"

	"github.com/siteledger/siteledger/internal/cache"
	"github.com/siteledger/siteledger/internal/domain/client"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"
	"gorm.io/gorm"
)

type clientRepository struct {
	baseRepository[client.Client, *client.Client]
	cache cache.Cache
}

func NewClientRepository(pg postgres.IClient, log *logger.Logger, c cache.Cache) client.Repository {
	return &clientRepository{
		baseRepository: newBaseRepository[client.Client, *client.Client](pg, log),
		cache:          c,
	}
}

func (r *clientRepository) Get(ctx context.Context, id string) (*client.Client, error) {
	key := cache.Key(cache.PrefixClient, types.GetTenantID(ctx), id)
	if v, ok := r.cache.Get(ctx, key); ok {
		if cl, ok := v.(*client.Client); ok {
			// The cache holds its own copy; callers may mutate the
			// returned row without affecting other readers.
			cp := *cl
			return &cp, nil
		}
	}

	cl, err := r.baseRepository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cp := *cl
	r.cache.Set(ctx, key, &cp, cache.DefaultExpiration)
	return cl, nil
}

func (r *clientRepository) Update(ctx context.Context, cl *client.Client) error {
	if err := r.baseRepository.Update(ctx, cl); err != nil {
		return err
	}
	r.cache.Delete(ctx, cache.Key(cache.PrefixClient, types.GetTenantID(ctx), cl.ID))
	return nil
}

func (r *clientRepository) Archive(ctx context.Context, id string) error {
	if err := r.baseRepository.Archive(ctx, id); err != nil {
		return err
	}
	r.cache.Delete(ctx, cache.Key(cache.PrefixClient, types.GetTenantID(ctx), id))
	return nil
}

func (r *clientRepository) List(ctx context.Context, filter *types.ClientFilter) ([]*client.Client, error) {
	return r.list(ctx, filter, clientScope(filter))
}

func (r *clientRepository) Count(ctx context.Context, filter *types.ClientFilter) (int, error) {
	return r.count(ctx, clientScope(filter))
}

func clientScope(filter *types.ClientFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if len(filter.ClientIDs) > 0 {
			db = db.Where("id IN ?", filter.ClientIDs)
		}
		return applyTimeRange(db, filter.TimeRangeFilter)
	}
}
