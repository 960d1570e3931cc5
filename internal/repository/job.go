package repository

import (
	"context"

	"github.com/siteledger/siteledger/internal/cache"
	"github.com/siteledger/siteledger/internal/domain/job"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"
	"gorm.io/gorm"
)

type jobRepository struct {
	baseRepository[job.Job, *job.Job]
	cache cache.Cache
}

func NewJobRepository(client postgres.IClient, log *logger.Logger, c cache.Cache) job.Repository {
	return &jobRepository{
		baseRepository: newBaseRepository[job.Job, *job.Job](client, log),
		cache:          c,
	}
}

func (r *jobRepository) Get(ctx context.Context, id string) (*job.Job, error) {
	key := cache.Key(cache.PrefixJob, types.GetTenantID(ctx), id)
	if v, ok := r.cache.Get(ctx, key); ok {
		if j, ok := v.(*job.Job); ok {
			// The cache holds its own copy; callers may mutate the
			// returned row without affecting other readers.
			cp := *j
			return &cp, nil
		}
	}

	j, err := r.baseRepository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cp := *j
	r.cache.Set(ctx, key, &cp, cache.DefaultExpiration)
	return j, nil
}

func (r *jobRepository) Update(ctx context.Context, j *job.Job) error {
	if err := r.baseRepository.Update(ctx, j); err != nil {
		return err
	}
	r.cache.Delete(ctx, cache.Key(cache.PrefixJob, types.GetTenantID(ctx), j.ID))
	return nil
}

func (r *jobRepository) Archive(ctx context.Context, id string) error {
	if err := r.baseRepository.Archive(ctx, id); err != nil {
		return err
	}
	r.cache.Delete(ctx, cache.Key(cache.PrefixJob, types.GetTenantID(ctx), id))
	return nil
}

func (r *jobRepository) List(ctx context.Context, filter *types.JobFilter) ([]*job.Job, error) {
	return r.list(ctx, filter, jobScope(filter))
}

func (r *jobRepository) Count(ctx context.Context, filter *types.JobFilter) (int, error) {
	return r.count(ctx, jobScope(filter))
}

func jobScope(filter *types.JobFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if len(filter.JobIDs) > 0 {
			db = db.Where("id IN ?", filter.JobIDs)
		}
		if filter.ClientID != "" {
			db = db.Where("client_id = ?", filter.ClientID)
		}
		if len(filter.Statuses) > 0 {
			db = db.Where("job_status IN ?", filter.Statuses)
		}
		return applyTimeRange(db, filter.TimeRangeFilter)
	}
}
