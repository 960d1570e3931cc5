package repository

import (
	"context"

	"github.com/siteledger/siteledger/internal/cache"
	"github.com/siteledger/siteledger/internal/domain/vendor"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"
	"gorm.io/gorm"
)

type vendorRepository struct {
	baseRepository[vendor.Vendor, *vendor.Vendor]
	cache cache.Cache
}

func NewVendorRepository(client postgres.IClient, log *logger.Logger, c cache.Cache) vendor.Repository {
	return &vendorRepository{
		baseRepository: newBaseRepository[vendor.Vendor, *vendor.Vendor](client, log),
		cache:          c,
	}
}

func (r *vendorRepository) Get(ctx context.Context, id string) (*vendor.Vendor, error) {
	key := cache.Key(cache.PrefixVendor, types.GetTenantID(ctx), id)
	if v, ok := r.cache.Get(ctx, key); ok {
		if vend, ok := v.(*vendor.Vendor); ok {
			// The cache holds its own copy; callers may mutate the
			// returned row without affecting other readers.
			cp := *vend
			return &cp, nil
		}
	}

	vend, err := r.baseRepository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cp := *vend
	r.cache.Set(ctx, key, &cp, cache.DefaultExpiration)
	return vend, nil
}

func (r *vendorRepository) Update(ctx context.Context, v *vendor.Vendor) error {
	if err := r.baseRepository.Update(ctx, v); err != nil {
		return err
	}
	r.cache.Delete(ctx, cache.Key(cache.PrefixVendor, types.GetTenantID(ctx), v.ID))
	return nil
}

func (r *vendorRepository) Archive(ctx context.Context, id string) error {
	if err := r.baseRepository.Archive(ctx, id); err != nil {
		return err
	}
	r.cache.Delete(ctx, cache.Key(cache.PrefixVendor, types.GetTenantID(ctx), id))
	return nil
}

func (r *vendorRepository) List(ctx context.Context, filter *types.VendorFilter) ([]*vendor.Vendor, error) {
	return r.list(ctx, filter, vendorScope(filter))
}

func (r *vendorRepository) Count(ctx context.Context, filter *types.VendorFilter) (int, error) {
	return r.count(ctx, vendorScope(filter))
}

func vendorScope(filter *types.VendorFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if len(filter.VendorIDs) > 0 {
			db = db.Where("id IN ?", filter.VendorIDs)
		}
		if filter.Trade != "" {
			db = db.Where("trade = ?", filter.Trade)
		}
		return applyTimeRange(db, filter.TimeRangeFilter)
	}
}
