package repository

import (
	"context"
	"time"

	"github.com/siteledger/siteledger/internal/domain/insurancepolicy"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/types"
	"gorm.io/gorm"
)

// expiringSoonWindow is how far ahead the expiring-soon filter looks.
const expiringSoonWindow = 30 * 24 * time.Hour

type insurancePolicyRepository struct {
	baseRepository[insurancepolicy.InsurancePolicy, *insurancepolicy.InsurancePolicy]
}

func NewInsurancePolicyRepository(client postgres.IClient, log *logger.Logger) insurancepolicy.Repository {
	return &insurancePolicyRepository{
		baseRepository: newBaseRepository[insurancepolicy.InsurancePolicy, *insurancepolicy.InsurancePolicy](client, log),
	}
}

func (r *insurancePolicyRepository) List(ctx context.Context, filter *types.InsurancePolicyFilter) ([]*insurancepolicy.InsurancePolicy, error) {
	return r.list(ctx, filter, insurancePolicyScope(filter))
}

func (r *insurancePolicyRepository) Count(ctx context.Context, filter *types.InsurancePolicyFilter) (int, error) {
	return r.count(ctx, insurancePolicyScope(filter))
}

func insurancePolicyScope(filter *types.InsurancePolicyFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if len(filter.InsurancePolicyIDs) > 0 {
			db = db.Where("id IN ?", filter.InsurancePolicyIDs)
		}
		if filter.VendorID != "" {
			db = db.Where("vendor_id = ?", filter.VendorID)
		}
		if filter.CoverageType != "" {
			db = db.Where("coverage_type = ?", filter.CoverageType)
		}
		if len(filter.Statuses) > 0 {
			db = db.Where("insurance_policy_status IN ?", filter.Statuses)
		}
		if filter.ExpiringSoon {
			now := time.Now().UTC()
			db = db.Where("expiration_date IS NOT NULL AND expiration_date > ? AND expiration_date <= ?",
				now, now.Add(expiringSoonWindow))
		}
		return applyTimeRange(db, filter.TimeRangeFilter)
	}
}
