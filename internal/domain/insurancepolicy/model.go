package insurancepolicy

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger/internal/types"
)

type InsurancePolicy struct {
	ID                    string                      `json:"id" gorm:"primaryKey;column:id"`
	VendorID              string                      `json:"vendor_id" gorm:"column:vendor_id;index"`
	Carrier               string                      `json:"carrier" gorm:"column:carrier"`
	PolicyNumber          string                      `json:"policy_number" gorm:"column:policy_number"`
	CoverageType          types.InsuranceCoverageType `json:"coverage_type" gorm:"column:coverage_type"`
	CoverageAmount        *decimal.Decimal            `json:"coverage_amount,omitempty" gorm:"column:coverage_amount;type:numeric"`
	EffectiveDate         *time.Time                  `json:"effective_date,omitempty" gorm:"column:effective_date"`
	ExpirationDate        *time.Time                  `json:"expiration_date,omitempty" gorm:"column:expiration_date"`
	InsurancePolicyStatus types.InsurancePolicyStatus `json:"insurance_policy_status" gorm:"column:insurance_policy_status"`
	types.BaseModel
}

func (InsurancePolicy) TableName() string {
	return "insurance_policies"
}

func (p *InsurancePolicy) GetID() string {
	return p.ID
}

func (p *InsurancePolicy) GetBaseModel() *types.BaseModel {
	return &p.BaseModel
}

// ExpiresWithin reports whether the policy expires inside the given window
func (p *InsurancePolicy) ExpiresWithin(now time.Time, window time.Duration) bool {
	if p.ExpirationDate == nil {
		return false
	}
	return p.ExpirationDate.After(now) && p.ExpirationDate.Before(now.Add(window))
}
