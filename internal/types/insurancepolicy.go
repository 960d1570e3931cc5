package types

import (
	"fmt"

	"github.com/samber/lo"
)

type InsurancePolicyStatus string

const (
	InsurancePolicyStatusActive   InsurancePolicyStatus = "active"
	InsurancePolicyStatusExpiring InsurancePolicyStatus = "expiring"
	InsurancePolicyStatusExpired  InsurancePolicyStatus = "expired"
)

func (s InsurancePolicyStatus) String() string {
	return string(s)
}

func (s InsurancePolicyStatus) Validate() error {
	allowed := []InsurancePolicyStatus{
		InsurancePolicyStatusActive,
		InsurancePolicyStatusExpiring,
		InsurancePolicyStatusExpired,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid insurance policy status: %s", s)
	}
	return nil
}

func (s InsurancePolicyStatus) BadgeVariant() BadgeVariant {
	switch s {
	case InsurancePolicyStatusActive:
		return BadgeSuccess
	case InsurancePolicyStatusExpiring:
		return BadgeWarning
	default:
		return BadgeDestructive
	}
}

type InsuranceCoverageType string

const (
	InsuranceCoverageGeneralLiability InsuranceCoverageType = "general_liability"
	InsuranceCoverageWorkersComp      InsuranceCoverageType = "workers_comp"
	InsuranceCoverageAuto             InsuranceCoverageType = "auto"
	InsuranceCoverageUmbrella         InsuranceCoverageType = "umbrella"
)

func (t InsuranceCoverageType) String() string {
	return string(t)
}

func (t InsuranceCoverageType) Validate() error {
	allowed := []InsuranceCoverageType{
		InsuranceCoverageGeneralLiability,
		InsuranceCoverageWorkersComp,
		InsuranceCoverageAuto,
		InsuranceCoverageUmbrella,
	}
	if !lo.Contains(allowed, t) {
		return fmt.Errorf("invalid insurance coverage type: %s", t)
	}
	return nil
}

type InsurancePolicyFilter struct {
	*QueryFilter
	*TimeRangeFilter

	InsurancePolicyIDs []string                `form:"insurance_policy_ids" json:"insurance_policy_ids"`
	VendorID           string                  `form:"vendor_id" json:"vendor_id"`
	CoverageType       InsuranceCoverageType   `form:"coverage_type" json:"coverage_type"`
	Statuses           []InsurancePolicyStatus `form:"statuses" json:"statuses"`
	// ExpiringSoon restricts to policies expiring within the next 30 days
	ExpiringSoon bool `form:"expiring_soon" json:"expiring_soon"`
}

func NewDefaultInsurancePolicyFilter() *InsurancePolicyFilter {
	return &InsurancePolicyFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitInsurancePolicyFilter() *InsurancePolicyFilter {
	return &InsurancePolicyFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *InsurancePolicyFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultQueryFilter()
	}
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if err := f.TimeRangeFilter.Validate(); err != nil {
		return err
	}
	if f.CoverageType != "" {
		if err := f.CoverageType.Validate(); err != nil {
			return err
		}
	}
	for _, s := range f.Statuses {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
