package types

import (
	"fmt"

	"github.com/samber/lo"
)

// WarrantyClaimStatus is the claim workflow state. `denied` is a terminal
// workflow state, not an archival mechanism: archiving a claim always goes
// through the soft-delete marker like every other entity.
type WarrantyClaimStatus string

const (
	WarrantyClaimStatusOpen      WarrantyClaimStatus = "open"
	WarrantyClaimStatusScheduled WarrantyClaimStatus = "scheduled"
	WarrantyClaimStatusResolved  WarrantyClaimStatus = "resolved"
	WarrantyClaimStatusDenied    WarrantyClaimStatus = "denied"
)

func (s WarrantyClaimStatus) String() string {
	return string(s)
}

func (s WarrantyClaimStatus) Validate() error {
	allowed := []WarrantyClaimStatus{
		WarrantyClaimStatusOpen,
		WarrantyClaimStatusScheduled,
		WarrantyClaimStatusResolved,
		WarrantyClaimStatusDenied,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid warranty claim status: %s", s)
	}
	return nil
}

func (s WarrantyClaimStatus) BadgeVariant() BadgeVariant {
	switch s {
	case WarrantyClaimStatusResolved:
		return BadgeSuccess
	case WarrantyClaimStatusScheduled:
		return BadgeDefault
	case WarrantyClaimStatusDenied:
		return BadgeDestructive
	default:
		return BadgeWarning
	}
}

type WarrantyClaimFilter struct {
	*QueryFilter
	*TimeRangeFilter

	WarrantyClaimIDs []string              `form:"warranty_claim_ids" json:"warranty_claim_ids"`
	JobID            string                `form:"job_id" json:"job_id"`
	Statuses         []WarrantyClaimStatus `form:"statuses" json:"statuses"`
}

func NewDefaultWarrantyClaimFilter() *WarrantyClaimFilter {
	return &WarrantyClaimFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitWarrantyClaimFilter() *WarrantyClaimFilter {
	return &WarrantyClaimFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *WarrantyClaimFilter) Validate() error {
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
	for _, s := range f.Statuses {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
