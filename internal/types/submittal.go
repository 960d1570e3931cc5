package types

import (
	"fmt"

	"github.com/samber/lo"
)

type SubmittalStatus string

const (
	SubmittalStatusPending         SubmittalStatus = "pending"
	SubmittalStatusUnderReview     SubmittalStatus = "under_review"
	SubmittalStatusApproved        SubmittalStatus = "approved"
	SubmittalStatusReviseResubmit  SubmittalStatus = "revise_resubmit"
)

func (s SubmittalStatus) String() string {
	return string(s)
}

func (s SubmittalStatus) Validate() error {
	allowed := []SubmittalStatus{
		SubmittalStatusPending,
		SubmittalStatusUnderReview,
		SubmittalStatusApproved,
		SubmittalStatusReviseResubmit,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid submittal status: %s", s)
	}
	return nil
}

func (s SubmittalStatus) BadgeVariant() BadgeVariant {
	switch s {
	case SubmittalStatusApproved:
		return BadgeSuccess
	case SubmittalStatusUnderReview:
		return BadgeDefault
	case SubmittalStatusReviseResubmit:
		return BadgeDestructive
	default:
		return BadgeSecondary
	}
}

type SubmittalFilter struct {
	*QueryFilter
	*TimeRangeFilter

	SubmittalIDs []string          `form:"submittal_ids" json:"submittal_ids"`
	JobID        string            `form:"job_id" json:"job_id"`
	SpecSection  string            `form:"spec_section" json:"spec_section"`
	Statuses     []SubmittalStatus `form:"statuses" json:"statuses"`
}

func NewDefaultSubmittalFilter() *SubmittalFilter {
	return &SubmittalFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitSubmittalFilter() *SubmittalFilter {
	return &SubmittalFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *SubmittalFilter) Validate() error {
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
