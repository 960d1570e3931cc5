package types

import (
	"fmt"

	"github.com/samber/lo"
)

type DrawRequestStatus string

const (
	DrawRequestStatusDraft     DrawRequestStatus = "draft"
	DrawRequestStatusSubmitted DrawRequestStatus = "submitted"
	DrawRequestStatusApproved  DrawRequestStatus = "approved"
	DrawRequestStatusFunded    DrawRequestStatus = "funded"
)

func (s DrawRequestStatus) String() string {
	return string(s)
}

func (s DrawRequestStatus) Validate() error {
	allowed := []DrawRequestStatus{
		DrawRequestStatusDraft,
		DrawRequestStatusSubmitted,
		DrawRequestStatusApproved,
		DrawRequestStatusFunded,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid draw request status: %s", s)
	}
	return nil
}

func (s DrawRequestStatus) BadgeVariant() BadgeVariant {
	switch s {
	case DrawRequestStatusFunded:
		return BadgeSuccess
	case DrawRequestStatusApproved:
		return BadgeDefault
	case DrawRequestStatusSubmitted:
		return BadgeWarning
	default:
		return BadgeSecondary
	}
}

type DrawRequestFilter struct {
	*QueryFilter
	*TimeRangeFilter

	DrawRequestIDs []string            `form:"draw_request_ids" json:"draw_request_ids"`
	JobID          string              `form:"job_id" json:"job_id"`
	Statuses       []DrawRequestStatus `form:"statuses" json:"statuses"`
}

func NewDefaultDrawRequestFilter() *DrawRequestFilter {
	return &DrawRequestFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitDrawRequestFilter() *DrawRequestFilter {
	return &DrawRequestFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *DrawRequestFilter) Validate() error {
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
