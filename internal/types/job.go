package types

import (
	"fmt"

	"github.com/samber/lo"
)

type JobStatus string

const (
	JobStatusPlanning  JobStatus = "planning"
	JobStatusActive    JobStatus = "active"
	JobStatusOnHold    JobStatus = "on_hold"
	JobStatusCompleted JobStatus = "completed"
)

func (s JobStatus) String() string {
	return string(s)
}

func (s JobStatus) Validate() error {
	allowed := []JobStatus{
		JobStatusPlanning,
		JobStatusActive,
		JobStatusOnHold,
		JobStatusCompleted,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid job status: %s", s)
	}
	return nil
}

func (s JobStatus) BadgeVariant() BadgeVariant {
	switch s {
	case JobStatusActive:
		return BadgeSuccess
	case JobStatusOnHold:
		return BadgeWarning
	case JobStatusCompleted:
		return BadgeSecondary
	default:
		return BadgeOutline
	}
}

type JobFilter struct {
	*QueryFilter
	*TimeRangeFilter

	JobIDs   []string    `form:"job_ids" json:"job_ids"`
	ClientID string      `form:"client_id" json:"client_id"`
	Statuses []JobStatus `form:"statuses" json:"statuses"`
}

func NewDefaultJobFilter() *JobFilter {
	return &JobFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitJobFilter() *JobFilter {
	return &JobFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *JobFilter) Validate() error {
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
