package types

import (
	"fmt"

	"github.com/samber/lo"
)

type PunchItemStatus string

const (
	PunchItemStatusOpen       PunchItemStatus = "open"
	PunchItemStatusInProgress PunchItemStatus = "in_progress"
	PunchItemStatusCompleted  PunchItemStatus = "completed"
	PunchItemStatusVerified   PunchItemStatus = "verified"
)

func (s PunchItemStatus) String() string {
	return string(s)
}

func (s PunchItemStatus) Validate() error {
	allowed := []PunchItemStatus{
		PunchItemStatusOpen,
		PunchItemStatusInProgress,
		PunchItemStatusCompleted,
		PunchItemStatusVerified,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid punch item status: %s", s)
	}
	return nil
}

func (s PunchItemStatus) BadgeVariant() BadgeVariant {
	switch s {
	case PunchItemStatusVerified:
		return BadgeSuccess
	case PunchItemStatusCompleted:
		return BadgeDefault
	case PunchItemStatusInProgress:
		return BadgeWarning
	default:
		return BadgeDestructive
	}
}

type PunchItemFilter struct {
	*QueryFilter
	*TimeRangeFilter

	PunchItemIDs []string          `form:"punch_item_ids" json:"punch_item_ids"`
	JobID        string            `form:"job_id" json:"job_id"`
	Trade        string            `form:"trade" json:"trade"`
	Statuses     []PunchItemStatus `form:"statuses" json:"statuses"`
}

func NewDefaultPunchItemFilter() *PunchItemFilter {
	return &PunchItemFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitPunchItemFilter() *PunchItemFilter {
	return &PunchItemFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *PunchItemFilter) Validate() error {
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
