package types

import (
	"fmt"

	"github.com/samber/lo"
)

type RFIStatus string

const (
	RFIStatusOpen     RFIStatus = "open"
	RFIStatusAnswered RFIStatus = "answered"
	RFIStatusClosed   RFIStatus = "closed"
)

func (s RFIStatus) String() string {
	return string(s)
}

func (s RFIStatus) Validate() error {
	allowed := []RFIStatus{
		RFIStatusOpen,
		RFIStatusAnswered,
		RFIStatusClosed,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid rfi status: %s", s)
	}
	return nil
}

func (s RFIStatus) BadgeVariant() BadgeVariant {
	switch s {
	case RFIStatusAnswered:
		return BadgeSuccess
	case RFIStatusClosed:
		return BadgeSecondary
	default:
		return BadgeWarning
	}
}

type RFIFilter struct {
	*QueryFilter
	*TimeRangeFilter

	RFIIDs   []string    `form:"rfi_ids" json:"rfi_ids"`
	JobID    string      `form:"job_id" json:"job_id"`
	Statuses []RFIStatus `form:"statuses" json:"statuses"`
}

func NewDefaultRFIFilter() *RFIFilter {
	return &RFIFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitRFIFilter() *RFIFilter {
	return &RFIFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *RFIFilter) Validate() error {
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
