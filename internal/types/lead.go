package types

import (
	"fmt"

	"github.com/samber/lo"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusLost      LeadStatus = "lost"
)

func (s LeadStatus) String() string {
	return string(s)
}

func (s LeadStatus) Validate() error {
	allowed := []LeadStatus{
		LeadStatusNew,
		LeadStatusContacted,
		LeadStatusQualified,
		LeadStatusLost,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid lead status: %s", s)
	}
	return nil
}

func (s LeadStatus) BadgeVariant() BadgeVariant {
	switch s {
	case LeadStatusQualified:
		return BadgeSuccess
	case LeadStatusContacted:
		return BadgeDefault
	case LeadStatusLost:
		return BadgeOutline
	default:
		return BadgeWarning
	}
}

type LeadFilter struct {
	*QueryFilter
	*TimeRangeFilter

	LeadIDs  []string     `form:"lead_ids" json:"lead_ids"`
	Source   string       `form:"source" json:"source"`
	Statuses []LeadStatus `form:"statuses" json:"statuses"`
}

func NewDefaultLeadFilter() *LeadFilter {
	return &LeadFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitLeadFilter() *LeadFilter {
	return &LeadFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *LeadFilter) Validate() error {
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
