package types

import (
	"fmt"

	"github.com/samber/lo"
)

type LienWaiverStatus string

const (
	LienWaiverStatusDraft  LienWaiverStatus = "draft"
	LienWaiverStatusSent   LienWaiverStatus = "sent"
	LienWaiverStatusSigned LienWaiverStatus = "signed"
)

func (s LienWaiverStatus) String() string {
	return string(s)
}

func (s LienWaiverStatus) Validate() error {
	allowed := []LienWaiverStatus{
		LienWaiverStatusDraft,
		LienWaiverStatusSent,
		LienWaiverStatusSigned,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid lien waiver status: %s", s)
	}
	return nil
}

func (s LienWaiverStatus) BadgeVariant() BadgeVariant {
	switch s {
	case LienWaiverStatusSigned:
		return BadgeSuccess
	case LienWaiverStatusSent:
		return BadgeDefault
	default:
		return BadgeSecondary
	}
}

// LienWaiverType distinguishes the four standard waiver forms
type LienWaiverType string

const (
	LienWaiverTypeConditionalProgress   LienWaiverType = "conditional_progress"
	LienWaiverTypeUnconditionalProgress LienWaiverType = "unconditional_progress"
	LienWaiverTypeConditionalFinal      LienWaiverType = "conditional_final"
	LienWaiverTypeUnconditionalFinal    LienWaiverType = "unconditional_final"
)

func (t LienWaiverType) String() string {
	return string(t)
}

func (t LienWaiverType) Validate() error {
	allowed := []LienWaiverType{
		LienWaiverTypeConditionalProgress,
		LienWaiverTypeUnconditionalProgress,
		LienWaiverTypeConditionalFinal,
		LienWaiverTypeUnconditionalFinal,
	}
	if !lo.Contains(allowed, t) {
		return fmt.Errorf("invalid lien waiver type: %s", t)
	}
	return nil
}

type LienWaiverFilter struct {
	*QueryFilter
	*TimeRangeFilter

	LienWaiverIDs []string           `form:"lien_waiver_ids" json:"lien_waiver_ids"`
	JobID         string             `form:"job_id" json:"job_id"`
	VendorID      string             `form:"vendor_id" json:"vendor_id"`
	WaiverType    LienWaiverType     `form:"waiver_type" json:"waiver_type"`
	Statuses      []LienWaiverStatus `form:"statuses" json:"statuses"`
}

func NewDefaultLienWaiverFilter() *LienWaiverFilter {
	return &LienWaiverFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitLienWaiverFilter() *LienWaiverFilter {
	return &LienWaiverFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *LienWaiverFilter) Validate() error {
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
	if f.WaiverType != "" {
		if err := f.WaiverType.Validate(); err != nil {
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
