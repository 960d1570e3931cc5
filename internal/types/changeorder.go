package types

import (
	"fmt"

	"github.com/samber/lo"
)

type ChangeOrderStatus string

const (
	ChangeOrderStatusDraft    ChangeOrderStatus = "draft"
	ChangeOrderStatusPending  ChangeOrderStatus = "pending"
	ChangeOrderStatusApproved ChangeOrderStatus = "approved"
	ChangeOrderStatusRejected ChangeOrderStatus = "rejected"
)

func (s ChangeOrderStatus) String() string {
	return string(s)
}

func (s ChangeOrderStatus) Validate() error {
	allowed := []ChangeOrderStatus{
		ChangeOrderStatusDraft,
		ChangeOrderStatusPending,
		ChangeOrderStatusApproved,
		ChangeOrderStatusRejected,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid change order status: %s", s)
	}
	return nil
}

func (s ChangeOrderStatus) BadgeVariant() BadgeVariant {
	switch s {
	case ChangeOrderStatusApproved:
		return BadgeSuccess
	case ChangeOrderStatusPending:
		return BadgeWarning
	case ChangeOrderStatusRejected:
		return BadgeDestructive
	default:
		return BadgeSecondary
	}
}

type ChangeOrderFilter struct {
	*QueryFilter
	*TimeRangeFilter

	ChangeOrderIDs []string            `form:"change_order_ids" json:"change_order_ids"`
	JobID          string              `form:"job_id" json:"job_id"`
	Statuses       []ChangeOrderStatus `form:"statuses" json:"statuses"`
}

func NewDefaultChangeOrderFilter() *ChangeOrderFilter {
	return &ChangeOrderFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitChangeOrderFilter() *ChangeOrderFilter {
	return &ChangeOrderFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *ChangeOrderFilter) Validate() error {
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
