package types

import (
	"fmt"

	"github.com/samber/lo"
)

type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft    PurchaseOrderStatus = "draft"
	PurchaseOrderStatusIssued   PurchaseOrderStatus = "issued"
	PurchaseOrderStatusReceived PurchaseOrderStatus = "received"
	PurchaseOrderStatusClosed   PurchaseOrderStatus = "closed"
)

func (s PurchaseOrderStatus) String() string {
	return string(s)
}

func (s PurchaseOrderStatus) Validate() error {
	allowed := []PurchaseOrderStatus{
		PurchaseOrderStatusDraft,
		PurchaseOrderStatusIssued,
		PurchaseOrderStatusReceived,
		PurchaseOrderStatusClosed,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid purchase order status: %s", s)
	}
	return nil
}

func (s PurchaseOrderStatus) BadgeVariant() BadgeVariant {
	switch s {
	case PurchaseOrderStatusReceived:
		return BadgeSuccess
	case PurchaseOrderStatusIssued:
		return BadgeDefault
	case PurchaseOrderStatusClosed:
		return BadgeOutline
	default:
		return BadgeSecondary
	}
}

type PurchaseOrderFilter struct {
	*QueryFilter
	*TimeRangeFilter

	PurchaseOrderIDs []string              `form:"purchase_order_ids" json:"purchase_order_ids"`
	JobID            string                `form:"job_id" json:"job_id"`
	VendorID         string                `form:"vendor_id" json:"vendor_id"`
	Statuses         []PurchaseOrderStatus `form:"statuses" json:"statuses"`
}

func NewDefaultPurchaseOrderFilter() *PurchaseOrderFilter {
	return &PurchaseOrderFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitPurchaseOrderFilter() *PurchaseOrderFilter {
	return &PurchaseOrderFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *PurchaseOrderFilter) Validate() error {
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
