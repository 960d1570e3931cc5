package types

import (
	"fmt"

	"github.com/samber/lo"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusVoid    InvoiceStatus = "void"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusSent,
		InvoiceStatusPaid,
		InvoiceStatusOverdue,
		InvoiceStatusVoid,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid invoice status: %s", s)
	}
	return nil
}

func (s InvoiceStatus) BadgeVariant() BadgeVariant {
	switch s {
	case InvoiceStatusPaid:
		return BadgeSuccess
	case InvoiceStatusSent:
		return BadgeDefault
	case InvoiceStatusOverdue:
		return BadgeDestructive
	case InvoiceStatusVoid:
		return BadgeOutline
	default:
		return BadgeSecondary
	}
}

// IsOpen reports whether the invoice still expects payment
func (s InvoiceStatus) IsOpen() bool {
	return s == InvoiceStatusSent || s == InvoiceStatusOverdue
}

type InvoiceFilter struct {
	*QueryFilter
	*TimeRangeFilter

	InvoiceIDs []string        `form:"invoice_ids" json:"invoice_ids"`
	JobID      string          `form:"job_id" json:"job_id"`
	VendorID   string          `form:"vendor_id" json:"vendor_id"`
	Statuses   []InvoiceStatus `form:"statuses" json:"statuses"`
	// OverdueOnly restricts to unpaid invoices whose due date has passed
	OverdueOnly bool `form:"overdue_only" json:"overdue_only"`
}

func NewDefaultInvoiceFilter() *InvoiceFilter {
	return &InvoiceFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitInvoiceFilter() *InvoiceFilter {
	return &InvoiceFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *InvoiceFilter) Validate() error {
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
