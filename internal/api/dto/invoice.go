package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger/internal/domain/invoice"
	"github.com/siteledger/siteledger/internal/format"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type CreateInvoiceRequest struct {
	JobID         string              `json:"job_id" validate:"required"`
	VendorID      string              `json:"vendor_id,omitempty"`
	Number        string              `json:"number,omitempty" validate:"omitempty,max=50"`
	Amount        string              `json:"amount" validate:"required"`
	AmountPaid    *string             `json:"amount_paid,omitempty"`
	DueDate       *string             `json:"due_date,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	InvoiceStatus types.InvoiceStatus `json:"invoice_status,omitempty"`
}

func (r *CreateInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.InvoiceStatus != "" {
		if err := r.InvoiceStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid invoice status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *CreateInvoiceRequest) ToInvoice(ctx context.Context) (*invoice.Invoice, error) {
	amount, err := types.ParseRequiredDecimal("amount", r.Amount)
	if err != nil {
		return nil, err
	}
	amountPaid, err := types.ParseOptionalDecimal("amount_paid", r.AmountPaid)
	if err != nil {
		return nil, err
	}
	dueDate, err := types.ParseOptionalDate("due_date", r.DueDate)
	if err != nil {
		return nil, err
	}

	inv := &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		JobID:         r.JobID,
		VendorID:      r.VendorID,
		Number:        r.Number,
		Amount:        amount,
		DueDate:       dueDate,
		Notes:         r.Notes,
		InvoiceStatus: r.InvoiceStatus,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
	if amountPaid != nil {
		inv.AmountPaid = *amountPaid
	} else {
		inv.AmountPaid = decimal.Zero
	}
	if inv.Number == "" {
		inv.Number = types.GenerateReferenceNumber(types.REF_PREFIX_INVOICE)
	}
	if inv.InvoiceStatus == "" {
		inv.InvoiceStatus = types.InvoiceStatusDraft
	}
	return inv, nil
}

type UpdateInvoiceRequest struct {
	VendorID      *string              `json:"vendor_id,omitempty"`
	Number        *string              `json:"number,omitempty" validate:"omitempty,max=50"`
	Amount        *string              `json:"amount,omitempty"`
	AmountPaid    *string              `json:"amount_paid,omitempty"`
	DueDate       *string              `json:"due_date,omitempty"`
	Notes         *string              `json:"notes,omitempty"`
	InvoiceStatus *types.InvoiceStatus `json:"invoice_status,omitempty"`
	Version       int                  `json:"version" validate:"min=1"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.InvoiceStatus != nil {
		if err := r.InvoiceStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid invoice status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdateInvoiceRequest) Apply(inv *invoice.Invoice) error {
	if r.VendorID != nil {
		inv.VendorID = *r.VendorID
	}
	if r.Number != nil {
		inv.Number = *r.Number
	}
	if r.Amount != nil {
		amount, err := types.ParseRequiredDecimal("amount", *r.Amount)
		if err != nil {
			return err
		}
		inv.Amount = amount
	}
	if r.AmountPaid != nil {
		amountPaid, err := types.ParseOptionalDecimal("amount_paid", r.AmountPaid)
		if err != nil {
			return err
		}
		if amountPaid != nil {
			inv.AmountPaid = *amountPaid
		} else {
			inv.AmountPaid = decimal.Zero
		}
	}
	if r.DueDate != nil {
		dueDate, err := types.ParseOptionalDate("due_date", r.DueDate)
		if err != nil {
			return err
		}
		inv.DueDate = dueDate
	}
	if r.Notes != nil {
		inv.Notes = *r.Notes
	}
	if r.InvoiceStatus != nil {
		inv.InvoiceStatus = *r.InvoiceStatus
		if *r.InvoiceStatus == types.InvoiceStatusPaid && inv.PaidAt == nil {
			now := time.Now().UTC()
			inv.PaidAt = &now
		}
	}
	inv.Version = r.Version
	return nil
}

type InvoiceResponse struct {
	*invoice.Invoice
	BalanceDue        decimal.Decimal    `json:"balance_due"`
	StatusBadge       types.BadgeVariant `json:"status_badge"`
	AmountDisplay     string             `json:"amount_display"`
	BalanceDueDisplay string             `json:"balance_due_display"`
	DueDateDisplay    string             `json:"due_date_display"`
}

func NewInvoiceResponse(inv *invoice.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		Invoice:           inv,
		BalanceDue:        inv.BalanceDue(),
		StatusBadge:       inv.InvoiceStatus.BadgeVariant(),
		AmountDisplay:     format.Currency(inv.Amount),
		BalanceDueDisplay: format.Currency(inv.BalanceDue()),
		DueDateDisplay:    format.OptionalDate(inv.DueDate),
	}
}

// ListInvoicesResponse represents a paginated list of invoices
type ListInvoicesResponse = types.ListResponse[*InvoiceResponse]
