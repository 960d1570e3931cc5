package dto

import (
	"context"
	"time"

	"github.com/siteledger/siteledger/internal/domain/purchaseorder"
	"github.com/siteledger/siteledger/internal/format"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type CreatePurchaseOrderRequest struct {
	JobID               string                    `json:"job_id" validate:"required"`
	VendorID            string                    `json:"vendor_id" validate:"required"`
	Number              string                    `json:"number,omitempty" validate:"omitempty,max=50"`
	Description         string                    `json:"description,omitempty"`
	Amount              string                    `json:"amount" validate:"required"`
	PurchaseOrderStatus types.PurchaseOrderStatus `json:"purchase_order_status,omitempty"`
}

func (r *CreatePurchaseOrderRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.PurchaseOrderStatus != "" {
		if err := r.PurchaseOrderStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid purchase order status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *CreatePurchaseOrderRequest) ToPurchaseOrder(ctx context.Context) (*purchaseorder.PurchaseOrder, error) {
	amount, err := types.ParseRequiredDecimal("amount", r.Amount)
	if err != nil {
		return nil, err
	}

	po := &purchaseorder.PurchaseOrder{
		ID:                  types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PURCHASE_ORDER),
		JobID:               r.JobID,
		VendorID:            r.VendorID,
		Number:              r.Number,
		Description:         r.Description,
		Amount:              amount,
		PurchaseOrderStatus: r.PurchaseOrderStatus,
		BaseModel:           types.GetDefaultBaseModel(ctx),
	}
	if po.Number == "" {
		po.Number = types.GenerateReferenceNumber(types.REF_PREFIX_PURCHASE_ORDER)
	}
	if po.PurchaseOrderStatus == "" {
		po.PurchaseOrderStatus = types.PurchaseOrderStatusDraft
	}
	return po, nil
}

type UpdatePurchaseOrderRequest struct {
	VendorID            *string                    `json:"vendor_id,omitempty"`
	Number              *string                    `json:"number,omitempty" validate:"omitempty,max=50"`
	Description         *string                    `json:"description,omitempty"`
	Amount              *string                    `json:"amount,omitempty"`
	PurchaseOrderStatus *types.PurchaseOrderStatus `json:"purchase_order_status,omitempty"`
	Version             int                        `json:"version" validate:"min=1"`
}

func (r *UpdatePurchaseOrderRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.PurchaseOrderStatus != nil {
		if err := r.PurchaseOrderStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid purchase order status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdatePurchaseOrderRequest) Apply(po *purchaseorder.PurchaseOrder) error {
	if r.VendorID != nil {
		po.VendorID = *r.VendorID
	}
	if r.Number != nil {
		po.Number = *r.Number
	}
	if r.Description != nil {
		po.Description = *r.Description
	}
	if r.Amount != nil {
		amount, err := types.ParseRequiredDecimal("amount", *r.Amount)
		if err != nil {
			return err
		}
		po.Amount = amount
	}
	if r.PurchaseOrderStatus != nil {
		po.PurchaseOrderStatus = *r.PurchaseOrderStatus
		if po.PurchaseOrderStatus == types.PurchaseOrderStatusIssued && po.IssuedAt == nil {
			now := time.Now().UTC()
			po.IssuedAt = &now
		}
	}
	po.Version = r.Version
	return nil
}

type PurchaseOrderResponse struct {
	*purchaseorder.PurchaseOrder
	StatusBadge   types.BadgeVariant `json:"status_badge"`
	AmountDisplay string             `json:"amount_display"`
}

func NewPurchaseOrderResponse(po *purchaseorder.PurchaseOrder) *PurchaseOrderResponse {
	return &PurchaseOrderResponse{
		PurchaseOrder: po,
		StatusBadge:   po.PurchaseOrderStatus.BadgeVariant(),
		AmountDisplay: format.Currency(po.Amount),
	}
}

// ListPurchaseOrdersResponse represents a paginated list of purchase orders
type ListPurchaseOrdersResponse = types.ListResponse[*PurchaseOrderResponse]
