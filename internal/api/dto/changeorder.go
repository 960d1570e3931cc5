package dto

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/changeorder"
	"github.com/siteledger/siteledger/internal/format"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type CreateChangeOrderRequest struct {
	JobID              string                  `json:"job_id" validate:"required"`
	Number             string                  `json:"number,omitempty" validate:"omitempty,max=50"`
	Title              string                  `json:"title" validate:"required,max=255"`
	Description        string                  `json:"description,omitempty"`
	Reason             string                  `json:"reason,omitempty"`
	Amount             string                  `json:"amount" validate:"required"`
	CostImpact         *string                 `json:"cost_impact,omitempty"`
	ScheduleImpactDays *string                 `json:"schedule_impact_days,omitempty"`
	ChangeOrderStatus  types.ChangeOrderStatus `json:"change_order_status,omitempty"`
}

func (r *CreateChangeOrderRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.ChangeOrderStatus != "" {
		if err := r.ChangeOrderStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid change order status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *CreateChangeOrderRequest) ToChangeOrder(ctx context.Context) (*changeorder.ChangeOrder, error) {
	amount, err := types.ParseRequiredDecimal("amount", r.Amount)
	if err != nil {
		return nil, err
	}
	costImpact, err := types.ParseOptionalDecimal("cost_impact", r.CostImpact)
	if err != nil {
		return nil, err
	}
	scheduleImpact, err := types.ParseOptionalInt("schedule_impact_days", r.ScheduleImpactDays)
	if err != nil {
		return nil, err
	}

	co := &changeorder.ChangeOrder{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CHANGE_ORDER),
		JobID:              r.JobID,
		Number:             r.Number,
		Title:              r.Title,
		Description:        r.Description,
		Reason:             r.Reason,
		Amount:             amount,
		CostImpact:         costImpact,
		ScheduleImpactDays: scheduleImpact,
		ChangeOrderStatus:  r.ChangeOrderStatus,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}
	if co.Number == "" {
		co.Number = types.GenerateReferenceNumber(types.REF_PREFIX_CHANGE_ORDER)
	}
	if co.ChangeOrderStatus == "" {
		co.ChangeOrderStatus = types.ChangeOrderStatusDraft
	}
	return co, nil
}

type UpdateChangeOrderRequest struct {
	Number             *string                  `json:"number,omitempty" validate:"omitempty,max=50"`
	Title              *string                  `json:"title,omitempty" validate:"omitempty,max=255"`
	Description        *string                  `json:"description,omitempty"`
	Reason             *string                  `json:"reason,omitempty"`
	Amount             *string                  `json:"amount,omitempty"`
	CostImpact         *string                  `json:"cost_impact,omitempty"`
	ScheduleImpactDays *string                  `json:"schedule_impact_days,omitempty"`
	ChangeOrderStatus  *types.ChangeOrderStatus `json:"change_order_status,omitempty"`
	Version            int                      `json:"version" validate:"min=1"`
}

func (r *UpdateChangeOrderRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.ChangeOrderStatus != nil {
		if err := r.ChangeOrderStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid change order status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdateChangeOrderRequest) Apply(co *changeorder.ChangeOrder) error {
	if r.Number != nil {
		co.Number = *r.Number
	}
	if r.Title != nil {
		co.Title = *r.Title
	}
	if r.Description != nil {
		co.Description = *r.Description
	}
	if r.Reason != nil {
		co.Reason = *r.Reason
	}
	if r.Amount != nil {
		amount, err := types.ParseRequiredDecimal("amount", *r.Amount)
		if err != nil {
			return err
		}
		co.Amount = amount
	}
	if r.CostImpact != nil {
		costImpact, err := types.ParseOptionalDecimal("cost_impact", r.CostImpact)
		if err != nil {
			return err
		}
		co.CostImpact = costImpact
	}
	if r.ScheduleImpactDays != nil {
		scheduleImpact, err := types.ParseOptionalInt("schedule_impact_days", r.ScheduleImpactDays)
		if err != nil {
			return err
		}
		co.ScheduleImpactDays = scheduleImpact
	}
	if r.ChangeOrderStatus != nil {
		co.ChangeOrderStatus = *r.ChangeOrderStatus
	}
	co.Version = r.Version
	return nil
}

type ChangeOrderResponse struct {
	*changeorder.ChangeOrder
	StatusBadge           types.BadgeVariant `json:"status_badge"`
	AmountDisplay         string             `json:"amount_display"`
	CostImpactDisplay     string             `json:"cost_impact_display"`
	ScheduleImpactDisplay string             `json:"schedule_impact_display"`
}

func NewChangeOrderResponse(co *changeorder.ChangeOrder) *ChangeOrderResponse {
	scheduleImpact := format.NotSpecified
	if co.ScheduleImpactDays != nil {
		scheduleImpact = format.Days(*co.ScheduleImpactDays)
	}
	return &ChangeOrderResponse{
		ChangeOrder:           co,
		StatusBadge:           co.ChangeOrderStatus.BadgeVariant(),
		AmountDisplay:         format.Currency(co.Amount),
		CostImpactDisplay:     format.OptionalCurrency(co.CostImpact),
		ScheduleImpactDisplay: scheduleImpact,
	}
}

// ListChangeOrdersResponse represents a paginated list of change orders
type ListChangeOrdersResponse = types.ListResponse[*ChangeOrderResponse]
