package dto

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger/internal/domain/drawrequest"
	"github.com/siteledger/siteledger/internal/format"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type CreateDrawRequestRequest struct {
	JobID                string                  `json:"job_id" validate:"required"`
	Number               string                  `json:"number,omitempty" validate:"omitempty,max=50"`
	PeriodEnd            *string                 `json:"period_end,omitempty"`
	WorkCompleted        string                  `json:"work_completed,omitempty"`
	MaterialsStored      string                  `json:"materials_stored,omitempty"`
	RetainagePercent     string                  `json:"retainage_percent,omitempty"`
	PreviousCertificates string                  `json:"previous_certificates,omitempty"`
	DrawRequestStatus    types.DrawRequestStatus `json:"draw_request_status,omitempty"`
}

func (r *CreateDrawRequestRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.DrawRequestStatus != "" {
		if err := r.DrawRequestStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid draw request status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *CreateDrawRequestRequest) ToDrawRequest(ctx context.Context) (*drawrequest.DrawRequest, error) {
	periodEnd, err := types.ParseOptionalDate("period_end", r.PeriodEnd)
	if err != nil {
		return nil, err
	}
	workCompleted, err := types.ParseOptionalDecimal("work_completed", &r.WorkCompleted)
	if err != nil {
		return nil, err
	}
	materialsStored, err := types.ParseOptionalDecimal("materials_stored", &r.MaterialsStored)
	if err != nil {
		return nil, err
	}
	retainagePercent, err := types.ParseOptionalDecimal("retainage_percent", &r.RetainagePercent)
	if err != nil {
		return nil, err
	}
	previousCertificates, err := types.ParseOptionalDecimal("previous_certificates", &r.PreviousCertificates)
	if err != nil {
		return nil, err
	}

	orZero := func(d *decimal.Decimal) decimal.Decimal {
		if d == nil {
			return decimal.Zero
		}
		return *d
	}

	dr := &drawrequest.DrawRequest{
		ID:                   types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DRAW_REQUEST),
		JobID:                r.JobID,
		Number:               r.Number,
		PeriodEnd:            periodEnd,
		WorkCompleted:        orZero(workCompleted),
		MaterialsStored:      orZero(materialsStored),
		RetainagePercent:     orZero(retainagePercent),
		PreviousCertificates: orZero(previousCertificates),
		DrawRequestStatus:    r.DrawRequestStatus,
		BaseModel:            types.GetDefaultBaseModel(ctx),
	}
	if dr.Number == "" {
		dr.Number = types.GenerateReferenceNumber(types.REF_PREFIX_DRAW_REQUEST)
	}
	if dr.DrawRequestStatus == "" {
		dr.DrawRequestStatus = types.DrawRequestStatusDraft
	}
	dr.Recalculate()
	return dr, nil
}

type UpdateDrawRequestRequest struct {
	Number               *string                  `json:"number,omitempty" validate:"omitempty,max=50"`
	PeriodEnd            *string                  `json:"period_end,omitempty"`
	WorkCompleted        *string                  `json:"work_completed,omitempty"`
	MaterialsStored      *string                  `json:"materials_stored,omitempty"`
	RetainagePercent     *string                  `json:"retainage_percent,omitempty"`
	PreviousCertificates *string                  `json:"previous_certificates,omitempty"`
	DrawRequestStatus    *types.DrawRequestStatus `json:"draw_request_status,omitempty"`
	Version              int                      `json:"version" validate:"min=1"`
}

func (r *UpdateDrawRequestRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.DrawRequestStatus != nil {
		if err := r.DrawRequestStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid draw request status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdateDrawRequestRequest) Apply(dr *drawrequest.DrawRequest) error {
	if r.Number != nil {
		dr.Number = *r.Number
	}
	if r.PeriodEnd != nil {
		periodEnd, err := types.ParseOptionalDate("period_end", r.PeriodEnd)
		if err != nil {
			return err
		}
		dr.PeriodEnd = periodEnd
	}

	setAmount := func(field string, value *string, dst *decimal.Decimal) error {
		parsed, err := types.ParseOptionalDecimal(field, value)
		if err != nil {
			return err
		}
		if parsed == nil {
			*dst = decimal.Zero
		} else {
			*dst = *parsed
		}
		return nil
	}
	if r.WorkCompleted != nil {
		if err := setAmount("work_completed", r.WorkCompleted, &dr.WorkCompleted); err != nil {
			return err
		}
	}
	if r.MaterialsStored != nil {
		if err := setAmount("materials_stored", r.MaterialsStored, &dr.MaterialsStored); err != nil {
			return err
		}
	}
	if r.RetainagePercent != nil {
		if err := setAmount("retainage_percent", r.RetainagePercent, &dr.RetainagePercent); err != nil {
			return err
		}
	}
	if r.PreviousCertificates != nil {
		if err := setAmount("previous_certificates", r.PreviousCertificates, &dr.PreviousCertificates); err != nil {
			return err
		}
	}
	if r.DrawRequestStatus != nil {
		dr.DrawRequestStatus = *r.DrawRequestStatus
	}
	dr.Recalculate()
	dr.Version = r.Version
	return nil
}

type DrawRequestResponse struct {
	*drawrequest.DrawRequest
	Retainage                decimal.Decimal    `json:"retainage"`
	StatusBadge              types.BadgeVariant `json:"status_badge"`
	RetainageDisplay         string             `json:"retainage_display"`
	CurrentPaymentDueDisplay string             `json:"current_payment_due_display"`
}

func NewDrawRequestResponse(dr *drawrequest.DrawRequest) *DrawRequestResponse {
	return &DrawRequestResponse{
		DrawRequest:              dr,
		Retainage:                dr.Retainage(),
		StatusBadge:              dr.DrawRequestStatus.BadgeVariant(),
		RetainageDisplay:         format.Currency(dr.Retainage()),
		CurrentPaymentDueDisplay: format.Currency(dr.CurrentPaymentDue),
	}
}

// ListDrawRequestsResponse represents a paginated list of draw requests
type ListDrawRequestsResponse = types.ListResponse[*DrawRequestResponse]
