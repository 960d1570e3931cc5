package dto

import (
	"context"
	"time"

	"github.com/siteledger/siteledger/internal/domain/lienwaiver"
	"github.com/siteledger/siteledger/internal/format"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type CreateLienWaiverRequest struct {
	JobID            string                 `json:"job_id" validate:"required"`
	VendorID         string                 `json:"vendor_id" validate:"required"`
	WaiverType       types.LienWaiverType   `json:"waiver_type" validate:"required"`
	ThroughDate      *string                `json:"through_date,omitempty"`
	Amount           *string                `json:"amount,omitempty"`
	LienWaiverStatus types.LienWaiverStatus `json:"lien_waiver_status,omitempty"`
}

func (r *CreateLienWaiverRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.WaiverType.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid lien waiver type").
			Mark(ierr.ErrValidation)
	}
	if r.LienWaiverStatus != "" {
		if err := r.LienWaiverStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid lien waiver status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *CreateLienWaiverRequest) ToLienWaiver(ctx context.Context) (*lienwaiver.LienWaiver, error) {
	throughDate, err := types.ParseOptionalDate("through_date", r.ThroughDate)
	if err != nil {
		return nil, err
	}
	amount, err := types.ParseOptionalDecimal("amount", r.Amount)
	if err != nil {
		return nil, err
	}

	lw := &lienwaiver.LienWaiver{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LIEN_WAIVER),
		JobID:            r.JobID,
		VendorID:         r.VendorID,
		WaiverType:       r.WaiverType,
		ThroughDate:      throughDate,
		Amount:           amount,
		LienWaiverStatus: r.LienWaiverStatus,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
	if lw.LienWaiverStatus == "" {
		lw.LienWaiverStatus = types.LienWaiverStatusDraft
	}
	return lw, nil
}

type UpdateLienWaiverRequest struct {
	VendorID         *string                 `json:"vendor_id,omitempty"`
	WaiverType       *types.LienWaiverType   `json:"waiver_type,omitempty"`
	ThroughDate      *string                 `json:"through_date,omitempty"`
	Amount           *string                 `json:"amount,omitempty"`
	LienWaiverStatus *types.LienWaiverStatus `json:"lien_waiver_status,omitempty"`
	Version          int                     `json:"version" validate:"min=1"`
}

func (r *UpdateLienWaiverRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.WaiverType != nil {
		if err := r.WaiverType.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid lien waiver type").
				Mark(ierr.ErrValidation)
		}
	}
	if r.LienWaiverStatus != nil {
		if err := r.LienWaiverStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid lien waiver status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdateLienWaiverRequest) Apply(lw *lienwaiver.LienWaiver) error {
	if r.VendorID != nil {
		lw.VendorID = *r.VendorID
	}
	if r.WaiverType != nil {
		lw.WaiverType = *r.WaiverType
	}
	if r.ThroughDate != nil {
		throughDate, err := types.ParseOptionalDate("through_date", r.ThroughDate)
		if err != nil {
			return err
		}
		lw.ThroughDate = throughDate
	}
	if r.Amount != nil {
		amount, err := types.ParseOptionalDecimal("amount", r.Amount)
		if err != nil {
			return err
		}
		lw.Amount = amount
	}
	if r.LienWaiverStatus != nil {
		lw.LienWaiverStatus = *r.LienWaiverStatus
		if lw.LienWaiverStatus == types.LienWaiverStatusSigned && lw.SignedAt == nil {
			now := time.Now().UTC()
			lw.SignedAt = &now
		}
	}
	lw.Version = r.Version
	return nil
}

type LienWaiverResponse struct {
	*lienwaiver.LienWaiver
	StatusBadge        types.BadgeVariant `json:"status_badge"`
	AmountDisplay      string             `json:"amount_display"`
	ThroughDateDisplay string             `json:"through_date_display"`
}

func NewLienWaiverResponse(lw *lienwaiver.LienWaiver) *LienWaiverResponse {
	return &LienWaiverResponse{
		LienWaiver:         lw,
		StatusBadge:        lw.LienWaiverStatus.BadgeVariant(),
		AmountDisplay:      format.OptionalCurrency(lw.Amount),
		ThroughDateDisplay: format.OptionalDate(lw.ThroughDate),
	}
}

// ListLienWaiversResponse represents a paginated list of lien waivers
type ListLienWaiversResponse = types.ListResponse[*LienWaiverResponse]
