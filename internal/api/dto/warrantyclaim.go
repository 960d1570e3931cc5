package dto

import (
	"context"
	"time"

	"github.com/siteledger/siteledger/internal/domain/warrantyclaim"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type CreateWarrantyClaimRequest struct {
	JobID               string                    `json:"job_id" validate:"required"`
	Title               string                    `json:"title" validate:"required,max=255"`
	Description         string                    `json:"description,omitempty"`
	ReportedBy          string                    `json:"reported_by,omitempty" validate:"omitempty,max=255"`
	ScheduledFor        *string                   `json:"scheduled_for,omitempty"`
	WarrantyClaimStatus types.WarrantyClaimStatus `json:"warranty_claim_status,omitempty"`
}

func (r *CreateWarrantyClaimRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.WarrantyClaimStatus != "" {
		if err := r.WarrantyClaimStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid warranty claim status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *CreateWarrantyClaimRequest) ToWarrantyClaim(ctx context.Context) (*warrantyclaim.WarrantyClaim, error) {
	scheduledFor, err := types.ParseOptionalDate("scheduled_for", r.ScheduledFor)
	if err != nil {
		return nil, err
	}

	wc := &warrantyclaim.WarrantyClaim{
		ID:                  types.GenerateUUIDWithPrefix(types.UUID_PREFIX_WARRANTY_CLAIM),
		JobID:               r.JobID,
		Title:               r.Title,
		Description:         r.Description,
		ReportedBy:          r.ReportedBy,
		ScheduledFor:        scheduledFor,
		WarrantyClaimStatus: r.WarrantyClaimStatus,
		BaseModel:           types.GetDefaultBaseModel(ctx),
	}
	if wc.WarrantyClaimStatus == "" {
		wc.WarrantyClaimStatus = types.WarrantyClaimStatusOpen
	}
	return wc, nil
}

type UpdateWarrantyClaimRequest struct {
	Title               *string                    `json:"title,omitempty" validate:"omitempty,max=255"`
	Description         *string                    `json:"description,omitempty"`
	ReportedBy          *string                    `json:"reported_by,omitempty" validate:"omitempty,max=255"`
	ScheduledFor        *string                    `json:"scheduled_for,omitempty"`
	WarrantyClaimStatus *types.WarrantyClaimStatus `json:"warranty_claim_status,omitempty"`
	Version             int                        `json:"version" validate:"min=1"`
}

func (r *UpdateWarrantyClaimRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.WarrantyClaimStatus != nil {
		if err := r.WarrantyClaimStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid warranty claim status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdateWarrantyClaimRequest) Apply(wc *warrantyclaim.WarrantyClaim) error {
	if r.Title != nil {
		wc.Title = *r.Title
	}
	if r.Description != nil {
		wc.Description = *r.Description
	}
	if r.ReportedBy != nil {
		wc.ReportedBy = *r.ReportedBy
	}
	if r.ScheduledFor != nil {
		scheduledFor, err := types.ParseOptionalDate("scheduled_for", r.ScheduledFor)
		if err != nil {
			return err
		}
		wc.ScheduledFor = scheduledFor
	}
	if r.WarrantyClaimStatus != nil {
		wc.WarrantyClaimStatus = *r.WarrantyClaimStatus
		if wc.WarrantyClaimStatus == types.WarrantyClaimStatusResolved && wc.ResolvedAt == nil {
			now := time.Now().UTC()
			wc.ResolvedAt = &now
		}
	}
	wc.Version = r.Version
	return nil
}

type WarrantyClaimResponse struct {
	*warrantyclaim.WarrantyClaim
	StatusBadge types.BadgeVariant `json:"status_badge"`
}

func NewWarrantyClaimResponse(wc *warrantyclaim.WarrantyClaim) *WarrantyClaimResponse {
	return &WarrantyClaimResponse{WarrantyClaim: wc, StatusBadge: wc.WarrantyClaimStatus.BadgeVariant()}
}

// ListWarrantyClaimsResponse represents a paginated list of warranty claims
type ListWarrantyClaimsResponse = types.ListResponse[*WarrantyClaimResponse]
