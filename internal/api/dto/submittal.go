package dto

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/submittal"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type CreateSubmittalRequest struct {
	JobID           string                `json:"job_id" validate:"required"`
	Number          string                `json:"number,omitempty" validate:"omitempty,max=50"`
	Title           string                `json:"title" validate:"required,max=255"`
	SpecSection     string                `json:"spec_section,omitempty" validate:"omitempty,max=50"`
	Description     string                `json:"description,omitempty"`
	SubmittedAt     *string               `json:"submitted_at,omitempty"`
	SubmittalStatus types.SubmittalStatus `json:"submittal_status,omitempty"`
}

func (r *CreateSubmittalRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.SubmittalStatus != "" {
		if err := r.SubmittalStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid submittal status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *CreateSubmittalRequest) ToSubmittal(ctx context.Context) (*submittal.Submittal, error) {
	submittedAt, err := types.ParseOptionalDate("submitted_at", r.SubmittedAt)
	if err != nil {
		return nil, err
	}

	s := &submittal.Submittal{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBMITTAL),
		JobID:           r.JobID,
		Number:          r.Number,
		Title:           r.Title,
		SpecSection:     r.SpecSection,
		Description:     r.Description,
		SubmittedAt:     submittedAt,
		SubmittalStatus: r.SubmittalStatus,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
	if s.Number == "" {
		s.Number = types.GenerateReferenceNumber(types.REF_PREFIX_SUBMITTAL)
	}
	if s.SubmittalStatus == "" {
		s.SubmittalStatus = types.SubmittalStatusPending
	}
	return s, nil
}

type UpdateSubmittalRequest struct {
	Number          *string                `json:"number,omitempty" validate:"omitempty,max=50"`
	Title           *string                `json:"title,omitempty" validate:"omitempty,max=255"`
	SpecSection     *string                `json:"spec_section,omitempty" validate:"omitempty,max=50"`
	Description     *string                `json:"description,omitempty"`
	SubmittedAt     *string                `json:"submitted_at,omitempty"`
	ReviewedAt      *string                `json:"reviewed_at,omitempty"`
	SubmittalStatus *types.SubmittalStatus `json:"submittal_status,omitempty"`
	Version         int                    `json:"version" validate:"min=1"`
}

func (r *UpdateSubmittalRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.SubmittalStatus != nil {
		if err := r.SubmittalStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid submittal status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdateSubmittalRequest) Apply(s *submittal.Submittal) error {
	if r.Number != nil {
		s.Number = *r.Number
	}
	if r.Title != nil {
		s.Title = *r.Title
	}
	if r.SpecSection != nil {
		s.SpecSection = *r.SpecSection
	}
	if r.Description != nil {
		s.Description = *r.Description
	}
	if r.SubmittedAt != nil {
		submittedAt, err := types.ParseOptionalDate("submitted_at", r.SubmittedAt)
		if err != nil {
			return err
		}
		s.SubmittedAt = submittedAt
	}
	if r.ReviewedAt != nil {
		reviewedAt, err := types.ParseOptionalDate("reviewed_at", r.ReviewedAt)
		if err != nil {
			return err
		}
		s.ReviewedAt = reviewedAt
	}
	if r.SubmittalStatus != nil {
		s.SubmittalStatus = *r.SubmittalStatus
	}
	s.Version = r.Version
	return nil
}

type SubmittalResponse struct {
	*submittal.Submittal
	StatusBadge types.BadgeVariant `json:"status_badge"`
}

func NewSubmittalResponse(s *submittal.Submittal) *SubmittalResponse {
	return &SubmittalResponse{Submittal: s, StatusBadge: s.SubmittalStatus.BadgeVariant()}
}

// ListSubmittalsResponse represents a paginated list of submittals
type ListSubmittalsResponse = types.ListResponse[*SubmittalResponse]
