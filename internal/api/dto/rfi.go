package dto

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/rfi"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type CreateRFIRequest struct {
	JobID     string          `json:"job_id" validate:"required"`
	Number    string          `json:"number,omitempty" validate:"omitempty,max=50"`
	Subject   string          `json:"subject" validate:"required,max=255"`
	Question  string          `json:"question" validate:"required"`
	DueDate   *string         `json:"due_date,omitempty"`
	RFIStatus types.RFIStatus `json:"rfi_status,omitempty"`
}

func (r *CreateRFIRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.RFIStatus != "" {
		if err := r.RFIStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid RFI status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *CreateRFIRequest) ToRFI(ctx context.Context) (*rfi.RFI, error) {
	dueDate, err := types.ParseOptionalDate("due_date", r.DueDate)
	if err != nil {
		return nil, err
	}

	item := &rfi.RFI{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RFI),
		JobID:     r.JobID,
		Number:    r.Number,
		Subject:   r.Subject,
		Question:  r.Question,
		DueDate:   dueDate,
		RFIStatus: r.RFIStatus,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	if item.Number == "" {
		item.Number = types.GenerateReferenceNumber(types.REF_PREFIX_RFI)
	}
	if item.RFIStatus == "" {
		item.RFIStatus = types.RFIStatusOpen
	}
	return item, nil
}

type UpdateRFIRequest struct {
	Number    *string          `json:"number,omitempty" validate:"omitempty,max=50"`
	Subject   *string          `json:"subject,omitempty" validate:"omitempty,max=255"`
	Question  *string          `json:"question,omitempty"`
	Answer    *string          `json:"answer,omitempty"`
	DueDate   *string          `json:"due_date,omitempty"`
	RFIStatus *types.RFIStatus `json:"rfi_status,omitempty"`
	Version   int              `json:"version" validate:"min=1"`
}

func (r *UpdateRFIRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.RFIStatus != nil {
		if err := r.RFIStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid RFI status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdateRFIRequest) Apply(item *rfi.RFI) error {
	if r.Number != nil {
		item.Number = *r.Number
	}
	if r.Subject != nil {
		item.Subject = *r.Subject
	}
	if r.Question != nil {
		item.Question = *r.Question
	}
	if r.Answer != nil {
		item.Answer = *r.Answer
	}
	if r.DueDate != nil {
		dueDate, err := types.ParseOptionalDate("due_date", r.DueDate)
		if err != nil {
			return err
		}
		item.DueDate = dueDate
	}
	if r.RFIStatus != nil {
		item.RFIStatus = *r.RFIStatus
	}
	item.Version = r.Version
	return nil
}

type RFIResponse struct {
	*rfi.RFI
	StatusBadge types.BadgeVariant `json:"status_badge"`
}

func NewRFIResponse(item *rfi.RFI) *RFIResponse {
	return &RFIResponse{RFI: item, StatusBadge: item.RFIStatus.BadgeVariant()}
}

// ListRFIsResponse represents a paginated list of RFIs
type ListRFIsResponse = types.ListResponse[*RFIResponse]
