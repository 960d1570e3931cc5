package dto

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/lead"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

// CaptureLeadRequest is the public contact form payload. It is the one
// write that arrives unauthenticated, so it accepts nothing beyond the
// visitor's own contact details.
type CaptureLeadRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Company string `json:"company,omitempty" validate:"omitempty,max=255"`
	Source  string `json:"source,omitempty" validate:"omitempty,max=100"`
	Message string `json:"message,omitempty" validate:"omitempty,max=5000"`
}

func (r *CaptureLeadRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CaptureLeadRequest) ToLead(ctx context.Context) *lead.Lead {
	return &lead.Lead{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LEAD),
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Company:    r.Company,
		Source:     r.Source,
		Message:    r.Message,
		LeadStatus: types.LeadStatusNew,
		BaseModel:  types.GetDefaultBaseModel(ctx),
	}
}

type UpdateLeadRequest struct {
	Name       *string           `json:"name,omitempty" validate:"omitempty,max=255"`
	Email      *string           `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string           `json:"phone,omitempty" validate:"omitempty,max=30"`
	Company    *string           `json:"company,omitempty" validate:"omitempty,max=255"`
	Source     *string           `json:"source,omitempty" validate:"omitempty,max=100"`
	Message    *string           `json:"message,omitempty" validate:"omitempty,max=5000"`
	LeadStatus *types.LeadStatus `json:"lead_status,omitempty"`
	Version    int               `json:"version" validate:"min=1"`
}

func (r *UpdateLeadRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.LeadStatus != nil {
		if err := r.LeadStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid lead status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdateLeadRequest) Apply(l *lead.Lead) {
	if r.Name != nil {
		l.Name = *r.Name
	}
	if r.Email != nil {
		l.Email = *r.Email
	}
	if r.Phone != nil {
		l.Phone = *r.Phone
	}
	if r.Company != nil {
		l.Company = *r.Company
	}
	if r.Source != nil {
		l.Source = *r.Source
	}
	if r.Message != nil {
		l.Message = *r.Message
	}
	if r.LeadStatus != nil {
		l.LeadStatus = *r.LeadStatus
	}
	l.Version = r.Version
}

type LeadResponse struct {
	*lead.Lead
	StatusBadge types.BadgeVariant `json:"status_badge"`
}

func NewLeadResponse(l *lead.Lead) *LeadResponse {
	return &LeadResponse{Lead: l, StatusBadge: l.LeadStatus.BadgeVariant()}
}

// ListLeadsResponse represents a paginated list of leads
type ListLeadsResponse = types.ListResponse[*LeadResponse]
