package dto

import (
	"context"
	"time"

	"github.com/siteledger/siteledger/internal/domain/punchitem"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type CreatePunchItemRequest struct {
	JobID            string                `json:"job_id" validate:"required"`
	Title            string                `json:"title" validate:"required,max=255"`
	Description      string                `json:"description,omitempty"`
	Location         string                `json:"location,omitempty" validate:"omitempty,max=255"`
	Trade            string                `json:"trade,omitempty" validate:"omitempty,max=100"`
	AssignedVendorID string                `json:"assigned_vendor_id,omitempty"`
	DueDate          *string               `json:"due_date,omitempty"`
	PunchItemStatus  types.PunchItemStatus `json:"punch_item_status,omitempty"`
}

func (r *CreatePunchItemRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.PunchItemStatus != "" {
		if err := r.PunchItemStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid punch item status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *CreatePunchItemRequest) ToPunchItem(ctx context.Context) (*punchitem.PunchItem, error) {
	dueDate, err := types.ParseOptionalDate("due_date", r.DueDate)
	if err != nil {
		return nil, err
	}

	p := &punchitem.PunchItem{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PUNCH_ITEM),
		JobID:            r.JobID,
		Title:            r.Title,
		Description:      r.Description,
		Location:         r.Location,
		Trade:            r.Trade,
		AssignedVendorID: r.AssignedVendorID,
		DueDate:          dueDate,
		PunchItemStatus:  r.PunchItemStatus,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
	if p.PunchItemStatus == "" {
		p.PunchItemStatus = types.PunchItemStatusOpen
	}
	return p, nil
}

type UpdatePunchItemRequest struct {
	Title            *string                `json:"title,omitempty" validate:"omitempty,max=255"`
	Description      *string                `json:"description,omitempty"`
	Location         *string                `json:"location,omitempty" validate:"omitempty,max=255"`
	Trade            *string                `json:"trade,omitempty" validate:"omitempty,max=100"`
	AssignedVendorID *string                `json:"assigned_vendor_id,omitempty"`
	DueDate          *string                `json:"due_date,omitempty"`
	PunchItemStatus  *types.PunchItemStatus `json:"punch_item_status,omitempty"`
	Version          int                    `json:"version" validate:"min=1"`
}

func (r *UpdatePunchItemRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.PunchItemStatus != nil {
		if err := r.PunchItemStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid punch item status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdatePunchItemRequest) Apply(p *punchitem.PunchItem) error {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Location != nil {
		p.Location = *r.Location
	}
	if r.Trade != nil {
		p.Trade = *r.Trade
	}
	if r.AssignedVendorID != nil {
		p.AssignedVendorID = *r.AssignedVendorID
	}
	if r.DueDate != nil {
		dueDate, err := types.ParseOptionalDate("due_date", r.DueDate)
		if err != nil {
			return err
		}
		p.DueDate = dueDate
	}
	if r.PunchItemStatus != nil {
		p.PunchItemStatus = *r.PunchItemStatus
		if p.PunchItemStatus == types.PunchItemStatusCompleted && p.CompletedAt == nil {
			now := time.Now().UTC()
			p.CompletedAt = &now
		}
	}
	p.Version = r.Version
	return nil
}

type PunchItemResponse struct {
	*punchitem.PunchItem
	StatusBadge types.BadgeVariant `json:"status_badge"`
}

func NewPunchItemResponse(p *punchitem.PunchItem) *PunchItemResponse {
	return &PunchItemResponse{PunchItem: p, StatusBadge: p.PunchItemStatus.BadgeVariant()}
}

// ListPunchItemsResponse represents a paginated list of punch items
type ListPunchItemsResponse = types.ListResponse[*PunchItemResponse]
