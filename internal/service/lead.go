package service

import (
	"context"

	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/types"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type LeadService interface {
	// CaptureLead ingests a public contact form submission.
	CaptureLead(ctx context.Context, req *dto.CaptureLeadRequest) (*dto.LeadResponse, error)
	GetLead(ctx context.Context, id string) (*dto.LeadResponse, error)
	ListLeads(ctx context.Context, filter *types.LeadFilter) (*dto.ListLeadsResponse, error)
	UpdateLead(ctx context.Context, id string, req *dto.UpdateLeadRequest) (*dto.LeadResponse, error)
	ArchiveLead(ctx context.Context, id string) error
}

type leadService struct {
	ServiceParams
}

func NewLeadService(params ServiceParams) LeadService {
	return &leadService{ServiceParams: params}
}

func (s *leadService) CaptureLead(ctx context.Context, req *dto.CaptureLeadRequest) (*dto.LeadResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The contact form is public; captured leads land in the operator
	// tenant so the sales views can list them.
	if types.GetTenantID(ctx) == "" {
		ctx = types.SetTenantID(ctx, types.DefaultTenantID)
	}

	l := req.ToLead(ctx)
	if err := s.LeadRepo.Create(ctx, l); err != nil {
		return nil, err
	}

	s.Logger.Infow("captured lead", "lead_id", l.ID, "source", l.Source)
	return dto.NewLeadResponse(l), nil
}

func (s *leadService) GetLead(ctx context.Context, id string) (*dto.LeadResponse, error) {
	l, err := s.LeadRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewLeadResponse(l), nil
}

func (s *leadService) ListLeads(ctx context.Context, filter *types.LeadFilter) (*dto.ListLeadsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultLeadFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	items, err := s.LeadRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.LeadRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListLeadsResponse{
		Items: make([]*dto.LeadResponse, len(items)),
	}
	for i, l := range items {
		resp.Items[i] = dto.NewLeadResponse(l)
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *leadService) UpdateLead(ctx context.Context, id string, req *dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l, err := s.LeadRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(l)
	if err := s.LeadRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated lead", "lead_id", l.ID, "version", l.Version)
	return dto.NewLeadResponse(l), nil
}

func (s *leadService) ArchiveLead(ctx context.Context, id string) error {
	if err := s.LeadRepo.Archive(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("archived lead", "lead_id", id)
	return nil
}
