package service

import (
	"context"

	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/types"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type DrawRequestService interface {
	CreateDrawRequest(ctx context.Context, req *dto.CreateDrawRequestRequest) (*dto.DrawRequestResponse, error)
	GetDrawRequest(ctx context.Context, id string) (*dto.DrawRequestResponse, error)
	ListDrawRequests(ctx context.Context, filter *types.DrawRequestFilter) (*dto.ListDrawRequestsResponse, error)
	UpdateDrawRequest(ctx context.Context, id string, req *dto.UpdateDrawRequestRequest) (*dto.DrawRequestResponse, error)
	ArchiveDrawRequest(ctx context.Context, id string) error
}

type drawRequestService struct {
	ServiceParams
}

func NewDrawRequestService(params ServiceParams) DrawRequestService {
	return &drawRequestService{ServiceParams: params}
}

func (s *drawRequestService) CreateDrawRequest(ctx context.Context, req *dto.CreateDrawRequestRequest) (*dto.DrawRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureJob(ctx, req.JobID); err != nil {
		return nil, err
	}

	dr, err := req.ToDrawRequest(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.DrawRequestRepo.Create(ctx, dr); err != nil {
		return nil, err
	}

	s.Logger.Infow("created draw request",
		"draw_request_id", dr.ID,
		"job_id", dr.JobID,
		"current_payment_due", dr.CurrentPaymentDue,
	)
	return dto.NewDrawRequestResponse(dr), nil
}

func (s *drawRequestService) GetDrawRequest(ctx context.Context, id string) (*dto.DrawRequestResponse, error) {
	dr, err := s.DrawRequestRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewDrawRequestResponse(dr), nil
}

func (s *drawRequestService) ListDrawRequests(ctx context.Context, filter *types.DrawRequestFilter) (*dto.ListDrawRequestsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultDrawRequestFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	items, err := s.DrawRequestRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.DrawRequestRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListDrawRequestsResponse{
		Items: make([]*dto.DrawRequestResponse, len(items)),
	}
	for i, dr := range items {
		resp.Items[i] = dto.NewDrawRequestResponse(dr)
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *drawRequestService) UpdateDrawRequest(ctx context.Context, id string, req *dto.UpdateDrawRequestRequest) (*dto.DrawRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dr, err := s.DrawRequestRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(dr); err != nil {
		return nil, err
	}
	if err := s.DrawRequestRepo.Update(ctx, dr); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated draw request",
		"draw_request_id", dr.ID,
		"version", dr.Version,
		"current_payment_due", dr.CurrentPaymentDue,
	)
	return dto.NewDrawRequestResponse(dr), nil
}

func (s *drawRequestService) ArchiveDrawRequest(ctx context.Context, id string) error {
	if err := s.DrawRequestRepo.Archive(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("archived draw request", "draw_request_id", id)
	return nil
}
