package service

import (
	"context"
	"time"

	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/types"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type SubmittalService interface {
	CreateSubmittal(ctx context.Context, req *dto.CreateSubmittalRequest) (*dto.SubmittalResponse, error)
	GetSubmittal(ctx context.Context, id string) (*dto.SubmittalResponse, error)
	ListSubmittals(ctx context.Context, filter *types.SubmittalFilter) (*dto.ListSubmittalsResponse, error)
	UpdateSubmittal(ctx context.Context, id string, req *dto.UpdateSubmittalRequest) (*dto.SubmittalResponse, error)
	ArchiveSubmittal(ctx context.Context, id string) error
}

type submittalService struct {
	ServiceParams
}

func NewSubmittalService(params ServiceParams) SubmittalService {
	return &submittalService{ServiceParams: params}
}

func (s *submittalService) CreateSubmittal(ctx context.Context, req *dto.CreateSubmittalRequest) (*dto.SubmittalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureJob(ctx, req.JobID); err != nil {
		return nil, err
	}

	sub, err := req.ToSubmittal(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.SubmittalRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.Logger.Infow("created submittal", "submittal_id", sub.ID, "job_id", sub.JobID)
	return dto.NewSubmittalResponse(sub), nil
}

func (s *submittalService) GetSubmittal(ctx context.Context, id string) (*dto.SubmittalResponse, error) {
	sub, err := s.SubmittalRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewSubmittalResponse(sub), nil
}

func (s *submittalService) ListSubmittals(ctx context.Context, filter *types.SubmittalFilter) (*dto.ListSubmittalsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultSubmittalFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	items, err := s.SubmittalRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.SubmittalRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListSubmittalsResponse{
		Items: make([]*dto.SubmittalResponse, len(items)),
	}
	for i, sub := range items {
		resp.Items[i] = dto.NewSubmittalResponse(sub)
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *submittalService) UpdateSubmittal(ctx context.Context, id string, req *dto.UpdateSubmittalRequest) (*dto.SubmittalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sub, err := s.SubmittalRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(sub); err != nil {
		return nil, err
	}
	// A review decision stamps the review time once.
	if (sub.SubmittalStatus == types.SubmittalStatusApproved ||
		sub.SubmittalStatus == types.SubmittalStatusReviseResubmit) && sub.ReviewedAt == nil {
		now := time.Now().UTC()
		sub.ReviewedAt = &now
	}
	if err := s.SubmittalRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated submittal", "submittal_id", sub.ID, "version", sub.Version)
	return dto.NewSubmittalResponse(sub), nil
}

func (s *submittalService) ArchiveSubmittal(ctx context.Context, id string) error {
	if err := s.SubmittalRepo.Archive(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("archived submittal", "submittal_id", id)
	return nil
}
