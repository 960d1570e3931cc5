package service

import (
	"context"
	"time"

	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/types"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type RFIService interface {
	CreateRFI(ctx context.Context, req *dto.CreateRFIRequest) (*dto.RFIResponse, error)
	GetRFI(ctx context.Context, id string) (*dto.RFIResponse, error)
	ListRFIs(ctx context.Context, filter *types.RFIFilter) (*dto.ListRFIsResponse, error)
	UpdateRFI(ctx context.Context, id string, req *dto.UpdateRFIRequest) (*dto.RFIResponse, error)
	ArchiveRFI(ctx context.Context, id string) error
}

type rfiService struct {
	ServiceParams
}

func NewRFIService(params ServiceParams) RFIService {
	return &rfiService{ServiceParams: params}
}

func (s *rfiService) CreateRFI(ctx context.Context, req *dto.CreateRFIRequest) (*dto.RFIResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureJob(ctx, req.JobID); err != nil {
		return nil, err
	}

	item, err := req.ToRFI(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.RFIRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.Logger.Infow("created rfi", "rfi_id", item.ID, "job_id", item.JobID)
	return dto.NewRFIResponse(item), nil
}

func (s *rfiService) GetRFI(ctx context.Context, id string) (*dto.RFIResponse, error) {
	item, err := s.RFIRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewRFIResponse(item), nil
}

func (s *rfiService) ListRFIs(ctx context.Context, filter *types.RFIFilter) (*dto.ListRFIsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultRFIFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	items, err := s.RFIRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.RFIRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListRFIsResponse{
		Items: make([]*dto.RFIResponse, len(items)),
	}
	for i, item := range items {
		resp.Items[i] = dto.NewRFIResponse(item)
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *rfiService) UpdateRFI(ctx context.Context, id string, req *dto.UpdateRFIRequest) (*dto.RFIResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item, err := s.RFIRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(item); err != nil {
		return nil, err
	}
	// Recording an answer moves an open RFI to answered and stamps the
	// answer time once.
	if item.Answer != "" && item.RFIStatus == types.RFIStatusOpen {
		item.RFIStatus = types.RFIStatusAnswered
	}
	if item.RFIStatus == types.RFIStatusAnswered && item.AnsweredAt == nil {
		now := time.Now().UTC()
		item.AnsweredAt = &now
	}
	if err := s.RFIRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated rfi", "rfi_id", item.ID, "version", item.Version)
	return dto.NewRFIResponse(item), nil
}

func (s *rfiService) ArchiveRFI(ctx context.Context, id string) error {
	if err := s.RFIRepo.Archive(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("archived rfi", "rfi_id", id)
	return nil
}
