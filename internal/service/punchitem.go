package service

import (
	"context"

	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/types"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type PunchItemService interface {
	CreatePunchItem(ctx context.Context, req *dto.CreatePunchItemRequest) (*dto.PunchItemResponse, error)
	GetPunchItem(ctx context.Context, id string) (*dto.PunchItemResponse, error)
	ListPunchItems(ctx context.Context, filter *types.PunchItemFilter) (*dto.ListPunchItemsResponse, error)
	UpdatePunchItem(ctx context.Context, id string, req *dto.UpdatePunchItemRequest) (*dto.PunchItemResponse, error)
	ArchivePunchItem(ctx context.Context, id string) error
}

type punchItemService struct {
	ServiceParams
}

func NewPunchItemService(params ServiceParams) PunchItemService {
	return &punchItemService{ServiceParams: params}
}

func (s *punchItemService) CreatePunchItem(ctx context.Context, req *dto.CreatePunchItemRequest) (*dto.PunchItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureJob(ctx, req.JobID); err != nil {
		return nil, err
	}
	if req.AssignedVendorID != "" {
		if err := s.ensureVendor(ctx, req.AssignedVendorID); err != nil {
			return nil, err
		}
	}

	p, err := req.ToPunchItem(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.PunchItemRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("created punch item", "punch_item_id", p.ID, "job_id", p.JobID)
	return dto.NewPunchItemResponse(p), nil
}

func (s *punchItemService) GetPunchItem(ctx context.Context, id string) (*dto.PunchItemResponse, error) {
	p, err := s.PunchItemRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewPunchItemResponse(p), nil
}

func (s *punchItemService) ListPunchItems(ctx context.Context, filter *types.PunchItemFilter) (*dto.ListPunchItemsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultPunchItemFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	items, err := s.PunchItemRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.PunchItemRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListPunchItemsResponse{
		Items: make([]*dto.PunchItemResponse, len(items)),
	}
	for i, p := range items {
		resp.Items[i] = dto.NewPunchItemResponse(p)
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *punchItemService) UpdatePunchItem(ctx context.Context, id string, req *dto.UpdatePunchItemRequest) (*dto.PunchItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.PunchItemRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.AssignedVendorID != nil && *req.AssignedVendorID != "" && *req.AssignedVendorID != p.AssignedVendorID {
		if err := s.ensureVendor(ctx, *req.AssignedVendorID); err != nil {
			return nil, err
		}
	}

	if err := req.Apply(p); err != nil {
		return nil, err
	}
	if err := s.PunchItemRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated punch item", "punch_item_id", p.ID, "version", p.Version)
	return dto.NewPunchItemResponse(p), nil
}

func (s *punchItemService) ArchivePunchItem(ctx context.Context, id string) error {
	if err := s.PunchItemRepo.Archive(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("archived punch item", "punch_item_id", id)
	return nil
}
