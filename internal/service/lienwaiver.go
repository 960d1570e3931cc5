package service

import (
	"context"

	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/types"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type LienWaiverService interface {
	CreateLienWaiver(ctx context.Context, req *dto.CreateLienWaiverRequest) (*dto.LienWaiverResponse, error)
	GetLienWaiver(ctx context.Context, id string) (*dto.LienWaiverResponse, error)
	ListLienWaivers(ctx context.Context, filter *types.LienWaiverFilter) (*dto.ListLienWaiversResponse, error)
	UpdateLienWaiver(ctx context.Context, id string, req *dto.UpdateLienWaiverRequest) (*dto.LienWaiverResponse, error)
	ArchiveLienWaiver(ctx context.Context, id string) error
}

type lienWaiverService struct {
	ServiceParams
}

func NewLienWaiverService(params ServiceParams) LienWaiverService {
	return &lienWaiverService{ServiceParams: params}
}

func (s *lienWaiverService) CreateLienWaiver(ctx context.Context, req *dto.CreateLienWaiverRequest) (*dto.LienWaiverResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureJob(ctx, req.JobID); err != nil {
		return nil, err
	}
	if err := s.ensureVendor(ctx, req.VendorID); err != nil {
		return nil, err
	}

	lw, err := req.ToLienWaiver(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.LienWaiverRepo.Create(ctx, lw); err != nil {
		return nil, err
	}

	s.Logger.Infow("created lien waiver", "lien_waiver_id", lw.ID, "job_id", lw.JobID, "waiver_type", lw.WaiverType)
	return dto.NewLienWaiverResponse(lw), nil
}

func (s *lienWaiverService) GetLienWaiver(ctx context.Context, id string) (*dto.LienWaiverResponse, error) {
	lw, err := s.LienWaiverRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewLienWaiverResponse(lw), nil
}

func (s *lienWaiverService) ListLienWaivers(ctx context.Context, filter *types.LienWaiverFilter) (*dto.ListLienWaiversResponse, error) {
	if filter == nil {
		filter = types.NewDefaultLienWaiverFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	items, err := s.LienWaiverRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.LienWaiverRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListLienWaiversResponse{
		Items: make([]*dto.LienWaiverResponse, len(items)),
	}
	for i, lw := range items {
		resp.Items[i] = dto.NewLienWaiverResponse(lw)
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *lienWaiverService) UpdateLienWaiver(ctx context.Context, id string, req *dto.UpdateLienWaiverRequest) (*dto.LienWaiverResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lw, err := s.LienWaiverRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.VendorID != nil && *req.VendorID != "" && *req.VendorID != lw.VendorID {
		if err := s.ensureVendor(ctx, *req.VendorID); err != nil {
			return nil, err
		}
	}

	if err := req.Apply(lw); err != nil {
		return nil, err
	}
	if err := s.LienWaiverRepo.Update(ctx, lw); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated lien waiver", "lien_waiver_id", lw.ID, "version", lw.Version)
	return dto.NewLienWaiverResponse(lw), nil
}

func (s *lienWaiverService) ArchiveLienWaiver(ctx context.Context, id string) error {
	if err := s.LienWaiverRepo.Archive(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("archived lien waiver", "lien_waiver_id", id)
	return nil
}
