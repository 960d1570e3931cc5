package service

import (
	"context"

	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/types"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type WarrantyClaimService interface {
	CreateWarrantyClaim(ctx context.Context, req *dto.CreateWarrantyClaimRequest) (*dto.WarrantyClaimResponse, error)
	GetWarrantyClaim(ctx context.Context, id string) (*dto.WarrantyClaimResponse, error)
	ListWarrantyClaims(ctx context.Context, filter *types.WarrantyClaimFilter) (*dto.ListWarrantyClaimsResponse, error)
	UpdateWarrantyClaim(ctx context.Context, id string, req *dto.UpdateWarrantyClaimRequest) (*dto.WarrantyClaimResponse, error)
	ArchiveWarrantyClaim(ctx context.Context, id string) error
}

type warrantyClaimService struct {
	ServiceParams
}

func NewWarrantyClaimService(params ServiceParams) WarrantyClaimService {
	return &warrantyClaimService{ServiceParams: params}
}

func (s *warrantyClaimService) CreateWarrantyClaim(ctx context.Context, req *dto.CreateWarrantyClaimRequest) (*dto.WarrantyClaimResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureJob(ctx, req.JobID); err != nil {
		return nil, err
	}

	wc, err := req.ToWarrantyClaim(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.WarrantyClaimRepo.Create(ctx, wc); err != nil {
		return nil, err
	}

	s.Logger.Infow("created warranty claim", "warranty_claim_id", wc.ID, "job_id", wc.JobID)
	return dto.NewWarrantyClaimResponse(wc), nil
}

func (s *warrantyClaimService) GetWarrantyClaim(ctx context.Context, id string) (*dto.WarrantyClaimResponse, error) {
	wc, err := s.WarrantyClaimRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewWarrantyClaimResponse(wc), nil
}

func (s *warrantyClaimService) ListWarrantyClaims(ctx context.Context, filter *types.WarrantyClaimFilter) (*dto.ListWarrantyClaimsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultWarrantyClaimFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	items, err := s.WarrantyClaimRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.WarrantyClaimRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListWarrantyClaimsResponse{
		Items: make([]*dto.WarrantyClaimResponse, len(items)),
	}
	for i, wc := range items {
		resp.Items[i] = dto.NewWarrantyClaimResponse(wc)
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *warrantyClaimService) UpdateWarrantyClaim(ctx context.Context, id string, req *dto.UpdateWarrantyClaimRequest) (*dto.WarrantyClaimResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	wc, err := s.WarrantyClaimRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(wc); err != nil {
		return nil, err
	}
	if err := s.WarrantyClaimRepo.Update(ctx, wc); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated warranty claim", "warranty_claim_id", wc.ID, "version", wc.Version)
	return dto.NewWarrantyClaimResponse(wc), nil
}

func (s *warrantyClaimService) ArchiveWarrantyClaim(ctx context.Context, id string) error {
	if err := s.WarrantyClaimRepo.Archive(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("archived warranty claim", "warranty_claim_id", id)
	return nil
}
