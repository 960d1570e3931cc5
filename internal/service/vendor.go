package service

import (
	"context"

	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/types"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type VendorService interface {
	CreateVendor(ctx context.Context, req *dto.CreateVendorRequest) (*dto.VendorResponse, error)
	GetVendor(ctx context.Context, id string) (*dto.VendorResponse, error)
	ListVendors(ctx context.Context, filter *types.VendorFilter) (*dto.ListVendorsResponse, error)
	UpdateVendor(ctx context.Context, id string, req *dto.UpdateVendorRequest) (*dto.VendorResponse, error)
	ArchiveVendor(ctx context.Context, id string) error
}

type vendorService struct {
	ServiceParams
}

func NewVendorService(params ServiceParams) VendorService {
	return &vendorService{ServiceParams: params}
}

func (s *vendorService) CreateVendor(ctx context.Context, req *dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	v := req.ToVendor(ctx)
	if err := s.VendorRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.Logger.Infow("created vendor", "vendor_id", v.ID, "name", v.Name)
	return dto.NewVendorResponse(v), nil
}

func (s *vendorService) GetVendor(ctx context.Context, id string) (*dto.VendorResponse, error) {
	v, err := s.VendorRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewVendorResponse(v), nil
}

func (s *vendorService) ListVendors(ctx context.Context, filter *types.VendorFilter) (*dto.ListVendorsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultVendorFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	items, err := s.VendorRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.VendorRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListVendorsResponse{
		Items: make([]*dto.VendorResponse, len(items)),
	}
	for i, v := range items {
		resp.Items[i] = dto.NewVendorResponse(v)
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, id string, req *dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	v, err := s.VendorRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(v)
	if err := s.VendorRepo.Update(ctx, v); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated vendor", "vendor_id", v.ID, "version", v.Version)
	return dto.NewVendorResponse(v), nil
}

func (s *vendorService) ArchiveVendor(ctx context.Context, id string) error {
	if err := s.VendorRepo.Archive(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("archived vendor", "vendor_id", id)
	return nil
}
