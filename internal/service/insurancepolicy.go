package service

import (
	"context"

	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/types"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type InsurancePolicyService interface {
	CreateInsurancePolicy(ctx context.Context, req *dto.CreateInsurancePolicyRequest) (*dto.InsurancePolicyResponse, error)
	GetInsurancePolicy(ctx context.Context, id string) (*dto.InsurancePolicyResponse, error)
	ListInsurancePolicies(ctx context.Context, filter *types.InsurancePolicyFilter) (*dto.ListInsurancePoliciesResponse, error)
	UpdateInsurancePolicy(ctx context.Context, id string, req *dto.UpdateInsurancePolicyRequest) (*dto.InsurancePolicyResponse, error)
	ArchiveInsurancePolicy(ctx context.Context, id string) error
}

type insurancePolicyService struct {
	ServiceParams
}

func NewInsurancePolicyService(params ServiceParams) InsurancePolicyService {
	return &insurancePolicyService{ServiceParams: params}
}

func (s *insurancePolicyService) CreateInsurancePolicy(ctx context.Context, req *dto.CreateInsurancePolicyRequest) (*dto.InsurancePolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureVendor(ctx, req.VendorID); err != nil {
		return nil, err
	}

	p, err := req.ToInsurancePolicy(ctx)
	if err != nil {
		return nil, err
	}
	if p.EffectiveDate != nil && p.ExpirationDate != nil && p.ExpirationDate.Before(*p.EffectiveDate) {
		return nil, ierr.NewError("expiration_date precedes effective_date").
			WithHint("Expiration date must be after the effective date").
			Mark(ierr.ErrValidation)
	}
	if err := s.InsurancePolicyRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("created insurance policy", "insurance_policy_id", p.ID, "vendor_id", p.VendorID, "coverage_type", p.CoverageType)
	return dto.NewInsurancePolicyResponse(p), nil
}

func (s *insurancePolicyService) GetInsurancePolicy(ctx context.Context, id string) (*dto.InsurancePolicyResponse, error) {
	p, err := s.InsurancePolicyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewInsurancePolicyResponse(p), nil
}

func (s *insurancePolicyService) ListInsurancePolicies(ctx context.Context, filter *types.InsurancePolicyFilter) (*dto.ListInsurancePoliciesResponse, error) {
	if filter == nil {
		filter = types.NewDefaultInsurancePolicyFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	items, err := s.InsurancePolicyRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.InsurancePolicyRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListInsurancePoliciesResponse{
		Items: make([]*dto.InsurancePolicyResponse, len(items)),
	}
	for i, p := range items {
		resp.Items[i] = dto.NewInsurancePolicyResponse(p)
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *insurancePolicyService) UpdateInsurancePolicy(ctx context.Context, id string, req *dto.UpdateInsurancePolicyRequest) (*dto.InsurancePolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.InsurancePolicyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(p); err != nil {
		return nil, err
	}
	if p.EffectiveDate != nil && p.ExpirationDate != nil && p.ExpirationDate.Before(*p.EffectiveDate) {
		return nil, ierr.NewError("expiration_date precedes effective_date").
			WithHint("Expiration date must be after the effective date").
			Mark(ierr.ErrValidation)
	}
	if err := s.InsurancePolicyRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated insurance policy", "insurance_policy_id", p.ID, "version", p.Version)
	return dto.NewInsurancePolicyResponse(p), nil
}

func (s *insurancePolicyService) ArchiveInsurancePolicy(ctx context.Context, id string) error {
	if err := s.InsurancePolicyRepo.Archive(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("archived insurance policy", "insurance_policy_id", id)
	return nil
}
