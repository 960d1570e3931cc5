package dto

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/insurancepolicy"
	"github.com/siteledger/siteledger/internal/format"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type CreateInsurancePolicyRequest struct {
	VendorID              string                      `json:"vendor_id" validate:"required"`
	Carrier               string                      `json:"carrier" validate:"required,max=255"`
	PolicyNumber          string                      `json:"policy_number,omitempty" validate:"omitempty,max=100"`
	CoverageType          types.InsuranceCoverageType `json:"coverage_type" validate:"required"`
	CoverageAmount        *string                     `json:"coverage_amount,omitempty"`
	EffectiveDate         *string                     `json:"effective_date,omitempty"`
	ExpirationDate        *string                     `json:"expiration_date,omitempty"`
	InsurancePolicyStatus types.InsurancePolicyStatus `json:"insurance_policy_status,omitempty"`
}

func (r *CreateInsurancePolicyRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.CoverageType.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid coverage type").
			Mark(ierr.ErrValidation)
	}
	if r.InsurancePolicyStatus != "" {
		if err := r.InsurancePolicyStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid insurance policy status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *CreateInsurancePolicyRequest) ToInsurancePolicy(ctx context.Context) (*insurancepolicy.InsurancePolicy, error) {
	coverageAmount, err := types.ParseOptionalDecimal("coverage_amount", r.CoverageAmount)
	if err != nil {
		return nil, err
	}
	effectiveDate, err := types.ParseOptionalDate("effective_date", r.EffectiveDate)
	if err != nil {
		return nil, err
	}
	expirationDate, err := types.ParseOptionalDate("expiration_date", r.ExpirationDate)
	if err != nil {
		return nil, err
	}

	p := &insurancepolicy.InsurancePolicy{
		ID:                    types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INSURANCE_POLICY),
		VendorID:              r.VendorID,
		Carrier:               r.Carrier,
		PolicyNumber:          r.PolicyNumber,
		CoverageType:          r.CoverageType,
		CoverageAmount:        coverageAmount,
		EffectiveDate:         effectiveDate,
		ExpirationDate:        expirationDate,
		InsurancePolicyStatus: r.InsurancePolicyStatus,
		BaseModel:             types.GetDefaultBaseModel(ctx),
	}
	if p.InsurancePolicyStatus == "" {
		p.InsurancePolicyStatus = types.InsurancePolicyStatusActive
	}
	return p, nil
}

type UpdateInsurancePolicyRequest struct {
	Carrier               *string                      `json:"carrier,omitempty" validate:"omitempty,max=255"`
	PolicyNumber          *string                      `json:"policy_number,omitempty" validate:"omitempty,max=100"`
	CoverageType          *types.InsuranceCoverageType `json:"coverage_type,omitempty"`
	CoverageAmount        *string                      `json:"coverage_amount,omitempty"`
	EffectiveDate         *string                      `json:"effective_date,omitempty"`
	ExpirationDate        *string                      `json:"expiration_date,omitempty"`
	InsurancePolicyStatus *types.InsurancePolicyStatus `json:"insurance_policy_status,omitempty"`
	Version               int                          `json:"version" validate:"min=1"`
}

func (r *UpdateInsurancePolicyRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.CoverageType != nil {
		if err := r.CoverageType.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid coverage type").
				Mark(ierr.ErrValidation)
		}
	}
	if r.InsurancePolicyStatus != nil {
		if err := r.InsurancePolicyStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid insurance policy status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdateInsurancePolicyRequest) Apply(p *insurancepolicy.InsurancePolicy) error {
	if r.Carrier != nil {
		p.Carrier = *r.Carrier
	}
	if r.PolicyNumber != nil {
		p.PolicyNumber = *r.PolicyNumber
	}
	if r.CoverageType != nil {
		p.CoverageType = *r.CoverageType
	}
	if r.CoverageAmount != nil {
		coverageAmount, err := types.ParseOptionalDecimal("coverage_amount", r.CoverageAmount)
		if err != nil {
			return err
		}
		p.CoverageAmount = coverageAmount
	}
	if r.EffectiveDate != nil {
		effectiveDate, err := types.ParseOptionalDate("effective_date", r.EffectiveDate)
		if err != nil {
			return err
		}
		p.EffectiveDate = effectiveDate
	}
	if r.ExpirationDate != nil {
		expirationDate, err := types.ParseOptionalDate("expiration_date", r.ExpirationDate)
		if err != nil {
			return err
		}
		p.ExpirationDate = expirationDate
	}
	if r.InsurancePolicyStatus != nil {
		p.InsurancePolicyStatus = *r.InsurancePolicyStatus
	}
	p.Version = r.Version
	return nil
}

type InsurancePolicyResponse struct {
	*insurancepolicy.InsurancePolicy
	StatusBadge           types.BadgeVariant `json:"status_badge"`
	CoverageAmountDisplay string             `json:"coverage_amount_display"`
	ExpirationDateDisplay string             `json:"expiration_date_display"`
}

func NewInsurancePolicyResponse(p *insurancepolicy.InsurancePolicy) *InsurancePolicyResponse {
	return &InsurancePolicyResponse{
		InsurancePolicy:       p,
		StatusBadge:           p.InsurancePolicyStatus.BadgeVariant(),
		CoverageAmountDisplay: format.OptionalCurrency(p.CoverageAmount),
		ExpirationDateDisplay: format.OptionalDate(p.ExpirationDate),
	}
}

// ListInsurancePoliciesResponse represents a paginated list of insurance policies
type ListInsurancePoliciesResponse = types.ListResponse[*InsurancePolicyResponse]
