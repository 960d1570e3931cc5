package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/api/dto"
	ierr "github.com/siteledger/siteledger/internal/errors"
	"github.com/siteledger/siteledger/internal/testutil"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/stretchr/testify/suite"
)

type InsurancePolicyServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  InsurancePolicyService
	vendorID string
}

func TestInsurancePolicyService(t *testing.T) {
	suite.Run(t, new(InsurancePolicyServiceSuite))
}

func (s *InsurancePolicyServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewInsurancePolicyService(params)

	vendor, err := NewVendorService(params).CreateVendor(s.GetContext(), &dto.CreateVendorRequest{
		Name:  "Apex Electric",
		Trade: "electrical",
	})
	s.Require().NoError(err)
	s.vendorID = vendor.ID
}

func (s *InsurancePolicyServiceSuite) TestCreatePolicy() {
	resp, err := s.service.CreateInsurancePolicy(s.GetContext(), &dto.CreateInsurancePolicyRequest{
		VendorID:       s.vendorID,
		Carrier:        "Hartland Mutual",
		CoverageType:   types.InsuranceCoverageGeneralLiability,
		CoverageAmount: lo.ToPtr("2000000"),
		EffectiveDate:  lo.ToPtr("2026-01-01"),
		ExpirationDate: lo.ToPtr("2027-01-01"),
	})
	s.NoError(err)
	s.Equal(types.InsuranceCoverageGeneralLiability, resp.CoverageType)
	s.NotNil(resp.ExpirationDate)
}

func (s *InsurancePolicyServiceSuite) TestExpirationMustFollowEffective() {
	_, err := s.service.CreateInsurancePolicy(s.GetContext(), &dto.CreateInsurancePolicyRequest{
		VendorID:       s.vendorID,
		Carrier:        "Hartland Mutual",
		CoverageType:   types.InsuranceCoverageWorkersComp,
		EffectiveDate:  lo.ToPtr("2027-01-01"),
		ExpirationDate: lo.ToPtr("2026-01-01"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InsurancePolicyServiceSuite) TestExpiringSoonFilter() {
	soon := time.Now().UTC().Add(10 * 24 * time.Hour).Format("2006-01-02")
	farOut := time.Now().UTC().Add(200 * 24 * time.Hour).Format("2006-01-02")

	_, err := s.service.CreateInsurancePolicy(s.GetContext(), &dto.CreateInsurancePolicyRequest{
		VendorID:       s.vendorID,
		Carrier:        "Expiring Carrier",
		CoverageType:   types.InsuranceCoverageAuto,
		ExpirationDate: lo.ToPtr(soon),
	})
	s.NoError(err)
	_, err = s.service.CreateInsurancePolicy(s.GetContext(), &dto.CreateInsurancePolicyRequest{
		VendorID:       s.vendorID,
		Carrier:        "Healthy Carrier",
		CoverageType:   types.InsuranceCoverageUmbrella,
		ExpirationDate: lo.ToPtr(farOut),
	})
	s.NoError(err)

	resp, err := s.service.ListInsurancePolicies(s.GetContext(), &types.InsurancePolicyFilter{
		QueryFilter:  types.NewDefaultQueryFilter(),
		ExpiringSoon: true,
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Expiring Carrier", resp.Items[0].Carrier)
}
