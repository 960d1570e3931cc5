package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/testutil"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/stretchr/testify/suite"
)

type WarrantyClaimServiceSuite struct {
	testutil.BaseServiceTestSuite
	service WarrantyClaimService
	jobID   string
}

func TestWarrantyClaimService(t *testing.T) {
	suite.Run(t, new(WarrantyClaimServiceSuite))
}

func (s *WarrantyClaimServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewWarrantyClaimService(params)

	job, err := NewJobService(params).CreateJob(s.GetContext(), &dto.CreateJobRequest{
		Name:           "Warranty Host Job",
		ContractAmount: "300000",
	})
	s.Require().NoError(err)
	s.jobID = job.ID
}

func (s *WarrantyClaimServiceSuite) TestCreateWarrantyClaimDefaultsOpen() {
	resp, err := s.service.CreateWarrantyClaim(s.GetContext(), &dto.CreateWarrantyClaimRequest{
		JobID:      s.jobID,
		Title:      "HVAC unit short cycling",
		ReportedBy: "Building manager",
	})
	s.NoError(err)
	s.Equal(types.WarrantyClaimStatusOpen, resp.WarrantyClaimStatus)
	s.Nil(resp.ResolvedAt)
}

func (s *WarrantyClaimServiceSuite) TestSchedulingKeepsResolvedAtEmpty() {
	created, err := s.service.CreateWarrantyClaim(s.GetContext(), &dto.CreateWarrantyClaimRequest{
		JobID: s.jobID,
		Title: "Roof leak above unit 4B",
	})
	s.NoError(err)

	scheduled, err := s.service.UpdateWarrantyClaim(s.GetContext(), created.ID, &dto.UpdateWarrantyClaimRequest{
		WarrantyClaimStatus: lo.ToPtr(types.WarrantyClaimStatusScheduled),
		ScheduledFor:        lo.ToPtr("2026-09-15"),
		Version:             1,
	})
	s.NoError(err)
	s.NotNil(scheduled.ScheduledFor)
	s.Nil(scheduled.ResolvedAt)
}

func (s *WarrantyClaimServiceSuite) TestResolutionStampsResolvedAt() {
	created, err := s.service.CreateWarrantyClaim(s.GetContext(), &dto.CreateWarrantyClaimRequest{
		JobID: s.jobID,
		Title: "Cracked foundation sealant",
	})
	s.NoError(err)

	resolved, err := s.service.UpdateWarrantyClaim(s.GetContext(), created.ID, &dto.UpdateWarrantyClaimRequest{
		WarrantyClaimStatus: lo.ToPtr(types.WarrantyClaimStatusResolved),
		Version:             1,
	})
	s.NoError(err)
	s.NotNil(resolved.ResolvedAt)

	// Denied after resolved is unusual but allowed; the original
	// resolution time survives.
	denied, err := s.service.UpdateWarrantyClaim(s.GetContext(), created.ID, &dto.UpdateWarrantyClaimRequest{
		WarrantyClaimStatus: lo.ToPtr(types.WarrantyClaimStatusDenied),
		Version:             2,
	})
	s.NoError(err)
	s.Equal(resolved.ResolvedAt, denied.ResolvedAt)
}
