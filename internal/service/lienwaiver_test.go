package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/api/dto"
	ierr "github.com/siteledger/siteledger/internal/errors"
	"github.com/siteledger/siteledger/internal/testutil"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/stretchr/testify/suite"
)

type LienWaiverServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  LienWaiverService
	jobID    string
	vendorID string
}

func TestLienWaiverService(t *testing.T) {
	suite.Run(t, new(LienWaiverServiceSuite))
}

func (s *LienWaiverServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewLienWaiverService(params)

	job, err := NewJobService(params).CreateJob(s.GetContext(), &dto.CreateJobRequest{
		Name:           "Waiver Host Job",
		ContractAmount: "650000",
	})
	s.Require().NoError(err)
	s.jobID = job.ID

	vendor, err := NewVendorService(params).CreateVendor(s.GetContext(), &dto.CreateVendorRequest{
		Name:  "Apex Mechanical",
		Trade: "mechanical",
	})
	s.Require().NoError(err)
	s.vendorID = vendor.ID
}

func (s *LienWaiverServiceSuite) TestCreateLienWaiver() {
	resp, err := s.service.CreateLienWaiver(s.GetContext(), &dto.CreateLienWaiverRequest{
		JobID:       s.jobID,
		VendorID:    s.vendorID,
		WaiverType:  types.LienWaiverTypeConditionalProgress,
		ThroughDate: lo.ToPtr("2026-08-31"),
		Amount:      lo.ToPtr("25000"),
	})
	s.NoError(err)
	s.Equal(types.LienWaiverStatusDraft, resp.LienWaiverStatus)
	s.Equal(types.LienWaiverTypeConditionalProgress, resp.WaiverType)
	s.Nil(resp.SignedAt)
}

func (s *LienWaiverServiceSuite) TestCreateRejectsInvalidWaiverType() {
	_, err := s.service.CreateLienWaiver(s.GetContext(), &dto.CreateLienWaiverRequest{
		JobID:      s.jobID,
		VendorID:   s.vendorID,
		WaiverType: types.LienWaiverType("partial"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *LienWaiverServiceSuite) TestSigningStampsSignedAt() {
	created, err := s.service.CreateLienWaiver(s.GetContext(), &dto.CreateLienWaiverRequest{
		JobID:      s.jobID,
		VendorID:   s.vendorID,
		WaiverType: types.LienWaiverTypeUnconditionalFinal,
	})
	s.NoError(err)

	sent, err := s.service.UpdateLienWaiver(s.GetContext(), created.ID, &dto.UpdateLienWaiverRequest{
		LienWaiverStatus: lo.ToPtr(types.LienWaiverStatusSent),
		Version:          1,
	})
	s.NoError(err)
	s.Nil(sent.SignedAt)

	signed, err := s.service.UpdateLienWaiver(s.GetContext(), created.ID, &dto.UpdateLienWaiverRequest{
		LienWaiverStatus: lo.ToPtr(types.LienWaiverStatusSigned),
		Version:          2,
	})
	s.NoError(err)
	s.NotNil(signed.SignedAt)
}

func (s *LienWaiverServiceSuite) TestListFiltersByWaiverType() {
	_, err := s.service.CreateLienWaiver(s.GetContext(), &dto.CreateLienWaiverRequest{
		JobID:      s.jobID,
		VendorID:   s.vendorID,
		WaiverType: types.LienWaiverTypeConditionalProgress,
	})
	s.NoError(err)
	_, err = s.service.CreateLienWaiver(s.GetContext(), &dto.CreateLienWaiverRequest{
		JobID:      s.jobID,
		VendorID:   s.vendorID,
		WaiverType: types.LienWaiverTypeUnconditionalFinal,
	})
	s.NoError(err)

	resp, err := s.service.ListLienWaivers(s.GetContext(), &types.LienWaiverFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		WaiverType:  types.LienWaiverTypeUnconditionalFinal,
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(types.LienWaiverTypeUnconditionalFinal, resp.Items[0].WaiverType)
}
