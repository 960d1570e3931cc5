package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/testutil"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/stretchr/testify/suite"
)

type DrawRequestServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DrawRequestService
	jobID   string
}

func TestDrawRequestService(t *testing.T) {
	suite.Run(t, new(DrawRequestServiceSuite))
}

func (s *DrawRequestServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewDrawRequestService(params)

	job, err := NewJobService(params).CreateJob(s.GetContext(), &dto.CreateJobRequest{Name: "Drawn Job"})
	s.Require().NoError(err)
	s.jobID = job.ID
}

func (s *DrawRequestServiceSuite) TestDrawMath() {
	// 100000 completed + 20000 stored, 10% retainage held on the gross,
	// nothing previously certified: 120000 - 12000 = 108000.
	resp, err := s.service.CreateDrawRequest(s.GetContext(), &dto.CreateDrawRequestRequest{
		JobID:            s.jobID,
		WorkCompleted:    "100000",
		MaterialsStored:  "20000",
		RetainagePercent: "10",
	})
	s.NoError(err)
	s.Equal("108000", resp.CurrentPaymentDue.String())
	s.Equal("12000", resp.Retainage.String())
	s.Equal("$108,000.00", resp.CurrentPaymentDueDisplay)
	s.Equal("$12,000.00", resp.RetainageDisplay)
	s.Equal(types.DrawRequestStatusDraft, resp.DrawRequestStatus)
}

func (s *DrawRequestServiceSuite) TestPreviousCertificatesReduceDraw() {
	resp, err := s.service.CreateDrawRequest(s.GetContext(), &dto.CreateDrawRequestRequest{
		JobID:                s.jobID,
		WorkCompleted:        "100000",
		MaterialsStored:      "20000",
		RetainagePercent:     "10",
		PreviousCertificates: "50000",
	})
	s.NoError(err)
	s.Equal("58000", resp.CurrentPaymentDue.String())
}

func (s *DrawRequestServiceSuite) TestUpdateRecalculates() {
	created, err := s.service.CreateDrawRequest(s.GetContext(), &dto.CreateDrawRequestRequest{
		JobID:            s.jobID,
		WorkCompleted:    "100000",
		RetainagePercent: "10",
	})
	s.NoError(err)
	s.Equal("90000", created.CurrentPaymentDue.String())

	updated, err := s.service.UpdateDrawRequest(s.GetContext(), created.ID, &dto.UpdateDrawRequestRequest{
		WorkCompleted: lo.ToPtr("150000"),
		Version:       1,
	})
	s.NoError(err)
	s.Equal("135000", updated.CurrentPaymentDue.String())
}

func (s *DrawRequestServiceSuite) TestZeroRetainagePaysGross() {
	resp, err := s.service.CreateDrawRequest(s.GetContext(), &dto.CreateDrawRequestRequest{
		JobID:         s.jobID,
		WorkCompleted: "42500.50",
	})
	s.NoError(err)
	s.Equal("42500.5", resp.CurrentPaymentDue.String())
	s.True(resp.Retainage.IsZero())
}
