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

type SubmittalServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SubmittalService
	jobID   string
}

func TestSubmittalService(t *testing.T) {
	suite.Run(t, new(SubmittalServiceSuite))
}

func (s *SubmittalServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewSubmittalService(params)

	job, err := NewJobService(params).CreateJob(s.GetContext(), &dto.CreateJobRequest{
		Name:           "Submittal Host Job",
		ContractAmount: "500000",
	})
	s.Require().NoError(err)
	s.jobID = job.ID
}

func (s *SubmittalServiceSuite) TestCreateSubmittalDefaultsPending() {
	resp, err := s.service.CreateSubmittal(s.GetContext(), &dto.CreateSubmittalRequest{
		JobID:       s.jobID,
		Title:       "Structural steel shop drawings",
		SpecSection: "05 12 00",
	})
	s.NoError(err)
	s.Equal(types.SubmittalStatusPending, resp.SubmittalStatus)
	s.Nil(resp.ReviewedAt)
	s.Equal(1, resp.Version)
}

func (s *SubmittalServiceSuite) TestApprovalStampsReviewedAt() {
	created, err := s.service.CreateSubmittal(s.GetContext(), &dto.CreateSubmittalRequest{
		JobID: s.jobID,
		Title: "Curtain wall samples",
	})
	s.NoError(err)

	approved, err := s.service.UpdateSubmittal(s.GetContext(), created.ID, &dto.UpdateSubmittalRequest{
		SubmittalStatus: lo.ToPtr(types.SubmittalStatusApproved),
		Version:         1,
	})
	s.NoError(err)
	s.NotNil(approved.ReviewedAt)

	// A later edit must not move the review timestamp.
	edited, err := s.service.UpdateSubmittal(s.GetContext(), created.ID, &dto.UpdateSubmittalRequest{
		Description: lo.ToPtr("Approved as noted"),
		Version:     2,
	})
	s.NoError(err)
	s.Equal(approved.ReviewedAt, edited.ReviewedAt)
}

func (s *SubmittalServiceSuite) TestReviseResubmitStampsReviewedAt() {
	created, err := s.service.CreateSubmittal(s.GetContext(), &dto.CreateSubmittalRequest{
		JobID: s.jobID,
		Title: "Paint color schedule",
	})
	s.NoError(err)

	revised, err := s.service.UpdateSubmittal(s.GetContext(), created.ID, &dto.UpdateSubmittalRequest{
		SubmittalStatus: lo.ToPtr(types.SubmittalStatusReviseResubmit),
		Version:         1,
	})
	s.NoError(err)
	s.NotNil(revised.ReviewedAt)
}

func (s *SubmittalServiceSuite) TestListFiltersBySpecSection() {
	_, err := s.service.CreateSubmittal(s.GetContext(), &dto.CreateSubmittalRequest{
		JobID:       s.jobID,
		Title:       "Rebar shop drawings",
		SpecSection: "03 20 00",
	})
	s.NoError(err)
	_, err = s.service.CreateSubmittal(s.GetContext(), &dto.CreateSubmittalRequest{
		JobID:       s.jobID,
		Title:       "Door hardware",
		SpecSection: "08 71 00",
	})
	s.NoError(err)

	resp, err := s.service.ListSubmittals(s.GetContext(), &types.SubmittalFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		SpecSection: "03 20 00",
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Rebar shop drawings", resp.Items[0].Title)
}

func (s *SubmittalServiceSuite) TestCreateRejectsUnknownJob() {
	_, err := s.service.CreateSubmittal(s.GetContext(), &dto.CreateSubmittalRequest{
		JobID: "job_missing",
		Title: "Orphan submittal",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
