package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/testutil"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/stretchr/testify/suite"
)

type RFIServiceSuite struct {
	testutil.BaseServiceTestSuite
	service RFIService
	jobID   string
}

func TestRFIService(t *testing.T) {
	suite.Run(t, new(RFIServiceSuite))
}

func (s *RFIServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewRFIService(params)

	job, err := NewJobService(params).CreateJob(s.GetContext(), &dto.CreateJobRequest{Name: "Questioned Job"})
	s.Require().NoError(err)
	s.jobID = job.ID
}

func (s *RFIServiceSuite) TestCreateRFIDefaultsOpen() {
	resp, err := s.service.CreateRFI(s.GetContext(), &dto.CreateRFIRequest{
		JobID:    s.jobID,
		Subject:  "Footing depth at grid B",
		Question: "Drawings show 36in, spec says 42in. Which governs?",
		DueDate:  lo.ToPtr("2026-10-15"),
	})
	s.NoError(err)
	s.Equal(types.RFIStatusOpen, resp.RFIStatus)
	s.Nil(resp.AnsweredAt)
}

func (s *RFIServiceSuite) TestAnsweringMovesToAnswered() {
	created, err := s.service.CreateRFI(s.GetContext(), &dto.CreateRFIRequest{
		JobID:    s.jobID,
		Subject:  "Paint color",
		Question: "Which finish in corridor 2?",
	})
	s.NoError(err)

	answered, err := s.service.UpdateRFI(s.GetContext(), created.ID, &dto.UpdateRFIRequest{
		Answer:  lo.ToPtr("Eggshell, per addendum 3."),
		Version: 1,
	})
	s.NoError(err)
	s.Equal(types.RFIStatusAnswered, answered.RFIStatus)
	s.Require().NotNil(answered.AnsweredAt)
	firstAnswer := *answered.AnsweredAt

	closed, err := s.service.UpdateRFI(s.GetContext(), created.ID, &dto.UpdateRFIRequest{
		RFIStatus: lo.ToPtr(types.RFIStatusClosed),
		Version:   2,
	})
	s.NoError(err)
	s.Equal(types.RFIStatusClosed, closed.RFIStatus)
	s.Require().NotNil(closed.AnsweredAt)
	s.Equal(firstAnswer, *closed.AnsweredAt)
}
