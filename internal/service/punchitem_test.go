package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/testutil"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/stretchr/testify/suite"
)

type PunchItemServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PunchItemService
	jobID   string
}

func TestPunchItemService(t *testing.T) {
	suite.Run(t, new(PunchItemServiceSuite))
}

func (s *PunchItemServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewPunchItemService(params)

	job, err := NewJobService(params).CreateJob(s.GetContext(), &dto.CreateJobRequest{
		Name:           "Punch List Host Job",
		ContractAmount: "750000",
	})
	s.Require().NoError(err)
	s.jobID = job.ID
}

func (s *PunchItemServiceSuite) TestCreatePunchItemDefaultsOpen() {
	resp, err := s.service.CreatePunchItem(s.GetContext(), &dto.CreatePunchItemRequest{
		JobID:    s.jobID,
		Title:    "Adjust door closer at suite 210",
		Location: "Suite 210",
		Trade:    "doors",
	})
	s.NoError(err)
	s.Equal(types.PunchItemStatusOpen, resp.PunchItemStatus)
	s.Nil(resp.CompletedAt)
}

func (s *PunchItemServiceSuite) TestCompletionStampsCompletedAt() {
	created, err := s.service.CreatePunchItem(s.GetContext(), &dto.CreatePunchItemRequest{
		JobID: s.jobID,
		Title: "Caulk window frames",
	})
	s.NoError(err)

	done, err := s.service.UpdatePunchItem(s.GetContext(), created.ID, &dto.UpdatePunchItemRequest{
		PunchItemStatus: lo.ToPtr(types.PunchItemStatusCompleted),
		Version:         1,
	})
	s.NoError(err)
	s.NotNil(done.CompletedAt)

	// Reworking the title later keeps the original completion time.
	edited, err := s.service.UpdatePunchItem(s.GetContext(), created.ID, &dto.UpdatePunchItemRequest{
		Title:   lo.ToPtr("Caulk window frames, north elevation"),
		Version: 2,
	})
	s.NoError(err)
	s.Equal(done.CompletedAt, edited.CompletedAt)
}

func (s *PunchItemServiceSuite) TestListFiltersByTrade() {
	_, err := s.service.CreatePunchItem(s.GetContext(), &dto.CreatePunchItemRequest{
		JobID: s.jobID,
		Title: "Repair drywall corner",
		Trade: "drywall",
	})
	s.NoError(err)
	_, err = s.service.CreatePunchItem(s.GetContext(), &dto.CreatePunchItemRequest{
		JobID: s.jobID,
		Title: "Replace outlet cover",
		Trade: "electrical",
	})
	s.NoError(err)

	resp, err := s.service.ListPunchItems(s.GetContext(), &types.PunchItemFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		Trade:       "electrical",
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Replace outlet cover", resp.Items[0].Title)
}
