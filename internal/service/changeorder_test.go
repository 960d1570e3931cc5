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

type ChangeOrderServiceSuite struct {
	testutil.BaseServiceTestSuite
	service    ChangeOrderService
	jobService JobService
	jobID      string
}

func TestChangeOrderService(t *testing.T) {
	suite.Run(t, new(ChangeOrderServiceSuite))
}

func (s *ChangeOrderServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewChangeOrderService(params)
	s.jobService = NewJobService(params)

	job, err := s.jobService.CreateJob(s.GetContext(), &dto.CreateJobRequest{Name: "Parent Job"})
	s.Require().NoError(err)
	s.jobID = job.ID
}

func (s *ChangeOrderServiceSuite) TestCreateChangeOrder() {
	resp, err := s.service.CreateChangeOrder(s.GetContext(), &dto.CreateChangeOrderRequest{
		JobID:              s.jobID,
		Title:              "Added skylights",
		Amount:             "20000",
		ScheduleImpactDays: lo.ToPtr("14"),
	})
	s.NoError(err)
	s.Equal(types.ChangeOrderStatusDraft, resp.ChangeOrderStatus)
	s.Equal("20000", resp.Amount.String())
	s.NotNil(resp.ScheduleImpactDays)
	s.Equal(14, *resp.ScheduleImpactDays)
	s.Equal("$20,000.00", resp.AmountDisplay)
	s.Equal("14 days", resp.ScheduleImpactDisplay)
	s.Equal("Not specified", resp.CostImpactDisplay)
	s.Nil(resp.ApprovedAt)
}

func (s *ChangeOrderServiceSuite) TestCreateChangeOrderRejectsUnknownJob() {
	_, err := s.service.CreateChangeOrder(s.GetContext(), &dto.CreateChangeOrderRequest{
		JobID:  "job_missing",
		Title:  "Orphan",
		Amount: "100",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ChangeOrderServiceSuite) TestCreateChangeOrderRejectsOtherTenantsJob() {
	otherTenant := testutil.SetupContextForTenant("tenant_other", "user_other")
	_, err := s.service.CreateChangeOrder(otherTenant, &dto.CreateChangeOrderRequest{
		JobID:  s.jobID,
		Title:  "Cross tenant",
		Amount: "100",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ChangeOrderServiceSuite) TestApprovalStampedOnce() {
	created, err := s.service.CreateChangeOrder(s.GetContext(), &dto.CreateChangeOrderRequest{
		JobID:  s.jobID,
		Title:  "Approve me",
		Amount: "5000",
	})
	s.NoError(err)

	approved, err := s.service.UpdateChangeOrder(s.GetContext(), created.ID, &dto.UpdateChangeOrderRequest{
		ChangeOrderStatus: lo.ToPtr(types.ChangeOrderStatusApproved),
		Version:           1,
	})
	s.NoError(err)
	s.Require().NotNil(approved.ApprovedAt)
	firstApproval := *approved.ApprovedAt

	// A later edit keeps the original approval time.
	later, err := s.service.UpdateChangeOrder(s.GetContext(), created.ID, &dto.UpdateChangeOrderRequest{
		Description: lo.ToPtr("Scope clarified"),
		Version:     2,
	})
	s.NoError(err)
	s.Require().NotNil(later.ApprovedAt)
	s.Equal(firstApproval, *later.ApprovedAt)
}

func (s *ChangeOrderServiceSuite) TestClearingCostImpactPersistsNull() {
	created, err := s.service.CreateChangeOrder(s.GetContext(), &dto.CreateChangeOrderRequest{
		JobID:      s.jobID,
		Title:      "Upgrade lobby finishes",
		Amount:     "30000",
		CostImpact: lo.ToPtr("5000"),
	})
	s.NoError(err)
	s.Require().NotNil(created.CostImpact)
	s.Equal("$5,000.00", created.CostImpactDisplay)

	// Submitting the field as an empty string clears it to NULL, never 0.
	cleared, err := s.service.UpdateChangeOrder(s.GetContext(), created.ID, &dto.UpdateChangeOrderRequest{
		CostImpact: lo.ToPtr(""),
		Version:    1,
	})
	s.NoError(err)
	s.Nil(cleared.CostImpact)

	fetched, err := s.service.GetChangeOrder(s.GetContext(), created.ID)
	s.NoError(err)
	s.Nil(fetched.CostImpact)
	s.Equal("Not specified", fetched.CostImpactDisplay)
}

func (s *ChangeOrderServiceSuite) TestListByJob() {
	_, err := s.service.CreateChangeOrder(s.GetContext(), &dto.CreateChangeOrderRequest{
		JobID:  s.jobID,
		Title:  "CO one",
		Amount: "100",
	})
	s.NoError(err)

	other, err := s.jobService.CreateJob(s.GetContext(), &dto.CreateJobRequest{Name: "Other Job"})
	s.NoError(err)
	_, err = s.service.CreateChangeOrder(s.GetContext(), &dto.CreateChangeOrderRequest{
		JobID:  other.ID,
		Title:  "CO two",
		Amount: "200",
	})
	s.NoError(err)

	resp, err := s.service.ListChangeOrders(s.GetContext(), &types.ChangeOrderFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		JobID:       s.jobID,
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("CO one", resp.Items[0].Title)
}
