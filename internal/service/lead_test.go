package service

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/testutil"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/stretchr/testify/suite"
)

type LeadServiceSuite struct {
	testutil.BaseServiceTestSuite
	service LeadService
}

func TestLeadService(t *testing.T) {
	suite.Run(t, new(LeadServiceSuite))
}

func (s *LeadServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewLeadService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *LeadServiceSuite) TestCaptureLeadFromPublicForm() {
	// The marketing form posts without any authenticated identity.
	resp, err := s.service.CaptureLead(context.Background(), &dto.CaptureLeadRequest{
		Name:    "Dana Fowler",
		Email:   "dana@fowlerbuilds.com",
		Company: "Fowler Builds",
		Source:  "website",
		Message: "Looking for a GC for a 12-unit townhome project.",
	})
	s.NoError(err)
	s.Equal(types.LeadStatusNew, resp.LeadStatus)
	s.Equal(types.DefaultTenantID, resp.TenantID)

	// The captured lead shows up for the operator tenant.
	listed, err := s.service.ListLeads(s.GetContext(), types.NewDefaultLeadFilter())
	s.NoError(err)
	s.Len(listed.Items, 1)
	s.Equal("Dana Fowler", listed.Items[0].Name)
}

func (s *LeadServiceSuite) TestCaptureLeadRequiresEmail() {
	_, err := s.service.CaptureLead(context.Background(), &dto.CaptureLeadRequest{
		Name: "No Email",
	})
	s.Error(err)
}

func (s *LeadServiceSuite) TestLeadQualification() {
	captured, err := s.service.CaptureLead(s.GetContext(), &dto.CaptureLeadRequest{
		Name:  "Qualified Prospect",
		Email: "q@example.com",
	})
	s.NoError(err)

	qualified, err := s.service.UpdateLead(s.GetContext(), captured.ID, &dto.UpdateLeadRequest{
		LeadStatus: lo.ToPtr(types.LeadStatusQualified),
		Version:    1,
	})
	s.NoError(err)
	s.Equal(types.LeadStatusQualified, qualified.LeadStatus)
}

func (s *LeadServiceSuite) TestListFiltersBySource() {
	_, err := s.service.CaptureLead(s.GetContext(), &dto.CaptureLeadRequest{
		Name:   "From Referral",
		Email:  "ref@example.com",
		Source: "referral",
	})
	s.NoError(err)
	_, err = s.service.CaptureLead(s.GetContext(), &dto.CaptureLeadRequest{
		Name:   "From Website",
		Email:  "web@example.com",
		Source: "website",
	})
	s.NoError(err)

	resp, err := s.service.ListLeads(s.GetContext(), &types.LeadFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		Source:      "referral",
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("From Referral", resp.Items[0].Name)
}
