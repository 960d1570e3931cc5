package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/testutil"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DashboardService
	params  ServiceParams
}

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.params = newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewDashboardService(s.params)
}

func (s *DashboardServiceSuite) TestEmptyDashboard() {
	resp, err := s.service.GetDashboard(s.GetContext())
	s.NoError(err)
	s.Zero(resp.ActiveJobs)
	s.True(resp.TotalContractValue.IsZero())
	s.Zero(resp.OpenInvoices)
	s.True(resp.OutstandingBalance.IsZero())
	s.Zero(resp.NewLeads)
}

func (s *DashboardServiceSuite) TestDashboardAggregates() {
	ctx := s.GetContext()
	jobs := NewJobService(s.params)
	invoices := NewInvoiceService(s.params)
	rfis := NewRFIService(s.params)
	punchItems := NewPunchItemService(s.params)
	changeOrders := NewChangeOrderService(s.params)
	vendors := NewVendorService(s.params)
	policies := NewInsurancePolicyService(s.params)
	leads := NewLeadService(s.params)

	activeJob, err := jobs.CreateJob(ctx, &dto.CreateJobRequest{
		Name:           "Harbor View Condos",
		ContractAmount: "2000000",
		JobStatus:      types.JobStatusActive,
	})
	s.NoError(err)
	_, err = jobs.CreateJob(ctx, &dto.CreateJobRequest{
		Name:           "Still In Planning",
		ContractAmount: "999999",
	})
	s.NoError(err)

	// One overdue and one current open invoice, plus a paid one that
	// must not count toward the outstanding balance.
	pastDue := s.GetNow().Add(-10 * 24 * time.Hour).Format("2006-01-02")
	futureDue := s.GetNow().Add(20 * 24 * time.Hour).Format("2006-01-02")
	_, err = invoices.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
		JobID:         activeJob.ID,
		Amount:        "30000",
		AmountPaid:    lo.ToPtr("10000"),
		DueDate:       lo.ToPtr(pastDue),
		InvoiceStatus: types.InvoiceStatusSent,
	})
	s.NoError(err)
	_, err = invoices.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
		JobID:         activeJob.ID,
		Amount:        "5000",
		DueDate:       lo.ToPtr(futureDue),
		InvoiceStatus: types.InvoiceStatusSent,
	})
	s.NoError(err)
	_, err = invoices.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
		JobID:         activeJob.ID,
		Amount:        "7500",
		AmountPaid:    lo.ToPtr("7500"),
		InvoiceStatus: types.InvoiceStatusPaid,
	})
	s.NoError(err)

	_, err = rfis.CreateRFI(ctx, &dto.CreateRFIRequest{
		JobID:    activeJob.ID,
		Subject:  "Footing depth at grid B",
		Question: "Drawings show 36in, geotech report calls for 48in. Which governs?",
	})
	s.NoError(err)

	_, err = punchItems.CreatePunchItem(ctx, &dto.CreatePunchItemRequest{
		JobID: activeJob.ID,
		Title: "Touch up paint in lobby",
	})
	s.NoError(err)
	_, err = punchItems.CreatePunchItem(ctx, &dto.CreatePunchItemRequest{
		JobID:           activeJob.ID,
		Title:           "Replace cracked tile",
		PunchItemStatus: types.PunchItemStatusInProgress,
	})
	s.NoError(err)
	_, err = punchItems.CreatePunchItem(ctx, &dto.CreatePunchItemRequest{
		JobID:           activeJob.ID,
		Title:           "Already done",
		PunchItemStatus: types.PunchItemStatusCompleted,
	})
	s.NoError(err)

	_, err = changeOrders.CreateChangeOrder(ctx, &dto.CreateChangeOrderRequest{
		JobID:             activeJob.ID,
		Title:             "Add rooftop deck",
		Amount:            "85000",
		ChangeOrderStatus: types.ChangeOrderStatusPending,
	})
	s.NoError(err)

	vendor, err := vendors.CreateVendor(ctx, &dto.CreateVendorRequest{
		Name: "Summit Roofing",
	})
	s.NoError(err)
	_, err = policies.CreateInsurancePolicy(ctx, &dto.CreateInsurancePolicyRequest{
		VendorID:       vendor.ID,
		Carrier:        "Travelers",
		CoverageType:   types.InsuranceCoverageGeneralLiability,
		EffectiveDate:  lo.ToPtr(s.GetNow().Add(-300 * 24 * time.Hour).Format("2006-01-02")),
		ExpirationDate: lo.ToPtr(s.GetNow().Add(12 * 24 * time.Hour).Format("2006-01-02")),
	})
	s.NoError(err)

	_, err = leads.CaptureLead(ctx, &dto.CaptureLeadRequest{
		Name:  "Prospective Owner",
		Email: "owner@example.com",
	})
	s.NoError(err)

	resp, err := s.service.GetDashboard(ctx)
	s.NoError(err)
	s.Equal(1, resp.ActiveJobs)
	s.Equal("2000000", resp.TotalContractValue.String())
	s.Equal(2, resp.OpenInvoices)
	s.Equal("25000", resp.OutstandingBalance.String())
	s.Equal(1, resp.OverdueInvoices)
	s.Equal(1, resp.OpenRFIs)
	s.Equal(2, resp.OpenPunchItems)
	s.Equal(1, resp.PendingChangeOrders)
	s.Equal(1, resp.ExpiringPolicies)
	s.Equal(1, resp.NewLeads)
}

func (s *DashboardServiceSuite) TestDashboardIsTenantScoped() {
	jobs := NewJobService(s.params)
	_, err := jobs.CreateJob(s.GetContext(), &dto.CreateJobRequest{
		Name:           "Tenant One Job",
		ContractAmount: "100000",
		JobStatus:      types.JobStatusActive,
	})
	s.NoError(err)

	otherCtx := testutil.SetupContextForTenant("tenant_other", "user_other")
	resp, err := s.service.GetDashboard(otherCtx)
	s.NoError(err)
	s.Zero(resp.ActiveJobs)
	s.True(resp.TotalContractValue.IsZero())
}
