package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/types"
)

type DashboardService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	ServiceParams
}

func NewDashboardService(params ServiceParams) DashboardService {
	return &dashboardService{ServiceParams: params}
}

// GetDashboard assembles the home screen summary from the individual
// repositories. Sums run over unpaginated lists; counts use the
// repository count path so they match what the list screens show.
func (s *dashboardService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{
		TotalContractValue: decimal.Zero,
		OutstandingBalance: decimal.Zero,
	}

	jobFilter := types.NewNoLimitJobFilter()
	jobFilter.Statuses = []types.JobStatus{types.JobStatusActive}
	activeJobs, err := s.JobRepo.List(ctx, jobFilter)
	if err != nil {
		return nil, err
	}
	resp.ActiveJobs = len(activeJobs)
	for _, j := range activeJobs {
		resp.TotalContractValue = resp.TotalContractValue.Add(j.ContractAmount)
	}

	openInvoiceFilter := types.NewNoLimitInvoiceFilter()
	openInvoiceFilter.Statuses = []types.InvoiceStatus{types.InvoiceStatusSent, types.InvoiceStatusOverdue}
	openInvoices, err := s.InvoiceRepo.List(ctx, openInvoiceFilter)
	if err != nil {
		return nil, err
	}
	resp.OpenInvoices = len(openInvoices)
	for _, inv := range openInvoices {
		resp.OutstandingBalance = resp.OutstandingBalance.Add(inv.BalanceDue())
	}

	overdueFilter := types.NewNoLimitInvoiceFilter()
	overdueFilter.OverdueOnly = true
	overdueCount, err := s.InvoiceRepo.Count(ctx, overdueFilter)
	if err != nil {
		return nil, err
	}
	resp.OverdueInvoices = overdueCount

	rfiFilter := types.NewNoLimitRFIFilter()
	rfiFilter.Statuses = []types.RFIStatus{types.RFIStatusOpen}
	openRFIs, err := s.RFIRepo.Count(ctx, rfiFilter)
	if err != nil {
		return nil, err
	}
	resp.OpenRFIs = openRFIs

	punchFilter := types.NewNoLimitPunchItemFilter()
	punchFilter.Statuses = []types.PunchItemStatus{types.PunchItemStatusOpen, types.PunchItemStatusInProgress}
	openPunchItems, err := s.PunchItemRepo.Count(ctx, punchFilter)
	if err != nil {
		return nil, err
	}
	resp.OpenPunchItems = openPunchItems

	coFilter := types.NewNoLimitChangeOrderFilter()
	coFilter.Statuses = []types.ChangeOrderStatus{types.ChangeOrderStatusPending}
	pendingCOs, err := s.ChangeOrderRepo.Count(ctx, coFilter)
	if err != nil {
		return nil, err
	}
	resp.PendingChangeOrders = pendingCOs

	policyFilter := types.NewNoLimitInsurancePolicyFilter()
	policyFilter.ExpiringSoon = true
	expiringPolicies, err := s.InsurancePolicyRepo.Count(ctx, policyFilter)
	if err != nil {
		return nil, err
	}
	resp.ExpiringPolicies = expiringPolicies

	leadFilter := types.NewNoLimitLeadFilter()
	leadFilter.Statuses = []types.LeadStatus{types.LeadStatusNew}
	newLeads, err := s.LeadRepo.Count(ctx, leadFilter)
	if err != nil {
		return nil, err
	}
	resp.NewLeads = newLeads

	return resp, nil
}
