package dto

import (
	"github.com/shopspring/decimal"
)

// DashboardResponse aggregates the headline numbers for the home screen.
// Every figure is scoped to the caller's tenant and excludes archived rows.
type DashboardResponse struct {
	ActiveJobs          int             `json:"active_jobs"`
	TotalContractValue  decimal.Decimal `json:"total_contract_value"`
	OpenInvoices        int             `json:"open_invoices"`
	OutstandingBalance  decimal.Decimal `json:"outstanding_balance"`
	OverdueInvoices     int             `json:"overdue_invoices"`
	OpenRFIs            int             `json:"open_rfis"`
	OpenPunchItems      int             `json:"open_punch_items"`
	PendingChangeOrders int             `json:"pending_change_orders"`
	ExpiringPolicies    int             `json:"expiring_policies"`
	NewLeads            int             `json:"new_leads"`
}
