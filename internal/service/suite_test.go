package service

import (
	"github.com/siteledger/siteledger/internal/auth"
	"github.com/siteledger/siteledger/internal/testutil"
)

// newTestServiceParams wires a full ServiceParams against the in-memory
// stores of the given suite.
func newTestServiceParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger: s.GetLogger(),
		Config: s.GetConfig(),
		DB:     s.GetDB(),
		Auth:   auth.NewProvider(s.GetConfig()),

		JobRepo:             stores.JobRepo,
		ChangeOrderRepo:     stores.ChangeOrderRepo,
		InvoiceRepo:         stores.InvoiceRepo,
		RFIRepo:             stores.RFIRepo,
		SubmittalRepo:       stores.SubmittalRepo,
		PunchItemRepo:       stores.PunchItemRepo,
		DrawRequestRepo:     stores.DrawRequestRepo,
		PurchaseOrderRepo:   stores.PurchaseOrderRepo,
		LienWaiverRepo:      stores.LienWaiverRepo,
		WarrantyClaimRepo:   stores.WarrantyClaimRepo,
		InsurancePolicyRepo: stores.InsurancePolicyRepo,
		AccountRepo:         stores.AccountRepo,
		VendorRepo:          stores.VendorRepo,
		ClientRepo:          stores.ClientRepo,
		LeadRepo:            stores.LeadRepo,
		UserRepo:            stores.UserRepo,
	}
}
