package service

import (
	"github.com/siteledger/siteledger/internal/auth"
	"github.com/siteledger/siteledger/internal/config"
	"github.com/siteledger/siteledger/internal/domain/account"
	"github.com/siteledger/siteledger/internal/domain/changeorder"
	"github.com/siteledger/siteledger/internal/domain/client"
	"github.com/siteledger/siteledger/internal/domain/drawrequest"
	"github.com/siteledger/siteledger/internal/domain/insurancepolicy"
	"github.com/siteledger/siteledger/internal/domain/invoice"
	"github.com/siteledger/siteledger/internal/domain/job"
	"github.com/siteledger/siteledger/internal/domain/lead"
	"github.com/siteledger/siteledger/internal/domain/lienwaiver"
	"github.com/siteledger/siteledger/internal/domain/punchitem"
	"github.com/siteledger/siteledger/internal/domain/purchaseorder"
	"github.com/siteledger/siteledger/internal/domain/rfi"
	"github.com/siteledger/siteledger/internal/domain/submittal"
	"github.com/siteledger/siteledger/internal/domain/user"
	"github.com/siteledger/siteledger/internal/domain/vendor"
	"github.com/siteledger/siteledger/internal/domain/warrantyclaim"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/repository"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient
	Auth   auth.Provider

	// Repositories
	JobRepo             job.Repository
	ChangeOrderRepo     changeorder.Repository
	InvoiceRepo         invoice.Repository
	RFIRepo             rfi.Repository
	SubmittalRepo       submittal.Repository
	PunchItemRepo       punchitem.Repository
	DrawRequestRepo     drawrequest.Repository
	PurchaseOrderRepo   purchaseorder.Repository
	LienWaiverRepo      lienwaiver.Repository
	WarrantyClaimRepo   warrantyclaim.Repository
	InsurancePolicyRepo insurancepolicy.Repository
	AccountRepo         account.Repository
	VendorRepo          vendor.Repository
	ClientRepo          client.Repository
	LeadRepo            lead.Repository
	UserRepo            user.Repository
}

func NewServiceParams(
	log *logger.Logger,
	cfg *config.Configuration,
	db postgres.IClient,
	authProvider auth.Provider,
	repos *repository.Repositories,
) ServiceParams {
	return ServiceParams{
		Logger:              log,
		Config:              cfg,
		DB:                  db,
		Auth:                authProvider,
		JobRepo:             repos.Job,
		ChangeOrderRepo:     repos.ChangeOrder,
		InvoiceRepo:         repos.Invoice,
		RFIRepo:             repos.RFI,
		SubmittalRepo:       repos.Submittal,
		PunchItemRepo:       repos.PunchItem,
		DrawRequestRepo:     repos.DrawRequest,
		PurchaseOrderRepo:   repos.PurchaseOrder,
		LienWaiverRepo:      repos.LienWaiver,
		WarrantyClaimRepo:   repos.WarrantyClaim,
		InsurancePolicyRepo: repos.InsurancePolicy,
		AccountRepo:         repos.Account,
		VendorRepo:          repos.Vendor,
		ClientRepo:          repos.Client,
		LeadRepo:            repos.Lead,
		UserRepo:            repos.User,
	}
}
