package repository

import (
	"github.com/siteledger/siteledger/internal/cache"
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
)

// Repositories bundles every repository for service construction.
type Repositories struct {
	Job             job.Repository
	ChangeOrder     changeorder.Repository
	Invoice         invoice.Repository
	RFI             rfi.Repository
	Submittal       submittal.Repository
	PunchItem       punchitem.Repository
	DrawRequest     drawrequest.Repository
	PurchaseOrder   purchaseorder.Repository
	LienWaiver      lienwaiver.Repository
	WarrantyClaim   warrantyclaim.Repository
	InsurancePolicy insurancepolicy.Repository
	Account         account.Repository
	Vendor          vendor.Repository
	Client          client.Repository
	Lead            lead.Repository
	User            user.Repository
}

func NewRepositories(pg postgres.IClient, log *logger.Logger, c cache.Cache) *Repositories {
	return &Repositories{
		Job:             NewJobRepository(pg, log, c),
		ChangeOrder:     NewChangeOrderRepository(pg, log),
		Invoice:         NewInvoiceRepository(pg, log),
		RFI:             NewRFIRepository(pg, log),
		Submittal:       NewSubmittalRepository(pg, log),
		PunchItem:       NewPunchItemRepository(pg, log),
		DrawRequest:     NewDrawRequestRepository(pg, log),
		PurchaseOrder:   NewPurchaseOrderRepository(pg, log),
		LienWaiver:      NewLienWaiverRepository(pg, log),
		WarrantyClaim:   NewWarrantyClaimRepository(pg, log),
		InsurancePolicy: NewInsurancePolicyRepository(pg, log),
		Account:         NewAccountRepository(pg, log),
		Vendor:          NewVendorRepository(pg, log, c),
		Client:          NewClientRepository(pg, log, c),
		Lead:            NewLeadRepository(pg, log),
		User:            NewUserRepository(pg, log),
	}
}

// Models lists every persisted model for migrations.
func Models() []interface{} {
	return []interface{}{
		&job.Job{},
		&changeorder.ChangeOrder{},
		&invoice.Invoice{},
		&rfi.RFI{},
		&submittal.Submittal{},
		&punchitem.PunchItem{},
		&drawrequest.DrawRequest{},
		&purchaseorder.PurchaseOrder{},
		&lienwaiver.LienWaiver{},
		&warrantyclaim.WarrantyClaim{},
		&insurancepolicy.InsurancePolicy{},
		&account.Account{},
		&vendor.Vendor{},
		&client.Client{},
		&lead.Lead{},
		&user.User{},
	}
}
