package testutil

import (
	"context"
	"time"

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
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
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

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	db     postgres.IClient
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := &config.Configuration{
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
		Auth: config.AuthConfig{
			Secret:      "test-secret-for-unit-tests-only",
			TokenExpiry: time.Hour,
		},
	}
	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.ClearStores()
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		JobRepo:             NewInMemoryJobStore(),
		ChangeOrderRepo:     NewInMemoryChangeOrderStore(),
		InvoiceRepo:         NewInMemoryInvoiceStore(),
		RFIRepo:             NewInMemoryRFIStore(),
		SubmittalRepo:       NewInMemorySubmittalStore(),
		PunchItemRepo:       NewInMemoryPunchItemStore(),
		DrawRequestRepo:     NewInMemoryDrawRequestStore(),
		PurchaseOrderRepo:   NewInMemoryPurchaseOrderStore(),
		LienWaiverRepo:      NewInMemoryLienWaiverStore(),
		WarrantyClaimRepo:   NewInMemoryWarrantyClaimStore(),
		InsurancePolicyRepo: NewInMemoryInsurancePolicyStore(),
		AccountRepo:         NewInMemoryAccountStore(),
		VendorRepo:          NewInMemoryVendorStore(),
		ClientRepo:          NewInMemoryClientStore(),
		LeadRepo:            NewInMemoryLeadStore(),
		UserRepo:            NewInMemoryUserStore(),
	}
	s.db = NewMockPostgresClient(s.logger)
}

func (s *BaseServiceTestSuite) ClearStores() {
	s.stores.JobRepo.(*InMemoryJobStore).Clear()
	s.stores.ChangeOrderRepo.(*InMemoryChangeOrderStore).Clear()
	s.stores.InvoiceRepo.(*InMemoryInvoiceStore).Clear()
	s.stores.RFIRepo.(*InMemoryRFIStore).Clear()
	s.stores.SubmittalRepo.(*InMemorySubmittalStore).Clear()
	s.stores.PunchItemRepo.(*InMemoryPunchItemStore).Clear()
	s.stores.DrawRequestRepo.(*InMemoryDrawRequestStore).Clear()
	s.stores.PurchaseOrderRepo.(*InMemoryPurchaseOrderStore).Clear()
	s.stores.LienWaiverRepo.(*InMemoryLienWaiverStore).Clear()
	s.stores.WarrantyClaimRepo.(*InMemoryWarrantyClaimStore).Clear()
	s.stores.InsurancePolicyRepo.(*InMemoryInsurancePolicyStore).Clear()
	s.stores.AccountRepo.(*InMemoryAccountStore).Clear()
	s.stores.VendorRepo.(*InMemoryVendorStore).Clear()
	s.stores.ClientRepo.(*InMemoryClientStore).Clear()
	s.stores.LeadRepo.(*InMemoryLeadStore).Clear()
	s.stores.UserRepo.(*InMemoryUserStore).Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// SetContext overrides the test context, used by tenant isolation tests
func (s *BaseServiceTestSuite) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the test database client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the time recorded at test setup
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
