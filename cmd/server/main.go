package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/siteledger/siteledger/internal/api"
	v1 "github.com/siteledger/siteledger/internal/api/v1"
	"github.com/siteledger/siteledger/internal/auth"
	"github.com/siteledger/siteledger/internal/cache"
	"github.com/siteledger/siteledger/internal/config"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/repository"
	"github.com/siteledger/siteledger/internal/service"
	"github.com/siteledger/siteledger/internal/validator"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			validator.NewValidator,
			config.NewConfig,
			logger.NewLogger,

			// Cache
			cache.NewInMemoryCache,

			// Postgres
			postgres.NewClient,

			// Auth
			auth.NewProvider,

			// Repositories
			repository.NewRepositories,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewAuthService,
			service.NewDashboardService,

			service.NewJobService,
			service.NewChangeOrderService,
			service.NewInvoiceService,
			service.NewRFIService,
			service.NewSubmittalService,
			service.NewPunchItemService,
			service.NewDrawRequestService,
			service.NewPurchaseOrderService,
			service.NewLienWaiverService,
			service.NewWarrantyClaimService,
			service.NewInsurancePolicyService,
			service.NewAccountService,
			service.NewVendorService,
			service.NewClientService,
			service.NewLeadService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	authService service.AuthService,
	dashboardService service.DashboardService,
	jobService service.JobService,
	changeOrderService service.ChangeOrderService,
	invoiceService service.InvoiceService,
	rfiService service.RFIService,
	submittalService service.SubmittalService,
	punchItemService service.PunchItemService,
	drawRequestService service.DrawRequestService,
	purchaseOrderService service.PurchaseOrderService,
	lienWaiverService service.LienWaiverService,
	warrantyClaimService service.WarrantyClaimService,
	insurancePolicyService service.InsurancePolicyService,
	accountService service.AccountService,
	vendorService service.VendorService,
	clientService service.ClientService,
	leadService service.LeadService,
) api.Handlers {
	return api.Handlers{
		Health:          v1.NewHealthHandler(logger),
		Auth:            v1.NewAuthHandler(authService, logger),
		Dashboard:       v1.NewDashboardHandler(dashboardService, logger),
		Job:             v1.NewJobHandler(jobService, logger),
		ChangeOrder:     v1.NewChangeOrderHandler(changeOrderService, logger),
		Invoice:         v1.NewInvoiceHandler(invoiceService, logger),
		RFI:             v1.NewRFIHandler(rfiService, logger),
		Submittal:       v1.NewSubmittalHandler(submittalService, logger),
		PunchItem:       v1.NewPunchItemHandler(punchItemService, logger),
		DrawRequest:     v1.NewDrawRequestHandler(drawRequestService, logger),
		PurchaseOrder:   v1.NewPurchaseOrderHandler(purchaseOrderService, logger),
		LienWaiver:      v1.NewLienWaiverHandler(lienWaiverService, logger),
		WarrantyClaim:   v1.NewWarrantyClaimHandler(warrantyClaimService, logger),
		InsurancePolicy: v1.NewInsurancePolicyHandler(insurancePolicyService, logger),
		Account:         v1.NewAccountHandler(accountService, logger),
		Vendor:          v1.NewVendorHandler(vendorService, logger),
		Client:          v1.NewClientHandler(clientService, logger),
		Lead:            v1.NewLeadHandler(leadService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, authProvider auth.Provider, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, authProvider, logger)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db postgres.IClient,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return db.Close()
		},
	})
}
