package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	v1 "github.com/siteledger/siteledger/internal/api/v1"
	"github.com/siteledger/siteledger/internal/auth"
	"github.com/siteledger/siteledger/internal/config"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/rest/middleware"
)

type Handlers struct {
	Health          *v1.HealthHandler
	Auth            *v1.AuthHandler
	Dashboard       *v1.DashboardHandler
	Job             *v1.JobHandler
	ChangeOrder     *v1.ChangeOrderHandler
	Invoice         *v1.InvoiceHandler
	RFI             *v1.RFIHandler
	Submittal       *v1.SubmittalHandler
	PunchItem       *v1.PunchItemHandler
	DrawRequest     *v1.DrawRequestHandler
	PurchaseOrder   *v1.PurchaseOrderHandler
	LienWaiver      *v1.LienWaiverHandler
	WarrantyClaim   *v1.WarrantyClaimHandler
	InsurancePolicy *v1.InsurancePolicyHandler
	Account         *v1.AccountHandler
	Vendor          *v1.VendorHandler
	Client          *v1.ClientHandler
	Lead            *v1.LeadHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, authProvider auth.Provider, logger *logger.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.MetricsMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1Public := router.Group("/v1")
	v1Public.Use(middleware.GuestAuthenticateMiddleware)
	{
		v1Public.POST("/auth/signup", handlers.Auth.SignUp)
		v1Public.POST("/auth/login", handlers.Auth.Login)

		// Public lead capture for the marketing site contact form
		v1Public.POST("/leads/capture", handlers.Lead.CaptureLead)
	}

	v1Private := router.Group("/v1")
	v1Private.Use(middleware.AuthenticateMiddleware(cfg, authProvider, logger))
	registerV1Routes(v1Private, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	router.GET("/dashboard", handlers.Dashboard.GetDashboard)

	jobs := router.Group("/jobs")
	{
		jobs.POST("", handlers.Job.CreateJob)
		jobs.GET("", handlers.Job.ListJobs)
		jobs.GET("/:id", handlers.Job.GetJob)
		jobs.PUT("/:id", handlers.Job.UpdateJob)
		jobs.DELETE("/:id", handlers.Job.ArchiveJob)
	}

	changeOrders := router.Group("/change-orders")
	{
		changeOrders.POST("", handlers.ChangeOrder.CreateChangeOrder)
		changeOrders.GET("", handlers.ChangeOrder.ListChangeOrders)
		changeOrders.GET("/:id", handlers.ChangeOrder.GetChangeOrder)
		changeOrders.PUT("/:id", handlers.ChangeOrder.UpdateChangeOrder)
		changeOrders.DELETE("/:id", handlers.ChangeOrder.ArchiveChangeOrder)
	}

	invoices := router.Group("/invoices")
	{
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.PUT("/:id", handlers.Invoice.UpdateInvoice)
		invoices.DELETE("/:id", handlers.Invoice.ArchiveInvoice)
	}

	rfis := router.Group("/rfis")
	{
		rfis.POST("", handlers.RFI.CreateRFI)
		rfis.GET("", handlers.RFI.ListRFIs)
		rfis.GET("/:id", handlers.RFI.GetRFI)
		rfis.PUT("/:id", handlers.RFI.UpdateRFI)
		rfis.DELETE("/:id", handlers.RFI.ArchiveRFI)
	}

	submittals := router.Group("/submittals")
	{
		submittals.POST("", handlers.Submittal.CreateSubmittal)
		submittals.GET("", handlers.Submittal.ListSubmittals)
		submittals.GET("/:id", handlers.Submittal.GetSubmittal)
		submittals.PUT("/:id", handlers.Submittal.UpdateSubmittal)
		submittals.DELETE("/:id", handlers.Submittal.ArchiveSubmittal)
	}

	punchItems := router.Group("/punch-items")
	{
		punchItems.POST("", handlers.PunchItem.CreatePunchItem)
		punchItems.GET("", handlers.PunchItem.ListPunchItems)
		punchItems.GET("/:id", handlers.PunchItem.GetPunchItem)
		punchItems.PUT("/:id", handlers.PunchItem.UpdatePunchItem)
		punchItems.DELETE("/:id", handlers.PunchItem.ArchivePunchItem)
	}

	drawRequests := router.Group("/draw-requests")
	{
		drawRequests.POST("", handlers.DrawRequest.CreateDrawRequest)
		drawRequests.GET("", handlers.DrawRequest.ListDrawRequests)
		drawRequests.GET("/:id", handlers.DrawRequest.GetDrawRequest)
		drawRequests.PUT("/:id", handlers.DrawRequest.UpdateDrawRequest)
		drawRequests.DELETE("/:id", handlers.DrawRequest.ArchiveDrawRequest)
	}

	purchaseOrders := router.Group("/purchase-orders")
	{
		purchaseOrders.POST("", handlers.PurchaseOrder.CreatePurchaseOrder)
		purchaseOrders.GET("", handlers.PurchaseOrder.ListPurchaseOrders)
		purchaseOrders.GET("/:id", handlers.PurchaseOrder.GetPurchaseOrder)
		purchaseOrders.PUT("/:id", handlers.PurchaseOrder.UpdatePurchaseOrder)
		purchaseOrders.DELETE("/:id", handlers.PurchaseOrder.ArchivePurchaseOrder)
	}

	lienWaivers := router.Group("/lien-waivers")
	{
		lienWaivers.POST("", handlers.LienWaiver.CreateLienWaiver)
		lienWaivers.GET("", handlers.LienWaiver.ListLienWaivers)
		lienWaivers.GET("/:id", handlers.LienWaiver.GetLienWaiver)
		lienWaivers.PUT("/:id", handlers.LienWaiver.UpdateLienWaiver)
		lienWaivers.DELETE("/:id", handlers.LienWaiver.ArchiveLienWaiver)
	}

	warrantyClaims := router.Group("/warranty-claims")
	{
		warrantyClaims.POST("", handlers.WarrantyClaim.CreateWarrantyClaim)
		warrantyClaims.GET("", handlers.WarrantyClaim.ListWarrantyClaims)
		warrantyClaims.GET("/:id", handlers.WarrantyClaim.GetWarrantyClaim)
		warrantyClaims.PUT("/:id", handlers.WarrantyClaim.UpdateWarrantyClaim)
		warrantyClaims.DELETE("/:id", handlers.WarrantyClaim.ArchiveWarrantyClaim)
	}

	insurancePolicies := router.Group("/insurance-policies")
	{
		insurancePolicies.POST("", handlers.InsurancePolicy.CreateInsurancePolicy)
		insurancePolicies.GET("", handlers.InsurancePolicy.ListInsurancePolicies)
		insurancePolicies.GET("/:id", handlers.InsurancePolicy.GetInsurancePolicy)
		insurancePolicies.PUT("/:id", handlers.InsurancePolicy.UpdateInsurancePolicy)
		insurancePolicies.DELETE("/:id", handlers.InsurancePolicy.ArchiveInsurancePolicy)
	}

	accounts := router.Group("/accounts")
	{
		accounts.POST("", handlers.Account.CreateAccount)
		accounts.GET("", handlers.Account.ListAccounts)
		accounts.GET("/:id", handlers.Account.GetAccount)
		accounts.PUT("/:id", handlers.Account.UpdateAccount)
		accounts.DELETE("/:id", handlers.Account.ArchiveAccount)
	}

	vendors := router.Group("/vendors")
	{
		vendors.POST("", handlers.Vendor.CreateVendor)
		vendors.GET("", handlers.Vendor.ListVendors)
		vendors.GET("/:id", handlers.Vendor.GetVendor)
		vendors.PUT("/:id", handlers.Vendor.UpdateVendor)
		vendors.DELETE("/:id", handlers.Vendor.ArchiveVendor)
	}

	clients := router.Group("/clients")
	{
		clients.POST("", handlers.Client.CreateClient)
		clients.GET("", handlers.Client.ListClients)
		clients.GET("/:id", handlers.Client.GetClient)
		clients.PUT("/:id", handlers.Client.UpdateClient)
		clients.DELETE("/:id", handlers.Client.ArchiveClient)
	}

	leads := router.Group("/leads")
	{
		leads.GET("", handlers.Lead.ListLeads)
		leads.GET("/:id", handlers.Lead.GetLead)
		leads.PUT("/:id", handlers.Lead.UpdateLead)
		leads.DELETE("/:id", handlers.Lead.ArchiveLead)
	}
}
