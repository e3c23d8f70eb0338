// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"gstbill/internal/domain"
	"gstbill/internal/domain/catalogs/company"
	"gstbill/internal/domain/catalogs/party"
	"gstbill/internal/domain/catalogs/product"
	"gstbill/internal/domain/documents/invoice"
	"gstbill/internal/domain/documents/payment"
	"gstbill/internal/domain/registers/stock"
	"gstbill/internal/domain/reports"
	"gstbill/internal/infrastructure/http/v1/handlers"
	"gstbill/internal/infrastructure/http/v1/middleware"
	"gstbill/internal/infrastructure/storage/postgres"
	"gstbill/internal/infrastructure/storage/postgres/catalog_repo"
	"gstbill/internal/infrastructure/storage/postgres/document_repo"
	"gstbill/internal/infrastructure/storage/postgres/register_repo"
	"gstbill/internal/infrastructure/storage/postgres/report_repo"
	"gstbill/pkg/logger"
	"gstbill/pkg/numerator"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// TxManager runs repository calls inside transactions
	TxManager *postgres.TxManager

	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// Numerator for document number generation
	Numerator numerator.Generator

	// Events receives domain events (outbox-backed in production)
	Events domain.EventPublisher

	// EnforceStock rejects invoices that would oversell tracked products
	EnforceStock bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no company header required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	baseHandler := handlers.NewBaseHandler()

	// Shared repositories and services. Repos are stateless; wiring
	// them once here keeps handler construction flat.
	companyRepo := catalog_repo.NewCompanyRepo(cfg.TxManager)
	partyRepo := catalog_repo.NewPartyRepo(cfg.TxManager)
	productRepo := catalog_repo.NewProductRepo(cfg.TxManager)
	stockRepo := register_repo.NewStockRepo(cfg.TxManager, productRepo)
	invoiceRepo := document_repo.NewInvoiceRepo(cfg.TxManager)
	paymentRepo := document_repo.NewPaymentRepo(cfg.TxManager)
	reportRepo := report_repo.NewReportRepo(cfg.TxManager)

	companyService := company.NewService(companyRepo, cfg.TxManager)
	partyService := party.NewService(partyRepo, cfg.TxManager)
	productService := product.NewService(productRepo, cfg.TxManager)
	stockService := stock.NewService(stockRepo)
	invoiceService := invoice.NewService(
		invoiceRepo, companyRepo, partyRepo, stockService,
		cfg.Numerator, cfg.TxManager, cfg.Events,
		invoice.Options{EnforceStock: cfg.EnforceStock},
	)
	paymentService := payment.NewService(
		paymentRepo, partyRepo, invoiceService,
		cfg.Numerator, cfg.TxManager, cfg.Events,
	)
	reportService := reports.NewService(reportRepo)

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		// Companies are the scope root: managing them does not require
		// the X-Company-ID header the rest of the API demands.
		companyHandler := handlers.NewCompanyHandler(baseHandler, companyService)
		companiesGroup := apiV1.Group("/catalog/companies")
		RegisterCatalogRoutes(companiesGroup, companyHandler)
		companiesGroup.GET("/by-gstin/:gstin", companyHandler.GetByGSTIN)

		// Everything below is scoped to the company from X-Company-ID.
		scoped := apiV1.Group("")
		scoped.Use(middleware.CompanyContext())

		registerCatalogRoutes(scoped, baseHandler, partyService, productService)
		registerStockRoutes(scoped, baseHandler, stockService, productService)
		registerDocumentRoutes(scoped, baseHandler, invoiceService, paymentService)
		registerReportRoutes(scoped, baseHandler, reportService)
	}

	return router
}

// registerCatalogRoutes registers company-scoped catalog endpoints.
func registerCatalogRoutes(
	rg *gin.RouterGroup,
	baseHandler *handlers.BaseHandler,
	partyService *party.Service,
	productService *product.Service,
) {
	catalogs := rg.Group("/catalog")

	// --- PARTIES ---
	{
		handler := handlers.NewPartyHandler(baseHandler, partyService)
		group := catalogs.Group("/parties")
		RegisterCatalogRoutes(group, handler)
		group.GET("/by-gstin/:gstin", handler.GetByGSTIN)
		group.GET("/by-phone/:phone", handler.GetByPhone)
	}

	// --- PRODUCTS ---
	{
		handler := handlers.NewProductHandler(baseHandler, productService)
		group := catalogs.Group("/products")
		RegisterCatalogRoutes(group, handler)
		group.GET("/by-barcode/:barcode", handler.GetByBarcode)
	}
}

// registerStockRoutes registers stock register endpoints.
func registerStockRoutes(
	rg *gin.RouterGroup,
	baseHandler *handlers.BaseHandler,
	stockService *stock.Service,
	productService *product.Service,
) {
	handler := handlers.NewStockHandler(baseHandler, stockService, productService)

	group := rg.Group("/stock")
	group.POST("/sale", handler.ApplySale)
	group.POST("/purchase", handler.ApplyPurchase)
	group.GET("/availability/:productId", handler.GetAvailability)
	group.GET("/low", handler.GetLowStock)
	group.GET("/summary", handler.GetSummary)
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(
	rg *gin.RouterGroup,
	baseHandler *handlers.BaseHandler,
	invoiceService *invoice.Service,
	paymentService *payment.Service,
) {
	docsGroup := rg.Group("/documents")

	// --- INVOICES ---
	{
		handler := handlers.NewInvoiceHandler(baseHandler, invoiceService)
		group := docsGroup.Group("/invoices")
		group.GET("", handler.List)
		group.POST("", handler.Create)
		group.GET("/next-number", handler.PreviewNumber)
		group.GET("/by-number/:number", handler.GetByNumber)
		group.GET("/:id", handler.Get)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
	}

	// --- PAYMENTS / RECEIPTS ---
	{
		handler := handlers.NewPaymentHandler(baseHandler, paymentService)
		group := docsGroup.Group("/payments")
		group.GET("", handler.List)
		group.POST("", handler.Create)
		group.GET("/by-number/:number", handler.GetByNumber)
		group.GET("/:id", handler.Get)
		group.DELETE("/:id", handler.Delete)
	}
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(
	rg *gin.RouterGroup,
	baseHandler *handlers.BaseHandler,
	reportService *reports.Service,
) {
	handler := handlers.NewReportsHandler(baseHandler, reportService)

	group := rg.Group("/reports")
	group.GET("/sales", handler.GetSalesSummary)
	group.GET("/payments", handler.GetPaymentsSummary)
	group.GET("/gst", handler.GetGSTReport)
	group.GET("/hsn", handler.GetHSNSummary)
}
