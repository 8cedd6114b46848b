// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"kahawa/internal/domain/catalogs/category"
	"kahawa/internal/domain/catalogs/expensetype"
	"kahawa/internal/domain/documents/expense"
	"kahawa/internal/domain/documents/production"
	"kahawa/internal/domain/documents/sale"
	"kahawa/internal/domain/registers/stock"
	"kahawa/internal/domain/reports"
	"kahawa/internal/infrastructure/http/v1/handlers"
	"kahawa/internal/infrastructure/http/v1/middleware"
	"kahawa/internal/infrastructure/storage/postgres"
	"kahawa/internal/infrastructure/storage/postgres/catalog_repo"
	"kahawa/internal/infrastructure/storage/postgres/document_repo"
	"kahawa/internal/infrastructure/storage/postgres/register_repo"
	"kahawa/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// Version string reported by /health/info
	Version string

	// HeartbeatSecret guards the keep-alive endpoint; empty disables it
	HeartbeatSecret string

	// Development switches Gin out of release mode
	Development bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	txManager := postgres.NewTxManager(cfg.Pool)
	baseHandler := handlers.NewBaseHandler()

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool.Unwrap(), cfg.Version)
	healthHandler.RegisterRoutes(router.Group("/health"))

	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		// zstd codec init cannot fail with default options
		panic(err)
	}

	heartbeatStore := postgres.NewHeartbeatStore(txManager)

	// Repositories
	categoryRepo := catalog_repo.NewPieceCategoryRepo(txManager)
	expenseTypeRepo := catalog_repo.NewExpenseTypeRepo(txManager)
	productionRepo := document_repo.NewProductionRepo(txManager)
	saleRepo := document_repo.NewSaleRepo(txManager)
	expenseRepo := document_repo.NewExpenseRepo(txManager)
	stockRepo := register_repo.NewStockRepo(txManager)
	numberGen := postgres.NewNumberGenerator(txManager)

	// Services
	categoryService := category.NewService(categoryRepo, txManager)
	expenseTypeService := expensetype.NewService(expenseTypeRepo, txManager)
	productionService := production.NewService(productionRepo, categoryRepo, auditService, numberGen, txManager)
	saleService := sale.NewService(saleRepo, categoryRepo, stockRepo, auditService, numberGen, txManager)
	expenseService := expense.NewService(expenseRepo, expenseTypeRepo, saleRepo, auditService, numberGen, txManager)
	stockService := stock.NewService(stockRepo)
	reportService := reports.NewService(saleRepo, productionRepo, expenseRepo, stockService)

	// API v1
	api := router.Group("/api/v1")
	{
		handlers.NewCategoryHandler(baseHandler, categoryService).
			RegisterRoutes(api.Group("/categories"))

		handlers.NewExpenseTypeHandler(baseHandler, expenseTypeService).
			RegisterRoutes(api.Group("/expense-types"))

		handlers.NewProductionHandler(baseHandler, productionService).
			RegisterRoutes(api.Group("/production"))

		handlers.NewSaleHandler(baseHandler, saleService).
			RegisterRoutes(api.Group("/sales"))

		handlers.NewExpenseHandler(baseHandler, expenseService).
			RegisterRoutes(api.Group("/expenses"))

		handlers.NewStockHandler(baseHandler, stockService).
			RegisterRoutes(api.Group("/stock"))

		handlers.NewReportsHandler(baseHandler, reportService).
			RegisterRoutes(api.Group("/reports"))

		handlers.NewAuditHandler(baseHandler, auditService).
			RegisterRoutes(api.Group("/audit"))

		handlers.NewHeartbeatHandler(baseHandler, heartbeatStore, cfg.HeartbeatSecret).
			RegisterRoutes(api)
	}

	return router
}
