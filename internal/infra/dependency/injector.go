// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/scribe-ops/backend/config"
	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/application/usecase/analytics"
	"github.com/scribe-ops/backend/internal/application/usecase/auth"
	"github.com/scribe-ops/backend/internal/application/usecase/classification"
	"github.com/scribe-ops/backend/internal/application/usecase/client"
	"github.com/scribe-ops/backend/internal/application/usecase/invoice"
	"github.com/scribe-ops/backend/internal/application/usecase/order"
	"github.com/scribe-ops/backend/internal/application/usecase/product"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/infra/server/router"
	"github.com/scribe-ops/backend/internal/integration/adapters"
	"github.com/scribe-ops/backend/internal/integration/document"
	"github.com/scribe-ops/backend/internal/integration/entrypoint/controller"
	"github.com/scribe-ops/backend/internal/integration/entrypoint/middleware"
	"github.com/scribe-ops/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Zone   *businesstime.Zone
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	zone := businesstime.NewZone(cfg.Business.TimezoneName, cfg.Business.TimezoneOffsetHours)
	clock := adapters.NewSystemClock()

	// Repositories
	userRepo := persistence.NewUserRepository(db)
	clientRepo := persistence.NewClientRepository(db)
	productRepo := persistence.NewProductRepository(db)
	orderRepo := persistence.NewOrderRepository(db)
	classRepo := persistence.NewClassRepository(db)
	genreRepo := persistence.NewGenreRepository(db)
	ledgerRepo := persistence.NewLedgerRepository(db, zone)

	// Adapters
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	renderers := map[string]adapter.InvoiceRenderer{
		"excel": document.NewExcelRenderer(zone),
		"pdf":   document.NewPDFRenderer(zone),
	}

	// Auth use cases
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)

	// Client use cases
	listClientsUseCase := client.NewListClientsUseCase(clientRepo, zone)
	getClientUseCase := client.NewGetClientUseCase(clientRepo)
	createClientUseCase := client.NewCreateClientUseCase(clientRepo)
	updateClientUseCase := client.NewUpdateClientUseCase(clientRepo)
	deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo)

	// Product use cases
	listProductsUseCase := product.NewListProductsUseCase(productRepo, zone)
	getProductUseCase := product.NewGetProductUseCase(productRepo)
	createProductUseCase := product.NewCreateProductUseCase(productRepo)
	updateProductUseCase := product.NewUpdateProductUseCase(productRepo)
	deleteProductUseCase := product.NewDeleteProductUseCase(productRepo)

	// Order use cases
	listOrdersUseCase := order.NewListOrdersUseCase(orderRepo, zone)
	getOrderUseCase := order.NewGetOrderUseCase(orderRepo)
	createOrderUseCase := order.NewCreateOrderUseCase(orderRepo, clientRepo, productRepo, clock, zone)
	updateOrderUseCase := order.NewUpdateOrderUseCase(orderRepo, clientRepo, productRepo, zone)
	deleteOrderUseCase := order.NewDeleteOrderUseCase(orderRepo)
	orderSummaryUseCase := order.NewGetOrderSummaryUseCase(orderRepo)

	// Classification use cases
	listClassificationsUseCase := classification.NewListClassificationsUseCase(classRepo, genreRepo)
	createClassUseCase := classification.NewCreateClassUseCase(classRepo)
	createGenreUseCase := classification.NewCreateGenreUseCase(genreRepo)

	// Analytics use cases
	earningsComparisonUseCase := analytics.NewGetEarningsComparisonUseCase(ledgerRepo, clock, zone)
	revenueTrendUseCase := analytics.NewGetRevenueTrendUseCase(ledgerRepo, clock, zone)
	ordersTrendUseCase := analytics.NewGetOrdersTrendUseCase(ledgerRepo, clock, zone)
	clientRankingsUseCase := analytics.NewGetClientRankingsUseCase(ledgerRepo, clock, zone)

	// Invoice use cases
	generateInvoiceUseCase := invoice.NewGenerateInvoiceUseCase(orderRepo, clientRepo, zone)
	exportInvoiceUseCase := invoice.NewExportInvoiceUseCase(generateInvoiceUseCase, renderers)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(loginUseCase, changePasswordUseCase)

	clientController := controller.NewClientController(
		listClientsUseCase,
		getClientUseCase,
		createClientUseCase,
		updateClientUseCase,
		deleteClientUseCase,
		zone,
	)

	productController := controller.NewProductController(
		listProductsUseCase,
		getProductUseCase,
		createProductUseCase,
		updateProductUseCase,
		deleteProductUseCase,
		zone,
	)

	orderController := controller.NewOrderController(
		listOrdersUseCase,
		getOrderUseCase,
		createOrderUseCase,
		updateOrderUseCase,
		deleteOrderUseCase,
		orderSummaryUseCase,
		zone,
	)

	classificationController := controller.NewClassificationController(
		listClassificationsUseCase,
		createClassUseCase,
		createGenreUseCase,
		zone,
	)

	analyticsController := controller.NewAnalyticsController(
		earningsComparisonUseCase,
		revenueTrendUseCase,
		ordersTrendUseCase,
		clientRankingsUseCase,
		zone,
	)

	invoiceController := controller.NewInvoiceController(
		generateInvoiceUseCase,
		exportInvoiceUseCase,
		zone,
	)

	// Middleware
	// Use higher rate limits for the test environment to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		clientController,
		productController,
		orderController,
		classificationController,
		analyticsController,
		invoiceController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Zone:   zone,
		Router: r,
	}
}
