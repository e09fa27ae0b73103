// Package steps provides Godog step definitions for the API feature tests.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

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
	"github.com/scribe-ops/backend/internal/integration/persistence/model"
	"github.com/scribe-ops/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-feature-tests"

var (
	serverOnce     sync.Once
	testServerPort int
	testDB         *mock.Db
	testClock      *mock.Clock
	testZone       *businesstime.Zone
)

// response captures the last HTTP response for assertion steps.
type response struct {
	status  int
	headers http.Header
	body    any
	raw     []byte
}

// testContext carries per-scenario state: the last response, auth tokens,
// and the IDs of seeded fixtures referenced by placeholders in features.
type testContext struct {
	uri     string
	client  *http.Client
	headers map[string]string
	db      *mock.Db

	response *response

	accessToken string

	currentUserID    uuid.UUID
	currentClientID  uuid.UUID
	currentProductID uuid.UUID
	currentOrderID   uuid.UUID
	currentClassID   uuid.UUID
	currentGenreID   uuid.UUID
	lastCreatedID    uuid.UUID
}

// InitializeTestSuite configures global test resources before any scenario.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// The login rate limiter is bypassed for the test environment.
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario wires the test context and registers all steps.
func InitializeScenario(ctx *godog.ScenarioContext) {
	testDB = mock.NewDb("scribe_ops", map[string]any{
		"users":    &model.UserModel{},
		"clients":  &model.ClientModel{},
		"products": &model.ProductModel{},
		"classes":  &model.ClassModel{},
		"genres":   &model.GenreModel{},
		"orders":   &model.OrderModel{},
	})
	if testClock == nil {
		testClock = mock.NewClock()
	}
	if testZone == nil {
		testZone = businesstime.NewZone("EAT", 3)
	}

	t := &testContext{
		db:      testDB,
		client:  &http.Client{Timeout: 10 * time.Second},
		headers: make(map[string]string),
	}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		t.before()
		return ctx, nil
	})

	// Server lifecycle
	ctx.Step(`^the API server is running$`, t.theAPIServerIsRunning)
	ctx.Step(`^the current time is "([^"]*)"$`, t.theCurrentTimeIs)

	// Fixtures
	ctx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, t.aUserExistsWithEmailAndPassword)
	ctx.Step(`^the user is logged in$`, t.theUserIsLoggedIn)
	ctx.Step(`^a client exists named "([^"]*)" from "([^"]*)"$`, t.aClientExists)
	ctx.Step(`^a product exists named "([^"]*)" priced at (\d+(?:\.\d+)?)$`, t.aProductExists)
	ctx.Step(`^a class exists named "([^"]*)"$`, t.aClassExists)
	ctx.Step(`^a genre exists named "([^"]*)"$`, t.aGenreExists)
	ctx.Step(`^an order exists for the client with (\d+) units costing (\d+(?:\.\d+)?) placed at "([^"]*)"$`, t.anOrderExists)

	// Requests
	ctx.Step(`^the "([^"]*)" header is "([^"]*)"$`, t.theHeaderIs)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, t.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, t.iSendARequestToWithBody)

	// Assertions
	ctx.Step(`^the response status should be (\d+)$`, t.theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, t.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, t.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, t.theResponseFieldShouldExist)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, t.theResponseHeaderShouldContain)
	ctx.Step(`^the database should contain (\d+) rows in "([^"]*)"$`, t.theDatabaseShouldContainRows)
	ctx.Step(`^the database should contain (\d+) rows in "([^"]*)" matching:$`, t.theDatabaseShouldContainRowsMatching)
}

// before resets per-scenario state and wipes the database.
func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.currentClientID = uuid.Nil
	t.currentProductID = uuid.Nil
	t.currentOrderID = uuid.Nil
	t.currentClassID = uuid.Nil
	t.currentGenreID = uuid.Nil
	t.lastCreatedID = uuid.Nil
	testClock.Reset()

	if err := t.db.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to clear test database: %v", err))
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) theCurrentTimeIs(value string) error {
	instant, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	testClock.Set(instant.UTC())
	return nil
}

// startServer boots the full HTTP stack once, against the shared in-memory
// database and the controllable clock, then waits for /health.
func (t *testContext) startServer() {
	serverOnce.Do(func() {
		testServerPort = findAvailablePort()

		go func() {
			db := testDB.DbConn
			zone := testZone
			clock := testClock

			userRepo := persistence.NewUserRepository(db)
			clientRepo := persistence.NewClientRepository(db)
			productRepo := persistence.NewProductRepository(db)
			orderRepo := persistence.NewOrderRepository(db)
			classRepo := persistence.NewClassRepository(db)
			genreRepo := persistence.NewGenreRepository(db)
			ledgerRepo := persistence.NewLedgerRepository(db, zone)

			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute)
			renderers := map[string]adapter.InvoiceRenderer{
				"excel": document.NewExcelRenderer(zone),
				"pdf":   document.NewPDFRenderer(zone),
			}

			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)

			listClientsUseCase := client.NewListClientsUseCase(clientRepo, zone)
			getClientUseCase := client.NewGetClientUseCase(clientRepo)
			createClientUseCase := client.NewCreateClientUseCase(clientRepo)
			updateClientUseCase := client.NewUpdateClientUseCase(clientRepo)
			deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo)

			listProductsUseCase := product.NewListProductsUseCase(productRepo, zone)
			getProductUseCase := product.NewGetProductUseCase(productRepo)
			createProductUseCase := product.NewCreateProductUseCase(productRepo)
			updateProductUseCase := product.NewUpdateProductUseCase(productRepo)
			deleteProductUseCase := product.NewDeleteProductUseCase(productRepo)

			listOrdersUseCase := order.NewListOrdersUseCase(orderRepo, zone)
			getOrderUseCase := order.NewGetOrderUseCase(orderRepo)
			createOrderUseCase := order.NewCreateOrderUseCase(orderRepo, clientRepo, productRepo, clock, zone)
			updateOrderUseCase := order.NewUpdateOrderUseCase(orderRepo, clientRepo, productRepo, zone)
			deleteOrderUseCase := order.NewDeleteOrderUseCase(orderRepo)
			orderSummaryUseCase := order.NewGetOrderSummaryUseCase(orderRepo)

			listClassificationsUseCase := classification.NewListClassificationsUseCase(classRepo, genreRepo)
			createClassUseCase := classification.NewCreateClassUseCase(classRepo)
			createGenreUseCase := classification.NewCreateGenreUseCase(genreRepo)

			earningsComparisonUseCase := analytics.NewGetEarningsComparisonUseCase(ledgerRepo, clock, zone)
			revenueTrendUseCase := analytics.NewGetRevenueTrendUseCase(ledgerRepo, clock, zone)
			ordersTrendUseCase := analytics.NewGetOrdersTrendUseCase(ledgerRepo, clock, zone)
			clientRankingsUseCase := analytics.NewGetClientRankingsUseCase(ledgerRepo, clock, zone)

			generateInvoiceUseCase := invoice.NewGenerateInvoiceUseCase(orderRepo, clientRepo, zone)
			exportInvoiceUseCase := invoice.NewExportInvoiceUseCase(generateInvoiceUseCase, renderers)

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

			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, time.Minute)
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
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	t.uri = fmt.Sprintf("http://localhost:%d", testServerPort)

	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(fmt.Sprintf("failed to find available port: %v", err))
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}
