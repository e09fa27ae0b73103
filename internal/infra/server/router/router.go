// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/scribe-ops/backend/internal/integration/entrypoint/controller"
	"github.com/scribe-ops/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies. Only the
// change-password route sits behind the JWT middleware; the login route is
// rate limited.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	authController           *controller.AuthController
	clientController         *controller.ClientController
	productController        *controller.ProductController
	orderController          *controller.OrderController
	classificationController *controller.ClassificationController
	analyticsController      *controller.AnalyticsController
	invoiceController        *controller.InvoiceController
	loginRateLimiter         *middleware.RateLimiter
	authMiddleware           *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	clientController *controller.ClientController,
	productController *controller.ProductController,
	orderController *controller.OrderController,
	classificationController *controller.ClassificationController,
	analyticsController *controller.AnalyticsController,
	invoiceController *controller.InvoiceController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:         healthController,
		authController:           authController,
		clientController:         clientController,
		productController:        productController,
		orderController:          orderController,
		classificationController: classificationController,
		analyticsController:      analyticsController,
		invoiceController:        invoiceController,
		loginRateLimiter:         loginRateLimiter,
		authMiddleware:           authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}

			if r.authMiddleware != nil {
				users := v1.Group("/users")
				users.Use(r.authMiddleware.Authenticate())
				{
					users.POST("/change-password", r.authController.ChangePassword)
				}
			}
		}

		if r.clientController != nil {
			clients := v1.Group("/clients")
			{
				clients.GET("", r.clientController.List)
				clients.POST("", r.clientController.Create)
				clients.GET("/:id", r.clientController.Get)
				clients.PATCH("/:id", r.clientController.Update)
				clients.DELETE("/:id", r.clientController.Delete)
			}
		}

		if r.productController != nil {
			products := v1.Group("/products")
			{
				products.GET("", r.productController.List)
				products.POST("", r.productController.Create)
				products.GET("/:id", r.productController.Get)
				products.PATCH("/:id", r.productController.Update)
				products.DELETE("/:id", r.productController.Delete)
			}
		}

		if r.orderController != nil {
			orders := v1.Group("/orders")
			{
				orders.GET("", r.orderController.List)
				orders.POST("", r.orderController.Create)
				orders.GET("/summary", r.orderController.Summary)
				orders.GET("/:id", r.orderController.Get)
				orders.PATCH("/:id", r.orderController.Update)
				orders.DELETE("/:id", r.orderController.Delete)
			}
		}

		if r.classificationController != nil {
			meta := v1.Group("/meta")
			{
				meta.GET("", r.classificationController.List)
				meta.POST("/classes", r.classificationController.CreateClass)
				meta.POST("/genres", r.classificationController.CreateGenre)
			}
		}

		if r.analyticsController != nil {
			analytics := v1.Group("/analytics")
			{
				analytics.GET("/earnings/comparison", r.analyticsController.EarningsComparison)
				analytics.GET("/revenue/trend", r.analyticsController.RevenueTrend)
				analytics.GET("/orders/trend", r.analyticsController.OrdersTrend)
				analytics.GET("/clients/earnings", r.analyticsController.ClientRankings)
			}
		}

		if r.invoiceController != nil {
			invoices := v1.Group("/invoices")
			{
				invoices.GET("/data", r.invoiceController.Data)
				invoices.GET("/download/:format", r.invoiceController.Download)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
