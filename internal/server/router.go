// Package server wires the controllers into a gin engine.
package server

import (
	"github.com/franciscosanchezn/truckplate-api/internal/controllers"
	"github.com/franciscosanchezn/truckplate-api/internal/middleware"
	"github.com/franciscosanchezn/truckplate-api/internal/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Dependencies are the services and probes the router needs
type Dependencies struct {
	Recipes       services.RecipeService
	Invoices      services.InvoiceService
	Dashboard     services.DashboardService
	Settings      services.SettingsService
	Notifications services.NotificationService

	Storage controllers.Pinger
	Loaded  func() bool

	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	MaxUploadBytes int64
}

// NewRouter initializes the gin engine and sets up the routes
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.CORS(deps.CORSOrigins))
	if deps.MaxUploadBytes > 0 {
		router.MaxMultipartMemory = deps.MaxUploadBytes
	}

	setupRoutes(router, deps)
	return router
}

// setupRoutes defines the routes for the gin router
func setupRoutes(router *gin.Engine, deps Dependencies) {
	health := controllers.NewHealthController("truckplate-api", Version, deps.Storage, deps.Loaded)
	router.GET("/health", health.HealthCheck)

	recipeController := controllers.NewRecipeController(deps.Recipes)
	invoiceController := controllers.NewInvoiceController(deps.Invoices)
	dashboardController := controllers.NewDashboardController(deps.Dashboard)
	settingsController := controllers.NewSettingsController(deps.Settings)
	notificationController := controllers.NewNotificationController(deps.Notifications)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireLoaded(deps.Loaded), middleware.RateLimit(deps.RateLimitRPS, deps.RateLimitBurst))
	{
		recipes := v1.Group("/recipes")
		{
			recipes.GET("", recipeController.ListRecipes)
			recipes.GET("/stations", recipeController.ListStations)
			recipes.GET("/:id", recipeController.GetRecipe)
			recipes.POST("", recipeController.CreateRecipe)
			recipes.DELETE("/:id", recipeController.DeleteRecipe)
		}

		invoices := v1.Group("/invoices")
		{
			invoices.GET("", invoiceController.ListInvoices)
			invoices.GET("/recent", invoiceController.RecentInvoices)
			invoices.POST("", invoiceController.CreateInvoice)
			invoices.DELETE("/:id", invoiceController.DeleteInvoice)
		}

		v1.GET("/dashboard", dashboardController.GetDashboard)

		v1.GET("/settings", settingsController.GetSettings)
		v1.PUT("/settings", settingsController.UpdateSettings)
		v1.POST("/settings/dark-mode/toggle", settingsController.ToggleDarkMode)
		v1.GET("/export", settingsController.Export)

		v1.GET("/notifications", notificationController.ListNotifications)
		v1.DELETE("/notifications/:id", notificationController.DismissNotification)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
