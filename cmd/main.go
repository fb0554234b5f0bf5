package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/franciscosanchezn/truckplate-api/docs" // Import generated docs
	"github.com/franciscosanchezn/truckplate-api/internal/config"
	"github.com/franciscosanchezn/truckplate-api/internal/media"
	"github.com/franciscosanchezn/truckplate-api/internal/middleware"
	"github.com/franciscosanchezn/truckplate-api/internal/notify"
	"github.com/franciscosanchezn/truckplate-api/internal/persistence"
	"github.com/franciscosanchezn/truckplate-api/internal/server"
	"github.com/franciscosanchezn/truckplate-api/internal/services"
	"github.com/franciscosanchezn/truckplate-api/internal/state"
	"github.com/franciscosanchezn/truckplate-api/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var (
	configuration *config.Config
	kv            storage.KV
	closeStorage  func() error
	images        media.ImageStore
	store         *state.Store
	adapter       *persistence.Adapter
	notices       *notify.Center
)

// @title TruckPlate API
// @version 1.0
// @description Recipe costing and supplier invoice tracking for food trucks
// @host localhost:8080
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration = loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize storage and the image store
	setupStorage(ctx, configuration)
	defer func() {
		if err := closeStorage(); err != nil {
			log.WithError(err).Warn("Failed to close storage")
		}
	}()
	setupImages(ctx, configuration)

	// Initialize state, services and router
	store = state.NewStore()
	adapter = persistence.NewAdapter(kv,
		persistence.WithLoadDelay(configuration.LoadDelay),
		persistence.WithSaveTimeout(configuration.SaveTimeout),
		persistence.WithDefaultDisplayName(configuration.DefaultDisplayName),
	)
	notices = notify.NewCenter(configuration.ToastDuration)
	defer notices.Close()

	router := setupRouter(configuration)

	// Hydrate in the background; the API answers 503 until it completes
	go hydrate(ctx)

	// Start the server
	srv := &http.Server{
		Addr:              fmt.Sprintf("%v:%d", configuration.Host, configuration.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment.
// LOG_LEVEL, when valid, overrides the environment default.
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	switch conf.Env {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
		gin.SetMode(gin.ReleaseMode)
	default:
		log.SetLevel(log.InfoLevel)
	}
	if level, err := log.ParseLevel(conf.LogLevel); err == nil {
		log.SetLevel(level)
	}
	middleware.SetLogLevel(log.GetLevel())
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupStorage opens the key-value backend selected by STORAGE_DRIVER
func setupStorage(ctx context.Context, conf *config.Config) {
	var err error
	kv, closeStorage, err = storage.Open(ctx, conf.Storage())
	checkPanicErr(err)
}

// setupImages opens the invoice image store selected by IMAGE_STORE
func setupImages(ctx context.Context, conf *config.Config) {
	var err error
	images, err = media.Open(ctx, conf.Media())
	checkPanicErr(err)
}

// hydrate loads stored data into the state store and starts saving changes
func hydrate(ctx context.Context) {
	snap, err := adapter.Hydrate(ctx, store)
	if err != nil {
		log.WithError(err).Warn("Hydration did not complete")
		return
	}
	log.WithFields(log.Fields{
		"recipes":  len(snap.Recipes),
		"invoices": len(snap.Invoices),
		"warnings": len(snap.Warnings),
	}).Info("Data loaded")
}

// setupRouter initializes the services and the gin router
func setupRouter(conf *config.Config) *gin.Engine {
	return server.NewRouter(server.Dependencies{
		Recipes:        services.NewRecipeService(store, notices),
		Invoices:       services.NewInvoiceService(store, images, notices),
		Dashboard:      services.NewDashboardService(store),
		Settings:       services.NewSettingsService(store, notices),
		Notifications:  services.NewNotificationService(notices),
		Storage:        kv,
		Loaded:         adapter.Loaded,
		CORSOrigins:    conf.CORSOrigins,
		RateLimitRPS:   conf.RateLimitRPS,
		RateLimitBurst: conf.RateLimitBurst,
		MaxUploadBytes: int64(conf.MaxUploadMB) << 20,
	})
}
