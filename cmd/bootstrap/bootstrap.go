package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unibooking/config"
	deliveryHttp "unibooking/internal/delivery/http"
	"unibooking/internal/delivery/http/handler"
	"unibooking/internal/delivery/http/middleware"
	"unibooking/internal/infrastructure/cache"
	"unibooking/internal/infrastructure/database"
	"unibooking/internal/repository"
	"unibooking/internal/service"
	"unibooking/internal/usecase"
	"unibooking/pkg/jwt"
	"unibooking/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Run schema migrations before opening the pooled connection
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	cardRepo := repository.NewBookingCardRepository()
	hotelRepo := repository.NewHotelBookingRepository()
	paymentRepo := repository.NewPaymentRepository()
	flightRepo := repository.NewFlightBookingRepository()
	transferRepo := repository.NewTransferBookingRepository()
	visaRepo := repository.NewVisaBookingRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditRepo)
	attachmentStore := service.NewAttachmentStore(afero.NewOsFs(), cfg.Storage.AttachmentDir, log)
	voucherRenderer := service.NewVoucherRenderer(log)
	reportExporter := service.NewReportExporter(log)
	documentExtractor := service.NewDocumentExtractor(log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient)
	cardUsecase := usecase.NewCardUsecase(db, log, cardRepo, auditService, reportExporter)
	hotelUsecase := usecase.NewHotelBookingUsecase(db, log, cardRepo, hotelRepo)
	paymentUsecase := usecase.NewHotelPaymentUsecase(db, log, hotelRepo, paymentRepo, cardRepo, auditService, attachmentStore)
	flightUsecase := usecase.NewFlightBookingUsecase(db, log, cardRepo, flightRepo, attachmentStore)
	transferUsecase := usecase.NewTransferBookingUsecase(db, log, cardRepo, transferRepo)
	visaUsecase := usecase.NewVisaBookingUsecase(db, log, cardRepo, visaRepo)
	voucherUsecase := usecase.NewVoucherUsecase(db, log, hotelRepo, flightRepo, transferRepo, visaRepo, voucherRenderer, cfg.App.BaseURL)
	reportUsecase := usecase.NewReportUsecase(db, log, hotelRepo, flightRepo, transferRepo, visaRepo, reportExporter)
	documentUsecase := usecase.NewDocumentUsecase(log, documentExtractor)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	cardHandler := handler.NewCardHandler(cardUsecase, customValidator)
	hotelHandler := handler.NewHotelHandler(hotelUsecase, customValidator)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)
	flightHandler := handler.NewFlightHandler(flightUsecase, customValidator)
	transferHandler := handler.NewTransferHandler(transferUsecase, customValidator)
	visaHandler := handler.NewVisaHandler(visaUsecase, customValidator)
	voucherHandler := handler.NewVoucherHandler(voucherUsecase)
	reportHandler := handler.NewReportHandler(reportUsecase, customValidator)
	documentHandler := handler.NewDocumentHandler(documentUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		cardHandler,
		hotelHandler,
		paymentHandler,
		flightHandler,
		transferHandler,
		visaHandler,
		voucherHandler,
		reportHandler,
		documentHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
