package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-scheduling-api/config"
	deliveryHttp "health-scheduling-api/internal/delivery/http"
	"health-scheduling-api/internal/delivery/http/handler"
	"health-scheduling-api/internal/delivery/http/middleware"
	"health-scheduling-api/internal/infrastructure/cache"
	"health-scheduling-api/internal/infrastructure/database"
	"health-scheduling-api/internal/infrastructure/payment"
	"health-scheduling-api/internal/repository"
	"health-scheduling-api/internal/service"
	"health-scheduling-api/internal/usecase"
	"health-scheduling-api/pkg/jwt"
	"health-scheduling-api/pkg/validator"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// Load reads configuration and prepares the logger. Commands that do not
// serve HTTP stop here.
func Load(configPath string) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg.App)
	log.Info("Configuration loaded successfully")

	return cfg, log, nil
}

// New creates a new App instance with all dependencies initialized
func New(configPath string) (*App, error) {
	cfg, log, err := Load(configPath)
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg, Log: log}

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(cfg.DB.MigrationURL(), database.Up, log); err != nil {
			return nil, err
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsProduction())
	if err != nil {
		return nil, err
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, log, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	tokenStore := service.NewRedisTokenStore(redisClient)
	gateway := payment.NewMockGateway(cfg.Payment, log)
	transactor := repository.NewTransactor(db)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	professionalRepo := repository.NewProfessionalRepository()
	consultationRepo := repository.NewConsultationRepository()
	paymentRepo := repository.NewPaymentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(transactor, log, userRepo, jwtService, tokenStore)
	professionalUsecase := usecase.NewProfessionalUsecase(transactor, log, professionalRepo, consultationRepo, auditService, cfg.App.PageSize)
	consultationUsecase := usecase.NewConsultationUsecase(transactor, log, consultationRepo, professionalRepo, auditService, cfg.App.PageSize, time.Now)
	paymentUsecase := usecase.NewPaymentUsecase(transactor, log, consultationRepo, paymentRepo, gateway, auditService, usecase.PaymentSettings{
		PlatformWalletID:         cfg.Payment.PlatformWalletID,
		ProfessionalSplitPercent: cfg.Payment.ProfessionalSplitPercent,
	}, time.Now)
	auditLogUsecase := usecase.NewAuditLogUsecase(transactor, log, auditLogRepo, cfg.App.PageSize)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	professionalHandler := handler.NewProfessionalHandler(professionalUsecase)
	consultationHandler := handler.NewConsultationHandler(consultationUsecase)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator, cfg.Payment.WebhookToken)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	}, log)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowedOrigins)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(
		redis_rate.NewLimiter(redisClient),
		jwtService,
		log,
		cfg.RateLimit.AnonPerHour,
		cfg.RateLimit.UserPerHour,
	)

	router := deliveryHttp.NewRouter(
		authHandler,
		professionalHandler,
		consultationHandler,
		paymentHandler,
		auditLogHandler,
		healthHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
		rateLimitMiddleware,
		cfg.App.IsProduction(),
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and blocks until it is shut down.
func (app *App) Run() error {
	serverErr := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				app.Log.Warnf("Failed to close database: %+v", err)
			}
		}
	}

	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			app.Log.Warnf("Failed to close Redis: %+v", err)
		}
	}
}
