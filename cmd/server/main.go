package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"partner-portal.backend/internal/config"
	"partner-portal.backend/internal/infrastructure/advisor"
	"partner-portal.backend/internal/infrastructure/jobs"
	"partner-portal.backend/internal/infrastructure/repositories"
	"partner-portal.backend/internal/interfaces/http/handlers"
	"partner-portal.backend/internal/interfaces/http/middleware"
	"partner-portal.backend/internal/usecases"
	"partner-portal.backend/pkg/jwt"
	"partner-portal.backend/pkg/logger"
	"partner-portal.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }

	metricsRegisterer prometheus.Registerer = prometheus.DefaultRegisterer
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	associateRepo := repositories.NewAssociateRepository(db)
	referralRepo := repositories.NewReferralRepository(db)
	payoutRepo := repositories.NewPayoutRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize advisor client
	advisorClient := advisor.NewClient(
		cfg.Advisor.BaseURL,
		cfg.Advisor.APIKey,
		cfg.Advisor.Model,
		cfg.Advisor.Timeout,
	)

	// Initialize usecases
	associateUsecase := usecases.NewAssociateUsecase(associateRepo, cfg.Program)
	referralUsecase := usecases.NewReferralUsecase(referralRepo, associateRepo, uow, cfg.Program)
	payoutUsecase := usecases.NewPayoutUsecase(payoutRepo, associateRepo, uow, cfg.Program)
	metricsUsecase := usecases.NewMetricsUsecase(associateRepo, referralRepo)
	advisorUsecase := usecases.NewAdvisorUsecase(advisorClient, associateRepo, referralRepo)
	authUsecase := usecases.NewAuthUsecase(userRepo, associateUsecase, uow, jwtService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore)
	associateHandler := handlers.NewAssociateHandler(associateUsecase, advisorUsecase, cfg.Program)
	referralHandler := handlers.NewReferralHandler(referralUsecase)
	payoutHandler := handlers.NewPayoutHandler(payoutUsecase)
	adminHandler := handlers.NewAdminHandler(associateUsecase, referralUsecase, payoutUsecase, metricsUsecase, advisorUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	collectorJob := jobs.NewMetricsCollectorJob(metricsUsecase, metricsRegisterer)
	go collectorJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:      authHandler,
		associateHandler: associateHandler,
		referralHandler:  referralHandler,
		payoutHandler:    payoutHandler,
		adminHandler:     adminHandler,
		authMiddleware:   authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		collectorJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Partner Portal Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
