package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-internhub-backend/config"
	_ "go-internhub-backend/docs" // Important for Swagger
	v1 "go-internhub-backend/internal/delivery/http/v1"
	"go-internhub-backend/internal/migrate"
	"go-internhub-backend/internal/repository/postgres"
	"go-internhub-backend/internal/usecase"
	"go-internhub-backend/pkg/auth"
	"go-internhub-backend/pkg/database"
	"go-internhub-backend/pkg/logger"
	"go-internhub-backend/pkg/redis"
	"go-internhub-backend/pkg/security"
	"go-internhub-backend/pkg/upload"
	"go-internhub-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           InternHub Backend API
// @version         1.0
// @description     Internship and job marketplace backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting internhub backend", slog.String("port", cfg.Port))

	// 3. Run migrations, then open the pool
	ctx := context.Background()
	if err := migrate.Up(ctx, cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting and login tracking degrade
	// gracefully without it)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory fallbacks", slog.String("error", err.Error()))
		}
	}
	defer redis.Close()

	// 5. Setup Repositories
	studentRepo := postgres.NewStudentRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)
	vacancyRepo := postgres.NewVacancyRepository(dbPool)
	internshipRepo := postgres.NewInternshipRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	categoryRepo := postgres.NewCategoryRepository(dbPool)
	subscriptionRepo := postgres.NewSubscriptionRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)
	analyticsRepo := postgres.NewAnalyticsRepository(dbPool)

	// 6. Custom validators for request binding
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 7. Setup shared services
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenExpiry)
	tracker := security.NewLoginTracker(security.LoginTrackerConfig{
		MaxAttempts:   cfg.FailedLoginMaxAttempts,
		AttemptWindow: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
		BlockDuration: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
		UseIPTracking: true,
	})
	logos := upload.NewImageStore(cfg.UploadDir, cfg.MaxLogoPixels)

	// 8. Setup UseCases
	authUC := usecase.NewAuthUsecase(studentRepo, companyRepo, adminRepo, issuer, tracker)
	studentUC := usecase.NewStudentUsecase(studentRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo, issuer, logos)
	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo)
	internshipUC := usecase.NewInternshipUsecase(internshipRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, vacancyRepo, internshipRepo)
	adminUC := usecase.NewAdminUsecase(studentRepo, companyRepo, adminRepo, vacancyRepo, categoryRepo, subscriptionRepo, notificationRepo, analyticsRepo)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		StudentUC:     studentUC,
		CompanyUC:     companyUC,
		VacancyUC:     vacancyUC,
		InternshipUC:  internshipUC,
		ApplicationUC: applicationUC,
		AdminUC:       adminUC,
		Issuer:        issuer,
		Config:        cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", slog.String("error", err.Error()))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}

	logger.Log.Info("Server exited")
}
