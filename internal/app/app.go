package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"aplyease_backend/database"
	"aplyease_backend/internal/config"
	"aplyease_backend/internal/email"
	"aplyease_backend/internal/handlers"
	"aplyease_backend/internal/logger"
	"aplyease_backend/internal/middleware"
	"aplyease_backend/internal/models"
	"aplyease_backend/internal/routes"
	"aplyease_backend/internal/services"
	"aplyease_backend/internal/validator"
	"aplyease_backend/internal/workers"

	"golang.org/x/crypto/bcrypt"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("schema migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("failed to seed first admin user", "error", err)
	}

	serviceContainer := initializeServices(cfg, gormDB)
	ginRouter := SetupRouter(serviceContainer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker := workers.NewMaintenanceWorker(
		serviceContainer.UserRepo,
		serviceContainer.Analytics,
		newEmailProvider(cfg),
		cfg.FirstAdminEmail,
	)
	worker.Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter builds the gin engine with all middleware and routes mounted.
// Exposed separately so integration tests can drive the full HTTP stack.
func SetupRouter(serviceContainer *services.ServiceContainer) *gin.Engine {
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	return services.NewServiceContainer(gormDB, cfg, newEmailProvider(cfg))
}

// newEmailProvider picks real SMTP when credentials are configured and the
// recording mock otherwise, so local development never needs a relay.
func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPUsername == "" {
		logger.Warn("SMTP credentials not configured, using mock email provider")
		return &email.MockProvider{}
	}
	return email.NewSMTPProvider(cfg)
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator, serviceContainer.Tokens)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, serviceContainer.Auth),
		UserHandler:        handlers.NewUserHandler(baseHandler, serviceContainer.User),
		ClientHandler:      handlers.NewClientHandler(baseHandler, serviceContainer.Client),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, serviceContainer.Application),
		AnalyticsHandler:   handlers.NewAnalyticsHandler(baseHandler, serviceContainer.Analytics),
		PayoutHandler:      handlers.NewPayoutHandler(baseHandler, serviceContainer.Payout),
		ResumeHandler:      handlers.NewResumeHandler(baseHandler, serviceContainer.Resume),
	}
}

// seedFirstAdmin creates the bootstrap admin account when the configured
// email does not exist yet. Without it there is no way to reach the admin
// endpoints on a fresh database.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("first admin credentials not configured, skipping admin seeding")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("admin user already exists, skipping creation", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		FullName:     "Platform Administrator",
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("created first admin user", "email", adminEmail)
	return nil
}
