package services

import (
	"gorm.io/gorm"

	"aplyease_backend/internal/ai"
	"aplyease_backend/internal/auth"
	"aplyease_backend/internal/config"
	"aplyease_backend/internal/email"
	"aplyease_backend/internal/latex"
	"aplyease_backend/internal/repositories"
)

// ServiceContainer holds every service the HTTP layer and workers depend on.
type ServiceContainer struct {
	Auth        AuthService
	User        UserService
	Client      ClientService
	Application ApplicationService
	Analytics   AnalyticsService
	Payout      PayoutService
	Resume      ResumeService

	Tokens   *auth.TokenManager
	UserRepo repositories.UserRepository
}

// NewServiceContainer wires repositories and external clients into services.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, emailProv email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	payoutRepo := repositories.NewPayoutRepository(db)

	aiClient := ai.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model)
	compiler := latex.NewCompiler(cfg.LaTeX.CompileURL)
	tokens := auth.NewTokenManager(cfg)

	return &ServiceContainer{
		Auth:        NewAuthService(userRepo, clientRepo, emailProv, tokens),
		User:        NewUserService(userRepo),
		Client:      NewClientService(clientRepo),
		Application: NewApplicationService(appRepo, clientRepo),
		Analytics:   NewAnalyticsService(clientRepo, appRepo, payoutRepo, cfg),
		Payout:      NewPayoutService(payoutRepo, userRepo),
		Resume:      NewResumeService(aiClient, compiler),
		Tokens:      tokens,
		UserRepo:    userRepo,
	}
}
