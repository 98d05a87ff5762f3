package services

import (
	"time"

	"github.com/google/uuid"

	"aplyease_backend/internal/auth"
	"aplyease_backend/internal/email"
	"aplyease_backend/internal/logger"
	"aplyease_backend/internal/models"
	"aplyease_backend/internal/repositories"
	"aplyease_backend/internal/services/dto"
	"aplyease_backend/pkg/apperrors"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
}

type authService struct {
	userRepo   repositories.UserRepository
	clientRepo repositories.ClientRepository
	emailProv  email.Provider
	tokens     *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, clientRepo repositories.ClientRepository, emailProv email.Provider, tokens *auth.TokenManager) AuthService {
	return &authService{
		userRepo:   userRepo,
		clientRepo: clientRepo,
		emailProv:  emailProv,
		tokens:     tokens,
	}
}

func (s *authService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         models.UserRole(req.Role),
		Status:       models.UserStatusActive,
	}

	if err := s.userRepo.Create(user); err != nil {
		if err == repositories.ErrUserAlreadyExists {
			return nil, apperrors.NewConflictError("auth", "Email is already registered")
		}
		return nil, apperrors.InternalError(err)
	}

	// Clients get a billing account immediately; quota arrives with the
	// first payment.
	if user.Role == models.UserRoleClient {
		account := &models.ClientAccount{UserID: user.ID}
		if err := s.clientRepo.Create(account); err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.ClientAccount = account
	}

	if err := s.emailProv.SendWelcome(user.Email, user.FullName); err != nil {
		// Mail failure never blocks registration.
		logger.WithError(err).Warn("failed to send welcome email", "email", user.Email)
	}

	return s.issueTokens(user)
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", 401)
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", 401)
	}

	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.NewForbiddenError("Account is suspended")
	}

	return s.issueTokens(user)
}

func (s *authService) Refresh(refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeInvalidToken, "auth", "Invalid refresh token", 401)
	}

	if stored.ExpiresAt.Before(time.Now()) {
		_ = s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.New(apperrors.CodeTokenExpired, "auth", "Refresh token expired", 401)
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("User no longer exists")
	}

	// Rotate the refresh token on every use.
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user)
}

func (s *authService) Logout(refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		if err == repositories.ErrUserNotFound {
			return nil // already gone
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userRepo.CreateRefreshToken(refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		User:         user,
	}, nil
}
