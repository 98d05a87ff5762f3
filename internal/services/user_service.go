package services

import (
	"aplyease_backend/internal/models"
	"aplyease_backend/internal/repositories"
	"aplyease_backend/internal/services/dto"
	"aplyease_backend/pkg/apperrors"
)

type UserService interface {
	GetByID(id string) (*models.User, error)
	List(limit, offset int) ([]models.User, int64, error)
	ListByRole(role models.UserRole, limit, offset int) ([]models.User, error)
	Update(id string, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(id string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *userService) List(limit, offset int) ([]models.User, int64, error) {
	users, err := s.userRepo.FindAll(limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return users, total, nil
}

func (s *userService) ListByRole(role models.UserRole, limit, offset int) ([]models.User, error) {
	users, err := s.userRepo.FindByRole(role, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

func (s *userService) Update(id string, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Status != "" {
		user.Status = models.UserStatus(req.Status)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// Delete removes the user and, for clients, the account and all application
// rows (cascade, no archival state).
func (s *userService) Delete(id string) error {
	if err := s.userRepo.Delete(id); err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.NewNotFoundError("user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
