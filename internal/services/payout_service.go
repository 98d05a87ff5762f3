package services

import (
	"aplyease_backend/internal/models"
	"aplyease_backend/internal/repositories"
	"aplyease_backend/internal/services/dto"
	"aplyease_backend/pkg/apperrors"
)

type PayoutService interface {
	Create(req *dto.CreatePayoutRequest) (*models.EmployeePayout, error)
	GetByID(id string) (*models.EmployeePayout, error)
	ListByYear(year int) ([]models.EmployeePayout, error)
	ListByEmployee(employeeID string, limit, offset int) ([]models.EmployeePayout, error)
	MarkPaid(id string) (*models.EmployeePayout, error)
}

type payoutService struct {
	payoutRepo repositories.PayoutRepository
	userRepo   repositories.UserRepository
}

func NewPayoutService(payoutRepo repositories.PayoutRepository, userRepo repositories.UserRepository) PayoutService {
	return &payoutService{
		payoutRepo: payoutRepo,
		userRepo:   userRepo,
	}
}

func (s *payoutService) Create(req *dto.CreatePayoutRequest) (*models.EmployeePayout, error) {
	employee, err := s.userRepo.FindByID(req.EmployeeID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("payout", "Employee not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if employee.Role != models.UserRoleEmployee {
		return nil, apperrors.NewBadRequestError("Payouts can only be created for employees")
	}

	payout := &models.EmployeePayout{
		EmployeeID:  req.EmployeeID,
		AmountCents: req.AmountCents,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		Status:      models.PayoutStatusPending,
	}
	if err := s.payoutRepo.Create(payout); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payout, nil
}

func (s *payoutService) GetByID(id string) (*models.EmployeePayout, error) {
	payout, err := s.payoutRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrPayoutNotFound {
			return nil, apperrors.NewNotFoundError("payout", "Payout not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return payout, nil
}

func (s *payoutService) ListByYear(year int) ([]models.EmployeePayout, error) {
	payouts, err := s.payoutRepo.FindByYear(year)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payouts, nil
}

func (s *payoutService) ListByEmployee(employeeID string, limit, offset int) ([]models.EmployeePayout, error) {
	payouts, err := s.payoutRepo.FindByEmployee(employeeID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payouts, nil
}

func (s *payoutService) MarkPaid(id string) (*models.EmployeePayout, error) {
	if err := s.payoutRepo.MarkPaid(id); err != nil {
		if err == repositories.ErrPayoutNotFound {
			return nil, apperrors.NewNotFoundError("payout", "Payout not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetByID(id)
}
