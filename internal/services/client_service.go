package services

import (
	"aplyease_backend/internal/models"
	"aplyease_backend/internal/repositories"
	"aplyease_backend/internal/services/dto"
	"aplyease_backend/pkg/apperrors"
)

type ClientService interface {
	GetAccount(userID string) (*models.ClientAccount, error)
	UpdateBilling(userID string, req *dto.UpdateBillingRequest) (*models.ClientAccount, error)
	AddQuota(userID string, count int) (*models.ClientAccount, error)
}

type clientService struct {
	clientRepo repositories.ClientRepository
}

func NewClientService(clientRepo repositories.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) GetAccount(userID string) (*models.ClientAccount, error) {
	account, err := s.clientRepo.FindByUserID(userID)
	if err != nil {
		if err == repositories.ErrClientNotFound {
			return nil, apperrors.NewNotFoundError("client", "Client account not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return account, nil
}

func (s *clientService) UpdateBilling(userID string, req *dto.UpdateBillingRequest) (*models.ClientAccount, error) {
	account, err := s.GetAccount(userID)
	if err != nil {
		return nil, err
	}

	paid := account.AmountPaidCents
	due := account.AmountDueCents
	if req.AmountPaidCents != nil {
		paid = *req.AmountPaidCents
	}
	if req.AmountDueCents != nil {
		due = *req.AmountDueCents
	}

	if err := s.clientRepo.UpdateBilling(userID, paid, due); err != nil {
		return nil, apperrors.InternalError(err)
	}

	account.AmountPaidCents = paid
	account.AmountDueCents = due
	return account, nil
}

func (s *clientService) AddQuota(userID string, count int) (*models.ClientAccount, error) {
	if err := s.clientRepo.AddQuota(userID, count); err != nil {
		if err == repositories.ErrClientNotFound {
			return nil, apperrors.NewNotFoundError("client", "Client account not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetAccount(userID)
}
