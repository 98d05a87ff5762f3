package services

import (
	"time"

	"aplyease_backend/internal/logger"
	"aplyease_backend/internal/models"
	"aplyease_backend/internal/repositories"
	"aplyease_backend/internal/services/dto"
	"aplyease_backend/pkg/apperrors"
)

type ApplicationService interface {
	Log(employeeID string, req *dto.CreateApplicationRequest) (*models.JobApplication, error)
	GetByID(id string) (*models.JobApplication, error)
	List(criteria repositories.ApplicationFilter) ([]models.JobApplication, int64, error)
	Update(id string, req *dto.UpdateApplicationRequest) (*models.JobApplication, error)
	UpdateStatus(id string, status models.ApplicationStatus) (*models.JobApplication, error)
	BulkUpdateStatus(req *dto.BulkStatusUpdateRequest) *dto.BulkStatusUpdateResult
	Delete(id string) error
}

type applicationService struct {
	appRepo    repositories.ApplicationRepository
	clientRepo repositories.ClientRepository
}

func NewApplicationService(appRepo repositories.ApplicationRepository, clientRepo repositories.ClientRepository) ApplicationService {
	return &applicationService{
		appRepo:    appRepo,
		clientRepo: clientRepo,
	}
}

// Log records one application performed for a client. The quota decrement
// happens first as an atomic conditional update, so two specialists logging
// concurrently for the same client can never overdraw the paid quota.
func (s *applicationService) Log(employeeID string, req *dto.CreateApplicationRequest) (*models.JobApplication, error) {
	if err := s.clientRepo.DecrementQuota(req.ClientID); err != nil {
		switch err {
		case repositories.ErrClientNotFound:
			return nil, apperrors.NewNotFoundError("client", "Client account not found")
		case repositories.ErrQuotaExhausted:
			return nil, apperrors.NewQuotaExhaustedError(req.ClientID)
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	dateApplied := truncateToDate(time.Now())
	if req.DateApplied != "" {
		parsed, err := time.Parse("2006-01-02", req.DateApplied)
		if err != nil {
			return nil, apperrors.NewBadRequestError("date_applied must be YYYY-MM-DD")
		}
		dateApplied = parsed
	}

	status := models.ApplicationStatusApplied
	if req.Status != "" {
		status = models.ApplicationStatus(req.Status)
	}

	app := &models.JobApplication{
		ClientID:    req.ClientID,
		EmployeeID:  employeeID,
		Status:      status,
		DateApplied: dateApplied,
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		Location:    req.Location,
		JobLink:     req.JobLink,
		Notes:       req.Notes,
	}

	if err := s.appRepo.Create(app); err != nil {
		// The quota slot is already consumed; give it back rather than
		// charging the client for a row that was never written.
		if restoreErr := s.clientRepo.AddQuota(req.ClientID, 1); restoreErr != nil {
			logger.WithError(restoreErr).Error("failed to restore quota after create failure", "client_id", req.ClientID)
		}
		return nil, apperrors.InternalError(err)
	}

	return app, nil
}

func (s *applicationService) GetByID(id string) (*models.JobApplication, error) {
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.NewNotFoundError("application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *applicationService) List(criteria repositories.ApplicationFilter) ([]models.JobApplication, int64, error) {
	apps, total, err := s.appRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return apps, total, nil
}

func (s *applicationService) Update(id string, req *dto.UpdateApplicationRequest) (*models.JobApplication, error) {
	app, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.JobTitle != "" {
		app.JobTitle = req.JobTitle
	}
	if req.Company != "" {
		app.Company = req.Company
	}
	if req.Location != "" {
		app.Location = req.Location
	}
	if req.JobLink != "" {
		app.JobLink = req.JobLink
	}
	if req.Notes != "" {
		app.Notes = req.Notes
	}
	if req.DateApplied != "" {
		parsed, err := time.Parse("2006-01-02", req.DateApplied)
		if err != nil {
			return nil, apperrors.NewBadRequestError("date_applied must be YYYY-MM-DD")
		}
		app.DateApplied = parsed
	}

	if err := s.appRepo.Update(app); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

// UpdateStatus sets the flat status label. Any status may be set from any
// other; there is no transition graph.
func (s *applicationService) UpdateStatus(id string, status models.ApplicationStatus) (*models.JobApplication, error) {
	if !models.IsValidApplicationStatus(status) {
		return nil, apperrors.New(apperrors.CodeInvalidStatus, "application", "Unknown application status", 400)
	}

	if err := s.appRepo.UpdateStatus(id, status); err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.NewNotFoundError("application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(id)
}

// BulkUpdateStatus applies one target status to many applications as a
// sequence of independent single-item updates. A failure on one item never
// blocks or rolls back the others; the caller gets (succeeded, failed).
func (s *applicationService) BulkUpdateStatus(req *dto.BulkStatusUpdateRequest) *dto.BulkStatusUpdateResult {
	status := models.ApplicationStatus(req.Status)
	result := &dto.BulkStatusUpdateResult{}

	for _, id := range req.ApplicationIDs {
		if err := s.appRepo.UpdateStatus(id, status); err != nil {
			result.Failed++
			result.FailedIDs = append(result.FailedIDs, id)
			logger.WithError(err).Warn("bulk status update item failed", "application_id", id)
			continue
		}
		result.Succeeded++
	}

	return result
}

func (s *applicationService) Delete(id string) error {
	if err := s.appRepo.Delete(id); err != nil {
		if err == repositories.ErrApplicationNotFound {
			return apperrors.NewNotFoundError("application", "Application not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// truncateToDate drops the time component, keeping a pure calendar date.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
