package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"aplyease_backend/internal/models"
)

var ErrApplicationNotFound = errors.New("job application not found")

type ApplicationFilter struct {
	ClientID   string
	EmployeeID string
	Status     models.ApplicationStatus
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	PageSize   int
}

type ApplicationRepository interface {
	Create(app *models.JobApplication) error
	FindByID(id string) (*models.JobApplication, error)
	FindByClient(clientID string) ([]models.JobApplication, error)
	FindWithFilter(criteria ApplicationFilter) ([]models.JobApplication, int64, error)
	Update(app *models.JobApplication) error
	UpdateStatus(id string, status models.ApplicationStatus) error
	Delete(id string) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.JobApplication) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

// FindByClient returns the full application history of one client, newest
// first. The aggregator consumes this as its immutable snapshot.
func (r *ApplicationRepositoryImpl) FindByClient(clientID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.Where("client_id = ?", clientID).
		Order("date_applied DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindWithFilter(criteria ApplicationFilter) ([]models.JobApplication, int64, error) {
	var apps []models.JobApplication
	query := r.db.Model(&models.JobApplication{})

	if criteria.ClientID != "" {
		query = query.Where("client_id = ?", criteria.ClientID)
	}
	if criteria.EmployeeID != "" {
		query = query.Where("employee_id = ?", criteria.EmployeeID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.DateFrom != nil {
		query = query.Where("date_applied >= ?", criteria.DateFrom)
	}
	if criteria.DateTo != nil {
		query = query.Where("date_applied <= ?", criteria.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("date_applied DESC").Limit(limit).Offset(offset).Find(&apps).Error
	return apps, total, err
}

func (r *ApplicationRepositoryImpl) Update(app *models.JobApplication) error {
	result := r.db.Model(app).Updates(map[string]interface{}{
		"status":       app.Status,
		"date_applied": app.DateApplied,
		"job_title":    app.JobTitle,
		"company":      app.Company,
		"location":     app.Location,
		"job_link":     app.JobLink,
		"notes":        app.Notes,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// UpdateStatus sets the flat status label on one application. There are no
// transition rules; membership in the status set is checked upstream.
func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.JobApplication{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.JobApplication{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
