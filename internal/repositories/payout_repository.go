package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"aplyease_backend/internal/models"
)

var ErrPayoutNotFound = errors.New("payout not found")

type PayoutRepository interface {
	Create(payout *models.EmployeePayout) error
	FindByID(id string) (*models.EmployeePayout, error)
	FindByYear(year int) ([]models.EmployeePayout, error)
	FindByEmployee(employeeID string, limit, offset int) ([]models.EmployeePayout, error)
	MarkPaid(id string) error
	SumByMonth(year int) ([12]int64, error)
}

type PayoutRepositoryImpl struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) PayoutRepository {
	return &PayoutRepositoryImpl{db: db}
}

func (r *PayoutRepositoryImpl) Create(payout *models.EmployeePayout) error {
	return r.db.Create(payout).Error
}

func (r *PayoutRepositoryImpl) FindByID(id string) (*models.EmployeePayout, error) {
	var payout models.EmployeePayout
	err := r.db.First(&payout, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPayoutNotFound
		}
		return nil, err
	}
	return &payout, nil
}

func (r *PayoutRepositoryImpl) FindByYear(year int) ([]models.EmployeePayout, error) {
	var payouts []models.EmployeePayout
	err := r.db.Where("period_year = ?", year).
		Order("period_month ASC").Find(&payouts).Error
	return payouts, err
}

func (r *PayoutRepositoryImpl) FindByEmployee(employeeID string, limit, offset int) ([]models.EmployeePayout, error) {
	var payouts []models.EmployeePayout
	err := r.db.Where("employee_id = ?", employeeID).
		Order("period_year DESC, period_month DESC").
		Limit(limit).Offset(offset).Find(&payouts).Error
	return payouts, err
}

func (r *PayoutRepositoryImpl) MarkPaid(id string) error {
	now := time.Now()
	result := r.db.Model(&models.EmployeePayout{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     models.PayoutStatusPaid,
		"paid_at":    &now,
		"updated_at": now,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPayoutNotFound
	}
	return nil
}

// SumByMonth returns the payout total in cents for each month of the year.
func (r *PayoutRepositoryImpl) SumByMonth(year int) ([12]int64, error) {
	type monthSum struct {
		PeriodMonth int
		Total       int64
	}

	var sums [12]int64
	var rows []monthSum

	err := r.db.Model(&models.EmployeePayout{}).
		Select("period_month, COALESCE(SUM(amount_cents), 0) as total").
		Where("period_year = ?", year).
		Group("period_month").
		Find(&rows).Error
	if err != nil {
		return sums, err
	}

	for _, row := range rows {
		if row.PeriodMonth >= 1 && row.PeriodMonth <= 12 {
			sums[row.PeriodMonth-1] = row.Total
		}
	}
	return sums, nil
}
