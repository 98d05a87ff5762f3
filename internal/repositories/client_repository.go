package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"aplyease_backend/internal/models"
)

var (
	ErrClientNotFound = errors.New("client account not found")
	ErrQuotaExhausted = errors.New("client has no applications remaining")
	ErrAccountExists  = errors.New("client account already exists")
)

type ClientRepository interface {
	Create(account *models.ClientAccount) error
	FindByUserID(userID string) (*models.ClientAccount, error)
	FindAll() ([]models.ClientAccount, error)
	UpdateBilling(userID string, amountPaidCents, amountDueCents int64) error
	AddQuota(userID string, count int) error
	DecrementQuota(userID string) error
}

type ClientRepositoryImpl struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &ClientRepositoryImpl{db: db}
}

func (r *ClientRepositoryImpl) Create(account *models.ClientAccount) error {
	var existing models.ClientAccount
	if err := r.db.Where("user_id = ?", account.UserID).First(&existing).Error; err == nil {
		return ErrAccountExists
	}
	return r.db.Create(account).Error
}

func (r *ClientRepositoryImpl) FindByUserID(userID string) (*models.ClientAccount, error) {
	var account models.ClientAccount
	err := r.db.First(&account, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *ClientRepositoryImpl) FindAll() ([]models.ClientAccount, error) {
	var accounts []models.ClientAccount
	err := r.db.Order("created_at ASC").Find(&accounts).Error
	return accounts, err
}

func (r *ClientRepositoryImpl) UpdateBilling(userID string, amountPaidCents, amountDueCents int64) error {
	result := r.db.Model(&models.ClientAccount{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"amount_paid_cents": amountPaidCents,
		"amount_due_cents":  amountDueCents,
		"updated_at":        time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *ClientRepositoryImpl) AddQuota(userID string, count int) error {
	result := r.db.Model(&models.ClientAccount{}).Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"applications_remaining": gorm.Expr("applications_remaining + ?", count),
			"updated_at":             time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

// DecrementQuota consumes one application from the client's quota as a
// single conditional UPDATE. Two concurrent submissions for the same client
// serialize at the database; the loser of the last slot gets
// ErrQuotaExhausted instead of silently overdrawing.
func (r *ClientRepositoryImpl) DecrementQuota(userID string) error {
	result := r.db.Model(&models.ClientAccount{}).
		Where("user_id = ? AND applications_remaining > 0", userID).
		Updates(map[string]interface{}{
			"applications_remaining": gorm.Expr("applications_remaining - 1"),
			"updated_at":             time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the account does not exist or the quota is spent.
		var account models.ClientAccount
		if err := r.db.First(&account, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			return err
		}
		return ErrQuotaExhausted
	}
	return nil
}
