package models

import "time"

// EmployeePayout is a payout owed or paid to an application specialist for
// one calendar month. Amounts are integer cents.
type EmployeePayout struct {
	BaseModel
	EmployeeID  string       `gorm:"type:uuid;not null;index" json:"employee_id"`
	AmountCents int64        `gorm:"not null" json:"amount_cents"`
	PeriodMonth int          `gorm:"not null" json:"period_month"` // 1..12
	PeriodYear  int          `gorm:"not null;index" json:"period_year"`
	Status      PayoutStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaidAt      *time.Time   `json:"paid_at,omitempty"`

	// Relations
	Employee *User `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}
