package models

import (
	"time"

	"gorm.io/datatypes"
)

// JobApplication is one unit of work an employee performed for a client.
type JobApplication struct {
	BaseModel
	ClientID   string            `gorm:"type:uuid;not null;index" json:"client_id"`
	EmployeeID string            `gorm:"type:uuid;not null;index" json:"employee_id"`
	Status     ApplicationStatus `gorm:"type:varchar(20);not null;default:'applied';index" json:"status"`

	// DateApplied is a calendar date; the time component is always midnight UTC.
	DateApplied time.Time `gorm:"type:date;not null;index" json:"date_applied"`

	// Display-only fields, never used in aggregation.
	JobTitle string         `json:"job_title"`
	Company  string         `json:"company"`
	Location string         `json:"location"`
	JobLink  string         `json:"job_link"`
	Notes    string         `json:"notes"`
	Metadata datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
}
