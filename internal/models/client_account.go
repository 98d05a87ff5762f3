package models

// ClientAccount holds the quota and billing state for one paying client.
// Money is always stored in integer minor units (cents), never floats.
type ClientAccount struct {
	BaseModel
	UserID string `gorm:"not null;uniqueIndex" json:"user_id"`

	// ApplicationsRemaining is the paid quota counter. It is decremented
	// with a single conditional UPDATE (see ClientRepository.DecrementQuota)
	// so concurrent submissions cannot lose updates.
	ApplicationsRemaining int `gorm:"not null;default:0" json:"applications_remaining"`

	AmountPaidCents int64 `gorm:"not null;default:0" json:"amount_paid_cents"`
	AmountDueCents  int64 `gorm:"not null;default:0" json:"amount_due_cents"`

	// Relations
	User         *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Applications []JobApplication `gorm:"foreignKey:ClientID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
