package models

type UserStatus string
type UserRole string
type ApplicationStatus string
type PayoutStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleClient   UserRole = "client"
	UserRoleEmployee UserRole = "employee"
	UserRoleAdmin    UserRole = "admin"

	// JobApplication.Status is a flat categorical label. Any value may be
	// set from any other; the only invariant is membership in this set.
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusScreening ApplicationStatus = "screening"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusOffer     ApplicationStatus = "offer"
	ApplicationStatusHired     ApplicationStatus = "hired"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusOnHold    ApplicationStatus = "on_hold"

	PayoutStatusPending PayoutStatus = "pending"
	PayoutStatusPaid    PayoutStatus = "paid"
)

// AllApplicationStatuses is the closed set accepted at the write boundary.
var AllApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusScreening,
	ApplicationStatusInterview,
	ApplicationStatusOffer,
	ApplicationStatusHired,
	ApplicationStatusRejected,
	ApplicationStatusOnHold,
}

// IsValidApplicationStatus reports whether s belongs to the closed status set.
func IsValidApplicationStatus(s ApplicationStatus) bool {
	for _, v := range AllApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}
