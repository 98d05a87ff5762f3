package dto

type UpdateUserRequest struct {
	FullName string `json:"full_name" validate:"omitempty,min=2"`
	Status   string `json:"status" validate:"omitempty,oneof=pending active suspended"`
}

type UpdateBillingRequest struct {
	AmountPaidCents *int64 `json:"amount_paid_cents" validate:"omitempty,gte=0"`
	AmountDueCents  *int64 `json:"amount_due_cents" validate:"omitempty,gte=0"`
}

type AddQuotaRequest struct {
	Count int `json:"count" validate:"required,gt=0"`
}
