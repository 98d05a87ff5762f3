package dto

type CreatePayoutRequest struct {
	EmployeeID  string `json:"employee_id" validate:"required,uuid4"`
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	PeriodMonth int    `json:"period_month" validate:"required,min=1,max=12"`
	PeriodYear  int    `json:"period_year" validate:"required,min=2000,max=2100"`
}
