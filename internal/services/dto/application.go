package dto

type CreateApplicationRequest struct {
	ClientID    string `json:"client_id" validate:"required,uuid4"`
	JobTitle    string `json:"job_title" validate:"required,min=2"`
	Company     string `json:"company" validate:"required,min=1"`
	Location    string `json:"location"`
	JobLink     string `json:"job_link" validate:"omitempty,url"`
	Notes       string `json:"notes"`
	DateApplied string `json:"date_applied" validate:"omitempty,datetime=2006-01-02"`
	Status      string `json:"status" validate:"omitempty,appstatus"`
}

type UpdateApplicationRequest struct {
	JobTitle    string `json:"job_title" validate:"omitempty,min=2"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	JobLink     string `json:"job_link" validate:"omitempty,url"`
	Notes       string `json:"notes"`
	DateApplied string `json:"date_applied" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,appstatus"`
}

type BulkStatusUpdateRequest struct {
	ApplicationIDs []string `json:"application_ids" validate:"required,min=1,dive,uuid4"`
	Status         string   `json:"status" validate:"required,appstatus"`
}

// BulkStatusUpdateResult reports partial success: each item is updated
// independently and a failure on one never rolls back the others.
type BulkStatusUpdateResult struct {
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	FailedIDs []string `json:"failed_ids,omitempty"`
}
