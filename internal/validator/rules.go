package validator

import (
	"github.com/go-playground/validator/v10"

	"aplyease_backend/internal/models"
)

// registerCustomRules wires the application-specific validation tags.
func registerCustomRules(v *validator.Validate) error {
	// appstatus enforces membership in the closed JobApplication status set.
	// Invalid statuses are rejected here, at the write boundary; the
	// aggregator never sees them.
	return v.RegisterValidation("appstatus", func(fl validator.FieldLevel) bool {
		return models.IsValidApplicationStatus(models.ApplicationStatus(fl.Field().String()))
	})
}
