package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusPayload struct {
	Status string `json:"status" validate:"required,appstatus"`
}

func TestValidate_AppStatusRule(t *testing.T) {
	t.Parallel()

	v := New()

	for _, status := range []string{"applied", "screening", "interview", "offer", "hired", "rejected", "on_hold"} {
		assert.NoError(t, v.Validate(&statusPayload{Status: status}), status)
	}

	err := v.Validate(&statusPayload{Status: "ghosted"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "status")
	assert.Equal(t, "Must be a valid application status", vErr.Errors["status"])
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	v := New()

	type payload struct {
		FullName string `json:"full_name" validate:"required"`
	}

	err := v.Validate(&payload{})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "full_name")
}
