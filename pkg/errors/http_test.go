package errors

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusCode_Taxonomy(t *testing.T) {
	cases := map[string]struct {
		err  error
		want int
	}{
		"validation":    {NewValidationError("Name and email are required", nil), StatusBadRequest},
		"configuration": {NewConfigurationError("Database not configured", nil), StatusInternalServerError},
		"duplicate":     {NewDuplicateEmailError("Email already registered", nil), StatusConflict},
		"backend":       {NewBackendFailureError("Failed to save entry", "500", "boom", nil), StatusInternalServerError},
		"wrapped":       {fmt.Errorf("outer: %w", NewDuplicateEmailError("dup", nil)), StatusConflict},
		"plain":         {fmt.Errorf("something"), StatusInternalServerError},
		"nil":           {nil, StatusInternalServerError},
		"invalid":       {NewInvalidRequestError("Invalid request body", nil), StatusBadRequest},
		"method":        {NewAppError(ErrorTypeMethodNotAllowed, "Method not allowed", nil), StatusMethodNotAllowed},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatusCode(tc.err))
		})
	}
}

func TestGetHumanReadableMessage_DoesNotLeakInternalErrors(t *testing.T) {
	assert.Equal(t, "Internal server error", GetHumanReadableMessage(fmt.Errorf("pq: password authentication failed")))
	assert.Equal(t, "Email already registered", GetHumanReadableMessage(NewDuplicateEmailError("Email already registered", nil)))
}

func TestBackendDetails(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NewBackendFailureError("Failed to add entry", "404", "Requested entity was not found.", nil))

	code, detail := BackendDetails(err)
	assert.Equal(t, "404", code)
	assert.Equal(t, "Requested entity was not found.", detail)

	code, detail = BackendDetails(fmt.Errorf("plain"))
	assert.Empty(t, code)
	assert.Empty(t, detail)
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, IsDuplicateKeyError(fmt.Errorf("UNIQUE constraint failed: waitlist_entries.email")))
	assert.True(t, IsDuplicateKeyError(fmt.Errorf("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)")))
	assert.False(t, IsDuplicateKeyError(fmt.Errorf("connection refused")))
	assert.False(t, IsDuplicateKeyError(nil))
}

type formatterModel struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,max=5"`
}

func TestFormatValidationErrors_UsesJSONFieldNames(t *testing.T) {
	err := validator.New().Struct(&formatterModel{Email: "toolong@example.com"})
	require.Error(t, err)

	out := FormatValidationErrors(err, &formatterModel{})
	require.Len(t, out, 2)
	assert.Equal(t, "name", out[0].Field)
	assert.Equal(t, "This field is required", out[0].Message)
	assert.Equal(t, "email", out[1].Field)
	assert.Equal(t, "Must not exceed 5 characters", out[1].Message)
}

func TestFormatValidationErrors_TypeMismatch(t *testing.T) {
	var m formatterModel
	err := json.Unmarshal([]byte(`{"name": 42}`), &m)
	require.Error(t, err)

	out := FormatValidationErrors(err, &m)
	require.Len(t, out, 1)
	assert.Equal(t, "name", out[0].Field)
	assert.Contains(t, out[0].Message, "Invalid type for field name")
}
