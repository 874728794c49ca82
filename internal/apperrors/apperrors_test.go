package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "unknown login email", err: ErrUserNotFound, expectedStatus: http.StatusNotFound},
		{name: "wrong password", err: ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized},
		{name: "duplicate email", err: ErrEmailTaken, expectedStatus: http.StatusBadRequest},
		{name: "scoped task miss", err: ErrTaskNotFound, expectedStatus: http.StatusNotFound},
		{name: "dangling status reference", err: ErrStatusNotFound, expectedStatus: http.StatusBadRequest},
		{name: "wrapped sentinel still maps", err: fmt.Errorf("get task: %w", ErrTaskNotFound), expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := MapToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, he.StatusCode)
			env := he.Envelope()
			assert.True(t, env.Error)
			assert.NotEmpty(t, env.Message)
			assert.NotNil(t, env.MessageDetail)
		})
	}
}

func TestMapToHTTP_UnknownErrorKeepsDiagnostic(t *testing.T) {
	he := MapToHTTP(errors.New("dial tcp 127.0.0.1:3306: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, he.StatusCode)
	// the diagnostic is propagated, never a generic message alone
	assert.Equal(t, "dial tcp 127.0.0.1:3306: connection refused", he.Detail)
}
