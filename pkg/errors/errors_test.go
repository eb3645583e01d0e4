package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
	}{
		{Validation("missing field"), http.StatusBadRequest},
		{NotFound("patient"), http.StatusNotFound},
		{Conflict("duplicate"), http.StatusConflict},
		{Unauthorized("invalid credentials"), http.StatusUnauthorized},
		{Store(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.HTTPStatus())
	}
}

func TestStoreErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Store(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "internal server error", err.Message)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NotFound("doctor"))

	assert.True(t, IsCode(err, ErrNotFound))
	assert.False(t, IsCode(err, ErrConflict))
	assert.False(t, IsCode(errors.New("plain"), ErrNotFound))
}
