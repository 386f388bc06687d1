package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("project", "demo"), http.StatusNotFound},
		{"already exists", AlreadyExists("project", "demo"), http.StatusConflict},
		{"validation", ValidationError("index", "out of range"), http.StatusBadRequest},
		{"missing field", MissingFieldError("coder"), http.StatusBadRequest},
		{"database", DatabaseError("query", fmt.Errorf("boom")), http.StatusInternalServerError},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("loading: %w", NotFound("coder", "ann")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPCode(tt.err))
		})
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", ValidationError("categories", "required"))

	assert.True(t, Is(err, ErrCodeValidation))
	assert.False(t, Is(err, ErrCodeNotFound))
	assert.Equal(t, ErrCodeValidation, GetCode(err))
	assert.Equal(t, ErrCodeInternal, GetCode(fmt.Errorf("plain")))
}

func TestAppError_Error(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := StorageError("save", cause)

	assert.Contains(t, err.Error(), "STORAGE")
	assert.Contains(t, err.Error(), "disk full")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "save", err.Details["operation"])
}
