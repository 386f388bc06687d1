package types

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	apperrors "github.com/killallgit/vidcode-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target string, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSendError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", apperrors.NotFound("project", "demo"), http.StatusNotFound, "NOT_FOUND"},
		{"validation", apperrors.ValidationError("index", "out of bounds"), http.StatusBadRequest, "VALIDATION"},
		{"missing field", apperrors.MissingFieldError("coder"), http.StatusBadRequest, "MISSING_FIELD"},
		{"conflict", apperrors.AlreadyExists("project", "demo"), http.StatusConflict, "ALREADY_EXISTS"},
		{"storage", apperrors.StorageError("read catalog", errors.New("io")), http.StatusInternalServerError, "STORAGE"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext("GET", "/", "")
			SendError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestSendError_WrappedAppError(t *testing.T) {
	c, w := newContext("GET", "/", "")
	err := errors.Join(errors.New("context"), apperrors.NotFound("coder", "ann"))
	SendError(c, err)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "coder", resp.Details["resource"])
}

func TestParseUintParam(t *testing.T) {
	c, w := newContext("GET", "/", "")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := ParseUintParam(c, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext("GET", "/", "")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, ok = ParseUintParam(c, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBindJSONOrError(t *testing.T) {
	var target struct {
		Name string `json:"name"`
	}

	c, _ := newContext("POST", "/", `{"name":"demo"}`)
	assert.True(t, BindJSONOrError(c, &target))
	assert.Equal(t, "demo", target.Name)

	c, w := newContext("POST", "/", `{"name":`)
	assert.False(t, BindJSONOrError(c, &target))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, w).Error)
}

func TestSendAttachment(t *testing.T) {
	c, w := newContext("GET", "/", "")
	SendAttachment(c, "demo_results.csv", "text/csv", []byte("a,b\n"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="demo_results.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "a,b\n", w.Body.String())
}
