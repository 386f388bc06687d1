package types

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/killallgit/vidcode-api/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint
// Returns the parsed value and sends error response if parsing fails
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(paramName), 10, 32)
	if err != nil {
		SendError(c, apperrors.ValidationError(paramName, "must be a positive integer"))
		return 0, false
	}
	return uint(value), true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInvalidInput, "invalid request body").
			WithDetail("reason", err.Error()))
		return false
	}
	return true
}

// SendError maps err to its HTTP status and writes the error envelope.
// Errors that are not AppErrors are reported as internal errors.
func SendError(c *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.Wrap(err, apperrors.ErrCodeInternal, "internal server error")
	}
	status := appErr.GetHTTPCode()

	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("code", string(appErr.Code)).
			Msg("request failed")
	}

	c.JSON(status, ErrorResponse{
		Status:  StatusError,
		Error:   string(appErr.Code),
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	SendError(c, apperrors.New(apperrors.ErrCodeInvalidInput, message))
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	SendError(c, apperrors.New(apperrors.ErrCodeNotFound, message))
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	SendError(c, apperrors.New(apperrors.ErrCodeInternal, message))
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// SendAttachment sends data as a file download
func SendAttachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}
