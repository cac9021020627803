package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/logger"
)

// Error codes
const (
	// Validation errors
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeMissingField = "MISSING_FIELD"

	// Resource errors
	ErrCodeNotFound = "NOT_FOUND"

	// Service errors
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response. Only Message is
// guaranteed to be present in the response body, under the "error" key.
type APIError struct {
	Code    string `json:"-"`
	Message string `json:"error"`
	Details string `json:"message,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Status returns the HTTP status code for the error code
func (e *APIError) Status() int {
	switch e.Code {
	case ErrCodeInvalidInput, ErrCodeMissingField:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// Validation creates an APIError answered with 400
func Validation(message string) *APIError {
	return NewAPIError(ErrCodeInvalidInput, message)
}

// MissingField creates an APIError for absent required fields, answered with 400
func MissingField(message string) *APIError {
	return NewAPIError(ErrCodeMissingField, message)
}

// NotFound creates an APIError answered with 404
func NotFound(entity string) *APIError {
	return NewAPIError(ErrCodeNotFound, fmt.Sprintf("%s not found", entity))
}

// Predefined errors
var (
	ErrInvalidInput  = Validation("Invalid request body")
	ErrRouteNotFound = NewAPIError(ErrCodeNotFound, "Route not found")
)

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// HandlerFunc is a gin handler that reports failures through its return value.
type HandlerFunc func(c *gin.Context) error

// Handle adapts h to gin. An *APIError anywhere in the returned chain is
// answered with its own status and message. Any other error is logged and
// answered with 500 and failureMessage, never with the error text.
func Handle(failureMessage string, h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			RespondWithError(c, apiErr.Status(), apiErr)
			return
		}

		logger.FromContext(c.Request.Context()).WithError(err).Error(failureMessage)
		InternalError(c, failureMessage)
	}
}

// NotFoundRoute answers requests that matched no route
func NotFoundRoute(c *gin.Context) {
	RespondWithError(c, http.StatusNotFound, ErrRouteNotFound)
}

// Recovery converts a panic into the last-resort 500 response, which carries
// the panic text under "message".
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromContext(c.Request.Context()).WithField("panic", recovered).Error("Unhandled panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, &APIError{
			Code:    ErrCodeInternalError,
			Message: "Internal server error",
			Details: fmt.Sprint(recovered),
		})
	})
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, Validation(message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}
