package errorx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Category represents different categories of request errors
type Category string

const (
	CategoryValidation    Category = "validation"
	CategoryAuthorization Category = "authorization"
	CategoryNotFound      Category = "not_found"
	CategoryConflict      Category = "conflict"
	CategoryInternal      Category = "internal"
)

// APIError represents a structured API error
type APIError struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Category   Category `json:"category"`
	HTTPStatus int      `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Category, e.Message)
}

// Validation returns a 400 error for missing or malformed input.
func Validation(message string) *APIError {
	return &APIError{
		Code:       "E1001",
		Message:    message,
		Category:   CategoryValidation,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Authorization returns a 403 error for role mismatches.
func Authorization(message string) *APIError {
	return &APIError{
		Code:       "E3001",
		Message:    message,
		Category:   CategoryAuthorization,
		HTTPStatus: http.StatusForbidden,
	}
}

// NotFound returns a 404 error for absent entities.
func NotFound(message string) *APIError {
	return &APIError{
		Code:       "E4001",
		Message:    message,
		Category:   CategoryNotFound,
		HTTPStatus: http.StatusNotFound,
	}
}

// Conflict returns an error for duplicate submissions. These endpoints
// report duplicates as 400 rather than 409 to keep the legacy contract.
func Conflict(message string) *APIError {
	return &APIError{
		Code:       "E4091",
		Message:    message,
		Category:   CategoryConflict,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Internal returns a 500 error with a client-safe message.
func Internal(message string) *APIError {
	return &APIError{
		Code:       "E5001",
		Message:    message,
		Category:   CategoryInternal,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// Respond writes the error as a JSON response. Errors that are not APIErrors
// are masked behind a generic 500 so nothing crosses the request boundary
// unformatted.
func Respond(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.HTTPStatus, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred."})
}
