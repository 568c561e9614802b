package handler

import (
	"net/http"

	"github.com/hexforge/catan-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewValidationError creates a 422 validation error
func NewValidationError(message string) error {
	return apierr.NewValidationError(message)
}
