// Package apierr maps application errors onto the API's error envelope.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hexforge/catan-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Stable error codes. Clients branch on these, not on messages.
const (
	CodeValidationFailed = "validation_failed"
	CodeConflict         = "conflict"
	CodeUserNotFound     = "user_not_found"
	CodeGameNotFound     = "game_not_found"
	CodeInternalError    = "internal_error"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Already carries a status
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Malformed or out-of-range input
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeValidationFailed, ve.Error()}}
	}

	// Game rule violations all conflict with the current game state
	var re *model.RuleError
	if errors.As(err, &re) {
		return &httpError{http.StatusConflict, APIError{CodeConflict, re.Error()}}
	}

	switch {
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}

	case errors.Is(err, model.ErrUsernameTaken):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "Username already registered"}}
	case errors.Is(err, model.ErrEmailTaken):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "Email already registered"}}
	case errors.Is(err, model.ErrPlayerAlreadyInGame):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "Player is already in this game"}}
	case errors.Is(err, model.ErrGameFull):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "Game is full"}}
	case errors.Is(err, model.ErrInvalidStatusTransition):
		return &httpError{http.StatusConflict, APIError{CodeConflict, err.Error()}}

	case errors.Is(err, model.ErrGameNotWaiting):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "Game is not waiting for players"}}
	case errors.Is(err, model.ErrNotEnoughPlayers):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "At least two players are required to start"}}
	case errors.Is(err, model.ErrGameNotStarted):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "Game has not been started"}}
	case errors.Is(err, model.ErrGameNotInProgress):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "Game is not in progress"}}
	case errors.Is(err, model.ErrWrongPhase):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "Action not allowed in the current phase"}}
	case errors.Is(err, model.ErrDevCardDeckEmpty):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "Development card deck is empty"}}
	case errors.Is(err, model.ErrDevCardNotHeld):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "Player does not hold that development card"}}

	// Bad references inside an otherwise well-formed body
	case errors.Is(err, model.ErrVertexNotFound),
		errors.Is(err, model.ErrEdgeNotFound),
		errors.Is(err, model.ErrHexNotFound),
		errors.Is(err, model.ErrTradeOfferNotFound),
		errors.Is(err, model.ErrUnknownDevCard),
		errors.Is(err, model.ErrUnknownSetupAction),
		errors.Is(err, model.ErrInvalidStatus):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeValidationFailed, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewValidationError creates a 422 validation error with the given message
func NewValidationError(message string) error {
	return &httpError{http.StatusUnprocessableEntity, APIError{CodeValidationFailed, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
