package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")

	// Game errors
	ErrGameNotFound            = errors.New("game not found")
	ErrGameFull                = errors.New("game is full")
	ErrPlayerAlreadyInGame     = errors.New("player is already in game")
	ErrInvalidStatus           = errors.New("invalid game status")
	ErrInvalidStatusTransition = errors.New("invalid game status transition")

	// Play errors
	ErrGameNotWaiting     = errors.New("game is not waiting for players")
	ErrGameNotInProgress  = errors.New("game is not in progress")
	ErrGameNotStarted     = errors.New("game has not been started")
	ErrNotEnoughPlayers   = errors.New("at least two players are required to start")
	ErrWrongPhase         = errors.New("action not allowed in current phase")
	ErrVertexNotFound     = errors.New("vertex not found")
	ErrEdgeNotFound       = errors.New("no edge between these vertices")
	ErrHexNotFound        = errors.New("hex not found")
	ErrTradeOfferNotFound = errors.New("trade offer not found")
	ErrDevCardDeckEmpty   = errors.New("development card deck is empty")
	ErrDevCardNotHeld     = errors.New("player does not hold that development card")
	ErrUnknownDevCard     = errors.New("unknown development card type")
	ErrUnknownSetupAction = errors.New("unknown setup action")
)

// ValidationError reports a malformed or out-of-range input value
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a ValidationError with a formatted reason
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is an input validation failure
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RuleError reports a game-rule violation with a player-facing reason.
// Kept distinct from the sentinels above so handlers can map every rule
// rejection to a conflict response without enumerating each rule.
type RuleError struct {
	Reason string
}

func (e *RuleError) Error() string {
	return e.Reason
}

// NewRuleError creates a RuleError with a formatted reason
func NewRuleError(format string, args ...any) *RuleError {
	return &RuleError{Reason: fmt.Sprintf(format, args...)}
}

// IsRuleError reports whether err is a game-rule violation
func IsRuleError(err error) bool {
	var re *RuleError
	return errors.As(err, &re)
}
