package storage

import (
	"context"

	"github.com/hexforge/catan-go/internal/model"
)

// Pagination bounds for list operations
const (
	DefaultListLimit = 100
	MaxListLimit     = 100
)

// ListParams bounds offset pagination for list operations. Services validate
// user input before it reaches storage; backends apply the values as given,
// with Limit <= 0 meaning no limit.
type ListParams struct {
	Skip  int
	Limit int
}

// Validate rejects out-of-range pagination values
func (p ListParams) Validate() error {
	if p.Skip < 0 {
		return model.NewValidationError("skip must be non-negative")
	}
	if p.Limit < 1 || p.Limit > MaxListLimit {
		return model.NewValidationError("limit must be between 1 and %d", MaxListLimit)
	}
	return nil
}

// GameListParams adds the optional status filter for game listings
type GameListParams struct {
	ListParams
	Status *model.GameStatus
}

// Storage defines the interface for data persistence
type Storage interface {
	// User operations.
	// CreateUser assigns the ID and fails with ErrUsernameTaken or
	// ErrEmailTaken when another user already holds the value.
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	ListUsers(ctx context.Context, params ListParams) ([]*model.User, error)

	// Game operations.
	// Games come back with their player list populated in join order.
	CreateGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGames(ctx context.Context, params GameListParams) ([]*model.Game, error)
	UpdateGame(ctx context.Context, game *model.Game) error

	// AddPlayer seats the user in the game as a single atomic operation:
	// the waiting-status, capacity and duplicate checks and the position
	// assignment happen under one lock or transaction, so two concurrent
	// joins can never both take the last seat.
	AddPlayer(ctx context.Context, gameID model.GameID, userID model.UserID) (*model.Game, error)

	// Ping verifies the backend is reachable
	Ping(ctx context.Context) error

	// Close releases backend connections
	Close() error
}
