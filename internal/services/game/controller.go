package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hexforge/catan-go/internal/dependencies/clock"
	"github.com/hexforge/catan-go/internal/model"
	"github.com/hexforge/catan-go/internal/storage"
)

// MaxNameLength matches the name column size in the games table
const MaxNameLength = 100

// UpdateParams carries the mutable game fields for a partial update.
// Nil fields are left unchanged.
type UpdateParams struct {
	Name            *string
	Status          *model.GameStatus
	CurrentPlayerID *int64
}

// Controller manages game rows and their lifecycle
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new game Controller
func NewController(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// CreateGame opens a new game in waiting status with an empty player list
func (c *Controller) CreateGame(ctx context.Context, name string, maxPlayers int) (*model.Game, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.NewValidationError("name must not be empty")
	}
	if len(name) > MaxNameLength {
		return nil, model.NewValidationError("name must be at most %d characters", MaxNameLength)
	}
	if maxPlayers < model.MinPlayersToStart || maxPlayers > model.DefaultMaxPlayers {
		return nil, model.NewValidationError("max_players must be between %d and %d",
			model.MinPlayersToStart, model.DefaultMaxPlayers)
	}

	now := c.clock.Now()
	game := &model.Game{
		Name:       name,
		Status:     model.GameStatusWaiting,
		MaxPlayers: maxPlayers,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storage.CreateGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.Int64("game_id", int64(game.ID)),
		slog.String("name", game.Name),
		slog.Int("max_players", game.MaxPlayers),
	)

	return game, nil
}

// GetGame retrieves a game by ID with its player list
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, id)
}

// ListGames returns a page of games, optionally filtered by status
func (c *Controller) ListGames(ctx context.Context, skip, limit int, status *model.GameStatus) ([]*model.Game, error) {
	params := storage.GameListParams{
		ListParams: storage.ListParams{Skip: skip, Limit: limit},
		Status:     status,
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.storage.ListGames(ctx, params)
}

// UpdateGame applies a partial update. Status changes must follow the
// transition table; setting the current status again is a no-op.
func (c *Controller) UpdateGame(ctx context.Context, id model.GameID, params UpdateParams) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, model.NewValidationError("name must not be empty")
		}
		if len(name) > MaxNameLength {
			return nil, model.NewValidationError("name must be at most %d characters", MaxNameLength)
		}
		game.Name = name
	}

	if params.Status != nil && *params.Status != game.Status {
		if !game.Status.CanTransitionTo(*params.Status) {
			return nil, model.ErrInvalidStatusTransition
		}
		game.Status = *params.Status
	}

	if params.CurrentPlayerID != nil {
		game.CurrentPlayerID = params.CurrentPlayerID
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.UpdateGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game updated",
		slog.Int64("game_id", int64(game.ID)),
		slog.String("status", string(game.Status)),
	)

	return game, nil
}

// AddPlayer seats a user in a waiting game. The storage layer performs the
// capacity, duplicate and status checks atomically.
func (c *Controller) AddPlayer(ctx context.Context, gameID model.GameID, userID model.UserID) (*model.Game, error) {
	game, err := c.storage.AddPlayer(ctx, gameID, userID)
	if err != nil {
		return nil, err
	}

	c.logger.Info("player joined game",
		slog.Int64("game_id", int64(gameID)),
		slog.Int64("user_id", int64(userID)),
		slog.Int("player_count", game.PlayerCount()),
	)

	return game, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, name string, maxPlayers int) (*model.Game, error)
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGames(ctx context.Context, skip, limit int, status *model.GameStatus) ([]*model.Game, error)
	UpdateGame(ctx context.Context, id model.GameID, params UpdateParams) (*model.Game, error)
	AddPlayer(ctx context.Context, gameID model.GameID, userID model.UserID) (*model.Game, error)
}

var _ ControllerInterface = (*Controller)(nil)
