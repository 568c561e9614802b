package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hexforge/catan-go/internal/model"
	"github.com/hexforge/catan-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID
	emailIndex    map[string]model.UserID
	games         map[model.GameID]*model.Game

	nextUserID   int64
	nextGameID   int64
	nextPlayerID int64
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
		emailIndex:    make(map[string]model.UserID),
		games:         make(map[model.GameID]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernameIndex[user.Username]; taken {
		return model.ErrUsernameTaken
	}
	if _, taken := s.emailIndex[user.Email]; taken {
		return model.ErrEmailTaken
	}

	s.nextUserID++
	user.ID = model.UserID(s.nextUserID)
	s.users[user.ID] = user
	s.usernameIndex[user.Username] = user.ID
	s.emailIndex[user.Email] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) ListUsers(ctx context.Context, params storage.ListParams) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return paginate(users, params), nil
}

// Game operations

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextGameID++
	game.ID = model.GameID(s.nextGameID)
	for i := range game.Players {
		s.nextPlayerID++
		game.Players[i].ID = s.nextPlayerID
		game.Players[i].GameID = game.ID
	}
	s.games[game.ID] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) ListGames(ctx context.Context, params storage.GameListParams) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]*model.Game, 0, len(s.games))
	for _, g := range s.games {
		if params.Status != nil && g.Status != *params.Status {
			continue
		}
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return paginate(games, params.ListParams), nil
}

func (s *Storage) UpdateGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[game.ID]; !ok {
		return model.ErrGameNotFound
	}
	s.games[game.ID] = game
	return nil
}

func (s *Storage) AddPlayer(ctx context.Context, gameID model.GameID, userID model.UserID) (*model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.games[gameID]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	if _, ok := s.users[userID]; !ok {
		return nil, model.ErrUserNotFound
	}
	if game.Status != model.GameStatusWaiting {
		return nil, model.ErrGameNotWaiting
	}
	if game.HasPlayer(userID) {
		return nil, model.ErrPlayerAlreadyInGame
	}
	if game.IsFull() {
		return nil, model.ErrGameFull
	}

	now := time.Now()
	s.nextPlayerID++
	game.Players = append(game.Players, model.GamePlayer{
		ID:        s.nextPlayerID,
		GameID:    gameID,
		PlayerID:  userID,
		Position:  len(game.Players) + 1,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return game, nil
}

// Ping always succeeds for in-memory storage
func (s *Storage) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op for in-memory storage
func (s *Storage) Close() error {
	return nil
}

// paginate applies skip/limit to a sorted slice
func paginate[T any](items []T, params storage.ListParams) []T {
	if params.Skip >= len(items) {
		return []T{}
	}
	items = items[params.Skip:]
	if params.Limit > 0 && params.Limit < len(items) {
		items = items[:params.Limit]
	}
	return items
}
