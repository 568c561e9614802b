package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hexforge/catan-go/internal/model"
	"github.com/hexforge/catan-go/internal/storage"
)

// maxTxRetries bounds optimistic retries when the watched game key changes
// under a concurrent join
const maxTxRetries = 5

// Storage is a Redis-backed implementation of the storage interface. Users
// and games are stored as whole JSON documents; sorted sets keyed by ID give
// ordered listings.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ping verifies the Redis connection is alive
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	id, err := s.client.Incr(ctx, userSeqKey()).Result()
	if err != nil {
		return err
	}
	user.ID = model.UserID(id)

	// SETNX on the index keys doubles as the uniqueness check
	ok, err := s.client.SetNX(ctx, usernameIndexKey(user.Username), id, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrUsernameTaken
	}

	ok, err = s.client.SetNX(ctx, emailIndexKey(user.Email), id, 0).Result()
	if err != nil || !ok {
		// Release the username claim so the name stays available
		s.client.Del(ctx, usernameIndexKey(user.Username))
		if err != nil {
			return err
		}
		return model.ErrEmailTaken
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(user.ID), data, 0)
	pipe.ZAdd(ctx, usersZSetKey(), redis.Z{Score: float64(id), Member: id})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) ListUsers(ctx context.Context, params storage.ListParams) ([]*model.User, error) {
	ids, err := s.zrangePage(ctx, usersZSetKey(), params)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.User{}, nil
	}

	keys := make([]string, len(ids))
	for i, idStr := range ids {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad user id %q in index: %w", idStr, err)
		}
		keys[i] = userKey(model.UserID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var user model.User
		if err := json.Unmarshal([]byte(val.(string)), &user); err != nil {
			continue // Skip invalid data
		}
		users = append(users, &user)
	}
	return users, nil
}

// Game operations

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) error {
	id, err := s.client.Incr(ctx, gameSeqKey()).Result()
	if err != nil {
		return err
	}
	game.ID = model.GameID(id)

	for i := range game.Players {
		pid, err := s.client.Incr(ctx, playerSeqKey()).Result()
		if err != nil {
			return err
		}
		game.Players[i].ID = pid
		game.Players[i].GameID = game.ID
	}

	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, gameKey(game.ID), data, 0)
	pipe.ZAdd(ctx, gamesZSetKey(), redis.Z{Score: float64(id), Member: id})
	pipe.ZAdd(ctx, gamesByStatusKey(game.Status), redis.Z{Score: float64(id), Member: id})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) ListGames(ctx context.Context, params storage.GameListParams) ([]*model.Game, error) {
	zkey := gamesZSetKey()
	if params.Status != nil {
		zkey = gamesByStatusKey(*params.Status)
	}

	ids, err := s.zrangePage(ctx, zkey, params.ListParams)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Game{}, nil
	}

	keys := make([]string, len(ids))
	for i, idStr := range ids {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad game id %q in index: %w", idStr, err)
		}
		keys[i] = gameKey(model.GameID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	games := make([]*model.Game, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var game model.Game
		if err := json.Unmarshal([]byte(val.(string)), &game); err != nil {
			continue // Skip invalid data
		}
		games = append(games, &game)
	}
	return games, nil
}

func (s *Storage) UpdateGame(ctx context.Context, game *model.Game) error {
	// Read the stored document to move the status index if needed
	data, err := s.client.Get(ctx, gameKey(game.ID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ErrGameNotFound
		}
		return err
	}
	var old model.Game
	if err := json.Unmarshal(data, &old); err != nil {
		return err
	}

	newData, err := json.Marshal(game)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, gameKey(game.ID), newData, 0)
	if old.Status != game.Status {
		pipe.ZRem(ctx, gamesByStatusKey(old.Status), int64(game.ID))
		pipe.ZAdd(ctx, gamesByStatusKey(game.Status), redis.Z{
			Score: float64(game.ID), Member: int64(game.ID),
		})
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) AddPlayer(ctx context.Context, gameID model.GameID, userID model.UserID) (*model.Game, error) {
	// Optimistic WATCH transaction: if another join rewrites the game
	// between our read and EXEC, the tx fails and we retry against the
	// fresh document
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		var out *model.Game
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, gameKey(gameID)).Bytes()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					return model.ErrGameNotFound
				}
				return err
			}
			var game model.Game
			if err := json.Unmarshal(data, &game); err != nil {
				return err
			}

			exists, err := tx.Exists(ctx, userKey(userID)).Result()
			if err != nil {
				return err
			}
			if exists == 0 {
				return model.ErrUserNotFound
			}

			if game.Status != model.GameStatusWaiting {
				return model.ErrGameNotWaiting
			}
			if game.HasPlayer(userID) {
				return model.ErrPlayerAlreadyInGame
			}
			if game.IsFull() {
				return model.ErrGameFull
			}

			seatID, err := tx.Incr(ctx, playerSeqKey()).Result()
			if err != nil {
				return err
			}
			now := time.Now()
			game.Players = append(game.Players, model.GamePlayer{
				ID:        seatID,
				GameID:    gameID,
				PlayerID:  userID,
				Position:  len(game.Players) + 1,
				CreatedAt: now,
				UpdatedAt: now,
			})

			newData, err := json.Marshal(&game)
			if err != nil {
				return err
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, gameKey(gameID), newData, 0)
				return nil
			})
			if err != nil {
				return err
			}
			out = &game
			return nil
		}, gameKey(gameID))

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	return nil, fmt.Errorf("adding player to game %d: too many concurrent joins", gameID)
}

// zrangePage reads one page of IDs from a sorted set
func (s *Storage) zrangePage(ctx context.Context, key string, params storage.ListParams) ([]string, error) {
	start := int64(params.Skip)
	stop := int64(-1)
	if params.Limit > 0 {
		stop = start + int64(params.Limit) - 1
	}
	return s.client.ZRange(ctx, key, start, stop).Result()
}
