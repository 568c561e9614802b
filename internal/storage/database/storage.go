package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hexforge/catan-go/internal/model"
	"github.com/hexforge/catan-go/internal/storage"
)

// Storage is a relational implementation of the storage interface backed by
// gorm. Production runs it against Postgres; tests run it against SQLite.
type Storage struct {
	db *gorm.DB
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// New opens a Postgres-backed storage using the given config. Schema
// migrations are not applied here; run RunMigrations first.
func New(cfg Config) (*Storage, error) {
	logLevel := gormlogger.Silent
	if cfg.LogQueries {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return &Storage{db: db}, nil
}

// NewWithDB wraps an already-open gorm connection. Tests use this with an
// in-memory SQLite database.
func NewWithDB(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

// AutoMigrate creates the schema from the row models. Tests use this instead
// of the SQL migrations, which are Postgres-specific.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&userRow{}, &gameRow{}, &gamePlayerRow{})
}

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	row := userToRow(user)
	row.ID = 0
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.whichUserConflict(ctx, user)
		}
		return fmt.Errorf("creating user: %w", err)
	}
	*user = *row.toModel()
	return nil
}

// whichUserConflict narrows a unique violation on users to the right
// sentinel. Username is checked first, matching the API's error precedence.
func (s *Storage) whichUserConflict(ctx context.Context, user *model.User) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&userRow{}).
		Where("username = ?", user.Username).Count(&count).Error; err == nil && count > 0 {
		return model.ErrUsernameTaken
	}
	return model.ErrEmailTaken
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	var row userRow
	if err := s.db.WithContext(ctx).First(&row, int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}
	return row.toModel(), nil
}

func (s *Storage) ListUsers(ctx context.Context, params storage.ListParams) ([]*model.User, error) {
	var rows []userRow
	q := s.db.WithContext(ctx).Order("id ASC").Offset(params.Skip)
	if params.Limit > 0 {
		q = q.Limit(params.Limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	users := make([]*model.User, 0, len(rows))
	for i := range rows {
		users = append(users, rows[i].toModel())
	}
	return users, nil
}

// Game operations

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) error {
	row, err := gameToRow(game)
	if err != nil {
		return err
	}
	row.ID = 0
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	game.ID = model.GameID(row.ID)
	game.CreatedAt = row.CreatedAt
	game.UpdatedAt = row.UpdatedAt
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	return s.loadGame(s.db.WithContext(ctx), id)
}

// loadGame fetches a game with its seats in join order. It runs on whatever
// handle it is given so transactions see their own writes.
func (s *Storage) loadGame(tx *gorm.DB, id model.GameID) (*model.Game, error) {
	var row gameRow
	err := tx.Preload("Players", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&row, int64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrGameNotFound
		}
		return nil, fmt.Errorf("getting game %d: %w", id, err)
	}
	return row.toModel()
}

func (s *Storage) ListGames(ctx context.Context, params storage.GameListParams) ([]*model.Game, error) {
	var rows []gameRow
	q := s.db.WithContext(ctx).Preload("Players", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Order("id ASC").Offset(params.Skip)
	if params.Limit > 0 {
		q = q.Limit(params.Limit)
	}
	if params.Status != nil {
		q = q.Where("status = ?", string(*params.Status))
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}
	games := make([]*model.Game, 0, len(rows))
	for i := range rows {
		game, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, nil
}

func (s *Storage) UpdateGame(ctx context.Context, game *model.Game) error {
	row, err := gameToRow(game)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing gameRow
		if err := tx.Select("id").First(&existing, row.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ErrGameNotFound
			}
			return fmt.Errorf("checking game %d: %w", row.ID, err)
		}
		// Save writes every column, including nulls for current_player_id
		// and state, which Updates with a struct would silently skip.
		if err := tx.Save(row).Error; err != nil {
			return fmt.Errorf("updating game %d: %w", row.ID, err)
		}
		for i := range game.Players {
			p := &game.Players[i]
			if p.ID == 0 {
				continue
			}
			err := tx.Model(&gamePlayerRow{}).Where("id = ?", p.ID).
				Update("victory_points", p.VictoryPoints).Error
			if err != nil {
				return fmt.Errorf("updating seat %d: %w", p.ID, err)
			}
		}
		return nil
	})
}

func (s *Storage) AddPlayer(ctx context.Context, gameID model.GameID, userID model.UserID) (*model.Game, error) {
	var out *model.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		// SQLite serializes writers on its own and rejects FOR UPDATE
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var row gameRow
		if err := q.First(&row, int64(gameID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ErrGameNotFound
			}
			return fmt.Errorf("locking game %d: %w", gameID, err)
		}

		var user userRow
		if err := tx.First(&user, int64(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ErrUserNotFound
			}
			return fmt.Errorf("getting user %d: %w", userID, err)
		}

		if model.GameStatus(row.Status) != model.GameStatusWaiting {
			return model.ErrGameNotWaiting
		}

		var seats []gamePlayerRow
		if err := tx.Where("game_id = ?", int64(gameID)).Order("position ASC").Find(&seats).Error; err != nil {
			return fmt.Errorf("listing seats for game %d: %w", gameID, err)
		}
		for i := range seats {
			if seats[i].PlayerID == int64(userID) {
				return model.ErrPlayerAlreadyInGame
			}
		}
		if len(seats) >= row.MaxPlayers {
			return model.ErrGameFull
		}

		seat := gamePlayerRow{
			GameID:   int64(gameID),
			PlayerID: int64(userID),
			Position: len(seats) + 1,
		}
		if err := tx.Create(&seat).Error; err != nil {
			// The seat index catches a duplicate join that raced past the
			// in-transaction check
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return model.ErrPlayerAlreadyInGame
			}
			return fmt.Errorf("seating user %d in game %d: %w", userID, gameID, err)
		}

		game, err := s.loadGame(tx, gameID)
		if err != nil {
			return err
		}
		out = game
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Ping verifies the database connection is alive
func (s *Storage) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
