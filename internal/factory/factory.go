package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hexforge/catan-go/internal/config"
	"github.com/hexforge/catan-go/internal/dependencies/clock"
	"github.com/hexforge/catan-go/internal/dependencies/random"
	"github.com/hexforge/catan-go/internal/services/board"
	"github.com/hexforge/catan-go/internal/services/bot"
	"github.com/hexforge/catan-go/internal/services/catan"
	"github.com/hexforge/catan-go/internal/services/game"
	"github.com/hexforge/catan-go/internal/services/scoring"
	"github.com/hexforge/catan-go/internal/services/user"
	"github.com/hexforge/catan-go/internal/storage"
	"github.com/hexforge/catan-go/internal/storage/database"
	"github.com/hexforge/catan-go/internal/storage/memory"
	redisstorage "github.com/hexforge/catan-go/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BoardService   *board.Service
	ScoringService *scoring.Service
	BotService     *bot.Service

	// Controllers
	UserController  *user.Controller
	GameController  *game.Controller
	CatanController *catan.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("database", "redis" or "memory")
	// If empty, defaults to "memory"
	StorageType string
	// DatabaseConfig holds Postgres settings (required if StorageType is "database")
	DatabaseConfig *database.Config
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	var store storage.Storage
	switch storageType {
	case config.StorageTypeMemory:
		store = memory.New()
	case config.StorageTypeDatabase:
		if cfg.DatabaseConfig == nil {
			return nil, errors.New("DatabaseConfig required when StorageType is database")
		}
		dbStore, err := database.New(*cfg.DatabaseConfig)
		if err != nil {
			return nil, err
		}
		store = dbStore
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be %q, %q or %q",
			storageType, config.StorageTypeDatabase, config.StorageTypeRedis, config.StorageTypeMemory)
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	boardService := board.New(rnd)
	scoringService := scoring.New()
	botService := bot.New(rnd, scoringService, logger)

	// Create controllers
	userController := user.NewController(store, clk, logger)
	gameController := game.NewController(store, clk, logger)
	catanController := catan.NewController(store, boardService, scoringService, clk, rnd, logger)
	catanController.SetBotPlayer(botService)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		BoardService:    boardService,
		ScoringService:  scoringService,
		BotService:      botService,
		UserController:  userController,
		GameController:  gameController,
		CatanController: catanController,
	}
}
