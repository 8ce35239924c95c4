package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/quirkle-go/internal/dependencies/clock"
	"github.com/mcoot/quirkle-go/internal/dependencies/random"
	"github.com/mcoot/quirkle-go/internal/model"
	"github.com/mcoot/quirkle-go/internal/services/game"
	"github.com/mcoot/quirkle-go/internal/storage"
	"github.com/mcoot/quirkle-go/internal/storage/memory"
	redisstorage "github.com/mcoot/quirkle-go/internal/storage/redis"
	sqlitestorage "github.com/mcoot/quirkle-go/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// DefaultSQLitePath is where the sqlite results store lives unless configured
const DefaultSQLitePath = "data/quirkle.db"

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the results backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file for the sqlite backend
	// If empty, defaults to DefaultSQLitePath
	SQLitePath string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return redisStore, nil
	case StorageTypeSQLite:
		path := cfg.SQLitePath
		if path == "" {
			path = DefaultSQLitePath
		}
		sqliteStore, err := sqlitestorage.New(path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite database: %w", err)
		}
		return sqliteStore, nil
	default:
		return nil, fmt.Errorf("%w: %q must be 'memory', 'redis' or 'sqlite'", model.ErrInvalidStorageType, storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	gameController := game.NewController(store, clk, rnd, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		GameController: gameController,
	}
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}
