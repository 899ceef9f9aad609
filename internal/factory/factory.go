package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/scorekeeper/internal/config"
	"github.com/mcoot/scorekeeper/internal/dependencies/clock"
	"github.com/mcoot/scorekeeper/internal/dependencies/idgen"
	"github.com/mcoot/scorekeeper/internal/metrics"
	"github.com/mcoot/scorekeeper/internal/repository"
	"github.com/mcoot/scorekeeper/internal/services/everdell"
	"github.com/mcoot/scorekeeper/internal/services/flip7"
	"github.com/mcoot/scorekeeper/internal/services/phase10"
	"github.com/mcoot/scorekeeper/internal/services/scoring"
	"github.com/mcoot/scorekeeper/internal/storage"
	"github.com/mcoot/scorekeeper/internal/storage/memory"
	redisstorage "github.com/mcoot/scorekeeper/internal/storage/redis"
	"github.com/mcoot/scorekeeper/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = config.StorageMemory
	StorageTypeRedis  = config.StorageRedis
	StorageTypeSQLite = config.StorageSQLite
)

// App contains all wired application components
type App struct {
	// Storage is the namespaced backend shared by every repository
	Storage storage.Storage

	// External dependencies
	Clock   clock.Clock
	IDs     idgen.Generator
	Metrics *metrics.Recorder

	// Services
	ScoringService  *scoring.Service
	EverdellService *everdell.Service
	Flip7Service    *flip7.Service
	Phase10Service  *phase10.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// Namespace prefixes every storage key
	// If empty, defaults to storage.DefaultNamespace
	Namespace string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// EverdellMaxPlayers bounds Everdell game creation; zero uses the default
	EverdellMaxPlayers int
}

// ConfigFromEnv converts loaded environment settings into a factory config
func ConfigFromEnv(cfg config.Config, logger *slog.Logger) Config {
	out := Config{
		Logger:             logger,
		StorageType:        cfg.StorageType,
		Namespace:          cfg.StorageNamespace,
		SQLitePath:         cfg.SQLitePath,
		EverdellMaxPlayers: cfg.EverdellMaxPlayers,
	}
	if cfg.StorageType == StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		if cfg.RedisPoolSize > 0 {
			redisCfg.PoolSize = cfg.RedisPoolSize
		}
		redisCfg.TTL = cfg.RedisTTL
		out.RedisConfig = &redisCfg
	}
	return out
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	backend, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = storage.DefaultNamespace
	}
	store := storage.WithNamespace(backend, namespace)

	return newWithDependencies(store, clock.New(), idgen.New(), metrics.NewRecorder(), cfg.EverdellMaxPlayers, logger), nil
}

func openStorage(cfg Config) (storage.Storage, error) {
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
		return redisstorage.New(*cfg.RedisConfig)
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		return sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	ids idgen.Generator,
	rec *metrics.Recorder,
	everdellMaxPlayers int,
	logger *slog.Logger,
) *App {
	scoringService := scoring.NewFlip7()

	return &App{
		Storage:         store,
		Clock:           clk,
		IDs:             ids,
		Metrics:         rec,
		ScoringService:  scoringService,
		EverdellService: everdell.New(repository.NewEverdell(store, logger), clk, ids, everdellMaxPlayers, rec, logger),
		Flip7Service:    flip7.New(repository.NewFlip7(store, logger), clk, ids, scoringService, rec, logger),
		Phase10Service:  phase10.New(repository.NewPhase10(store, logger), clk, ids, rec, logger),
	}
}

// Close releases the storage backend
func (a *App) Close() error {
	if c, ok := a.Storage.(storage.Closer); ok {
		return c.Close()
	}
	return nil
}
