package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/pokearch/registry/internal/dependencies/clock"
	"github.com/pokearch/registry/internal/model"
	"github.com/pokearch/registry/internal/services/access"
	"github.com/pokearch/registry/internal/services/grants"
	"github.com/pokearch/registry/internal/services/registry"
	"github.com/pokearch/registry/internal/storage"
	"github.com/pokearch/registry/internal/storage/memory"
	redisstorage "github.com/pokearch/registry/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	AccessService   *access.Service
	RegistryService *registry.Service
	GrantsService   *grants.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Owner is bound as the registry owner on first start and
	// auto-allowed. Required.
	Owner model.Principal
	// SelfAddress is the registry's own principal identity (optional;
	// defaults to Owner)
	SelfAddress model.Principal
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired and the
// owner bound.
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if cfg.Owner == "" {
		return nil, errors.New("Owner principal is required")
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	self := cfg.SelfAddress
	if self == "" {
		self = cfg.Owner
	}

	app := newWithDependencies(store, clock.New(), self, logger)

	if err := app.AccessService.Bootstrap(context.Background(), cfg.Owner); err != nil {
		return nil, err
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, self model.Principal, logger *slog.Logger) *App {
	accessService := access.New(store, logger)
	registryService := registry.New(store, clk, self, logger)
	grantsService := grants.New(accessService, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		AccessService:   accessService,
		RegistryService: registryService,
		GrantsService:   grantsService,
	}
}
