// Package app provides the dependency injection container for the
// application.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/tododeck/tododeck/internal/domain"
	"github.com/tododeck/tododeck/internal/infra/config"
	"github.com/tododeck/tododeck/internal/infra/jsonstore"
	"github.com/tododeck/tododeck/internal/infra/logging"
	"github.com/tododeck/tododeck/internal/infra/sqlitestore"
	"github.com/tododeck/tododeck/internal/store"
)

// UUIDGenerator implements domain.IDGenerator with random UUID v4 ids.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Container holds all port implementations and the wired store.
type Container struct {
	Store    *store.Store
	Repo     domain.TodoRepository
	Clock    domain.Clock
	IDs      domain.IDGenerator
	Limiter  *domain.RateLimiter
	Logger   *slog.Logger
	Config   *config.Config
	DataPath string
}

// New creates a Container from the user's configuration. Empty
// configDir and dataDir resolve to the per-user XDG defaults. The
// store is loaded from persistence before returning.
func New(configDir, dataDir string) (*Container, error) {
	cfg, err := config.NewLoader(configDir).Load()
	if err != nil {
		return nil, err
	}

	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.Log.Level))
	clock := domain.RealClock{}

	repo, dataPath, err := newRepository(cfg, dataDir, clock, logger)
	if err != nil {
		return nil, err
	}

	limiter := domain.NewRateLimiter(
		cfg.Limits.MaxActions,
		time.Duration(cfg.Limits.WindowSeconds)*time.Second,
		clock,
	)

	st := store.New(repo, clock, UUIDGenerator{}, limiter, logger)
	if err := st.Load(); err != nil {
		return nil, err
	}

	return &Container{
		Store:    st,
		Repo:     repo,
		Clock:    clock,
		IDs:      UUIDGenerator{},
		Limiter:  limiter,
		Logger:   logger,
		Config:   cfg,
		DataPath: dataPath,
	}, nil
}

// newRepository selects the persistence backend from configuration.
func newRepository(cfg *config.Config, dataDir string, clock domain.Clock, logger *slog.Logger) (domain.TodoRepository, string, error) {
	switch cfg.Storage.Backend {
	case "", "json":
		path := cfg.Storage.Path
		if path == "" {
			path = filepath.Join(dataDir, "todos.json")
		}
		return jsonstore.New(path, clock, logger), path, nil

	case "sqlite":
		path := cfg.Storage.Path
		if path == "" {
			path = filepath.Join(dataDir, "todos.db")
		}
		repo, err := sqlitestore.New(path, clock, logger)
		if err != nil {
			return nil, "", err
		}
		return repo, path, nil

	default:
		return nil, "", fmt.Errorf("unknown storage backend: %q (expected 'json' or 'sqlite')", cfg.Storage.Backend)
	}
}

// NewWithDeps creates a Container with custom dependencies for testing.
// The store is not loaded from persistence.
func NewWithDeps(repo domain.TodoRepository, clock domain.Clock, ids domain.IDGenerator, limiter *domain.RateLimiter, logger *slog.Logger) *Container {
	return &Container{
		Store:   store.New(repo, clock, ids, limiter, logger),
		Repo:    repo,
		Clock:   clock,
		IDs:     ids,
		Limiter: limiter,
		Logger:  logger,
		Config:  config.Default(),
	}
}
