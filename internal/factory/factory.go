package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/mcoot/scrabblesolver/internal/dependencies/clock"
	"github.com/mcoot/scrabblesolver/internal/dependencies/random"
	"github.com/mcoot/scrabblesolver/internal/locale"
	"github.com/mcoot/scrabblesolver/internal/services/dictionary"
	"github.com/mcoot/scrabblesolver/internal/services/session"
	"github.com/mcoot/scrabblesolver/internal/services/solvecache"
	"github.com/mcoot/scrabblesolver/internal/services/solver"
	"github.com/mcoot/scrabblesolver/internal/storage"
	"github.com/mcoot/scrabblesolver/internal/storage/memory"
	redisstorage "github.com/mcoot/scrabblesolver/internal/storage/redis"
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
	Clock  clock.Clock
	Random random.Random

	Locales *locale.Registry

	// Services
	DictionaryService *dictionary.Service
	SolveCache        *solvecache.Service
	Solver            *solver.Service
	SessionController *session.Controller

	logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryDir holds one word list per locale, named <code>.txt (optional).
	// Locales without a file there fall back to their configured paths.
	DictionaryDir string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// DisableSolveCache turns off caching of ranked results
	DisableSolveCache bool
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

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
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory' or 'redis'", storageType)
	}

	locales, err := locale.Builtin()
	if err != nil {
		return nil, err
	}

	return newWithDependencies(store, clock.New(), random.New(), locales, !cfg.DisableSolveCache, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, locales *locale.Registry, cache bool, logger *slog.Logger) *App {
	dictService := dictionary.NewService(store, logger)

	var cacheService *solvecache.Service
	var cacheIface solvecache.ServiceInterface
	if cache {
		cacheService = solvecache.New(store, logger)
		cacheIface = cacheService
	}

	solverService := solver.New(dictService, cacheIface, logger)
	sessionController := session.NewController(store, locales, solverService, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Locales:           locales,
		DictionaryService: dictService,
		SolveCache:        cacheService,
		Solver:            solverService,
		SessionController: sessionController,
		logger:            logger,
	}
}

// LoadDictionaries loads a dictionary for every locale. Words saved in storage
// are used first, then dir/<code>.txt, then the locale's configured paths.
// Locales left without a dictionary are logged and skipped; an error is only
// returned when no locale could be loaded.
func (a *App) LoadDictionaries(ctx context.Context, dir string) error {
	loaded := 0
	for _, loc := range a.Locales.List() {
		if err := a.loadDictionary(ctx, loc, dir); err != nil {
			a.logger.Warn("dictionary unavailable",
				slog.String("locale", loc.Code),
				slog.String("error", err.Error()),
			)
			continue
		}
		loaded++
	}
	if loaded == 0 {
		return errors.New("no dictionary could be loaded")
	}
	return nil
}

func (a *App) loadDictionary(ctx context.Context, loc *locale.Locale, dir string) error {
	if err := a.DictionaryService.LoadFromStorage(ctx, loc); err == nil {
		a.logger.Info("dictionary restored from storage",
			slog.String("locale", loc.Code),
			slog.Int("words", a.DictionaryService.WordCount(loc.Code)),
		)
		return nil
	}

	var paths []string
	if dir != "" {
		paths = append(paths, filepath.Join(dir, loc.Code+".txt"))
	}
	paths = append(paths, loc.Dictionary.SearchPaths()...)
	return a.DictionaryService.LoadFromFile(ctx, loc, paths...)
}

// Close releases the storage backend when it holds connections
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
