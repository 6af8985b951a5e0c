// Package cli wires configuration, storage and use cases for the mytab commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/bnema/mytab/internal/application/port"
	"github.com/bnema/mytab/internal/application/settings"
	"github.com/bnema/mytab/internal/application/usecase"
	"github.com/bnema/mytab/internal/cli/styles"
	"github.com/bnema/mytab/internal/domain/build"
	"github.com/bnema/mytab/internal/domain/repository"
	"github.com/bnema/mytab/internal/infrastructure/browser"
	"github.com/bnema/mytab/internal/infrastructure/config"
	"github.com/bnema/mytab/internal/infrastructure/favicon"
	diskvrepo "github.com/bnema/mytab/internal/infrastructure/persistence/diskv"
	"github.com/bnema/mytab/internal/infrastructure/persistence/memory"
	"github.com/bnema/mytab/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/mytab/internal/infrastructure/storage"
	"github.com/bnema/mytab/internal/infrastructure/wallpaper"
	"github.com/bnema/mytab/internal/logging"
)

// Options are the global command-line overrides.
type Options struct {
	// ConfigFile replaces the XDG config.toml when set.
	ConfigFile string
	// LogLevel overrides logging.level when set.
	LogLevel string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Favicons derives bookmark icon URLs; its template follows config reloads.
	Favicons   *favicon.Resolver
	HTTPClient *http.Client

	ctx context.Context

	servicesOnce sync.Once
	services     *Services
	servicesErr  error
	closers      []func() error
}

// Services are the store-backed use cases. They are built on first use so
// commands that never touch settings never open the database.
type Services struct {
	Storage     *storage.Adapter
	Store       *settings.Store
	Bookmarks   *usecase.ManageBookmarksUseCase
	Preferences *usecase.UpdatePreferencesUseCase
	Search      *usecase.SearchUseCase
	Wallpaper   *usecase.ResolveWallpaperUseCase
	Transfer    *usecase.TransferConfigUseCase
	Import      *usecase.ImportBookmarksUseCase
}

// NewApp loads configuration and sets up logging.
// A broken config file is reported and the defaults are used instead.
func NewApp(opts Options) (*App, error) {
	cfg, mgr, loadErr := loadConfig(opts.ConfigFile)

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger := logging.NewReloadable(level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}
	if err := config.EnsureDirectories(); err != nil {
		logger.Warn().Err(err).Msg("failed to create XDG directories")
	}

	return &App{
		Config:     cfg,
		ConfigMgr:  mgr,
		Theme:      styles.NewTheme(),
		Favicons:   favicon.NewResolver(cfg.Favicon.ProxyTemplate),
		HTTPClient: &http.Client{},
		ctx:        ctx,
	}, nil
}

func loadConfig(path string) (*config.Config, *config.Manager, error) {
	var (
		mgr *config.Manager
		err error
	)
	if path != "" {
		mgr, err = config.NewManagerWithFile(path)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return config.DefaultConfig(), nil, err
	}
	if err := mgr.Load(); err != nil {
		return config.DefaultConfig(), nil, err
	}
	return mgr.Get(), mgr, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Services opens storage and builds the use cases once.
func (a *App) Services() (*Services, error) {
	a.servicesOnce.Do(func() {
		a.services, a.servicesErr = a.buildServices()
	})
	return a.services, a.servicesErr
}

func (a *App) buildServices() (*Services, error) {
	ctx := logging.WithComponent(a.ctx, "storage")
	repo, closer, err := openRepository(a.Config.Storage)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}

	adapter := storage.NewAdapter(repo, a.Config.Storage.KeyPrefix)
	store := settings.NewStore(ctx, adapter)
	if store.RestoreInvariants(ctx) {
		logging.FromContext(ctx).Info().Msg("repaired stored settings")
	}

	wp := a.Config.Wallpaper
	wallpaperUC := usecase.NewResolveWallpaperUseCase(
		store,
		wallpaper.NewPreloader(a.HTTPClient, wp.PreloadTimeout()),
		wallpaper.NewBingClient(a.HTTPClient, wp.BingConfig()),
		wp.ResolverOptions(),
	)

	return &Services{
		Storage:     adapter,
		Store:       store,
		Bookmarks:   usecase.NewManageBookmarksUseCase(store),
		Preferences: usecase.NewUpdatePreferencesUseCase(store),
		Search:      usecase.NewSearchUseCase(store),
		Wallpaper:   wallpaperUC,
		Transfer:    usecase.NewTransferConfigUseCase(store),
		Import:      a.newImportUseCase(store, a.defaultBookmarkProvider()),
	}, nil
}

// openRepository selects the key-value backend named in the config.
func openRepository(cfg config.StorageConfig) (repository.KeyValueRepository, func() error, error) {
	switch cfg.Backend {
	case config.StorageBackendMemory:
		return memory.NewKeyValueRepository(), nil, nil
	case config.StorageBackendDiskv:
		if cfg.Path == "" {
			return nil, nil, errors.New("storage.path is required for the diskv backend")
		}
		return diskvrepo.NewKeyValueRepository(cfg.Path), nil, nil
	case config.StorageBackendSQLite:
		if cfg.Path == "" {
			return nil, nil, errors.New("storage.path is required for the sqlite backend")
		}
		db := sqlite.NewLazyDB(cfg.Path)
		return sqlite.NewLazyKeyValueRepository(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func (a *App) defaultBookmarkProvider() port.BookmarkTreeProvider {
	return browser.NewChromeProvider(a.Config.Browser.ChromeBookmarksPath)
}

// ImportFromHTML returns an importer reading a Netscape bookmarks export.
func (a *App) ImportFromHTML(path string) (*usecase.ImportBookmarksUseCase, error) {
	svc, err := a.Services()
	if err != nil {
		return nil, err
	}
	return a.newImportUseCase(svc.Store, browser.NewNetscapeProvider(path)), nil
}

func (a *App) newImportUseCase(store *settings.Store, provider port.BookmarkTreeProvider) *usecase.ImportBookmarksUseCase {
	return usecase.NewImportBookmarksUseCase(store, provider, a.Favicons)
}

// NewFaviconService builds the icon cache served by the HTTP API.
func (a *App) NewFaviconService() *favicon.Service {
	return favicon.NewService(a.Favicons, a.HTTPClient, a.Config.Favicon.CacheDir, a.Config.Favicon.Size)
}

// ApplyConfig pushes reloadable settings into running components.
// Storage, server and wallpaper settings require a restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	a.Favicons.SetTemplate(cfg.Favicon.ProxyTemplate)
	logging.SetLevel(cfg.Logging.Level)
	logging.FromContext(a.ctx).Info().
		Str("log_level", cfg.Logging.Level).
		Str("favicon_template", a.Favicons.Template()).
		Msg("configuration reloaded")
}

// Close flushes the settings store and releases storage.
func (a *App) Close() error {
	if a.services != nil {
		a.services.Store.Close(a.ctx)
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
