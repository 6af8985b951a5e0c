package config

import (
	"github.com/bnema/mytab/internal/application/usecase"
	"github.com/bnema/mytab/internal/infrastructure/favicon"
	"github.com/bnema/mytab/internal/infrastructure/storage"
	"github.com/bnema/mytab/internal/infrastructure/wallpaper"
)

const (
	defaultServerAddr       = "127.0.0.1:7878"
	defaultPreloadTimeoutMs = 30000
)

// DefaultConfig returns the default configuration values for mytab.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: StorageBackendSQLite,
			// Path is set dynamically in Load()
			KeyPrefix: storage.DefaultKeyPrefix,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Wallpaper: WallpaperConfig{
			PicsumURL:        usecase.DefaultPicsumURL,
			RandomURL:        usecase.DefaultRandomURL,
			BingArchiveURL:   wallpaper.DefaultBingArchiveURL,
			BingBaseURL:      wallpaper.DefaultBingBaseURL,
			BingTimeoutMs:    int(usecase.DefaultBingTimeout.Milliseconds()),
			PreloadTimeoutMs: defaultPreloadTimeoutMs,
			Width:            usecase.DefaultWidth,
			Height:           usecase.DefaultHeight,
		},
		Favicon: FaviconConfig{
			ProxyTemplate: favicon.DefaultProxyTemplate,
			// CacheDir is set dynamically in Load()
			Size: favicon.DefaultIconSize,
		},
		Server: ServerConfig{
			Addr: defaultServerAddr,
		},
	}
}
