package config

import (
	"fmt"

	"github.com/bnema/mytab/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionStorage   = "Storage"
	SectionLogging   = "Logging"
	SectionWallpaper = "Wallpaper"
	SectionFavicon   = "Favicon"
	SectionBrowser   = "Browser"
	SectionServer    = "Server"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 24)
	keys = append(keys, p.getStorageKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getWallpaperKeys(defaults)...)
	keys = append(keys, entity.ConfigKeyInfo{
		Key:         "favicon.proxy_template",
		Type:        "string",
		Default:     defaults.Favicon.ProxyTemplate,
		Description: "Favicon service URL, %s is replaced by the bookmark hostname",
		Section:     SectionFavicon,
	}, entity.ConfigKeyInfo{
		Key:         "favicon.cache_dir",
		Type:        "string",
		Default:     "(data dir)/favicons",
		Description: "Directory holding normalized favicons served at /api/favicon",
		Section:     SectionFavicon,
	}, entity.ConfigKeyInfo{
		Key:         "favicon.size",
		Type:        "int",
		Default:     fmt.Sprintf("%d", defaults.Favicon.Size),
		Description: "Edge length in pixels of cached favicons",
		Range:       fmt.Sprintf("%d-%d", minIconSize, maxIconSize),
		Section:     SectionFavicon,
	}, entity.ConfigKeyInfo{
		Key:         "browser.chrome_bookmarks_path",
		Type:        "string",
		Default:     "(auto-detected)",
		Description: "Chrome/Chromium Bookmarks file used by `mytab import browser`",
		Section:     SectionBrowser,
	}, entity.ConfigKeyInfo{
		Key:         "server.addr",
		Type:        "string",
		Default:     defaults.Server.Addr,
		Description: "Listen address of `mytab serve`",
		Section:     SectionServer,
	})
	return keys
}

func (*SchemaProvider) getStorageKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "storage.backend",
			Type:        "string",
			Default:     string(defaults.Storage.Backend),
			Description: "Key-value store holding the settings",
			Values:      []string{string(StorageBackendSQLite), string(StorageBackendDiskv), string(StorageBackendMemory)},
			Section:     SectionStorage,
		},
		{
			Key:         "storage.path",
			Type:        "string",
			Default:     "(XDG data dir)",
			Description: "sqlite database file or diskv directory",
			Section:     SectionStorage,
		},
		{
			Key:         "storage.key_prefix",
			Type:        "string",
			Default:     defaults.Storage.KeyPrefix,
			Description: "Prefix added to every stored key",
			Section:     SectionStorage,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getWallpaperKeys(defaults *Config) []entity.ConfigKeyInfo {
	w := defaults.Wallpaper
	return []entity.ConfigKeyInfo{
		{Key: "wallpaper.picsum_url", Type: "string", Default: w.PicsumURL, Description: "Picsum base URL", Section: SectionWallpaper},
		{Key: "wallpaper.random_url", Type: "string", Default: w.RandomURL, Description: "Random image API endpoint", Section: SectionWallpaper},
		{Key: "wallpaper.bing_archive_url", Type: "string", Default: w.BingArchiveURL, Description: "Bing daily image archive", Section: SectionWallpaper},
		{Key: "wallpaper.bing_base_url", Type: "string", Default: w.BingBaseURL, Description: "Prefix for relative Bing image paths", Section: SectionWallpaper},
		{Key: "wallpaper.cors_relay", Type: "string", Default: "", Description: "Optional relay prefixed to the Bing archive URL", Section: SectionWallpaper},
		{
			Key:         "wallpaper.bing_timeout_ms",
			Type:        "int",
			Default:     fmt.Sprintf("%d", w.BingTimeoutMs),
			Description: "Bing fetch deadline before falling back to picsum",
			Range:       ">0",
			Section:     SectionWallpaper,
		},
		{
			Key:         "wallpaper.preload_timeout_ms",
			Type:        "int",
			Default:     fmt.Sprintf("%d", w.PreloadTimeoutMs),
			Description: "Image preload deadline",
			Range:       ">0",
			Section:     SectionWallpaper,
		},
		{Key: "wallpaper.width", Type: "int", Default: fmt.Sprintf("%d", w.Width), Description: "Requested image width", Range: ">0", Section: SectionWallpaper},
		{Key: "wallpaper.height", Type: "int", Default: fmt.Sprintf("%d", w.Height), Description: "Requested image height", Range: ">0", Section: SectionWallpaper},
	}
}
