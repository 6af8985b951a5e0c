package config

// Config represents the complete configuration for mytab.
type Config struct {
	Storage   StorageConfig   `mapstructure:"storage" toml:"storage"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging"`
	Wallpaper WallpaperConfig `mapstructure:"wallpaper" toml:"wallpaper"`
	Favicon   FaviconConfig   `mapstructure:"favicon" toml:"favicon"`
	Browser   BrowserConfig   `mapstructure:"browser" toml:"browser"`
	Server    ServerConfig    `mapstructure:"server" toml:"server"`
}

// StorageBackend selects the key-value store behind the settings.
type StorageBackend string

const (
	StorageBackendSQLite StorageBackend = "sqlite"
	StorageBackendDiskv  StorageBackend = "diskv"
	StorageBackendMemory StorageBackend = "memory"
)

// StorageConfig holds settings persistence options.
type StorageConfig struct {
	// Backend is one of sqlite, diskv or memory.
	Backend StorageBackend `mapstructure:"backend" toml:"backend"`
	// Path is the sqlite file or the diskv directory. Empty means the XDG data dir.
	Path string `mapstructure:"path" toml:"path"`
	// KeyPrefix namespaces every stored key.
	KeyPrefix string `mapstructure:"key_prefix" toml:"key_prefix"`
}

// LoggingConfig holds logging options.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// WallpaperConfig holds the remote endpoints and sizes used to resolve backgrounds.
type WallpaperConfig struct {
	PicsumURL      string `mapstructure:"picsum_url" toml:"picsum_url"`
	RandomURL      string `mapstructure:"random_url" toml:"random_url"`
	BingArchiveURL string `mapstructure:"bing_archive_url" toml:"bing_archive_url"`
	BingBaseURL    string `mapstructure:"bing_base_url" toml:"bing_base_url"`
	// CORSRelay is prepended to the Bing archive URL when set.
	CORSRelay        string `mapstructure:"cors_relay" toml:"cors_relay"`
	BingTimeoutMs    int    `mapstructure:"bing_timeout_ms" toml:"bing_timeout_ms"`
	PreloadTimeoutMs int    `mapstructure:"preload_timeout_ms" toml:"preload_timeout_ms"`
	Width            int    `mapstructure:"width" toml:"width"`
	Height           int    `mapstructure:"height" toml:"height"`
}

// FaviconConfig holds the favicon proxy template (must contain a %s placeholder)
// and the icon cache served by `mytab serve`.
type FaviconConfig struct {
	ProxyTemplate string `mapstructure:"proxy_template" toml:"proxy_template"`
	CacheDir      string `mapstructure:"cache_dir" toml:"cache_dir"`
	Size          int    `mapstructure:"size" toml:"size"`
}

// BrowserConfig points at the browser bookmark sources used by imports.
type BrowserConfig struct {
	// ChromeBookmarksPath overrides the auto-detected Chrome Bookmarks file.
	ChromeBookmarksPath string `mapstructure:"chrome_bookmarks_path" toml:"chrome_bookmarks_path"`
}

// ServerConfig holds the HTTP API listener options.
type ServerConfig struct {
	Addr string `mapstructure:"addr" toml:"addr"`
}
