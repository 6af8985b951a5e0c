package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager reading from the XDG config dir.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(configDir)
}

// NewManagerWithFile creates a manager bound to an explicit config file.
func NewManagerWithFile(path string) (*Manager, error) {
	m, err := newManager("")
	if err != nil {
		return nil, err
	}
	m.viper.SetConfigFile(path)
	return m, nil
}

func newManager(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	// MYTAB_STORAGE_BACKEND, MYTAB_SERVER_ADDR, ...
	v.SetEnvPrefix("MYTAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Same names the logger reads before config is loaded.
	if err := v.BindEnv("logging.level", "MYTAB_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind MYTAB_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "MYTAB_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind MYTAB_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configPath(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configPath(), createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals, normalizes and validates the current viper state.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	normalizeConfig(config)
	if err := ensureStoragePath(config); err != nil {
		return nil, err
	}
	if config.Favicon.CacheDir == "" {
		dir, err := DefaultFaviconCacheDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get favicon cache dir: %w", err)
		}
		config.Favicon.CacheDir = dir
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureStoragePath(config *Config) error {
	if config.Storage.Path != "" {
		return nil
	}
	path, err := DefaultStoragePath(config.Storage.Backend)
	if err != nil {
		return fmt.Errorf("failed to get storage path: %w", err)
	}
	config.Storage.Path = path
	return nil
}

func normalizeConfig(config *Config) {
	switch StorageBackend(strings.ToLower(strings.TrimSpace(string(config.Storage.Backend)))) {
	case StorageBackendDiskv:
		config.Storage.Backend = StorageBackendDiskv
	case StorageBackendMemory:
		config.Storage.Backend = StorageBackendMemory
	default:
		config.Storage.Backend = StorageBackendSQLite
	}

	config.Storage.Path = strings.TrimSpace(config.Storage.Path)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Wallpaper.CORSRelay = strings.TrimSpace(config.Wallpaper.CORSRelay)
	config.Wallpaper.PicsumURL = strings.TrimRight(strings.TrimSpace(config.Wallpaper.PicsumURL), "/")
	config.Wallpaper.BingBaseURL = strings.TrimRight(strings.TrimSpace(config.Wallpaper.BingBaseURL), "/")
	config.Favicon.CacheDir = strings.TrimSpace(config.Favicon.CacheDir)
	config.Browser.ChromeBookmarksPath = strings.TrimSpace(config.Browser.ChromeBookmarksPath)
	config.Server.Addr = strings.TrimSpace(config.Server.Addr)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) configPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	path, err := GetConfigFile()
	if err != nil {
		return "config.toml"
	}
	return path
}

// createDefaultConfig writes the defaults to the config path.
func (m *Manager) createDefaultConfig() error {
	configFile := m.configPath()
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.path", defaults.Storage.Path)
	m.viper.SetDefault("storage.key_prefix", defaults.Storage.KeyPrefix)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.setWallpaperDefaults(defaults)

	m.viper.SetDefault("favicon.proxy_template", defaults.Favicon.ProxyTemplate)
	m.viper.SetDefault("favicon.cache_dir", defaults.Favicon.CacheDir)
	m.viper.SetDefault("favicon.size", defaults.Favicon.Size)
	m.viper.SetDefault("browser.chrome_bookmarks_path", defaults.Browser.ChromeBookmarksPath)
	m.viper.SetDefault("server.addr", defaults.Server.Addr)
}

func (m *Manager) setWallpaperDefaults(defaults *Config) {
	m.viper.SetDefault("wallpaper.picsum_url", defaults.Wallpaper.PicsumURL)
	m.viper.SetDefault("wallpaper.random_url", defaults.Wallpaper.RandomURL)
	m.viper.SetDefault("wallpaper.bing_archive_url", defaults.Wallpaper.BingArchiveURL)
	m.viper.SetDefault("wallpaper.bing_base_url", defaults.Wallpaper.BingBaseURL)
	m.viper.SetDefault("wallpaper.cors_relay", defaults.Wallpaper.CORSRelay)
	m.viper.SetDefault("wallpaper.bing_timeout_ms", defaults.Wallpaper.BingTimeoutMs)
	m.viper.SetDefault("wallpaper.preload_timeout_ms", defaults.Wallpaper.PreloadTimeoutMs)
	m.viper.SetDefault("wallpaper.width", defaults.Wallpaper.Width)
	m.viper.SetDefault("wallpaper.height", defaults.Wallpaper.Height)
}
