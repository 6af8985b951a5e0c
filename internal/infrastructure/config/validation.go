package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

const (
	minIconSize = 16
	maxIconSize = 256
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateWallpaper(config)...)
	validationErrors = append(validationErrors, validateFavicon(config)...)
	validationErrors = append(validationErrors, validateServer(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateStorage(config *Config) []string {
	var validationErrors []string
	if strings.TrimSpace(config.Storage.KeyPrefix) == "" {
		validationErrors = append(validationErrors, "storage.key_prefix cannot be empty")
	}
	if config.Storage.Backend != StorageBackendMemory && config.Storage.Path == "" {
		validationErrors = append(validationErrors, fmt.Sprintf("storage.path is required for the %s backend", config.Storage.Backend))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "disabled": true}
	if !validLevels[config.Logging.Level] {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got: %s)", config.Logging.Level))
	}

	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be console or json (got: %s)", config.Logging.Format))
	}
	return validationErrors
}

func validateWallpaper(config *Config) []string {
	var validationErrors []string
	w := config.Wallpaper

	endpoints := []struct{ key, value string }{
		{"wallpaper.picsum_url", w.PicsumURL},
		{"wallpaper.random_url", w.RandomURL},
		{"wallpaper.bing_archive_url", w.BingArchiveURL},
		{"wallpaper.bing_base_url", w.BingBaseURL},
	}
	for _, e := range endpoints {
		if !isAbsoluteHTTPURL(e.value) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s must be an absolute http(s) URL (got: %q)", e.key, e.value))
		}
	}
	if w.CORSRelay != "" && !isAbsoluteHTTPURL(w.CORSRelay) {
		validationErrors = append(validationErrors, fmt.Sprintf("wallpaper.cors_relay must be empty or an absolute http(s) URL (got: %q)", w.CORSRelay))
	}

	if w.BingTimeoutMs <= 0 {
		validationErrors = append(validationErrors, "wallpaper.bing_timeout_ms must be positive")
	}
	if w.PreloadTimeoutMs <= 0 {
		validationErrors = append(validationErrors, "wallpaper.preload_timeout_ms must be positive")
	}
	if w.Width <= 0 || w.Height <= 0 {
		validationErrors = append(validationErrors, "wallpaper.width and wallpaper.height must be positive")
	}
	return validationErrors
}

func validateFavicon(config *Config) []string {
	var validationErrors []string
	if strings.Count(config.Favicon.ProxyTemplate, "%s") != 1 {
		validationErrors = append(validationErrors, "favicon.proxy_template must contain exactly one %s placeholder")
	}
	if config.Favicon.Size < minIconSize || config.Favicon.Size > maxIconSize {
		validationErrors = append(validationErrors,
			fmt.Sprintf("favicon.size must be between %d and %d (got: %d)", minIconSize, maxIconSize, config.Favicon.Size))
	}
	return validationErrors
}

func validateServer(config *Config) []string {
	if _, _, err := net.SplitHostPort(config.Server.Addr); err != nil {
		return []string{fmt.Sprintf("server.addr must be host:port (got: %q)", config.Server.Addr)}
	}
	return nil
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
