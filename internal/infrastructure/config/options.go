package config

import (
	"time"

	"github.com/bnema/mytab/internal/application/usecase"
	"github.com/bnema/mytab/internal/infrastructure/wallpaper"
)

// ResolverOptions converts the wallpaper section into resolver options.
func (w WallpaperConfig) ResolverOptions() usecase.WallpaperOptions {
	return usecase.WallpaperOptions{
		PicsumURL:   w.PicsumURL,
		RandomURL:   w.RandomURL,
		BingTimeout: time.Duration(w.BingTimeoutMs) * time.Millisecond,
		Width:       w.Width,
		Height:      w.Height,
	}
}

// BingConfig converts the wallpaper section into Bing client settings.
func (w WallpaperConfig) BingConfig() wallpaper.BingConfig {
	return wallpaper.BingConfig{
		ArchiveURL: w.BingArchiveURL,
		BaseURL:    w.BingBaseURL,
		CORSRelay:  w.CORSRelay,
	}
}

// PreloadTimeout is the per-image preload deadline.
func (w WallpaperConfig) PreloadTimeout() time.Duration {
	return time.Duration(w.PreloadTimeoutMs) * time.Millisecond
}
