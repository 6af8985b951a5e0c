// Package wallpaper provides HTTP adapters for wallpaper sources.
package wallpaper

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"net/http"
	"time"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/bnema/mytab/internal/application/port"
	"github.com/bnema/mytab/internal/logging"
)

const (
	// DefaultPreloadTimeout bounds a single image fetch.
	DefaultPreloadTimeout = 30 * time.Second
	// headers of every supported format fit well within this
	maxHeaderBytes = 1 << 20
	userAgent      = "mytab/1.0"
)

// Preloader fetches an image and decodes its header so only renderable
// URLs are committed as backgrounds.
type Preloader struct {
	client *http.Client
}

var _ port.ImagePreloader = (*Preloader)(nil)

// NewPreloader creates a preloader. A nil client gets one with timeout.
func NewPreloader(client *http.Client, timeout time.Duration) *Preloader {
	if timeout <= 0 {
		timeout = DefaultPreloadTimeout
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &Preloader{client: client}
}

// Preload returns url once the response decodes as an image. Redirects are
// followed but the original URL is returned so cache-busting seeds survive.
func (p *Preloader) Preload(ctx context.Context, url string) (string, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("url", url).Msg("preloading wallpaper")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "image/*")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("image request returned status %d", resp.StatusCode)
	}

	cfg, format, err := image.DecodeConfig(io.LimitReader(resp.Body, maxHeaderBytes))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return "", fmt.Errorf("image has no pixels")
	}

	log.Debug().
		Str("format", format).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Msg("wallpaper preloaded")
	return url, nil
}
