// Package service defines domain service interfaces.
package service

import (
	"context"
	"errors"
)

// ErrNoFavicon is returned when no icon can be served for a page, either
// because its host is private or the proxy has nothing for it.
var ErrNoFavicon = errors.New("no favicon available")

// FaviconSource serves bookmark icons.
type FaviconSource interface {
	// Icon returns the icon bytes and their MIME type for pageURL's host.
	// Checks memory cache, then disk cache, then fetches through the proxy.
	Icon(ctx context.Context, pageURL string) (data []byte, contentType string, err error)

	// Clear drops every cached icon.
	Clear() error
}
