package favicon

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/singleflight"

	domainurl "github.com/bnema/mytab/internal/domain/url"
	"github.com/bnema/mytab/internal/domain/service"
	"github.com/bnema/mytab/internal/logging"
)

// Service implements service.FaviconSource.
// It coordinates between the cache and fetcher components.
type Service struct {
	cache   *Cache
	fetcher *Fetcher
	size    int
	group   singleflight.Group
}

var _ service.FaviconSource = (*Service)(nil)

// NewService creates a new favicon service.
// cacheDir is the directory for disk caching; empty string disables disk caching.
func NewService(resolver *Resolver, client *http.Client, cacheDir string, size int) *Service {
	if size <= 0 {
		size = DefaultIconSize
	}
	return &Service{
		cache:   NewCache(cacheDir),
		fetcher: NewFetcher(client, resolver),
		size:    size,
	}
}

// Icon returns a size x size PNG for pageURL's host. Icons the decoders do
// not understand (ICO) are cached and served as fetched.
// Concurrent misses for the same host share one upstream request.
func (s *Service) Icon(ctx context.Context, pageURL string) ([]byte, string, error) {
	if domainurl.IsLocalOrPrivate(pageURL) {
		return nil, "", service.ErrNoFavicon
	}
	host, ok := domainurl.Hostname(pageURL)
	if !ok {
		return nil, "", service.ErrNoFavicon
	}

	key := cacheKey(host, s.size)
	if data, ok := s.cache.Get(key); ok {
		return data, http.DetectContentType(data), nil
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.fetchAndStore(ctx, pageURL, key)
	})
	if err != nil {
		return nil, "", err
	}
	data, ok := v.([]byte)
	if !ok {
		return nil, "", fmt.Errorf("unexpected favicon result %T", v)
	}

	logging.FromContext(ctx).Trace().Str("host", host).Bool("shared", shared).Msg("favicon resolved")
	return data, http.DetectContentType(data), nil
}

func (s *Service) fetchAndStore(ctx context.Context, pageURL, key string) ([]byte, error) {
	raw, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	data, err := Normalize(raw, s.size)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("key", key).Msg("favicon not resizable, caching as fetched")
		data = raw
	}
	s.cache.Set(ctx, key, data)
	return data, nil
}

// Clear drops every cached icon.
func (s *Service) Clear() error {
	if err := s.cache.Clear(); err != nil {
		return fmt.Errorf("failed to clear favicon cache: %w", err)
	}
	return nil
}
