package favicon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/mytab/internal/domain/service"
	"github.com/bnema/mytab/internal/logging"
)

const (
	// HTTP client timeout for favicon fetch.
	fetchTimeout = 5 * time.Second
	maxIconBytes = 512 * 1024
)

// Fetcher retrieves favicons through the configured proxy.
type Fetcher struct {
	client   *http.Client
	resolver *Resolver
}

// NewFetcher creates a Fetcher. A nil client gets a short default timeout.
func NewFetcher(client *http.Client, resolver *Resolver) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return &Fetcher{client: client, resolver: resolver}
}

// Fetch downloads the proxy icon for pageURL's host.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	iconURL := f.resolver.SafeURL(pageURL)
	if iconURL == "" {
		return nil, service.ErrNoFavicon
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("url", iconURL).Msg("fetching favicon")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, iconURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create favicon request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch favicon: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debug().Int("status", resp.StatusCode).Str("url", iconURL).Msg("favicon proxy returned non-OK status")
		return nil, fmt.Errorf("%w: proxy returned %d", service.ErrNoFavicon, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIconBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read favicon response: %w", err)
	}
	if len(data) > maxIconBytes {
		return nil, fmt.Errorf("favicon exceeds %d bytes", maxIconBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty proxy response", service.ErrNoFavicon)
	}

	log.Debug().Str("url", iconURL).Int("bytes", len(data)).Msg("favicon fetched")
	return data, nil
}
