package wallpaper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/mytab/internal/application/port"
	"github.com/bnema/mytab/internal/domain/entity"
	"github.com/bnema/mytab/internal/logging"
)

// Bing archive defaults.
const (
	DefaultBingArchiveURL = "https://www.bing.com/HPImageArchive.aspx?format=js&idx=0&n=8&mkt=zh-CN"
	DefaultBingBaseURL    = "https://www.bing.com"
	maxArchiveBytes       = 1 << 20
)

// BingConfig locates the Bing image archive.
type BingConfig struct {
	ArchiveURL string
	BaseURL    string // prefix for the relative image URLs
	CORSRelay  string // optional prefix, e.g. "https://corsproxy.io/?"
}

type bingArchiveResponse struct {
	Images []struct {
		URL       string `json:"url"`
		Title     string `json:"title"`
		Copyright string `json:"copyright"`
	} `json:"images"`
}

// BingClient reads the Bing daily image archive.
type BingClient struct {
	client *http.Client
	cfg    BingConfig
}

var _ port.BingArchive = (*BingClient)(nil)

// NewBingClient creates an archive client. Cancellation comes from the
// caller's context.
func NewBingClient(client *http.Client, cfg BingConfig) *BingClient {
	if client == nil {
		client = &http.Client{Timeout: time.Minute}
	}
	if cfg.ArchiveURL == "" {
		cfg.ArchiveURL = DefaultBingArchiveURL
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBingBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &BingClient{client: client, cfg: cfg}
}

// FetchImages returns the archive images with absolute URLs.
func (c *BingClient) FetchImages(ctx context.Context) ([]entity.BingImage, error) {
	log := logging.FromContext(ctx)
	endpoint := c.cfg.CORSRelay + c.cfg.ArchiveURL
	log.Debug().Str("url", endpoint).Msg("fetching bing archive")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bing archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bing archive returned status %d", resp.StatusCode)
	}

	var body bingArchiveResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxArchiveBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode bing archive: %w", err)
	}

	images := make([]entity.BingImage, 0, len(body.Images))
	for _, img := range body.Images {
		if img.URL == "" {
			continue
		}
		images = append(images, entity.BingImage{
			URL:       c.absolute(img.URL),
			Title:     img.Title,
			Copyright: img.Copyright,
		})
	}

	log.Debug().Int("count", len(images)).Msg("bing archive fetched")
	return images, nil
}

func (c *BingClient) absolute(u string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return c.cfg.BaseURL + u
}
