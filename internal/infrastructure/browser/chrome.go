// Package browser reads native browser bookmark stores.
package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/mytab/internal/application/port"
	"github.com/bnema/mytab/internal/domain/entity"
	"github.com/bnema/mytab/internal/logging"
)

// ErrNoBookmarkFile means no bookmark file was found for the provider.
var ErrNoBookmarkFile = errors.New("browser bookmark file not found")

type chromeNode struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Type     string       `json:"type"`
	URL      string       `json:"url"`
	Children []chromeNode `json:"children"`
}

type chromeBookmarks struct {
	Roots struct {
		BookmarkBar *chromeNode `json:"bookmark_bar"`
		Other       *chromeNode `json:"other"`
		Synced      *chromeNode `json:"synced"`
	} `json:"roots"`
}

// ChromeProvider reads a Chromium-family "Bookmarks" JSON file.
type ChromeProvider struct {
	path string
}

var _ port.BookmarkTreeProvider = (*ChromeProvider)(nil)

// NewChromeProvider creates a provider for path; an empty path probes the
// default profile locations.
func NewChromeProvider(path string) *ChromeProvider {
	return &ChromeProvider{path: path}
}

// DefaultChromeBookmarkPaths lists the default-profile bookmark files of
// common Chromium browsers, most popular first.
func DefaultChromeBookmarkPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(dir, "google-chrome", "Default", "Bookmarks"),
		filepath.Join(dir, "chromium", "Default", "Bookmarks"),
		filepath.Join(dir, "BraveSoftware", "Brave-Browser", "Default", "Bookmarks"),
		filepath.Join(dir, "microsoft-edge", "Default", "Bookmarks"),
		filepath.Join(dir, "vivaldi", "Default", "Bookmarks"),
	}
}

// Name identifies the provider.
func (p *ChromeProvider) Name() string {
	return "chrome"
}

// Path returns the bookmark file the provider reads, probing defaults when
// no explicit path was given.
func (p *ChromeProvider) Path() (string, error) {
	if p.path != "" {
		return p.path, nil
	}
	for _, candidate := range DefaultChromeBookmarkPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrNoBookmarkFile
}

// GetTree returns a single root folder with an empty title whose children
// are the bookmark bar, other bookmarks and synced bookmarks.
func (p *ChromeProvider) GetTree(ctx context.Context) ([]entity.BookmarkNode, error) {
	log := logging.FromContext(ctx)

	path, err := p.Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoBookmarkFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmarks: %w", err)
	}

	var file chromeBookmarks
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse bookmarks: %w", err)
	}

	root := &entity.BookmarkFolder{ID: "0"}
	for _, top := range []*chromeNode{file.Roots.BookmarkBar, file.Roots.Other, file.Roots.Synced} {
		if top != nil {
			root.Children = append(root.Children, convertChromeNode(*top))
		}
	}

	log.Debug().Str("path", path).Int("roots", len(root.Children)).Msg("chrome bookmarks read")
	return []entity.BookmarkNode{root}, nil
}

func convertChromeNode(n chromeNode) entity.BookmarkNode {
	if n.Type == "url" || (n.URL != "" && len(n.Children) == 0) {
		return &entity.BookmarkLink{ID: n.ID, Title: n.Name, URL: n.URL}
	}
	folder := &entity.BookmarkFolder{ID: n.ID, Title: n.Name}
	for _, child := range n.Children {
		folder.Children = append(folder.Children, convertChromeNode(child))
	}
	return folder
}
