package port

import (
	"context"

	"github.com/bnema/mytab/internal/domain/entity"
)

// BookmarkTreeProvider reads the browser's native bookmark tree.
type BookmarkTreeProvider interface {
	// Name identifies the source, e.g. "chrome".
	Name() string

	// GetTree returns the root nodes of the bookmark tree.
	GetTree(ctx context.Context) ([]entity.BookmarkNode, error)
}

// FaviconResolver derives icon URLs for imported bookmarks.
type FaviconResolver interface {
	// SafeURL returns a favicon URL for pageURL, or "" when the host must not
	// be disclosed to a third party.
	SafeURL(pageURL string) string
}
