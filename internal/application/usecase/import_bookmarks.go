package usecase

import (
	"context"

	"github.com/bnema/mytab/internal/application/port"
	"github.com/bnema/mytab/internal/application/settings"
	"github.com/bnema/mytab/internal/domain/entity"
	"github.com/bnema/mytab/internal/logging"
)

// ImportBookmarksUseCase copies browser bookmarks into the new-tab bookmarks.
type ImportBookmarksUseCase struct {
	store    *settings.Store
	provider port.BookmarkTreeProvider
	favicons port.FaviconResolver
	newID    IDGenerator
}

// NewImportBookmarksUseCase creates a new browser bookmark import use case.
// provider may be nil when no browser profile is available.
func NewImportBookmarksUseCase(
	store *settings.Store,
	provider port.BookmarkTreeProvider,
	favicons port.FaviconResolver,
) *ImportBookmarksUseCase {
	return &ImportBookmarksUseCase{
		store:    store,
		provider: provider,
		favicons: favicons,
		newID:    NewID,
	}
}

// WithIDGenerator replaces the identifier source.
func (uc *ImportBookmarksUseCase) WithIDGenerator(gen IDGenerator) *ImportBookmarksUseCase {
	uc.newID = gen
	return uc
}

// Flatten lists every link of the tree in depth-first order. FolderPath
// joins the titles of the enclosing folders with " / ".
func Flatten(nodes []entity.BookmarkNode) []entity.BrowserBookmark {
	result := make([]entity.BrowserBookmark, 0)
	return flattenInto(nodes, result, "")
}

func flattenInto(nodes []entity.BookmarkNode, result []entity.BrowserBookmark, folderPath string) []entity.BrowserBookmark {
	for _, node := range nodes {
		switch n := node.(type) {
		case *entity.BookmarkLink:
			if n.URL == "" {
				continue
			}
			result = append(result, entity.BrowserBookmark{
				ExternalID: n.ID,
				Title:      n.Title,
				URL:        n.URL,
				FolderPath: folderPath,
			})
		case *entity.BookmarkFolder:
			path := n.Title
			if folderPath != "" {
				path = folderPath + " / " + n.Title
			}
			result = flattenInto(n.Children, result, path)
		}
	}
	return result
}

// ListBrowserBookmarks returns the flattened browser bookmarks. An
// unavailable provider yields an empty list.
func (uc *ImportBookmarksUseCase) ListBrowserBookmarks(ctx context.Context) []entity.BrowserBookmark {
	log := logging.FromContext(ctx)

	if uc.provider == nil {
		log.Debug().Msg("no browser bookmark provider configured")
		return []entity.BrowserBookmark{}
	}

	log.Debug().Str("provider", uc.provider.Name()).Msg("reading browser bookmarks")

	tree, err := uc.provider.GetTree(ctx)
	if err != nil {
		log.Warn().Err(err).Str("provider", uc.provider.Name()).Msg("failed to get browser bookmarks")
		return []entity.BrowserBookmark{}
	}

	flat := Flatten(tree)
	log.Debug().Int("count", len(flat)).Msg("browser bookmarks flattened")
	return flat
}

// ImportSelected appends the selected bookmarks to targetGroupID (default
// group when empty), skipping any URL that already exists, including URLs
// earlier in the same selection. It returns the bookmarks it added.
func (uc *ImportBookmarksUseCase) ImportSelected(
	ctx context.Context,
	selected []entity.BrowserBookmark,
	targetGroupID string,
) []entity.Bookmark {
	log := logging.FromContext(ctx)
	if targetGroupID == "" {
		targetGroupID = entity.DefaultGroupID
	}
	log.Debug().Int("selected", len(selected)).Str("group", targetGroupID).Msg("importing browser bookmarks")

	imported := make([]entity.Bookmark, 0, len(selected))
	uc.store.Mutate(func() {
		existing := make(map[string]struct{})
		for _, b := range uc.store.Bookmarks.Get() {
			existing[b.URL] = struct{}{}
		}

		for _, bm := range selected {
			if _, dup := existing[bm.URL]; dup {
				continue
			}
			existing[bm.URL] = struct{}{}

			icon := ""
			if uc.favicons != nil {
				icon = uc.favicons.SafeURL(bm.URL)
			}
			imported = append(imported, entity.Bookmark{
				ID:      uc.newID(),
				Title:   bm.Title,
				URL:     bm.URL,
				Icon:    icon,
				GroupID: targetGroupID,
			})
		}

		if len(imported) > 0 {
			uc.store.Bookmarks.Update(func(list []entity.Bookmark) []entity.Bookmark {
				return append(list, imported...)
			})
		}
	})

	log.Info().
		Int("imported", len(imported)).
		Int("skipped", len(selected)-len(imported)).
		Str("group", targetGroupID).
		Msg("browser bookmarks imported")
	return imported
}
