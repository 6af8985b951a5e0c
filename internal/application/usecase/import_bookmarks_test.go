package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mytab/internal/application/usecase"
	"github.com/bnema/mytab/internal/domain/entity"
	"github.com/bnema/mytab/internal/infrastructure/favicon"
)

type fakeTreeProvider struct {
	tree []entity.BookmarkNode
	err  error
}

func (f *fakeTreeProvider) Name() string { return "fake" }

func (f *fakeTreeProvider) GetTree(context.Context) ([]entity.BookmarkNode, error) {
	return f.tree, f.err
}

func sampleTree() []entity.BookmarkNode {
	return []entity.BookmarkNode{
		&entity.BookmarkFolder{ID: "0", Title: "", Children: []entity.BookmarkNode{
			&entity.BookmarkFolder{ID: "1", Title: "Bookmarks bar", Children: []entity.BookmarkNode{
				&entity.BookmarkLink{ID: "10", Title: "Go", URL: "https://go.dev"},
				&entity.BookmarkFolder{ID: "11", Title: "Work", Children: []entity.BookmarkNode{
					&entity.BookmarkLink{ID: "12", Title: "Router", URL: "http://192.168.1.1/"},
				}},
			}},
			&entity.BookmarkFolder{ID: "2", Title: "Other bookmarks", Children: []entity.BookmarkNode{
				&entity.BookmarkLink{ID: "20", Title: "Separator", URL: ""},
				&entity.BookmarkLink{ID: "21", Title: "GitHub", URL: "https://github.com"},
			}},
		}},
	}
}

func TestFlatten(t *testing.T) {
	flat := usecase.Flatten(sampleTree())

	assert.Equal(t, []entity.BrowserBookmark{
		{ExternalID: "10", Title: "Go", URL: "https://go.dev", FolderPath: "Bookmarks bar"},
		{ExternalID: "12", Title: "Router", URL: "http://192.168.1.1/", FolderPath: "Bookmarks bar / Work"},
		{ExternalID: "21", Title: "GitHub", URL: "https://github.com", FolderPath: "Other bookmarks"},
	}, flat)
}

func TestFlatten_TopLevelLinkHasEmptyPath(t *testing.T) {
	flat := usecase.Flatten([]entity.BookmarkNode{&entity.BookmarkLink{ID: "x", Title: "X", URL: "https://x.example"}})
	require.Len(t, flat, 1)
	assert.Equal(t, "", flat[0].FolderPath)
}

func TestImportBookmarks_ListBrowserBookmarks(t *testing.T) {
	ctx := testContext()
	store := newTestStore(t)

	uc := usecase.NewImportBookmarksUseCase(store, &fakeTreeProvider{tree: sampleTree()}, favicon.NewResolver(""))
	assert.Len(t, uc.ListBrowserBookmarks(ctx), 3)

	failing := usecase.NewImportBookmarksUseCase(store, &fakeTreeProvider{err: errors.New("no profile")}, nil)
	list := failing.ListBrowserBookmarks(ctx)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	none := usecase.NewImportBookmarksUseCase(store, nil, nil)
	assert.Empty(t, none.ListBrowserBookmarks(ctx))
}

func TestImportBookmarks_ImportSelectedNeverDuplicatesURLs(t *testing.T) {
	ctx := testContext()
	store := newTestStore(t)
	uc := usecase.NewImportBookmarksUseCase(store, nil, favicon.NewResolver("")).WithIDGenerator(sequentialIDs())

	selected := []entity.BrowserBookmark{
		{Title: "GitHub again", URL: "https://github.com"},
		{Title: "Go", URL: "https://go.dev"},
		{Title: "Go twice", URL: "https://go.dev"},
		{Title: "Router", URL: "http://192.168.1.1/"},
	}

	imported := uc.ImportSelected(ctx, selected, "dev")

	require.Len(t, imported, 2)
	assert.Equal(t, entity.Bookmark{
		ID:      "id-1",
		Title:   "Go",
		URL:     "https://go.dev",
		Icon:    "https://www.google.com/s2/favicons?domain=go.dev&sz=64",
		GroupID: "dev",
	}, imported[0])
	assert.Equal(t, "", imported[1].Icon, "private hosts get no proxy icon")

	again := uc.ImportSelected(ctx, selected, "dev")
	assert.Empty(t, again)

	seen := map[string]int{}
	for _, b := range store.Bookmarks.Get() {
		seen[b.URL]++
	}
	for u, n := range seen {
		assert.Equal(t, 1, n, "url %s duplicated", u)
	}
}

func TestImportBookmarks_EmptyTargetUsesDefaultGroup(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewImportBookmarksUseCase(newTestStore(t), nil, nil)

	imported := uc.ImportSelected(ctx, []entity.BrowserBookmark{{Title: "New", URL: "https://new.example"}}, "")
	require.Len(t, imported, 1)
	assert.Equal(t, entity.DefaultGroupID, imported[0].GroupID)
	assert.Empty(t, imported[0].Icon)
}
