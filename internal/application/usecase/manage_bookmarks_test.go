package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mytab/internal/application/settings"
	"github.com/bnema/mytab/internal/application/usecase"
	"github.com/bnema/mytab/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

func assertGroupIntegrity(t *testing.T, store *settings.Store) {
	t.Helper()
	groups := store.Groups.Get()
	require.GreaterOrEqual(t, entity.FindGroup(groups, entity.DefaultGroupID), 0, "default group must exist")
	for _, b := range store.Bookmarks.Get() {
		assert.GreaterOrEqual(t, entity.FindGroup(groups, b.GroupID), 0, "bookmark %s points at missing group %s", b.ID, b.GroupID)
	}
}

func TestManageBookmarks_AddBookmark(t *testing.T) {
	ctx := testContext()
	store := newTestStore(t)
	uc := usecase.NewManageBookmarksUseCase(store).WithIDGenerator(sequentialIDs())

	bm := uc.AddBookmark(ctx, usecase.BookmarkInput{Title: "Go", URL: "https://go.dev", GroupID: "dev"})

	assert.Equal(t, "id-1", bm.ID)
	list := uc.ListBookmarks()
	require.Len(t, list, 11)
	assert.Equal(t, bm, list[10])

	store.ActiveGroupID.Set("media")
	bm2 := uc.AddBookmark(ctx, usecase.BookmarkInput{Title: "Radio", URL: "https://radio.example"})
	assert.Equal(t, "media", bm2.GroupID, "empty group selects the active group")
}

func TestManageBookmarks_DefaultIDsAreUnique(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageBookmarksUseCase(newTestStore(t))

	seen := map[string]bool{}
	for range 50 {
		bm := uc.AddBookmark(ctx, usecase.BookmarkInput{Title: "x", URL: "https://x.example"})
		assert.False(t, seen[bm.ID])
		seen[bm.ID] = true
	}
}

func TestManageBookmarks_RemoveAndUpdateBookmark(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageBookmarksUseCase(newTestStore(t))

	uc.RemoveBookmark(ctx, "1")
	assert.Equal(t, -1, entity.FindBookmark(uc.ListBookmarks(), "1"))
	assert.Len(t, uc.ListBookmarks(), 9)

	uc.RemoveBookmark(ctx, "does-not-exist")
	assert.Len(t, uc.ListBookmarks(), 9)

	uc.UpdateBookmark(ctx, "2", usecase.BookmarkPatch{Title: ptr("Renamed")})
	list := uc.ListBookmarks()
	i := entity.FindBookmark(list, "2")
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, "Renamed", list[i].Title)
	assert.NotEmpty(t, list[i].URL, "unpatched fields are kept")

	before := uc.ListBookmarks()
	uc.UpdateBookmark(ctx, "missing", usecase.BookmarkPatch{Title: ptr("x")})
	assert.Equal(t, before, uc.ListBookmarks())
}

func TestManageBookmarks_MoveBookmarkToGroup(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageBookmarksUseCase(newTestStore(t))

	uc.MoveBookmarkToGroup(ctx, "1", "social")

	social := uc.GetBookmarksByGroup("social")
	assert.Equal(t, 1, countID(social, "1"))
}

func TestManageBookmarks_AddGroup(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageBookmarksUseCase(newTestStore(t)).WithIDGenerator(sequentialIDs())

	id := uc.AddGroup(ctx, usecase.GroupInput{Name: "Work", Icon: "Briefcase"})

	assert.Equal(t, "id-1", id)
	groups := uc.ListGroups()
	assert.Len(t, groups, 5)
	assert.Equal(t, entity.Group{ID: id, Name: "Work", Icon: "Briefcase"}, groups[4])
}

func TestManageBookmarks_RemoveGroupReassignsToDefault(t *testing.T) {
	ctx := testContext()
	store := newTestStore(t)
	uc := usecase.NewManageBookmarksUseCase(store)

	devBefore := uc.GetBookmarksByGroup("dev")
	require.NotEmpty(t, devBefore)
	defaultBefore := uc.GetBookmarksByGroup(entity.DefaultGroupID)
	store.ActiveGroupID.Set("dev")

	assert.True(t, uc.RemoveGroup(ctx, "dev"))

	assert.Equal(t, -1, entity.FindGroup(uc.ListGroups(), "dev"))
	assert.Empty(t, uc.GetBookmarksByGroup("dev"))
	assert.Len(t, uc.GetBookmarksByGroup(entity.DefaultGroupID), len(defaultBefore)+len(devBefore))
	assert.Equal(t, entity.DefaultGroupID, store.ActiveGroupID.Get())
	assertGroupIntegrity(t, store)
}

func TestManageBookmarks_RemoveGroupKeepsOtherActiveGroup(t *testing.T) {
	ctx := testContext()
	store := newTestStore(t)
	uc := usecase.NewManageBookmarksUseCase(store)
	store.ActiveGroupID.Set("media")

	assert.True(t, uc.RemoveGroup(ctx, "dev"))
	assert.Equal(t, "media", store.ActiveGroupID.Get())
}

func TestManageBookmarks_RemoveDefaultGroupFails(t *testing.T) {
	ctx := testContext()
	store := newTestStore(t)
	uc := usecase.NewManageBookmarksUseCase(store)
	before := store.Snapshot()

	assert.False(t, uc.RemoveGroup(ctx, entity.DefaultGroupID))
	assert.False(t, uc.RemoveGroup(ctx, "unknown"))

	assert.Equal(t, before, store.Snapshot())
}

func TestManageBookmarks_UpdateGroupAndSetActive(t *testing.T) {
	ctx := testContext()
	store := newTestStore(t)
	uc := usecase.NewManageBookmarksUseCase(store)

	uc.UpdateGroup(ctx, "media", usecase.GroupPatch{Icon: ptr("Music")})
	groups := uc.ListGroups()
	i := entity.FindGroup(groups, "media")
	assert.Equal(t, "Music", groups[i].Icon)
	assert.Equal(t, "Media", groups[i].Name)

	assert.True(t, uc.SetActiveGroup(ctx, "media"))
	assert.Equal(t, "media", store.ActiveGroupID.Get())
	assert.False(t, uc.SetActiveGroup(ctx, "nope"))
	assert.Equal(t, "media", store.ActiveGroupID.Get())
}

func TestManageBookmarks_IntegrityAfterOperationSequence(t *testing.T) {
	ctx := testContext()
	store := newTestStore(t)
	uc := usecase.NewManageBookmarksUseCase(store)

	work := uc.AddGroup(ctx, usecase.GroupInput{Name: "Work", Icon: "Briefcase"})
	uc.AddBookmark(ctx, usecase.BookmarkInput{Title: "Jira", URL: "https://jira.example", GroupID: work})
	uc.MoveBookmarkToGroup(ctx, "3", work)
	assert.True(t, uc.SetActiveGroup(ctx, work))
	assertGroupIntegrity(t, store)

	assert.True(t, uc.RemoveGroup(ctx, work))
	assert.True(t, uc.RemoveGroup(ctx, "social"))
	assert.False(t, uc.RemoveGroup(ctx, work))
	assertGroupIntegrity(t, store)
	assert.Equal(t, entity.DefaultGroupID, store.ActiveGroupID.Get())
}

func countID(list []entity.Bookmark, id string) int {
	n := 0
	for _, b := range list {
		if b.ID == id {
			n++
		}
	}
	return n
}
