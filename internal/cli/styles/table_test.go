package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/mytab/internal/domain/build"
	"github.com/bnema/mytab/internal/domain/entity"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "日本…", truncate("日本語テキスト", 3))
}

func TestBookmarksTable(t *testing.T) {
	theme := NewTheme()
	assert.Contains(t, BookmarksTable(theme, nil, nil), "No bookmarks")

	out := BookmarksTable(theme, entity.DefaultBookmarks()[:1], entity.DefaultGroups())
	assert.Contains(t, out, "GitHub")
	assert.Contains(t, out, "Development", "group ids are shown by name")
}

func TestGroupsTable_MarksActiveGroupAndCounts(t *testing.T) {
	out := GroupsTable(NewTheme(), entity.DefaultGroups(), entity.DefaultBookmarks(), "media")
	assert.Contains(t, out, IconStar)
	assert.Contains(t, out, "Media")
	assert.Contains(t, out, "3", "three built-in media bookmarks")
}

func TestCountBadge(t *testing.T) {
	theme := NewTheme()
	assert.Contains(t, theme.CountBadge(0, 12), "0/12 selected")
	assert.Contains(t, theme.CountBadge(3, 12), "3/12 selected")
}

func TestAboutRenderer_IncludesFields(t *testing.T) {
	out := NewAboutRenderer(NewTheme()).Render(build.Info{Version: "1.2.3"},
		AboutField{Label: "Storage", Value: "sqlite"})
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "sqlite")
	assert.Contains(t, out, build.RepoURL())
}
