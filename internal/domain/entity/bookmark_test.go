package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBookmarksReferenceDefaultGroups(t *testing.T) {
	groups := DefaultGroups()
	assert.True(t, groups[0].IsDefault())

	ids := make(map[string]bool)
	for _, b := range DefaultBookmarks() {
		assert.False(t, ids[b.ID], "duplicate bookmark id %s", b.ID)
		ids[b.ID] = true
		assert.GreaterOrEqual(t, FindGroup(groups, b.GroupID), 0, "bookmark %s points at unknown group %s", b.ID, b.GroupID)
	}
}

func TestFindAndFilter(t *testing.T) {
	bookmarks := []Bookmark{
		{ID: "a", GroupID: "dev"},
		{ID: "b", GroupID: DefaultGroupID},
		{ID: "c", GroupID: "dev"},
	}

	assert.Equal(t, 2, FindBookmark(bookmarks, "c"))
	assert.Equal(t, -1, FindBookmark(bookmarks, "zz"))
	assert.Equal(t, -1, FindGroup(nil, DefaultGroupID))

	dev := FilterByGroup(bookmarks, "dev")
	assert.Equal(t, []string{"a", "c"}, []string{dev[0].ID, dev[1].ID})
	assert.NotNil(t, FilterByGroup(bookmarks, "none"))
	assert.Empty(t, FilterByGroup(bookmarks, "none"))
}
