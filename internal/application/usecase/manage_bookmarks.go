package usecase

import (
	"context"

	"github.com/bnema/mytab/internal/application/settings"
	"github.com/bnema/mytab/internal/domain/entity"
	"github.com/bnema/mytab/internal/logging"
)

// ManageBookmarksUseCase handles bookmark and group operations.
type ManageBookmarksUseCase struct {
	store *settings.Store
	newID IDGenerator
}

// NewManageBookmarksUseCase creates a new bookmark management use case.
func NewManageBookmarksUseCase(store *settings.Store) *ManageBookmarksUseCase {
	return &ManageBookmarksUseCase{store: store, newID: NewID}
}

// WithIDGenerator replaces the identifier source.
func (uc *ManageBookmarksUseCase) WithIDGenerator(gen IDGenerator) *ManageBookmarksUseCase {
	uc.newID = gen
	return uc
}

// BookmarkInput contains parameters for adding a bookmark.
type BookmarkInput struct {
	Title   string
	URL     string
	Icon    string
	GroupID string // empty selects the active group
}

// BookmarkPatch lists the bookmark fields to change; nil fields are kept.
type BookmarkPatch struct {
	Title   *string `json:"title,omitempty"`
	URL     *string `json:"url,omitempty"`
	Icon    *string `json:"icon,omitempty"`
	GroupID *string `json:"groupId,omitempty"`
}

// GroupInput contains parameters for adding a group.
type GroupInput struct {
	Name string
	Icon string
}

// GroupPatch lists the group fields to change; nil fields are kept.
type GroupPatch struct {
	Name *string `json:"name,omitempty"`
	Icon *string `json:"icon,omitempty"`
}

// AddBookmark appends a bookmark with a fresh id. The group is not checked.
func (uc *ManageBookmarksUseCase) AddBookmark(ctx context.Context, input BookmarkInput) entity.Bookmark {
	log := logging.FromContext(ctx)
	log.Debug().Str("url", input.URL).Str("title", input.Title).Msg("adding bookmark")

	var bm entity.Bookmark
	uc.store.Mutate(func() {
		groupID := input.GroupID
		if groupID == "" {
			groupID = uc.store.ActiveGroupID.Get()
		}
		bm = entity.Bookmark{
			ID:      uc.newID(),
			Title:   input.Title,
			URL:     input.URL,
			Icon:    input.Icon,
			GroupID: groupID,
		}
		uc.store.Bookmarks.Update(func(list []entity.Bookmark) []entity.Bookmark {
			return append(list, bm)
		})
	})

	log.Info().Str("id", bm.ID).Str("group", bm.GroupID).Msg("bookmark added")
	return bm
}

// RemoveBookmark deletes a bookmark. Unknown ids are ignored.
func (uc *ManageBookmarksUseCase) RemoveBookmark(ctx context.Context, id string) {
	log := logging.FromContext(ctx)
	log.Debug().Str("id", id).Msg("removing bookmark")

	removed := false
	uc.store.Mutate(func() {
		removed = uc.store.Bookmarks.Update(func(list []entity.Bookmark) []entity.Bookmark {
			if i := entity.FindBookmark(list, id); i >= 0 {
				return append(list[:i], list[i+1:]...)
			}
			return list
		})
	})

	if removed {
		log.Info().Str("id", id).Msg("bookmark removed")
	}
}

// UpdateBookmark merges patch into a bookmark. Unknown ids are ignored.
func (uc *ManageBookmarksUseCase) UpdateBookmark(ctx context.Context, id string, patch BookmarkPatch) {
	log := logging.FromContext(ctx)
	log.Debug().Str("id", id).Msg("updating bookmark")

	changed := false
	uc.store.Mutate(func() {
		changed = uc.store.Bookmarks.Update(func(list []entity.Bookmark) []entity.Bookmark {
			i := entity.FindBookmark(list, id)
			if i < 0 {
				return list
			}
			applyString(&list[i].Title, patch.Title)
			applyString(&list[i].URL, patch.URL)
			applyString(&list[i].Icon, patch.Icon)
			applyString(&list[i].GroupID, patch.GroupID)
			return list
		})
	})

	if changed {
		log.Info().Str("id", id).Msg("bookmark updated")
	}
}

// MoveBookmarkToGroup reassigns a bookmark. The target group is not checked.
func (uc *ManageBookmarksUseCase) MoveBookmarkToGroup(ctx context.Context, bookmarkID, groupID string) {
	log := logging.FromContext(ctx)
	log.Debug().Str("id", bookmarkID).Str("group", groupID).Msg("moving bookmark")

	uc.UpdateBookmark(ctx, bookmarkID, BookmarkPatch{GroupID: &groupID})
}

// AddGroup appends a group with a fresh id and returns the id.
func (uc *ManageBookmarksUseCase) AddGroup(ctx context.Context, input GroupInput) string {
	log := logging.FromContext(ctx)
	log.Debug().Str("name", input.Name).Msg("adding group")

	id := uc.newID()
	uc.store.Mutate(func() {
		uc.store.Groups.Update(func(groups []entity.Group) []entity.Group {
			return append(groups, entity.Group{ID: id, Name: input.Name, Icon: input.Icon})
		})
	})

	log.Info().Str("id", id).Str("name", input.Name).Msg("group added")
	return id
}

// RemoveGroup deletes a group, moving its bookmarks to the default group and
// resetting the active group when it was the one removed. It returns false
// for the default group and for unknown ids.
func (uc *ManageBookmarksUseCase) RemoveGroup(ctx context.Context, id string) bool {
	log := logging.FromContext(ctx)
	log.Debug().Str("id", id).Msg("removing group")

	if id == entity.DefaultGroupID {
		log.Debug().Msg("default group cannot be removed")
		return false
	}

	removed := false
	moved := 0
	uc.store.Mutate(func() {
		uc.store.Groups.Update(func(groups []entity.Group) []entity.Group {
			i := entity.FindGroup(groups, id)
			if i < 0 {
				return groups
			}
			removed = true
			return append(groups[:i], groups[i+1:]...)
		})
		if !removed {
			return
		}

		uc.store.Bookmarks.Update(func(list []entity.Bookmark) []entity.Bookmark {
			for i := range list {
				if list[i].GroupID == id {
					list[i].GroupID = entity.DefaultGroupID
					moved++
				}
			}
			return list
		})

		if uc.store.ActiveGroupID.Get() == id {
			uc.store.ActiveGroupID.Set(entity.DefaultGroupID)
		}
	})

	if !removed {
		log.Debug().Str("id", id).Msg("group not found")
		return false
	}

	log.Info().Str("id", id).Int("bookmarks_moved", moved).Msg("group removed")
	return true
}

// UpdateGroup merges patch into a group. Unknown ids are ignored.
func (uc *ManageBookmarksUseCase) UpdateGroup(ctx context.Context, id string, patch GroupPatch) {
	log := logging.FromContext(ctx)
	log.Debug().Str("id", id).Msg("updating group")

	changed := false
	uc.store.Mutate(func() {
		changed = uc.store.Groups.Update(func(groups []entity.Group) []entity.Group {
			i := entity.FindGroup(groups, id)
			if i < 0 {
				return groups
			}
			applyString(&groups[i].Name, patch.Name)
			applyString(&groups[i].Icon, patch.Icon)
			return groups
		})
	})

	if changed {
		log.Info().Str("id", id).Msg("group updated")
	}
}

// SetActiveGroup switches the active group. It returns false for unknown ids.
func (uc *ManageBookmarksUseCase) SetActiveGroup(ctx context.Context, id string) bool {
	log := logging.FromContext(ctx)
	log.Debug().Str("id", id).Msg("setting active group")

	ok := false
	uc.store.Mutate(func() {
		if entity.FindGroup(uc.store.Groups.Get(), id) < 0 {
			return
		}
		ok = true
		uc.store.ActiveGroupID.Set(id)
	})

	if !ok {
		log.Debug().Str("id", id).Msg("group not found")
	}
	return ok
}

// GetBookmarksByGroup returns the bookmarks assigned to groupID.
func (uc *ManageBookmarksUseCase) GetBookmarksByGroup(groupID string) []entity.Bookmark {
	return entity.FilterByGroup(uc.store.Bookmarks.Get(), groupID)
}

// ListGroups returns every group in display order.
func (uc *ManageBookmarksUseCase) ListGroups() []entity.Group {
	return uc.store.Groups.Get()
}

// ListBookmarks returns every bookmark in display order.
func (uc *ManageBookmarksUseCase) ListBookmarks() []entity.Bookmark {
	return uc.store.Bookmarks.Get()
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
