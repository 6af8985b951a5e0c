package homepage

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/mytab/internal/application/usecase"
	"github.com/bnema/mytab/internal/domain/entity"
	"github.com/bnema/mytab/internal/logging"
	"github.com/go-chi/chi/v5"
)

// BookmarkHandlers serves bookmark CRUD for the new-tab page.
type BookmarkHandlers struct {
	bookmarksUC *usecase.ManageBookmarksUseCase
}

// NewBookmarkHandlers creates a new BookmarkHandlers instance.
func NewBookmarkHandlers(bookmarksUC *usecase.ManageBookmarksUseCase) *BookmarkHandlers {
	return &BookmarkHandlers{bookmarksUC: bookmarksUC}
}

type createBookmarkRequest struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Icon    string `json:"icon"`
	GroupID string `json:"groupId"`
}

type moveBookmarkRequest struct {
	GroupID string `json:"groupId"`
}

// HandleList returns all bookmarks, or those of ?group= when given.
func (h *BookmarkHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	if group := r.URL.Query().Get("group"); group != "" {
		writeSuccess(w, r, http.StatusOK, h.bookmarksUC.GetBookmarksByGroup(group))
		return
	}
	writeSuccess(w, r, http.StatusOK, h.bookmarksUC.ListBookmarks())
}

// HandleCreate adds a bookmark. An empty groupId selects the active group.
func (h *BookmarkHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBody[createBookmarkRequest](w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, r, fmt.Errorf("%w: url is required", errBadRequest))
		return
	}

	logging.FromContext(r.Context()).Debug().Str("url", req.URL).Msg("handling bookmark create")

	bookmark := h.bookmarksUC.AddBookmark(r.Context(), usecase.BookmarkInput{
		Title:   req.Title,
		URL:     req.URL,
		Icon:    req.Icon,
		GroupID: req.GroupID,
	})
	writeSuccess(w, r, http.StatusCreated, bookmark)
}

// HandleUpdate patches the bookmark {id}.
func (h *BookmarkHandlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.exists(id) {
		writeError(w, r, fmt.Errorf("%w: bookmark %s", errNotFound, id))
		return
	}
	patch, err := decodeBody[usecase.BookmarkPatch](w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.bookmarksUC.UpdateBookmark(r.Context(), id, patch)
	writeSuccess(w, r, http.StatusOK, h.find(id))
}

// HandleDelete removes the bookmark {id}. Unknown ids are a no-op.
func (h *BookmarkHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.bookmarksUC.RemoveBookmark(r.Context(), chi.URLParam(r, "id"))
	writeSuccess(w, r, http.StatusOK, nil)
}

// HandleMove reassigns the bookmark {id} to another group.
func (h *BookmarkHandlers) HandleMove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.exists(id) {
		writeError(w, r, fmt.Errorf("%w: bookmark %s", errNotFound, id))
		return
	}
	req, err := decodeBody[moveBookmarkRequest](w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if req.GroupID == "" {
		writeError(w, r, fmt.Errorf("%w: groupId is required", errBadRequest))
		return
	}

	h.bookmarksUC.MoveBookmarkToGroup(r.Context(), id, req.GroupID)
	writeSuccess(w, r, http.StatusOK, h.find(id))
}

func (h *BookmarkHandlers) exists(id string) bool {
	return entity.FindBookmark(h.bookmarksUC.ListBookmarks(), id) >= 0
}

func (h *BookmarkHandlers) find(id string) *entity.Bookmark {
	bookmarks := h.bookmarksUC.ListBookmarks()
	if i := entity.FindBookmark(bookmarks, id); i >= 0 {
		return &bookmarks[i]
	}
	return nil
}
