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

// GroupHandlers serves group CRUD and active group selection.
type GroupHandlers struct {
	bookmarksUC *usecase.ManageBookmarksUseCase
}

// NewGroupHandlers creates a new GroupHandlers instance.
func NewGroupHandlers(bookmarksUC *usecase.ManageBookmarksUseCase) *GroupHandlers {
	return &GroupHandlers{bookmarksUC: bookmarksUC}
}

type createGroupRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type setActiveGroupRequest struct {
	ID string `json:"id"`
}

// HandleList returns every group, default first.
func (h *GroupHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, r, http.StatusOK, h.bookmarksUC.ListGroups())
}

// HandleCreate adds a group and returns it.
func (h *GroupHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBody[createGroupRequest](w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, r, fmt.Errorf("%w: name is required", errBadRequest))
		return
	}

	logging.FromContext(r.Context()).Debug().Str("name", req.Name).Msg("handling group create")

	id := h.bookmarksUC.AddGroup(r.Context(), usecase.GroupInput{Name: req.Name, Icon: req.Icon})
	writeSuccess(w, r, http.StatusCreated, h.find(id))
}

// HandleUpdate patches the group {id}.
func (h *GroupHandlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.find(id) == nil {
		writeError(w, r, fmt.Errorf("%w: group %s", errNotFound, id))
		return
	}
	patch, err := decodeBody[usecase.GroupPatch](w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.bookmarksUC.UpdateGroup(r.Context(), id, patch)
	writeSuccess(w, r, http.StatusOK, h.find(id))
}

// HandleDelete removes the group {id}; its bookmarks move to the default group.
func (h *GroupHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == entity.DefaultGroupID {
		writeError(w, r, fmt.Errorf("%w: the default group cannot be removed", errBadRequest))
		return
	}
	if !h.bookmarksUC.RemoveGroup(r.Context(), id) {
		writeError(w, r, fmt.Errorf("%w: group %s", errNotFound, id))
		return
	}
	writeSuccess(w, r, http.StatusOK, nil)
}

// HandleSetActive selects the group shown on the page.
func (h *GroupHandlers) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBody[setActiveGroupRequest](w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !h.bookmarksUC.SetActiveGroup(r.Context(), req.ID) {
		writeError(w, r, fmt.Errorf("%w: group %s", errNotFound, req.ID))
		return
	}
	writeSuccess(w, r, http.StatusOK, map[string]string{"activeGroupId": req.ID})
}

func (h *GroupHandlers) find(id string) *entity.Group {
	groups := h.bookmarksUC.ListGroups()
	if i := entity.FindGroup(groups, id); i >= 0 {
		return &groups[i]
	}
	return nil
}
