package homepage

import (
	"fmt"
	"net/http"

	"github.com/bnema/mytab/internal/application/settings"
	"github.com/bnema/mytab/internal/application/usecase"
	"github.com/bnema/mytab/internal/domain/entity"
	"github.com/bnema/mytab/internal/logging"
)

// PreferenceHandlers serves the settings snapshot, preference changes and wallpaper selection.
type PreferenceHandlers struct {
	store       *settings.Store
	prefsUC     *usecase.UpdatePreferencesUseCase
	wallpaperUC *usecase.ResolveWallpaperUseCase
}

// NewPreferenceHandlers creates a new PreferenceHandlers instance.
func NewPreferenceHandlers(
	store *settings.Store,
	prefsUC *usecase.UpdatePreferencesUseCase,
	wallpaperUC *usecase.ResolveWallpaperUseCase,
) *PreferenceHandlers {
	return &PreferenceHandlers{store: store, prefsUC: prefsUC, wallpaperUC: wallpaperUC}
}

// Catalog is the static data the page renders pickers from.
type Catalog struct {
	SearchEngines       []entity.SearchEngine      `json:"searchEngines"`
	Icons               []string                   `json:"icons"`
	HitokotoTypes       []entity.HitokotoType      `json:"hitokotoTypes"`
	WallpaperSources    []entity.WallpaperSource   `json:"wallpaperSources"`
	WallpaperCategories []entity.WallpaperCategory `json:"wallpaperCategories"`
	Wallpapers          []entity.Wallpaper         `json:"wallpapers"`
}

type wallpaperRequest struct {
	// URL sets an explicit background; otherwise Source (or the stored source) is resolved.
	URL      string `json:"url"`
	Source   string `json:"source"`
	Category string `json:"category"`
}

// HandleState returns the full settings snapshot.
func (h *PreferenceHandlers) HandleState(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, r, http.StatusOK, h.store.Snapshot())
}

// HandleCatalog returns engines, icons, quote types and wallpaper catalogs.
func (h *PreferenceHandlers) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, r, http.StatusOK, Catalog{
		SearchEngines:       entity.SearchEngines(),
		Icons:               entity.AvailableIcons(),
		HitokotoTypes:       entity.HitokotoTypes(),
		WallpaperSources:    h.wallpaperUC.Sources(),
		WallpaperCategories: h.wallpaperUC.Categories(),
		Wallpapers:          entity.LocalWallpapers(),
	})
}

// HandleUpdate applies a preferences patch atomically.
func (h *PreferenceHandlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	patch, err := decodeBody[usecase.PreferencesPatch](w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.prefsUC.Apply(r.Context(), patch); err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, h.store.Snapshot())
}

// HandleWallpaper resolves and commits a new background.
func (h *PreferenceHandlers) HandleWallpaper(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBody[wallpaperRequest](w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if req.Source != "" && !entity.IsWallpaperSource(req.Source) {
		writeError(w, r, fmt.Errorf("%w: %s", usecase.ErrUnknownWallpaperSource, req.Source))
		return
	}

	ctx := r.Context()
	logging.FromContext(ctx).Debug().
		Str("source", req.Source).
		Str("category", req.Category).
		Msg("handling wallpaper change")

	var url string
	switch {
	case req.URL != "":
		url, err = h.wallpaperUC.SetBackground(ctx, req.URL)
	case req.Source != "":
		url, err = h.wallpaperUC.Resolve(ctx, req.Source, req.Category)
	default:
		url, err = h.wallpaperUC.ResolveCurrent(ctx, req.Category)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, map[string]string{"backgroundUrl": url})
}
