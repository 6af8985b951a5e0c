package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/mytab/internal/application/settings"
	"github.com/bnema/mytab/internal/domain/entity"
	"github.com/bnema/mytab/internal/logging"
)

var (
	ErrUnknownSearchEngine    = errors.New("unknown search engine")
	ErrUnknownWallpaperSource = errors.New("unknown wallpaper source")
	ErrUnknownHitokotoType    = errors.New("unknown hitokoto type")
)

// PreferencesPatch lists the display and search preferences to change.
// Nil fields are kept.
type PreferencesPatch struct {
	SearchEngine         *string   `json:"searchEngine,omitempty"`
	WallpaperSource      *string   `json:"wallpaperSource,omitempty"`
	ShowClock            *bool     `json:"showClock,omitempty"`
	ShowSeconds          *bool     `json:"showSeconds,omitempty"`
	Use24Hour            *bool     `json:"use24Hour,omitempty"`
	BackgroundBrightness *int      `json:"backgroundBrightness,omitempty"`
	BackgroundBlur       *int      `json:"backgroundBlur,omitempty"`
	HitokotoTypes        *[]string `json:"hitokotoTypes,omitempty"`
}

// UpdatePreferencesUseCase validates and applies preference changes.
type UpdatePreferencesUseCase struct {
	store *settings.Store
}

// NewUpdatePreferencesUseCase creates a new preferences use case.
func NewUpdatePreferencesUseCase(store *settings.Store) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{store: store}
}

// Apply validates the whole patch, then applies it. Nothing is changed when
// validation fails. Brightness is clamped to 0-100 and blur to >= 0.
func (uc *UpdatePreferencesUseCase) Apply(ctx context.Context, patch PreferencesPatch) error {
	log := logging.FromContext(ctx)
	log.Debug().Msg("applying preferences")

	if err := validatePreferences(patch); err != nil {
		return err
	}

	uc.store.Mutate(func() {
		if patch.SearchEngine != nil {
			uc.store.SearchEngine.Set(*patch.SearchEngine)
		}
		if patch.WallpaperSource != nil {
			uc.store.WallpaperSource.Set(*patch.WallpaperSource)
		}
		if patch.ShowClock != nil {
			uc.store.ShowClock.Set(*patch.ShowClock)
		}
		if patch.ShowSeconds != nil {
			uc.store.ShowSeconds.Set(*patch.ShowSeconds)
		}
		if patch.Use24Hour != nil {
			uc.store.Use24Hour.Set(*patch.Use24Hour)
		}
		if patch.BackgroundBrightness != nil {
			uc.store.BackgroundBrightness.Set(clamp(*patch.BackgroundBrightness,
				entity.MinBackgroundBrightness, entity.MaxBackgroundBrightness))
		}
		if patch.BackgroundBlur != nil {
			uc.store.BackgroundBlur.Set(max(*patch.BackgroundBlur, 0))
		}
		if patch.HitokotoTypes != nil {
			types := make([]string, len(*patch.HitokotoTypes))
			copy(types, *patch.HitokotoTypes)
			uc.store.HitokotoTypes.Set(types)
		}
	})

	log.Info().Msg("preferences updated")
	return nil
}

func validatePreferences(patch PreferencesPatch) error {
	if patch.SearchEngine != nil {
		if _, ok := entity.FindSearchEngine(*patch.SearchEngine); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSearchEngine, *patch.SearchEngine)
		}
	}
	if patch.WallpaperSource != nil && !entity.IsWallpaperSource(*patch.WallpaperSource) {
		return fmt.Errorf("%w: %q", ErrUnknownWallpaperSource, *patch.WallpaperSource)
	}
	if patch.HitokotoTypes != nil {
		for _, id := range *patch.HitokotoTypes {
			if !entity.IsHitokotoType(id) {
				return fmt.Errorf("%w: %q", ErrUnknownHitokotoType, id)
			}
		}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
