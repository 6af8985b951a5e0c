package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mytab/internal/application/usecase"
)

func TestUpdatePreferences_Apply(t *testing.T) {
	ctx := testContext()
	store := newTestStore(t)
	uc := usecase.NewUpdatePreferencesUseCase(store)

	err := uc.Apply(ctx, usecase.PreferencesPatch{
		SearchEngine:    ptr("duckduckgo"),
		WallpaperSource: ptr("bing"),
		ShowSeconds:     ptr(true),
		Use24Hour:       ptr(false),
		HitokotoTypes:   ptr([]string{"d", "i"}),
	})
	require.NoError(t, err)

	assert.Equal(t, "duckduckgo", store.SearchEngine.Get())
	assert.Equal(t, "bing", store.WallpaperSource.Get())
	assert.True(t, store.ShowSeconds.Get())
	assert.False(t, store.Use24Hour.Get())
	assert.True(t, store.ShowClock.Get(), "unset fields are kept")
	assert.Equal(t, []string{"d", "i"}, store.HitokotoTypes.Get())
}

func TestUpdatePreferences_Clamps(t *testing.T) {
	ctx := testContext()
	store := newTestStore(t)
	uc := usecase.NewUpdatePreferencesUseCase(store)

	require.NoError(t, uc.Apply(ctx, usecase.PreferencesPatch{BackgroundBrightness: ptr(140), BackgroundBlur: ptr(-3)}))
	assert.Equal(t, 100, store.BackgroundBrightness.Get())
	assert.Equal(t, 0, store.BackgroundBlur.Get())

	require.NoError(t, uc.Apply(ctx, usecase.PreferencesPatch{BackgroundBrightness: ptr(-1)}))
	assert.Equal(t, 0, store.BackgroundBrightness.Get())
}

func TestUpdatePreferences_RejectsUnknownIDs(t *testing.T) {
	ctx := testContext()
	store := newTestStore(t)
	uc := usecase.NewUpdatePreferencesUseCase(store)
	before := store.Snapshot()

	err := uc.Apply(ctx, usecase.PreferencesPatch{ShowClock: ptr(false), SearchEngine: ptr("altavista")})
	assert.ErrorIs(t, err, usecase.ErrUnknownSearchEngine)

	err = uc.Apply(ctx, usecase.PreferencesPatch{WallpaperSource: ptr("flickr")})
	assert.ErrorIs(t, err, usecase.ErrUnknownWallpaperSource)

	err = uc.Apply(ctx, usecase.PreferencesPatch{HitokotoTypes: ptr([]string{"a", "z"})})
	assert.ErrorIs(t, err, usecase.ErrUnknownHitokotoType)

	assert.Equal(t, before, store.Snapshot(), "failed validation applies nothing")
}

func TestUpdatePreferences_EmptyHitokotoSelectionAllowed(t *testing.T) {
	ctx := testContext()
	store := newTestStore(t)

	require.NoError(t, usecase.NewUpdatePreferencesUseCase(store).Apply(ctx, usecase.PreferencesPatch{HitokotoTypes: ptr([]string{})}))
	assert.Empty(t, store.HitokotoTypes.Get())
}
