package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchEngineShortcutsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range SearchEngines() {
		assert.False(t, seen[e.Shortcut], "shortcut %q reused", e.Shortcut)
		seen[e.Shortcut] = true
	}

	engine, ok := FindSearchEngine(DefaultSearchEngine)
	assert.True(t, ok)
	assert.Equal(t, SearchEngines()[0], engine)

	_, ok = FindSearchEngine("altavista")
	assert.False(t, ok)
}

func TestWallpaperCatalog(t *testing.T) {
	assert.Len(t, WallpapersByCategory(CategoryAll), len(LocalWallpapers()))
	assert.Len(t, WallpapersByCategory(""), len(LocalWallpapers()))
	assert.Empty(t, WallpapersByCategory("nonexistent"))

	for _, w := range WallpapersByCategory("ocean") {
		assert.Equal(t, "ocean", w.Category)
	}
	assert.Equal(t, []string{"nature", "landscape", "green"}, CategorySeeds("unknown"))
	assert.Equal(t, LocalWallpapers()[0].URL, DefaultBackgroundURL())
}

func TestSourcesAndHitokotoTypes(t *testing.T) {
	for _, id := range []string{WallpaperSourceLocal, WallpaperSourceRandom, WallpaperSourceUnsplash, WallpaperSourcePicsum, WallpaperSourceBing} {
		assert.True(t, IsWallpaperSource(id), id)
	}
	assert.False(t, IsWallpaperSource("flickr"))

	assert.Equal(t, []string{"a", "b", "c"}, DefaultHitokotoTypes())
	assert.True(t, IsHitokotoType("l"))
	assert.False(t, IsHitokotoType("z"))
	assert.Len(t, SettingKeys(), 12)
}
