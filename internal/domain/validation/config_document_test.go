package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mytab/internal/domain/validation"
)

func TestParseConfigDocument_Valid(t *testing.T) {
	raw := `{
		"version": 1,
		"exportTime": "2024-05-01T10:00:00.000Z",
		"data": {
			"groups": [{"id": "default", "name": "Favorites", "icon": "Star"}],
			"bookmarks": [{"id": "a", "title": "Go", "url": "https://go.dev", "icon": "", "groupId": "default"}],
			"backgroundUrl": "https://img.example/bg.jpg",
			"wallpaperSource": "",
			"currentEngine": "bing",
			"showClock": false,
			"showSeconds": "yes"
		}
	}`

	payload, err := validation.ParseConfigDocument([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01T10:00:00.000Z", payload.ExportTime)
	assert.True(t, payload.HasGroups)
	assert.True(t, payload.HasBookmarks)
	require.Len(t, payload.Groups, 1)
	assert.Equal(t, "Star", payload.Groups[0].Icon)
	require.Len(t, payload.Bookmarks, 1)
	assert.Equal(t, "default", payload.Bookmarks[0].GroupID)
	assert.Equal(t, "https://img.example/bg.jpg", payload.BackgroundURL)
	assert.Empty(t, payload.WallpaperSource)
	assert.Equal(t, "bing", payload.CurrentEngine)
	require.NotNil(t, payload.ShowClock)
	assert.False(t, *payload.ShowClock)
	assert.Nil(t, payload.ShowSeconds, "non-boolean values are ignored")
	assert.Nil(t, payload.Use24Hour)
}

func TestParseConfigDocument_OptionalCollections(t *testing.T) {
	payload, err := validation.ParseConfigDocument([]byte(`{"version":1,"data":{"groups":null}}`))
	require.NoError(t, err)
	assert.False(t, payload.HasGroups)
	assert.False(t, payload.HasBookmarks)
}

func TestParseConfigDocument_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "not json", raw: `{version: 1`, want: validation.ErrInvalidJSON},
		{name: "json array", raw: `[]`, want: validation.ErrInvalidFormat},
		{name: "missing data", raw: `{"version":1}`, want: validation.ErrInvalidFormat},
		{name: "missing version", raw: `{"data":{}}`, want: validation.ErrInvalidFormat},
		{name: "data not object", raw: `{"version":1,"data":"x"}`, want: validation.ErrInvalidFormat},
		{name: "version zero", raw: `{"version":0,"data":{}}`, want: validation.ErrUnsupportedVersion},
		{name: "version string", raw: `{"version":"1","data":{}}`, want: validation.ErrUnsupportedVersion},
		{name: "negative version", raw: `{"version":-3,"data":{}}`, want: validation.ErrUnsupportedVersion},
		{name: "groups not array", raw: `{"version":1,"data":{"groups":{}}}`, want: validation.ErrGroupsMalformed},
		{name: "bookmarks not array", raw: `{"version":1,"data":{"bookmarks":"x"}}`, want: validation.ErrBookmarksMalformed},
		{name: "group without name", raw: `{"version":1,"data":{"groups":[{"id":"g"}]}}`, want: validation.ErrGroupMissingField},
		{name: "group with empty id", raw: `{"version":1,"data":{"groups":[{"id":"","name":"n"}]}}`, want: validation.ErrGroupMissingField},
		{name: "group not object", raw: `{"version":1,"data":{"groups":[3]}}`, want: validation.ErrGroupMissingField},
		{name: "bookmark without url", raw: `{"version":1,"data":{"bookmarks":[{"id":"1","title":"t"}]}}`, want: validation.ErrBookmarkMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := validation.ParseConfigDocument([]byte(tt.raw))
			assert.Nil(t, payload)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseConfigDocument_TooLarge(t *testing.T) {
	raw := []byte(`{"version":1,"data":{},"pad":"` + strings.Repeat("x", validation.MaxConfigDocumentSize) + `"}`)
	_, err := validation.ParseConfigDocument(raw)
	assert.ErrorIs(t, err, validation.ErrFileTooLarge)
}
