package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/mytab/internal/domain/entity"
)

// MaxConfigDocumentSize is the largest accepted import file (10 MiB).
const MaxConfigDocumentSize = 10 * 1024 * 1024

var (
	ErrFileTooLarge         = errors.New("config file too large (max 10MB)")
	ErrInvalidJSON          = errors.New("config file is not valid JSON")
	ErrInvalidFormat        = errors.New("invalid config file format")
	ErrUnsupportedVersion   = errors.New("unsupported config file version")
	ErrGroupsMalformed      = errors.New("groups data is malformed")
	ErrBookmarksMalformed   = errors.New("bookmarks data is malformed")
	ErrGroupMissingField    = errors.New("group is missing required fields")
	ErrBookmarkMissingField = errors.New("bookmark is missing required fields")
)

// ConfigPayload is a validated config document. Optional fields are only
// applied when present: collections when HasGroups/HasBookmarks, strings
// when non-empty, booleans when non-nil.
type ConfigPayload struct {
	Version    float64
	ExportTime string

	Groups       []entity.Group
	HasGroups    bool
	Bookmarks    []entity.Bookmark
	HasBookmarks bool

	BackgroundURL   string
	WallpaperSource string
	CurrentEngine   string

	ShowClock   *bool
	ShowSeconds *bool
	Use24Hour   *bool
}

// ParseConfigDocument decodes and validates an exported config document.
// Validation completes before anything is returned, so callers never see a
// partially valid payload.
func ParseConfigDocument(raw []byte) (*ConfigPayload, error) {
	if len(raw) > MaxConfigDocumentSize {
		return nil, ErrFileTooLarge
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		if json.Valid(raw) {
			// valid JSON, but not an object
			return nil, ErrInvalidFormat
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	versionRaw, hasVersion := present(top, "version")
	dataRaw, hasData := present(top, "data")
	if !hasVersion || !hasData {
		return nil, ErrInvalidFormat
	}

	var version float64
	if err := json.Unmarshal(versionRaw, &version); err != nil || version < entity.ConfigDocumentVersion {
		return nil, ErrUnsupportedVersion
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(dataRaw, &data); err != nil {
		return nil, ErrInvalidFormat
	}

	payload := &ConfigPayload{Version: version}
	if exportRaw, ok := present(top, "exportTime"); ok {
		_ = json.Unmarshal(exportRaw, &payload.ExportTime)
	}

	var groupItems, bookmarkItems []map[string]json.RawMessage
	if groupsRaw, ok := present(data, "groups"); ok {
		items, err := decodeObjectArray(groupsRaw, ErrGroupsMalformed, ErrGroupMissingField)
		if err != nil {
			return nil, err
		}
		groupItems = items
		payload.HasGroups = true
	}
	if bookmarksRaw, ok := present(data, "bookmarks"); ok {
		items, err := decodeObjectArray(bookmarksRaw, ErrBookmarksMalformed, ErrBookmarkMissingField)
		if err != nil {
			return nil, err
		}
		bookmarkItems = items
		payload.HasBookmarks = true
	}

	if payload.HasGroups {
		payload.Groups = make([]entity.Group, 0, len(groupItems))
		for i, item := range groupItems {
			id, idOK := requiredString(item, "id")
			name, nameOK := requiredString(item, "name")
			if !idOK || !nameOK {
				return nil, fmt.Errorf("%w: group #%d needs id and name", ErrGroupMissingField, i+1)
			}
			icon, _ := optionalString(item, "icon")
			payload.Groups = append(payload.Groups, entity.Group{ID: id, Name: name, Icon: icon})
		}
	}

	if payload.HasBookmarks {
		payload.Bookmarks = make([]entity.Bookmark, 0, len(bookmarkItems))
		for i, item := range bookmarkItems {
			id, idOK := requiredString(item, "id")
			title, titleOK := requiredString(item, "title")
			link, urlOK := requiredString(item, "url")
			if !idOK || !titleOK || !urlOK {
				return nil, fmt.Errorf("%w: bookmark #%d needs id, title and url", ErrBookmarkMissingField, i+1)
			}
			icon, _ := optionalString(item, "icon")
			groupID, _ := optionalString(item, "groupId")
			payload.Bookmarks = append(payload.Bookmarks, entity.Bookmark{
				ID:      id,
				Title:   title,
				URL:     link,
				Icon:    icon,
				GroupID: groupID,
			})
		}
	}

	payload.BackgroundURL, _ = optionalString(data, "backgroundUrl")
	payload.WallpaperSource, _ = optionalString(data, "wallpaperSource")
	payload.CurrentEngine, _ = optionalString(data, "currentEngine")
	payload.ShowClock = optionalBool(data, "showClock")
	payload.ShowSeconds = optionalBool(data, "showSeconds")
	payload.Use24Hour = optionalBool(data, "use24Hour")

	return payload, nil
}

// present returns the raw value for key unless it is missing or null.
func present(obj map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// decodeObjectArray requires raw to be a JSON array whose elements are objects.
func decodeObjectArray(raw json.RawMessage, notArray, badElement error) ([]map[string]json.RawMessage, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, notArray
	}
	items := make([]map[string]json.RawMessage, 0, len(elems))
	for i, elem := range elems {
		var item map[string]json.RawMessage
		if err := json.Unmarshal(elem, &item); err != nil || item == nil {
			return nil, fmt.Errorf("%w: entry #%d is not an object", badElement, i+1)
		}
		items = append(items, item)
	}
	return items, nil
}

func requiredString(obj map[string]json.RawMessage, key string) (string, bool) {
	s, ok := optionalString(obj, key)
	return s, ok && s != ""
}

func optionalString(obj map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := present(obj, key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func optionalBool(obj map[string]json.RawMessage, key string) *bool {
	raw, ok := present(obj, key)
	if !ok {
		return nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil
	}
	return &b
}
