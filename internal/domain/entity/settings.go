package entity

// Storage keys for each persisted settings field. The storage adapter adds
// its namespace prefix.
const (
	KeySearchEngine         = "searchEngine"
	KeyGroups               = "groups"
	KeyBookmarks            = "bookmarks"
	KeyActiveGroupID        = "activeGroupId"
	KeyBackgroundURL        = "backgroundUrl"
	KeyWallpaperSource      = "wallpaperSource"
	KeyShowClock            = "showClock"
	KeyShowSeconds          = "showSeconds"
	KeyUse24Hour            = "use24Hour"
	KeyBackgroundBrightness = "backgroundBrightness"
	KeyBackgroundBlur       = "backgroundBlur"
	KeyHitokotoTypes        = "hitokotoTypes"
)

// SettingKeys lists every persisted key in a stable order.
func SettingKeys() []string {
	return []string{
		KeySearchEngine,
		KeyGroups,
		KeyBookmarks,
		KeyActiveGroupID,
		KeyBackgroundURL,
		KeyWallpaperSource,
		KeyShowClock,
		KeyShowSeconds,
		KeyUse24Hour,
		KeyBackgroundBrightness,
		KeyBackgroundBlur,
		KeyHitokotoTypes,
	}
}

// Setting defaults.
const (
	DefaultSearchEngine         = "google"
	DefaultWallpaperSource      = WallpaperSourceLocal
	DefaultShowClock            = true
	DefaultShowSeconds          = false
	DefaultUse24Hour            = true
	DefaultBackgroundBrightness = 70
	DefaultBackgroundBlur       = 8

	MinBackgroundBrightness = 0
	MaxBackgroundBrightness = 100
)

// DefaultBackgroundURL is the first curated wallpaper.
func DefaultBackgroundURL() string {
	return LocalWallpapers()[0].URL
}

// DefaultHitokotoTypes returns the quote categories checked on first run.
func DefaultHitokotoTypes() []string {
	var ids []string
	for _, t := range HitokotoTypes() {
		if t.Checked {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// Settings is a point-in-time copy of every persisted field plus the
// derived active group view.
type Settings struct {
	SearchEngine         string     `json:"searchEngine"`
	Groups               []Group    `json:"groups"`
	Bookmarks            []Bookmark `json:"bookmarks"`
	ActiveGroupID        string     `json:"activeGroupId"`
	ActiveGroupBookmarks []Bookmark `json:"activeGroupBookmarks"`
	BackgroundURL        string     `json:"backgroundUrl"`
	WallpaperSource      string     `json:"wallpaperSource"`
	ShowClock            bool       `json:"showClock"`
	ShowSeconds          bool       `json:"showSeconds"`
	Use24Hour            bool       `json:"use24Hour"`
	BackgroundBrightness int        `json:"backgroundBrightness"`
	BackgroundBlur       int        `json:"backgroundBlur"`
	HitokotoTypes        []string   `json:"hitokotoTypes"`
}
