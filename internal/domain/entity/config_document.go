package entity

import "time"

// ConfigDocumentVersion is the only export format version.
const ConfigDocumentVersion = 1

// ExportTimeLayout renders timestamps like JavaScript's toISOString.
const ExportTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// ConfigDocument is the versioned export/import file.
type ConfigDocument struct {
	Version    int        `json:"version" jsonschema:"minimum=1"`
	ExportTime string     `json:"exportTime" jsonschema:"format=date-time"`
	Data       ConfigData `json:"data"`
}

// ConfigData is the persisted subset carried by an export.
type ConfigData struct {
	Groups          []Group    `json:"groups"`
	Bookmarks       []Bookmark `json:"bookmarks"`
	BackgroundURL   string     `json:"backgroundUrl"`
	WallpaperSource string     `json:"wallpaperSource"`
	CurrentEngine   string     `json:"currentEngine"`
	ShowClock       bool       `json:"showClock"`
	ShowSeconds     bool       `json:"showSeconds"`
	Use24Hour       bool       `json:"use24Hour"`
}

// FormatExportTime renders t in UTC with millisecond precision.
func FormatExportTime(t time.Time) string {
	return t.UTC().Format(ExportTimeLayout)
}

// ImportResult acknowledges a successful import.
type ImportResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ImportTime string `json:"importTime"` // exportTime of the imported document
}
