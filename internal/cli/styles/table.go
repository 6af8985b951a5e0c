package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/mytab/internal/domain/entity"
)

const maxCellWidth = 48

// NewTable renders a themed, rounded table.
func NewTable(theme *Theme, headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
	oddStyle := cellStyle.Foreground(theme.Muted)

	for _, row := range rows {
		for i := range row {
			row[i] = truncate(row[i], maxCellWidth)
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 1:
				return oddStyle
			default:
				return cellStyle
			}
		})
	return t.String()
}

// BookmarksTable lists bookmarks with their group names.
func BookmarksTable(theme *Theme, bookmarks []entity.Bookmark, groups []entity.Group) string {
	if len(bookmarks) == 0 {
		return theme.Subtle.Render("No bookmarks")
	}
	names := make(map[string]string, len(groups))
	for _, g := range groups {
		names[g.ID] = g.Name
	}

	rows := make([][]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		group := names[b.GroupID]
		if group == "" {
			group = b.GroupID
		}
		rows = append(rows, []string{b.ID, b.Title, b.URL, group})
	}
	return NewTable(theme, []string{"ID", "Title", "URL", "Group"}, rows)
}

// GroupsTable lists groups with their bookmark counts; the active one is starred.
func GroupsTable(theme *Theme, groups []entity.Group, bookmarks []entity.Bookmark, activeID string) string {
	counts := make(map[string]int)
	for _, b := range bookmarks {
		counts[b.GroupID]++
	}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		marker := ""
		if g.ID == activeID {
			marker = IconStar
		}
		rows = append(rows, []string{marker, g.ID, g.Name, g.Icon, strconv.Itoa(counts[g.ID])})
	}
	return NewTable(theme, []string{"", "ID", "Name", "Icon", "Bookmarks"}, rows)
}

// SettingsTable shows every scalar preference.
func SettingsTable(theme *Theme, s entity.Settings) string {
	rows := [][]string{
		{entity.KeySearchEngine, s.SearchEngine},
		{entity.KeyActiveGroupID, s.ActiveGroupID},
		{entity.KeyWallpaperSource, s.WallpaperSource},
		{entity.KeyBackgroundURL, s.BackgroundURL},
		{entity.KeyBackgroundBrightness, strconv.Itoa(s.BackgroundBrightness)},
		{entity.KeyBackgroundBlur, strconv.Itoa(s.BackgroundBlur)},
		{entity.KeyShowClock, strconv.FormatBool(s.ShowClock)},
		{entity.KeyShowSeconds, strconv.FormatBool(s.ShowSeconds)},
		{entity.KeyUse24Hour, strconv.FormatBool(s.Use24Hour)},
		{entity.KeyHitokotoTypes, strings.Join(s.HitokotoTypes, ",")},
		{entity.KeyGroups, fmt.Sprintf("%d groups", len(s.Groups))},
		{entity.KeyBookmarks, fmt.Sprintf("%d bookmarks", len(s.Bookmarks))},
	}
	return NewTable(theme, []string{"Key", "Value"}, rows)
}

// WallpaperSourcesTable lists the wallpaper sources; the selected one is starred.
func WallpaperSourcesTable(theme *Theme, sources []entity.WallpaperSource, current string) string {
	rows := make([][]string, 0, len(sources))
	for _, src := range sources {
		marker := ""
		if src.ID == current {
			marker = IconStar
		}
		rows = append(rows, []string{marker, src.ID, src.Name})
	}
	return NewTable(theme, []string{"", "ID", "Name"}, rows)
}

// CategoriesTable lists the wallpaper categories with their curated image counts.
func CategoriesTable(theme *Theme, categories []entity.WallpaperCategory) string {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{c.ID, c.Name, strconv.Itoa(len(entity.WallpapersByCategory(c.ID)))})
	}
	return NewTable(theme, []string{"ID", "Name", "Curated"}, rows)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
