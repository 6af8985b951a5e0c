package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mytab/internal/domain/entity"
)

// BrowserBookmarkItem is a browser bookmark row in the import picker.
type BrowserBookmarkItem struct {
	Bookmark entity.BrowserBookmark
}

// FilterValue implements list.Item.
func (i BrowserBookmarkItem) FilterValue() string {
	return i.Bookmark.Title + " " + i.Bookmark.URL + " " + i.Bookmark.FolderPath
}

// TitleValue returns the title, or the URL for untitled bookmarks.
func (i BrowserBookmarkItem) TitleValue() string {
	if i.Bookmark.Title != "" {
		return i.Bookmark.Title
	}
	return i.Bookmark.URL
}

// BrowserBookmarkDelegate renders picker items with a checkbox.
// IsSelected reports the checkbox state by bookmark ExternalID.
type BrowserBookmarkDelegate struct {
	Theme      *Theme
	IsSelected func(id string) bool
}

// Height returns the height of each item.
func (BrowserBookmarkDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (BrowserBookmarkDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (BrowserBookmarkDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d BrowserBookmarkDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	bi, ok := item.(BrowserBookmarkItem)
	if !ok {
		return
	}

	const (
		maxTitleLength = 60
		maxURLLength   = 50
	)

	t := d.Theme
	isSelected := index == m.Index()

	cursor := cursorEmpty
	titleStyle := t.ListItemTitle
	urlStyle := t.ListItemDesc
	if isSelected {
		cursor = cursorSelected
		titleStyle = titleStyle.Foreground(t.Accent).Bold(true)
		urlStyle = urlStyle.Foreground(t.Text)
	}

	box := t.Subtle.Render(IconCheckboxEmpty)
	if d.IsSelected != nil && d.IsSelected(bi.Bookmark.ExternalID) {
		box = t.SuccessStyle.Render(IconCheckboxChecked)
	}

	line1 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		box,
		" ",
		titleStyle.Render(truncate(bi.TitleValue(), maxTitleLength)),
	)

	line2 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		strings.Repeat(" ", 4),
		urlStyle.Render(truncate(bi.Bookmark.URL, maxURLLength)),
		" ",
		t.FolderBadge(bi.Bookmark.FolderPath),
	)

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewBrowserBookmarkList creates a themed, filterable list for the picker.
func NewBrowserBookmarkList(
	theme *Theme,
	bookmarks []entity.BrowserBookmark,
	isSelected func(id string) bool,
	width, height int,
) list.Model {
	items := make([]list.Item, len(bookmarks))
	for i, b := range bookmarks {
		items[i] = BrowserBookmarkItem{Bookmark: b}
	}

	l := list.New(items, BrowserBookmarkDelegate{Theme: theme, IsSelected: isSelected}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)
	l.FilterInput.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	l.FilterInput.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return l
}
