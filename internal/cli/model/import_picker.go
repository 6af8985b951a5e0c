// Package model holds the Bubble Tea models of the interactive commands.
package model

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mytab/internal/cli/styles"
	"github.com/bnema/mytab/internal/domain/entity"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeLines   = 4 // header + help
)

// ImportPickerModel lets the user tick browser bookmarks to import.
type ImportPickerModel struct {
	list  list.Model
	help  help.Model
	keys  styles.PickerKeyMap
	theme *styles.Theme

	bookmarks []entity.BrowserBookmark
	selected  map[string]bool
	source    string
	confirmed bool
}

// NewImportPickerModel creates a picker over bookmarks read from source.
func NewImportPickerModel(theme *styles.Theme, source string, bookmarks []entity.BrowserBookmark) *ImportPickerModel {
	m := &ImportPickerModel{
		help:      styles.NewStyledHelp(theme),
		keys:      styles.DefaultPickerKeyMap(),
		theme:     theme,
		bookmarks: bookmarks,
		selected:  make(map[string]bool, len(bookmarks)),
		source:    source,
	}
	m.list = styles.NewBrowserBookmarkList(theme, bookmarks, m.isSelected, defaultWidth, defaultHeight-chromeLines)
	return m
}

func (m *ImportPickerModel) isSelected(id string) bool {
	return m.selected[id]
}

// Init implements tea.Model.
func (m *ImportPickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *ImportPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.list.SetSize(msg.Width, max(msg.Height-chromeLines, 1))
		return m, nil

	case tea.KeyMsg:
		// While typing a filter every key belongs to the list.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.confirmed = false
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if item, ok := m.list.SelectedItem().(styles.BrowserBookmarkItem); ok {
				id := item.Bookmark.ExternalID
				m.selected[id] = !m.selected[id]
			}
			return m, nil
		case key.Matches(msg, m.keys.All):
			for _, it := range m.list.VisibleItems() {
				if bi, ok := it.(styles.BrowserBookmarkItem); ok {
					m.selected[bi.Bookmark.ExternalID] = true
				}
			}
			return m, nil
		case key.Matches(msg, m.keys.None):
			clear(m.selected)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *ImportPickerModel) View() string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Left,
		m.theme.Title.Render(fmt.Sprintf("%s Import from %s", styles.IconBookmark, m.source)),
		"  ",
		m.theme.CountBadge(m.SelectedCount(), len(m.bookmarks)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.list.View(), m.help.View(m.keys))
}

// Confirmed reports whether the user accepted the selection.
func (m *ImportPickerModel) Confirmed() bool {
	return m.confirmed
}

// SelectedCount returns how many bookmarks are ticked.
func (m *ImportPickerModel) SelectedCount() int {
	n := 0
	for _, on := range m.selected {
		if on {
			n++
		}
	}
	return n
}

// Selected returns the ticked bookmarks in browser order.
func (m *ImportPickerModel) Selected() []entity.BrowserBookmark {
	out := make([]entity.BrowserBookmark, 0, m.SelectedCount())
	for _, b := range m.bookmarks {
		if m.selected[b.ExternalID] {
			out = append(out, b)
		}
	}
	return out
}
