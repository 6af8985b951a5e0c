package model

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/mytab/internal/cli/styles"
	"github.com/bnema/mytab/internal/domain/entity"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pickerFixture() *ImportPickerModel {
	return NewImportPickerModel(styles.NewTheme(), "chrome", []entity.BrowserBookmark{
		{ExternalID: "a", Title: "Go", URL: "https://go.dev", FolderPath: "Bar"},
		{ExternalID: "b", Title: "GitHub", URL: "https://github.com", FolderPath: "Bar"},
		{ExternalID: "c", Title: "Zerolog", URL: "https://github.com/rs/zerolog", FolderPath: "Bar/Go"},
	})
}

func TestImportPicker_ToggleAndConfirm(t *testing.T) {
	m := pickerFixture()

	m.Update(runes("x"))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(runes("x"))

	assert.Equal(t, 2, m.SelectedCount())
	got := m.Selected()
	if assert.Len(t, got, 2) {
		assert.Equal(t, "a", got[0].ExternalID)
		assert.Equal(t, "c", got[1].ExternalID)
	}

	// Toggling again unticks.
	m.Update(runes("x"))
	assert.Equal(t, 1, m.SelectedCount())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Confirmed())
	assert.NotNil(t, cmd)
}

func TestImportPicker_AllNoneAndCancel(t *testing.T) {
	m := pickerFixture()

	m.Update(runes("a"))
	assert.Equal(t, 3, m.SelectedCount())

	m.Update(runes("n"))
	assert.Equal(t, 0, m.SelectedCount())
	assert.Empty(t, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Confirmed())
}

func TestImportPicker_ViewShowsSourceAndCount(t *testing.T) {
	m := pickerFixture()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(runes("x"))

	view := m.View()
	assert.Contains(t, view, "chrome")
	assert.Contains(t, view, "1/3 selected")
	assert.Contains(t, view, "Go")
}
