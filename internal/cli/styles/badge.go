package styles

import "strconv"

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// FolderBadge renders the source folder of a browser bookmark.
func (t *Theme) FolderBadge(path string) string {
	if path == "" {
		return ""
	}
	return t.BadgeMuted.Render(IconFolder + " " + path)
}

// CountBadge renders "n/total selected", muted while nothing is selected.
func (t *Theme) CountBadge(n, total int) string {
	text := strconv.Itoa(n) + "/" + strconv.Itoa(total) + " selected"
	if n == 0 {
		return t.BadgeMuted.Render(text)
	}
	return t.Badge.Render(text)
}
