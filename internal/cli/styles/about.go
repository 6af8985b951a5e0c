package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mytab/internal/domain/build"
)

// AboutField is an extra label/value line shown under the build info.
type AboutField struct {
	Label string
	Value string
}

// AboutRenderer renders build info next to a small logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders the logo, the build info and any runtime fields.
func (r *AboutRenderer) Render(info build.Info, fields ...AboutField) string {
	art := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).MarginTop(1).MarginLeft(2).Render(logoArt)
	return lipgloss.JoinHorizontal(lipgloss.Top, art, "   ", r.renderInfoLines(info, fields))
}

// A tab with a grid of tiles.
const logoArt = `▄▄▄▄▄
█████████
█ ▪ ▪ ▪ █
█ ▪ ▪ ▪ █
▀▀▀▀▀▀▀▀▀`

func (r *AboutRenderer) line(icon, label, value string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), r.theme.Subtle.Render(label), r.theme.Highlight.Render(value))
}

func (r *AboutRenderer) renderInfoLines(info build.Info, fields []AboutField) string {
	info = info.WithDefaults()
	lines := []string{
		r.line(IconVersion, "Version", info.Version),
		r.line(IconGitBranch, "Commit", info.Commit),
		r.line(IconCalendar, "Built", info.BuildDate),
		r.line(IconGo, "Go", info.GoVersion),
	}
	if len(fields) > 0 {
		lines = append(lines, "")
		for _, f := range fields {
			lines = append(lines, r.line(IconConfig, f.Label, f.Value))
		}
	}
	lines = append(lines,
		"",
		r.line(IconGithub, "", build.RepoURL()),
		r.line(IconHeart, "Made with love by", strings.Join(build.Contributors(), ", ")),
	)
	return strings.Join(lines, "\n")
}
