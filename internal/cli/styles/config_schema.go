package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mytab/internal/domain/entity"
)

// ConfigSchemaRenderer renders the config.toml key reference.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders one table per section, in first-seen section order.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	var order []string
	sections := make(map[string][]entity.ConfigKeyInfo)
	for _, key := range keys {
		if _, seen := sections[key.Section]; !seen {
			order = append(order, key.Section)
		}
		sections[key.Section] = append(sections[key.Section], key)
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	parts := []string{fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("config.toml keys")), ""}
	for _, name := range order {
		parts = append(parts, r.theme.Highlight.Render(name), r.renderSection(sections[name]), "")
	}
	return strings.Join(parts, "\n")
}

// RenderJSON renders the configuration schema as JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderSection(keys []entity.ConfigKeyInfo) string {
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{key.Key, key.Type, key.Default, describeKey(key)})
	}
	return NewTable(r.theme, []string{"Key", "Type", "Default", "Description"}, rows)
}

func describeKey(key entity.ConfigKeyInfo) string {
	switch {
	case len(key.Values) > 0:
		return key.Description + " (" + strings.Join(key.Values, ", ") + ")"
	case key.Range != "":
		return key.Description + " (" + key.Range + ")"
	default:
		return key.Description
	}
}
