package styles

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/opencode-ai/themekit/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// IsHexColor reports whether value is a #rgb, #rrggbb, or #rrggbbaa color.
func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(value))
}

// Swatches renders one line per property, with a color chip for hex values.
func Swatches(s Styles, props []models.Property) string {
	width := 0
	for _, p := range props {
		if w := lipgloss.Width(p.Name); w > width {
			width = w
		}
	}

	lines := make([]string, 0, len(props))
	for _, p := range props {
		chip := "    "
		if IsHexColor(p.Value) {
			chip = lipgloss.NewStyle().Background(lipgloss.Color(strings.TrimSpace(p.Value))).Render("    ")
		}
		name := s.Accent.Render(fmt.Sprintf("%-*s", width, p.Name))
		lines = append(lines, fmt.Sprintf("%s %s %s", chip, name, s.Text.Render(p.Value)))
	}
	return strings.Join(lines, "\n")
}
