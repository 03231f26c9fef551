package styles

import "github.com/opencode-ai/themekit/internal/models"

// ThemeTokens defines the semantic color roles for the TUI.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// TokensFromProperties reads the conventional custom properties (--bg,
// --text, --accent, ...) and falls back to the default palette for any that
// are missing.
func TokensFromProperties(props []models.Property) ThemeTokens {
	tokens := DefaultTokens
	for _, p := range props {
		if field := tokens.field(p.Name); field != nil && p.Value != "" {
			*field = p.Value
		}
	}
	return tokens
}

func (t *ThemeTokens) field(property string) *string {
	switch property {
	case "--bg", "--background":
		return &t.Background
	case "--panel":
		return &t.Panel
	case "--text", "--fg":
		return &t.Text
	case "--text-muted":
		return &t.TextMuted
	case "--border":
		return &t.Border
	case "--accent":
		return &t.Accent
	case "--focus":
		return &t.Focus
	case "--success":
		return &t.Success
	case "--warning":
		return &t.Warning
	case "--error":
		return &t.Error
	case "--info":
		return &t.Info
	}
	return nil
}
