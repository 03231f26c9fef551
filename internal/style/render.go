package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/opencode-ai/themekit/internal/models"
	"github.com/tidwall/sjson"
)

// RenderCSS writes props as a :root rule.
func RenderCSS(w io.Writer, props []models.Property) error {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, p := range props {
		fmt.Fprintf(&b, "  %s: %s;\n", p.Name, p.Value)
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderJSON returns props as a JSON object, keeping property order.
func RenderJSON(props []models.Property) (string, error) {
	out := "{}"
	for _, p := range props {
		var err error
		out, err = sjson.Set(out, escapePath(p.Name), p.Value)
		if err != nil {
			return "", fmt.Errorf("encode property %q: %w", p.Name, err)
		}
	}
	return out, nil
}

// escapePath quotes the characters sjson treats as path syntax.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', ':':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
