// Package catalog loads theme definitions from YAML and JSON files.
package catalog

import (
	"errors"

	"github.com/opencode-ai/themekit/internal/theme"
)

// ErrNoThemes is returned when a file declares no themes.
var ErrNoThemes = errors.New("no themes declared")

// Entry is a theme loaded from a file.
type Entry struct {
	Name        string
	Description string
	Source      string // file path or "builtin"
	Theme       *theme.Theme
}

// BuildRegistry registers entries in order. Later duplicates are skipped.
func BuildRegistry(entries []*Entry) *theme.Registry {
	registry := theme.NewRegistry()
	for _, entry := range entries {
		registry.Add(entry.Name, entry.Theme)
	}
	return registry
}

// Find returns the entry named name.
func Find(entries []*Entry, name string) (*Entry, bool) {
	for _, entry := range entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return nil, false
}
