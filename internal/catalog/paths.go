package catalog

import (
	"path/filepath"

	"github.com/opencode-ai/themekit/internal/config"
)

// UserDir is the per-user theme directory, where new themes are written.
func UserDir() string {
	return filepath.Join(config.DefaultConfigDir(), "themes")
}

// SearchPaths returns theme directories in precedence order: the configured
// directory, the project directory, then UserDir.
func SearchPaths(projectDir, configuredDir string) []string {
	paths := make([]string, 0, 3)
	if configuredDir != "" {
		paths = append(paths, configuredDir)
	}
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".themekit", "themes"))
	}
	paths = append(paths, UserDir())
	return paths
}

// LoadFromSearchPaths loads themes from the search paths with first-hit
// precedence, followed by the builtin themes not already defined.
func LoadFromSearchPaths(projectDir, configuredDir string) ([]*Entry, error) {
	seen := make(map[string]struct{})
	resolved := make([]*Entry, 0)

	add := func(entries []*Entry) {
		for _, entry := range entries {
			if _, exists := seen[entry.Name]; exists {
				continue
			}
			seen[entry.Name] = struct{}{}
			resolved = append(resolved, entry)
		}
	}

	for _, path := range SearchPaths(projectDir, configuredDir) {
		entries, err := LoadDir(path)
		if err != nil {
			return nil, err
		}
		add(entries)
	}

	builtins, err := LoadBuiltin()
	if err != nil {
		return nil, err
	}
	add(builtins)

	return resolved, nil
}
