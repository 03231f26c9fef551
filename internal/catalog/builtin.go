package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltin returns the themes bundled with themekit.
func LoadBuiltin() ([]*Entry, error) {
	files, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin themes: %w", err)
	}

	entries := make([]*Entry, 0)
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := path.Join("builtin", file.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read builtin theme %s: %w", file.Name(), err)
		}
		loaded, err := parse(path.Ext(name), data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin theme %s: %w", file.Name(), err)
		}
		for _, entry := range loaded {
			entry.Source = "builtin"
		}
		entries = append(entries, loaded...)
	}
	return entries, nil
}
