package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadFile reads the themes declared in a .yaml, .yml, or .json file.
func LoadFile(path string) ([]*Entry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("theme path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file %s: %w", path, err)
	}

	entries, err := parse(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("parse theme file %s: %w", path, err)
	}
	for _, entry := range entries {
		entry.Source = path
	}
	return entries, nil
}

// LoadDir loads every theme file in dir, in file name order. A missing
// directory yields no themes.
func LoadDir(dir string) ([]*Entry, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Entry{}, nil
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Entry{}, nil
		}
		return nil, fmt.Errorf("read themes dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		if file.IsDir() || !supported(file.Name()) {
			continue
		}
		names = append(names, file.Name())
	}
	sort.Strings(names)

	entries := make([]*Entry, 0)
	for _, name := range names {
		loaded, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		entries = append(entries, loaded...)
	}
	return entries, nil
}

func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func parse(ext string, data []byte) ([]*Entry, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".json":
		return parseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported theme file extension %q", ext)
	}
}
