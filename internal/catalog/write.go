package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opencode-ai/themekit/internal/theme"
	"gopkg.in/yaml.v3"
)

// WriteFile saves entry as a single-theme YAML file, keeping entry order.
func WriteFile(path string, entry *Entry) error {
	if entry == nil || entry.Theme == nil {
		return fmt.Errorf("theme is required")
	}

	vars := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entry.Theme.Entries {
		key, value := e.Name, e.Value
		if e.Kind == theme.ReferenceEntry {
			key, value = theme.RefKey, e.Ref
		}
		vars.Content = append(vars.Content, scalar(key), scalar(value))
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	doc.Content = append(doc.Content, scalar("name"), scalar(entry.Name))
	if entry.Description != "" {
		doc.Content = append(doc.Content, scalar("description"), scalar(entry.Description))
	}
	doc.Content = append(doc.Content, scalar("vars"), vars)

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode theme %q: %w", entry.Name, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create theme dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write theme file %s: %w", path, err)
	}
	entry.Source = path
	return nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
