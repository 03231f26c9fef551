package catalog

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/themekit/internal/theme"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// A file holds either one theme:
//
//	name: dark
//	description: Dark palette
//	vars:
//	  --bg: "#000"
//
// or several under a themes map keyed by name. Inside vars the key "ref"
// declares a reference to another theme.

func parseYAML(data []byte) ([]*Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrNoThemes
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping at the top level")
	}

	if themes := yamlLookup(root, "themes"); themes != nil {
		if themes.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("themes must be a mapping")
		}
		entries := make([]*Entry, 0, len(themes.Content)/2)
		for i := 0; i+1 < len(themes.Content); i += 2 {
			name := themes.Content[i].Value
			t, err := yamlTheme(themes.Content[i+1])
			if err != nil {
				return nil, fmt.Errorf("theme %q: %w", name, err)
			}
			entries = append(entries, &Entry{Name: name, Theme: t})
		}
		return normalize(entries)
	}

	entry := &Entry{}
	if node := yamlLookup(root, "name"); node != nil {
		entry.Name = node.Value
	}
	if node := yamlLookup(root, "description"); node != nil {
		entry.Description = node.Value
	}
	vars := yamlLookup(root, "vars")
	if vars == nil {
		return nil, fmt.Errorf("theme %q: vars are required", entry.Name)
	}
	t, err := yamlTheme(vars)
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", entry.Name, err)
	}
	entry.Theme = t
	return normalize([]*Entry{entry})
}

func yamlLookup(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func yamlTheme(node *yaml.Node) (*theme.Theme, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("vars must be a mapping")
	}
	t := &theme.Theme{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("value of %q must be a scalar", key.Value)
		}
		addEntry(t, key.Value, value.Value)
	}
	return t, nil
}

func parseJSON(data []byte) ([]*Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("expected an object at the top level")
	}

	if themes := root.Get("themes"); themes.Exists() {
		if !themes.IsObject() {
			return nil, fmt.Errorf("themes must be an object")
		}
		var entries []*Entry
		var parseErr error
		themes.ForEach(func(key, value gjson.Result) bool {
			t, err := jsonTheme(value)
			if err != nil {
				parseErr = fmt.Errorf("theme %q: %w", key.String(), err)
				return false
			}
			entries = append(entries, &Entry{Name: key.String(), Theme: t})
			return true
		})
		if parseErr != nil {
			return nil, parseErr
		}
		return normalize(entries)
	}

	entry := &Entry{
		Name:        root.Get("name").String(),
		Description: root.Get("description").String(),
	}
	vars := root.Get("vars")
	if !vars.Exists() {
		return nil, fmt.Errorf("theme %q: vars are required", entry.Name)
	}
	t, err := jsonTheme(vars)
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", entry.Name, err)
	}
	entry.Theme = t
	return normalize([]*Entry{entry})
}

func jsonTheme(value gjson.Result) (*theme.Theme, error) {
	if !value.IsObject() {
		return nil, fmt.Errorf("vars must be an object")
	}
	t := &theme.Theme{}
	var parseErr error
	value.ForEach(func(key, v gjson.Result) bool {
		if v.IsObject() || v.IsArray() {
			parseErr = fmt.Errorf("value of %q must be a scalar", key.String())
			return false
		}
		addEntry(t, key.String(), v.String())
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return t, nil
}

func addEntry(t *theme.Theme, key, value string) {
	if key == theme.RefKey {
		t.Ref(strings.TrimSpace(value))
		return
	}
	t.Set(key, value)
}

func normalize(entries []*Entry) ([]*Entry, error) {
	if len(entries) == 0 {
		return nil, ErrNoThemes
	}
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		entry.Name = strings.TrimSpace(entry.Name)
		entry.Description = strings.TrimSpace(entry.Description)
		if entry.Name == "" {
			return nil, fmt.Errorf("theme name is required")
		}
		if _, exists := seen[entry.Name]; exists {
			return nil, fmt.Errorf("duplicate theme %q", entry.Name)
		}
		seen[entry.Name] = struct{}{}
	}
	return entries, nil
}
