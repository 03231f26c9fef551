package theme

import (
	"reflect"
	"testing"
)

func TestRegistryOrder(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		if !registry.Add(name, Direct()) {
			t.Fatalf("Add(%s) failed", name)
		}
	}
	if registry.Add("a", Direct()) {
		t.Fatal("duplicate Add should fail")
	}

	if got := registry.Names(); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Fatalf("unexpected order: %v", got)
	}

	if !registry.Delete("c") {
		t.Fatal("Delete(c) failed")
	}
	if registry.Delete("c") {
		t.Fatal("second Delete(c) should report false")
	}

	name, _, ok := registry.First()
	if !ok || name != "a" {
		t.Fatalf("expected first a, got %q", name)
	}
	if registry.Len() != 2 {
		t.Fatalf("expected 2 themes, got %d", registry.Len())
	}
}

func TestRegistryFirstOnEmpty(t *testing.T) {
	if _, _, ok := NewRegistry().First(); ok {
		t.Fatal("empty registry should have no first theme")
	}
}

func TestThemeBuilders(t *testing.T) {
	theme := Direct(Property{"--a", "1"}).Ref("base").Set("--b", "2")

	if got := theme.Properties(); !reflect.DeepEqual(got, []Property{{"--a", "1"}, {"--b", "2"}}) {
		t.Fatalf("unexpected properties: %v", got)
	}
	if got := theme.References(); !reflect.DeepEqual(got, []string{"base"}) {
		t.Fatalf("unexpected references: %v", got)
	}
	if Reference("x").Entries[0].Kind != ReferenceEntry {
		t.Fatal("Reference should build a reference entry")
	}

	var nilTheme *Theme
	if nilTheme.Properties() != nil || nilTheme.References() != nil {
		t.Fatal("nil theme accessors should return nil")
	}
}
