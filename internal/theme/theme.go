// Package theme implements the theme registry and the logic that applies a
// theme's custom properties to a style root.
package theme

// RefKey is the key theme files use to spell a reference entry. It is also the
// property name written when a referenced theme itself carries a reference.
const RefKey = "ref"

// EntryKind tags an Entry.
type EntryKind int

const (
	// PropertyEntry sets a custom property.
	PropertyEntry EntryKind = iota
	// ReferenceEntry copies the entries of another registered theme.
	ReferenceEntry
)

// Entry is one declaration of a theme.
type Entry struct {
	Kind EntryKind

	// Name and Value are set for PropertyEntry.
	Name  string
	Value string

	// Ref is the referenced theme name for ReferenceEntry.
	Ref string
}

// Property is a name/value pair used to build direct themes.
type Property struct {
	Name  string
	Value string
}

// Theme is an ordered list of entries.
type Theme struct {
	Entries []Entry
}

// Direct builds a theme that only sets properties.
func Direct(props ...Property) *Theme {
	t := &Theme{Entries: make([]Entry, 0, len(props))}
	for _, p := range props {
		t.Set(p.Name, p.Value)
	}
	return t
}

// Reference builds a theme that copies the theme registered under name.
func Reference(name string) *Theme {
	return (&Theme{}).Ref(name)
}

// Set appends a property entry and returns t.
func (t *Theme) Set(name, value string) *Theme {
	t.Entries = append(t.Entries, Entry{Kind: PropertyEntry, Name: name, Value: value})
	return t
}

// Ref appends a reference entry and returns t.
func (t *Theme) Ref(name string) *Theme {
	t.Entries = append(t.Entries, Entry{Kind: ReferenceEntry, Ref: name})
	return t
}

// Properties returns the property entries in order, ignoring references.
func (t *Theme) Properties() []Property {
	if t == nil {
		return nil
	}
	props := make([]Property, 0, len(t.Entries))
	for _, e := range t.Entries {
		if e.Kind == PropertyEntry {
			props = append(props, Property{Name: e.Name, Value: e.Value})
		}
	}
	return props
}

// References returns the referenced theme names in order.
func (t *Theme) References() []string {
	if t == nil {
		return nil
	}
	var refs []string
	for _, e := range t.Entries {
		if e.Kind == ReferenceEntry {
			refs = append(refs, e.Ref)
		}
	}
	return refs
}

// raw returns the key/value form of an entry as it is written on a style
// root: references become the literal RefKey property.
func (e Entry) raw() (string, string) {
	if e.Kind == ReferenceEntry {
		return RefKey, e.Ref
	}
	return e.Name, e.Value
}
