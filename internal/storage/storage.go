// Package storage provides the key-value backends used to remember the
// active theme name.
package storage

import "strings"

// Kind selects a storage backend.
type Kind string

const (
	// KindNone disables persistence.
	KindNone Kind = "none"
	// KindLocal survives restarts.
	KindLocal Kind = "local"
	// KindSession lives as long as the process.
	KindSession Kind = "session"
	// KindKeyring uses the OS keyring.
	KindKeyring Kind = "keyring"
)

// ParseKind maps a storage name to a Kind. Unrecognized names map to KindNone.
func ParseKind(value string) Kind {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "local", "localstorage":
		return KindLocal
	case "session", "sessionstorage":
		return KindSession
	case "keyring":
		return KindKeyring
	default:
		return KindNone
	}
}

// String returns the kind name.
func (k Kind) String() string {
	if k == "" {
		return string(KindNone)
	}
	return string(k)
}

// Store is a string-keyed storage area.
type Store interface {
	// GetItem returns the value under key and whether it exists.
	GetItem(key string) (string, bool, error)
	// SetItem stores value under key.
	SetItem(key, value string) error
}

// Resolver maps a Kind to a Store. It returns nil when the kind has no
// backend.
type Resolver interface {
	Resolve(kind Kind) Store
}

// Backends is a Resolver over a fixed set of stores. Nil fields are
// unavailable.
type Backends struct {
	Local   Store
	Session Store
	Keyring Store
}

// Resolve implements Resolver.
func (b Backends) Resolve(kind Kind) Store {
	switch kind {
	case KindLocal:
		return b.Local
	case KindSession:
		return b.Session
	case KindKeyring:
		return b.Keyring
	default:
		return nil
	}
}
