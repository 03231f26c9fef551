package theme

import (
	"errors"
	"strings"
	"sync"

	"github.com/opencode-ai/themekit/internal/storage"
	"github.com/rs/zerolog"
)

// Warning classes attached to rejected operations.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrDuplicateName   = errors.New("duplicate name")
)

// StyleTarget is the live property map of the style root.
type StyleTarget interface {
	Property(name string) string
	SetProperty(name, value string)
}

// Persistence selects where the applied theme name is remembered.
type Persistence struct {
	Storage storage.Kind
	Key     string
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the diagnostics sink.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithStorage sets the resolver used for persistence.
func WithStorage(resolver storage.Resolver) Option {
	return func(m *Manager) {
		m.resolver = resolver
	}
}

// WithRegistry installs themes without applying anything, for callers that
// restore the style root themselves.
func WithRegistry(themes *Registry) Option {
	return func(m *Manager) {
		if themes != nil {
			m.registry = themes
		}
	}
}

// WithPersistence sets the persistence config without reading from it.
func WithPersistence(p *Persistence) Option {
	return func(m *Manager) {
		m.persistence = p
	}
}

// Manager owns a theme registry and applies themes to a StyleTarget.
//
// Rejected calls never return an error: they log one warning and leave the
// registry, the target, and the persisted name untouched.
type Manager struct {
	target   StyleTarget
	resolver storage.Resolver
	logger   zerolog.Logger

	mu          sync.RWMutex
	registry    *Registry
	persistence *Persistence
}

// NewManager creates a Manager writing to target. Until Initialize is called
// it holds an empty registry and no persistence.
func NewManager(target StyleTarget, opts ...Option) *Manager {
	m := &Manager{
		target:   target,
		logger:   zerolog.Nop(),
		registry: NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize installs themes and persistence, then applies the persisted
// theme name if there is one, else defaultName, else the first registered
// theme.
func (m *Manager) Initialize(themes *Registry, defaultName string, persistence *Persistence) bool {
	if themes == nil {
		m.logger.Warn().Err(ErrInvalidArgument).
			Msg("themes cannot be nil and must contain at least one theme")
		return false
	}

	m.mu.Lock()
	m.registry = themes
	m.persistence = persistence
	m.mu.Unlock()

	if name, ok := m.Persisted(); ok {
		return m.Apply(name)
	}
	if defaultName != "" {
		return m.Apply(defaultName)
	}

	_, first, ok := themes.First()
	if !ok {
		m.logger.Warn().Err(ErrInvalidArgument).Msg("no theme to apply: registry is empty and no default was given")
		return false
	}
	return m.ApplyTheme(first)
}

// Register adds a theme under a new, non-blank name.
func (m *Manager) Register(name string, t *Theme) bool {
	if isBlank(name) {
		m.logger.Warn().Err(ErrInvalidArgument).Msg("theme name cannot be empty")
		return false
	}
	registry := m.Registry()
	if registry.Has(name) {
		m.logger.Warn().Err(ErrDuplicateName).Str("theme", name).Msg("theme already exists")
		return false
	}
	if t == nil {
		m.logger.Warn().Err(ErrInvalidArgument).Str("theme", name).Msg("theme cannot be nil")
		return false
	}
	if !registry.Add(name, t) {
		m.logger.Warn().Err(ErrDuplicateName).Str("theme", name).Msg("theme already exists")
		return false
	}
	return true
}

// Apply writes the named theme to the target and persists the name.
func (m *Manager) Apply(name string) bool {
	if isBlank(name) {
		m.logger.Warn().Err(ErrInvalidArgument).Msg("theme name cannot be empty")
		return false
	}
	t, ok := m.Registry().Get(name)
	if !ok || t == nil {
		m.logger.Warn().Err(ErrNotFound).Str("theme", name).Msg("theme does not exist")
		return false
	}

	m.write(t)
	m.persist(name)
	return true
}

// ApplyTheme writes t to the target without persisting anything.
func (m *Manager) ApplyTheme(t *Theme) bool {
	if t == nil {
		m.logger.Warn().Err(ErrInvalidArgument).Msg("theme cannot be nil")
		return false
	}
	m.write(t)
	return true
}

// Theme returns the theme registered under name. Unknown names are not
// reported.
func (m *Manager) Theme(name string) (*Theme, bool) {
	if isBlank(name) {
		m.logger.Warn().Err(ErrInvalidArgument).Msg("theme name cannot be empty")
		return nil, false
	}
	return m.Registry().Get(name)
}

// Remove deletes the named theme. Removing an unknown name is a silent no-op.
func (m *Manager) Remove(name string) bool {
	if isBlank(name) {
		m.logger.Warn().Err(ErrInvalidArgument).Msg("theme name cannot be empty")
		return false
	}
	return m.Registry().Delete(name)
}

// Var reads a property straight from the target.
func (m *Manager) Var(name string) (string, bool) {
	if isBlank(name) {
		m.logger.Warn().Err(ErrInvalidArgument).Msg("css variable name cannot be empty")
		return "", false
	}
	return m.target.Property(name), true
}

// SetVar writes a property straight to the target.
func (m *Manager) SetVar(name, value string) bool {
	if isBlank(name) {
		m.logger.Warn().Err(ErrInvalidArgument).Msg("css variable name cannot be empty")
		return false
	}
	if isBlank(value) {
		m.logger.Warn().Err(ErrInvalidArgument).Str("var", name).Msg("css variable value cannot be empty")
		return false
	}
	m.target.SetProperty(name, value)
	return true
}

// Registry returns the registry currently in use.
func (m *Manager) Registry() *Registry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.registry
}

// Persistence returns the active persistence config, or nil.
func (m *Manager) Persistence() *Persistence {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.persistence == nil {
		return nil
	}
	p := *m.persistence
	return &p
}

// Persisted returns the theme name remembered by the configured store.
func (m *Manager) Persisted() (string, bool) {
	store, key := m.store()
	if store == nil {
		return "", false
	}
	value, ok, err := store.GetItem(key)
	if err != nil {
		m.logger.Warn().Err(err).Str("key", key).Msg("failed to read persisted theme")
		return "", false
	}
	return value, ok
}

func (m *Manager) write(t *Theme) {
	registry := m.Registry()
	for _, e := range t.Entries {
		if e.Kind != ReferenceEntry {
			m.target.SetProperty(e.Name, e.Value)
			continue
		}

		ref, ok := registry.Get(e.Ref)
		if !ok || ref == nil {
			m.logger.Warn().Err(ErrNotFound).Str("ref", e.Ref).
				Msg("cannot apply theme values by reference because the theme does not exist")
			continue
		}
		// One level only: nested references are written as plain entries.
		for _, inner := range ref.Entries {
			name, value := inner.raw()
			m.target.SetProperty(name, value)
		}
	}
}

func (m *Manager) persist(name string) {
	store, key := m.store()
	if store == nil {
		return
	}
	if err := store.SetItem(key, name); err != nil {
		m.logger.Warn().Err(err).Str("key", key).Str("theme", name).Msg("failed to persist theme")
	}
}

// store resolves the configured backend. A nil store means persistence is
// unavailable, which is never reported.
func (m *Manager) store() (storage.Store, string) {
	m.mu.RLock()
	p := m.persistence
	m.mu.RUnlock()

	if p == nil || m.resolver == nil || isBlank(p.Key) {
		return nil, ""
	}
	store := m.resolver.Resolve(p.Storage)
	if store == nil {
		return nil, ""
	}
	return store, p.Key
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
