package cli

import (
	"context"
	"fmt"

	"github.com/opencode-ai/themekit/internal/catalog"
	"github.com/opencode-ai/themekit/internal/config"
	"github.com/opencode-ai/themekit/internal/db"
	"github.com/opencode-ai/themekit/internal/logging"
	"github.com/opencode-ai/themekit/internal/storage"
	"github.com/opencode-ai/themekit/internal/style"
	"github.com/opencode-ai/themekit/internal/theme"
	"github.com/rs/zerolog"
)

// session wires the theme manager to the database-backed style root and
// the configured stores for one command invocation.
type session struct {
	cfg      *config.Config
	db       *db.DB
	root     *style.Root
	entries  []*catalog.Entry
	registry *theme.Registry
	manager  *theme.Manager
	events   *db.EventRepository
	rootRepo *db.RootRepository
	logger   zerolog.Logger
}

// sessionStore lives as long as the process, like a browser session.
var sessionStore = storage.NewMemory()

func openSession(ctx context.Context) (*session, error) {
	cfg := GetConfig()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := logging.Component("cli")

	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if _, err := database.MigrateUp(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	entries, err := catalog.LoadFromSearchPaths(resolveProjectDir(), cfg.Themes.Dir)
	if err != nil {
		database.Close()
		return nil, err
	}

	backends := storage.Backends{
		Local:   storage.NewLocal(database),
		Session: sessionStore,
	}
	if cfg.StorageKind() == storage.KindKeyring {
		keyringStore, err := storage.NewKeyring(cfg.Keyring.Service)
		if err != nil {
			database.Close()
			return nil, err
		}
		backends.Keyring = keyringStore
	}

	s := &session{
		cfg:      cfg,
		db:       database,
		root:     style.NewRoot(),
		entries:  entries,
		registry: catalog.BuildRegistry(entries),
		events:   db.NewEventRepository(database),
		rootRepo: db.NewRootRepository(database),
		logger:   logger,
	}

	props, err := s.rootRepo.Load(ctx)
	if err != nil {
		database.Close()
		return nil, err
	}
	s.root.Restore(props)

	persistence := &theme.Persistence{Storage: cfg.StorageKind(), Key: cfg.Persistence.Key}
	opts := []theme.Option{
		theme.WithLogger(logging.Component("theme")),
		theme.WithStorage(backends),
	}
	fresh := s.root.Len() == 0
	if !fresh {
		opts = append(opts, theme.WithRegistry(s.registry), theme.WithPersistence(persistence))
	}
	s.manager = theme.NewManager(s.root, opts...)

	if fresh {
		// An empty root behaves like a fresh page load.
		s.manager.Initialize(s.registry, cfg.Themes.Default, persistence)
	}

	return s, nil
}

// save writes the style root back to the database.
func (s *session) save(ctx context.Context) error {
	return s.rootRepo.Save(ctx, s.root.Snapshot())
}

func (s *session) Close() error {
	return s.db.Close()
}

// record logs a history write failure instead of returning it.
func (s *session) record(err error) {
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to record event")
	}
}

func (s *session) entry(name string) (*catalog.Entry, bool) {
	return catalog.Find(s.entries, name)
}

func (s *session) activeName() string {
	name, _ := s.manager.Persisted()
	return name
}
