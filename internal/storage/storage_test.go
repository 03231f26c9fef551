package storage

import (
	"context"
	"testing"

	"github.com/opencode-ai/themekit/internal/db"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"localStorage":   KindLocal,
		"local":          KindLocal,
		"sessionStorage": KindSession,
		" Session ":      KindSession,
		"keyring":        KindKeyring,
		"indexedDB":      KindNone,
		"":               KindNone,
	}
	for input, want := range cases {
		require.Equal(t, want, ParseKind(input), "input %q", input)
	}
}

func TestBackendsResolve(t *testing.T) {
	session := NewMemory()
	backends := Backends{Session: session}

	require.Equal(t, Store(session), backends.Resolve(KindSession))
	require.Nil(t, backends.Resolve(KindLocal))
	require.Nil(t, backends.Resolve(KindNone))
	require.Nil(t, backends.Resolve(Kind("bogus")))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemory()

	_, ok, err := store.GetItem("theme")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.SetItem("theme", "dark"))
	value, ok, err := store.GetItem("theme")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "dark", value)
}

func TestLocalStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	database, err := db.OpenInMemory()
	require.NoError(t, err)
	defer database.Close()
	_, err = database.MigrateUp(ctx)
	require.NoError(t, err)

	first := NewLocal(database)
	_, ok, err := first.GetItem("theme")
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, first.SetItem("theme", "dark"))

	second := NewLocal(database)
	value, ok, err := second.GetItem("theme")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "dark", value)
}

func TestKeyringStore(t *testing.T) {
	keyring.MockInit()

	_, err := NewKeyring("  ")
	require.Error(t, err)

	store, err := NewKeyring(DefaultKeyringService)
	require.NoError(t, err)

	_, ok, err := store.GetItem("theme")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.SetItem("theme", "light"))
	value, ok, err := store.GetItem("theme")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "light", value)
}
