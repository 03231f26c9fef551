package storage

import (
	"context"
	"errors"

	"github.com/opencode-ai/themekit/internal/db"
)

// LocalNamespace is the kv_store namespace used by Local.
const LocalNamespace = "local"

// Local is a Store backed by the SQLite kv_store table.
type Local struct {
	repo *db.KVRepository
}

// NewLocal creates a Local store on database.
func NewLocal(database *db.DB) *Local {
	return &Local{repo: db.NewKVRepository(database, LocalNamespace)}
}

// GetItem implements Store.
func (l *Local) GetItem(key string) (string, bool, error) {
	value, err := l.repo.Get(context.Background(), key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// SetItem implements Store.
func (l *Local) SetItem(key, value string) error {
	return l.repo.Set(context.Background(), key, value)
}
