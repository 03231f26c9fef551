package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

// DefaultKeyringService namespaces keyring entries.
const DefaultKeyringService = "themekit"

// Keyring is a Store backed by the system keyring.
type Keyring struct {
	service string
}

// NewKeyring creates a Keyring store for service.
func NewKeyring(service string) (*Keyring, error) {
	service = strings.TrimSpace(service)
	if service == "" {
		return nil, fmt.Errorf("keyring service name cannot be empty")
	}
	return &Keyring{service: service}, nil
}

// GetItem implements Store.
func (k *Keyring) GetItem(key string) (string, bool, error) {
	value, err := keyring.Get(k.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("keyring get %q: %w", key, err)
	}
	return value, true, nil
}

// SetItem implements Store.
func (k *Keyring) SetItem(key, value string) error {
	if err := keyring.Set(k.service, key, value); err != nil {
		return fmt.Errorf("keyring set %q: %w", key, err)
	}
	return nil
}
