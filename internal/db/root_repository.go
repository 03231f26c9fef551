package db

import (
	"context"
	"fmt"

	"github.com/opencode-ai/themekit/internal/models"
)

// RootRepository persists the custom properties written on the style root
// so separate invocations see the same root state.
type RootRepository struct {
	db *DB
}

// NewRootRepository creates a new RootRepository.
func NewRootRepository(db *DB) *RootRepository {
	return &RootRepository{db: db}
}

// Load returns the stored properties in write order.
func (r *RootRepository) Load(ctx context.Context) ([]models.Property, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, value FROM root_properties ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query root properties: %w", err)
	}
	defer rows.Close()

	var props []models.Property
	for rows.Next() {
		var prop models.Property
		if err := rows.Scan(&prop.Name, &prop.Value); err != nil {
			return nil, fmt.Errorf("failed to scan root property: %w", err)
		}
		props = append(props, prop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating root properties: %w", err)
	}

	return props, nil
}

// Save replaces the stored properties with props.
func (r *RootRepository) Save(ctx context.Context, props []models.Property) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM root_properties`); err != nil {
		return fmt.Errorf("failed to clear root properties: %w", err)
	}
	for i, prop := range props {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO root_properties (name, value, position) VALUES (?, ?, ?)
		`, prop.Name, prop.Value, i); err != nil {
			return fmt.Errorf("failed to insert root property %q: %w", prop.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit root properties: %w", err)
	}
	return nil
}
