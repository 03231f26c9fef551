// Package events provides helper functions for recording themekit history.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opencode-ai/themekit/internal/models"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogThemeApplied records that a theme was applied by name.
func LogThemeApplied(ctx context.Context, repo Repository, name string, payload models.ThemeAppliedPayload) error {
	return log(ctx, repo, models.EventTypeThemeApplied, models.EntityTypeTheme, name, payload)
}

// LogThemeRegistered records a newly registered theme.
func LogThemeRegistered(ctx context.Context, repo Repository, name string) error {
	return log(ctx, repo, models.EventTypeThemeRegistered, models.EntityTypeTheme, name, nil)
}

// LogThemeRemoved records a removed theme.
func LogThemeRemoved(ctx context.Context, repo Repository, name string) error {
	return log(ctx, repo, models.EventTypeThemeRemoved, models.EntityTypeTheme, name, nil)
}

// LogVarSet records a direct write to a style property.
func LogVarSet(ctx context.Context, repo Repository, name, value string) error {
	return log(ctx, repo, models.EventTypeVarSet, models.EntityTypeVariable, name, models.VarSetPayload{Value: value})
}

func log(ctx context.Context, repo Repository, eventType models.EventType, entityType models.EntityType, entityID string, payload any) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if entityID == "" {
		return fmt.Errorf("%s id is required", entityType)
	}

	event := &models.Event{
		Type:       eventType,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
		}
		event.Payload = data
	}

	return repo.Create(ctx, event)
}
