// Package models defines the records persisted by themekit.
package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// EventType categorizes history events.
type EventType string

const (
	EventTypeThemeApplied    EventType = "theme.applied"
	EventTypeThemeRegistered EventType = "theme.registered"
	EventTypeThemeRemoved    EventType = "theme.removed"
	EventTypeVarSet          EventType = "var.set"
)

// EntityType identifies the type of entity an event relates to.
type EntityType string

const (
	EntityTypeTheme    EntityType = "theme"
	EntityTypeVariable EntityType = "variable"
)

// Event represents an append-only history entry.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// EntityType identifies what kind of entity this event relates to.
	EntityType EntityType `json:"entity_type"`

	// EntityID is the theme or variable name.
	EntityID string `json:"entity_id"`

	// Payload contains event-specific data.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	var problems []string
	if strings.TrimSpace(string(e.Type)) == "" {
		problems = append(problems, "event type is required")
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		problems = append(problems, "entity_type is required")
	}
	if strings.TrimSpace(e.EntityID) == "" {
		problems = append(problems, "entity_id is required")
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.New(strings.Join(problems, "; "))
}

// ThemeAppliedPayload is the payload for theme.applied events.
type ThemeAppliedPayload struct {
	Storage    string `json:"storage,omitempty"`
	Key        string `json:"key,omitempty"`
	Properties int    `json:"properties"`
}

// VarSetPayload is the payload for var.set events.
type VarSetPayload struct {
	Value string `json:"value"`
}
