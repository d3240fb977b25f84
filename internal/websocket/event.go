package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the action the event reports
type EventType string

const (
	EventTypeUpdated           EventType = "updated"
	EventTypeLogoUpdated       EventType = "logo_updated"
	EventTypeAdded             EventType = "added"
	EventTypeRemoved           EventType = "removed"
	EventTypeLeft              EventType = "left"
	EventTypePermissionUpdated EventType = "permission_updated"
)

// EntityType represents the entity the event is about
type EntityType string

const (
	EntityTypeWorkspace EntityType = "workspace"
	EntityTypeMember    EntityType = "member"
)

// Event is the message pushed to every client subscribed to a workspace.
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`
	Entity    EntityType  `json:"entity"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new event with a combined type such as "member.added"
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
