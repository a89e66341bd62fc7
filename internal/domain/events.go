package domain

import (
	"encoding/json"
	"time"
)

// EventKind names a realtime event delivered to a table room
type EventKind string

const (
	EventHandCreated   EventKind = "hand:created"
	EventHandUpdated   EventKind = "hand:updated"
	EventActionAdded   EventKind = "action:added"
	EventHandCompleted EventKind = "hand:completed"
	EventTableUpdated  EventKind = "table:updated"

	// EventUserJoined and EventUserLeft tell room members about each other
	EventUserJoined EventKind = "user:joined"
	EventUserLeft   EventKind = "user:left"
)

// IsValidEventKind checks if an event kind may be published to a table
func IsValidEventKind(kind EventKind) bool {
	switch kind {
	case EventHandCreated, EventHandUpdated, EventActionAdded, EventHandCompleted, EventTableUpdated,
		EventUserJoined, EventUserLeft:
		return true
	default:
		return false
	}
}

// TableEvent is the envelope delivered to every subscriber of a table room
type TableEvent struct {
	Event     EventKind       `json:"event"`
	TableID   string          `json:"tableId"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}
