package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/feral-file/poker-hand-logger/internal/domain"
)

// Broadcaster delivers table events to the subscribers of a table room.
// Delivery is at-most-once: Publish never waits for subscribers.
//
//go:generate mockgen -source=broadcaster.go -destination=../mocks/broadcaster.go -package=mocks -mock_names=Broadcaster=MockBroadcaster
type Broadcaster interface {
	// Publish sends payload to every subscriber of tableID under the given event name
	Publish(ctx context.Context, tableID string, kind domain.EventKind, payload any) error
}

// newTableEvent builds the envelope for an event, encoding the payload once
func newTableEvent(tableID string, kind domain.EventKind, payload any, now time.Time) (*domain.TableEvent, error) {
	if tableID == "" {
		return nil, fmt.Errorf("table id is required")
	}
	if !domain.IsValidEventKind(kind) {
		return nil, fmt.Errorf("unknown event kind: %s", kind)
	}

	event := &domain.TableEvent{
		Event:     kind,
		TableID:   tableID,
		Timestamp: now.UTC(),
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s payload: %w", kind, err)
		}
		event.Payload = raw
	}
	return event, nil
}
