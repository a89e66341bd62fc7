package realtime

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/poker-hand-logger/internal/adapter"
	"github.com/feral-file/poker-hand-logger/internal/domain"
	"github.com/feral-file/poker-hand-logger/internal/logger"
	"github.com/feral-file/poker-hand-logger/internal/messaging"
)

// Deliverer fans an already built event out to local clients
type Deliverer interface {
	Deliver(event *domain.TableEvent) error
}

// Relay is a Broadcaster that routes every event through the message broker so that
// each API instance delivers it to its own clients. Events reach local clients only
// through the broker subscription, never directly.
type Relay struct {
	publisher  messaging.Publisher
	subscriber messaging.Subscriber
	local      Deliverer
	clock      adapter.Clock
}

// NewRelay creates a relay publishing through publisher and delivering what subscriber receives to local
func NewRelay(publisher messaging.Publisher, subscriber messaging.Subscriber, local Deliverer, clock adapter.Clock) *Relay {
	return &Relay{
		publisher:  publisher,
		subscriber: subscriber,
		local:      local,
		clock:      clock,
	}
}

// Start subscribes to the events of every table
func (r *Relay) Start(ctx context.Context) error {
	if err := r.subscriber.SubscribeTableEvents(ctx, r.local.Deliver); err != nil {
		return fmt.Errorf("failed to start relay: %w", err)
	}
	return nil
}

// Publish implements Broadcaster
func (r *Relay) Publish(ctx context.Context, tableID string, kind domain.EventKind, payload any) error {
	event, err := newTableEvent(tableID, kind, payload, r.clock.Now())
	if err != nil {
		return err
	}
	if err := r.publisher.PublishTableEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to relay table event",
			zap.String("tableID", tableID),
			zap.String("event", string(kind)),
			zap.Error(err),
		)
		return fmt.Errorf("failed to relay %s: %w", kind, err)
	}
	return nil
}

// Close closes the broker connection
func (r *Relay) Close() {
	r.publisher.Close()
}
