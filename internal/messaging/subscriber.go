package messaging

import (
	"context"

	"github.com/feral-file/poker-hand-logger/internal/domain"
)

// EventHandler is called when a table event is received from the broker
type EventHandler func(event *domain.TableEvent) error

// Subscriber defines the interface for receiving table events from the broker
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeTableEvents delivers events of every table to handler until the subscriber is closed
	SubscribeTableEvents(ctx context.Context, handler EventHandler) error

	// Close closes the connection and cleans up resources
	Close()
}
