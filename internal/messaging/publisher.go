package messaging

import (
	"context"

	"github.com/feral-file/poker-hand-logger/internal/domain"
)

// Publisher defines the interface for publishing table events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishTableEvent publishes a table event to every instance subscribed to its table
	PublishTableEvent(ctx context.Context, event *domain.TableEvent) error
	// Close closes the connection
	Close()
	// CloseChan returns a channel that is closed when the publisher is closed
	CloseChan() <-chan struct{}
}
