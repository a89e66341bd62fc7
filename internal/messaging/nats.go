package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/feral-file/poker-hand-logger/internal/adapter"
	"github.com/feral-file/poker-hand-logger/internal/config"
	"github.com/feral-file/poker-hand-logger/internal/domain"
	"github.com/feral-file/poker-hand-logger/internal/logger"
)

// ErrBusClosed is returned when publishing on a closed bus
var ErrBusClosed = errors.New("nats bus closed")

// Bus publishes and receives table events over core NATS.
// Each table maps to the subject <prefix>.<tableID>.
type Bus interface {
	Publisher
	Subscriber
}

type natsBus struct {
	nc        adapter.NatsConn
	json      adapter.JSON
	prefix    string
	closeCh   chan struct{}
	closeOnce sync.Once
}

// NewNATSBus connects to NATS, retrying the initial connection with exponential backoff
// for at most cfg.ConnectTimeout
func NewNATSBus(ctx context.Context, cfg config.NATSConfig, connector adapter.NatsConnector, jsonAdapter adapter.JSON) (Bus, error) {
	if cfg.URL == "" {
		return nil, errors.New("nats url is required")
	}
	prefix := strings.TrimSuffix(cfg.SubjectPrefix, ".")
	if prefix == "" {
		return nil, errors.New("nats subject prefix is required")
	}

	bus := &natsBus{
		json:    jsonAdapter,
		prefix:  prefix,
		closeCh: make(chan struct{}),
	}

	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("Disconnected from NATS", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
			bus.markClosed()
		}),
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = cfg.ConnectTimeout

	var attempt int
	operation := func() error {
		nc, err := connector.Connect(cfg.URL, opts...)
		if err != nil {
			return err
		}
		bus.nc = nc
		return nil
	}
	notify := func(err error, next time.Duration) {
		attempt++
		logger.WarnCtx(ctx, "Failed to connect to NATS, retrying",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Duration("next_retry_in", next),
		)
	}
	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.InfoCtx(ctx, "Connected to NATS",
		zap.String("url", bus.nc.ConnectedUrl()),
		zap.String("subject_prefix", prefix),
	)
	return bus, nil
}

// PublishTableEvent publishes an event on the subject of its table
func (b *natsBus) PublishTableEvent(ctx context.Context, event *domain.TableEvent) error {
	select {
	case <-b.closeCh:
		return ErrBusClosed
	default:
	}

	data, err := b.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := b.subject(event.TableID)
	logger.DebugCtx(ctx, "Publishing table event", zap.String("subject", subject), zap.String("event", string(event.Event)))
	if err := b.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// SubscribeTableEvents subscribes to <prefix>.* and hands every decodable event to handler.
// It returns once the subscription is registered; delivery stops when the bus is closed.
func (b *natsBus) SubscribeTableEvents(ctx context.Context, handler EventHandler) error {
	subject := b.prefix + ".*"
	_, err := b.nc.Subscribe(subject, func(msg *nats.Msg) {
		var event domain.TableEvent
		if err := b.json.Unmarshal(msg.Data, &event); err != nil {
			logger.Warn("Dropping undecodable table event", zap.String("subject", msg.Subject), zap.Error(err))
			return
		}
		if event.TableID == "" {
			event.TableID = strings.TrimPrefix(msg.Subject, b.prefix+".")
		}
		if err := handler(&event); err != nil {
			logger.Warn("Failed to handle table event",
				zap.String("subject", msg.Subject),
				zap.String("event", string(event.Event)),
				zap.Error(err),
			)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	logger.InfoCtx(ctx, "Subscribed to table events", zap.String("subject", subject))
	return nil
}

// Close drains subscriptions and closes the connection
func (b *natsBus) Close() {
	if b.nc == nil {
		return
	}
	if err := b.nc.Drain(); err != nil {
		logger.Warn("Failed to drain NATS connection", zap.Error(err))
		b.nc.Close()
	}
	b.markClosed()
}

// CloseChan returns a channel that is closed when the connection is closed
func (b *natsBus) CloseChan() <-chan struct{} {
	return b.closeCh
}

func (b *natsBus) markClosed() {
	b.closeOnce.Do(func() {
		close(b.closeCh)
	})
}

func (b *natsBus) subject(tableID string) string {
	return b.prefix + "." + tableID
}
