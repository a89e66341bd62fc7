package ratelimit

import (
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/poker-hand-logger/internal/adapter"
	"github.com/feral-file/poker-hand-logger/internal/config"
	"github.com/feral-file/poker-hand-logger/internal/logger"
)

// Decision is the outcome of a single Allow call
type Decision struct {
	Allowed bool
	// Limit is the number of requests allowed per window
	Limit int
	// Remaining is the number of whole tokens left for the key
	Remaining int
	// RetryAfter is how long the caller should wait before the next request is allowed
	RetryAfter time.Duration
}

// Limiter decides whether a request from a client may proceed
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockLimiter
type Limiter interface {
	// Allow consumes one token for key
	Allow(key string) Decision
}

// keyLimiter is the token bucket of a single client
type keyLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiter keeps one token bucket per client key.
// Buckets idle for longer than two windows are evicted.
type limiter struct {
	cfg       config.RateLimitConfig
	clock     adapter.Clock
	limit     rate.Limit
	mu        sync.Mutex
	keys      map[string]*keyLimiter
	lastSweep time.Time
}

// NewLimiter creates a limiter allowing cfg.Requests per cfg.Window for each key,
// with bursts up to cfg.Requests
func NewLimiter(cfg config.RateLimitConfig, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("Rate limiter initialized",
		zap.Int("requests", cfg.Requests),
		zap.Duration("window", cfg.Window),
	)

	return &limiter{
		cfg:       cfg,
		clock:     clock,
		limit:     rate.Limit(float64(cfg.Requests) / cfg.Window.Seconds()),
		keys:      make(map[string]*keyLimiter),
		lastSweep: clock.Now(),
	}, nil
}

// Allow consumes one token for key
func (l *limiter) Allow(key string) Decision {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweepLocked(now)

	kl, ok := l.keys[key]
	if !ok {
		kl = &keyLimiter{limiter: rate.NewLimiter(l.limit, l.cfg.Requests)}
		l.keys[key] = kl
	}
	kl.lastSeen = now

	decision := Decision{Limit: l.cfg.Requests}
	if kl.limiter.AllowN(now, 1) {
		decision.Allowed = true
		decision.Remaining = int(math.Floor(kl.limiter.TokensAt(now)))
		return decision
	}

	// Time until one full token is available again
	missing := 1 - kl.limiter.TokensAt(now)
	decision.RetryAfter = time.Duration(missing / float64(l.limit) * float64(time.Second))
	if decision.RetryAfter < time.Second {
		decision.RetryAfter = time.Second
	}
	return decision
}

// sweepLocked evicts idle buckets at most once per window
func (l *limiter) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < l.cfg.Window {
		return
	}
	l.lastSweep = now

	idle := 2 * l.cfg.Window
	for key, kl := range l.keys {
		if now.Sub(kl.lastSeen) > idle {
			delete(l.keys, key)
		}
	}
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimitConfig) error {
	if cfg.Requests <= 0 {
		return fmt.Errorf("requests must be positive")
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return nil
}
