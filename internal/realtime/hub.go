package realtime

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/poker-hand-logger/internal/adapter"
	"github.com/feral-file/poker-hand-logger/internal/config"
	"github.com/feral-file/poker-hand-logger/internal/domain"
	"github.com/feral-file/poker-hand-logger/internal/logger"
)

// ErrHubClosed is returned when delivering through a closed hub
var ErrHubClosed = errors.New("realtime hub closed")

// Default hub settings applied when the configuration leaves them unset
const (
	DefaultSendBuffer     = 64
	DefaultPingInterval   = 25 * time.Second
	DefaultPongWait       = 60 * time.Second
	DefaultWriteWait      = 10 * time.Second
	DefaultMaxMessageSize = 4096
)

// Hub is the process-wide registry of websocket clients grouped by table.
// Events are fanned out by a single worker so every client sees a table's
// events in publish order.
type Hub struct {
	cfg      config.RealtimeConfig
	clock    adapter.Clock
	upgrader websocket.Upgrader
	pool     pond.Pool
	log      *zap.Logger

	entropyMu sync.Mutex
	entropy   *ulid.MonotonicEntropy

	mu      sync.RWMutex
	groups  map[string]map[*Client]struct{}
	clients map[*Client]struct{}
	closed  bool
}

// NewHub creates a hub accepting websocket upgrades from allowedOrigins.
// An empty list or "*" accepts any origin.
func NewHub(cfg config.RealtimeConfig, allowedOrigins []string, clock adapter.Clock) *Hub {
	cfg = normalizeConfig(cfg)

	h := &Hub{
		cfg:     cfg,
		clock:   clock,
		pool:    pond.NewPool(1),
		log:     logger.Named("realtime"),
		entropy: ulid.Monotonic(rand.Reader, 0),
		groups:  make(map[string]map[*Client]struct{}),
		clients: make(map[*Client]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

func normalizeConfig(cfg config.RealtimeConfig) config.RealtimeConfig {
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = DefaultSendBuffer
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = DefaultPingInterval
	}
	if cfg.PongWait <= 0 {
		cfg.PongWait = DefaultPongWait
	}
	// Pings must arrive before the read deadline expires
	if cfg.PingInterval >= cfg.PongWait {
		cfg.PingInterval = cfg.PongWait * 9 / 10
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = DefaultWriteWait
	}
	if cfg.MaxMessageSize <= 0 {
		cfg.MaxMessageSize = DefaultMaxMessageSize
	}
	return cfg
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(set) == 0 {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// Publish implements Broadcaster by delivering the event to the local clients of tableID
func (h *Hub) Publish(ctx context.Context, tableID string, kind domain.EventKind, payload any) error {
	event, err := newTableEvent(tableID, kind, payload, h.clock.Now())
	if err != nil {
		return err
	}
	return h.Deliver(event)
}

// Deliver queues an already built event for fan-out to the local clients of its table.
// It never blocks on clients.
func (h *Hub) Deliver(event *domain.TableEvent) error {
	return h.submit(event, nil)
}

func (h *Hub) submit(event *domain.TableEvent, except *Client) error {
	h.mu.RLock()
	closed := h.closed
	h.mu.RUnlock()
	if closed {
		return ErrHubClosed
	}

	h.pool.Submit(func() {
		h.dispatch(event, except)
	})
	return nil
}

// dispatch encodes the event once and enqueues it on every member of the table.
// Members whose send buffer is full are disconnected.
func (h *Hub) dispatch(event *domain.TableEvent, except *Client) {
	h.mu.RLock()
	group := h.groups[event.TableID]
	members := make([]*Client, 0, len(group))
	for c := range group {
		if c != except {
			members = append(members, c)
		}
	}
	h.mu.RUnlock()

	if len(members) == 0 {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("Failed to encode table event", zap.String("event", string(event.Event)), zap.Error(err))
		return
	}

	for _, c := range members {
		if !c.enqueue(data) {
			h.log.Warn("Dropping slow websocket client",
				zap.String("clientID", c.id),
				zap.String("tableID", event.TableID),
				zap.Int("sendBuffer", h.cfg.SendBuffer),
			)
			h.unregister(c, ReasonBufferFull)
		}
	}
}

// ServeWS upgrades the request to a websocket and serves the client until it disconnects
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	closed := h.closed
	h.mu.RUnlock()
	if closed {
		http.Error(w, "realtime hub closed", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		h.log.Debug("Websocket upgrade failed", zap.String("remote", r.RemoteAddr), zap.Error(err))
		return
	}

	c := newClient(h, conn, h.newClientID(), r.RemoteAddr)
	if !h.register(c) {
		c.close(ReasonShutdown, nil)
		return
	}
	h.log.Info("Websocket client connected", zap.String("clientID", c.id), zap.String("remote", c.remoteAddr))

	go c.writePump()
	c.readPump()
}

func (h *Hub) newClientID() string {
	h.entropyMu.Lock()
	defer h.entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(h.clock.Now()), h.entropy).String()
}

func (h *Hub) register(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

// unregister removes the client from every table, tells the remaining members and closes it
func (h *Hub) unregister(c *Client, reason CloseReason) {
	h.mu.Lock()
	_, known := h.clients[c]
	delete(h.clients, c)
	tables := make([]string, 0, len(c.tables))
	for tableID := range c.tables {
		h.removeFromGroupLocked(c, tableID)
		tables = append(tables, tableID)
	}
	h.mu.Unlock()

	c.close(reason, nil)
	if !known {
		return
	}

	for _, tableID := range tables {
		h.notifyMembers(c, tableID, domain.EventUserLeft)
	}
	h.log.Info("Websocket client disconnected", zap.String("clientID", c.id), zap.String("reason", string(reason)))
}

// join adds the client to a table room and tells the other members
func (h *Hub) join(c *Client, tableID string) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}
	group := h.groups[tableID]
	if group == nil {
		group = make(map[*Client]struct{})
		h.groups[tableID] = group
	}
	_, already := group[c]
	group[c] = struct{}{}
	c.tables[tableID] = struct{}{}
	h.mu.Unlock()

	if already {
		return
	}
	h.log.Debug("Client joined table", zap.String("clientID", c.id), zap.String("tableID", tableID))
	h.notifyMembers(c, tableID, domain.EventUserJoined)
}

// leave removes the client from a table room and tells the remaining members
func (h *Hub) leave(c *Client, tableID string) {
	h.mu.Lock()
	_, member := h.groups[tableID][c]
	h.removeFromGroupLocked(c, tableID)
	h.mu.Unlock()

	if !member {
		return
	}
	h.log.Debug("Client left table", zap.String("clientID", c.id), zap.String("tableID", tableID))
	h.notifyMembers(c, tableID, domain.EventUserLeft)
}

func (h *Hub) removeFromGroupLocked(c *Client, tableID string) {
	delete(c.tables, tableID)
	group := h.groups[tableID]
	if group == nil {
		return
	}
	delete(group, c)
	if len(group) == 0 {
		delete(h.groups, tableID)
	}
}

// presencePayload is sent with user:joined and user:left
type presencePayload struct {
	ClientID string `json:"clientId"`
	TableID  string `json:"tableId"`
}

func (h *Hub) notifyMembers(c *Client, tableID string, kind domain.EventKind) {
	event, err := newTableEvent(tableID, kind, presencePayload{ClientID: c.id, TableID: tableID}, h.clock.Now())
	if err != nil {
		h.log.Error("Failed to build presence event", zap.Error(err))
		return
	}
	if err := h.submit(event, c); err != nil && !errors.Is(err, ErrHubClosed) {
		h.log.Warn("Failed to queue presence event", zap.Error(err))
	}
}

// ConnectedCount returns the number of connected clients
func (h *Hub) ConnectedCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ClientsInRoom returns the IDs of the clients subscribed to a table, sorted
func (h *Hub) ClientsInRoom(tableID string) []string {
	h.mu.RLock()
	ids := make([]string, 0, len(h.groups[tableID]))
	for c := range h.groups[tableID] {
		ids = append(ids, c.id)
	}
	h.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// Close disconnects every client and waits for queued events to be dispatched
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.mu.Unlock()

	h.pool.StopAndWait()

	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[*Client]struct{})
	h.groups = make(map[string]map[*Client]struct{})
	h.mu.Unlock()

	for _, c := range clients {
		c.close(ReasonShutdown, nil)
	}
	h.log.Info("Realtime hub closed", zap.Int("clients", len(clients)))
}
