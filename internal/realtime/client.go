package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// CloseReason explains why a client connection was closed
type CloseReason string

const (
	ReasonReadError  CloseReason = "read_error"
	ReasonWriteError CloseReason = "write_error"
	ReasonPingError  CloseReason = "ping_error"
	ReasonBufferFull CloseReason = "buffer_full"
	ReasonShutdown   CloseReason = "server_shutdown"
)

// Client → server event names
const (
	ClientEventJoin  = "table:join"
	ClientEventLeave = "table:leave"

	// ServerEventError is sent back for messages the hub cannot act on
	ServerEventError = "error"
)

// clientMessage is a frame sent by a client
type clientMessage struct {
	Event   string `json:"event"`
	TableID string `json:"tableId"`
}

// errorMessage is sent to a single client in response to a bad frame
type errorMessage struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}

// Client is one websocket connection.
// Its table set is guarded by the hub's lock.
type Client struct {
	id         string
	remoteAddr string
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	tables     map[string]struct{}

	done      chan struct{}
	closeOnce sync.Once
}

func newClient(h *Hub, conn *websocket.Conn, id, remoteAddr string) *Client {
	return &Client{
		id:         id,
		remoteAddr: remoteAddr,
		hub:        h,
		conn:       conn,
		send:       make(chan []byte, h.cfg.SendBuffer),
		tables:     make(map[string]struct{}),
		done:       make(chan struct{}),
	}
}

// ID returns the connection ID announced in presence events
func (c *Client) ID() string {
	return c.id
}

// enqueue hands a frame to the write pump without blocking.
// It reports false when the send buffer is full.
func (c *Client) enqueue(data []byte) bool {
	select {
	case <-c.done:
		return true
	default:
	}

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *Client) close(reason CloseReason, err error) {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
		if err != nil {
			c.hub.log.Debug("Websocket connection closed",
				zap.String("clientID", c.id),
				zap.String("reason", string(reason)),
				zap.Error(err),
			)
		}
	})
}

// readPump handles client frames until the connection fails, then unregisters the client
func (c *Client) readPump() {
	cfg := c.hub.cfg
	reason := ReasonReadError
	var readErr error
	defer func() {
		c.hub.unregister(c, reason)
		if readErr != nil {
			c.hub.log.Debug("Websocket read failed", zap.String("clientID", c.id), zap.Error(readErr))
		}
	}()

	c.conn.SetReadLimit(cfg.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				readErr = err
			}
			select {
			case <-c.done:
				reason = ReasonShutdown
			default:
			}
			return
		}
		c.handleMessage(data)
	}
}

func (c *Client) handleMessage(data []byte) {
	var msg clientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.replyError("malformed message")
		return
	}

	switch msg.Event {
	case ClientEventJoin:
		if msg.TableID == "" {
			c.replyError("tableId is required")
			return
		}
		c.hub.join(c, msg.TableID)
	case ClientEventLeave:
		if msg.TableID == "" {
			c.replyError("tableId is required")
			return
		}
		c.hub.leave(c, msg.TableID)
	default:
		c.replyError("unknown event: " + msg.Event)
	}
}

func (c *Client) replyError(message string) {
	data, err := json.Marshal(errorMessage{Event: ServerEventError, Message: message})
	if err != nil {
		return
	}
	if !c.enqueue(data) {
		c.hub.unregister(c, ReasonBufferFull)
	}
}

// writePump writes queued frames and pings until the client is closed
func (c *Client) writePump() {
	cfg := c.hub.cfg
	ticker := time.NewTicker(cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
			return

		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.hub.unregister(c, ReasonWriteError)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.hub.unregister(c, ReasonPingError)
				return
			}
		}
	}
}
