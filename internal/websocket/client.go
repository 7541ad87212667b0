package websocket

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	// writeWait bounds a single event or ping write
	writeWait = 10 * time.Second

	// pongWait is how long the feed waits for a pong before it drops the client
	pongWait = 60 * time.Second

	// pingPeriod must stay below pongWait
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize caps inbound frames; the feed only expects control frames
	maxMessageSize = 512

	// queueSize is how many events may wait for a slow client before the hub drops it
	queueSize = 256
)

// Client is one change-feed subscriber backed by a websocket connection. Events are queued
// as values and encoded by the write pump.
type Client struct {
	id        string
	conn      *websocket.Conn
	hub       *Hub
	entities  map[EntityType]bool
	queue     chan Event
	closed    bool
	mu        sync.RWMutex
	closeOnce sync.Once
}

// NewClient creates a client on conn. With no entities the client receives every event,
// otherwise only events about the listed entity types.
func NewClient(conn *websocket.Conn, hub *Hub, entities []EntityType) *Client {
	c := &Client{
		id:    uuid.New().String(),
		conn:  conn,
		hub:   hub,
		queue: make(chan Event, queueSize),
	}
	if len(entities) > 0 {
		c.entities = make(map[EntityType]bool, len(entities))
		for _, e := range entities {
			c.entities[e] = true
		}
	}
	return c
}

var _ Subscriber = (*Client)(nil)

// ID returns the client id
func (c *Client) ID() string {
	return c.id
}

// Wants reports whether the client subscribed to events about entity
func (c *Client) Wants(entity EntityType) bool {
	return c.entities == nil || c.entities[entity]
}

// Send queues event without blocking. It returns ErrClientSlow when the queue is full.
func (c *Client) Send(event Event) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}

	select {
	case c.queue <- event:
		return nil
	default:
		return ErrClientSlow
	}
}

// Close closes the queue and the connection. It is safe to call more than once.
func (c *Client) Close() error {
	var closeErr error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.queue)
		c.mu.Unlock()

		closeErr = c.conn.Close()
	})
	return closeErr
}

// IsClosed reports whether Close has been called
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// ReadPump keeps the connection alive by handling pongs until the peer goes away, then
// removes the client from the hub. Inbound messages are discarded. Run it in its own
// goroutine.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("client_id", c.id).Msg("Change feed closed unexpectedly")
			}
			return
		}
	}
}

// WritePump writes queued events as JSON text frames and pings the peer every pingPeriod.
// It returns when the queue is closed or a write fails. Run it in its own goroutine.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case event, ok := <-c.queue:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			data, err := event.ToJSON()
			if err != nil {
				log.Error().Err(err).Str("event_type", event.Type).Msg("Failed to encode change feed event")
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Warn().
					Err(err).
					Str("client_id", c.id).
					Str("event_type", event.Type).
					Msg("Failed to write change feed event")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
