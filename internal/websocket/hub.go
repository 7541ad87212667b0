package websocket

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	// ErrClientClosed is returned when sending to a closed client
	ErrClientClosed = errors.New("client is closed")
	// ErrClientSlow is returned when a client's event queue is full
	ErrClientSlow   = errors.New("client event queue is full")
)

// Subscriber is a change-feed recipient registered with the Hub
type Subscriber interface {
	ID() string
	Wants(entity EntityType) bool
	Send(event Event) error
	Close() error
}

// Hub fans change events out to subscribers. It is safe for concurrent use.
type Hub struct {
	subscribers map[string]Subscriber
	mu          sync.RWMutex
}

// NewHub creates an empty Hub
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]Subscriber),
	}
}

// Register adds s to the hub
func (h *Hub) Register(s Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.subscribers[s.ID()] = s

	log.Debug().
		Str("client_id", s.ID()).
		Int("client_count", len(h.subscribers)).
		Msg("Change feed client registered")
}

// Unregister removes s from the hub
func (h *Hub) Unregister(s Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[s.ID()]; ok {
		delete(h.subscribers, s.ID())
		log.Debug().Str("client_id", s.ID()).Msg("Change feed client unregistered")
	}
}

// Broadcast queues event for every subscriber that wants its entity type. A subscriber
// whose queue is full is dropped so one stalled browser tab cannot hold events for the rest.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	targets := make([]Subscriber, 0, len(h.subscribers))
	for _, s := range h.subscribers {
		if s.Wants(event.Entity) {
			targets = append(targets, s)
		}
	}
	h.mu.RUnlock()

	if len(targets) == 0 {
		return
	}

	for _, s := range targets {
		err := s.Send(event)
		switch {
		case err == nil:
		case errors.Is(err, ErrClientSlow):
			log.Warn().
				Str("client_id", s.ID()).
				Str("event_type", event.Type).
				Msg("Dropping slow change feed client")
			h.Unregister(s)
			s.Close()
		default:
			h.Unregister(s)
		}
	}

	log.Debug().
		Str("event_type", event.Type).
		Int("client_count", len(targets)).
		Msg("Broadcast event")
}

// ClientCount returns the number of registered subscribers
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// CloseAll closes and removes every subscriber, used on shutdown
func (h *Hub) CloseAll() {
	h.mu.Lock()
	subscribers := h.subscribers
	h.subscribers = make(map[string]Subscriber)
	h.mu.Unlock()

	for _, s := range subscribers {
		if err := s.Close(); err != nil {
			log.Debug().Err(err).Str("client_id", s.ID()).Msg("Error closing change feed client")
		}
	}
}
