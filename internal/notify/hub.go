// Package notify fans tracker events out to presentation-layer subscribers.
package notify

import (
	"sync"

	"github.com/me-learn/tracker/internal/tracker"
)

const subscriberBuffer = 16

// Hub broadcasts engine events to all current subscribers. It implements
// tracker.EventLogger so it can be wired directly into the engine. Events are
// advisory: a subscriber whose buffer is full misses the event rather than
// blocking a state transition.
type Hub struct {
	mu   sync.Mutex
	subs map[chan tracker.Event]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[chan tracker.Event]struct{}),
	}
}

// LogEvent delivers the event to every subscriber.
func (h *Hub) LogEvent(event tracker.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- event:
		default: // slow subscriber, drop
		}
	}
	return nil
}

// Subscribe registers a new subscriber. The returned cancel func must be
// called when the subscriber is done; the channel is closed by cancel.
func (h *Hub) Subscribe() (<-chan tracker.Event, func()) {
	ch := make(chan tracker.Event, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}
