package tracker

import (
	"fmt"
	"sync"
	"time"
)

// Event types emitted by the engine. They are advisory signals for the
// presentation layer (toasts, level-up banners) and are not persisted state.
const (
	EventQuizSubmitted   = "quiz_submitted"
	EventPointsAwarded   = "points_awarded"
	EventLevelUp         = "level_up"
	EventBadgeEarned     = "badge_earned"
	EventCourseCompleted = "course_completed"
	EventLogin           = "login"
)

// Event is one advisory signal.
type Event struct {
	Type      string         `json:"type"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// EventLogger receives advisory events. Implementations must not block state
// transitions; a failed LogEvent is logged and ignored by the engine.
type EventLogger interface {
	LogEvent(event Event) error
}

// NopEventLogger ignores all events.
type NopEventLogger struct{}

func (NopEventLogger) LogEvent(Event) error {
	return nil
}

// MemoryEventLogger stores events in memory for tests.
type MemoryEventLogger struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryEventLogger() *MemoryEventLogger {
	return &MemoryEventLogger{
		events: []Event{},
	}
}

func (l *MemoryEventLogger) LogEvent(event Event) error {
	if event.Type == "" {
		return fmt.Errorf("event type is required")
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	l.mu.Lock()
	l.events = append(l.events, event)
	l.mu.Unlock()

	return nil
}

func (l *MemoryEventLogger) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Event{}, l.events...)
}
