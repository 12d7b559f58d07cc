package tracker_test

import (
	"testing"
	"time"

	"github.com/me-learn/tracker/internal/tracker"
)

func TestMemoryEventLogger(t *testing.T) {
	logger := tracker.NewMemoryEventLogger()

	err := logger.LogEvent(tracker.Event{
		Type: tracker.EventLevelUp,
		Data: map[string]any{"level": 2},
	})
	if err != nil {
		t.Fatalf("LogEvent() error = %v", err)
	}

	events := logger.Events()
	if len(events) != 1 {
		t.Fatalf("Events() returned %d events, want 1", len(events))
	}
	if events[0].Type != tracker.EventLevelUp {
		t.Errorf("Type = %q, want %q", events[0].Type, tracker.EventLevelUp)
	}
	if events[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be stamped when omitted")
	}
}

func TestMemoryEventLogger_RequiresType(t *testing.T) {
	logger := tracker.NewMemoryEventLogger()

	if err := logger.LogEvent(tracker.Event{CreatedAt: time.Now()}); err == nil {
		t.Error("LogEvent() with an empty type should return an error")
	}
	if got := len(logger.Events()); got != 0 {
		t.Errorf("Events() returned %d events, want 0", got)
	}
}

func TestMemoryEventLogger_EventsReturnsCopy(t *testing.T) {
	logger := tracker.NewMemoryEventLogger()
	_ = logger.LogEvent(tracker.Event{Type: tracker.EventLogin})

	events := logger.Events()
	events[0].Type = "mutated"

	if got := logger.Events()[0].Type; got != tracker.EventLogin {
		t.Errorf("Type = %q, stored events should not share the returned slice", got)
	}
}
