package engine

import "time"

// EventType represents different lifecycle phases of a run
type EventType string

const (
	EventLoadStart   EventType = "load_start"
	EventLoadEnd     EventType = "load_end"
	EventFilterStart EventType = "filter_start"
	EventFilterEnd   EventType = "filter_end"
)

// Event represents a lifecycle event
type Event struct {
	Type      EventType   // Type of event
	QueryID   string      // Identifier shared by the start/end events of one operation
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (path, expression, row counts)
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}
