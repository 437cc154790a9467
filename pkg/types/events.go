package types

import "time"

// EventType identifies the kind of table event.
type EventType string

// Table events.
const (
	EventViewPublished EventType = "table.view.published"
	EventSourceChanged EventType = "table.source.changed"
	EventRowSelected   EventType = "table.row.selected"
	EventSourceMissing EventType = "table.source.missing"
)

// Event is emitted by a table to its observers.
type Event struct {
	Type      EventType
	TableID   string
	Timestamp time.Time
	Data      map[string]any
}

// Observer receives table events. Observers run synchronously inside the
// operation that emitted the event.
type Observer interface {
	OnEvent(event Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(event Event)

// OnEvent calls f(event).
func (f ObserverFunc) OnEvent(event Event) {
	f(event)
}
