package engine

import (
	"slices"
	"time"

	"github.com/mesh-intelligence/smarttable/pkg/types"
)

type subscription struct {
	id       int
	observer types.Observer
}

// Subscribe registers observer; the returned func unregisters it.
func (t *Table) Subscribe(observer types.Observer) (cancel func()) {
	t.nextSubID++
	id := t.nextSubID
	t.observers = append(t.observers, subscription{id: id, observer: observer})
	return func() {
		t.observers = slices.DeleteFunc(t.observers, func(s subscription) bool {
			return s.id == id
		})
	}
}

// emit delivers an event to the observers subscribed when it fires.
// Observers may subscribe or cancel from inside OnEvent.
func (t *Table) emit(eventType types.EventType, data map[string]any) {
	if len(t.observers) == 0 {
		return
	}
	event := types.Event{
		Type:      eventType,
		TableID:   t.id,
		Timestamp: time.Now(),
		Data:      data,
	}
	for _, s := range slices.Clone(t.observers) {
		s.observer.OnEvent(event)
	}
}
