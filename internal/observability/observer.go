// Package observability provides observers for table events: a no-op sink,
// a fan-out, a logger-backed observer, and an in-memory recorder.
package observability

import "github.com/mesh-intelligence/smarttable/pkg/types"

// NoOpObserver discards all events.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(event types.Event) {}

// MultiObserver fans out events to multiple observers.
type MultiObserver struct {
	observers []types.Observer
}

// NewMultiObserver creates a MultiObserver that forwards events to all
// non-nil observers.
func NewMultiObserver(observers ...types.Observer) *MultiObserver {
	filtered := make([]types.Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

func (m *MultiObserver) OnEvent(event types.Event) {
	for _, obs := range m.observers {
		obs.OnEvent(event)
	}
}
