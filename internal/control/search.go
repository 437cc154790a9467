package control

import (
	"sync"
	"time"

	"github.com/mesh-intelligence/smarttable/internal/match"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// Search is a debounced free-text search box bound to the table's "search"
// filter. Each Input cancels the pending search and restarts the delay.
//
// The table is only touched from the goroutine that owns it. Once the delay
// elapses, Search signals Ready and the owner calls Flush; WithDispatch
// hands the search to the owner's event loop instead.
type Search struct {
	table    types.Table
	delay    time.Duration
	dispatch func(func())
	ready    chan struct{}

	mu        sync.Mutex
	predicate string
	text      string
	pending   bool
	timer     *time.Timer
	seq       int
}

// SearchOption configures a Search.
type SearchOption func(*Search)

// WithDelay sets the debounce delay. Zero or negative keeps the default.
func WithDelay(d time.Duration) SearchOption {
	return func(s *Search) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithDispatch routes debounced searches through fn, which must call the
// function it receives on the goroutine that owns the table. Without it,
// elapsed searches wait on Ready for a Flush.
func WithDispatch(fn func(func())) SearchOption {
	return func(s *Search) {
		if fn != nil {
			s.dispatch = fn
		}
	}
}

// NewSearch binds a search box to table. An empty predicate searches every
// property.
func NewSearch(table types.Table, predicate string, opts ...SearchOption) *Search {
	s := &Search{
		table:     table,
		predicate: predicate,
		delay:     types.DefaultSearchDelay,
		ready:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Input records text as typed and restarts the delay.
func (s *Search) Input(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.text = text
	s.pending = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.seq++
	seq := s.seq
	s.timer = time.AfterFunc(s.delay, func() { s.fire(seq) })
}

// fire runs on the timer goroutine and never touches the table itself.
func (s *Search) fire(seq int) {
	s.mu.Lock()
	if seq != s.seq || !s.pending {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	if s.dispatch == nil {
		s.mu.Unlock()
		select {
		case s.ready <- struct{}{}:
		default:
		}
		return
	}
	s.pending = false
	text, predicate := s.text, s.predicate
	s.mu.Unlock()

	s.dispatch(func() { s.table.Search(text, predicate) })
}

// Ready receives a value when the delay of a pending search has elapsed.
// The receiver calls Flush to apply it. Signals do not queue.
func (s *Search) Ready() <-chan struct{} {
	return s.ready
}

// Flush applies the pending search immediately on the calling goroutine,
// whether or not its delay has elapsed. Reports whether one was pending.
func (s *Search) Flush() bool {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return false
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = false
	s.seq++
	text, predicate := s.text, s.predicate
	s.mu.Unlock()

	s.table.Search(text, predicate)
	return true
}

// Cancel drops the pending search, if any.
func (s *Search) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = false
	s.seq++
}

// Pending reports whether a search waits for its delay or for a Flush.
func (s *Search) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Predicate returns the property the box searches; empty means all.
func (s *Search) Predicate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.predicate
}

// SetPredicate moves the box to another property: its constraint under the
// old predicate is dropped and the current text applied under the new one,
// which also settles any pending search. Other keys of the search filter
// are left alone.
func (s *Search) SetPredicate(predicate string) {
	s.mu.Lock()
	if predicate == s.predicate {
		s.mu.Unlock()
		return
	}
	old := s.predicate
	s.predicate = predicate
	text := s.text
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = false
	s.seq++
	s.mu.Unlock()

	entry := s.table.RegisterFilter(types.SearchFilterName)
	delete(entry.PredicateObject, predicateKey(old))
	s.table.Search(text, predicate)
}

// Value returns what the box should display: the search value stored in
// the table state for this box's predicate.
func (s *Search) Value() string {
	key := s.Predicate()
	if key == "" {
		key = types.GlobalKey
	}
	search := s.table.TableState().Search
	if search == nil {
		return ""
	}
	v, ok := search.PredicateObject[key]
	if !ok {
		return ""
	}
	return match.Stringify(v)
}
