package control

import "github.com/mesh-intelligence/smarttable/pkg/types"

// SortState is the indicator a sort header shows.
type SortState string

// Sort indicator states.
const (
	SortNatural    SortState = "natural"
	SortAscending  SortState = "ascent"
	SortDescending SortState = "descent"
)

// Sort is a sort header cycling natural, ascending, descending, natural.
type Sort struct {
	table     types.Table
	predicate types.SortPredicate
	index     int
}

// SortOption configures a Sort.
type SortOption func(*sortConfig)

type sortConfig struct {
	applyDefault bool
	reverse      bool
}

// WithDefaultSort sorts by the header on construction, descending when
// reverse is set.
func WithDefaultSort(reverse bool) SortOption {
	return func(c *sortConfig) {
		c.applyDefault = true
		c.reverse = reverse
	}
}

// NewSort binds a sort header for predicate to table.
func NewSort(table types.Table, predicate types.SortPredicate, opts ...SortOption) (*Sort, error) {
	var cfg sortConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Sort{table: table, predicate: predicate}
	if cfg.applyDefault {
		if cfg.reverse {
			s.index = 1
		}
		if err := s.advance(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Toggle moves to the next state of the cycle. A header without a
// predicate does nothing.
func (s *Sort) Toggle() error {
	if s.predicate.IsZero() {
		return nil
	}
	s.index = s.State().index()
	return s.advance()
}

func (s *Sort) advance() error {
	s.index++
	if s.index%3 == 0 {
		s.index = 0
		s.table.ClearSort()
		return nil
	}
	return s.table.SortBy(s.predicate, s.index%2 == 0)
}

// State derives the indicator from the table state, so sorting through
// another header resets this one to natural.
func (s *Sort) State() SortState {
	sort := s.table.TableState().Sort
	switch {
	case s.predicate.IsZero() || !sort.Predicate.Same(s.predicate):
		return SortNatural
	case sort.Reverse:
		return SortDescending
	default:
		return SortAscending
	}
}

func (st SortState) index() int {
	switch st {
	case SortAscending:
		return 1
	case SortDescending:
		return 2
	}
	return 0
}
