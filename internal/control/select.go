package control

import (
	"sync"

	"github.com/mesh-intelligence/smarttable/internal/logging"
	"github.com/mesh-intelligence/smarttable/internal/match"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// Filter names registered by the select adapters.
const (
	SearchSelectFilterName = "searchSelect"
	SelectFilterName       = "selectFilter"
)

// choiceList holds a dropdown's choices, regenerated from the table when
// they were not given explicitly.
type choiceList struct {
	table     types.Table
	predicate string
	cfg       choiceConfig

	mu      sync.Mutex
	choices []Choice
	cancel  func()
}

func (l *choiceList) init(table types.Table, predicate string, opts []ChoiceOption) {
	l.table = table
	l.predicate = predicate
	for _, opt := range opts {
		opt(&l.cfg)
	}
	if l.cfg.explicit {
		l.setChoices(l.cfg.choices)
		return
	}
	l.regenerate()
}

func (l *choiceList) regenerate() {
	l.setChoices(choicesFromValues(l.table.GetUniqueValues(l.predicate)))
}

func (l *choiceList) setChoices(choices []Choice) {
	out := append([]Choice(nil), choices...)
	applyLabel(l.cfg.label, out)
	l.mu.Lock()
	l.choices = out
	l.mu.Unlock()
}

// Choices returns the current dropdown choices.
func (l *choiceList) Choices() []Choice {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Choice(nil), l.choices...)
}

func (l *choiceList) has(v any) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return hasChoice(l.choices, v)
}

// Close stops following source changes.
func (l *choiceList) Close() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// SearchSelect is a dropdown that narrows the table to rows whose predicate
// equals the chosen value, through the shared "searchSelect" filter.
type SearchSelect struct {
	choiceList
	filter *types.FilterEntry
}

// NewSearchSelect binds a dropdown to table. Without explicit choices the
// choices are the unique values at predicate, refreshed on source changes.
func NewSearchSelect(table types.Table, predicate string, opts ...ChoiceOption) *SearchSelect {
	s := &SearchSelect{}
	s.init(table, predicate, opts)
	s.filter = table.RegisterFilter(SearchSelectFilterName, types.WithComparator(match.Strict))
	if !s.cfg.explicit {
		s.cancel = table.Subscribe(types.ObserverFunc(func(e types.Event) {
			if e.Type == types.EventSourceChanged {
				s.regenerate()
			}
		}))
	}
	return s
}

// Select filters on value; nil lifts the constraint.
func (s *SearchSelect) Select(value any) {
	if value == nil {
		value = s.filter.EmptyValue
	}
	s.table.ApplyFilter(value, s.predicate, s.filter)
}

// Selected returns the value the table currently filters on, or nil.
func (s *SearchSelect) Selected() any {
	return s.filter.PredicateObject[predicateKey(s.predicate)]
}

// SelectFilter is a dropdown filter that keeps its selection consistent
// with the data: when the source changes and the selected value is gone,
// the selection is reset.
type SelectFilter struct {
	choiceList
	filter *types.FilterEntry
}

// NewSelectFilter binds a select filter to table. The predicate must be a
// property path; GlobalKey is only accepted together with explicit choices.
// A named comparator gets its own filter, "selectFilter_<name>"; otherwise
// the strict "selectFilter" filter is shared.
func NewSelectFilter(table types.Table, predicate string, opts ...ChoiceOption) (*SelectFilter, error) {
	var cfg choiceConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if predicate == "" {
		logging.Error("empty predicate not allowed for select filter", "table", table.ID())
		return nil, ErrEmptyPredicate
	}
	if predicate == types.GlobalKey && !cfg.explicit {
		logging.Error("global predicate only allowed for select filter with explicit choices", "table", table.ID())
		return nil, ErrGlobalPredicate
	}
	if cfg.comparator != nil && cfg.comparatorName == "" {
		return nil, ErrUnnamedComparator
	}

	f := &SelectFilter{}
	f.init(table, predicate, opts)

	name, cmp := SelectFilterName, types.Comparator(match.Strict)
	if cfg.comparator != nil {
		name, cmp = SelectFilterName+"_"+cfg.comparatorName, cfg.comparator
	}
	f.filter = table.RegisterFilter(name, types.WithComparator(cmp), types.WithEmptyValue(nil))

	if v := cfg.preselected; v != nil && v != "" {
		f.filter.PredicateObject[predicate] = v
	}

	if !cfg.explicit {
		f.cancel = table.Subscribe(types.ObserverFunc(func(e types.Event) {
			if e.Type == types.EventSourceChanged {
				f.onSourceChanged()
			}
		}))
	}
	return f, nil
}

// FilterName returns the name of the filter entry the select drives.
func (f *SelectFilter) FilterName() string {
	return f.filter.Name
}

// Select filters on value. Values that are not among the choices select
// nothing; nil lifts the constraint. Selecting the current value is a no-op.
func (f *SelectFilter) Select(value any) {
	if value != nil && !f.has(value) {
		value = nil
	}
	if match.Equal(value, f.Selected()) {
		return
	}
	f.table.ApplyFilter(value, f.predicate, f.filter)
}

// Selected returns the value the table currently filters on, or nil.
func (f *SelectFilter) Selected() any {
	return f.filter.PredicateObject[f.predicate]
}

// SetChoices replaces the choices with explicit values.
func (f *SelectFilter) SetChoices(values ...any) {
	f.cfg.explicit = true
	f.Close()
	f.setChoices(choicesFromValues(values))
}

func (f *SelectFilter) onSourceChanged() {
	f.regenerate()
	if cur := f.Selected(); cur != nil && !f.has(cur) {
		f.table.ApplyFilter(nil, f.predicate, f.filter)
	}
}

func predicateKey(predicate string) string {
	if predicate == "" {
		return types.GlobalKey
	}
	return predicate
}
