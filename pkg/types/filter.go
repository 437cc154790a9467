package types

import (
	"bytes"
	"encoding/json"
	"iter"
)

// GlobalKey is the predicate key that matches against any property of a row.
const GlobalKey = "$"

// SearchFilterName is the filter used by Table.Search.
const SearchFilterName = "search"

// Comparator decides whether an actual row value matches the expected value
// stored in a filter's predicate object.
type Comparator func(actual, expected any) bool

// FilterEntry is one named filter of a table. Each key of PredicateObject is
// a property path (or GlobalKey) mapped to the value rows must match; all
// keys must match for a row to pass. A key is removed, never set, when the
// applied input equals EmptyValue.
type FilterEntry struct {
	Name            string         `json:"name"`
	Comparator      Comparator     `json:"-"` // nil selects the table's default matching.
	PredicateObject map[string]any `json:"predicateObject"`
	EmptyValue      any            `json:"emptyValue"`
}

// Active reports whether the filter constrains anything.
func (f *FilterEntry) Active() bool {
	return f != nil && len(f.PredicateObject) > 0
}

// FilterOption configures a FilterEntry on first registration.
type FilterOption func(*FilterEntry)

// WithComparator sets the comparator of a new filter entry.
func WithComparator(c Comparator) FilterOption {
	return func(f *FilterEntry) { f.Comparator = c }
}

// WithEmptyValue sets the value that means "no constraint" for a new filter
// entry. The default is the empty string.
func WithEmptyValue(v any) FilterOption {
	return func(f *FilterEntry) { f.EmptyValue = v }
}

// Filters is the filter registry of a table: filter entries keyed by name,
// iterated in registration order.
type Filters struct {
	order   []string
	entries map[string]*FilterEntry
}

// NewFilters returns an empty registry.
func NewFilters() *Filters {
	return &Filters{entries: make(map[string]*FilterEntry)}
}

// Register returns the entry named name, creating it when absent. Options are
// applied only on creation; later calls return the existing entry unchanged.
func (f *Filters) Register(name string, opts ...FilterOption) *FilterEntry {
	if f.entries == nil {
		f.entries = make(map[string]*FilterEntry)
	}
	if entry, ok := f.entries[name]; ok {
		return entry
	}
	entry := &FilterEntry{
		Name:            name,
		PredicateObject: make(map[string]any),
		EmptyValue:      "",
	}
	for _, opt := range opts {
		opt(entry)
	}
	f.entries[name] = entry
	f.order = append(f.order, name)
	return entry
}

// Lookup returns the entry named name.
func (f *Filters) Lookup(name string) (*FilterEntry, bool) {
	entry, ok := f.entries[name]
	return entry, ok
}

// Len returns the number of registered filters.
func (f *Filters) Len() int {
	return len(f.order)
}

// Names returns the filter names in registration order.
func (f *Filters) Names() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// All iterates the entries in registration order.
func (f *Filters) All() iter.Seq2[string, *FilterEntry] {
	return func(yield func(string, *FilterEntry) bool) {
		for _, name := range f.order {
			if !yield(name, f.entries[name]) {
				return
			}
		}
	}
}

// MarshalJSON encodes the registry as an object whose members follow
// registration order.
func (f *Filters) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range f.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.entries[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
