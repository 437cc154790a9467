package types

import "errors"

// Selection modes for Table.Select.
const (
	SelectSingle   = "single"
	SelectMultiple = "multiple"
)

// PipeFunc replaces a table's pipe. It receives the live state and the table
// itself, so it can call DefaultPipe to wrap the built-in behavior.
type PipeFunc func(state *TableState, table Table)

// FilterFunc narrows rows to those matching every key of predicateObject.
// It must not modify rows.
type FilterFunc func(rows []*Row, predicateObject map[string]any, comparator Comparator) []*Row

// SortFunc orders rows by predicate. It must not modify rows.
type SortFunc func(rows []*Row, predicate SortPredicate, reverse bool) []*Row

// Table is the engine UI adapters drive. Every mutating operation updates
// the state and then calls Pipe before returning; callers serialize calls.
type Table interface {
	// ID uniquely identifies this table instance (UUID v7).
	ID() string

	// SortBy sorts by predicate, resets to the first page, and pipes.
	// Returns ErrUnnamedSortFunction if predicate is an unnamed function;
	// the state is left untouched in that case.
	SortBy(predicate SortPredicate, reverse bool) error

	// ClearSort drops the sort, resets to the first page, and pipes.
	ClearSort()

	// RegisterFilter returns the filter named name, creating it with opts
	// when absent. Registration is idempotent: the first call wins.
	RegisterFilter(name string, opts ...FilterOption) *FilterEntry

	// ApplyFilter stores input under predicateKey (GlobalKey when empty) in
	// filter, or removes the key when input equals the filter's EmptyValue,
	// then resets to the first page and pipes.
	ApplyFilter(input any, predicateKey string, filter *FilterEntry)

	// Search applies input to the "search" filter.
	Search(input any, predicateKey string)

	// Slice sets the pagination window and pipes. Start is clamped by the
	// pipe, not here.
	Slice(start, number int)

	// Select toggles the selection flag of a row of the current snapshot.
	// In SelectSingle mode at most one row stays selected. Rows not in the
	// snapshot are ignored.
	Select(row *Row, mode string)

	// GetUniqueValues returns the sorted distinct values found at
	// predicateKey across the snapshot.
	GetUniqueValues(predicateKey string) []any

	// SetFilterFunction swaps the filter function for the one registered
	// under name. Returns ErrFunctionNotFound for unknown names.
	SetFilterFunction(name string) error

	// SetSortFunction swaps the sort function for the one registered under
	// name. Returns ErrFunctionNotFound for unknown names.
	SetSortFunction(name string) error

	// PreventPipeOnWatch stops source changes from triggering the pipe.
	PreventPipeOnWatch()

	// SetPipe replaces the pipe; nil restores the default.
	SetPipe(fn PipeFunc)

	// Pipe runs the current pipe.
	Pipe()

	// DefaultPipe runs the built-in filter, sort, paginate pipeline and
	// publishes its result.
	DefaultPipe()

	// Publish makes rows the current view. Custom pipes use it to publish
	// their own results.
	Publish(rows []*Row)

	// TableState returns the live state.
	TableState() *TableState

	// View returns the last published view.
	View() []*Row

	// Snapshot returns the rows the pipe works on, or nil before a source
	// is attached.
	Snapshot() []*Row

	// Attach binds the table to src, snapshots it, and publishes.
	Attach(src Source)

	// Sync checks the source for a new slice or a new length. On change it
	// replaces the snapshot, resets to the first page, pipes (unless
	// prevented), emits EventSourceChanged, and returns true.
	Sync() bool

	// Subscribe registers an observer; the returned func unregisters it.
	Subscribe(observer Observer) (cancel func())
}

// Table operation errors.
var (
	ErrUnnamedSortFunction = errors.New("sort function predicate requires a name")
	ErrFunctionNotFound    = errors.New("function not registered")
	ErrEmptyFunctionName   = errors.New("function name must not be empty")
)
