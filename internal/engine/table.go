// Package engine implements types.Table: the filter registry, table state,
// the filter-sort-paginate pipe, row selection, and source synchronization.
//
// A Table is not safe for concurrent use. Every operation runs to
// completion, pipe included, before returning; callers serialize calls.
package engine

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/text/collate"

	"github.com/mesh-intelligence/smarttable/internal/logging"
	"github.com/mesh-intelligence/smarttable/internal/match"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

var _ types.Table = (*Table)(nil)

// Table is the in-memory table engine.
type Table struct {
	id       string
	config   types.Config
	state    *types.TableState
	registry *match.Registry
	filterFn types.FilterFunc
	sortFn   types.SortFunc
	pipeFn   types.PipeFunc
	collator *collate.Collator
	logger   *log.Logger

	// Source synchronization.
	source        types.Source
	pending       types.Source // set by WithSource, attached at the end of New
	pipeAfterSync bool
	srcRows       []*types.Row // slice last returned by source.Rows
	snapshot      []*types.Row
	view          []*types.Row

	lastSelected *types.Row

	observers []subscription
	nextSubID int
}

// Option overrides a part of the table at construction.
type Option func(*Table)

// WithRegistry resolves filter and sort function names against r instead
// of match.Default.
func WithRegistry(r *match.Registry) Option {
	return func(t *Table) {
		if r != nil {
			t.registry = r
		}
	}
}

// WithObserver subscribes obs for the lifetime of the table.
func WithObserver(obs types.Observer) Option {
	return func(t *Table) {
		if obs != nil {
			t.Subscribe(obs)
		}
	}
}

// WithPipe installs a custom pipe and stops source changes from piping.
func WithPipe(fn types.PipeFunc) Option {
	return func(t *Table) {
		t.PreventPipeOnWatch()
		t.SetPipe(fn)
	}
}

// WithLogger sets the logger; the default is the global logger.
func WithLogger(l *log.Logger) Option {
	return func(t *Table) { t.logger = l }
}

// WithSource attaches src once the table is built.
func WithSource(src types.Source) Option {
	return func(t *Table) { t.pending = src }
}

// New creates a table from cfg. FilterFunction and SortFunction, when set,
// must name functions in the registry.
// Returns a config validation error or ErrFunctionNotFound.
func New(cfg types.Config, opts ...Option) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Table{
		id:            generateID(),
		config:        cfg,
		state:         types.NewTableState(),
		registry:      match.Default,
		pipeAfterSync: true,
	}
	for _, opt := range opts {
		opt(t)
	}

	filterName := cfg.FilterFunction
	if filterName == "" {
		filterName = match.DefaultFilterName
	}
	filterFn, err := t.registry.Filter(filterName)
	if err != nil {
		return nil, err
	}
	sortName := cfg.SortFunction
	if sortName == "" {
		sortName = match.DefaultSortName
	}
	sortFn, err := t.registry.Sort(sortName)
	if err != nil {
		return nil, err
	}
	t.filterFn, t.sortFn = filterFn, sortFn

	locale := cfg.Locale
	if locale == "" {
		locale = types.DefaultLocale
	}
	t.collator = match.NewCollator(locale)

	if cfg.ItemsByPage > 0 {
		t.state.Pagination.Number = cfg.ItemsByPage
	}

	if t.pending != nil {
		src := t.pending
		t.pending = nil
		t.Attach(src)
	}
	return t, nil
}

// generateID returns a UUID v7 string, falling back to v4.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func (t *Table) log() *log.Logger {
	if t.logger != nil {
		return t.logger
	}
	return logging.Logger
}

// ID returns the table's UUID.
func (t *Table) ID() string {
	return t.id
}

// Config returns the configuration the table was built with.
func (t *Table) Config() types.Config {
	return t.config
}

// SortBy sorts by predicate and returns to the first page.
func (t *Table) SortBy(predicate types.SortPredicate, reverse bool) error {
	if predicate.Fn != nil && predicate.Name == "" {
		return types.ErrUnnamedSortFunction
	}
	t.state.Sort.Predicate = predicate
	t.state.Sort.Reverse = reverse
	t.state.Sort.FunctionName = ""
	if predicate.IsFunc() {
		t.state.Sort.FunctionName = predicate.Name
	}
	t.state.Pagination.Start = 0
	t.Pipe()
	return nil
}

// ClearSort returns to source order.
func (t *Table) ClearSort() {
	t.state.Sort = types.SortSpec{}
	t.state.Pagination.Start = 0
	t.Pipe()
}

// RegisterFilter returns the filter named name, creating it when absent.
func (t *Table) RegisterFilter(name string, opts ...types.FilterOption) *types.FilterEntry {
	return t.state.Filters.Register(name, opts...)
}

// ApplyFilter sets or lifts one constraint of filter and pipes.
func (t *Table) ApplyFilter(input any, predicateKey string, filter *types.FilterEntry) {
	if filter == nil {
		t.log().Warn("apply filter without an entry", "table", t.id, "key", predicateKey)
		return
	}
	if predicateKey == "" {
		predicateKey = types.GlobalKey
	}
	if filter.PredicateObject == nil {
		filter.PredicateObject = make(map[string]any)
	}
	if match.Equal(input, filter.EmptyValue) {
		delete(filter.PredicateObject, predicateKey)
	} else {
		filter.PredicateObject[predicateKey] = input
	}
	t.state.Pagination.Start = 0
	t.Pipe()
}

// Search applies input to the "search" filter.
func (t *Table) Search(input any, predicateKey string) {
	t.ApplyFilter(input, predicateKey, t.RegisterFilter(types.SearchFilterName))
}

// Slice sets the pagination window and pipes.
func (t *Table) Slice(start, number int) {
	t.state.Pagination.Start = start
	t.state.Pagination.Number = number
	t.Pipe()
}

// GetUniqueValues returns the sorted distinct values at predicateKey across
// the snapshot; empty before a source is attached.
func (t *Table) GetUniqueValues(predicateKey string) []any {
	return match.UniqueValues(t.snapshot, predicateKey, t.collator)
}

// SetFilterFunction replaces the filter function with the one registered
// under name. The current view is not recomputed until the next pipe.
func (t *Table) SetFilterFunction(name string) error {
	fn, err := t.registry.Filter(name)
	if err != nil {
		t.log().Warn("filter function not found", "table", t.id, "name", name)
		return err
	}
	t.filterFn = fn
	return nil
}

// SetSortFunction replaces the sort function with the one registered under
// name. The current view is not recomputed until the next pipe.
func (t *Table) SetSortFunction(name string) error {
	fn, err := t.registry.Sort(name)
	if err != nil {
		t.log().Warn("sort function not found", "table", t.id, "name", name)
		return err
	}
	t.sortFn = fn
	return nil
}

// TableState returns the live state with Search refreshed.
func (t *Table) TableState() *types.TableState {
	if entry, ok := t.state.Filters.Lookup(types.SearchFilterName); ok {
		t.state.Search = entry
	}
	return t.state
}
