// Package smarttable is the public entry point of the table engine: build a
// table over a source, drive it with sort, filter, slice and select, and
// read the published view.
//
//	table, err := smarttable.New(smarttable.DefaultConfig(),
//		smarttable.WithSource(smarttable.NewSliceSource(rows)))
//	table.Search("re", "name")
//	table.SortBy(types.ByPath("age"), false)
//	view := table.View()
package smarttable

import (
	"github.com/mesh-intelligence/smarttable/internal/engine"
	"github.com/mesh-intelligence/smarttable/internal/match"
	"github.com/mesh-intelligence/smarttable/internal/source"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// Version is the release version of the module.
const Version = "0.1.0"

// Table is the engine implementation of types.Table.
type Table = engine.Table

// Option overrides a part of a table at construction.
type Option = engine.Option

// Construction options.
var (
	WithRegistry = engine.WithRegistry
	WithObserver = engine.WithObserver
	WithPipe     = engine.WithPipe
	WithLogger   = engine.WithLogger
	WithSource   = engine.WithSource
)

// SliceSource is an in-memory source. Set and Append publish a new slice,
// which the next Table.Sync picks up.
type SliceSource = source.Slice

// NewSliceSource returns an in-memory source holding rows.
func NewSliceSource(rows []*types.Row) *SliceSource {
	return source.NewSlice(rows)
}

// Comparators for filter entries.
var (
	Fuzzy  types.Comparator = match.Fuzzy
	Strict types.Comparator = match.Strict
)

// DefaultConfig returns the default table configuration.
func DefaultConfig() types.Config {
	return types.DefaultConfig()
}

// New creates a table from cfg.
func New(cfg types.Config, opts ...Option) (*Table, error) {
	return engine.New(cfg, opts...)
}

// RegisterFilterFunction makes fn selectable by name through
// Config.FilterFunction and Table.SetFilterFunction.
func RegisterFilterFunction(name string, fn types.FilterFunc) error {
	return match.Default.RegisterFilter(name, fn)
}

// RegisterSortFunction makes fn selectable by name through
// Config.SortFunction and Table.SetSortFunction.
func RegisterSortFunction(name string, fn types.SortFunc) error {
	return match.Default.RegisterSort(name, fn)
}
