// Package source provides the upstream collections a table snapshots: an
// in-memory slice, JSON and JSONL files, SQLite tables, and a file watcher
// that reloads a file source and syncs the tables reading it.
//
// Every source replaces its row slice on change instead of mutating it, so
// a table's Sync sees a new slice and a snapshot taken earlier stays valid.
package source

import (
	"slices"
	"sync"

	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// Slice is an in-memory source. Safe for concurrent use.
type Slice struct {
	mu   sync.RWMutex
	rows []*types.Row
}

// NewSlice returns a source holding rows.
func NewSlice(rows []*types.Row) *Slice {
	return &Slice{rows: rows}
}

// Rows returns the current slice.
func (s *Slice) Rows() []*types.Row {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows
}

// Set replaces the rows.
func (s *Slice) Set(rows []*types.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = rows
}

// Append adds rows at the end.
func (s *Slice) Append(rows ...*types.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]*types.Row, 0, len(s.rows)+len(rows))
	next = append(next, s.rows...)
	s.rows = append(next, rows...)
}

// Remove drops row (by identity). Reports whether it was present.
func (s *Slice) Remove(row *types.Row) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.Index(s.rows, row)
	if i < 0 {
		return false
	}
	s.rows = slices.Delete(slices.Clone(s.rows), i, i+1)
	return true
}
