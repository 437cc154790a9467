package engine

import (
	"slices"

	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// Attach binds the table to src, takes the first snapshot, and publishes:
// through the pipe, or the raw snapshot when piping on watch is prevented.
// A nil src leaves the table without data and publishes an empty view.
func (t *Table) Attach(src types.Source) {
	t.source = src
	t.lastSelected = nil
	if src == nil {
		t.srcRows, t.snapshot = nil, nil
		t.log().Warn("no source bound to table", "table", t.id)
		t.emit(types.EventSourceMissing, nil)
		t.Pipe()
		return
	}

	t.srcRows = src.Rows()
	t.snapshot = slices.Clone(t.srcRows)
	if t.pipeAfterSync {
		t.Pipe()
		return
	}
	t.Publish(t.snapshot)
}

// Sync refreshes the snapshot when the source returns a different slice or
// a different length than last time. Reports whether it did.
func (t *Table) Sync() bool {
	if t.source == nil {
		return false
	}
	rows := t.source.Rows()
	if sameRows(rows, t.srcRows) {
		return false
	}

	t.srcRows = rows
	t.snapshot = slices.Clone(rows)
	t.state.Pagination.Start = 0
	if t.pipeAfterSync {
		t.Pipe()
	}
	t.emit(types.EventSourceChanged, map[string]any{"count": len(rows)})
	return true
}

// sameRows compares slice identity: same length and same backing array.
func sameRows(a, b []*types.Row) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}
