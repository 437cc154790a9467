package engine

import (
	"slices"

	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// PreventPipeOnWatch stops source changes from piping.
func (t *Table) PreventPipeOnWatch() {
	t.pipeAfterSync = false
}

// SetPipe replaces the pipe; nil restores DefaultPipe.
func (t *Table) SetPipe(fn types.PipeFunc) {
	t.pipeFn = fn
}

// Pipe runs the current pipe.
func (t *Table) Pipe() {
	if t.pipeFn != nil {
		t.pipeFn(t.state, t)
		return
	}
	t.DefaultPipe()
}

// DefaultPipe narrows the snapshot by every active filter in registration
// order, sorts it, cuts the current page, and publishes the result.
func (t *Table) DefaultPipe() {
	if t.snapshot == nil {
		t.Publish(nil)
		return
	}

	filtered := t.snapshot
	for _, entry := range t.state.Filters.All() {
		if !entry.Active() {
			continue
		}
		filtered = t.filterFn(filtered, entry.PredicateObject, entry.Comparator)
	}

	if !t.state.Sort.Predicate.IsZero() {
		filtered = t.sortFn(filtered, t.state.Sort.Predicate, t.state.Sort.Reverse)
	}

	if t.state.Pagination.Enabled() {
		filtered = paginate(filtered, &t.state.Pagination)
	}

	t.Publish(filtered)
}

// paginate derives NumberOfPages, pulls Start back onto the last page when
// it points past the data, and returns the page at Start.
func paginate(rows []*types.Row, p *types.PaginationSpec) []*types.Row {
	n := len(rows)
	p.NumberOfPages = 1
	if n > 0 {
		p.NumberOfPages = (n + p.Number - 1) / p.Number
	}
	if p.Start < 0 {
		p.Start = 0
	}
	if p.Start >= n {
		p.Start = (p.NumberOfPages - 1) * p.Number
	}
	end := min(p.Start+p.Number, n)
	return rows[p.Start:end]
}

// Publish makes a copy of rows the current view and notifies observers.
func (t *Table) Publish(rows []*types.Row) {
	view := make([]*types.Row, len(rows))
	copy(view, rows)
	t.view = view

	p := t.state.Pagination
	t.emit(types.EventViewPublished, map[string]any{
		"count":  len(view),
		"start":  p.Start,
		"number": p.Number,
		"pages":  p.NumberOfPages,
	})
}

// View returns the last published view. The slice is owned by the table;
// callers must not modify it.
func (t *Table) View() []*types.Row {
	return t.view
}

// Snapshot returns a copy of the rows the pipe works on, or nil before a
// source is attached.
func (t *Table) Snapshot() []*types.Row {
	return slices.Clone(t.snapshot)
}
