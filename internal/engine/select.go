package engine

import (
	"slices"

	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// Select toggles row's selection flag. In SelectSingle mode the previously
// selected row is cleared first; any other mode toggles independently. Rows
// absent from the snapshot are ignored. Select does not pipe.
func (t *Table) Select(row *types.Row, mode string) {
	if row == nil || !slices.Contains(t.snapshot, row) {
		return
	}

	row.Selected = !row.Selected
	if mode == types.SelectSingle {
		if t.lastSelected != nil && t.lastSelected != row {
			t.lastSelected.Selected = false
		}
		t.lastSelected = nil
		if row.Selected {
			t.lastSelected = row
		}
	}

	t.emit(types.EventRowSelected, map[string]any{
		"selected": row.Selected,
		"mode":     mode,
	})
}

// Selected returns the selected rows of the snapshot in snapshot order.
func (t *Table) Selected() []*types.Row {
	var out []*types.Row
	for _, r := range t.snapshot {
		if r.Selected {
			out = append(out, r)
		}
	}
	return out
}
