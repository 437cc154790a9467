package control

import "github.com/mesh-intelligence/smarttable/pkg/types"

// SelectRow is the click handler of a table row.
type SelectRow struct {
	table types.Table
	mode  string
}

// NewSelectRow returns a click handler using mode; empty means
// types.SelectSingle.
func NewSelectRow(table types.Table, mode string) *SelectRow {
	if mode == "" {
		mode = types.SelectSingle
	}
	return &SelectRow{table: table, mode: mode}
}

// Mode returns the selection mode.
func (s *SelectRow) Mode() string {
	return s.mode
}

// Click toggles the selection of row.
func (s *SelectRow) Click(row *types.Row) {
	s.table.Select(row, s.mode)
}

// BindPipe hands the pipe of table over to fn. Source changes no longer
// pipe on their own; state changes call fn with the live state and the
// table, and fn may call table.DefaultPipe.
func BindPipe(table types.Table, fn types.PipeFunc) {
	if fn == nil {
		return
	}
	table.PreventPipeOnWatch()
	table.SetPipe(fn)
}
