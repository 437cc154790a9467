package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/smarttable/internal/observability"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// fakeSource hands out whatever slice it currently holds.
type fakeSource struct {
	rows []*types.Row
}

func (s *fakeSource) Rows() []*types.Row { return s.rows }

func people() []*types.Row {
	return types.NewRows(
		map[string]any{"name": "Renard", "firstname": "Laurent", "age": 66},
		map[string]any{"name": "Francoise", "firstname": "Frere", "age": 99},
		map[string]any{"name": "Renard", "firstname": "Olivier", "age": 33},
		map[string]any{"name": "Leponge", "firstname": "Bob", "age": 22},
		map[string]any{"name": "Faivre", "firstname": "Blandine", "age": 44},
	)
}

// newTestTable builds a table over src with a recorder subscribed.
func newTestTable(t *testing.T, rows []*types.Row, opts ...Option) (*Table, *fakeSource, *observability.Recorder) {
	t.Helper()
	src := &fakeSource{rows: rows}
	rec := &observability.Recorder{}
	opts = append([]Option{WithObserver(rec), WithSource(src)}, opts...)
	table, err := New(types.DefaultConfig(), opts...)
	require.NoError(t, err)
	return table, src, rec
}

// firstnames identifies rows of the people dataset.
func firstnames(rows []*types.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i], _ = r.Fields["firstname"].(string)
	}
	return out
}
