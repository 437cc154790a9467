package control

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/smarttable/internal/engine"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

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

func newTable(t *testing.T, rows []*types.Row) (*engine.Table, *fakeSource) {
	t.Helper()
	src := &fakeSource{rows: rows}
	table, err := engine.New(types.DefaultConfig(), engine.WithSource(src))
	require.NoError(t, err)
	return table, src
}

func firstnames(rows []*types.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i], _ = r.Fields["firstname"].(string)
	}
	return out
}

func labels(choices []Choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Label
	}
	return out
}
