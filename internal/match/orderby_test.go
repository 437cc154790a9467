package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/smarttable/pkg/types"
)

func TestOrderBy(t *testing.T) {
	byLength := types.ByFunc("firstnameLength", func(r *types.Row) any {
		return len(r.Fields["firstname"].(string))
	})

	tests := []struct {
		name    string
		pred    types.SortPredicate
		reverse bool
		want    []string
	}{
		{"path", types.ByPath("firstname"), false, []string{"Blandine", "Bob", "Frere", "Laurent", "Olivier"}},
		{"number", types.ByPath("age"), false, []string{"Bob", "Olivier", "Blandine", "Laurent", "Frere"}},
		{"reverse", types.ByPath("age"), true, []string{"Frere", "Laurent", "Blandine", "Olivier", "Bob"}},
		{"ties keep input order", types.ByPath("lastname"), false, []string{"Blandine", "Frere", "Bob", "Laurent", "Olivier"}},
		{"reverse ties keep input order", types.ByPath("lastname"), true, []string{"Laurent", "Olivier", "Bob", "Frere", "Blandine"}},
		{"getter", byLength, false, []string{"Bob", "Frere", "Laurent", "Olivier", "Blandine"}},
		{"no predicate", types.SortPredicate{}, false, []string{"Laurent", "Frere", "Olivier", "Bob", "Blandine"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstnames(OrderBy(people(), tt.pred, tt.reverse)))
		})
	}
}

func TestOrderByDoesNotModifyInput(t *testing.T) {
	rows := people()
	before := append([]*types.Row(nil), rows...)
	sorted := OrderBy(rows, types.ByPath("firstname"), false)
	assert.Equal(t, before, rows)
	assert.NotSame(t, &rows[0], &sorted[0])
}

func TestOrderByMissingValues(t *testing.T) {
	rows := types.NewRows(
		map[string]any{"name": "b", "rank": 2.0},
		map[string]any{"name": "none"},
		map[string]any{"name": "a", "rank": 1.0},
	)
	got := OrderBy(rows, types.ByPath("rank"), false)
	names := []any{got[0].Fields["name"], got[1].Fields["name"], got[2].Fields["name"]}
	assert.Equal(t, []any{"a", "b", "none"}, names, "numbers order before missing values")
}
