package match

import "github.com/mesh-intelligence/smarttable/pkg/types"

func people() []*types.Row {
	return types.NewRows(
		map[string]any{"lastname": "Renard", "firstname": "Laurent", "age": 66.0},
		map[string]any{"lastname": "Francoise", "firstname": "Frere", "age": 99.0},
		map[string]any{"lastname": "Renard", "firstname": "Olivier", "age": 33.0},
		map[string]any{"lastname": "Leponge", "firstname": "Bob", "age": 22.0},
		map[string]any{"lastname": "Faivre", "firstname": "Blandine", "age": 44.0},
	)
}

func firstnames(rows []*types.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i], _ = r.Fields["firstname"].(string)
	}
	return out
}
