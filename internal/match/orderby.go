package match

import (
	"slices"

	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// DefaultSortName is the registry name of OrderBy.
const DefaultSortName = "orderBy"

// OrderBy is the default sort function. It returns a new slice ordered by
// the key predicate reads, ascending or, with reverse, descending. Rows with
// equal keys keep their input order in both directions.
func OrderBy(rows []*types.Row, predicate types.SortPredicate, reverse bool) []*types.Row {
	if predicate.IsZero() {
		return rows
	}
	key := KeyOf(predicate)

	type keyed struct {
		row *types.Row
		key any
	}
	decorated := make([]keyed, len(rows))
	for i, r := range rows {
		decorated[i] = keyed{row: r, key: key(r)}
	}

	slices.SortStableFunc(decorated, func(a, b keyed) int {
		c := Compare(a.key, b.key)
		if reverse {
			return -c
		}
		return c
	})

	out := make([]*types.Row, len(decorated))
	for i, d := range decorated {
		out[i] = d.row
	}
	return out
}
