package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/smarttable/pkg/types"
)

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry()

	filter, err := r.Filter(DefaultFilterName)
	require.NoError(t, err)
	assert.Len(t, filter(people(), map[string]any{"lastname": "re"}, nil), 3)

	sort, err := r.Sort(DefaultSortName)
	require.NoError(t, err)
	assert.Equal(t, "Blandine", firstnames(sort(people(), types.ByPath("firstname"), false))[0])
}

func TestRegistryUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Filter("nope")
	assert.ErrorIs(t, err, types.ErrFunctionNotFound)
	assert.Contains(t, err.Error(), `"nope"`)

	_, err = r.Sort("nope")
	assert.ErrorIs(t, err, types.ErrFunctionNotFound)
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	none := func(rows []*types.Row, _ map[string]any, _ types.Comparator) []*types.Row { return nil }
	identity := func(rows []*types.Row, _ types.SortPredicate, _ bool) []*types.Row { return rows }

	require.NoError(t, r.RegisterFilter("none", none))
	require.NoError(t, r.RegisterSort("identity", identity))

	filter, err := r.Filter("none")
	require.NoError(t, err)
	assert.Nil(t, filter(people(), nil, nil))

	sort, err := r.Sort("identity")
	require.NoError(t, err)
	assert.Equal(t, "Laurent", firstnames(sort(people(), types.ByPath("firstname"), false))[0])

	assert.ErrorIs(t, r.RegisterFilter("", none), types.ErrEmptyFunctionName)
	assert.ErrorIs(t, r.RegisterSort("", identity), types.ErrEmptyFunctionName)

	_, err = NewRegistry().Filter("none")
	assert.ErrorIs(t, err, types.ErrFunctionNotFound, "registries are independent")
}
