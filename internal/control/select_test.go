package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/smarttable/internal/match"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

func TestSearchSelectDerivedChoices(t *testing.T) {
	table, _ := newTable(t, people())
	sel := NewSearchSelect(table, "name")
	defer sel.Close()

	assert.Equal(t, []string{"Faivre", "Francoise", "Leponge", "Renard"}, labels(sel.Choices()))

	sel.Select("Renard")
	assert.Equal(t, []string{"Laurent", "Olivier"}, firstnames(table.View()))
	assert.Equal(t, "Renard", sel.Selected())

	sel.Select("Ren")
	assert.Empty(t, table.View(), "matching is strict")

	sel.Select(nil)
	assert.Len(t, table.View(), 5)
	assert.Nil(t, sel.Selected())
}

func TestSearchSelectLabels(t *testing.T) {
	table, _ := newTable(t, people())
	sel := NewSearchSelect(table, "age",
		WithChoices(Choice{Label: "young", Value: 22}, Choice{Label: "old", Value: 99}),
		WithLabel("[[label]] ([[value]])"),
	)

	assert.Equal(t, []string{"young (22)", "old (99)"}, labels(sel.Choices()))

	sel.Select(99)
	assert.Equal(t, []string{"Frere"}, firstnames(table.View()))
}

func TestSearchSelectFollowsSource(t *testing.T) {
	table, src := newTable(t, people())
	sel := NewSearchSelect(table, "name")

	src.rows = append(src.rows, types.NewRow(map[string]any{"name": "Moreau", "firstname": "Anne"}))
	require.True(t, table.Sync())

	assert.Equal(t, []string{"Faivre", "Francoise", "Leponge", "Moreau", "Renard"}, labels(sel.Choices()))
}

func TestNewSelectFilterErrors(t *testing.T) {
	tests := []struct {
		name      string
		predicate string
		opts      []ChoiceOption
		wantErr   error
	}{
		{name: "empty predicate", predicate: "", wantErr: ErrEmptyPredicate},
		{name: "global without choices", predicate: types.GlobalKey, wantErr: ErrGlobalPredicate},
		{name: "unnamed comparator", predicate: "age", opts: []ChoiceOption{WithComparator("", match.Strict)}, wantErr: ErrUnnamedComparator},
		{name: "global with choices", predicate: types.GlobalKey, opts: []ChoiceOption{WithValues("Bob", "Frere")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, _ := newTable(t, people())
			f, err := NewSelectFilter(table, tt.predicate, tt.opts...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, SelectFilterName, f.FilterName())
		})
	}
}

func TestSelectFilterSelect(t *testing.T) {
	table, _ := newTable(t, people())
	f, err := NewSelectFilter(table, "name")
	require.NoError(t, err)

	f.Select("Renard")
	assert.Equal(t, []string{"Laurent", "Olivier"}, firstnames(table.View()))

	f.Select("Nobody")
	assert.Nil(t, f.Selected(), "unknown values select nothing")
	assert.Len(t, table.View(), 5)
}

func TestSelectFilterComparator(t *testing.T) {
	table, _ := newTable(t, people())
	olderThan := func(actual, expected any) bool {
		a, ok := match.Number(actual)
		e, _ := match.Number(expected)
		return ok && a > e
	}
	f, err := NewSelectFilter(table, "age",
		WithComparator("olderThan", olderThan),
		WithValues(30, 60),
	)
	require.NoError(t, err)
	assert.Equal(t, "selectFilter_olderThan", f.FilterName())

	f.Select(60)
	assert.Equal(t, []string{"Laurent", "Frere"}, firstnames(table.View()))
}

func TestSelectFilterPreselected(t *testing.T) {
	table, _ := newTable(t, people())
	f, err := NewSelectFilter(table, "name", WithPreselected("Renard"))
	require.NoError(t, err)

	assert.Equal(t, "Renard", f.Selected())
	assert.Len(t, table.View(), 5, "preselection does not pipe")

	table.Pipe()
	assert.Equal(t, []string{"Laurent", "Olivier"}, firstnames(table.View()))
}

func TestSelectFilterResetsVanishedSelection(t *testing.T) {
	table, src := newTable(t, people())
	f, err := NewSelectFilter(table, "name")
	require.NoError(t, err)
	f.Select("Leponge")
	require.Equal(t, []string{"Bob"}, firstnames(table.View()))

	src.rows = people()[:3]
	require.True(t, table.Sync())

	assert.Nil(t, f.Selected())
	assert.Equal(t, []string{"Francoise", "Renard"}, labels(f.Choices()))
	assert.Equal(t, []string{"Laurent", "Frere", "Olivier"}, firstnames(table.View()))
}

func TestSelectFilterKeepsPresentSelection(t *testing.T) {
	table, src := newTable(t, people())
	f, err := NewSelectFilter(table, "name")
	require.NoError(t, err)
	f.Select("Renard")

	src.rows = people()[:3]
	require.True(t, table.Sync())

	assert.Equal(t, "Renard", f.Selected())
	assert.Equal(t, []string{"Laurent", "Olivier"}, firstnames(table.View()))
}

func TestSelectFilterClose(t *testing.T) {
	table, src := newTable(t, people())
	f, err := NewSelectFilter(table, "name")
	require.NoError(t, err)
	f.Close()

	src.rows = people()[:1]
	require.True(t, table.Sync())

	assert.Len(t, f.Choices(), 4)
}

func TestSelectFilterSetChoices(t *testing.T) {
	table, _ := newTable(t, people())
	f, err := NewSelectFilter(table, "firstname")
	require.NoError(t, err)

	f.SetChoices("Bob")
	assert.Equal(t, []string{"Bob"}, labels(f.Choices()))

	f.Select("Laurent")
	assert.Nil(t, f.Selected())
	f.Select("Bob")
	assert.Equal(t, []string{"Bob"}, firstnames(table.View()))
}
