package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiltersRegister(t *testing.T) {
	f := NewFilters()
	cmp := func(actual, expected any) bool { return true }

	entry := f.Register("select", WithComparator(cmp), WithEmptyValue(nil))
	assert.Equal(t, "select", entry.Name)
	assert.NotNil(t, entry.Comparator)
	assert.Nil(t, entry.EmptyValue)
	assert.False(t, entry.Active())

	again := f.Register("select", WithEmptyValue("other"))
	assert.Same(t, entry, again)
	assert.Nil(t, again.EmptyValue, "options apply only on creation")

	search := f.Register(SearchFilterName)
	assert.Equal(t, "", search.EmptyValue)
	assert.Equal(t, []string{"select", SearchFilterName}, f.Names())
	assert.Equal(t, 2, f.Len())
}

func TestFiltersZeroValue(t *testing.T) {
	var f Filters
	entry := f.Register("late")
	got, ok := f.Lookup("late")
	require.True(t, ok)
	assert.Same(t, entry, got)
}

func TestFiltersAllOrder(t *testing.T) {
	f := NewFilters()
	for _, name := range []string{"c", "a", "b"} {
		f.Register(name)
	}
	var names []string
	for name := range f.All() {
		names = append(names, name)
		if name == "a" {
			break
		}
	}
	assert.Equal(t, []string{"c", "a"}, names)
}

func TestFilterEntryActive(t *testing.T) {
	var nilEntry *FilterEntry
	assert.False(t, nilEntry.Active())

	entry := NewFilters().Register("search")
	entry.PredicateObject["lastname"] = "re"
	assert.True(t, entry.Active())
}

func TestTableStateJSON(t *testing.T) {
	state := NewTableState()
	search := state.Filters.Register(SearchFilterName)
	search.PredicateObject["lastname"] = "re"
	state.Filters.Register("by")
	state.Sort = SortSpec{Predicate: ByPath("age"), Reverse: true}
	state.Pagination = PaginationSpec{Start: 10, Number: 5, NumberOfPages: 3}

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded struct {
		Sort struct {
			Predicate string `json:"predicate"`
			Reverse   bool   `json:"reverse"`
		} `json:"sort"`
		Filters    json.RawMessage `json:"filters"`
		Pagination PaginationSpec  `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "age", decoded.Sort.Predicate)
	assert.True(t, decoded.Sort.Reverse)
	assert.Equal(t, state.Pagination, decoded.Pagination)
	assert.Regexp(t, `^\{"search":.*,"by":`, string(decoded.Filters))
}
