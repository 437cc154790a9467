package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRow(t *testing.T) {
	row := NewRow(nil)
	require.NotNil(t, row.Fields)

	v, ok := row.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, v)

	var nilRow *Row
	_, ok = nilRow.Get("x")
	assert.False(t, ok)
}

func TestNewRowsKeepsOrder(t *testing.T) {
	rows := NewRows(map[string]any{"n": 1}, map[string]any{"n": 2})
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Fields["n"])
	assert.Equal(t, 2, rows[1].Fields["n"])
}

func TestRowJSON(t *testing.T) {
	row := NewRow(map[string]any{"firstname": "Laurent"})

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstname":"Laurent"}`, string(data))

	row.Selected = true
	data, err = json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstname":"Laurent","isSelected":true}`, string(data))
	assert.NotContains(t, row.Fields, "isSelected")

	var back Row
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Selected)
	assert.Equal(t, map[string]any{"firstname": "Laurent"}, back.Fields)
}
