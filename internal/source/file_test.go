package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadRows(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    []string
	}{
		{
			name:    "json array",
			file:    "people.json",
			content: `[{"name": "Renard"}, null, {"name": "Faivre"}]`,
			want:    []string{"Renard", "Faivre"},
		},
		{
			name:    "jsonl skips malformed lines",
			file:    "people.jsonl",
			content: "{\"name\": \"Renard\"}\n\nnot json\n{\"name\": \"Faivre\"}\n42\n",
			want:    []string{"Renard", "Faivre"},
		},
		{
			name:    "jsonl sniffed without extension",
			file:    "people.data",
			content: "{\"name\": \"Leponge\"}\n",
			want:    []string{"Leponge"},
		},
		{
			name:    "empty jsonl",
			file:    "empty.jsonl",
			content: "",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ReadRows(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			got := make([]string, len(rows))
			for i, r := range rows {
				got[i], _ = r.Fields["name"].(string)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadRowsErrors(t *testing.T) {
	_, err := ReadRows(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadRows(writeFile(t, "broken.json", `[{"name": `))
	assert.Error(t, err)
}

func TestReadRowsSelectedFlag(t *testing.T) {
	rows, err := ReadRows(writeFile(t, "sel.jsonl", `{"name": "Bob", "isSelected": true}`+"\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Selected)
	assert.NotContains(t, rows[0].Fields, "isSelected")
}

func TestFileReload(t *testing.T) {
	path := writeFile(t, "people.jsonl", "{\"name\": \"Renard\"}\n")
	f, err := OpenFile(path)
	require.NoError(t, err)
	first := f.Rows()
	require.Len(t, first, 1)

	require.NoError(t, WriteJSONL(path, people()))
	require.NoError(t, f.Reload())
	assert.Len(t, f.Rows(), 5)
	assert.Len(t, first, 1, "earlier slices are not modified")

	require.NoError(t, os.Remove(path))
	assert.Error(t, f.Reload())
	assert.Len(t, f.Rows(), 5, "rows survive a failed reload")
}

func TestWriteJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	rows := people()
	rows[3].Selected = true

	require.NoError(t, WriteJSONL(path, rows))

	back, err := ReadRows(path)
	require.NoError(t, err)
	require.Len(t, back, 5)
	assert.Equal(t, "Bob", back[3].Fields["firstname"])
	assert.Equal(t, float64(22), back[3].Fields["age"])
	assert.True(t, back[3].Selected)
	assert.False(t, back[0].Selected)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSONL, DetectFormat("a.jsonl", []byte("[")))
	assert.Equal(t, FormatJSONL, DetectFormat("a.NDJSON", nil))
	assert.Equal(t, FormatJSON, DetectFormat("a.json", []byte("  \n[]")))
	assert.Equal(t, FormatJSONL, DetectFormat("a.json", []byte("{}")))
}
