package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// File formats understood by ReadRows.
const (
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// File is a source backed by a JSON array or JSONL file. Safe for
// concurrent use.
type File struct {
	path string

	mu   sync.RWMutex
	rows []*types.Row
}

// OpenFile reads path and returns a source holding its rows.
func OpenFile(path string) (*File, error) {
	f := &File{path: path}
	if err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Rows returns the rows read last.
func (f *File) Rows() []*types.Row {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.rows
}

// Reload re-reads the file and replaces the rows. On error the previous
// rows are kept.
func (f *File) Reload() error {
	rows, err := ReadRows(f.path)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.rows = rows
	f.mu.Unlock()
	return nil
}

// DetectFormat picks the format of path: ".jsonl" and ".ndjson" files are
// JSONL, anything else is sniffed from its first non-blank byte.
func DetectFormat(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return FormatJSONL
	}
	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '[' {
		return FormatJSON
	}
	return FormatJSONL
}

// ReadRows reads a JSON array of objects or a JSONL file of objects.
// Malformed JSONL lines are skipped; a malformed JSON array is an error.
func ReadRows(path string) ([]*types.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if DetectFormat(path, data) == FormatJSON {
		var rows []*types.Row
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return compact(rows), nil
	}
	return readJSONL(path, data)
}

// readJSONL decodes each non-empty, parseable object line into a row.
func readJSONL(path string, data []byte) ([]*types.Row, error) {
	rows := make([]*types.Row, 0)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		row := &types.Row{}
		if err := json.Unmarshal(line, row); err != nil {
			// Skip malformed lines.
			continue
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return rows, nil
}

// compact drops null array entries.
func compact(rows []*types.Row) []*types.Row {
	out := make([]*types.Row, 0, len(rows))
	for _, r := range rows {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// WriteJSONL atomically writes rows to path, one object per line, using
// the temp-file, fsync, rename pattern.
func WriteJSONL(path string, rows []*types.Row) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	fail := func(format string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf(format, err)
	}

	w := bufio.NewWriter(tmp)
	enc := json.NewEncoder(w)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fail("writing record: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
