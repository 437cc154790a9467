package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// testEnv is an isolated config directory plus a data directory.
type testEnv struct {
	t         *testing.T
	configDir string
	dataDir   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		t:         t,
		configDir: filepath.Join(dir, "config"),
		dataDir:   filepath.Join(dir, "data"),
	}
	require.NoError(t, os.MkdirAll(env.dataDir, 0o755))
	return env
}

// cmdResult holds the output and exit code of one command run.
type cmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// run executes the CLI in-process against the env's config directory.
func (e *testEnv) run(args ...string) cmdResult {
	e.t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	code := run(root, append([]string{"--config-dir", e.configDir}, args...), &stderr)
	return cmdResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: code}
}

func (e *testEnv) mustRun(args ...string) cmdResult {
	e.t.Helper()
	res := e.run(args...)
	if res.ExitCode != 0 {
		e.t.Fatalf("smarttable %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, res.ExitCode, res.Stdout, res.Stderr)
	}
	return res
}

// writeData writes content to name inside the data directory.
func (e *testEnv) writeData(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.dataDir, name)
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const peopleJSON = `[
  {"lastname": "Renard", "firstname": "Laurent", "age": 66},
  {"lastname": "Francoise", "firstname": "Frere", "age": 99},
  {"lastname": "Renard", "firstname": "Olivier", "age": 33},
  {"lastname": "Leponge", "firstname": "Bob", "age": 22},
  {"lastname": "Faivre", "firstname": "Blandine", "age": 44}
]`

type queryOutput struct {
	Rows       []map[string]any `json:"rows"`
	Pagination pageInfo         `json:"pagination"`
}

func parseJSON[T any](t *testing.T, s string) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal([]byte(s), &out), "output: %s", s)
	return out
}

func firstnames(rows []map[string]any) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i], _ = r["firstname"].(string)
	}
	return out
}

// syncBuffer is a bytes.Buffer safe for one writer and concurrent readers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
