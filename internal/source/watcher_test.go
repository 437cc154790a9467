package source

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/smarttable/internal/engine"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.jsonl")
	require.NoError(t, WriteJSONL(path, people()[:2]))
	file, err := OpenFile(path)
	require.NoError(t, err)

	w, err := NewWatcher(file)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, WriteJSONL(path, people()))

	select {
	case <-w.Changes():
	case err := <-w.Errors():
		t.Fatalf("reload failed: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no change signalled")
	}
	assert.Len(t, file.Rows(), 5)
}

func TestSyncOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.jsonl")
	require.NoError(t, WriteJSONL(path, people()[:2]))
	file, err := OpenFile(path)
	require.NoError(t, err)

	changed := make(chan struct{}, 8)
	table, err := engine.New(types.DefaultConfig(),
		engine.WithSource(file),
		engine.WithObserver(types.ObserverFunc(func(e types.Event) {
			if e.Type == types.EventSourceChanged {
				changed <- struct{}{}
			}
		})),
	)
	require.NoError(t, err)
	table.Search("re", "name")
	require.Len(t, table.View(), 1)

	w, err := NewWatcher(file)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- SyncOnChange(ctx, w, table) }()

	require.NoError(t, WriteJSONL(path, people()))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("table never synced")
	}
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	assert.Len(t, table.View(), 3)
}

func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.jsonl")
	require.NoError(t, WriteJSONL(path, people()))
	file, err := OpenFile(path)
	require.NoError(t, err)
	w, err := NewWatcher(file)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	err = SyncOnChange(context.Background(), w)
	assert.NoError(t, err)
}
