package cli

import (
	"context"
	"errors"
	"os"

	"github.com/mesh-intelligence/smarttable/internal/engine"
	"github.com/mesh-intelligence/smarttable/internal/logging"
	"github.com/mesh-intelligence/smarttable/internal/observability"
	"github.com/mesh-intelligence/smarttable/internal/source"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// openSource loads path as a JSON/JSONL file, or as a SQLite database when
// table is set. The returned close func releases the source.
func openSource(ctx context.Context, path, table string) (types.Source, func() error, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, userError("no such file: %s", path)
		}
		return nil, nil, sysError("stat %s: %w", path, err)
	}

	if table != "" {
		src, err := source.OpenSQLite(ctx, path, table)
		if err != nil {
			return nil, nil, userError("load %s: %w", path, err)
		}
		return src, src.Close, nil
	}

	src, err := source.OpenFile(path)
	if err != nil {
		return nil, nil, userError("load %s: %w", path, err)
	}
	return src, func() error { return nil }, nil
}

// newTable builds an engine table over src that logs its events.
func newTable(cfg types.Config, src types.Source, opts ...engine.Option) (*engine.Table, error) {
	opts = append([]engine.Option{
		engine.WithLogger(logging.WithPrefix("engine")),
		engine.WithObserver(observability.NewLogObserver(logging.Logger)),
		engine.WithSource(src),
	}, opts...)
	table, err := engine.New(cfg, opts...)
	if err != nil {
		return nil, userError("create table: %w", err)
	}
	return table, nil
}
