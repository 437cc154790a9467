package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// SQLite is a source backed by a SQLite query. Each row becomes a field map
// keyed by column name; TEXT and BLOB columns read as strings. Safe for
// concurrent use.
type SQLite struct {
	db    *sql.DB
	owned bool
	query string
	args  []any

	mu   sync.RWMutex
	rows []*types.Row
}

// OpenSQLite opens the database file at path and loads every row of table.
func OpenSQLite(ctx context.Context, path, table string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	s := &SQLite{
		db:    db,
		owned: true,
		query: "SELECT * FROM " + quoteIdent(table),
	}
	if err := s.Reload(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLite loads the rows of query from db. The caller keeps ownership
// of db.
func NewSQLite(ctx context.Context, db *sql.DB, query string, args ...any) (*SQLite, error) {
	s := &SQLite{db: db, query: query, args: args}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Rows returns the rows loaded last.
func (s *SQLite) Rows() []*types.Row {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows
}

// Reload re-runs the query and replaces the rows. On error the previous
// rows are kept.
func (s *SQLite) Reload(ctx context.Context) error {
	result, err := s.db.QueryContext(ctx, s.query, s.args...)
	if err != nil {
		return fmt.Errorf("querying rows: %w", err)
	}
	defer result.Close()

	cols, err := result.Columns()
	if err != nil {
		return fmt.Errorf("reading columns: %w", err)
	}

	rows := make([]*types.Row, 0)
	for result.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := result.Scan(ptrs...); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}
		fields := make(map[string]any, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				fields[col] = string(b)
				continue
			}
			fields[col] = values[i]
		}
		rows = append(rows, types.NewRow(fields))
	}
	if err := result.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	s.mu.Lock()
	s.rows = rows
	s.mu.Unlock()
	return nil
}

// Close closes the database when OpenSQLite opened it.
func (s *SQLite) Close() error {
	if !s.owned {
		return nil
	}
	return s.db.Close()
}

// quoteIdent quotes a SQLite identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
