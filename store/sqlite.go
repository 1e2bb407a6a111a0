package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/coursebay/coursebay/internal/debug"
)

// DefaultSQLitePath is the embedded database file used when no networked
// connection descriptor is configured.
const DefaultSQLitePath = "coursebay.db"

// SQLite is the embedded-engine implementation of Store, backed by a
// single database file opened in-process. The driver serializes statement
// execution within the process; cross-process access to the same file is
// out of scope.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens the database file at path, creating it if needed, and
// enables foreign key enforcement.
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		path = DefaultSQLitePath
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	debug.Debug("opened embedded engine", "path", path)
	return &SQLite{db: db}, nil
}

// Execute runs a write statement as-is; the embedded engine is the
// canonical dialect, so no translation applies.
func (s *SQLite) Execute(ctx context.Context, query string, args ...any) (MutationSummary, error) {
	kind := Classify(query)
	debug.Debug("executing statement", "engine", "sqlite", "kind", kind.String())

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if kind == StatementSchema && isSQLiteDuplicateObject(err) {
			debug.Debug("schema object already exists", "engine", "sqlite")
			return MutationSummary{}, nil
		}
		return MutationSummary{}, fmt.Errorf("statement failed: %s: %w", query, err)
	}

	id, _ := res.LastInsertId()
	affected, _ := res.RowsAffected()
	return MutationSummary{LastInsertID: id, RowsAffected: affected}, nil
}

// FetchOne returns the first matching row, or nil when nothing matches.
func (s *SQLite) FetchOne(ctx context.Context, query string, args ...any) (Row, error) {
	return queryOne(ctx, s.db, query, args...)
}

// FetchAll returns every matching row.
func (s *SQLite) FetchAll(ctx context.Context, query string, args ...any) ([]Row, error) {
	return queryAll(ctx, s.db, query, args...)
}

// Close closes the database file.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// isSQLiteDuplicateObject reports whether err is SQLite's way of saying a
// table or column already exists. SQLite reports both through the generic
// error code, so the message text is the discriminator: "table X already
// exists" for tables, "duplicate column name: X" for column additions.
func isSQLiteDuplicateObject(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrError {
		return false
	}
	msg := sqliteErr.Error()
	return strings.Contains(msg, "already exists") ||
		strings.Contains(msg, "duplicate column name")
}
