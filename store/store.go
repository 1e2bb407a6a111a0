// Package store implements the dual-backend database adapter used by the
// coursebay platform. It presents one uniform query surface over either an
// embedded SQLite file or a pooled PostgreSQL connection, normalizing
// placeholder syntax, DDL dialect tokens and generated-ID retrieval so
// that callers never depend on which engine is active.
package store

import (
	"context"
	"strconv"
)

// Row is a single result row keyed by column name.
type Row map[string]any

// MutationSummary is the normalized result of a write: the identity value
// generated for the new row (if any) and the number of rows the statement
// touched.
type MutationSummary struct {
	LastInsertID int64
	RowsAffected int64
}

// Store is the engine-independent query contract consumed by the rest of
// the application. A Store is bound to exactly one native engine for the
// process lifetime.
type Store interface {
	// Execute runs a write statement and returns its mutation summary.
	// Schema statements that fail because the target object already
	// exists succeed with a zero summary.
	Execute(ctx context.Context, query string, args ...any) (MutationSummary, error)

	// FetchOne returns the first matching row, or a nil Row when nothing
	// matches. Absence is a normal outcome, never an error.
	FetchOne(ctx context.Context, query string, args ...any) (Row, error)

	// FetchAll returns every matching row in engine-native order.
	FetchAll(ctx context.Context, query string, args ...any) ([]Row, error)

	// Close releases the engine binding.
	Close() error
}

// Open selects the native engine from configuration: a non-empty
// connection URL selects PostgreSQL, otherwise the embedded SQLite file at
// path is used. The choice is made once at startup and never revisited.
func Open(databaseURL, path string) (Store, error) {
	if databaseURL != "" {
		return OpenPostgres(databaseURL)
	}
	return OpenSQLite(path)
}

// AsInt64 coerces a scanned value to an int64. PostgreSQL may surface
// numeric results as strings or byte slices where SQLite hands back
// integers, so callers comparing counts across engines must coerce rather
// than type-assert.
func AsInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		return int64(n), true
	case []byte:
		parsed, err := strconv.ParseInt(string(n), 10, 64)
		return parsed, err == nil
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}
