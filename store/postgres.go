package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/coursebay/coursebay/internal/debug"
)

// PostgreSQL error codes for duplicate schema objects.
const (
	pgDuplicateTable  = "42P07"
	pgDuplicateColumn = "42701"
)

// Postgres is the networked-engine implementation of Store. Each call
// borrows one pooled connection for the duration of a single statement;
// no caller ever holds a connection across statements, so there is no
// multi-statement transaction scope at this layer.
type Postgres struct {
	db *sql.DB
}

// OpenPostgres connects to the database described by url and verifies the
// connection.
func OpenPostgres(url string) (*Postgres, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	debug.Debug("opened networked engine")
	return &Postgres{db: db}, nil
}

// Execute runs a write statement after translating it for PostgreSQL:
// schema statements get their DDL tokens rewritten, insert statements get
// a RETURNING clause so the generated identity can be read back, and all
// statements get numbered placeholders.
func (p *Postgres) Execute(ctx context.Context, query string, args ...any) (MutationSummary, error) {
	kind := Classify(query)
	debug.Debug("executing statement", "engine", "postgres", "kind", kind.String())

	translated := query
	switch kind {
	case StatementSchema:
		translated = translateSchemaTokens(translated)
	case StatementInsert:
		translated = appendReturning(translated)
	}
	translated = translatePlaceholders(translated)

	if kind == StatementInsert {
		return p.executeInsert(ctx, query, translated, args...)
	}

	res, err := p.db.ExecContext(ctx, translated, args...)
	if err != nil {
		if kind == StatementSchema && isPostgresDuplicateObject(err) {
			debug.Debug("schema object already exists", "engine", "postgres")
			return MutationSummary{}, nil
		}
		return MutationSummary{}, fmt.Errorf("statement failed: %s: %w", query, err)
	}

	affected, _ := res.RowsAffected()
	return MutationSummary{RowsAffected: affected}, nil
}

// executeInsert runs a translated insert as a query so the RETURNING
// clause can be consumed. PostgreSQL has no LastInsertId; the returned
// identity values stand in for it, and the number of returned rows is the
// affected count.
func (p *Postgres) executeInsert(ctx context.Context, original, translated string, args ...any) (MutationSummary, error) {
	rows, err := p.db.QueryContext(ctx, translated, args...)
	if err != nil {
		return MutationSummary{}, fmt.Errorf("statement failed: %s: %w", original, err)
	}
	defer rows.Close()

	var summary MutationSummary
	for rows.Next() {
		if err := rows.Scan(&summary.LastInsertID); err != nil {
			return MutationSummary{}, fmt.Errorf("failed to read generated id: %w", err)
		}
		summary.RowsAffected++
	}
	if err := rows.Err(); err != nil {
		return MutationSummary{}, fmt.Errorf("statement failed: %s: %w", original, err)
	}

	return summary, nil
}

// FetchOne returns the first matching row, or nil when nothing matches.
func (p *Postgres) FetchOne(ctx context.Context, query string, args ...any) (Row, error) {
	return queryOne(ctx, p.db, translatePlaceholders(query), args...)
}

// FetchAll returns every matching row.
func (p *Postgres) FetchAll(ctx context.Context, query string, args ...any) ([]Row, error) {
	return queryAll(ctx, p.db, translatePlaceholders(query), args...)
}

// Close closes the connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}

// isPostgresDuplicateObject reports whether err is the server's
// duplicate_table or duplicate_column condition.
func isPostgresDuplicateObject(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pgDuplicateTable || pqErr.Code == pgDuplicateColumn
}
