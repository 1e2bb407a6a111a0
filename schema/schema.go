// Package schema declares the coursebay table set and seeds baseline
// data. Every statement is issued through the store adapter and written
// once in the embedded engine's dialect; the networked adapter rewrites
// the auto-increment and timestamp tokens on its side.
//
// Init and Seed are safe to re-run on every process start: duplicate
// schema objects are absorbed by the adapter and every seed action is
// guarded by an existence check.
package schema

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursebay/coursebay/store"
)

// createStatements lists every table in dependency order: enrollments
// reference users and courses, resources reference courses. Identity
// columns are always named id.
var createStatements = []string{
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'student',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE courses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		price REAL NOT NULL DEFAULT 0,
		category TEXT,
		thumbnail TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		total REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE coupons (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		code TEXT NOT NULL UNIQUE,
		discount REAL NOT NULL DEFAULT 0,
		expires_at DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE resources (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		course_id INTEGER NOT NULL REFERENCES courses(id),
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE settings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		key TEXT NOT NULL UNIQUE,
		value TEXT
	)`,
	`CREATE TABLE enrollments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		course_id INTEGER NOT NULL REFERENCES courses(id),
		progress INTEGER NOT NULL DEFAULT 0,
		enrolled_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

// alterStatements holds column additions made after the initial release.
// The quoted camel-case names predate the snake_case convention and are
// kept for compatibility with existing databases.
var alterStatements = []string{
	`ALTER TABLE courses ADD COLUMN description TEXT`,
	`ALTER TABLE courses ADD COLUMN "modulesData" TEXT`,
	`ALTER TABLE orders ADD COLUMN items TEXT`,
}

// Init creates every table and post-release column addition. Re-running
// against an existing database is a no-op: the adapter reports duplicate
// schema objects as successful zero-row mutations.
func Init(ctx context.Context, st store.Store) error {
	for _, stmt := range createStatements {
		if _, err := st.Execute(ctx, stmt); err != nil {
			return fmt.Errorf("schema initialization failed: %w", err)
		}
	}
	for _, stmt := range alterStatements {
		if _, err := st.Execute(ctx, stmt); err != nil {
			return fmt.Errorf("schema initialization failed: %w", err)
		}
	}
	return nil
}

// Tables returns every declared table name in creation order.
func Tables() []string {
	names := make([]string, 0, len(createStatements))
	for _, stmt := range createStatements {
		names = append(names, tableName(stmt))
	}
	return names
}

// Reference renders the declared schema as a markdown document for the
// CLI's schema command.
func Reference() string {
	var b strings.Builder
	b.WriteString("# Coursebay schema\n\n")
	b.WriteString("Statements are written in the embedded engine's dialect; the\n")
	b.WriteString("networked adapter rewrites auto-increment and timestamp tokens.\n")
	for _, stmt := range createStatements {
		fmt.Fprintf(&b, "\n## %s\n\n```sql\n%s\n```\n", tableName(stmt), stmt)
	}
	b.WriteString("\n## Column additions\n\n```sql\n")
	b.WriteString(strings.Join(alterStatements, ";\n"))
	b.WriteString(";\n```\n")
	return b.String()
}

// tableName extracts the table name from a CREATE TABLE statement.
func tableName(stmt string) string {
	fields := strings.Fields(stmt)
	if len(fields) < 3 {
		return ""
	}
	return strings.TrimSuffix(fields[2], "(")
}
