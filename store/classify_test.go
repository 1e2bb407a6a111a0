package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  StatementKind
	}{
		{"create table", "CREATE TABLE users (id INTEGER)", StatementSchema},
		{"alter table", "ALTER TABLE courses ADD COLUMN description TEXT", StatementSchema},
		{"lowercase create", "create table t (id INTEGER)", StatementSchema},
		{"leading whitespace", "\n\t  CREATE TABLE t (id INTEGER)", StatementSchema},
		{"insert", "INSERT INTO settings (key, value) VALUES (?, ?)", StatementInsert},
		{"mixed case insert", "Insert into users (name) values (?)", StatementInsert},
		{"select", "SELECT * FROM courses", StatementOther},
		{"update", "UPDATE users SET name = ? WHERE id = ?", StatementOther},
		{"delete", "DELETE FROM coupons WHERE id = ?", StatementOther},
		{"empty", "", StatementOther},
		{"pragma", "PRAGMA foreign_keys = ON", StatementOther},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.query))
		})
	}
}

func TestStatementKindString(t *testing.T) {
	require.Equal(t, "schema", StatementSchema.String())
	require.Equal(t, "insert", StatementInsert.String())
	require.Equal(t, "other", StatementOther.String())
}
