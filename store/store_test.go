package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestAsInt64(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int64
		ok   bool
	}{
		{"int64", int64(42), 42, true},
		{"int", 7, 7, true},
		{"int32", int32(9), 9, true},
		{"float64", float64(3), 3, true},
		{"numeric string", "999", 999, true},
		{"numeric bytes", []byte("0"), 0, true},
		{"non-numeric string", "abc", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := AsInt64(tc.in)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

// SQLiteSuite exercises the adapter contract against the embedded engine.
type SQLiteSuite struct {
	suite.Suite
	st *SQLite
}

func TestSQLiteSuite(t *testing.T) {
	suite.Run(t, new(SQLiteSuite))
}

func (s *SQLiteSuite) SetupTest() {
	st, err := OpenSQLite(filepath.Join(s.T().TempDir(), "store_test.db"))
	require.NoError(s.T(), err)
	s.st = st

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = st.Execute(ctx, `CREATE TABLE notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		body TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	require.NoError(s.T(), err)
}

func (s *SQLiteSuite) TearDownTest() {
	require.NoError(s.T(), s.st.Close())
}

func (s *SQLiteSuite) TestInsertIdentityContract() {
	ctx := context.Background()

	summary, err := s.st.Execute(ctx, "INSERT INTO notes (body) VALUES (?)", "first")
	s.Require().NoError(err)
	s.Require().Greater(summary.LastInsertID, int64(0))
	s.Require().Equal(int64(1), summary.RowsAffected)

	second, err := s.st.Execute(ctx, "INSERT INTO notes (body) VALUES (?)", "second")
	s.Require().NoError(err)
	s.Require().Greater(second.LastInsertID, summary.LastInsertID)
}

func (s *SQLiteSuite) TestFetchOneAbsenceIsNotAnError() {
	row, err := s.st.FetchOne(context.Background(),
		"SELECT * FROM notes WHERE body = ?", "missing")
	s.Require().NoError(err)
	s.Require().Nil(row)
}

func (s *SQLiteSuite) TestFetchOneReturnsFirstRow() {
	ctx := context.Background()
	for _, body := range []string{"a", "b", "c"} {
		_, err := s.st.Execute(ctx, "INSERT INTO notes (body) VALUES (?)", body)
		s.Require().NoError(err)
	}

	row, err := s.st.FetchOne(ctx, "SELECT body FROM notes ORDER BY id")
	s.Require().NoError(err)
	s.Require().NotNil(row)
	s.Require().Equal("a", row["body"])
}

func (s *SQLiteSuite) TestFetchAllPreservesStatementOrder() {
	ctx := context.Background()
	for _, body := range []string{"x", "y", "z"} {
		_, err := s.st.Execute(ctx, "INSERT INTO notes (body) VALUES (?)", body)
		s.Require().NoError(err)
	}

	rows, err := s.st.FetchAll(ctx, "SELECT id, body FROM notes ORDER BY id DESC")
	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Require().Equal("z", rows[0]["body"])
	s.Require().Equal("x", rows[2]["body"])
}

func (s *SQLiteSuite) TestDuplicateTableIsAbsorbed() {
	summary, err := s.st.Execute(context.Background(), `CREATE TABLE notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		body TEXT NOT NULL
	)`)
	s.Require().NoError(err)
	s.Require().Equal(MutationSummary{}, summary)
}

func (s *SQLiteSuite) TestDuplicateColumnIsAbsorbed() {
	ctx := context.Background()

	_, err := s.st.Execute(ctx, "ALTER TABLE notes ADD COLUMN tag TEXT")
	s.Require().NoError(err)

	summary, err := s.st.Execute(ctx, "ALTER TABLE notes ADD COLUMN tag TEXT")
	s.Require().NoError(err)
	s.Require().Equal(MutationSummary{}, summary)
}

func (s *SQLiteSuite) TestConstraintViolationPropagates() {
	ctx := context.Background()

	_, err := s.st.Execute(ctx, `CREATE TABLE tags (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		slug TEXT NOT NULL UNIQUE
	)`)
	s.Require().NoError(err)

	_, err = s.st.Execute(ctx, "INSERT INTO tags (slug) VALUES (?)", "dup")
	s.Require().NoError(err)

	_, err = s.st.Execute(ctx, "INSERT INTO tags (slug) VALUES (?)", "dup")
	s.Require().Error(err)
	s.Require().Contains(err.Error(), "INSERT INTO tags")
}

func (s *SQLiteSuite) TestNonSchemaErrorsPropagateWithStatement() {
	_, err := s.st.Execute(context.Background(), "INSERT INTO no_such_table (x) VALUES (?)", 1)
	s.Require().Error(err)
	s.Require().Contains(err.Error(), "no_such_table")
}

func TestOpenSelectsSQLiteWithoutURL(t *testing.T) {
	st, err := Open("", filepath.Join(t.TempDir(), "select.db"))
	require.NoError(t, err)
	defer st.Close()

	_, ok := st.(*SQLite)
	require.True(t, ok)
}
