package schema

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/coursebay/coursebay/models"
	"github.com/coursebay/coursebay/store"
)

// BootstrapSuite exercises schema initialization and seeding against the
// embedded engine.
type BootstrapSuite struct {
	suite.Suite
	st  store.Store
	ctx context.Context
}

func TestBootstrapSuite(t *testing.T) {
	suite.Run(t, new(BootstrapSuite))
}

func (s *BootstrapSuite) SetupTest() {
	st, err := store.OpenSQLite(filepath.Join(s.T().TempDir(), "bootstrap_test.db"))
	require.NoError(s.T(), err)
	s.st = st

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	s.T().Cleanup(cancel)
	s.ctx = ctx
}

func (s *BootstrapSuite) TearDownTest() {
	require.NoError(s.T(), s.st.Close())
}

func (s *BootstrapSuite) countRows(table string) int64 {
	row, err := s.st.FetchOne(s.ctx, "SELECT COUNT(*) AS total FROM "+table)
	s.Require().NoError(err)
	total, ok := store.AsInt64(row["total"])
	s.Require().True(ok)
	return total
}

func (s *BootstrapSuite) TestInitIsIdempotent() {
	s.Require().NoError(Init(s.ctx, s.st))
	s.Require().NoError(Init(s.ctx, s.st))

	// Every declared table must exist and be queryable after the second run.
	for _, table := range Tables() {
		s.Require().Zero(s.countRows(table), "table %s should be empty", table)
	}

	// The post-release columns must be present exactly once.
	rows, err := s.st.FetchAll(s.ctx, `SELECT description, "modulesData" FROM courses`)
	s.Require().NoError(err)
	s.Require().Empty(rows)
}

func (s *BootstrapSuite) TestSeedExactlyOnce() {
	s.Require().NoError(Init(s.ctx, s.st))
	s.Require().NoError(Seed(s.ctx, s.st))
	s.Require().NoError(Seed(s.ctx, s.st))

	rows, err := s.st.FetchAll(s.ctx,
		"SELECT id FROM settings WHERE key = ?", MembershipPriceKey)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)

	rows, err = s.st.FetchAll(s.ctx,
		"SELECT id FROM settings WHERE key = ?", MembershipOfferKey)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)

	rows, err = s.st.FetchAll(s.ctx,
		"SELECT id FROM users WHERE email = ?", AdminEmail)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)

	s.Require().Equal(int64(2), s.countRows("courses"))
}

func (s *BootstrapSuite) TestMembershipPriceScenario() {
	s.Require().NoError(Init(s.ctx, s.st))
	s.Require().NoError(Seed(s.ctx, s.st))

	row, err := s.st.FetchOne(s.ctx,
		"SELECT value FROM settings WHERE key = 'membership_price'")
	s.Require().NoError(err)
	s.Require().NotNil(row)
	s.Require().Equal("999", row["value"])

	// Repeating the full initialization must not change the answer.
	s.Require().NoError(Init(s.ctx, s.st))
	s.Require().NoError(Seed(s.ctx, s.st))

	rows, err := s.st.FetchAll(s.ctx,
		"SELECT value FROM settings WHERE key = 'membership_price'")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Require().Equal("999", rows[0]["value"])
}

func (s *BootstrapSuite) TestSeededCatalogHasNestedContent() {
	s.Require().NoError(Init(s.ctx, s.st))
	s.Require().NoError(Seed(s.ctx, s.st))

	rows, err := s.st.FetchAll(s.ctx,
		`SELECT title, "modulesData" FROM courses ORDER BY id`)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	data, ok := rows[0]["modulesData"].(string)
	s.Require().True(ok)
	modules, err := models.DecodeModules(data)
	s.Require().NoError(err)
	s.Require().NotEmpty(modules)
	s.Require().NotEmpty(modules[0].Lessons)
}

func (s *BootstrapSuite) TestAdminPasswordStoredVerbatim() {
	s.Require().NoError(Init(s.ctx, s.st))
	s.Require().NoError(Seed(s.ctx, s.st))

	row, err := s.st.FetchOne(s.ctx,
		"SELECT password, role FROM users WHERE email = ?", AdminEmail)
	s.Require().NoError(err)
	s.Require().NotNil(row)
	// Clear-text storage is the documented compatibility behavior.
	s.Require().Equal("admin123", row["password"])
	s.Require().Equal("admin", row["role"])
}

func TestTables(t *testing.T) {
	require.Equal(t, []string{
		"users", "courses", "orders", "coupons",
		"resources", "settings", "enrollments",
	}, Tables())
}

func TestReferenceMentionsEveryTable(t *testing.T) {
	ref := Reference()
	for _, table := range Tables() {
		require.Contains(t, ref, "## "+table)
	}
	require.Contains(t, ref, "modulesData")
}
