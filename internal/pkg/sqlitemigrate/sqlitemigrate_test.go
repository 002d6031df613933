package sqlitemigrate_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-saga/internal/pkg/sqlitemigrate"
)

type MigrateTestSuite struct {
	suite.Suite
	db  *sql.DB
	ctx context.Context
}

func (s *MigrateTestSuite) SetupTest() {
	db, err := sql.Open("sqlite", filepath.Join(s.T().TempDir(), "migrate.db"))
	s.Require().NoError(err)
	s.db = db
	s.ctx = context.Background()
}

func (s *MigrateTestSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *MigrateTestSuite) TestAppliesOnce() {
	migrations := fstest.MapFS{
		"0001_init.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE widgets (id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE widgets;\n")},
		"0002_seed.sql": {Data: []byte("INSERT INTO widgets (id) VALUES ('w1');")},
		"README.md":     {Data: []byte("not a migration")},
	}

	s.Require().NoError(sqlitemigrate.Apply(s.ctx, s.db, migrations, ""))
	s.Require().NoError(sqlitemigrate.Apply(s.ctx, s.db, migrations, ""))

	var count int
	s.Require().NoError(s.db.QueryRow("SELECT COUNT(*) FROM widgets").Scan(&count))
	s.Equal(1, count)

	s.Require().NoError(s.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	s.Equal(2, count)
}

func (s *MigrateTestSuite) TestFailedMigrationRollsBack() {
	migrations := fstest.MapFS{
		"0001_bad.sql": {Data: []byte("CREATE TABLE ok (id TEXT); THIS IS NOT SQL;")},
	}

	err := sqlitemigrate.Apply(s.ctx, s.db, migrations, "")
	s.Require().Error(err)
	s.Contains(err.Error(), "0001_bad.sql")

	var count int
	s.Require().NoError(s.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	s.Equal(0, count)
}

func (s *MigrateTestSuite) TestNilDB() {
	s.Error(sqlitemigrate.Apply(s.ctx, nil, fstest.MapFS{}, ""))
}

func (s *MigrateTestSuite) TestExtractUp() {
	s.Equal("\nA\n", sqlitemigrate.ExtractUp("-- +migrate Up\nA\n-- +migrate Down\nB"))
	s.Equal("plain", sqlitemigrate.ExtractUp("plain"))
}

func TestMigrateTestSuite(t *testing.T) {
	suite.Run(t, new(MigrateTestSuite))
}
