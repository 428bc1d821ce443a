package database

import (
	"io/fs"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/configs"
)

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN(&configs.AppConfig{
		DBUser: "app", DBPassword: "p@ss", DBHost: "db", DBPort: "5432", DBName: "school",
		DBSSLMode: "disable", DBStatementTimeout: 5 * time.Second,
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db:5432", u.Host)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss", pw)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
	assert.Equal(t, "-c statement_timeout=5000", u.Query().Get("options"))
}

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrationFS, "migrations/*.sql")
	require.NoError(t, err)
	assert.Contains(t, files, "migrations/000001_create_schedule_tables.up.sql")
	assert.Contains(t, files, "migrations/000001_create_schedule_tables.down.sql")
}
