package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/migrate"
)

func TestEmbeddedMigrationsDiscovered(t *testing.T) {
	sorted := Migrations.Sorted()
	require.Len(t, sorted, 3)

	want := []string{"0001_users", "0002_sessions", "0003_web_settings"}
	assert.Equal(t, want, sliceNames(sorted))
	for _, m := range sorted {
		assert.NotNil(t, m.Up, m.Name)
		assert.NotNil(t, m.Down, m.Name)
	}
}

func TestEmbeddedMigrationFiles(t *testing.T) {
	for _, name := range []string{
		"migrations/0001_users.tx.up.sql",
		"migrations/0002_sessions.tx.up.sql",
		"migrations/0003_web_settings.tx.up.sql",
	} {
		body, err := migrationFiles.ReadFile(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, body, name)
	}

	users, err := migrationFiles.ReadFile("migrations/0001_users.tx.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(users), "users_email_key")
	assert.Contains(t, string(users), "users_phone_key")
}

func TestMigrationNames(t *testing.T) {
	assert.Nil(t, migrationNames(nil))
	assert.Nil(t, migrationNames(&migrate.MigrationGroup{}))

	group := &migrate.MigrationGroup{
		ID: 2,
		Migrations: migrate.MigrationSlice{
			{Name: "0002", Comment: "sessions"},
			{Name: "0003", Comment: "web_settings"},
		},
	}
	assert.Equal(t, []string{"0002_sessions", "0003_web_settings"}, migrationNames(group))
}
