package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activitytracker/core/internal/infrastructure/config"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(config.StorageConfig{
		Path:        filepath.Join(t.TempDir(), "tracker.db"),
		BusyTimeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestMigrateUpCreatesKVTable(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.MigrateUp())

	// The kv table accepts upserts after migration
	ctx := context.Background()
	_, err := db.DB.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES (?, ?)`, "k", "v1")
	require.NoError(t, err)
	_, err = db.DB.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, "k", "v2")
	require.NoError(t, err)

	var value string
	require.NoError(t, db.DB.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, "k"))
	assert.Equal(t, "v2", value)

	// Running migrations again is a no-op
	require.NoError(t, db.MigrateUp())
}

func TestMigrationVersion(t *testing.T) {
	db := newTestDB(t)

	version, dirty, err := db.MigrationVersion()
	require.NoError(t, err)
	assert.Zero(t, version)
	assert.False(t, dirty)

	require.NoError(t, db.MigrateUp())

	version, dirty, err = db.MigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
}

func TestHealthCheck(t *testing.T) {
	db := newTestDB(t)

	assert.NoError(t, db.Ping())
	assert.NoError(t, db.HealthCheck())
}
