package iocache

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthcast/synthcast/schema"
)

// TestMigrateRunsSQLite tests up and down migrations against a temp database.
func TestMigrateRunsSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	// Up to latest
	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, -1))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var name string
	row := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='synthcast_runs'`)
	require.NoError(t, row.Scan(&name))
	assert.Equal(t, "synthcast_runs", name)

	// Re-running is a no-op, not an error
	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, -1))

	// All the way back down
	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, 0))
	row = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='synthcast_runs'`)
	assert.Error(t, row.Scan(&name))
}

// TestMigrateRunsToVersion tests migrating to a pinned version.
func TestMigrateRunsToVersion(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, 1))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	// Version 1 creates the table but not the timestamp index
	var name string
	row := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='synthcast_runs'`)
	require.NoError(t, row.Scan(&name))

	row = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_synthcast_runs_timestamp'`)
	assert.Error(t, row.Scan(&name))
}

// TestMigrateRunsNoneBackend tests that disabled storage rejects migrations.
func TestMigrateRunsNoneBackend(t *testing.T) {
	err := MigrateRuns(schema.NoneBackend, "", -1)
	assert.Error(t, err)
}
