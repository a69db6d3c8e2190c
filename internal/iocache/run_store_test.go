package iocache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthcast/synthcast/schema"
)

// newTestStore opens a SQLite run store backed by a temp directory.
func newTestStore(t *testing.T) *RunStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := NewRunStore("test_runs", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*RunStoreImpl)
}

// TestRunStoreSetGet tests the basic round trip and overwrite behavior.
func TestRunStoreSetGet(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().Unix()

	require.NoError(t, store.Set("k1", []byte(`{"a":1}`), 1, now))

	value, version, ts, err := store.Get("k1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), value)
	assert.Equal(t, 1, version)
	assert.Equal(t, now, ts)

	// Same key upserts in place
	require.NoError(t, store.Set("k1", []byte(`{"a":2}`), 2, now+1))
	value, version, ts, err = store.Get("k1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), value)
	assert.Equal(t, 2, version)
	assert.Equal(t, now+1, ts)
}

// TestRunStoreGetMissing tests lookups for absent keys.
func TestRunStoreGetMissing(t *testing.T) {
	store := newTestStore(t)

	_, _, _, err := store.Get("absent")
	assert.Error(t, err)
}

// TestRunStoreGetAll tests bulk retrieval in timestamp order.
func TestRunStoreGetAll(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("newer", []byte("b"), 1, 200))
	require.NoError(t, store.Set("older", []byte("a"), 1, 100))

	entries, err := store.GetAll()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "older", entries[0].Key)
	assert.Equal(t, "newer", entries[1].Key)
	assert.Equal(t, []byte("a"), entries[0].Value)
	assert.Equal(t, int64(200), entries[1].Timestamp)
}

// TestRunStoreGetStatus tests status reporting on a populated store.
func TestRunStoreGetStatus(t *testing.T) {
	store := newTestStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(0), status.TotalEntries)

	require.NoError(t, store.Set("k1", []byte("v"), 1, 100))
	require.NoError(t, store.Set("k2", []byte("v"), 1, 300))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(2), status.TotalEntries)
	assert.Equal(t, time.Unix(100, 0), status.OldestEntryTime)
	assert.Equal(t, time.Unix(300, 0), status.LastEntryTime)
	assert.Positive(t, status.TableSizeBytes)
}

// TestRunStoreNoneBackend tests the disabled store's no-op contract.
func TestRunStoreNoneBackend(t *testing.T) {
	store, err := NewRunStore("test_runs", schema.NoneBackend, "")
	require.NoError(t, err)

	assert.NoError(t, store.Set("k", []byte("v"), 1, 1))

	_, _, _, err = store.Get("k")
	assert.Error(t, err, "disabled store never reports a hit")

	entries, err := store.GetAll()
	require.NoError(t, err)
	assert.Empty(t, entries)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Close())
}

// TestNewRunStoreValidation tests table name and backend validation.
func TestNewRunStoreValidation(t *testing.T) {
	_, err := NewRunStore("bad;name", schema.SQLiteBackend, "")
	assert.Error(t, err)

	_, err = NewRunStore("test_runs", schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}
