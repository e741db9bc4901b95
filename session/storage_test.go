package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	storage, err := NewStorage(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })
	return storage
}

func TestSetGetDelete(t *testing.T) {
	storage := newTestStorage(t)

	got, err := storage.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, storage.Set("s1", []byte("payload"), 0))
	got, err = storage.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	// Set on an existing key overwrites
	require.NoError(t, storage.Set("s1", []byte("updated"), 0))
	got, err = storage.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, []byte("updated"), got)

	require.NoError(t, storage.Delete("s1"))
	got, err = storage.Get("s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExpiredSessionIsInvisible(t *testing.T) {
	storage := newTestStorage(t)

	require.NoError(t, storage.Set("short", []byte("v"), time.Millisecond))
	require.NoError(t, storage.Set("long", []byte("v"), time.Hour))

	// expiry is tracked at second granularity
	assert.Eventually(t, func() bool {
		got, err := storage.Get("short")
		return err == nil && got == nil
	}, 3*time.Second, 50*time.Millisecond)

	got, err := storage.Get("long")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestReset(t *testing.T) {
	storage := newTestStorage(t)

	require.NoError(t, storage.Set("a", []byte("1"), 0))
	require.NoError(t, storage.Set("b", []byte("2"), time.Hour))

	require.NoError(t, storage.Reset())

	for _, key := range []string{"a", "b"} {
		got, err := storage.Get(key)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestPurgeExpired(t *testing.T) {
	storage := newTestStorage(t)

	require.NoError(t, storage.Set("stale", []byte("v"), time.Millisecond))
	require.NoError(t, storage.Set("fresh", []byte("v"), time.Hour))
	require.NoError(t, storage.Set("pinned", []byte("v"), 0))

	require.Eventually(t, func() bool {
		purged, err := storage.PurgeExpired()
		return err == nil && purged == 1
	}, 3*time.Second, 50*time.Millisecond)

	// unexpired and non-expiring rows survive the sweep
	got, err := storage.Get("fresh")
	require.NoError(t, err)
	assert.NotNil(t, got)

	got, err = storage.Get("pinned")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
