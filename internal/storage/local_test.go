package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveReturnsUserScopedKey(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	key, size, err := store.Save(42, "holiday.mp4", strings.NewReader("movie bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("movie bytes")), size)
	assert.True(t, strings.HasPrefix(key, "42/"))
	assert.True(t, strings.HasSuffix(key, ".mp4"))
}

func TestSaveIgnoresHostileFilename(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	key, _, err := store.Save(7, "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "7/"))
	assert.NotContains(t, key, "..")
}

func TestOpenRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	key, _, err := store.Save(1, "note.txt", strings.NewReader("hello"))
	require.NoError(t, err)

	f, err := store.Open(key)
	require.NoError(t, err)
	defer f.Close()

	got, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestRemoveIsIdempotent(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	key, _, err := store.Save(1, "a.bin", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(key))
	require.NoError(t, store.Remove(key))

	_, err = store.Open(key)
	assert.Error(t, err)
}

func TestPublicURL(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "https://dash.example/")
	require.NoError(t, err)

	assert.Equal(t, "https://dash.example/api/v1/media/12/stream", store.PublicURL(12))
}
