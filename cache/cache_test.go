package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	key := "/rest/competitioncontroller/competition/id/C1"

	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, key, []byte(`{"state":0}`), time.Minute))

	data, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"state":0}`, string(data))
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "key", []byte("data"), -time.Second))
	// Negative TTL means no expiration at all.
	_, ok, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, c.Set(ctx, "short", []byte("data"), time.Nanosecond))
	time.Sleep(10 * time.Millisecond)
	_, ok, err = c.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "key", []byte("data"), 0))
	require.NoError(t, c.Delete(ctx, "key"))
	require.NoError(t, c.Delete(ctx, "key")) // already gone

	_, ok, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileCacheInvalidEntry(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "key", []byte("data"), time.Minute))

	// Corrupt the entry on disk; the next Get treats it as a miss.
	path := c.path("key")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, ok, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NullCache{}

	require.NoError(t, c.Set(ctx, "key", []byte("data"), time.Minute))
	_, ok, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, c.Delete(ctx, "key"))
}
