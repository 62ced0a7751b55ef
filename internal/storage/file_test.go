package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	store, err := NewFile(t.TempDir())
	require.NoError(t, err)

	t.Run("absent key yields nil without error", func(t *testing.T) {
		data, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "titanhire-jobs", []byte(`[{"id":"a"}]`)))
		data, err := store.Get(ctx, "titanhire-jobs")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"a"}]`, string(data))
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "key", []byte("one")))
		require.NoError(t, store.Set(ctx, "key", []byte("two")))
		data, err := store.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, "two", string(data))
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "gone", []byte("x")))
		require.NoError(t, store.Remove(ctx, "gone"))
		data, err := store.Get(ctx, "gone")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("remove absent key is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Remove(ctx, "never-existed"))
	})
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	original := []byte("original")
	require.NoError(t, store.Set(ctx, "key", original))

	// Mutating the caller's slice must not affect the stored copy.
	original[0] = 'X'

	data, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}
