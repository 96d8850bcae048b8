package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibaljacob/prodigi/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Open(t *testing.T) {
	baseDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(baseDir, "products"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "products", "go-in-practice.pdf"), []byte("pdf bytes"), 0o644))

	store := NewLocalStore(baseDir)

	t.Run("Existing file", func(t *testing.T) {
		rc, size, err := store.Open(context.Background(), "products/go-in-practice.pdf")
		require.NoError(t, err)
		defer rc.Close()

		assert.Equal(t, int64(9), size)
		data, err := io.ReadAll(rc)
		assert.NoError(t, err)
		assert.Equal(t, "pdf bytes", string(data))
	})

	t.Run("Missing file", func(t *testing.T) {
		_, _, err := store.Open(context.Background(), "products/missing.pdf")
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("Traversal outside base dir", func(t *testing.T) {
		outside := filepath.Join(filepath.Dir(baseDir), "secret.txt")
		require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))
		defer os.Remove(outside)

		_, _, err := store.Open(context.Background(), "../secret.txt")
		assert.ErrorIs(t, err, ErrFileNotFound)
	})
}

func TestNew(t *testing.T) {
	t.Run("Local backend", func(t *testing.T) {
		store, err := New(&config.Config{StorageBackend: "local", FilesDir: t.TempDir()})
		assert.NoError(t, err)
		assert.IsType(t, &LocalStore{}, store)
	})

	t.Run("Unknown backend", func(t *testing.T) {
		store, err := New(&config.Config{StorageBackend: "gcs"})
		assert.Error(t, err)
		assert.Nil(t, store)
	})
}
