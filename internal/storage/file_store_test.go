package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreSave(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("stores", "logo-1.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/stores/logo-1.png", path)

	data, err := os.ReadFile(filepath.Join(store.root, "stores", "logo-1.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestFileStoreFlattensTraversal(t *testing.T) {
	root := t.TempDir()
	store, err := NewFileStore(root)
	require.NoError(t, err)

	path, err := store.Save("../outside", "../../escape.txt", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/outside/escape.txt", path)

	_, err = os.Stat(filepath.Join(root, "outside", "escape.txt"))
	assert.NoError(t, err)
}
