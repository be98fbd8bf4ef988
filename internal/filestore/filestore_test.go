package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAndDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Store("finance-evidence", "receipt.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "finance-evidence/"))
	assert.True(t, strings.HasSuffix(path, "receipt.pdf"))

	content, err := os.ReadFile(store.Resolve(path))
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(content))

	require.NoError(t, store.Delete(path))
	_, err = os.Stat(store.Resolve(path))
	assert.True(t, os.IsNotExist(err))
}

func TestStoreStripsDirectoryComponents(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Store("letters", "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, path, "..")
	assert.Equal(t, "letters", filepath.Dir(path))
}

func TestStoreGeneratesUniqueNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Store("letters", "scan.png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Store("letters", "scan.png", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDeleteMissingFileIsNoOp(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, store.Delete("letters/does-not-exist.png"))
}
