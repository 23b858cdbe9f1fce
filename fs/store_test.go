package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/bookpdf"
	"github.com/fwojciec/bookpdf/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic File Storage
// The store writes through a temp file so a run produces one complete
// document or nothing.

func TestFileStore_SaveWritesDocument(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewFileStore(base)

	// When I save a document
	err := store.Save(context.Background(), "book.pdf", []byte("%PDF-1.7"))

	// Then the final file holds the data
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(base, "book.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(data))

	// And no temp files remain
	assertNoTempFiles(t, base)
}

func TestFileStore_SaveCreatesBaseDirectory(t *testing.T) {
	t.Parallel()

	base := filepath.Join(t.TempDir(), "nested", "out")
	store := fs.NewFileStore(base)

	err := store.Save(context.Background(), "book.md", []byte("# Book"))

	require.NoError(t, err)
	assert.FileExists(t, store.Path("book.md"))
}

func TestFileStore_SaveReplacesExistingDocument(t *testing.T) {
	t.Parallel()

	// Given an existing document
	base := t.TempDir()
	store := fs.NewFileStore(base)
	require.NoError(t, store.Save(context.Background(), "book.html", []byte("old")))

	// When I save again
	require.NoError(t, store.Save(context.Background(), "book.html", []byte("new")))

	// Then the new content replaces the old
	data, err := os.ReadFile(store.Path("book.html"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestFileStore_SaveRejectsPathNames(t *testing.T) {
	t.Parallel()

	store := fs.NewFileStore(t.TempDir())

	for _, name := range []string{"", "../book.pdf", "dir/book.pdf"} {
		err := store.Save(context.Background(), name, []byte("x"))
		require.Error(t, err, name)
		assert.Equal(t, bookpdf.EINVALID, bookpdf.ErrorCode(err))
	}
}

func TestFileStore_SaveCanceledWritesNothing(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Save(ctx, "book.pdf", []byte("x"))

	require.Error(t, err)
	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
