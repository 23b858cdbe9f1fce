// Package fs provides file-based storage for rendered books.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/bookpdf"
)

// Ensure FileStore implements bookpdf.Store at compile time.
var _ bookpdf.Store = (*FileStore)(nil)

// FileStore writes documents into a base directory with atomic semantics.
// Data is written to name.tmp and renamed to name once fully on disk, so a
// failed or interrupted save never leaves a partial document behind.
type FileStore struct {
	baseDir string
}

// NewFileStore creates a FileStore rooted at baseDir.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// Path returns the final path of the named document.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.baseDir, name)
}

// Save writes data to the named file atomically.
func (s *FileStore) Save(ctx context.Context, name string, data []byte) (err error) {
	if name == "" || name != filepath.Base(name) {
		return bookpdf.Errorf(bookpdf.EINVALID, "invalid output name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	finalPath := s.Path(name)
	tmp, err := os.CreateTemp(s.baseDir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// Abort: remove the temp file on any failure.
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", name, err)
	}

	// Commit.
	if err = os.Rename(tmpPath, finalPath); err != nil {
		return fmt.Errorf("moving %s into place: %w", name, err)
	}

	return nil
}
