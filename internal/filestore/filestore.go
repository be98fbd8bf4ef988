package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
)

// LocalStore keeps uploaded files on the local filesystem under a base
// directory, one subdirectory per namespace. Stored paths are relative to
// the base directory so the directory can move without rewriting rows.
type LocalStore struct {
	baseDir string
}

// NewLocalStore creates a local file store rooted at baseDir.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", baseDir, err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

var _ portssvc.FileStore = (*LocalStore)(nil)

// Store writes content under the namespace with a random prefix so repeated
// uploads of the same filename never collide.
func (s *LocalStore) Store(namespace, filename string, content io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, namespace)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create namespace directory %s: %w", namespace, err)
	}

	// Only the base name survives; anything path-like in the upload is dropped.
	name := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(filename))
	relPath := filepath.Join(namespace, name)

	f, err := os.Create(filepath.Join(s.baseDir, relPath))
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", relPath, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file %s: %w", relPath, err)
	}
	return relPath, nil
}

// Delete removes a stored file. Deleting a file that is already gone is not
// an error.
func (s *LocalStore) Delete(path string) error {
	if path == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}
	return nil
}

// Resolve returns the absolute filesystem path for a stored file.
func (s *LocalStore) Resolve(path string) string {
	return filepath.Join(s.baseDir, path)
}
