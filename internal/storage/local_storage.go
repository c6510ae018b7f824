package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage keeps report bytes in a flat directory under generated names.
// The database record is the only index; the directory itself holds no metadata.
type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{basePath: basePath}
}

// Save writes data under a fresh random name that preserves the original
// extension, and returns the generated name and the on-disk path.
func (s *LocalStorage) Save(originalName string, data []byte) (string, string, error) {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.New().String() + ext
	path := filepath.Join(s.basePath, name)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write file: %w", err)
	}
	return name, path, nil
}

// Open returns the file contents for streaming. The caller can detect a
// missing file with errors.Is(err, fs.ErrNotExist).
func (s *LocalStorage) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Remove deletes the backing file. An already-missing file is not an error:
// delete must stay idempotent so metadata cleanup can proceed.
func (s *LocalStorage) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
