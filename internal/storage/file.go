// ABOUTME: File-backed DocumentStore writing one JSON document on disk.
// ABOUTME: Default backend; the document lives at <dataDir>/activities.json.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the ledger document as a single file.
type FileStore struct {
	path string
}

// Compile-time check that FileStore implements DocumentStore.
var _ DocumentStore = (*FileStore)(nil)

// NewFileStore creates a file store rooted at dataDir.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{path: filepath.Join(dataDir, DocumentName+".json")}, nil
}

// Load reads the stored document. A missing file yields (nil, nil).
func (s *FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read document: %w", err)
	}
	return data, nil
}

// Save replaces the stored document. The write goes through a temp file
// and rename so a crash never leaves a half-written document behind.
func (s *FileStore) Save(data []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

// Close releases resources. For FileStore this is a no-op.
func (s *FileStore) Close() error {
	return nil
}
