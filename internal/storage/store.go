// ABOUTME: DocumentStore port for whole-document ledger persistence.
// ABOUTME: The activity collection is one JSON document replaced wholesale.
package storage

import (
	"os"
	"path/filepath"
)

// DocumentName is the fixed key the activity collection is stored under.
const DocumentName = "activities"

// DocumentStore persists the ledger as a single opaque document. Every
// mutation replaces the whole document; the last writer wins. A missing
// document is reported as (nil, nil), never as an error.
type DocumentStore interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Close() error
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "ledger")
}
