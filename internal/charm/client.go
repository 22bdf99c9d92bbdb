// ABOUTME: Charm KV DocumentStore for syncing the ledger across devices.
// ABOUTME: Thread-safe initialization, read-only detection, auto cloud sync.
package charm

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"

	"github.com/mtendies/ledger/internal/storage"
)

const (
	dbName    = "ledger"
	charmHost = "charm.2389.dev"
)

var (
	globalStore *Store
	storeOnce   sync.Once
	storeErr    error
)

// Store is a charm KV backed DocumentStore. The whole activity collection
// lives under one key and syncs to Charm Cloud after each write.
type Store struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

// Compile-time check that Store implements DocumentStore.
var _ storage.DocumentStore = (*Store)(nil)

// InitStore initializes the global Charm store.
// Thread-safe; can be called multiple times.
func InitStore() (*Store, error) {
	storeOnce.Do(func() {
		// Set server before opening KV
		if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
			storeErr = err
			return
		}

		db, err := kv.OpenWithDefaultsFallback(dbName)
		if err != nil {
			storeErr = err
			return
		}

		globalStore = &Store{
			kv:       db,
			autoSync: true,
		}

		// Pull remote data on startup (skip in read-only mode)
		if !db.IsReadOnly() {
			_ = db.Sync()
		}
	})

	return globalStore, storeErr
}

// Load reads the stored activity document. A missing key yields (nil, nil).
func (s *Store) Load() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys, err := s.kv.Keys()
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		if string(key) == storage.DocumentName {
			return s.kv.Get(key)
		}
	}
	return nil, nil
}

// Save replaces the stored activity document and syncs to the cloud.
func (s *Store) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	if err := s.kv.Set([]byte(storage.DocumentName), data); err != nil {
		return err
	}
	s.syncIfEnabled()
	return nil
}

// Close closes the KV database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}

// IsReadOnly returns true if the database is open in read-only mode.
// This happens when another process (like an MCP server) holds the lock.
func (s *Store) IsReadOnly() bool {
	return s.kv.IsReadOnly()
}

// Sync synchronizes local state with Charm Cloud.
func (s *Store) Sync() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.kv.IsReadOnly() {
		return nil
	}
	return s.kv.Sync()
}

// syncIfEnabled calls Sync if autoSync is enabled.
func (s *Store) syncIfEnabled() {
	if s.autoSync && !s.kv.IsReadOnly() {
		_ = s.kv.Sync()
	}
}

// SetAutoSync enables or disables automatic sync after writes.
func (s *Store) SetAutoSync(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoSync = enabled
}

// ID returns the Charm user ID for the current account.
func (s *Store) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Reset()
}
