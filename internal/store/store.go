// Package store provides the key/secret store the account service persists
// its record in: opaque get/set/remove by key, backed either by the OS
// keyring or by a file database for headless environments.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("secret not found")

// SecretStore is the opaque key/secret store contract.
type SecretStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

const (
	// storeDirPerm is the permission mode for the store directory
	// (~/.synclink/).
	storeDirPerm = fs.FileMode(0o700)

	// storeFilePerm is the permission mode for the store database file.
	storeFilePerm = fs.FileMode(0o600)

	// storeOpenTimeout is the maximum time to wait for the bolt database
	// lock.
	storeOpenTimeout = 5 * time.Second
)

var secretsBucket = []byte("secrets")

// FileStore is a SecretStore backed by a bbolt database. It holds sensitive
// material, so the file and its directory are created user-only.
type FileStore struct {
	db *bolt.DB
}

// Open opens the store database at ~/.synclink/secrets.db, creating it if
// it does not exist.
func Open() (*FileStore, error) {
	return OpenAt(dbPath())
}

// OpenAt opens a store database at the given path, creating it if it does
// not exist. Useful for tests that need an isolated database.
func OpenAt(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), storeDirPerm); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	db, err := bolt.Open(path, storeFilePerm, &bolt.Options{Timeout: storeOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening secret store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(secretsBucket)

		return err
	})
	if err != nil {
		db.Close()

		return nil, fmt.Errorf("initializing secret store: %w", err)
	}

	return &FileStore{db: db}, nil
}

func dbPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return filepath.Join(home, ".synclink", "secrets.db")
}

// Close closes the database.
func (s *FileStore) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key, or ErrNotFound.
func (s *FileStore) Get(key string) ([]byte, error) {
	var value []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(secretsBucket).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}

		value = append([]byte(nil), v...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *FileStore) Set(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(secretsBucket).Put([]byte(key), value)
	})
}

// Remove deletes the value stored under key. Removing an absent key is not
// an error.
func (s *FileStore) Remove(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(secretsBucket).Delete([]byte(key))
	})
}
