package store

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// keyringService is the service name entries are filed under in the OS
// keyring.
const keyringService = "synclink"

// KeyringStore is a SecretStore backed by the operating system keyring.
// Values are base64-encoded because keyrings store strings, not bytes.
type KeyringStore struct {
	service string
}

// NewKeyringStore creates a KeyringStore. An empty service falls back to
// the default service name.
func NewKeyringStore(service string) *KeyringStore {
	if service == "" {
		service = keyringService
	}

	return &KeyringStore{service: service}
}

// Get returns the value stored under key, or ErrNotFound.
func (s *KeyringStore) Get(key string) ([]byte, error) {
	encoded, err := keyring.Get(s.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("reading keyring entry: %w", err)
	}

	value, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding keyring entry: %w", err)
	}

	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *KeyringStore) Set(key string, value []byte) error {
	if err := keyring.Set(s.service, key, base64.StdEncoding.EncodeToString(value)); err != nil {
		return fmt.Errorf("writing keyring entry: %w", err)
	}

	return nil
}

// Remove deletes the value stored under key. Removing an absent key is not
// an error.
func (s *KeyringStore) Remove(key string) error {
	err := keyring.Delete(s.service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("removing keyring entry: %w", err)
	}

	return nil
}
