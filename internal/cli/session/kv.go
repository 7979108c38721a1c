package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/zalando/go-keyring"
)

// Storage keys for the persisted session. The names are the backend's Spanish
// field names; absence of the token entry is the canonical logged-out signal.
const (
	keyToken    = "authToken"
	keyUserID   = "id_usuario"
	keyUserType = "tipo_usuario"
)

// ErrKeyNotFound is returned by KV implementations for absent entries.
var ErrKeyNotFound = errors.New("key not found")

// KV is the durable key-value port behind the session store. Implementations
// must return ErrKeyNotFound from Get for absent keys and treat Delete of an
// absent key as a no-op.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

const keyringService = "papilon-cli"

// KeyringKV persists entries in the OS keychain/credential manager.
type KeyringKV struct {
	service string
}

// NewKeyringKV returns the production KV backed by the OS keyring.
func NewKeyringKV() *KeyringKV {
	return &KeyringKV{service: keyringService}
}

func (k *KeyringKV) Get(key string) (string, error) {
	value, err := keyring.Get(k.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to read %q from keyring: %w", key, err)
	}
	return value, nil
}

func (k *KeyringKV) Set(key, value string) error {
	if err := keyring.Set(k.service, key, value); err != nil {
		return fmt.Errorf("failed to write %q to keyring: %w", key, err)
	}
	return nil
}

func (k *KeyringKV) Delete(key string) error {
	if err := keyring.Delete(k.service, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete %q from keyring: %w", key, err)
	}
	return nil
}

// MemoryKV is a non-durable KV. It backs tests and environments without a
// usable keychain.
type MemoryKV struct {
	mu      sync.Mutex
	entries map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
