package store

import (
	"context"

	"github.com/viant/policyadmin/internal/collection"
)

// Key identifies a session value
type Key string

const (
	KeyToken    Key = "auth_token"
	KeyRawToken Key = "raw_auth_token"
	KeyFormat   Key = "auth_format"
)

// Keys lists every key a session writes.
var Keys = []Key{KeyToken, KeyRawToken, KeyFormat}

// Store is a pluggable persistence layer for the session credential.
// The in‑memory default is fine for CLI tools; swap with a file, bolt or redis store
// to keep the session across runs. Lookup reports false for an absent key.
type Store interface {
	Lookup(ctx context.Context, key Key) (string, bool, error)
	Put(ctx context.Context, key Key, value string) error
	Remove(ctx context.Context, key Key) error
}

type memoryStore struct {
	values *collection.SyncMap[Key, string]
}

func (m *memoryStore) Lookup(_ context.Context, key Key) (string, bool, error) {
	value, ok := m.values.Get(key)
	return value, ok, nil
}

func (m *memoryStore) Put(_ context.Context, key Key, value string) error {
	m.values.Put(key, value)
	return nil
}

func (m *memoryStore) Remove(_ context.Context, key Key) error {
	m.values.Delete(key)
	return nil
}

// NewMemoryStore creates a process local store
func NewMemoryStore() Store {
	return &memoryStore{values: collection.NewSyncMap[Key, string]()}
}
