// Package kvtest provides an in-memory Store for tests.
package kvtest

import (
	"context"
	"encoding/json"
	"sync"

	"groomer/database/repository/kv"
)

// MemStore is a map-backed kv.Store. Safe for concurrent use.
type MemStore struct {
	mu   sync.Mutex
	data map[string]json.RawMessage
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]json.RawMessage)}
}

func (m *MemStore) Get(ctx context.Context, key string, out interface{}) error {
	m.mu.Lock()
	raw, ok := m.data[key]
	m.mu.Unlock()
	if !ok {
		return kv.ErrNotFound
	}
	return json.Unmarshal(raw, out)
}

func (m *MemStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

func (m *MemStore) GetMulti(ctx context.Context, keys []string) ([]json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]json.RawMessage, 0, len(keys))
	for _, k := range keys {
		if raw, ok := m.data[k]; ok {
			out = append(out, raw)
		}
	}
	return out, nil
}

func (m *MemStore) DeleteMulti(ctx context.Context, keys []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// Has reports whether a key currently holds a value.
func (m *MemStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

// Len returns the number of stored keys.
func (m *MemStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
