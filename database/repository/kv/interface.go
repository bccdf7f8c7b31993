package kv

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when a key has no value in the store.
var ErrNotFound = errors.New("kv: key not found")

// Store is the ambient key-value document store the backend persists into.
// It deliberately offers only get/set/delete by key: no queries, no indexes,
// no transactions. Values are JSON documents.
type Store interface {
	// Get unmarshals the value at key into out. Returns ErrNotFound when absent.
	Get(ctx context.Context, key string, out interface{}) error
	// Set replaces the whole value at key.
	Set(ctx context.Context, key string, value interface{}) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// GetMulti returns the raw values for the given keys, skipping absent ones.
	GetMulti(ctx context.Context, keys []string) ([]json.RawMessage, error)
	// DeleteMulti removes all given keys.
	DeleteMulti(ctx context.Context, keys []string) error
}
