// Package typed provides type-safe access to string-valued key-value stores.
//
// A Value[T] binds one key to a Go type and handles the JSON conversion in
// both directions, so callers work with T instead of raw blobs.
package typed

import (
	"context"
	"encoding/json"
	"fmt"
)

// Store is the subset of a key-value store a Value needs.
// core.Storage satisfies it.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Value is a JSON-encoded T stored under a single key.
type Value[T any] struct {
	store Store
	key   string
}

// NewValue binds key in store to type T.
func NewValue[T any](store Store, key string) *Value[T] {
	return &Value[T]{store: store, key: key}
}

// Key returns the storage key.
func (v *Value[T]) Key() string {
	return v.key
}

// Load reads and decodes the value.
// ok is false when the key is absent; err is set when reading or decoding fails.
func (v *Value[T]) Load(ctx context.Context) (data T, ok bool, err error) {
	raw, ok, err := v.store.Get(ctx, v.key)
	if err != nil {
		return data, false, fmt.Errorf("failed to read %s: %w", v.key, err)
	}
	if !ok {
		return data, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		var zero T
		return zero, true, fmt.Errorf("unmarshal %s to target type failed: %w", v.key, err)
	}
	return data, true, nil
}

// Save encodes data and writes it, replacing prior content.
func (v *Value[T]) Save(ctx context.Context, data T) error {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", v.key, err)
	}
	if err := v.store.Set(ctx, v.key, string(b)); err != nil {
		return fmt.Errorf("failed to write %s: %w", v.key, err)
	}
	return nil
}
