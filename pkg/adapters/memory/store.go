// Package memory provides an in-memory core.Storage.
// Nothing survives the process; it backs tests and --ephemeral runs.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/aretw0/cellar/pkg/core"
)

// Store implements core.Storage in memory.
type Store struct {
	mu    sync.RWMutex
	items map[string]string
	// FailWrites makes every Set and Delete return it, to exercise error paths.
	FailWrites error
	// FailReads makes every Get return it.
	FailReads error
}

// NewStore returns an empty store, optionally seeded with items.
func NewStore(items map[string]string) *Store {
	s := &Store{items: make(map[string]string, len(items))}
	maps.Copy(s.items, items)
	return s
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if s.FailReads != nil {
		return "", false, s.FailReads
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory"
}

var _ core.Storage = (*Store)(nil)
