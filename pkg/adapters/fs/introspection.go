package fs

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path     string `json:"path"`
	ReadOnly bool   `json:"read_only"`
	Reads    int    `json:"reads"`
	Writes   int    `json:"writes"`
	Keys     int    `json:"keys"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	keys, _ := s.Keys()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return StoreState{
		Path:     s.Path,
		ReadOnly: s.config.ReadOnly,
		Reads:    s.reads,
		Writes:   s.writes,
		Keys:     len(keys),
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "fs"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
