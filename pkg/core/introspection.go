package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Wines       int        `json:"wines"`
	Notes       int        `json:"notes"`
	LoadedAt    *time.Time `json:"loaded_at,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
	FeedType    string     `json:"feed_type"`
	StorageType string     `json:"storage_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := ServiceState{
		Wines:       s.catalog.Len(),
		Notes:       s.notes.Len(),
		FeedType:    componentType(s.feed, "none"),
		StorageType: componentType(s.storage, "storage"),
	}
	if at := s.catalog.LoadedAt(); !at.IsZero() {
		state.LoadedAt = &at
	}
	if s.loadErr != nil {
		state.LastError = s.loadErr.Error()
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

func componentType(v any, fallback string) string {
	if v == nil {
		return fallback
	}
	if comp, ok := v.(introspection.Component); ok {
		return comp.ComponentType()
	}
	return fallback
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
