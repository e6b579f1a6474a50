package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Service handles the business logic of the collection browser.
// It owns the current catalog snapshot, the notes and the theme preference.
type Service struct {
	mu      sync.RWMutex
	storage Storage
	feed    FeedSource
	notes   *Notes
	catalog *Catalog
	logger  *slog.Logger
	now     func() time.Time
	loadErr error
}

// NewService creates a new Service and loads the persisted notes.
// feed may be nil for storage-only use (notes, theme).
func NewService(ctx context.Context, storage Storage, feed FeedSource, logger *slog.Logger) (*Service, error) {
	if storage == nil {
		return nil, ErrStorageNotDefined
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		storage: storage,
		feed:    feed,
		notes:   NewNotes(storage, logger),
		catalog: NewCatalog(nil, time.Time{}),
		logger:  logger,
		now:     time.Now,
	}
	s.notes.Load(ctx)
	return s, nil
}

// Load fetches the feed and replaces the catalog wholesale.
// On failure the previous catalog is kept and the error wraps ErrLoadFailed.
func (s *Service) Load(ctx context.Context) (*Catalog, error) {
	if s.feed == nil {
		return nil, fmt.Errorf("%w: no feed configured", ErrLoadFailed)
	}

	rows, err := s.feed.Fetch(ctx)
	if err != nil {
		s.logger.Error("error loading data", "error", err)
		err = fmt.Errorf("%w: %w", ErrLoadFailed, err)
		s.mu.Lock()
		s.loadErr = err
		s.mu.Unlock()
		return nil, err
	}

	catalog := NewCatalog(Normalize(rows), s.now())
	s.logger.Debug("collection loaded", "wines", catalog.Len())

	s.mu.Lock()
	s.catalog = catalog
	s.loadErr = nil
	s.mu.Unlock()
	return catalog, nil
}

// Catalog returns the current snapshot. It is empty until Load succeeds.
func (s *Service) Catalog() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Storage returns the storage adapter.
func (s *Service) Storage() Storage {
	return s.storage
}

// Notes returns the notes store.
func (s *Service) Notes() *Notes {
	return s.notes
}

// SaveNote sets the note for name and persists the whole map.
func (s *Service) SaveNote(ctx context.Context, name, text string) error {
	if name == "" {
		return ErrEmptyName
	}
	s.notes.Set(name, text)
	return s.notes.Persist(ctx)
}

// Theme returns the stored theme. Read failures and unknown values yield
// ThemeLight.
func (s *Service) Theme(ctx context.Context) Theme {
	raw, ok, err := s.storage.Get(ctx, ThemeKey)
	if err != nil {
		s.logger.Warn("error reading theme", "error", err)
		return ThemeLight
	}
	if !ok {
		return ThemeLight
	}
	t, err := ParseTheme(raw)
	if err != nil {
		s.logger.Debug("ignoring stored theme", "value", raw)
		return ThemeLight
	}
	return t
}

// SetTheme stores the theme. A write failure is logged and swallowed.
func (s *Service) SetTheme(ctx context.Context, t Theme) {
	if err := s.storage.Set(ctx, ThemeKey, string(t)); err != nil {
		s.logger.Warn("error saving theme", "error", err)
	}
}
