package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/natefinch/atomic"

	"github.com/aretw0/cellar/pkg/core"
)

// Store implements core.Storage on a directory: one file per key.
type Store struct {
	Path   string
	config Config

	mu     sync.RWMutex
	reads  int
	writes int
}

// Config holds the configuration for the filesystem store.
type Config struct {
	Path      string
	MustExist bool
	ReadOnly  bool
	Logger    *slog.Logger
	// Extension is appended to every key to build its file name. Defaults to ".txt".
	Extension string
}

// keyPattern keeps keys usable as plain file names on every platform.
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// NewStore creates a new filesystem-backed store.
func NewStore(config Config) *Store {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Extension == "" {
		config.Extension = ".txt"
	}
	return &Store{Path: config.Path, config: config}
}

// Initialize ensures the storage directory exists.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist || s.config.ReadOnly {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			if s.config.ReadOnly {
				// Nothing stored yet; every read reports absence.
				return nil
			}
			return fmt.Errorf("storage path does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("storage path is not a directory: %s", s.Path)
		}
		return nil
	}

	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	return nil
}

// Filename returns the file backing key.
func (s *Store) Filename(key string) string {
	return filepath.Join(s.Path, key+s.config.Extension)
}

// Get reads the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(s.Filename(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	s.mu.Lock()
	s.reads++
	s.mu.Unlock()
	return string(data), true, nil
}

// Set writes value under key atomically.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.config.ReadOnly {
		return ErrReadOnly
	}
	if err := validateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	filename := s.Filename(key)
	if err := atomic.WriteFile(filename, strings.NewReader(value)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	// atomic.WriteFile does not set permissions on new files.
	if err := os.Chmod(filename, 0600); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", filename, err)
	}

	s.mu.Lock()
	s.writes++
	s.mu.Unlock()
	s.config.Logger.Debug("stored key", "key", key, "bytes", len(value))
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if s.config.ReadOnly {
		return ErrReadOnly
	}
	if err := validateKey(key); err != nil {
		return err
	}
	if err := os.Remove(s.Filename(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Keys lists the keys currently stored.
func (s *Store) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, s.config.Extension) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, s.config.Extension))
	}
	return keys, nil
}

func validateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return nil
}

// ErrReadOnly is returned by writes on a read-only store.
var ErrReadOnly = errors.New("storage is in read-only mode")

var _ core.Storage = (*Store)(nil)
