package core

import "context"

// Storage keys used by the application.
const (
	NotesKey = "wineNotes"
	ThemeKey = "theme"
)

// Storage defines the contract for the local key-value store.
// Adhering to this interface allows the core to be independent of where
// preferences and notes actually live (a directory, memory, a browser).
type Storage interface {
	// Get returns the value stored under key. ok is false if absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, overwriting prior content.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// FeedSource delivers the ordered raw rows of the collection, or fails.
type FeedSource interface {
	Fetch(ctx context.Context) ([]Row, error)
}

// FeedSourceFunc adapts a function to FeedSource.
type FeedSourceFunc func(ctx context.Context) ([]Row, error)

// Fetch calls f.
func (f FeedSourceFunc) Fetch(ctx context.Context) ([]Row, error) {
	return f(ctx)
}
