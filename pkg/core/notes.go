package core

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/aretw0/cellar/pkg/typed"
)

// Notes maps a wine name to the owner's personal note.
//
// Notes are keyed by name only: two wines sharing a name (e.g. different
// vintages) share a note.
//
// The whole map is persisted as one JSON object under NotesKey and rewritten
// in full on every Persist. Notes is not safe for concurrent use.
type Notes struct {
	blob   *typed.Value[map[string]string]
	notes  map[string]string
	logger *slog.Logger
}

// NewNotes creates an empty notes map backed by storage.
// Call Load to read the persisted state.
func NewNotes(storage Storage, logger *slog.Logger) *Notes {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notes{
		blob:   typed.NewValue[map[string]string](storage, NotesKey),
		notes:  make(map[string]string),
		logger: logger,
	}
}

// Load replaces the in-memory map with the persisted one.
// A missing key yields an empty map. Unreadable or malformed content is
// logged and also yields an empty map. Blank entries are dropped.
func (n *Notes) Load(ctx context.Context) {
	data, ok, err := n.blob.Load(ctx)
	if err != nil {
		n.logger.Warn("error loading notes", "key", n.blob.Key(), "error", err)
		n.notes = make(map[string]string)
		return
	}
	if !ok || data == nil {
		n.notes = make(map[string]string)
		return
	}
	maps.DeleteFunc(data, func(_, text string) bool {
		return strings.TrimSpace(text) == ""
	})
	n.notes = data
}

// Get returns the note for name.
func (n *Notes) Get(name string) (string, bool) {
	text, ok := n.notes[name]
	return text, ok
}

// Lookup returns the note for name, or "".
func (n *Notes) Lookup(name string) string {
	return n.notes[name]
}

// Set stores the trimmed text for name. Blank text removes the entry.
func (n *Notes) Set(name, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		delete(n.notes, name)
		return
	}
	n.notes[name] = text
}

// Persist writes the entire map to storage. A failure is logged and
// returned; callers are free to ignore it.
func (n *Notes) Persist(ctx context.Context) error {
	if err := n.blob.Save(ctx, n.notes); err != nil {
		n.logger.Warn("error saving notes", "key", n.blob.Key(), "error", err)
		return err
	}
	return nil
}

// Len returns the number of notes.
func (n *Notes) Len() int {
	return len(n.notes)
}

// Names returns the names that have a note, sorted.
func (n *Notes) Names() []string {
	return slices.Sorted(maps.Keys(n.notes))
}
