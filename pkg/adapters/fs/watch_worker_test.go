package fs

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{"No Patterns Match All", nil, "/x/y.csv", true},
		{"Exact Path", []string{"/data/wineNotes.txt"}, "/data/wineNotes.txt", true},
		{"Glob", []string{"/feeds/*.csv"}, "/feeds/a.csv", true},
		{"Double Star", []string{"/feeds/**/*.csv"}, "/feeds/2024/q1/a.csv", true},
		{"Other Extension", []string{"/feeds/*.csv"}, "/feeds/a.tmp", false},
		{"Any Of Many", []string{"/a/*.txt", "/b/*.csv"}, "/b/c.csv", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.patterns, tt.path))
		})
	}
}

func TestDebouncerCoalesces(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)

	var mu sync.Mutex
	var fired []Change
	fire := func(c Change) {
		mu.Lock()
		fired = append(fired, c)
		mu.Unlock()
	}

	for i := range 5 {
		d.add(Change{Path: "a", Timestamp: int64(i)}, fire)
	}
	d.add(Change{Path: "b"}, fire)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(fired) == 2
	}, time.Second, 5*time.Millisecond)

	d.stopAndWait(time.Second)

	mu.Lock()
	defer mu.Unlock()
	for _, c := range fired {
		if c.Path == "a" {
			assert.Equal(t, int64(4), c.Timestamp, "only the last change per path is delivered")
		}
	}
}

func TestDebouncerStopDropsPending(t *testing.T) {
	d := newDebouncer(time.Hour)
	called := false
	d.add(Change{Path: "a"}, func(Change) { called = true })
	d.stopAndWait(time.Second)
	d.add(Change{Path: "b"}, func(Change) { called = true })
	assert.False(t, called)
}

func TestWatchDeliversMatchingChanges(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := Watch(ctx, WatchConfig{
		Dirs:     []string{dir},
		Patterns: []string{filepath.Join(dir, "*.csv")},
		Debounce: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.tmp"), []byte("x"), 0644))
	target := filepath.Join(dir, "collection.csv")
	require.NoError(t, os.WriteFile(target, []byte("Wine Name\nA\n"), 0644))

	select {
	case c := <-changes:
		assert.Equal(t, target, c.Path)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change")
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)
}

func TestWatchRejectsBadPattern(t *testing.T) {
	_, err := Watch(context.Background(), WatchConfig{Dirs: []string{t.TempDir()}, Patterns: []string{"[unclosed"}})
	assert.Error(t, err)
}
