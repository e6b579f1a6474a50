package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellar/pkg/adapters/feed"
	"github.com/aretw0/cellar/pkg/adapters/fs"
	"github.com/aretw0/cellar/pkg/core"
)

var (
	watchFlags    queryFlags
	watchInterval time.Duration
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the view whenever the collection or notes change",
	Long: `Watch keeps the current view on screen and refreshes it when a local feed
file or the notes file changes. Remote feeds are polled every --interval.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		q, err := watchFlags.query()
		if err != nil {
			fatal("Invalid query", err)
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc := openService(ctx)
		r, err := newRenderer(ctx, svc, cfg.View.Layout)
		if err != nil {
			fatal("Invalid view", err)
		}
		render := func() {
			if _, err := svc.Load(ctx); err != nil {
				fmt.Println(r.LoadFailed())
				return
			}
			res := svc.Catalog().Apply(q)
			fmt.Println(r.Stats(res))
			fmt.Println(r.Cards(res.Wines))
		}
		render()

		var dirs, patterns []string
		if src, ok := feed.Open(cfg.Feed.URI).(*feed.FileSource); ok {
			files, err := src.Files()
			if err != nil {
				fatal("Error resolving feed", err)
			}
			for _, f := range files {
				dirs = append(dirs, filepath.Dir(f))
			}
			patterns = append(patterns, cfg.Feed.URI)
		}
		notesFile := ""
		if store, ok := svc.Storage().(*fs.Store); ok {
			if info, err := os.Stat(store.Path); err == nil && info.IsDir() {
				notesFile = store.Filename(core.NotesKey)
				dirs = append(dirs, store.Path)
				patterns = append(patterns, notesFile)
			}
		}
		slices.Sort(dirs)
		dirs = slices.Compact(dirs)

		var changes <-chan fs.Change
		if len(dirs) > 0 {
			changes, err = fs.Watch(ctx, fs.WatchConfig{
				Dirs:     dirs,
				Patterns: patterns,
				Debounce: watchDebounce,
				Logger:   slog.Default(),
			})
			if err != nil {
				fatal("Error starting watcher", err)
			}
		}

		var tick <-chan time.Time
		if feed.IsRemote(cfg.Feed.URI) && watchInterval > 0 {
			ticker := time.NewTicker(watchInterval)
			defer ticker.Stop()
			tick = ticker.C
		}

		runWatchLoop(ctx, changes, tick, notesFile, svc, render)
	},
}

func runWatchLoop(ctx context.Context, changes <-chan fs.Change, tick <-chan time.Time, notesFile string, svc *core.Service, render func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			slog.Debug("polling feed")
			render()
		case c, ok := <-changes:
			if !ok {
				return
			}
			slog.Info("change detected", "path", c.Path, "op", c.Op.String())
			if notesFile != "" && sameFile(c.Path, notesFile) {
				svc.Notes().Load(ctx)
			}
			render()
		}
	}
}

func sameFile(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchFlags.register(watchCmd)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 5*time.Minute, "Polling interval for remote feeds, 0 to disable")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "Coalesce bursts of file events")
}
