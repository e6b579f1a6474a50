package platform_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellar/internal/platform"
	"github.com/aretw0/cellar/pkg/adapters/fs"
	"github.com/aretw0/cellar/pkg/adapters/memory"
	"github.com/aretw0/cellar/pkg/core"
)

func testConfig(t *testing.T, feedURI string) platform.Config {
	t.Helper()
	cfg, err := platform.LoadConfig(platform.LoadConfigInput{
		WorkDir:   t.TempDir(),
		Env:       map[string]string{},
		Overrides: platform.Config{Feed: platform.FeedConfig{URI: feedURI}, Storage: platform.StorageConfig{Dir: filepath.Join(t.TempDir(), "store")}},
	})
	require.NoError(t, err)
	return cfg
}

func TestNewWiresFileFeedAndFSStore(t *testing.T) {
	dir := t.TempDir()
	feedPath := filepath.Join(dir, "collection.csv")
	require.NoError(t, os.WriteFile(feedPath, []byte("Wine Name,Wine Type\nAlpha,Red\nBeta,White\n"), 0644))

	ctx := context.Background()
	cfg := testConfig(t, feedPath)
	svc, err := platform.New(ctx, cfg)
	require.NoError(t, err)

	catalog, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	require.IsType(t, &fs.Store{}, svc.Storage())
	require.NoError(t, svc.SaveNote(ctx, "Alpha", "crisp"))

	data, err := os.ReadFile(filepath.Join(cfg.Storage.Dir, core.NotesKey+".txt"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Alpha":"crisp"}`, string(data))

	state := svc.State().(core.ServiceState)
	assert.Equal(t, "file", state.FeedType)
	assert.Equal(t, "fs", state.StorageType)
}

func TestNewOptions(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, "unused.csv")

	t.Run("Ephemeral Skips Disk", func(t *testing.T) {
		svc, err := platform.New(ctx, cfg, platform.WithEphemeral(true))
		require.NoError(t, err)
		assert.IsType(t, &memory.Store{}, svc.Storage())
		_, err = os.Stat(cfg.Storage.Dir)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Injected Storage And Feed Win", func(t *testing.T) {
		store := memory.NewStore(map[string]string{core.ThemeKey: "dark"})
		feed := core.FeedSourceFunc(func(context.Context) ([]core.Row, error) {
			return []core.Row{{"Wine Name": "Injected"}}, nil
		})
		svc, err := platform.New(ctx, cfg, platform.WithStorage(store), platform.WithFeed(feed))
		require.NoError(t, err)
		assert.Equal(t, core.ThemeDark, svc.Theme(ctx))

		catalog, err := svc.Load(ctx)
		require.NoError(t, err)
		_, ok := catalog.Find("Injected")
		assert.True(t, ok)
	})

	t.Run("MustExist Fails On Missing Dir", func(t *testing.T) {
		_, err := platform.New(ctx, cfg, platform.WithMustExist(true))
		assert.Error(t, err)
	})

	t.Run("ReadOnly Logs Failed Writes", func(t *testing.T) {
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))
		svc, err := platform.New(ctx, cfg, platform.WithReadOnly(true), platform.WithLogger(logger))
		require.NoError(t, err)

		assert.Error(t, svc.SaveNote(ctx, "A", "x"))
		assert.Equal(t, "x", svc.Notes().Lookup("A"))
		assert.True(t, strings.Contains(logs.String(), "error saving notes"))
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := platform.NewLogger(&buf, platform.LogConfig{Level: "warn", Format: "json"}, false)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)

	buf.Reset()
	logger = platform.NewLogger(&buf, platform.LogConfig{Level: "error"}, true)
	logger.Debug("verbose wins")
	assert.Contains(t, buf.String(), "verbose wins")
}
