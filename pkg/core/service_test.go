package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellar/pkg/adapters/memory"
	"github.com/aretw0/cellar/pkg/core"
)

func rowsFeed(rows ...core.Row) core.FeedSource {
	return core.FeedSourceFunc(func(context.Context) ([]core.Row, error) {
		return rows, nil
	})
}

func TestNewService(t *testing.T) {
	_, err := core.NewService(context.Background(), nil, nil, nil)
	assert.True(t, errors.Is(err, core.ErrStorageNotDefined))
}

func TestServiceLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces Catalog", func(t *testing.T) {
		svc, err := core.NewService(ctx, memory.NewStore(nil), rowsFeed(
			core.Row{"Wine Name": "A"},
			core.Row{"Wine Name": "B"},
		), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, svc.Catalog().Len())

		catalog, err := svc.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, catalog.Len())
		assert.Same(t, catalog, svc.Catalog())
		assert.False(t, catalog.LoadedAt().IsZero())
	})

	t.Run("Failure Keeps Previous Catalog", func(t *testing.T) {
		fail := false
		feed := core.FeedSourceFunc(func(context.Context) ([]core.Row, error) {
			if fail {
				return nil, errors.New("network down")
			}
			return []core.Row{{"Wine Name": "A"}}, nil
		})
		svc, err := core.NewService(ctx, memory.NewStore(nil), feed, nil)
		require.NoError(t, err)
		_, err = svc.Load(ctx)
		require.NoError(t, err)

		fail = true
		_, err = svc.Load(ctx)
		assert.True(t, errors.Is(err, core.ErrLoadFailed))
		assert.Equal(t, 1, svc.Catalog().Len())

		state := svc.State().(core.ServiceState)
		assert.Contains(t, state.LastError, "network down")
		assert.Equal(t, "memory", state.StorageType)
	})

	t.Run("No Feed", func(t *testing.T) {
		svc, err := core.NewService(ctx, memory.NewStore(nil), nil, nil)
		require.NoError(t, err)
		_, err = svc.Load(ctx)
		assert.True(t, errors.Is(err, core.ErrLoadFailed))
	})
}

func TestServiceNotes(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(map[string]string{core.NotesKey: `{"A":"old"}`})
	svc, err := core.NewService(ctx, store, nil, nil)
	require.NoError(t, err)

	note, ok := svc.Notes().Get("A")
	require.True(t, ok)
	assert.Equal(t, "old", note)

	require.NoError(t, svc.SaveNote(ctx, "A", "new"))
	raw, _, _ := store.Get(ctx, core.NotesKey)
	assert.JSONEq(t, `{"A":"new"}`, raw)

	assert.ErrorIs(t, svc.SaveNote(ctx, "", "x"), core.ErrEmptyName)

	store.FailWrites = errors.New("full")
	assert.Error(t, svc.SaveNote(ctx, "B", "unsaved"))
	assert.Equal(t, "unsaved", svc.Notes().Lookup("B"))
}

func TestServiceTheme(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(nil)
	svc, err := core.NewService(ctx, store, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, core.ThemeLight, svc.Theme(ctx))

	svc.SetTheme(ctx, core.ThemeDark)
	assert.Equal(t, core.ThemeDark, svc.Theme(ctx))
	raw, _, _ := store.Get(ctx, core.ThemeKey)
	assert.Equal(t, "dark", raw)

	require.NoError(t, store.Set(ctx, core.ThemeKey, "sepia"))
	assert.Equal(t, core.ThemeLight, svc.Theme(ctx))

	store.FailWrites = errors.New("denied")
	svc.SetTheme(ctx, core.ThemeDark)
	assert.Equal(t, core.ThemeLight, svc.Theme(ctx))
}

func TestParseTheme(t *testing.T) {
	th, err := core.ParseTheme("Dark")
	require.NoError(t, err)
	assert.Equal(t, core.ThemeDark, th)
	assert.Equal(t, core.ThemeLight, th.Toggle())

	_, err = core.ParseTheme("neon")
	assert.True(t, errors.Is(err, core.ErrInvalidTheme))
}
