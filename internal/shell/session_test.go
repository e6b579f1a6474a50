package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellar/internal/shell"
	"github.com/aretw0/cellar/pkg/adapters/memory"
	"github.com/aretw0/cellar/pkg/core"
	"github.com/aretw0/cellar/pkg/view"
)

var rows = []core.Row{
	{core.ColumnName: "Alpha", core.ColumnVintage: "2018", core.ColumnType: "Red", core.ColumnRating: "4.5", core.ColumnBuy: "Yes", core.ColumnRegion: "Bordeaux"},
	{core.ColumnName: "Beta", core.ColumnVintage: "2015", core.ColumnType: "White", core.ColumnRating: "3", core.ColumnBuy: "No", core.ColumnRegion: "Mosel"},
	{core.ColumnName: "Gamma", core.ColumnVintage: "2020", core.ColumnType: "Red", core.ColumnRating: "5", core.ColumnBuy: "Yes", core.ColumnRegion: "Rioja"},
}

type fixture struct {
	sess  *shell.Session
	svc   *core.Service
	store *memory.Store
	out   *bytes.Buffer
	dir   string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	return setupRows(t, rows)
}

func setupRows(t *testing.T, rows []core.Row) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore(nil)
	svc, err := core.NewService(ctx, store, core.FeedSourceFunc(func(context.Context) ([]core.Row, error) {
		return rows, nil
	}), nil)
	require.NoError(t, err)
	_, err = svc.Load(ctx)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	dir := t.TempDir()
	sess := shell.New(ctx, svc, shell.Config{
		Out:       out,
		ExportDir: dir,
		Now:       func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) },
	})
	return &fixture{sess: sess, svc: svc, store: store, out: out, dir: dir}
}

func (f *fixture) exec(t *testing.T, line string) {
	t.Helper()
	quit, err := f.sess.Exec(line)
	require.NoError(t, err, line)
	require.False(t, quit, line)
}

func shown(s *shell.Session) []string {
	var out []string
	for _, w := range s.Result().Wines {
		out = append(out, w.Name)
	}
	return out
}

func TestSessionFilters(t *testing.T) {
	f := setup(t)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, shown(f.sess))

	f.exec(t, "type Red")
	assert.Equal(t, []string{"Alpha", "Gamma"}, shown(f.sess))
	assert.Equal(t, 1, f.sess.Result().ActiveFilters)

	f.exec(t, "vintage 2019")
	assert.Equal(t, []string{"Gamma"}, shown(f.sess))

	f.exec(t, "vintage - -")
	f.exec(t, "type Red")
	assert.Len(t, shown(f.sess), 3)

	f.exec(t, "search mosel")
	assert.Equal(t, []string{"Beta"}, shown(f.sess))

	f.exec(t, "buy yes")
	assert.Empty(t, shown(f.sess))
	assert.Contains(t, f.out.String(), "No wines found")

	f.exec(t, "clear")
	assert.Equal(t, []string{"Beta"}, shown(f.sess), "clear keeps the search")
	f.exec(t, "clear-search")
	f.exec(t, "rating 4")
	assert.Equal(t, []string{"Alpha", "Gamma"}, shown(f.sess))
}

func TestSessionSort(t *testing.T) {
	f := setup(t)
	f.exec(t, "sort rating desc")
	assert.Equal(t, []string{"Gamma", "Alpha", "Beta"}, shown(f.sess))

	f.exec(t, "sort vintage")
	assert.Equal(t, []string{"Gamma", "Alpha", "Beta"}, shown(f.sess), "direction is kept")

	f.exec(t, "sort name asc")
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, shown(f.sess))

	_, err := f.sess.Exec("sort color")
	assert.True(t, errors.Is(err, core.ErrInvalidSortField))
}

func TestSessionDetailNavigation(t *testing.T) {
	f := setup(t)

	_, err := f.sess.Exec("next")
	assert.True(t, errors.Is(err, shell.ErrNoWineOpen))

	f.exec(t, "open 1")
	assert.Equal(t, "cellar [1/3]> ", f.sess.Prompt())
	assert.Contains(t, f.out.String(), "Bordeaux")

	_, err = f.sess.Exec("prev")
	assert.Error(t, err)
	f.exec(t, "next")
	f.exec(t, "next")
	_, err = f.sess.Exec("next")
	assert.Error(t, err)

	w, ok := f.sess.Navigator().Current()
	require.True(t, ok)
	assert.Equal(t, "Gamma", w.Name)

	f.exec(t, "close")
	assert.Equal(t, "cellar> ", f.sess.Prompt())

	_, err = f.sess.Exec("open 9")
	assert.Error(t, err)

	f.exec(t, "open 2")
	f.exec(t, "type White")
	assert.False(t, f.sess.Navigator().IsOpen(), "changing the view closes the detail")
}

func TestSessionNotes(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.sess.Exec("note hello")
	assert.True(t, errors.Is(err, shell.ErrNoWineOpen))

	f.exec(t, "open 2")
	f.exec(t, "note  drink with fish  ")
	raw, _, _ := f.store.Get(ctx, core.NotesKey)
	assert.JSONEq(t, `{"Beta":"drink with fish"}`, raw)

	f.out.Reset()
	f.exec(t, "note")
	assert.Contains(t, f.out.String(), "drink with fish")

	f.store.FailWrites = errors.New("full")
	f.exec(t, "note changed")
	assert.Contains(t, f.out.String(), "session only")
	assert.Equal(t, "changed", f.svc.Notes().Lookup("Beta"))

	f.store.FailWrites = nil
	f.exec(t, "unnote")
	_, ok := f.svc.Notes().Get("Beta")
	assert.False(t, ok)
}

func TestSessionNoteOnNamelessWine(t *testing.T) {
	f := setupRows(t, []core.Row{{core.ColumnName: "", core.ColumnVintage: "", core.ColumnType: ""}})
	f.exec(t, "open 1")

	f.out.Reset()
	_, err := f.sess.Exec("note hello")
	assert.ErrorIs(t, err, core.ErrEmptyName)
	assert.NotContains(t, f.out.String(), "session only")
	assert.Equal(t, 0, f.svc.Notes().Len())

	_, err = f.sess.Exec("unnote")
	assert.ErrorIs(t, err, core.ErrEmptyName)
}

func TestSessionThemeAndLayout(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.exec(t, "theme toggle")
	assert.Equal(t, core.ThemeDark, f.svc.Theme(ctx))
	assert.Equal(t, core.ThemeDark, f.sess.Renderer().Config().Theme)

	f.exec(t, "theme light")
	assert.Equal(t, core.ThemeLight, f.svc.Theme(ctx))

	_, err := f.sess.Exec("theme neon")
	assert.Error(t, err)

	f.exec(t, "list")
	assert.Equal(t, view.LayoutList, f.sess.Renderer().Config().Layout)
	f.exec(t, "grid")
	assert.Equal(t, view.LayoutGrid, f.sess.Renderer().Config().Layout)
}

func TestSessionExport(t *testing.T) {
	f := setup(t)
	f.exec(t, "type Red")
	f.exec(t, "export")

	data, err := os.ReadFile(filepath.Join(f.dir, "wine-collection-2024-05-01.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Alpha"`)
	assert.NotContains(t, string(data), `"Beta"`)

	f.exec(t, "type Red")
	f.exec(t, "type Rosé")
	_, err = f.sess.Exec("export")
	assert.Error(t, err)
}

func TestSessionMisc(t *testing.T) {
	f := setup(t)

	quit, err := f.sess.Exec("")
	assert.NoError(t, err)
	assert.False(t, quit)

	_, err = f.sess.Exec("dance")
	assert.True(t, errors.Is(err, shell.ErrUnknownCommand))

	f.out.Reset()
	f.exec(t, "help")
	assert.Contains(t, f.out.String(), "sort <field> [asc|desc]")

	f.out.Reset()
	f.exec(t, "facets")
	assert.Contains(t, f.out.String(), "Rioja")

	f.out.Reset()
	f.exec(t, "stats")
	assert.Contains(t, f.out.String(), "Showing 3 of 3")

	f.exec(t, "reload")

	quit, err = f.sess.Exec("QUIT")
	assert.NoError(t, err)
	assert.True(t, quit)

	assert.Equal(t, []string{"grape", "grid"}, shell.Complete("gr"))
	assert.Nil(t, shell.Complete("sort na"))
}

func TestSessionLoadFailed(t *testing.T) {
	ctx := context.Background()
	svc, err := core.NewService(ctx, memory.NewStore(nil), core.FeedSourceFunc(func(context.Context) ([]core.Row, error) {
		return nil, errors.New("offline")
	}), nil)
	require.NoError(t, err)
	_, err = svc.Load(ctx)
	require.Error(t, err)

	out := &bytes.Buffer{}
	sess := shell.New(ctx, svc, shell.Config{Out: out})
	sess.MarkLoadFailed()
	_, err = sess.Exec("ls")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Failed to load collection")
}
