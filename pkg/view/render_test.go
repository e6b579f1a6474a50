package view_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellar/pkg/core"
	"github.com/aretw0/cellar/pkg/view"
)

func wines() []core.Wine {
	return []core.Wine{
		{Name: "Alpha", Vintage: "2018", Type: "Red", Region: "Bordeaux", Rating: "4.5"},
		{Name: "Beta"},
		{Name: "Gamma", Type: "White"},
		{Name: "Delta", Image: "https://drive.google.com/file/d/IMG/view"},
	}
}

func TestCards(t *testing.T) {
	for _, layout := range []view.Layout{view.LayoutGrid, view.LayoutList} {
		t.Run(string(layout), func(t *testing.T) {
			r := view.NewRenderer(view.Config{Layout: layout})
			out := r.Cards(wines())
			for _, w := range wines() {
				assert.Contains(t, out, w.Name)
			}
			assert.Contains(t, out, "1. Alpha")
			assert.Contains(t, out, "4. Delta")
			assert.Contains(t, out, "Unknown Type")
			assert.Contains(t, out, "N/A")
		})
	}
}

func TestCardsEmpty(t *testing.T) {
	r := view.NewRenderer(view.Config{})
	assert.Contains(t, r.Cards(nil), "No wines found matching your criteria.")
}

func TestDetail(t *testing.T) {
	r := view.NewRenderer(view.Config{Theme: core.ThemeDark, Width: 120})

	t.Run("Fallbacks", func(t *testing.T) {
		out := r.Detail(core.Wine{Name: "Beta"}, "", 2, 4)
		assert.Contains(t, out, "Not specified")
		assert.Contains(t, out, "No tasting notes available.")
		assert.Contains(t, out, "No pairing suggestions available.")
		assert.Contains(t, out, "Not rated")
		assert.Contains(t, out, "No personal notes yet.")
		assert.Contains(t, out, view.DetailPlaceholder)
		assert.Contains(t, out, "2 / 4")
		assert.NotContains(t, out, "Additional Information")
	})

	t.Run("Full Record", func(t *testing.T) {
		w := wines()[3]
		w.Extra = "Gift from Sam"
		out := r.Detail(w, "Try again in 2030", 4, 4)
		assert.Contains(t, out, core.ImageHost+"IMG")
		assert.Contains(t, out, "Gift from Sam")
		assert.Contains(t, out, "Try again in 2030")
	})
}

func TestStats(t *testing.T) {
	r := view.NewRenderer(view.Config{})

	out := r.Stats(core.Result{Wines: wines()[:2], Total: 4, ActiveFilters: 2, AverageRating: 4.3, HasAverage: true})
	assert.Contains(t, out, "Showing 2 of 4")
	assert.Contains(t, out, "4.3")
	assert.Contains(t, out, "2 active filters")

	out = r.Stats(core.Result{Total: 4})
	assert.Contains(t, out, "—")
	assert.NotContains(t, out, "active filters")
}

func TestCardImage(t *testing.T) {
	assert.Equal(t, view.CardPlaceholder, view.CardImage(core.Wine{}))
	assert.Equal(t, core.ImageHost+"IMG", view.CardImage(wines()[3]))
}

func TestParseLayout(t *testing.T) {
	l, err := view.ParseLayout("LIST")
	require.NoError(t, err)
	assert.Equal(t, view.LayoutList, l)

	l, err = view.ParseLayout("")
	require.NoError(t, err)
	assert.Equal(t, view.LayoutGrid, l)

	_, err = view.ParseLayout("masonry")
	assert.Error(t, err)
}

func TestRendererCopies(t *testing.T) {
	r := view.NewRenderer(view.Config{})
	dark := r.WithTheme(core.ThemeDark).WithLayout(view.LayoutList)
	assert.Equal(t, core.ThemeLight, r.Config().Theme)
	assert.Equal(t, core.ThemeDark, dark.Config().Theme)
	assert.Equal(t, view.LayoutList, dark.Config().Layout)
	assert.True(t, strings.Contains(dark.Facets(core.Facets{Types: []string{"Red"}}), "Red"))
}
