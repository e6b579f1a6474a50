// Package view renders catalog results for a terminal.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/cellar/pkg/core"
)

// Placeholder images used when a wine has no resolvable label photo.
const (
	CardPlaceholder   = "https://via.placeholder.com/320x320/722f37/ffffff?text=No+Image"
	DetailPlaceholder = "https://via.placeholder.com/500x500/722f37/ffffff?text=No+Image"
)

// Layout is how cards are arranged.
type Layout string

const (
	LayoutGrid Layout = "grid"
	LayoutList Layout = "list"
)

// ParseLayout accepts "grid" or "list". Empty means grid.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return LayoutGrid, nil
	case LayoutGrid, LayoutList:
		return l, nil
	}
	return LayoutGrid, fmt.Errorf("invalid layout %q (want grid or list)", s)
}

// Config configures a Renderer.
type Config struct {
	Theme   core.Theme
	Layout  Layout
	Width   int // total width in cells; defaults to 100
	Columns int // grid columns; defaults to 3
}

// Renderer turns wines into styled text.
type Renderer struct {
	cfg Config
	st  styles
}

// NewRenderer creates a renderer.
func NewRenderer(cfg Config) *Renderer {
	if cfg.Width <= 0 {
		cfg.Width = 100
	}
	if cfg.Columns <= 0 {
		cfg.Columns = 3
	}
	if cfg.Layout == "" {
		cfg.Layout = LayoutGrid
	}
	if cfg.Theme == "" {
		cfg.Theme = core.ThemeLight
	}
	return &Renderer{cfg: cfg, st: newStyles(cfg.Theme)}
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// WithLayout returns a copy of r using layout l.
func (r *Renderer) WithLayout(l Layout) *Renderer {
	cfg := r.cfg
	cfg.Layout = l
	return NewRenderer(cfg)
}

// WithTheme returns a copy of r using theme t.
func (r *Renderer) WithTheme(t core.Theme) *Renderer {
	cfg := r.cfg
	cfg.Theme = t
	return NewRenderer(cfg)
}

// Cards renders wines in the configured layout, numbered from 1.
func (r *Renderer) Cards(wines []core.Wine) string {
	if len(wines) == 0 {
		return r.Empty()
	}
	if r.cfg.Layout == LayoutList {
		return r.list(wines)
	}
	return r.grid(wines)
}

func (r *Renderer) grid(wines []core.Wine) string {
	cols := r.cfg.Columns
	// Each card carries two border cells and a separating space.
	cardWidth := max(r.cfg.Width/cols-3, 12)

	var rows []string
	for start := 0; start < len(wines); start += cols {
		end := min(start+cols, len(wines))
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			w := wines[i]
			body := lipgloss.JoinVertical(lipgloss.Left,
				r.st.title.Render(fmt.Sprintf("%d. %s", i+1, w.Name)),
				r.st.meta.Render(metaLine(w)),
			)
			cells = append(cells, r.st.card.Width(cardWidth).Render(body), " ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Renderer) list(wines []core.Wine) string {
	var b strings.Builder
	for i, w := range wines {
		info := lipgloss.JoinVertical(lipgloss.Left,
			r.st.title.Render(fmt.Sprintf("%d. %s", i+1, w.Name)),
			r.st.meta.Render(metaLine(w)),
		)
		chips := r.chip("Region", orDefault(w.Region, "N/A")) + "   " +
			r.chip("Rating", orDefault(w.Rating, "N/A"))
		b.WriteString(r.st.row.Width(r.cfg.Width - 2).Render(
			lipgloss.JoinVertical(lipgloss.Left, info, chips)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) chip(label, value string) string {
	return r.st.label.Render(label) + " " + r.st.value.Render(value)
}

// Detail renders the full record of one wine with its note and its
// position in the current view.
func (r *Renderer) Detail(w core.Wine, note string, pos, total int) string {
	image := core.ResolveImageURL(w.Image)
	if image == "" {
		image = DetailPlaceholder
	}

	parts := []string{
		r.st.title.Render(w.Name),
		r.st.meta.Render(metaLine(w)),
		r.field("Region", orDefault(w.Region, "Not specified")),
		r.field("Grape", orDefault(w.Grape, "Not specified")),
		r.field("Tasting Notes", orDefault(w.Taste, "No tasting notes available.")),
		r.field("Pairing", orDefault(w.Pairing, "No pairing suggestions available.")),
		r.field("Rating", orDefault(w.Rating, "Not rated")),
		r.field("Would Buy Again", orDefault(w.Buy, "Not specified")),
	}
	if strings.TrimSpace(w.Extra) != "" {
		parts = append(parts, r.field("Additional Information", w.Extra))
	}
	if strings.TrimSpace(note) != "" {
		parts = append(parts, r.field("Personal Notes", note))
	} else {
		parts = append(parts, r.st.section.Render(r.st.label.Render("Personal Notes")+"\n"+
			r.st.muted.Render("No personal notes yet. Use `note <text>` to add your thoughts.")))
	}
	parts = append(parts,
		r.field("Label", image),
		r.st.section.Render(r.st.meta.Render(fmt.Sprintf("%d / %d", pos, total))),
	)

	return r.st.modal.Width(r.cfg.Width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (r *Renderer) field(label, value string) string {
	return r.st.section.Render(r.st.label.Render(label) + "\n" + r.st.value.Render(value))
}

// Stats renders the counters line.
func (r *Renderer) Stats(res core.Result) string {
	avg := "—"
	if res.HasAverage {
		avg = fmt.Sprintf("%.1f", res.AverageRating)
	}
	line := fmt.Sprintf("Showing %d of %d · Avg rating %s", res.Shown(), res.Total, avg)
	if res.ActiveFilters > 0 {
		line += fmt.Sprintf(" · %d active filters", res.ActiveFilters)
	}
	return r.st.meta.Render(line)
}

// Facets renders the filter options.
func (r *Renderer) Facets(f core.Facets) string {
	return strings.Join([]string{
		r.field("Types", strings.Join(f.Types, ", ")),
		r.field("Regions", strings.Join(f.Regions, ", ")),
		r.field("Grapes", strings.Join(f.Grapes, ", ")),
	}, "\n")
}

// Empty is shown when no wine matches.
func (r *Renderer) Empty() string {
	return r.st.muted.Render("No wines found matching your criteria.")
}

// LoadFailed is the terminal state after a failed feed load.
func (r *Renderer) LoadFailed() string {
	return r.st.muted.Render("Failed to load collection. Please try again.")
}

// CardImage returns the image shown on a card for w.
func CardImage(w core.Wine) string {
	if u := core.ResolveImageURL(w.Image); u != "" {
		return u
	}
	return CardPlaceholder
}

func metaLine(w core.Wine) string {
	return orDefault(w.Vintage, "N/A") + " · " + orDefault(w.Type, "Unknown Type")
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
