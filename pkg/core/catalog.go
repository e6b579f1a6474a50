package core

import (
	"math"
	"slices"
	"time"
)

// Catalog is an immutable snapshot of the full collection as of one load.
type Catalog struct {
	wines    []Wine
	loadedAt time.Time
}

// NewCatalog wraps wines. The slice must not be modified afterwards.
func NewCatalog(wines []Wine, loadedAt time.Time) *Catalog {
	return &Catalog{wines: wines, loadedAt: loadedAt}
}

// Wines returns the full record set.
func (c *Catalog) Wines() []Wine {
	if c == nil {
		return nil
	}
	return c.wines
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.wines)
}

// LoadedAt returns when the snapshot was taken.
func (c *Catalog) LoadedAt() time.Time {
	if c == nil {
		return time.Time{}
	}
	return c.loadedAt
}

// Find returns the first wine named name.
func (c *Catalog) Find(name string) (Wine, bool) {
	for _, w := range c.Wines() {
		if w.Name == name {
			return w, true
		}
	}
	return Wine{}, false
}

// Query is a filter pass followed by a sort.
type Query struct {
	Filter    FilterState
	SortBy    SortField
	Direction Direction
}

// Result is what the presentation layer renders.
type Result struct {
	Wines         []Wine
	Total         int
	ActiveFilters int
	// AverageRating is valid only when HasAverage is true.
	AverageRating float64
	HasAverage    bool
}

// Shown returns the number of wines in the result.
func (r Result) Shown() int {
	return len(r.Wines)
}

// Apply filters then sorts the full record set. Every call recomputes from
// scratch; the catalog is never modified.
func (c *Catalog) Apply(q Query) Result {
	wines := Sort(Filter(c.Wines(), q.Filter), q.SortBy, q.Direction)
	avg, ok := AverageRating(wines)
	return Result{
		Wines:         wines,
		Total:         c.Len(),
		ActiveFilters: ActiveFilterCount(q.Filter),
		AverageRating: avg,
		HasAverage:    ok,
	}
}

// Facets are the distinct option values offered for categorical filters.
type Facets struct {
	Types   []string `json:"types"`
	Regions []string `json:"regions"`
	Grapes  []string `json:"grapes"`
}

// Facets returns the unique, non-empty, sorted values of each facet.
func (c *Catalog) Facets() Facets {
	var types, regions, grapes []string
	for _, w := range c.Wines() {
		types = append(types, w.Type)
		regions = append(regions, w.Region)
		grapes = append(grapes, w.Grape)
	}
	return Facets{
		Types:   distinct(types),
		Regions: distinct(regions),
		Grapes:  distinct(grapes),
	}
}

func distinct(values []string) []string {
	out := slices.DeleteFunc(values, func(s string) bool { return s == "" })
	slices.Sort(out)
	return slices.Compact(out)
}

// AverageRating is the mean of the ratings that parse as a number > 0.
// ok is false if there are none.
func AverageRating(wines []Wine) (avg float64, ok bool) {
	var sum float64
	var n int
	for _, w := range wines {
		r := ParseLeadingFloat(w.Rating)
		if math.IsNaN(r) || r <= 0 {
			continue
		}
		sum += r
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
