package core

import (
	"fmt"
	"strings"
)

// BuyFilter is the "would buy again" tri-state.
type BuyFilter int

const (
	// BuyAny imposes no constraint.
	BuyAny BuyFilter = iota
	// BuyYes keeps wines whose buy field contains "yes".
	BuyYes
	// BuyNo keeps wines whose buy field contains "no".
	BuyNo
	// BuyBoth has both toggles active. It imposes no constraint but counts
	// as an active filter.
	BuyBoth
)

// BuyFromToggles derives the tri-state from two independent toggles.
// Neither or both active means unconstrained.
func BuyFromToggles(yes, no bool) BuyFilter {
	switch {
	case yes && no:
		return BuyBoth
	case yes:
		return BuyYes
	case no:
		return BuyNo
	default:
		return BuyAny
	}
}

// ParseBuyFilter accepts "yes", "no", "both", "any" or "".
func ParseBuyFilter(s string) (BuyFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return BuyAny, nil
	case "both", "either":
		return BuyBoth, nil
	case "yes":
		return BuyYes, nil
	case "no":
		return BuyNo, nil
	}
	return BuyAny, fmt.Errorf("invalid buy filter %q (want yes, no, both or any)", s)
}

func (b BuyFilter) String() string {
	switch b {
	case BuyYes:
		return "yes"
	case BuyNo:
		return "no"
	case BuyBoth:
		return "both"
	}
	return "any"
}

// FilterState is the set of active facet constraints at a point in time.
// The zero value matches everything.
type FilterState struct {
	Search    string
	Types     []string
	Regions   []string
	Grapes    []string
	MinRating float64
	Buy       BuyFilter
	// VintageMin and VintageMax bound the vintage year. Zero means no bound.
	VintageMin int
	VintageMax int
}

// matcher is a FilterState compiled for a single pass.
type matcher struct {
	term                  string
	types, regions, grape map[string]struct{}
	minRating             float64
	buy                   BuyFilter
	vinMin, vinMax        int
}

func (s FilterState) compile() matcher {
	return matcher{
		term:      strings.ToLower(s.Search),
		types:     toSet(s.Types),
		regions:   toSet(s.Regions),
		grape:     toSet(s.Grapes),
		minRating: s.MinRating,
		buy:       s.Buy,
		vinMin:    s.VintageMin,
		vinMax:    s.VintageMax,
	}
}

// Filter returns the wines satisfying every active constraint of st, in
// input order. The input is not modified.
func Filter(wines []Wine, st FilterState) []Wine {
	m := st.compile()
	out := make([]Wine, 0, len(wines))
	for _, w := range wines {
		if m.match(w) {
			out = append(out, w)
		}
	}
	return out
}

// Match reports whether a single wine satisfies st.
func (s FilterState) Match(w Wine) bool {
	return s.compile().match(w)
}

func (m matcher) match(w Wine) bool {
	if m.term != "" && !strings.Contains(w.searchText(), m.term) {
		return false
	}
	if !inSet(m.types, w.Type) || !inSet(m.regions, w.Region) || !inSet(m.grape, w.Grape) {
		return false
	}
	if numberOrZero(w.Rating) < m.minRating {
		return false
	}

	switch m.buy {
	case BuyYes:
		if !strings.Contains(strings.ToLower(w.Buy), "yes") {
			return false
		}
	case BuyNo:
		if !strings.Contains(strings.ToLower(w.Buy), "no") {
			return false
		}
	}

	if m.vinMin != 0 || m.vinMax != 0 {
		// An unparseable vintage fails any active bound.
		vintage, ok := ParseLeadingInt(w.Vintage)
		if !ok {
			return false
		}
		if m.vinMin != 0 && vintage < m.vinMin {
			return false
		}
		if m.vinMax != 0 && vintage > m.vinMax {
			return false
		}
	}
	return true
}

// ActiveFilterCount counts the facets currently constraining results.
// Each selected categorical value counts once; rating, buy and vintage count
// at most once each.
func ActiveFilterCount(st FilterState) int {
	n := len(toSet(st.Types)) + len(toSet(st.Regions)) + len(toSet(st.Grapes))
	if st.MinRating > 0 {
		n++
	}
	if st.Buy != BuyAny {
		n++
	}
	if st.VintageMin != 0 || st.VintageMax != 0 {
		n++
	}
	return n
}

// IsEmpty returns true if no filters are set.
func (s FilterState) IsEmpty() bool {
	return s.Search == "" && ActiveFilterCount(s) == 0
}

// Toggle returns values with v removed if present, appended otherwise.
func Toggle(values []string, v string) []string {
	out := make([]string, 0, len(values)+1)
	found := false
	for _, existing := range values {
		if existing == v {
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		out = append(out, v)
	}
	return out
}

func toSet(items []string) map[string]struct{} {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// inSet treats an empty set as "no constraint".
func inSet(set map[string]struct{}, v string) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[v]
	return ok
}
