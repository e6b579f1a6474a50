package core

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortField selects the field a catalog view is ordered by.
type SortField string

const (
	SortNone    SortField = ""
	SortName    SortField = "name"
	SortVintage SortField = "vintage"
	SortType    SortField = "type"
	SortGrape   SortField = "grape"
	SortPrice   SortField = "price"
	SortRegion  SortField = "region"
	SortRating  SortField = "rating"
	SortBuy     SortField = "buy"
)

// SortFields lists the selectable fields, SortNone excluded.
var SortFields = []SortField{SortName, SortVintage, SortType, SortGrape, SortPrice, SortRegion, SortRating, SortBuy}

// Numeric reports whether the field compares as a number.
func (f SortField) Numeric() bool {
	return f == SortVintage || f == SortRating || f == SortPrice
}

// ParseSortField accepts any of SortFields, or "" / "none" for SortNone.
func ParseSortField(s string) (SortField, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return SortNone, nil
	}
	f := SortField(s)
	if !slices.Contains(SortFields, f) {
		return SortNone, fmt.Errorf("%w: %q", ErrInvalidSortField, s)
	}
	return f, nil
}

// Direction is the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts "asc" or "desc". Empty means Asc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return Asc, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Sort returns wines ordered by field in direction dir.
// With SortNone the input slice itself is returned. Otherwise a sorted copy
// is returned and the input is left untouched. Equal keys keep their input
// order in both directions.
func Sort(wines []Wine, field SortField, dir Direction) []Wine {
	if field == SortNone {
		return wines
	}

	sign := 1
	if dir == Desc {
		sign = -1
	}

	compare := func(a, b Wine) int {
		return strings.Compare(strings.ToLower(a.Field(field)), strings.ToLower(b.Field(field)))
	}
	if field.Numeric() {
		compare = func(a, b Wine) int {
			return cmp.Compare(numberOrZero(a.Field(field)), numberOrZero(b.Field(field)))
		}
	}

	out := slices.Clone(wines)
	slices.SortStableFunc(out, func(a, b Wine) int {
		return sign * compare(a, b)
	})
	return out
}
