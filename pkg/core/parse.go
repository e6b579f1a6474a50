package core

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Sheet cells are free text ("4.5/5", "2019 (est.)"), so numbers are read
// from the longest numeric prefix the way a browser's parseFloat/parseInt
// would, instead of rejecting the whole cell.

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// ParseLeadingFloat parses the numeric prefix of s.
// It returns NaN when s does not start with a number.
func ParseLeadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "Infinity"), strings.HasPrefix(s, "+Infinity"):
		return math.Inf(1)
	case strings.HasPrefix(s, "-Infinity"):
		return math.Inf(-1)
	}

	m := leadingFloat.FindString(s)
	if m == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// ParseLeadingInt parses the integer prefix of s.
// ok is false when s does not start with an integer.
func ParseLeadingInt(s string) (n int, ok bool) {
	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// numberOrZero is parseFloat(s) || 0.
func numberOrZero(s string) float64 {
	f := ParseLeadingFloat(s)
	if math.IsNaN(f) {
		return 0
	}
	return f
}
