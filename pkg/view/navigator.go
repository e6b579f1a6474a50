package view

import "github.com/aretw0/cellar/pkg/core"

// Navigator tracks the wine open in the detail view within the current
// filtered set. Index -1 means closed.
type Navigator struct {
	wines []core.Wine
	index int
}

// NewNavigator starts closed over wines.
func NewNavigator(wines []core.Wine) *Navigator {
	return &Navigator{wines: wines, index: -1}
}

// Reset replaces the set and closes the detail view.
func (n *Navigator) Reset(wines []core.Wine) {
	n.wines = wines
	n.index = -1
}

// Open selects the wine at index i (0-based). It reports false if i is out
// of range.
func (n *Navigator) Open(i int) bool {
	if i < 0 || i >= len(n.wines) {
		return false
	}
	n.index = i
	return true
}

// Close closes the detail view.
func (n *Navigator) Close() {
	n.index = -1
}

// IsOpen reports whether a wine is selected.
func (n *Navigator) IsOpen() bool {
	return n.index >= 0
}

// Current returns the selected wine.
func (n *Navigator) Current() (core.Wine, bool) {
	if !n.IsOpen() {
		return core.Wine{}, false
	}
	return n.wines[n.index], true
}

// HasPrev reports whether Prev would move.
func (n *Navigator) HasPrev() bool {
	return n.IsOpen() && n.index > 0
}

// HasNext reports whether Next would move.
func (n *Navigator) HasNext() bool {
	return n.IsOpen() && n.index < len(n.wines)-1
}

// Prev moves to the previous wine.
func (n *Navigator) Prev() bool {
	if !n.HasPrev() {
		return false
	}
	n.index--
	return true
}

// Next moves to the next wine.
func (n *Navigator) Next() bool {
	if !n.HasNext() {
		return false
	}
	n.index++
	return true
}

// Position returns the 1-based position and the set size.
func (n *Navigator) Position() (pos, total int) {
	return n.index + 1, len(n.wines)
}
