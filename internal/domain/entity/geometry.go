// Package entity defines domain entities for the browser shell.
package entity

// Rect is a rectangle in window content coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// IsEmpty reports whether the rectangle has no visible area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Collapsed returns a zero-size rectangle anchored at r's origin.
// Inactive content views are parked with these bounds.
func (r Rect) Collapsed() Rect {
	return Rect{X: r.X, Y: r.Y}
}

// Size is the size of the window content area.
type Size struct {
	Width, Height int
}

// ContentBounds returns the area left for page content once the bezel
// is removed from every side of the window.
func ContentBounds(window Size, bezel int) Rect {
	if bezel < 0 {
		bezel = 0
	}
	return Rect{
		X:      bezel,
		Y:      bezel,
		Width:  max(window.Width-bezel*2, 0),
		Height: max(window.Height-bezel*2, 0),
	}
}
