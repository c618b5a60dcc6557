package layout

// Rect is an axis-aligned rectangular region measured in terminal cells.
// X and Y locate the top-left corner; Width and Height are never negative
// in rects produced by this package.
type Rect struct {
	X, Y, Width, Height int
}

// Right returns the X coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Area returns the number of cells covered by r.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell at (px, py) lies inside r.
// The right and bottom edges are exclusive.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.Right() && py >= r.Y && py < r.Bottom()
}

// Inner returns r shrunk by margin cells on every side. A negative margin
// is treated as zero; if the margin swallows the rect entirely the result
// has zero width or height.
func (r Rect) Inner(margin int) Rect {
	if margin < 0 {
		margin = 0
	}
	return Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  nonNeg(r.Width - 2*margin),
		Height: nonNeg(r.Height - 2*margin),
	}
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersect returns the region covered by both r and other, or a zero
// Rect when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x1 := maxInt(r.X, other.X)
	y1 := maxInt(r.Y, other.Y)
	x2 := minInt(r.Right(), other.Right())
	y2 := minInt(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Union returns the smallest Rect covering both r and other. An empty
// rect contributes nothing, so Union with a zero Rect returns the other
// operand unchanged.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x1 := minInt(r.X, other.X)
	y1 := minInt(r.Y, other.Y)
	x2 := maxInt(r.Right(), other.Right())
	y2 := maxInt(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

func nonNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
