package layout

// SplitVertical divides area top-to-bottom with default spacing, margin,
// and flex settings.
func SplitVertical(area Rect, constraints ...Constraint) []Rect {
	return Vertical(constraints...).Split(area)
}

// SplitHorizontal divides area left-to-right with default spacing,
// margin, and flex settings.
func SplitHorizontal(area Rect, constraints ...Constraint) []Rect {
	return Horizontal(constraints...).Split(area)
}

// Center returns a w-by-h Rect centered inside area. Dimensions larger
// than the area are clamped to it.
func Center(area Rect, w, h int) Rect {
	w = clampRange(w, 0, area.Width)
	h = clampRange(h, 0, area.Height)
	return Rect{
		X:      area.X + (area.Width-w)/2,
		Y:      area.Y + (area.Height-h)/2,
		Width:  w,
		Height: h,
	}
}
