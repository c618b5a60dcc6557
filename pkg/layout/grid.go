package layout

import "math"

// GridShape returns the column and row counts used to arrange n items in
// a near-square grid: cols is ceil(sqrt(n)) and rows is ceil(n/cols), so
// cols*rows >= n and the shape never differs by more than one column from
// square. n < 1 yields (0, 0).
func GridShape(n int) (cols, rows int) {
	if n < 1 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = int(math.Ceil(float64(n) / float64(cols)))
	return cols, rows
}

// AutoGrid partitions area into exactly n cells arranged in a near-square
// grid, returned in row-major order (left-to-right, then top-to-bottom).
// spacing cells separate adjacent cells along both axes and are carved
// out of the area before division, so cells shrink as spacing grows and
// every cell stays within area.
//
// When the grid shape overshoots (cols*rows > n) the trailing cells of
// the last row are dropped, so the result always has length n. n <= 0
// returns nil. The call is pure: identical inputs produce identical,
// freshly allocated results.
func AutoGrid(area Rect, n, spacing int) []Rect {
	if n <= 0 {
		return nil
	}

	cols, rows := GridShape(n)

	rowShares := make([]Constraint, rows)
	for i := range rowShares {
		rowShares[i] = Ratio{1, rows}
	}
	colShares := make([]Constraint, cols)
	for i := range colShares {
		colShares[i] = Ratio{1, cols}
	}

	bands := Vertical(rowShares...).Spacing(spacing).Split(area)

	cells := make([]Rect, 0, n)
	for _, band := range bands {
		for _, cell := range Horizontal(colShares...).Spacing(spacing).Split(band) {
			if len(cells) == n {
				return cells
			}
			cells = append(cells, cell)
		}
	}
	return cells
}
