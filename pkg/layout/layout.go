// Package layout splits rectangular terminal areas into non-overlapping
// sub-regions according to declarative constraints, in the style of
// ratatui's layout system, and builds an automatic near-square grid
// partitioner on top of that splitter.
//
// A Layout owns a direction, an ordered constraint list, and optional
// spacing, margin, and flex settings:
//
//	rows := layout.Vertical(layout.Ratio{1, 3}, layout.Ratio{1, 3}, layout.Ratio{1, 3}).
//		Spacing(1).
//		Split(area)
//
// Spacing is carved out of the extent before any proportional division,
// so regions shrink as spacing grows and the split never exceeds the
// input area. All arithmetic is integer; rounding is deterministic.
package layout

import "sort"

// direction selects the axis a Layout divides. The Vertical and
// Horizontal constructors are the only way to choose one.
type direction int

const (
	dirHorizontal direction = iota
	dirVertical
)

// Flex controls where extent left over after all constraints are
// satisfied ends up.
type Flex int

const (
	// FlexStart leaves leftover extent after the last region.
	FlexStart Flex = iota
	// FlexEnd leaves leftover extent before the first region.
	FlexEnd
	// FlexCenter splits leftover extent across both edges.
	FlexCenter
	// FlexSpaceBetween widens the gaps between regions.
	FlexSpaceBetween
	// FlexSpaceAround puts equal slack around every region, half-width
	// at the edges.
	FlexSpaceAround
	// FlexSpaceEvenly puts equal slack in every gap, edges included.
	FlexSpaceEvenly
)

// Layout divides a Rect into one region per constraint.
type Layout struct {
	dir         direction
	constraints []Constraint
	flex        Flex
	spacing     int
	margin      int
}

// Vertical returns a Layout that divides an area top-to-bottom.
func Vertical(constraints ...Constraint) *Layout {
	return &Layout{dir: dirVertical, constraints: constraints}
}

// Horizontal returns a Layout that divides an area left-to-right.
func Horizontal(constraints ...Constraint) *Layout {
	return &Layout{dir: dirHorizontal, constraints: constraints}
}

// Spacing sets the gap, in cells, inserted between adjacent regions.
// Negative values are treated as zero.
func (l *Layout) Spacing(s int) *Layout {
	l.spacing = nonNeg(s)
	return l
}

// Margin sets an outer margin, in cells, applied to all four sides of
// the input area before dividing. Negative values are treated as zero.
func (l *Layout) Margin(m int) *Layout {
	l.margin = nonNeg(m)
	return l
}

// Flex sets how leftover extent is placed.
func (l *Layout) Flex(f Flex) *Layout {
	l.flex = f
	return l
}

// Split divides area into len(constraints) non-overlapping Rects, in
// constraint order. With no constraints it returns nil. The regions
// never extend past the input area.
func (l *Layout) Split(area Rect) []Rect {
	n := len(l.constraints)
	if n == 0 {
		return nil
	}

	inner := area.Inner(l.margin)
	extent := inner.Height
	if l.dir == dirHorizontal {
		extent = inner.Width
	}

	gaps := 0
	if n > 1 {
		gaps = l.spacing * (n - 1)
	}
	avail := nonNeg(extent - gaps)

	sizes := l.solve(avail)

	used := 0
	for _, s := range sizes {
		used += s
	}
	starts := l.place(sizes, nonNeg(avail-used))

	// Gap totals beyond the extent would push trailing regions past the
	// area; clamp so every region stays inside it.
	rects := make([]Rect, n)
	for i, s := range sizes {
		start := clampRange(starts[i], 0, extent)
		s = clampRange(s, 0, extent-start)
		if l.dir == dirHorizontal {
			rects[i] = Rect{X: inner.X + start, Y: inner.Y, Width: s, Height: inner.Height}
		} else {
			rects[i] = Rect{X: inner.X, Y: inner.Y + start, Width: inner.Width, Height: s}
		}
	}
	return rects
}

// solve turns the constraint list into one size per region, summing to
// at most avail. Fixed kinds (Length, Percentage, Ratio) allocate first;
// the elastic kinds (Fill, Min, Max) share what is left.
func (l *Layout) solve(avail int) []int {
	n := len(l.constraints)
	sizes := make([]int, n)
	weights := make([]int, n)
	fixed := 0

	for i, c := range l.constraints {
		switch v := c.(type) {
		case Length:
			sizes[i] = nonNeg(v.Value)
			fixed += sizes[i]
		case Percentage:
			sizes[i] = avail * clampRange(v.Value, 0, 100) / 100
			fixed += sizes[i]
		case Ratio:
			if v.Den > 0 {
				sizes[i] = avail * nonNeg(v.Num) / v.Den
			}
			fixed += sizes[i]
		case Fill:
			weights[i] = v.Weight
			if weights[i] <= 0 {
				weights[i] = 1
			}
		case Min, Max:
			weights[i] = 1
		}
	}

	l.shareElastic(sizes, weights, nonNeg(avail-fixed))
	fitToAvail(sizes, avail)
	return sizes
}

// shareElastic distributes spare extent among the elastic constraints by
// weight, then settles Min floors and Max caps. A settled constraint is
// pinned to its bound and drops out of the sharing; the pool is re-shared
// among the rest, so extent refused by a Max cap flows to the remaining
// elastic regions. Each round pins at least one constraint, so the loop
// runs at most once per elastic item.
func (l *Layout) shareElastic(sizes, weights []int, spare int) {
	n := len(l.constraints)
	pinned := make([]int, n)
	isPinned := make([]bool, n)

	for round := 0; round <= n; round++ {
		pool := spare
		weightTotal := 0
		for i, w := range weights {
			if w == 0 {
				continue
			}
			if isPinned[i] {
				pool -= pinned[i]
			} else {
				weightTotal += w
			}
		}
		pool = nonNeg(pool)
		if weightTotal == 0 {
			break
		}

		shares := shareByWeight(pool, weights, isPinned, weightTotal)

		violated := false
		for i, c := range l.constraints {
			if weights[i] == 0 || isPinned[i] {
				continue
			}
			switch v := c.(type) {
			case Min:
				if floor := nonNeg(v.Value); shares[i] < floor {
					pinned[i] = floor
					isPinned[i] = true
					violated = true
				}
			case Max:
				if ceil := nonNeg(v.Value); shares[i] > ceil {
					pinned[i] = ceil
					isPinned[i] = true
					violated = true
				}
			}
		}
		if !violated {
			for i := range sizes {
				if weights[i] == 0 {
					continue
				}
				if isPinned[i] {
					sizes[i] = pinned[i]
				} else {
					sizes[i] = shares[i]
				}
			}
			return
		}
	}

	// Everything elastic ended up pinned.
	for i := range sizes {
		if isPinned[i] {
			sizes[i] = pinned[i]
		}
	}
}

// shareByWeight divides pool among the unpinned weighted items using
// largest-remainder rounding, so the shares sum to exactly pool.
func shareByWeight(pool int, weights []int, isPinned []bool, weightTotal int) []int {
	type leftover struct{ idx, rem int }

	shares := make([]int, len(weights))
	given := 0
	var leftovers []leftover
	for i, w := range weights {
		if w == 0 || isPinned[i] {
			continue
		}
		shares[i] = pool * w / weightTotal
		given += shares[i]
		leftovers = append(leftovers, leftover{i, pool * w % weightTotal})
	}
	sort.SliceStable(leftovers, func(a, b int) bool {
		return leftovers[a].rem > leftovers[b].rem
	})
	for k := 0; k < pool-given && k < len(leftovers); k++ {
		shares[leftovers[k].idx]++
	}
	return shares
}

// fitToAvail proportionally shrinks over-allocated sizes so their sum
// does not exceed avail, giving rounding slack to the last region.
func fitToAvail(sizes []int, avail int) {
	total := 0
	for _, s := range sizes {
		total += s
	}
	if total <= avail {
		return
	}
	if avail <= 0 {
		for i := range sizes {
			sizes[i] = 0
		}
		return
	}
	scaled := 0
	for i := range sizes {
		sizes[i] = sizes[i] * avail / total
		scaled += sizes[i]
	}
	sizes[len(sizes)-1] += avail - scaled
}

// place converts sizes into start offsets along the axis. Every gap gets
// the configured spacing; the flex mode decides where the surplus goes.
func (l *Layout) place(sizes []int, surplus int) []int {
	n := len(sizes)
	lead, between := l.flexGaps(surplus, n)

	starts := make([]int, n)
	pos := lead
	for i, s := range sizes {
		starts[i] = pos
		pos += s + l.spacing
		if i < len(between) {
			pos += between[i]
		}
	}
	return starts
}

// flexGaps returns the leading offset and the extra slack inserted after
// each region (length n-1, or nil when no inner slack applies).
func (l *Layout) flexGaps(surplus, n int) (int, []int) {
	switch l.flex {
	case FlexEnd:
		return surplus, nil
	case FlexCenter:
		return surplus / 2, nil
	case FlexSpaceBetween:
		if n < 2 {
			return 0, nil
		}
		return 0, evenGaps(surplus, n-1)
	case FlexSpaceAround:
		half := surplus / (2 * n)
		between := make([]int, n-1)
		for i := range between {
			between[i] = 2 * half
		}
		return half, between
	case FlexSpaceEvenly:
		gaps := evenGaps(surplus, n+1)
		return gaps[0], gaps[1:n]
	default: // FlexStart
		return 0, nil
	}
}

// evenGaps splits total into k near-equal parts, larger parts first.
func evenGaps(total, k int) []int {
	gaps := make([]int, k)
	base := total / k
	extra := total % k
	for i := range gaps {
		gaps[i] = base
		if i < extra {
			gaps[i]++
		}
	}
	return gaps
}
