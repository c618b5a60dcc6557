package layout

import "testing"

// area builds a Rect at the origin with the given size.
func area(w, h int) Rect {
	return Rect{X: 0, Y: 0, Width: w, Height: h}
}

// assertRectsEqual fails the test if got and want differ.
func assertRectsEqual(t *testing.T, label string, got, want []Rect) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: len(got)=%d, want %d\ngot:  %v\nwant: %v", label, len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s[%d]: got %v, want %v", label, i, got[i], want[i])
		}
	}
}

// --- Fill ---

func TestSingleFillFillsArea(t *testing.T) {
	rects := Horizontal(Fill{1}).Split(area(100, 50))
	assertRectsEqual(t, "single fill", rects, []Rect{
		{X: 0, Y: 0, Width: 100, Height: 50},
	})
}

func TestTwoFillsSplitEvenly(t *testing.T) {
	rects := Horizontal(Fill{1}, Fill{1}).Split(area(100, 50))
	assertRectsEqual(t, "two fills", rects, []Rect{
		{X: 0, Y: 0, Width: 50, Height: 50},
		{X: 50, Y: 0, Width: 50, Height: 50},
	})
}

func TestFillWeights(t *testing.T) {
	rects := Horizontal(Fill{2}, Fill{1}).Split(area(90, 30))
	assertRectsEqual(t, "fill 2:1", rects, []Rect{
		{X: 0, Y: 0, Width: 60, Height: 30},
		{X: 60, Y: 0, Width: 30, Height: 30},
	})
}

func TestFillZeroWeightCountsAsOne(t *testing.T) {
	rects := Horizontal(Fill{0}, Fill{0}).Split(area(80, 20))
	assertRectsEqual(t, "fill weight 0", rects, []Rect{
		{X: 0, Y: 0, Width: 40, Height: 20},
		{X: 40, Y: 0, Width: 40, Height: 20},
	})
}

func TestFillRoundingIsExact(t *testing.T) {
	// 101 does not divide by 2; largest-remainder gives the odd cell away
	// deterministically and the total stays exact.
	rects := Horizontal(Fill{1}, Fill{1}).Split(area(101, 10))
	if total := rects[0].Width + rects[1].Width; total != 101 {
		t.Errorf("fills should cover the full width: got %d", total)
	}
}

func TestManyFills(t *testing.T) {
	cs := make([]Constraint, 10)
	for i := range cs {
		cs[i] = Fill{1}
	}
	rects := Horizontal(cs...).Split(area(100, 50))
	total := 0
	for _, r := range rects {
		if r.Width != 10 {
			t.Errorf("expected width 10, got %d", r.Width)
		}
		total += r.Width
	}
	if total != 100 {
		t.Errorf("total width should be 100, got %d", total)
	}
}

// --- Length ---

func TestLengthThenFill(t *testing.T) {
	rects := Horizontal(Length{10}, Fill{1}).Split(area(100, 50))
	assertRectsEqual(t, "length+fill", rects, []Rect{
		{X: 0, Y: 0, Width: 10, Height: 50},
		{X: 10, Y: 0, Width: 90, Height: 50},
	})
}

func TestLengthsLeaveSurplusAtEnd(t *testing.T) {
	rects := Horizontal(Length{20}, Length{30}).Split(area(100, 50))
	assertRectsEqual(t, "two lengths", rects, []Rect{
		{X: 0, Y: 0, Width: 20, Height: 50},
		{X: 20, Y: 0, Width: 30, Height: 50},
	})
}

func TestNegativeLengthClamped(t *testing.T) {
	rects := Horizontal(Length{-5}, Fill{1}).Split(area(100, 50))
	if rects[0].Width != 0 {
		t.Errorf("negative length should clamp to 0, got %d", rects[0].Width)
	}
	if rects[1].Width != 100 {
		t.Errorf("fill should take the full width, got %d", rects[1].Width)
	}
}

// --- Percentage ---

func TestPercentages(t *testing.T) {
	rects := Horizontal(Percentage{30}, Percentage{70}).Split(area(100, 50))
	assertRectsEqual(t, "pct 30/70", rects, []Rect{
		{X: 0, Y: 0, Width: 30, Height: 50},
		{X: 30, Y: 0, Width: 70, Height: 50},
	})
}

func TestPercentageClamped(t *testing.T) {
	rects := Horizontal(Percentage{150}).Split(area(100, 50))
	if rects[0].Width != 100 {
		t.Errorf("150%% should clamp to the full width, got %d", rects[0].Width)
	}
	rects = Horizontal(Percentage{-10}).Split(area(100, 50))
	if rects[0].Width != 0 {
		t.Errorf("negative percentage should clamp to 0, got %d", rects[0].Width)
	}
}

// --- Ratio ---

func TestRatios(t *testing.T) {
	rects := Horizontal(Ratio{1, 3}, Ratio{2, 3}).Split(area(90, 30))
	assertRectsEqual(t, "ratio 1/3+2/3", rects, []Rect{
		{X: 0, Y: 0, Width: 30, Height: 30},
		{X: 30, Y: 0, Width: 60, Height: 30},
	})
}

func TestRatioTruncates(t *testing.T) {
	// 100/3 truncates to 33; the leftover cell stays at the end.
	rects := Horizontal(Ratio{1, 3}, Ratio{1, 3}, Ratio{1, 3}).Split(area(100, 10))
	for i, r := range rects {
		if r.Width != 33 {
			t.Errorf("rects[%d].Width = %d, want 33", i, r.Width)
		}
	}
	if rects[2].Right() != 99 {
		t.Errorf("last ratio should end at 99, got %d", rects[2].Right())
	}
}

func TestRatioZeroDenominator(t *testing.T) {
	rects := Horizontal(Ratio{1, 0}).Split(area(100, 50))
	if rects[0].Width != 0 {
		t.Errorf("Ratio(1/0) should allocate nothing, got %d", rects[0].Width)
	}
}

// --- Min and Max ---

func TestMinGrowsIntoSpare(t *testing.T) {
	rects := Horizontal(Min{10}).Split(area(100, 50))
	if rects[0].Width != 100 {
		t.Errorf("a lone Min should absorb the whole width, got %d", rects[0].Width)
	}
}

func TestMinFloors(t *testing.T) {
	rects := Horizontal(Min{20}, Min{20}).Split(area(50, 10))
	for i, r := range rects {
		if r.Width < 20 {
			t.Errorf("rects[%d] violates Min(20): width %d", i, r.Width)
		}
	}
}

func TestMaxCaps(t *testing.T) {
	rects := Horizontal(Max{50}).Split(area(100, 50))
	if rects[0].Width != 50 {
		t.Errorf("Max(50) should cap at 50, got %d", rects[0].Width)
	}
}

func TestMaxFreesSpaceForFill(t *testing.T) {
	rects := Horizontal(Max{30}, Fill{1}).Split(area(100, 50))
	if rects[0].Width != 30 {
		t.Errorf("Max(30): got %d", rects[0].Width)
	}
	if rects[1].Width != 70 {
		t.Errorf("fill should absorb what the cap refuses: got %d, want 70", rects[1].Width)
	}
}

func TestMinBesideFill(t *testing.T) {
	// Min and Fill share equally until the floor binds.
	rects := Horizontal(Min{40}, Fill{1}).Split(area(60, 10))
	if rects[0].Width < 40 {
		t.Errorf("Min(40) violated: width %d", rects[0].Width)
	}
	if total := rects[0].Width + rects[1].Width; total > 60 {
		t.Errorf("over-allocated: %d > 60", total)
	}
}

// --- Spacing ---

func TestSpacingBetweenRegions(t *testing.T) {
	rects := Horizontal(Fill{1}, Fill{1}).Spacing(4).Split(area(104, 50))
	assertRectsEqual(t, "spacing", rects, []Rect{
		{X: 0, Y: 0, Width: 50, Height: 50},
		{X: 54, Y: 0, Width: 50, Height: 50},
	})
}

func TestSpacingVertical(t *testing.T) {
	rects := Vertical(Fill{1}, Fill{1}).Spacing(2).Split(area(80, 42))
	assertRectsEqual(t, "vertical spacing", rects, []Rect{
		{X: 0, Y: 0, Width: 80, Height: 20},
		{X: 0, Y: 22, Width: 80, Height: 20},
	})
}

func TestNegativeSpacingClamped(t *testing.T) {
	rects := Horizontal(Fill{1}, Fill{1}).Spacing(-5).Split(area(100, 50))
	if total := rects[0].Width + rects[1].Width; total != 100 {
		t.Errorf("negative spacing should act as zero, total %d", total)
	}
}

func TestSpacingExceedsExtent(t *testing.T) {
	rects := Horizontal(Fill{1}, Fill{1}).Spacing(200).Split(area(100, 50))
	for i, r := range rects {
		if r.Width != 0 {
			t.Errorf("rects[%d].Width should be 0, got %d", i, r.Width)
		}
		if r.Right() > 100 {
			t.Errorf("rects[%d] pushed past the area: %v", i, r)
		}
	}
}

// --- Margin ---

func TestMarginShrinksArea(t *testing.T) {
	rects := Horizontal(Fill{1}).Margin(5).Split(area(100, 50))
	assertRectsEqual(t, "margin", rects, []Rect{
		{X: 5, Y: 5, Width: 90, Height: 40},
	})
}

func TestOversizedMargin(t *testing.T) {
	rects := Horizontal(Fill{1}).Margin(60).Split(area(100, 50))
	if !rects[0].Empty() {
		t.Errorf("margin larger than the area should leave nothing, got %v", rects[0])
	}
}

func TestNegativeMarginClamped(t *testing.T) {
	rects := Horizontal(Fill{1}).Margin(-10).Split(area(100, 50))
	if rects[0].Width != 100 {
		t.Errorf("negative margin should act as zero, got width %d", rects[0].Width)
	}
}

// --- Direction ---

func TestVerticalSplit(t *testing.T) {
	rects := Vertical(Length{10}, Fill{1}).Split(area(80, 50))
	assertRectsEqual(t, "vertical", rects, []Rect{
		{X: 0, Y: 0, Width: 80, Height: 10},
		{X: 0, Y: 10, Width: 80, Height: 40},
	})
}

func TestVerticalPercentages(t *testing.T) {
	rects := Vertical(Percentage{25}, Percentage{75}).Split(area(80, 100))
	assertRectsEqual(t, "vertical pct", rects, []Rect{
		{X: 0, Y: 0, Width: 80, Height: 25},
		{X: 0, Y: 25, Width: 80, Height: 75},
	})
}

// --- Flex ---

func TestFlexStartIsDefault(t *testing.T) {
	rects := Horizontal(Length{30}).Split(area(100, 50))
	if rects[0].X != 0 {
		t.Errorf("FlexStart: X = %d, want 0", rects[0].X)
	}
}

func TestFlexEnd(t *testing.T) {
	rects := Horizontal(Length{30}).Flex(FlexEnd).Split(area(100, 50))
	if rects[0].X != 70 {
		t.Errorf("FlexEnd: X = %d, want 70", rects[0].X)
	}
}

func TestFlexCenter(t *testing.T) {
	rects := Horizontal(Length{30}).Flex(FlexCenter).Split(area(100, 50))
	if rects[0].X != 35 {
		t.Errorf("FlexCenter: X = %d, want 35", rects[0].X)
	}
}

func TestFlexSpaceBetween(t *testing.T) {
	rects := Horizontal(Length{10}, Length{10}, Length{10}).
		Flex(FlexSpaceBetween).Split(area(100, 50))
	wantX := []int{0, 45, 90}
	for i, r := range rects {
		if r.X != wantX[i] {
			t.Errorf("SpaceBetween[%d]: X = %d, want %d", i, r.X, wantX[i])
		}
	}
}

func TestFlexSpaceBetweenSingleRegion(t *testing.T) {
	rects := Horizontal(Length{30}).Flex(FlexSpaceBetween).Split(area(100, 50))
	if rects[0].X != 0 {
		t.Errorf("SpaceBetween with one region: X = %d, want 0", rects[0].X)
	}
}

func TestFlexSpaceEvenly(t *testing.T) {
	rects := Horizontal(Length{20}, Length{20}).
		Flex(FlexSpaceEvenly).Split(area(100, 50))
	if rects[0].X != 20 {
		t.Errorf("SpaceEvenly[0]: X = %d, want 20", rects[0].X)
	}
	if rects[1].X != 60 {
		t.Errorf("SpaceEvenly[1]: X = %d, want 60", rects[1].X)
	}
}

func TestFlexEndWithSpacing(t *testing.T) {
	rects := Horizontal(Length{10}, Length{10}).
		Flex(FlexEnd).Spacing(5).Split(area(100, 50))
	if rects[0].X != 75 {
		t.Errorf("FlexEnd+spacing [0].X = %d, want 75", rects[0].X)
	}
	if rects[1].X != 90 {
		t.Errorf("FlexEnd+spacing [1].X = %d, want 90", rects[1].X)
	}
}

// --- Mixed constraints ---

func TestLengthPercentageFill(t *testing.T) {
	rects := Horizontal(Length{20}, Percentage{30}, Fill{1}).Split(area(100, 50))
	assertRectsEqual(t, "len+pct+fill", rects, []Rect{
		{X: 0, Y: 0, Width: 20, Height: 50},
		{X: 20, Y: 0, Width: 30, Height: 50},
		{X: 50, Y: 0, Width: 50, Height: 50},
	})
}

func TestWeightedFillTrio(t *testing.T) {
	rects := Horizontal(Fill{1}, Fill{2}, Fill{1}).Split(area(80, 40))
	assertRectsEqual(t, "fills 1:2:1", rects, []Rect{
		{X: 0, Y: 0, Width: 20, Height: 40},
		{X: 20, Y: 0, Width: 40, Height: 40},
		{X: 60, Y: 0, Width: 20, Height: 40},
	})
}

func TestNoOverlapMixed(t *testing.T) {
	for _, l := range []*Layout{
		Horizontal(Fill{1}, Length{20}, Percentage{30}, Fill{2}),
		Vertical(Fill{1}, Length{5}, Percentage{20}, Fill{3}),
	} {
		rects := l.Split(area(200, 100))
		for i := 0; i < len(rects); i++ {
			for j := i + 1; j < len(rects); j++ {
				if inter := rects[i].Intersect(rects[j]); !inter.Empty() {
					t.Errorf("rects %d and %d overlap: %v", i, j, inter)
				}
			}
		}
	}
}

// --- Degenerate inputs ---

func TestNoConstraints(t *testing.T) {
	if rects := Horizontal().Split(area(100, 50)); rects != nil {
		t.Errorf("no constraints should yield nil, got %v", rects)
	}
}

func TestZeroSizeArea(t *testing.T) {
	rects := Horizontal(Fill{1}, Fill{1}).Split(area(0, 0))
	if len(rects) != 2 {
		t.Fatalf("expected 2 rects, got %d", len(rects))
	}
	for i, r := range rects {
		if !r.Empty() {
			t.Errorf("rects[%d] should be empty, got %v", i, r)
		}
	}
}

func TestOverAllocationShrinksToFit(t *testing.T) {
	rects := Horizontal(Length{80}, Length{80}).Split(area(100, 50))
	if total := rects[0].Width + rects[1].Width; total > 100 {
		t.Errorf("over-allocation must shrink to fit: total %d", total)
	}
}

func TestOffsetAreaPreserved(t *testing.T) {
	a := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	rects := Horizontal(Fill{1}, Fill{1}).Split(a)
	assertRectsEqual(t, "offset area", rects, []Rect{
		{X: 10, Y: 20, Width: 50, Height: 50},
		{X: 60, Y: 20, Width: 50, Height: 50},
	})
}

// --- Helpers ---

func TestSplitVerticalHelper(t *testing.T) {
	rects := SplitVertical(area(80, 100), Fill{1}, Fill{1})
	if rects[0].Height != 50 || rects[1].Height != 50 {
		t.Errorf("vertical helper: heights %d, %d, want 50, 50", rects[0].Height, rects[1].Height)
	}
}

func TestSplitHorizontalHelper(t *testing.T) {
	rects := SplitHorizontal(area(100, 80), Fill{1}, Fill{1})
	if rects[0].Width != 50 || rects[1].Width != 50 {
		t.Errorf("horizontal helper: widths %d, %d, want 50, 50", rects[0].Width, rects[1].Width)
	}
}

func TestCenterHelper(t *testing.T) {
	got := Center(Rect{X: 10, Y: 10, Width: 100, Height: 50}, 20, 10)
	want := Rect{X: 50, Y: 30, Width: 20, Height: 10}
	if got != want {
		t.Errorf("Center: got %v, want %v", got, want)
	}
}

func TestCenterClampsOversized(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 30, Height: 20}
	got := Center(a, 100, 100)
	if got != a {
		t.Errorf("oversized Center should clamp to the area: got %v", got)
	}
}
