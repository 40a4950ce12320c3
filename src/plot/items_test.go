package plot

import (
	"testing"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

func TestSeriesClosestKeepsEarlierIndexOnTie(t *testing.T) {
	tr := NewTransform(testFrame(), NewBounds(0, 10, 0, 10), false, false)
	// Points at (4,5) and (6,5) are equidistant from the pointer at (5,5).
	series := []Value{NewValue(4, 5), NewValue(6, 5)}
	elem, ok := seriesClosest(series, tr.PositionFromValue(NewValue(5, 5)), &tr)
	if !ok || elem.Index != 0 {
		t.Fatalf("tie should keep the earlier index, got %d ok=%v", elem.Index, ok)
	}
}

func TestLineFuncBoundsAndInitialize(t *testing.T) {
	l := NewLineFunc("f", func(x float64) float64 { return 2 * x }, 11)
	if got := l.GetBounds(); got.IsValid() {
		t.Fatalf("uninitialized function line must not report bounds: %+v", got)
	}
	l.Initialize(0, 10)
	if len(l.Series) != 11 {
		t.Fatalf("sample count: got %d want 11", len(l.Series))
	}
	first, last := l.Series[0], l.Series[10]
	if first.X != 0 || first.Y != 0 || last.X != 10 || last.Y != 20 {
		t.Fatalf("samples: first %+v last %+v", first, last)
	}
}

func TestHLineBoundsYOnly(t *testing.T) {
	b := NewHLine("h", 3).GetBounds()
	if b.IsValid() {
		t.Fatalf("y-only bounds must not be fully valid: %+v", b)
	}
	if b.Min[1] != 3 || b.Max[1] != 3 {
		t.Fatalf("y extent: got [%v,%v] want [3,3]", b.Min[1], b.Max[1])
	}
	// Merged into real bounds it only widens y.
	m := NewBounds(0, 1, 0, 1)
	m.Merge(b)
	if m != NewBounds(0, 1, 0, 3) {
		t.Fatalf("merge: got %+v", m)
	}
}

func TestVLineBoundsXOnly(t *testing.T) {
	b := NewVLine("v", 7).GetBounds()
	if b.IsValid() {
		t.Fatalf("x-only bounds must not be fully valid: %+v", b)
	}
	m := NewBounds(0, 1, 0, 1)
	m.Merge(b)
	if m != NewBounds(0, 7, 0, 1) {
		t.Fatalf("merge: got %+v", m)
	}
}

func TestBarChartBoundsIncludeBaseline(t *testing.T) {
	b := NewBarChart("bars", []Bar{
		{Argument: 1, Value: 5, Width: 1},
		{Argument: 2, Value: -3, Width: 1},
	})
	got := b.GetBounds()
	// Bars always reach down (or up) to y = 0.
	if got != NewBounds(0.5, 2.5, -3, 5) {
		t.Fatalf("bounds: got %+v", got)
	}
}

func TestBarChartClosestInsideIsZero(t *testing.T) {
	tr := NewTransform(testFrame(), NewBounds(0, 10, 0, 10), false, false)
	b := NewBarChart("bars", []Bar{{Argument: 5, Value: 8, Width: 2}})
	// Screen point inside the bar's rectangle.
	elem, ok := b.FindClosest(tr.PositionFromValue(NewValue(5, 4)), &tr)
	if !ok || elem.DistSq != 0 {
		t.Fatalf("pointer inside bar: got dist %v ok=%v", elem.DistSq, ok)
	}
	if elem.Value.X != 5 || elem.Value.Y != 8 {
		t.Fatalf("hovered value: got %+v", elem.Value)
	}
}

func TestBoxPlotBoundsSpanWhiskers(t *testing.T) {
	b := NewBoxPlot("box", []BoxElem{{
		X: 2,
		Spread: BoxSpread{
			LowerWhisker: -1, Quartile1: 1, Median: 2, Quartile3: 3, UpperWhisker: 6,
		},
		Width: 1,
	}})
	got := b.GetBounds()
	if got != NewBounds(1.5, 2.5, -1, 6) {
		t.Fatalf("bounds: got %+v", got)
	}
}

func TestArrowsBoundsSpanOriginsAndTips(t *testing.T) {
	a := NewArrows("a",
		[]Value{NewValue(0, 0)},
		[]Value{NewValue(3, 4)},
	)
	if got := a.GetBounds(); got != NewBounds(0, 3, 0, 4) {
		t.Fatalf("bounds: got %+v", got)
	}
}

func TestArrowsShapeCount(t *testing.T) {
	tr := NewTransform(testFrame(), NewBounds(0, 10, 0, 10), false, false)
	a := NewArrows("a",
		[]Value{NewValue(1, 1), NewValue(5, 5)},
		[]Value{NewValue(2, 2), NewValue(5, 5)}, // second arrow has zero length
	)
	var shapes []Shape
	a.AppendShapes(&tr, &shapes)
	// Shaft plus two head wings for the first arrow, bare shaft for the
	// degenerate one.
	if len(shapes) != 4 {
		t.Fatalf("shape count: got %d want 4", len(shapes))
	}
}

func TestHighlightDoublesLineWidth(t *testing.T) {
	tr := NewTransform(testFrame(), NewBounds(0, 10, 0, 10), false, false)
	l := NewLine("l", []Value{NewValue(0, 0), NewValue(10, 10)})

	var plain []Shape
	l.AppendShapes(&tr, &plain)
	l.Highlight()
	var bold []Shape
	l.AppendShapes(&tr, &bold)

	pw := plain[0].(SegmentShape).Width
	bw := bold[0].(SegmentShape).Width
	if bw != pw*2 {
		t.Fatalf("highlight width: got %v want %v", bw, pw*2)
	}
}

func TestAutoColorsAreDistinct(t *testing.T) {
	ui := &PlotUI{}
	seen := map[drawing.Color]bool{}
	for i := 0; i < 12; i++ {
		c := ui.autoColor()
		if seen[c] {
			t.Fatalf("auto color %d repeats %+v", i, c)
		}
		seen[c] = true
	}
}
