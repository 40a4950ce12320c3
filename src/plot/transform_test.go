package plot

import (
	"math"
	"testing"
)

func approxEq(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func testFrame() Rect { return NewRect(0, 0, 100, 100) }

func TestPositionFromValueCorners(t *testing.T) {
	tr := NewTransform(testFrame(), NewBounds(0, 10, 0, 10), false, false)

	// Data min maps to bottom-left (screen y grows downward).
	p := tr.PositionFromValue(NewValue(0, 0))
	if p.X != 0 || p.Y != 100 {
		t.Fatalf("min corner: got (%v,%v) want (0,100)", p.X, p.Y)
	}
	p = tr.PositionFromValue(NewValue(10, 10))
	if p.X != 100 || p.Y != 0 {
		t.Fatalf("max corner: got (%v,%v) want (100,0)", p.X, p.Y)
	}
}

func TestRoundTrip(t *testing.T) {
	tr := NewTransform(NewRect(10, 20, 410, 320), NewBounds(-3, 17, 2, 9), false, false)
	values := []Value{
		NewValue(-3, 2), NewValue(17, 9), NewValue(0, 5), NewValue(4.321, 7.654),
	}
	for _, v := range values {
		got := tr.ValueFromPosition(tr.PositionFromValue(v))
		if !approxEq(got.X, v.X, 1e-4) || !approxEq(got.Y, v.Y, 1e-4) {
			t.Fatalf("round trip of %+v: got %+v", v, got)
		}
	}
}

func TestZoomKeepsAnchorFixed(t *testing.T) {
	for _, factor := range []float32{0.25, 0.5, 2, 3.7} {
		tr := NewTransform(testFrame(), NewBounds(0, 10, 0, 10), false, false)
		anchor := NewPos(30, 70)
		anchorValue := tr.ValueFromPosition(anchor)

		tr.Zoom(Splat(factor), anchor)

		back := tr.PositionFromValue(anchorValue)
		if !approxEq(float64(back.X), float64(anchor.X), 1e-3) ||
			!approxEq(float64(back.Y), float64(anchor.Y), 1e-3) {
			t.Fatalf("factor %v: anchor moved from %+v to %+v", factor, anchor, back)
		}
	}
}

func TestZoomInShrinksSpan(t *testing.T) {
	tr := NewTransform(testFrame(), NewBounds(0, 10, 0, 10), false, false)
	tr.Zoom(Splat(2), NewPos(50, 50))
	if !approxEq(tr.Bounds.Width(), 5, 1e-9) || !approxEq(tr.Bounds.Height(), 5, 1e-9) {
		t.Fatalf("zoom by 2: got span %v x %v want 5 x 5", tr.Bounds.Width(), tr.Bounds.Height())
	}
}

func TestTranslateBounds(t *testing.T) {
	tr := NewTransform(testFrame(), NewBounds(0, 10, 0, 10), false, false)
	// 10 px right and 10 px down means +1 in x and -1 in y data units.
	tr.TranslateBounds(NewVec2(10, 10))
	want := NewBounds(1, 11, -1, 9)
	if !approxEq(tr.Bounds.Min[0], want.Min[0], 1e-9) || !approxEq(tr.Bounds.Max[0], want.Max[0], 1e-9) ||
		!approxEq(tr.Bounds.Min[1], want.Min[1], 1e-9) || !approxEq(tr.Bounds.Max[1], want.Max[1], 1e-9) {
		t.Fatalf("translate: got %+v want %+v", tr.Bounds, want)
	}
}

func TestCenterAxes(t *testing.T) {
	tr := NewTransform(testFrame(), NewBounds(2, 10, -1, 5), true, false)
	if tr.Bounds.Min[0] != -10 || tr.Bounds.Max[0] != 10 {
		t.Fatalf("centered x: got [%v,%v] want [-10,10]", tr.Bounds.Min[0], tr.Bounds.Max[0])
	}
	// y untouched
	if tr.Bounds.Min[1] != -1 || tr.Bounds.Max[1] != 5 {
		t.Fatalf("y changed by x centering: %+v", tr.Bounds)
	}

	tr = NewTransform(testFrame(), NewBounds(2, 10, -1, 5), false, true)
	if tr.Bounds.Min[1] != -5 || tr.Bounds.Max[1] != 5 {
		t.Fatalf("centered y: got [%v,%v] want [-5,5]", tr.Bounds.Min[1], tr.Bounds.Max[1])
	}
}

func TestInvalidBoundsFallBack(t *testing.T) {
	tr := NewTransform(testFrame(), NothingBounds(), false, false)
	if !tr.Bounds.IsValid() {
		t.Fatalf("transform kept invalid bounds: %+v", tr.Bounds)
	}
	want := NewBounds(-1, 1, -1, 1)
	if tr.Bounds != want {
		t.Fatalf("fallback bounds: got %+v want %+v", tr.Bounds, want)
	}
}

func TestSetAspect(t *testing.T) {
	// Square frame, data twice as wide as tall: aspect 2.
	tr := NewTransform(testFrame(), NewBounds(0, 20, 0, 10), false, false)
	if !approxEq(tr.Aspect(), 2, 1e-9) {
		t.Fatalf("aspect: got %v want 2", tr.Aspect())
	}

	adj := tr
	adj.SetAspect(1, false)
	if !approxEq(adj.Aspect(), 1, 1e-9) {
		t.Fatalf("set aspect 1: got %v", adj.Aspect())
	}
	// preserve_y=false adjusts y, keeps x.
	if adj.Bounds.Min[0] != 0 || adj.Bounds.Max[0] != 20 {
		t.Fatalf("x span changed: %+v", adj.Bounds)
	}
	// y grew symmetrically around its center.
	if !approxEq(adj.Bounds.Center().Y, 5, 1e-9) {
		t.Fatalf("y center moved: %+v", adj.Bounds)
	}

	adj = tr
	adj.SetAspect(1, true)
	if !approxEq(adj.Aspect(), 1, 1e-9) {
		t.Fatalf("set aspect preserve y: got %v", adj.Aspect())
	}
	if adj.Bounds.Min[1] != 0 || adj.Bounds.Max[1] != 10 {
		t.Fatalf("y span changed with preserveY: %+v", adj.Bounds)
	}
}

func TestSetAspectIdempotent(t *testing.T) {
	tr := NewTransform(testFrame(), NewBounds(0, 20, 0, 10), false, false)
	tr.SetAspect(1.5, false)
	once := tr.Bounds
	tr.SetAspect(1.5, false)
	if tr.Bounds != once {
		t.Fatalf("repeated SetAspect changed bounds: %+v vs %+v", tr.Bounds, once)
	}
}

func TestDvalueDposInverse(t *testing.T) {
	tr := NewTransform(NewRect(0, 0, 200, 50), NewBounds(0, 10, -5, 5), false, false)
	dp := tr.DposDvalue()
	dv := tr.DvalueDpos()
	for i := 0; i < 2; i++ {
		if !approxEq(dp[i]*dv[i], 1, 1e-9) {
			t.Fatalf("axis %d: dpos*dvalue = %v, want 1", i, dp[i]*dv[i])
		}
	}
	if dp[1] >= 0 {
		t.Fatalf("y dpos_dvalue must be negative, got %v", dp[1])
	}
}
