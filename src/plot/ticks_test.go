package plot

import (
	"math"
	"testing"
)

func TestTickStepRespectsMinSpacing(t *testing.T) {
	tr := NewTransform(NewRect(0, 0, 100, 100), NewBounds(0, 1000, 0, 1000), false, false)
	ticks := generateTicks(&tr, 0, nil)
	if len(ticks) == 0 {
		t.Fatalf("expected ticks")
	}
	// data per px = 10, so the smallest allowed step is 100 data units
	// (10 px spacing).
	dp := tr.DposDvalue()[0]
	for i := 1; i < len(ticks); i++ {
		spacing := (ticks[i].Value - ticks[i-1].Value) * dp
		if spacing < minTickSpacingPx-1e-6 {
			t.Fatalf("tick spacing %v px below minimum %v", spacing, minTickSpacingPx)
		}
	}
}

func TestTickEnumerationCoversBounds(t *testing.T) {
	tr := NewTransform(NewRect(0, 0, 1000, 100), NewBounds(0.95, 10.05, 0, 1), false, false)
	ticks := generateTicks(&tr, 0, nil)
	if len(ticks) == 0 {
		t.Fatalf("expected ticks")
	}
	if ticks[0].Value > tr.Bounds.Min[0]+1e-9 && ticks[0].Value-tr.Bounds.Min[0] > 1 {
		t.Fatalf("first tick %v far from bounds min %v", ticks[0].Value, tr.Bounds.Min[0])
	}
	last := ticks[len(ticks)-1].Value
	if last > tr.Bounds.Max[0] {
		t.Fatalf("tick %v beyond bounds max %v", last, tr.Bounds.Max[0])
	}
}

func TestTickTiersIncreaseAlpha(t *testing.T) {
	// 100 px frame over 0..1000: step 100, so multiples of 1000 are
	// medium (n%10==0) and everything else thin.
	tr := NewTransform(NewRect(0, 0, 100, 100), NewBounds(0, 1000, 0, 1000), false, false)
	ticks := generateTicks(&tr, 0, nil)

	var thin, medium float32 = -1, -1
	for _, tick := range ticks {
		n := int64(math.Round(tick.Value / 100))
		if n%10 == 0 {
			medium = tick.LineAlpha
		} else {
			thin = tick.LineAlpha
		}
	}
	if thin < 0 || medium < 0 {
		t.Fatalf("missing tick tiers: thin=%v medium=%v", thin, medium)
	}
	if medium <= thin {
		t.Fatalf("medium tier alpha %v not above thin %v", medium, thin)
	}
	if medium > maxLineAlpha || thin > maxLineAlpha {
		t.Fatalf("alpha above ceiling: thin=%v medium=%v", thin, medium)
	}
}

func TestRemapClampMonotonic(t *testing.T) {
	prev := float32(-1)
	for v := float32(0); v <= 400; v += 5 {
		a := remapClamp(v, minTickSpacingPx, maxLineSpacingPx, 0, maxLineAlpha)
		if a < prev {
			t.Fatalf("alpha decreased at spacing %v: %v < %v", v, a, prev)
		}
		if a < 0 || a > maxLineAlpha {
			t.Fatalf("alpha %v outside [0,%v]", a, maxLineAlpha)
		}
		prev = a
	}
	if remapClamp(minTickSpacingPx, minTickSpacingPx, maxLineSpacingPx, 0, maxLineAlpha) != 0 {
		t.Fatalf("alpha at minimum spacing must be 0")
	}
	if remapClamp(1000, minTickSpacingPx, maxLineSpacingPx, 0, maxLineAlpha) != maxLineAlpha {
		t.Fatalf("alpha above ceiling spacing must clamp to %v", maxLineAlpha)
	}
}

func TestLabelsThinOutBeforeGridLines(t *testing.T) {
	// At 24 px spacing grid lines are visible but labels are not yet.
	a := remapClamp(24, minTickSpacingPx, maxLineSpacingPx, 0, maxLineAlpha)
	if a <= 0 {
		t.Fatalf("grid line invisible at 24 px")
	}
	l := remapClamp(24, minLabelSpacingPx, maxLabelSpacingPx, 0, maxLabelAlpha)
	if l != 0 {
		t.Fatalf("label visible at 24 px: alpha %v", l)
	}
}

func TestEmptyFormatterSuppressesLabelOnly(t *testing.T) {
	// Large pixel spacing so labels would normally appear.
	tr := NewTransform(NewRect(0, 0, 1000, 1000), NewBounds(0, 10, 0, 10), false, false)
	ticks := generateTicks(&tr, 0, func(v float64) string { return "" })

	sawLine := false
	for _, tick := range ticks {
		if tick.Label != "" || tick.LabelAlpha != 0 {
			t.Fatalf("label not suppressed: %+v", tick)
		}
		if tick.LineAlpha > 0 {
			sawLine = true
		}
	}
	if !sawLine {
		t.Fatalf("suppressing labels must not suppress grid lines")
	}
}

func TestCustomFormatter(t *testing.T) {
	tr := NewTransform(NewRect(0, 0, 1000, 1000), NewBounds(0, 10, 0, 10), false, false)
	ticks := generateTicks(&tr, 0, func(v float64) string { return "v" })
	sawLabel := false
	for _, tick := range ticks {
		if tick.LabelAlpha > 0 {
			sawLabel = true
			if tick.Label != "v" {
				t.Fatalf("formatter ignored: got %q", tick.Label)
			}
		}
	}
	if !sawLabel {
		t.Fatalf("expected at least one labeled tick")
	}
}

func TestInvalidBoundsProduceNoTicks(t *testing.T) {
	tr := Transform{Frame: NewRect(0, 0, 100, 100), Bounds: NothingBounds()}
	if ticks := generateTicks(&tr, 0, nil); ticks != nil {
		t.Fatalf("expected no ticks for invalid bounds, got %d", len(ticks))
	}
	// Zero span guarded too.
	tr = Transform{Frame: NewRect(0, 0, 100, 100), Bounds: NewBounds(5, 5, 0, 1)}
	if ticks := generateTicks(&tr, 0, nil); ticks != nil {
		t.Fatalf("expected no ticks for zero span, got %d", len(ticks))
	}
}

func TestFormatAxisValue(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1.5, "1.5"},
		{-2, "-2"},
		{0.123456789, "0.12346"},
		{100, "100"},
	}
	for _, c := range cases {
		if got := formatAxisValue(c.in); got != c.want {
			t.Fatalf("formatAxisValue(%v): got %q want %q", c.in, got, c.want)
		}
	}
}
