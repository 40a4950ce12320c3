package plot

import (
	"math"
	"strconv"
)

// AxisFormatter converts an axis value to its label. Returning an empty
// string suppresses the label (but not the grid line) at that tick, which
// is how discrete or datetime domains thin out labels at coarse zoom.
type AxisFormatter func(value float64) string

// Tick is one generated grid line/axis label candidate.
type Tick struct {
	// Value is the data-space coordinate on the tick's axis.
	Value float64
	// Pos is the screen position of the tick at the label cross-axis
	// location.
	Pos Pos
	// LineAlpha is the grid line opacity in [0,0.15]; zero means the line
	// is skipped.
	LineAlpha float32
	// LabelAlpha is the label opacity in [0,0.4]; zero means no label.
	LabelAlpha float32
	// Label is the formatted text, empty when LabelAlpha is zero or the
	// formatter suppressed it.
	Label string
}

// Tick generation constants. The remap shapes (clamped linear, monotonic in
// spacing) matter; the exact endpoints are tunable policy.
const (
	tickBase = 10

	// minTickSpacingPx is the smallest on-screen spacing between adjacent
	// thin grid lines; the step size is the smallest power of tickBase
	// that respects it.
	minTickSpacingPx = 6.0

	maxLineSpacingPx = 300.0
	maxLineAlpha     = 0.15

	// Labels fade in later than grid lines, so text thins out faster as
	// ticks get dense.
	minLabelSpacingPx = 40.0
	maxLabelSpacingPx = 150.0
	maxLabelAlpha     = 0.4
)

// generateTicks produces the grid/label ticks for one axis (0 = x, 1 = y)
// of the given transform. formatter may be nil, selecting the default
// significant-decimal formatter.
func generateTicks(t *Transform, axis int, formatter AxisFormatter) []Tick {
	bounds := t.Bounds
	if !bounds.IsValid() {
		return nil
	}

	dvalue := t.DvalueDpos()[axis]
	if dvalue < 0 {
		dvalue = -dvalue
	}
	if dvalue == 0 || math.IsInf(dvalue, 0) || math.IsNaN(dvalue) {
		// Zero data span (or broken frame); nothing sensible to draw.
		return nil
	}

	// Smallest power of tickBase whose screen spacing is at least
	// minTickSpacingPx.
	stepSize := math.Pow(tickBase, math.Ceil(math.Log(minTickSpacingPx*dvalue)/math.Log(tickBase)))
	if stepSize <= 0 || math.IsInf(stepSize, 0) || math.IsNaN(stepSize) {
		return nil
	}

	dpos := t.DposDvalue()[axis]
	if dpos < 0 {
		dpos = -dpos
	}
	stepPx := float32(dpos * stepSize)

	// Cross-axis position for labels: on the zero axis when visible,
	// otherwise clamped to the nearest edge of the bounds.
	cross := clampF(0, bounds.Min[1-axis], bounds.Max[1-axis])

	var ticks []Tick
	first := math.Floor(bounds.Min[axis] / stepSize)
	for i := 0; ; i++ {
		value := stepSize * (first + float64(i))
		if value > bounds.Max[axis] {
			break
		}

		var v Value
		if axis == 0 {
			v = Value{X: value, Y: cross}
		} else {
			v = Value{X: cross, Y: value}
		}

		// Thick lines at multiples of base^2, medium at multiples of
		// base; each tier counts as proportionally wider spacing and so
		// renders more opaque.
		n := int64(math.Round(value / stepSize))
		spacingPx := stepPx
		if n%(tickBase*tickBase) == 0 {
			spacingPx = stepPx * tickBase * tickBase
		} else if n%tickBase == 0 {
			spacingPx = stepPx * tickBase
		}

		lineAlpha := remapClamp(spacingPx, minTickSpacingPx, maxLineSpacingPx, 0, maxLineAlpha)
		labelAlpha := remapClamp(spacingPx, minLabelSpacingPx, maxLabelSpacingPx, 0, maxLabelAlpha)

		tick := Tick{
			Value:      value,
			Pos:        t.PositionFromValue(v),
			LineAlpha:  lineAlpha,
			LabelAlpha: labelAlpha,
		}
		if labelAlpha > 0 {
			if formatter != nil {
				tick.Label = formatter(value)
			} else {
				tick.Label = formatAxisValue(value)
			}
			if tick.Label == "" {
				tick.LabelAlpha = 0
			}
		}
		ticks = append(ticks, tick)
	}
	return ticks
}

// appendAxisShapes converts one axis's ticks into grid line and label
// shapes.
func appendAxisShapes(shapes *[]Shape, t *Transform, axis int, formatter AxisFormatter) {
	for _, tick := range generateTicks(t, axis, formatter) {
		if tick.LineAlpha > 0 {
			p0 := tick.Pos
			p1 := tick.Pos
			if axis == 0 {
				p0.Y = t.Frame.Min.Y
				p1.Y = t.Frame.Max.Y
			} else {
				p0.X = t.Frame.Min.X
				p1.X = t.Frame.Max.X
			}
			*shapes = append(*shapes, SegmentShape{
				From: p0, To: p1, Width: 1, Color: grayAlpha(tick.LineAlpha),
			})
		}

		if tick.LabelAlpha > 0 && tick.Label != "" {
			pos := Pos{X: tick.Pos.X + 1, Y: tick.Pos.Y}
			// Keep labels inside the frame even when the cross axis is
			// off-screen.
			if axis == 0 {
				pos.Y = clamp32(pos.Y, t.Frame.Min.Y+1, t.Frame.Max.Y-textLineHeight)
			} else {
				pos.X = clamp32(pos.X, t.Frame.Min.X+1, t.Frame.Max.X-2)
			}
			*shapes = append(*shapes, TextShape{
				Pos:    pos,
				Text:   tick.Label,
				Color:  grayAlpha(tick.LabelAlpha),
				Anchor: AnchorBottomLeft,
			})
		}
	}
}

// textLineHeight approximates one label line for edge clamping; hosts with
// real font metrics may draw slightly differently, which is fine.
const textLineHeight = 13

// formatAxisValue is the default axis label: the value rounded to at most
// 5 significant decimals, trailing zeros trimmed.
func formatAxisValue(v float64) string {
	r := roundToDecimals(v, 5)
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// roundToDecimals rounds v to the given number of decimal places.
func roundToDecimals(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// remapClamp linearly maps v from [from0,from1] to [to0,to1], clamping to
// the target interval. The result is monotonically non-decreasing in v.
func remapClamp(v, from0, from1, to0, to1 float32) float32 {
	if v <= from0 {
		return to0
	}
	if v >= from1 {
		return to1
	}
	return to0 + (v-from0)/(from1-from0)*(to1-to0)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
