package plot

import (
	"fmt"
	"math"
	"strings"
)

// HoverLine selects which ruler lines follow the pointer.
type HoverLine int

const (
	HoverLineNone HoverLine = iota
	HoverLineX
	HoverLineY
	HoverLineXY
)

// showXLine reports whether a vertical ruler at the pointer's x is drawn.
func (h HoverLine) showXLine() bool { return h == HoverLineX || h == HoverLineXY }

// showYLine reports whether a horizontal ruler at the pointer's y is drawn.
func (h HoverLine) showYLine() bool { return h == HoverLineY || h == HoverLineXY }

// HoverFormatter builds the tooltip text for a hovered value. name is the
// hovered item's name, or empty for the plain pointer-position fallback.
type HoverFormatter func(mode HoverLine, name string, value Value) string

// hoverContext bundles what items need to render their hover feedback.
type hoverContext struct {
	transform *Transform
	mode      HoverLine
	showLabel bool
	formatter HoverFormatter
}

// interactRadiusSq is the squared pixel radius within which an item counts
// as hovered.
const interactRadiusSq = 16 * 16

// runHoverQuery finds the item closest to the pointer and lets it draw its
// hover feedback; when nothing is within reach it falls back to plain rulers
// at the pointer's data-space value.
//
// The scan keeps the first strictly-smaller distance, so on exact ties the
// earlier-inserted item wins; insertion order makes the query deterministic.
func runHoverQuery(items []Item, pointer Pos, hc *hoverContext, shapes *[]Shape) {
	if hc.mode == HoverLineNone && !hc.showLabel {
		return
	}

	var winner Item
	var winnerElem ClosestElem
	for _, item := range items {
		elem, ok := item.FindClosest(pointer, hc.transform)
		if !ok {
			continue
		}
		if winner == nil || elem.DistSq < winnerElem.DistSq {
			winner = item
			winnerElem = elem
		}
	}

	if winner != nil && winnerElem.DistSq <= interactRadiusSq {
		winner.OnHover(winnerElem, hc, shapes)
		return
	}

	value := hc.transform.ValueFromPosition(pointer)
	rulersAtValue(pointer, value, "", hc, shapes)
}

// rulersAtValue draws the configured ruler lines through pos and, when
// enabled, the formatted tooltip text next to it.
func rulersAtValue(pos Pos, value Value, name string, hc *hoverContext, shapes *[]Shape) {
	frame := hc.transform.Frame
	if hc.mode.showXLine() {
		*shapes = append(*shapes, SegmentShape{
			From:  Pos{X: pos.X, Y: frame.Min.Y},
			To:    Pos{X: pos.X, Y: frame.Max.Y},
			Width: 1,
			Color: grayAlpha(0.7),
		})
	}
	if hc.mode.showYLine() {
		*shapes = append(*shapes, SegmentShape{
			From:  Pos{X: frame.Min.X, Y: pos.Y},
			To:    Pos{X: frame.Max.X, Y: pos.Y},
			Width: 1,
			Color: grayAlpha(0.7),
		})
	}
	if !hc.showLabel {
		return
	}
	text := hc.formatter(hc.mode, name, value)
	if text == "" {
		return
	}
	*shapes = append(*shapes, TextShape{
		Pos:    Pos{X: pos.X + 3, Y: pos.Y - 2},
		Text:   text,
		Color:  grayAlpha(1),
		Anchor: AnchorBottomLeft,
	})
}

// DefaultHoverFormatter renders "x = ..." / "y = ..." lines for the enabled
// ruler axes, prefixed with the item name when present. Decimal counts are
// chosen so values stay within six significant digits.
func DefaultHoverFormatter(mode HoverLine, name string, value Value) string {
	var b strings.Builder
	if name != "" {
		b.WriteString(name)
		b.WriteString("\n")
	}
	xDecimals := numDecimalsWithMaxDigits(value.X, 6)
	yDecimals := numDecimalsWithMaxDigits(value.Y, 6)
	switch mode {
	case HoverLineX:
		fmt.Fprintf(&b, "x = %.*f", xDecimals, value.X)
	case HoverLineY:
		fmt.Fprintf(&b, "y = %.*f", yDecimals, value.Y)
	case HoverLineXY:
		fmt.Fprintf(&b, "x = %.*f\ny = %.*f", xDecimals, value.X, yDecimals, value.Y)
	default:
		return ""
	}
	return b.String()
}

// numDecimalsWithMaxDigits returns how many decimals to print so the value
// keeps at most maxDigits significant digits.
func numDecimalsWithMaxDigits(value float64, maxDigits int) int {
	magnitude := math.Log10(math.Abs(value))
	intDigits := 1
	if magnitude > 0 {
		intDigits = int(magnitude) + 1
	}
	d := maxDigits - intDigits
	if d < 0 {
		return 0
	}
	return d
}
