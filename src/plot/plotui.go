package plot

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PlotUI collects items during the builder callback and answers queries
// about the plot while it is being built. All position queries are answered
// by the previous frame's transform, because the current frame's bounds are
// not resolved until after the callback returns.
type PlotUI struct {
	items            []Item
	nextAutoColorIdx int
	lastTransform    Transform
	input            *Input
}

// autoColor steps the hue by the golden ratio so consecutive unstyled items
// get well-separated colors.
func (ui *PlotUI) autoColor() drawing.Color {
	i := ui.nextAutoColorIdx
	ui.nextAutoColorIdx++
	golden := (math.Sqrt(5) - 1) / 2
	h := math.Mod(float64(i)*golden, 1)
	return hsvColor(h, 0.85, 0.75)
}

// hsvColor converts hue [0,1), saturation and value to a color.
func hsvColor(h, s, v float64) drawing.Color {
	sector := h * 6
	i := int(sector) % 6
	f := sector - math.Floor(sector)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return drawing.Color{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}

// PlotBounds returns the bounds as they were in the last frame. On the very
// first frame these are the configured minimum bounds (or a unit viewport
// around the origin); bounds do not change until the plot is drawn.
func (ui *PlotUI) PlotBounds() Bounds { return ui.lastTransform.Bounds }

// PlotHovered reports whether the pointer is over the plot area.
func (ui *PlotUI) PlotHovered() bool { return ui.input.PointerInside }

// PointerCoordinate returns the pointer position in data coordinates.
// The drag delta is subtracted to stay in sync with the frame-delayed
// transform.
func (ui *PlotUI) PointerCoordinate() (Value, bool) {
	if !ui.input.PointerInside {
		return Value{}, false
	}
	pos := ui.input.PointerPos
	if ui.input.Dragging {
		pos.X -= ui.input.DragDelta.X
		pos.Y -= ui.input.DragDelta.Y
	}
	return ui.PlotFromScreen(pos), true
}

// PointerDragDelta returns the current drag delta in data coordinates.
func (ui *PlotUI) PointerDragDelta() (dx, dy float64) {
	dv := ui.lastTransform.DvalueDpos()
	return float64(ui.input.DragDelta.X) * dv[0], float64(ui.input.DragDelta.Y) * dv[1]
}

// ScreenFromPlot maps data coordinates to screen coordinates (last frame's
// transform).
func (ui *PlotUI) ScreenFromPlot(v Value) Pos { return ui.lastTransform.PositionFromValue(v) }

// PlotFromScreen maps screen coordinates to data coordinates (last frame's
// transform).
func (ui *PlotUI) PlotFromScreen(p Pos) Value { return ui.lastTransform.ValueFromPosition(p) }

// Line adds a data line; empty lines are dropped.
func (ui *PlotUI) Line(l *Line) {
	if len(l.Series) == 0 && l.fn == nil {
		return
	}
	if l.color.A == 0 {
		l.color = ui.autoColor()
	}
	ui.items = append(ui.items, l)
}

// Points adds a scatter; empty series are dropped.
func (ui *PlotUI) Points(pts *Points) {
	if len(pts.Series) == 0 {
		return
	}
	if pts.color.A == 0 {
		pts.color = ui.autoColor()
	}
	ui.items = append(ui.items, pts)
}

// Polygon adds a polygon outline; empty ones are dropped.
func (ui *PlotUI) Polygon(poly *Polygon) {
	if len(poly.Series) == 0 {
		return
	}
	if poly.color.A == 0 {
		poly.color = ui.autoColor()
	}
	ui.items = append(ui.items, poly)
}

// Text adds a label; empty text is dropped.
func (ui *PlotUI) Text(t *Text) {
	if t.Text == "" {
		return
	}
	ui.items = append(ui.items, t)
}

// BarChart adds a bar chart; empty ones are dropped.
func (ui *PlotUI) BarChart(b *BarChart) {
	if len(b.Bars) == 0 {
		return
	}
	if b.color.A == 0 {
		b.color = ui.autoColor()
	}
	ui.items = append(ui.items, b)
}

// BoxPlot adds a box plot; empty ones are dropped.
func (ui *PlotUI) BoxPlot(b *BoxPlot) {
	if len(b.Boxes) == 0 {
		return
	}
	if b.color.A == 0 {
		b.color = ui.autoColor()
	}
	ui.items = append(ui.items, b)
}

// Image adds an image item.
func (ui *PlotUI) Image(im *PlotImage) {
	ui.items = append(ui.items, im)
}

// HLine adds a horizontal marker line.
func (ui *PlotUI) HLine(h *HLine) {
	if h.color.A == 0 {
		h.color = ui.autoColor()
	}
	ui.items = append(ui.items, h)
}

// VLine adds a vertical marker line.
func (ui *PlotUI) VLine(v *VLine) {
	if v.color.A == 0 {
		v.color = ui.autoColor()
	}
	ui.items = append(ui.items, v)
}

// Arrows adds an arrows item; empty ones are dropped.
func (ui *PlotUI) Arrows(a *Arrows) {
	if len(a.Origins) == 0 || len(a.Tips) == 0 {
		return
	}
	if a.color.A == 0 {
		a.color = ui.autoColor()
	}
	ui.items = append(ui.items, a)
}
