package plot

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ClosestElem is the result of an item's nearest-element query: the element's
// data-space value, its squared screen distance to the pointer, and the index
// of the element within the item.
type ClosestElem struct {
	Value  Value
	DistSq float32
	Index  int
}

// Item is the capability contract every plottable type satisfies. The engine
// is agnostic to concrete shapes beyond it: bounds feed auto-fitting,
// FindClosest feeds the hover query, AppendShapes produces the draw list.
type Item interface {
	// Name identifies the item in the legend and hover tooltip; empty
	// names are anonymous (no legend entry, no tooltip prefix).
	Name() string

	// Color returns the item's base color.
	Color() drawing.Color

	// GetBounds returns the data-space bounding box, or the nothing
	// sentinel for items that should not influence auto-bounds on an axis.
	GetBounds() Bounds

	// Initialize resolves any function-defined series against the concrete
	// x domain before drawing.
	Initialize(minX, maxX float64)

	// FindClosest returns the element nearest to the pointer in screen
	// space, or ok=false if the item has nothing to hit.
	FindClosest(pointer Pos, t *Transform) (ClosestElem, bool)

	// AppendShapes appends the item's draw commands for this frame.
	AppendShapes(t *Transform, shapes *[]Shape)

	// OnHover draws the item's hover marker/rulers/tooltip for the winning
	// element.
	OnHover(elem ClosestElem, hc *hoverContext, shapes *[]Shape)

	// Highlight marks the item for emphasized drawing this frame.
	Highlight()
	// Highlighted reports whether the item is highlighted.
	Highlighted() bool
}

// itemBase carries the fields shared by every concrete item.
type itemBase struct {
	name        string
	color       drawing.Color
	highlighted bool
}

func (b *itemBase) Name() string            { return b.name }
func (b *itemBase) Color() drawing.Color    { return b.color }
func (b *itemBase) Highlight()              { b.highlighted = true }
func (b *itemBase) Highlighted() bool       { return b.highlighted }
func (b *itemBase) Initialize(_, _ float64) {}

// seriesBounds returns the bounding box of a point series.
func seriesBounds(series []Value) Bounds {
	b := NothingBounds()
	for _, v := range series {
		b.Extend(v)
	}
	return b
}

// seriesClosest scans a point series for the smallest squared screen
// distance to the pointer. Ties keep the earlier index.
func seriesClosest(series []Value, pointer Pos, t *Transform) (ClosestElem, bool) {
	found := false
	var best ClosestElem
	for i, v := range series {
		p := t.PositionFromValue(v)
		d := distSq(p, pointer)
		if !found || d < best.DistSq {
			found = true
			best = ClosestElem{Value: v, DistSq: d, Index: i}
		}
	}
	return best, found
}

func distSq(a, b Pos) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// ----------------------------------------------------------------------------

// Line is a polyline through a series of points, optionally defined by a
// function of x resolved against the visible domain at draw time.
type Line struct {
	itemBase
	Series []Value
	Width  float32

	fn        func(x float64) float64
	fnSamples int
}

// NewLine returns a line through the given points.
func NewLine(name string, series []Value) *Line {
	return &Line{itemBase: itemBase{name: name}, Series: series, Width: 1.5}
}

// NewLineFunc returns a line defined by y = f(x), sampled across the visible
// x range with the given number of points when the plot is drawn.
func NewLineFunc(name string, f func(x float64) float64, samples int) *Line {
	if samples < 2 {
		samples = 2
	}
	return &Line{itemBase: itemBase{name: name}, Width: 1.5, fn: f, fnSamples: samples}
}

// SetColor sets the stroke color and returns the line for chaining.
func (l *Line) SetColor(c drawing.Color) *Line { l.color = c; return l }

// SetWidth sets the stroke width and returns the line for chaining.
func (l *Line) SetWidth(w float32) *Line { l.Width = w; return l }

// Initialize samples function-defined lines over the concrete x range.
func (l *Line) Initialize(minX, maxX float64) {
	if l.fn == nil {
		return
	}
	l.Series = l.Series[:0]
	step := (maxX - minX) / float64(l.fnSamples-1)
	for i := 0; i < l.fnSamples; i++ {
		x := minX + float64(i)*step
		l.Series = append(l.Series, Value{X: x, Y: l.fn(x)})
	}
}

// GetBounds returns the series bounding box. A function line that has not
// been initialized yet reports nothing, so the x domain it is sampled over
// never feeds back into auto-bounds.
func (l *Line) GetBounds() Bounds {
	if l.fn != nil {
		return NothingBounds()
	}
	return seriesBounds(l.Series)
}

// FindClosest returns the nearest series point.
func (l *Line) FindClosest(pointer Pos, t *Transform) (ClosestElem, bool) {
	return seriesClosest(l.Series, pointer, t)
}

// AppendShapes draws the polyline.
func (l *Line) AppendShapes(t *Transform, shapes *[]Shape) {
	w := l.Width
	if l.highlighted {
		w *= 2
	}
	for i := 1; i < len(l.Series); i++ {
		*shapes = append(*shapes, SegmentShape{
			From:  t.PositionFromValue(l.Series[i-1]),
			To:    t.PositionFromValue(l.Series[i]),
			Width: w,
			Color: l.color,
		})
	}
}

// OnHover draws rulers and a marker for the closest point.
func (l *Line) OnHover(elem ClosestElem, hc *hoverContext, shapes *[]Shape) {
	pointer := hc.transform.PositionFromValue(elem.Value)
	*shapes = append(*shapes, CircleShape{Center: pointer, Radius: 3, Fill: l.color})
	rulersAtValue(pointer, elem.Value, l.name, hc, shapes)
}

// ----------------------------------------------------------------------------

// MarkerShape selects how Points are drawn.
type MarkerShape int

const (
	MarkerCircle MarkerShape = iota
	MarkerSquare
	MarkerDiamond
	MarkerCross
	MarkerPlus
)

// Points is a scatter of markers.
type Points struct {
	itemBase
	Series []Value
	Radius float32
	Shape  MarkerShape
}

// NewPoints returns a scatter item over the given points.
func NewPoints(name string, series []Value) *Points {
	return &Points{itemBase: itemBase{name: name}, Series: series, Radius: 2}
}

// SetColor sets the marker color and returns the item for chaining.
func (p *Points) SetColor(c drawing.Color) *Points { p.color = c; return p }

// SetRadius sets the marker radius and returns the item for chaining.
func (p *Points) SetRadius(r float32) *Points { p.Radius = r; return p }

// SetShape sets the marker shape and returns the item for chaining.
func (p *Points) SetShape(s MarkerShape) *Points { p.Shape = s; return p }

// GetBounds returns the series bounding box.
func (p *Points) GetBounds() Bounds { return seriesBounds(p.Series) }

// FindClosest returns the nearest marker.
func (p *Points) FindClosest(pointer Pos, t *Transform) (ClosestElem, bool) {
	return seriesClosest(p.Series, pointer, t)
}

// AppendShapes draws one marker per point.
func (p *Points) AppendShapes(t *Transform, shapes *[]Shape) {
	r := p.Radius
	if p.highlighted {
		r *= 2
	}
	for _, v := range p.Series {
		c := t.PositionFromValue(v)
		switch p.Shape {
		case MarkerSquare:
			*shapes = append(*shapes, RectShape{
				Rect: NewRect(c.X-r, c.Y-r, c.X+r, c.Y+r),
				Fill: p.color,
			})
		case MarkerDiamond:
			*shapes = append(*shapes,
				SegmentShape{From: Pos{c.X - r, c.Y}, To: Pos{c.X, c.Y - r}, Width: 1, Color: p.color},
				SegmentShape{From: Pos{c.X, c.Y - r}, To: Pos{c.X + r, c.Y}, Width: 1, Color: p.color},
				SegmentShape{From: Pos{c.X + r, c.Y}, To: Pos{c.X, c.Y + r}, Width: 1, Color: p.color},
				SegmentShape{From: Pos{c.X, c.Y + r}, To: Pos{c.X - r, c.Y}, Width: 1, Color: p.color},
			)
		case MarkerCross:
			*shapes = append(*shapes,
				SegmentShape{From: Pos{c.X - r, c.Y - r}, To: Pos{c.X + r, c.Y + r}, Width: 1, Color: p.color},
				SegmentShape{From: Pos{c.X - r, c.Y + r}, To: Pos{c.X + r, c.Y - r}, Width: 1, Color: p.color},
			)
		case MarkerPlus:
			*shapes = append(*shapes,
				SegmentShape{From: Pos{c.X - r, c.Y}, To: Pos{c.X + r, c.Y}, Width: 1, Color: p.color},
				SegmentShape{From: Pos{c.X, c.Y - r}, To: Pos{c.X, c.Y + r}, Width: 1, Color: p.color},
			)
		default:
			*shapes = append(*shapes, CircleShape{Center: c, Radius: r, Fill: p.color})
		}
	}
}

// OnHover draws rulers and an enlarged marker for the closest point.
func (p *Points) OnHover(elem ClosestElem, hc *hoverContext, shapes *[]Shape) {
	pos := hc.transform.PositionFromValue(elem.Value)
	*shapes = append(*shapes, CircleShape{Center: pos, Radius: p.Radius + 2, Fill: p.color})
	rulersAtValue(pos, elem.Value, p.name, hc, shapes)
}

// ----------------------------------------------------------------------------

// Polygon is a closed convex outline through a series of vertices.
type Polygon struct {
	itemBase
	Series []Value
	Width  float32
}

// NewPolygon returns a polygon through the given vertices.
func NewPolygon(name string, series []Value) *Polygon {
	return &Polygon{itemBase: itemBase{name: name}, Series: series, Width: 1.5}
}

// SetColor sets the outline color and returns the polygon for chaining.
func (p *Polygon) SetColor(c drawing.Color) *Polygon { p.color = c; return p }

// GetBounds returns the vertex bounding box.
func (p *Polygon) GetBounds() Bounds { return seriesBounds(p.Series) }

// FindClosest returns the nearest vertex.
func (p *Polygon) FindClosest(pointer Pos, t *Transform) (ClosestElem, bool) {
	return seriesClosest(p.Series, pointer, t)
}

// AppendShapes draws the closed outline.
func (p *Polygon) AppendShapes(t *Transform, shapes *[]Shape) {
	n := len(p.Series)
	if n < 2 {
		return
	}
	w := p.Width
	if p.highlighted {
		w *= 2
	}
	for i := 0; i < n; i++ {
		*shapes = append(*shapes, SegmentShape{
			From:  t.PositionFromValue(p.Series[i]),
			To:    t.PositionFromValue(p.Series[(i+1)%n]),
			Width: w,
			Color: p.color,
		})
	}
}

// OnHover draws rulers at the closest vertex.
func (p *Polygon) OnHover(elem ClosestElem, hc *hoverContext, shapes *[]Shape) {
	pos := hc.transform.PositionFromValue(elem.Value)
	rulersAtValue(pos, elem.Value, p.name, hc, shapes)
}

// ----------------------------------------------------------------------------

// Bar is one bar of a BarChart: a rectangle from the base line to Value,
// centered on Argument.
type Bar struct {
	Argument float64
	Value    float64
	Width    float64 // data-space width of the bar
}

// BarChart is a set of vertical bars standing on y = 0.
type BarChart struct {
	itemBase
	Bars []Bar
}

// NewBarChart returns a bar chart with the given bars.
func NewBarChart(name string, bars []Bar) *BarChart {
	return &BarChart{itemBase: itemBase{name: name}, Bars: bars}
}

// SetColor sets the fill color and returns the chart for chaining.
func (b *BarChart) SetColor(c drawing.Color) *BarChart { b.color = c; return b }

// barRect returns the data-space rectangle of one bar.
func barRect(bar Bar) Bounds {
	lo, hi := 0.0, bar.Value
	if hi < lo {
		lo, hi = hi, lo
	}
	return NewBounds(bar.Argument-bar.Width/2, bar.Argument+bar.Width/2, lo, hi)
}

// GetBounds returns the union of all bar rectangles.
func (b *BarChart) GetBounds() Bounds {
	bounds := NothingBounds()
	for _, bar := range b.Bars {
		bounds.Merge(barRect(bar))
	}
	return bounds
}

// FindClosest returns the bar whose screen rectangle is nearest to the
// pointer; a pointer inside a bar has distance zero.
func (b *BarChart) FindClosest(pointer Pos, t *Transform) (ClosestElem, bool) {
	found := false
	var best ClosestElem
	for i, bar := range b.Bars {
		r := screenRect(t, barRect(bar))
		d := distSqToRect(pointer, r)
		if !found || d < best.DistSq {
			found = true
			best = ClosestElem{Value: Value{X: bar.Argument, Y: bar.Value}, DistSq: d, Index: i}
		}
	}
	return best, found
}

// AppendShapes draws one rectangle per bar.
func (b *BarChart) AppendShapes(t *Transform, shapes *[]Shape) {
	for _, bar := range b.Bars {
		fill := b.color
		if b.highlighted {
			fill = withAlpha(fill, 1)
		} else {
			fill = withAlpha(fill, 0.85)
		}
		*shapes = append(*shapes, RectShape{
			Rect:        screenRect(t, barRect(bar)),
			Fill:        fill,
			Stroke:      b.color,
			StrokeWidth: 1,
		})
	}
}

// OnHover re-draws the hovered bar emphasized and shows its value.
func (b *BarChart) OnHover(elem ClosestElem, hc *hoverContext, shapes *[]Shape) {
	if elem.Index >= 0 && elem.Index < len(b.Bars) {
		*shapes = append(*shapes, RectShape{
			Rect:        screenRect(hc.transform, barRect(b.Bars[elem.Index])),
			Fill:        b.color,
			Stroke:      grayAlpha(1),
			StrokeWidth: 1.5,
		})
	}
	pos := hc.transform.PositionFromValue(elem.Value)
	rulersAtValue(pos, elem.Value, b.name, hc, shapes)
}

// screenRect maps a data-space rectangle to screen space.
func screenRect(t *Transform, b Bounds) Rect {
	p0 := t.PositionFromValue(Value{X: b.Min[0], Y: b.Min[1]})
	p1 := t.PositionFromValue(Value{X: b.Max[0], Y: b.Max[1]})
	return RectFromTwoPos(p0, p1)
}

// distSqToRect returns the squared distance from p to the rectangle (zero
// when inside).
func distSqToRect(p Pos, r Rect) float32 {
	cx := clamp32(p.X, r.Min.X, r.Max.X)
	cy := clamp32(p.Y, r.Min.Y, r.Max.Y)
	return distSq(p, Pos{X: cx, Y: cy})
}

// ----------------------------------------------------------------------------

// BoxSpread is the five-number summary drawn by one box-plot element.
type BoxSpread struct {
	LowerWhisker float64
	Quartile1    float64
	Median       float64
	Quartile3    float64
	UpperWhisker float64
}

// BoxElem is one box-and-whisker glyph at a given x position.
type BoxElem struct {
	X      float64
	Spread BoxSpread
	Width  float64 // data-space width of the box
}

// BoxPlot is a set of box-and-whisker elements.
type BoxPlot struct {
	itemBase
	Boxes []BoxElem
}

// NewBoxPlot returns a box plot with the given elements.
func NewBoxPlot(name string, boxes []BoxElem) *BoxPlot {
	return &BoxPlot{itemBase: itemBase{name: name}, Boxes: boxes}
}

// SetColor sets the box color and returns the plot for chaining.
func (b *BoxPlot) SetColor(c drawing.Color) *BoxPlot { b.color = c; return b }

// boxRect returns the data-space rectangle of the interquartile box.
func boxRect(e BoxElem) Bounds {
	return NewBounds(e.X-e.Width/2, e.X+e.Width/2, e.Spread.Quartile1, e.Spread.Quartile3)
}

// GetBounds spans whisker to whisker for every element.
func (b *BoxPlot) GetBounds() Bounds {
	bounds := NothingBounds()
	for _, e := range b.Boxes {
		r := boxRect(e)
		r.ExtendWithY(e.Spread.LowerWhisker)
		r.ExtendWithY(e.Spread.UpperWhisker)
		bounds.Merge(r)
	}
	return bounds
}

// FindClosest returns the element whose box rectangle is nearest.
func (b *BoxPlot) FindClosest(pointer Pos, t *Transform) (ClosestElem, bool) {
	found := false
	var best ClosestElem
	for i, e := range b.Boxes {
		d := distSqToRect(pointer, screenRect(t, boxRect(e)))
		if !found || d < best.DistSq {
			found = true
			best = ClosestElem{Value: Value{X: e.X, Y: e.Spread.Median}, DistSq: d, Index: i}
		}
	}
	return best, found
}

// AppendShapes draws box, median line and whiskers per element.
func (b *BoxPlot) AppendShapes(t *Transform, shapes *[]Shape) {
	w := float32(1)
	if b.highlighted {
		w = 2
	}
	for _, e := range b.Boxes {
		box := screenRect(t, boxRect(e))
		*shapes = append(*shapes, RectShape{
			Rect:        box,
			Fill:        withAlpha(b.color, 0.25),
			Stroke:      b.color,
			StrokeWidth: w,
		})
		med := t.PositionFromValue(Value{X: e.X, Y: e.Spread.Median})
		*shapes = append(*shapes, SegmentShape{
			From: Pos{X: box.Min.X, Y: med.Y}, To: Pos{X: box.Max.X, Y: med.Y}, Width: w * 1.5, Color: b.color,
		})
		lo := t.PositionFromValue(Value{X: e.X, Y: e.Spread.LowerWhisker})
		hi := t.PositionFromValue(Value{X: e.X, Y: e.Spread.UpperWhisker})
		q1 := t.PositionFromValue(Value{X: e.X, Y: e.Spread.Quartile1})
		q3 := t.PositionFromValue(Value{X: e.X, Y: e.Spread.Quartile3})
		*shapes = append(*shapes,
			SegmentShape{From: lo, To: q1, Width: w, Color: b.color},
			SegmentShape{From: q3, To: hi, Width: w, Color: b.color},
		)
	}
}

// OnHover shows the hovered element's median value.
func (b *BoxPlot) OnHover(elem ClosestElem, hc *hoverContext, shapes *[]Shape) {
	pos := hc.transform.PositionFromValue(elem.Value)
	rulersAtValue(pos, elem.Value, b.name, hc, shapes)
}

// ----------------------------------------------------------------------------

// PlotImage stretches a host-owned image over a data-space rectangle.
type PlotImage struct {
	itemBase
	Center Value
	// Width and Height are the data-space extents of the image.
	Width  float64
	Height float64
	// Ref is the host's image handle, passed through in the ImageShape.
	Ref interface{}
}

// NewPlotImage returns an image item centered on the given value.
func NewPlotImage(name string, center Value, width, height float64, ref interface{}) *PlotImage {
	return &PlotImage{itemBase: itemBase{name: name}, Center: center, Width: width, Height: height, Ref: ref}
}

// imageBounds returns the data-space rectangle covered by the image.
func (im *PlotImage) imageBounds() Bounds {
	return NewBounds(
		im.Center.X-im.Width/2, im.Center.X+im.Width/2,
		im.Center.Y-im.Height/2, im.Center.Y+im.Height/2,
	)
}

// GetBounds returns the covered rectangle.
func (im *PlotImage) GetBounds() Bounds { return im.imageBounds() }

// FindClosest measures distance to the image rectangle.
func (im *PlotImage) FindClosest(pointer Pos, t *Transform) (ClosestElem, bool) {
	d := distSqToRect(pointer, screenRect(t, im.imageBounds()))
	return ClosestElem{Value: im.Center, DistSq: d}, true
}

// AppendShapes emits the image draw command.
func (im *PlotImage) AppendShapes(t *Transform, shapes *[]Shape) {
	*shapes = append(*shapes, ImageShape{Rect: screenRect(t, im.imageBounds()), Ref: im.Ref})
}

// OnHover draws rulers at the image center.
func (im *PlotImage) OnHover(elem ClosestElem, hc *hoverContext, shapes *[]Shape) {
	pos := hc.transform.PositionFromValue(elem.Value)
	rulersAtValue(pos, elem.Value, im.name, hc, shapes)
}

// ----------------------------------------------------------------------------

// Text places a label at a data-space position.
type Text struct {
	itemBase
	Position Value
	Text     string
}

// NewText returns a text item.
func NewText(name string, pos Value, text string) *Text {
	return &Text{itemBase: itemBase{name: name}, Position: pos, Text: text}
}

// SetColor sets the text color and returns the item for chaining.
func (t *Text) SetColor(c drawing.Color) *Text { t.color = c; return t }

// GetBounds returns the anchor point.
func (t *Text) GetBounds() Bounds {
	b := NothingBounds()
	b.Extend(t.Position)
	return b
}

// FindClosest measures distance to the anchor point.
func (t *Text) FindClosest(pointer Pos, tr *Transform) (ClosestElem, bool) {
	p := tr.PositionFromValue(t.Position)
	return ClosestElem{Value: t.Position, DistSq: distSq(p, pointer)}, true
}

// AppendShapes emits the label.
func (t *Text) AppendShapes(tr *Transform, shapes *[]Shape) {
	col := t.color
	if col.A == 0 {
		col = grayAlpha(1)
	}
	*shapes = append(*shapes, TextShape{
		Pos:    tr.PositionFromValue(t.Position),
		Text:   t.Text,
		Color:  col,
		Anchor: AnchorCenter,
	})
}

// OnHover draws rulers at the anchor.
func (t *Text) OnHover(elem ClosestElem, hc *hoverContext, shapes *[]Shape) {
	pos := hc.transform.PositionFromValue(elem.Value)
	rulersAtValue(pos, elem.Value, t.name, hc, shapes)
}

// ----------------------------------------------------------------------------

// HLine is a horizontal line at a fixed y, spanning the full plot width.
// It extends auto-bounds on the y axis only.
type HLine struct {
	itemBase
	Y     float64
	Width float32
}

// NewHLine returns a horizontal line at y.
func NewHLine(name string, y float64) *HLine {
	return &HLine{itemBase: itemBase{name: name}, Y: y, Width: 1}
}

// SetColor sets the stroke color and returns the line for chaining.
func (h *HLine) SetColor(c drawing.Color) *HLine { h.color = c; return h }

// GetBounds spans only the y axis.
func (h *HLine) GetBounds() Bounds {
	b := NothingBounds()
	b.ExtendWithY(h.Y)
	return b
}

// FindClosest measures vertical screen distance to the line.
func (h *HLine) FindClosest(pointer Pos, t *Transform) (ClosestElem, bool) {
	p := t.PositionFromValue(Value{X: 0, Y: h.Y})
	d := pointer.Y - p.Y
	v := t.ValueFromPosition(Pos{X: pointer.X, Y: p.Y})
	return ClosestElem{Value: v, DistSq: d * d}, true
}

// AppendShapes draws the full-width segment.
func (h *HLine) AppendShapes(t *Transform, shapes *[]Shape) {
	w := h.Width
	if h.highlighted {
		w *= 2
	}
	y := t.PositionFromValue(Value{X: 0, Y: h.Y}).Y
	*shapes = append(*shapes, SegmentShape{
		From:  Pos{X: t.Frame.Min.X, Y: y},
		To:    Pos{X: t.Frame.Max.X, Y: y},
		Width: w,
		Color: h.color,
	})
}

// OnHover draws rulers at the pointer's x on the line.
func (h *HLine) OnHover(elem ClosestElem, hc *hoverContext, shapes *[]Shape) {
	pos := hc.transform.PositionFromValue(elem.Value)
	rulersAtValue(pos, elem.Value, h.name, hc, shapes)
}

// ----------------------------------------------------------------------------

// VLine is a vertical line at a fixed x, spanning the full plot height.
// It extends auto-bounds on the x axis only.
type VLine struct {
	itemBase
	X     float64
	Width float32
}

// NewVLine returns a vertical line at x.
func NewVLine(name string, x float64) *VLine {
	return &VLine{itemBase: itemBase{name: name}, X: x, Width: 1}
}

// SetColor sets the stroke color and returns the line for chaining.
func (v *VLine) SetColor(c drawing.Color) *VLine { v.color = c; return v }

// GetBounds spans only the x axis.
func (v *VLine) GetBounds() Bounds {
	b := NothingBounds()
	b.ExtendWithX(v.X)
	return b
}

// FindClosest measures horizontal screen distance to the line.
func (v *VLine) FindClosest(pointer Pos, t *Transform) (ClosestElem, bool) {
	p := t.PositionFromValue(Value{X: v.X, Y: 0})
	d := pointer.X - p.X
	val := t.ValueFromPosition(Pos{X: p.X, Y: pointer.Y})
	return ClosestElem{Value: val, DistSq: d * d}, true
}

// AppendShapes draws the full-height segment.
func (v *VLine) AppendShapes(t *Transform, shapes *[]Shape) {
	w := v.Width
	if v.highlighted {
		w *= 2
	}
	x := t.PositionFromValue(Value{X: v.X, Y: 0}).X
	*shapes = append(*shapes, SegmentShape{
		From:  Pos{X: x, Y: t.Frame.Min.Y},
		To:    Pos{X: x, Y: t.Frame.Max.Y},
		Width: w,
		Color: v.color,
	})
}

// OnHover draws rulers at the pointer's y on the line.
func (v *VLine) OnHover(elem ClosestElem, hc *hoverContext, shapes *[]Shape) {
	pos := hc.transform.PositionFromValue(elem.Value)
	rulersAtValue(pos, elem.Value, v.name, hc, shapes)
}

// ----------------------------------------------------------------------------

// Arrows draws one arrow per origin/tip pair.
type Arrows struct {
	itemBase
	Origins []Value
	Tips    []Value
}

// NewArrows returns an arrows item; origins and tips are matched by index.
func NewArrows(name string, origins, tips []Value) *Arrows {
	return &Arrows{itemBase: itemBase{name: name}, Origins: origins, Tips: tips}
}

// SetColor sets the stroke color and returns the item for chaining.
func (a *Arrows) SetColor(c drawing.Color) *Arrows { a.color = c; return a }

// GetBounds spans all origins and tips.
func (a *Arrows) GetBounds() Bounds {
	b := seriesBounds(a.Origins)
	b.Merge(seriesBounds(a.Tips))
	return b
}

// FindClosest returns the nearest origin.
func (a *Arrows) FindClosest(pointer Pos, t *Transform) (ClosestElem, bool) {
	return seriesClosest(a.Origins, pointer, t)
}

// AppendShapes draws shaft plus a two-segment head per arrow.
func (a *Arrows) AppendShapes(t *Transform, shapes *[]Shape) {
	n := len(a.Origins)
	if len(a.Tips) < n {
		n = len(a.Tips)
	}
	w := float32(1)
	if a.highlighted {
		w = 2
	}
	const headLen = 8.0
	for i := 0; i < n; i++ {
		from := t.PositionFromValue(a.Origins[i])
		to := t.PositionFromValue(a.Tips[i])
		*shapes = append(*shapes, SegmentShape{From: from, To: to, Width: w, Color: a.color})
		dx := float64(to.X - from.X)
		dy := float64(to.Y - from.Y)
		length := math.Hypot(dx, dy)
		if length < 1e-6 {
			continue
		}
		ux, uy := dx/length, dy/length
		// Head wings at +-30 degrees back from the tip.
		sin, cos := 0.5, math.Sqrt(3)/2
		left := Pos{
			X: to.X - float32(headLen*(ux*cos-uy*sin)),
			Y: to.Y - float32(headLen*(uy*cos+ux*sin)),
		}
		right := Pos{
			X: to.X - float32(headLen*(ux*cos+uy*sin)),
			Y: to.Y - float32(headLen*(uy*cos-ux*sin)),
		}
		*shapes = append(*shapes,
			SegmentShape{From: to, To: left, Width: w, Color: a.color},
			SegmentShape{From: to, To: right, Width: w, Color: a.color},
		)
	}
}

// OnHover draws rulers at the closest origin.
func (a *Arrows) OnHover(elem ClosestElem, hc *hoverContext, shapes *[]Shape) {
	pos := hc.transform.PositionFromValue(elem.Value)
	rulersAtValue(pos, elem.Value, a.name, hc, shapes)
}
