// Package plot implements the coordinate-transform and interaction engine of
// an embeddable 2D chart widget: data<->screen mapping, pan/zoom/box-zoom
// input handling, cross-plot axis linking, automatic bounds, tick/grid
// generation and nearest-item hover queries. It is toolkit-agnostic; a host
// (see src/plotwidget for the Fyne one) feeds it an Input snapshot each frame
// and renders the Shape list it returns.
package plot

import "github.com/wcharczuk/go-chart/v2/drawing"

// Cursor is the pointer cursor the host should show for the current frame.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorCrosshair
	CursorGrabbing
	CursorZoomIn
)

// LegendEntry describes one named item for the legend collaborator.
type LegendEntry struct {
	Name   string
	Color  drawing.Color
	Hidden bool
}

// Legend is the external legend/selection collaborator. Each frame it
// receives the resolved entries (with their current hidden state) and
// returns the updated hidden set plus the legend entry the user is hovering,
// if any. How the selection UI is rendered is entirely its business.
type Legend interface {
	Update(entries []LegendEntry) (hidden map[string]bool, hovered string)
}

// Plot configures one plot instance. Configure it with the chained setters,
// then call Show once per frame. The zero value is not usable; use New.
type Plot struct {
	id string

	centerXAxis     bool
	centerYAxis     bool
	allowZoom       bool
	allowDrag       bool
	allowBoxedZoom  bool
	boxedZoomButton PointerButton
	minAutoBounds   Bounds
	marginFraction  [2]float64
	linkedAxes      *LinkedAxisGroup

	minSizeW   float32
	minSizeH   float32
	width      float32 // 0 means fill
	height     float32 // 0 means fill
	dataAspect float64 // 0 means free
	viewAspect float64 // 0 means free

	hoverLine      HoverLine
	showHoverLabel bool
	hoverFormatter HoverFormatter
	axisFormatters [2]AxisFormatter
	legend         Legend
	showBackground bool
	showAxes       [2]bool
}

// New returns a plot with the given stable identity. The id keys the
// persisted memory record, so it must be unique among plots sharing a Store
// and stable across frames.
func New(id string) *Plot {
	return &Plot{
		id:              id,
		allowZoom:       true,
		allowDrag:       true,
		allowBoxedZoom:  true,
		boxedZoomButton: ButtonSecondary,
		minAutoBounds:   NothingBounds(),
		marginFraction:  [2]float64{0.05, 0.05},
		minSizeW:        64,
		minSizeH:        64,
		hoverLine:       HoverLineXY,
		showHoverLabel:  true,
		hoverFormatter:  DefaultHoverFormatter,
		showBackground:  true,
		showAxes:        [2]bool{true, true},
	}
}

// ID returns the plot's stable identity.
func (p *Plot) ID() string { return p.id }

// CenterXAxis keeps the x axis centered on zero.
func (p *Plot) CenterXAxis(on bool) *Plot { p.centerXAxis = on; return p }

// CenterYAxis keeps the y axis centered on zero.
func (p *Plot) CenterYAxis(on bool) *Plot { p.centerYAxis = on; return p }

// AllowZoom enables scroll/pinch zooming. Default: true.
func (p *Plot) AllowZoom(on bool) *Plot { p.allowZoom = on; return p }

// AllowDrag enables panning with the primary button. Default: true.
func (p *Plot) AllowDrag(on bool) *Plot { p.allowDrag = on; return p }

// AllowBoxedZoom enables drag-a-rectangle zooming. Default: true.
func (p *Plot) AllowBoxedZoom(on bool) *Plot { p.allowBoxedZoom = on; return p }

// BoxedZoomButton selects the button for box zooming. Default: secondary.
func (p *Plot) BoxedZoomButton(b PointerButton) *Plot { p.boxedZoomButton = b; return p }

// DataAspect fixes the width/height ratio of the data units.
func (p *Plot) DataAspect(ratio float64) *Plot { p.dataAspect = ratio; return p }

// ViewAspect fixes the width/height ratio of the plot region.
func (p *Plot) ViewAspect(ratio float64) *Plot { p.viewAspect = ratio; return p }

// Width fixes the plot width in pixels.
func (p *Plot) Width(w float32) *Plot { p.width = w; p.minSizeW = w; return p }

// Height fixes the plot height in pixels.
func (p *Plot) Height(h float32) *Plot { p.height = h; p.minSizeH = h; return p }

// MinSize sets the minimum plot size. Default: 64x64.
func (p *Plot) MinSize(w, h float32) *Plot { p.minSizeW = w; p.minSizeH = h; return p }

// MarginFraction sets the relative margin added around auto-fit bounds.
// Default: 0.05 on both axes.
func (p *Plot) MarginFraction(x, y float64) *Plot {
	p.marginFraction = [2]float64{x, y}
	return p
}

// SetHoverLine selects which ruler lines follow the pointer. Default: both.
func (p *Plot) SetHoverLine(h HoverLine) *Plot { p.hoverLine = h; return p }

// ShowHoverLabel toggles the hover tooltip text. Default: true.
func (p *Plot) ShowHoverLabel(on bool) *Plot { p.showHoverLabel = on; return p }

// SetHoverFormatter overrides the tooltip text formatter.
func (p *Plot) SetHoverFormatter(f HoverFormatter) *Plot { p.hoverFormatter = f; return p }

// XAxisFormatter overrides x-axis tick labels, e.g. for datetime domains.
// Returning "" suppresses a label without suppressing its grid line.
func (p *Plot) XAxisFormatter(f AxisFormatter) *Plot { p.axisFormatters[0] = f; return p }

// YAxisFormatter overrides y-axis tick labels.
func (p *Plot) YAxisFormatter(f AxisFormatter) *Plot { p.axisFormatters[1] = f; return p }

// IncludeX makes auto-bounds always include the given x value.
func (p *Plot) IncludeX(x float64) *Plot { p.minAutoBounds.ExtendWithX(x); return p }

// IncludeY makes auto-bounds always include the given y value.
func (p *Plot) IncludeY(y float64) *Plot { p.minAutoBounds.ExtendWithY(y); return p }

// SetLegend attaches the legend collaborator.
func (p *Plot) SetLegend(l Legend) *Plot { p.legend = l; return p }

// ShowBackground toggles the background rectangle. Default: true.
func (p *Plot) ShowBackground(on bool) *Plot { p.showBackground = on; return p }

// ShowAxes toggles the x and y grid/labels. Default: both.
func (p *Plot) ShowAxes(x, y bool) *Plot { p.showAxes = [2]bool{x, y}; return p }

// LinkAxis makes this plot share bounds with every other plot holding the
// same group. A plot cannot belong to more than one group.
func (p *Plot) LinkAxis(g *LinkedAxisGroup) *Plot { p.linkedAxes = g; return p }

// ResolveSize turns the available space into the plot size, honoring fixed
// width/height, the view aspect ratio and the minimum size.
func (p *Plot) ResolveSize(availW, availH float32) (w, h float32) {
	w = p.width
	if w == 0 {
		if p.height != 0 && p.viewAspect != 0 {
			w = p.height * float32(p.viewAspect)
		} else {
			w = availW
		}
	}
	if w < p.minSizeW {
		w = p.minSizeW
	}
	h = p.height
	if h == 0 {
		if p.viewAspect != 0 {
			h = w / float32(p.viewAspect)
		} else {
			h = availH
		}
	}
	if h < p.minSizeH {
		h = p.minSizeH
	}
	return w, h
}

// FrameResult is everything one Show call produced: the draw list, the
// frame's resolved transform, and interaction feedback for the host.
type FrameResult struct {
	// Shapes is the ordered draw list (background, grid, items, hover,
	// box-zoom feedback).
	Shapes []Shape
	// Transform is the transform the frame was drawn with.
	Transform Transform
	// Cursor is the pointer cursor to show.
	Cursor Cursor
	// BoxZoomRect is the in-progress box-zoom selection, if any.
	BoxZoomRect *Rect
}

// Show runs one frame: it loads the plot's memory from store, calls build to
// collect items, resolves bounds (link override, double-click reset, box-zoom
// commit, drag pan, scroll/pinch zoom, auto-fit fallback — in that
// precedence), generates the draw list and persists the updated memory.
//
// frame is the screen rectangle allocated to the plot area. in is this
// frame's input snapshot. Draws of plots sharing a LinkedAxisGroup must be
// strictly sequential.
func (p *Plot) Show(frame Rect, in Input, store Store, build func(ui *PlotUI)) *FrameResult {
	if in.ZoomDelta.X == 0 {
		in.ZoomDelta.X = 1
	}
	if in.ZoomDelta.Y == 0 {
		in.ZoomDelta.Y = 1
	}

	// Load or initialize the memory.
	mem, ok := store.Get(p.id)
	if !ok {
		mem = newMemory(frame, p.minAutoBounds, p.centerXAxis, p.centerYAxis)
		Debugf("plot %q: first draw, auto_bounds=%v", p.id, mem.AutoBounds)
	} else if mem.MinAutoBounds != p.minAutoBounds {
		// The configured minimum bounds changed; recalculate everything.
		mem.AutoBounds = !p.minAutoBounds.IsValid()
		mem.HoveredEntry = ""
		mem.MinAutoBounds = p.minAutoBounds
	}
	if mem.HiddenItems == nil {
		mem.HiddenItems = map[string]bool{}
	}

	// Collect items. The callback sees the previous frame's transform so
	// its pointer queries stay consistent with what is on screen.
	ui := &PlotUI{
		lastTransform: mem.LastTransform,
		input:         &in,
	}
	build(ui)
	items := ui.items

	hoverLine := p.hoverLine

	// Legend protocol: hand over entries, take back hidden set and
	// hovered entry.
	if p.legend != nil {
		var entries []LegendEntry
		for _, item := range items {
			if item.Name() == "" {
				continue
			}
			entries = append(entries, LegendEntry{
				Name:   item.Name(),
				Color:  item.Color(),
				Hidden: mem.HiddenItems[item.Name()],
			})
		}
		hidden, hovered := p.legend.Update(entries)
		if hidden != nil {
			mem.HiddenItems = hidden
		}
		mem.HoveredEntry = hovered
	}
	// Don't draw hover rulers while the user is over the legend.
	if mem.HoveredEntry != "" {
		hoverLine = HoverLineNone
	}

	// Remove deselected items, highlight the hovered entry, and move
	// highlighted items to the front of the draw order.
	visible := items[:0]
	for _, item := range items {
		if mem.HiddenItems[item.Name()] {
			continue
		}
		if mem.HoveredEntry != "" && item.Name() == mem.HoveredEntry {
			item.Highlight()
		}
		visible = append(visible, item)
	}
	items = sortHighlightedLast(visible)

	// --- Bounds resolution ---
	bounds := mem.LastTransform.Bounds
	autoBounds := mem.AutoBounds

	// Link override comes before everything else. An axis that took its
	// value from the group opts out of auto-bounds recomputation for this
	// frame, so a same-frame fit cannot clobber the shared value; the other
	// axis still fits normally.
	usedLinkX := false
	usedLinkY := false
	if g := p.linkedAxes; g != nil {
		if linked, ok := g.Get(); ok {
			if g.LinkX {
				bounds.Min[0] = linked.Min[0]
				bounds.Max[0] = linked.Max[0]
				usedLinkX = true
			}
			if g.LinkY {
				bounds.Min[1] = linked.Min[1]
				bounds.Max[1] = linked.Max[1]
				usedLinkY = true
			}
		}
	}

	// Double click re-enables automatic bounds unconditionally. The flag
	// is persisted either way; linked axes still hold their shared value
	// for this frame.
	if in.DoubleClicked {
		autoBounds = true
	}

	if autoBounds || !bounds.IsValid() {
		fitted := p.minAutoBounds
		for _, item := range items {
			fitted.Merge(item.GetBounds())
		}
		fitted.AddRelativeMargin(p.marginFraction[0], p.marginFraction[1])
		if !usedLinkX {
			bounds.Min[0] = fitted.Min[0]
			bounds.Max[0] = fitted.Max[0]
		}
		if !usedLinkY {
			bounds.Min[1] = fitted.Min[1]
			bounds.Max[1] = fitted.Max[1]
		}
	}

	transform := NewTransform(frame, bounds, p.centerXAxis, p.centerYAxis)

	if p.dataAspect != 0 {
		// With a y-only link the linked span must stay fixed, so the x
		// axis absorbs the correction.
		preserveY := p.linkedAxes != nil && p.linkedAxes.LinkY && !p.linkedAxes.LinkX
		transform.SetAspect(p.dataAspect, preserveY)
	}

	cursor := CursorDefault
	if hoverLine != HoverLineNone {
		cursor = CursorCrosshair
	}

	// Drag pan. An active box-zoom drag owns the button: while it is in
	// progress the selection is pure visual feedback and must not pan, even
	// when both gestures are configured on the primary button.
	boxZoomDragging := p.allowBoxedZoom && in.draggedBy(p.boxedZoomButton)
	if p.allowDrag && in.draggedBy(ButtonPrimary) && !boxZoomDragging {
		transform.TranslateBounds(Vec2{X: -in.DragDelta.X, Y: -in.DragDelta.Y})
		autoBounds = false
		cursor = CursorGrabbing
	}

	// Box zoom.
	var boxRect *Rect
	if p.allowBoxedZoom {
		if in.DragStarted && in.draggedBy(p.boxedZoomButton) {
			if pos, ok := in.hoverPos(); ok {
				mem.LastClickPosForZoom = &pos
			}
		}
		if start := mem.LastClickPosForZoom; start != nil {
			if end, ok := in.hoverPos(); ok {
				if in.draggedBy(p.boxedZoomButton) {
					r := RectFromTwoPos(*start, end)
					boxRect = &r
					cursor = CursorZoomIn
				}
				if in.releasedBy(p.boxedZoomButton) {
					// Normalize the rectangle from whichever corner pair
					// was dragged; a zero-area selection aborts the zoom
					// and re-enables auto fitting.
					v0 := transform.ValueFromPosition(*start)
					v1 := transform.ValueFromPosition(end)
					newBounds := NothingBounds()
					newBounds.Extend(v0)
					newBounds.Extend(v1)
					if newBounds.IsValid() {
						transform.Bounds = newBounds
						autoBounds = false
					} else {
						Warnf("plot %q: degenerate box zoom, resetting to auto bounds", p.id)
						autoBounds = true
					}
					mem.LastClickPosForZoom = nil
				}
			}
		}
	}

	// Scroll and pinch zoom, anchored at the hover position.
	if p.allowZoom {
		if pos, ok := in.hoverPos(); ok {
			factor := in.ZoomDelta
			if p.dataAspect != 0 {
				// A fixed data aspect must zoom uniformly.
				factor = Splat(factor.X)
			}
			if factor != Splat(1) {
				transform.Zoom(factor, pos)
				autoBounds = false
			}
			if !in.ScrollDelta.IsZero() {
				transform.TranslateBounds(Vec2{X: -in.ScrollDelta.X, Y: -in.ScrollDelta.Y})
				autoBounds = false
			}
		}
	}

	// Resolve function-defined series against the final x domain.
	minX, maxX := transform.Bounds.RangeX()
	for _, item := range items {
		item.Initialize(minX, maxX)
	}

	// --- Draw list ---
	var shapes []Shape
	if p.showBackground {
		shapes = append(shapes, RectShape{
			Rect: frame,
			Fill: drawing.Color{R: 10, G: 10, B: 10, A: 255},
		})
	}
	for axis := 0; axis < 2; axis++ {
		if p.showAxes[axis] {
			appendAxisShapes(&shapes, &transform, axis, p.axisFormatters[axis])
		}
	}
	for _, item := range items {
		item.AppendShapes(&transform, &shapes)
	}

	if pos, ok := in.hoverPos(); ok {
		hc := &hoverContext{
			transform: &transform,
			mode:      hoverLine,
			showLabel: p.showHoverLabel,
			formatter: p.hoverFormatter,
		}
		runHoverQuery(items, pos, hc, &shapes)
	}

	if boxRect != nil {
		// Outer dark stroke with an inner light one keeps the selection
		// visible on any background.
		shapes = append(shapes,
			RectShape{Rect: *boxRect, Stroke: drawing.Color{B: 139, A: 255}, StrokeWidth: 4},
			RectShape{Rect: *boxRect, Stroke: drawing.Color{R: 255, G: 255, B: 255, A: 255}, StrokeWidth: 2},
		)
	}

	// Write the resolved bounds back to the link group; last writer in the
	// frame's draw order wins.
	if p.linkedAxes != nil {
		p.linkedAxes.Set(transform.Bounds)
	}

	mem.AutoBounds = autoBounds
	mem.LastTransform = transform
	store.Put(p.id, mem)

	return &FrameResult{
		Shapes:      shapes,
		Transform:   transform,
		Cursor:      cursor,
		BoxZoomRect: boxRect,
	}
}

// ShowWith is Show with a builder callback that returns a value; the value
// is passed through unchanged.
func ShowWith[R any](p *Plot, frame Rect, in Input, store Store, build func(ui *PlotUI) R) (R, *FrameResult) {
	var inner R
	res := p.Show(frame, in, store, func(ui *PlotUI) {
		inner = build(ui)
	})
	return inner, res
}

// sortHighlightedLast stable-partitions items so highlighted ones draw on
// top.
func sortHighlightedLast(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !it.Highlighted() {
			out = append(out, it)
		}
	}
	for _, it := range items {
		if it.Highlighted() {
			out = append(out, it)
		}
	}
	return out
}
