// Package plotwidget embeds the plot engine in a Fyne widget: it gathers
// desktop mouse events into per-frame input snapshots, runs the engine and
// renders its shape list with canvas primitives.
package plotwidget

import (
	"image"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/fyneplot/src/plot"
)

// Widget hosts one plot. Create it with New, add it to a container and call
// Refresh whenever the data changes; pointer interaction refreshes it
// automatically.
type Widget struct {
	widget.BaseWidget

	plot  *plot.Plot
	store plot.Store
	build func(ui *plot.PlotUI)

	// input accumulates events since the last drawn frame.
	input      plot.Input
	heldButton desktop.MouseButton
	buttonHeld bool
	lastMouse  fyne.Position

	lastResult *plot.FrameResult
}

// New returns a widget hosting the given plot. The builder callback is
// invoked once per frame to supply items. store may be nil, which keeps
// view state in-process only.
func New(p *plot.Plot, store plot.Store, build func(ui *plot.PlotUI)) *Widget {
	if store == nil {
		store = plot.NewMapStore()
	}
	w := &Widget{plot: p, store: store, build: build, input: plot.NewInput()}
	w.ExtendBaseWidget(w)
	return w
}

// Plot returns the hosted plot configuration.
func (w *Widget) Plot() *plot.Plot { return w.plot }

// LastResult returns the most recently drawn frame, or nil before the first
// draw.
func (w *Widget) LastResult() *plot.FrameResult { return w.lastResult }

// MinSize honors the plot's configured minimum size.
func (w *Widget) MinSize() fyne.Size {
	mw, mh := w.plot.ResolveSize(0, 0)
	return fyne.NewSize(mw, mh)
}

// CreateRenderer implements fyne.Widget.
func (w *Widget) CreateRenderer() fyne.WidgetRenderer {
	return &plotRenderer{w: w}
}

// mapButton converts a desktop mouse button to the engine's identifier.
func mapButton(b desktop.MouseButton) plot.PointerButton {
	switch b {
	case desktop.MouseButtonSecondary:
		return plot.ButtonSecondary
	case desktop.MouseButtonTertiary:
		return plot.ButtonMiddle
	default:
		return plot.ButtonPrimary
	}
}

// MouseDown starts a potential drag gesture.
func (w *Widget) MouseDown(ev *desktop.MouseEvent) {
	w.heldButton = ev.Button
	w.buttonHeld = true
	w.lastMouse = ev.Position
	w.input.DragButton = mapButton(ev.Button)
	w.input.DragStarted = true
	w.input.Dragging = true
	w.Refresh()
}

// MouseUp ends the drag gesture.
func (w *Widget) MouseUp(ev *desktop.MouseEvent) {
	if !w.buttonHeld {
		return
	}
	w.buttonHeld = false
	w.input.Dragging = false
	w.input.DragReleased = true
	w.input.DragButton = mapButton(ev.Button)
	w.Refresh()
}

// MouseMoved tracks the pointer and accumulates drag deltas.
func (w *Widget) MouseMoved(ev *desktop.MouseEvent) {
	w.input.PointerPos = plot.NewPos(ev.Position.X, ev.Position.Y)
	w.input.PointerInside = true
	if w.buttonHeld {
		w.input.Dragging = true
		w.input.DragDelta.X += ev.Position.X - w.lastMouse.X
		w.input.DragDelta.Y += ev.Position.Y - w.lastMouse.Y
	}
	w.lastMouse = ev.Position
	w.Refresh()
}

// MouseIn implements desktop.Hoverable.
func (w *Widget) MouseIn(ev *desktop.MouseEvent) {
	w.input.PointerPos = plot.NewPos(ev.Position.X, ev.Position.Y)
	w.input.PointerInside = true
	w.Refresh()
}

// MouseOut implements desktop.Hoverable.
func (w *Widget) MouseOut() {
	w.input.PointerInside = false
	w.Refresh()
}

// Scrolled pans the plot. Hosts that want scroll-to-zoom can intercept the
// event and call ApplyZoom instead.
func (w *Widget) Scrolled(ev *fyne.ScrollEvent) {
	w.input.ScrollDelta.X += ev.Scrolled.DX
	w.input.ScrollDelta.Y += ev.Scrolled.DY
	w.Refresh()
}

// ApplyZoom feeds a pinch/ctrl-scroll zoom factor for the next frame;
// 1 means no change.
func (w *Widget) ApplyZoom(factorX, factorY float32) {
	w.input.ZoomDelta.X *= factorX
	w.input.ZoomDelta.Y *= factorY
	w.Refresh()
}

// DoubleTapped resets the view to automatic bounds.
func (w *Widget) DoubleTapped(*fyne.PointEvent) {
	w.input.DoubleClicked = true
	w.Refresh()
}

// Tapped is required alongside DoubleTapped for tap event delivery.
func (w *Widget) Tapped(*fyne.PointEvent) {}

// Cursor implements desktop.Cursorable using the engine's per-frame choice.
func (w *Widget) Cursor() desktop.Cursor {
	if w.lastResult == nil {
		return desktop.DefaultCursor
	}
	switch w.lastResult.Cursor {
	case plot.CursorCrosshair:
		return desktop.CrosshairCursor
	case plot.CursorGrabbing:
		return desktop.PointerCursor
	default:
		return desktop.DefaultCursor
	}
}

// Interface assertions; these are what make Fyne deliver the events.
var (
	_ fyne.Widget         = (*Widget)(nil)
	_ desktop.Mouseable   = (*Widget)(nil)
	_ desktop.Hoverable   = (*Widget)(nil)
	_ desktop.Cursorable  = (*Widget)(nil)
	_ fyne.Scrollable     = (*Widget)(nil)
	_ fyne.Tappable       = (*Widget)(nil)
	_ fyne.DoubleTappable = (*Widget)(nil)
)

// runFrame executes one engine frame for the current widget size and resets
// the per-frame input accumulators.
func (w *Widget) runFrame(size fyne.Size) *plot.FrameResult {
	frame := plot.NewRect(0, 0, size.Width, size.Height)
	res := w.plot.Show(frame, w.input, w.store, w.build)
	w.lastResult = res

	// Deltas and edge flags are per-frame; hold state persists.
	w.input.DragDelta = plot.NewVec2(0, 0)
	w.input.DragStarted = false
	w.input.DragReleased = false
	w.input.DoubleClicked = false
	w.input.ScrollDelta = plot.NewVec2(0, 0)
	w.input.ZoomDelta = plot.Splat(1)
	return res
}

type plotRenderer struct {
	w    *Widget
	objs []fyne.CanvasObject
	size fyne.Size
}

func (r *plotRenderer) Destroy() {}

func (r *plotRenderer) MinSize() fyne.Size { return r.w.MinSize() }

func (r *plotRenderer) Objects() []fyne.CanvasObject { return r.objs }

func (r *plotRenderer) Layout(size fyne.Size) {
	r.size = size
	r.rebuild()
}

func (r *plotRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.w)
}

// rebuild runs a frame and converts the shape list into canvas objects.
func (r *plotRenderer) rebuild() {
	if r.size.Width <= 0 || r.size.Height <= 0 {
		return
	}
	res := r.w.runFrame(r.size)
	r.objs = r.objs[:0]
	for _, s := range res.Shapes {
		r.objs = append(r.objs, shapeObjects(s)...)
	}
}

// shapeObjects converts one engine shape to canvas objects.
func shapeObjects(s plot.Shape) []fyne.CanvasObject {
	switch s := s.(type) {
	case plot.SegmentShape:
		l := canvas.NewLine(s.Color)
		l.StrokeWidth = s.Width
		l.Position1 = fyne.NewPos(s.From.X, s.From.Y)
		l.Position2 = fyne.NewPos(s.To.X, s.To.Y)
		return []fyne.CanvasObject{l}
	case plot.RectShape:
		rect := canvas.NewRectangle(s.Fill)
		rect.StrokeColor = s.Stroke
		rect.StrokeWidth = s.StrokeWidth
		rect.Move(fyne.NewPos(s.Rect.Min.X, s.Rect.Min.Y))
		rect.Resize(fyne.NewSize(s.Rect.Width(), s.Rect.Height()))
		return []fyne.CanvasObject{rect}
	case plot.CircleShape:
		c := canvas.NewCircle(s.Fill)
		c.Move(fyne.NewPos(s.Center.X-s.Radius, s.Center.Y-s.Radius))
		c.Resize(fyne.NewSize(2*s.Radius, 2*s.Radius))
		return []fyne.CanvasObject{c}
	case plot.TextShape:
		return textObjects(s)
	case plot.ImageShape:
		img, ok := s.Ref.(image.Image)
		if !ok {
			return nil
		}
		ci := canvas.NewImageFromImage(img)
		ci.FillMode = canvas.ImageFillStretch
		ci.Move(fyne.NewPos(s.Rect.Min.X, s.Rect.Min.Y))
		ci.Resize(fyne.NewSize(s.Rect.Width(), s.Rect.Height()))
		return []fyne.CanvasObject{ci}
	}
	return nil
}

// textObjects lays out a possibly multi-line text shape.
func textObjects(s plot.TextShape) []fyne.CanvasObject {
	lines := strings.Split(s.Text, "\n")
	objs := make([]fyne.CanvasObject, 0, len(lines))
	for i, line := range lines {
		t := canvas.NewText(line, s.Color)
		t.TextSize = 11
		sz := t.MinSize()
		pos := fyne.NewPos(s.Pos.X, s.Pos.Y+float32(i)*sz.Height)
		switch s.Anchor {
		case plot.AnchorBottomLeft:
			pos.Y -= sz.Height * float32(len(lines)-i)
		case plot.AnchorCenter:
			pos.X -= sz.Width / 2
			pos.Y += float32(i)*sz.Height - float32(len(lines))*sz.Height/2
		}
		t.Move(pos)
		objs = append(objs, t)
	}
	return objs
}
