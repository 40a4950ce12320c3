package plot

import "github.com/wcharczuk/go-chart/v2/drawing"

// Shape is one renderer-agnostic draw command. The engine emits a flat list
// of shapes per frame; the host maps them onto its canvas primitives in
// order (later shapes draw on top).
type Shape interface {
	isShape()
}

// SegmentShape is a straight line segment in screen space.
type SegmentShape struct {
	From  Pos
	To    Pos
	Width float32
	Color drawing.Color
}

// RectShape is a screen-space rectangle with optional fill and stroke.
// A zero StrokeWidth omits the outline; a fully transparent Fill omits the
// interior.
type RectShape struct {
	Rect        Rect
	Fill        drawing.Color
	Stroke      drawing.Color
	StrokeWidth float32
}

// CircleShape is a filled circle, e.g. a hover marker dot.
type CircleShape struct {
	Center Pos
	Radius float32
	Fill   drawing.Color
}

// TextAnchor positions a text shape relative to its Pos.
type TextAnchor int

const (
	// AnchorTopLeft puts Pos at the top-left corner of the text.
	AnchorTopLeft TextAnchor = iota
	// AnchorBottomLeft puts Pos at the bottom-left corner.
	AnchorBottomLeft
	// AnchorCenter centers the text on Pos.
	AnchorCenter
)

// TextShape is a text label in screen space. Rendering (shaping, fonts) is
// the host's concern; the engine only decides text, position and color.
type TextShape struct {
	Pos    Pos
	Text   string
	Color  drawing.Color
	Anchor TextAnchor
}

// ImageShape asks the host to draw a caller-supplied image stretched over a
// screen rectangle. Ref is opaque to the engine.
type ImageShape struct {
	Rect Rect
	Ref  interface{}
}

func (SegmentShape) isShape() {}
func (RectShape) isShape()    {}
func (CircleShape) isShape()  {}
func (TextShape) isShape()    {}
func (ImageShape) isShape()   {}

// withAlpha scales a color's alpha by f in [0,1].
func withAlpha(c drawing.Color, f float32) drawing.Color {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	c.A = uint8(float32(c.A) * f)
	return c
}

// grayAlpha returns a light gray with the given opacity, the grid/label
// color used on the default dark background.
func grayAlpha(alpha float32) drawing.Color {
	return withAlpha(drawing.Color{R: 255, G: 255, B: 255, A: 255}, alpha)
}
