package plot

// Value is a point in data space (the coordinate system of plotted values).
type Value struct {
	X float64
	Y float64
}

// NewValue returns a data-space point.
func NewValue(x, y float64) Value { return Value{X: x, Y: y} }

// Pos is a point in screen space (pixels within the widget rectangle).
type Pos struct {
	X float32
	Y float32
}

// NewPos returns a screen-space point.
func NewPos(x, y float32) Pos { return Pos{X: x, Y: y} }

// Vec2 is a screen-space vector, e.g. a drag delta in pixels.
type Vec2 struct {
	X float32
	Y float32
}

// NewVec2 returns a screen-space vector.
func NewVec2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Splat returns a vector with both components set to s.
func Splat(s float32) Vec2 { return Vec2{X: s, Y: s} }

// Rect is an axis-aligned screen-space rectangle. Min is the top-left corner
// (smaller y is closer to the top of the screen, matching Fyne's coordinate
// convention).
type Rect struct {
	Min Pos
	Max Pos
}

// NewRect returns the rectangle spanning (x0,y0)-(x1,y1) without normalizing.
func NewRect(x0, y0, x1, y1 float32) Rect {
	return Rect{Min: Pos{X: x0, Y: y0}, Max: Pos{X: x1, Y: y1}}
}

// RectFromTwoPos returns the smallest rectangle containing both points,
// regardless of which corner pair was given.
func RectFromTwoPos(a, b Pos) Rect {
	r := Rect{Min: a, Max: b}
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Width returns the horizontal extent in pixels.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns the vertical extent in pixels.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Pos {
	return Pos{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside the rectangle (edges inclusive).
func (r Rect) Contains(p Pos) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
