package plot

// Transform is the bidirectional affine mapping between a fixed screen
// rectangle and the current data bounds. It is the single source of truth
// for data<->screen conversion within one frame.
//
// Frame must not change for the lifetime of a transform; Bounds may be
// mutated through the zoom/translate primitives. The y axis is flipped:
// larger data values map to smaller screen y.
type Transform struct {
	Frame  Rect   `json:"frame"`
	Bounds Bounds `json:"bounds"`
}

// NewTransform builds a transform for the given frame and bounds.
// With centerX (resp. centerY) set, the data origin is forced to the
// geometric center of the frame by recentering that axis symmetrically
// around zero before storing.
func NewTransform(frame Rect, bounds Bounds, centerX, centerY bool) Transform {
	if !bounds.IsValid() {
		// Degenerate or empty bounds would make the mapping divide by
		// zero; fall back to a symmetric unit viewport.
		bounds = NewBounds(-1, 1, -1, 1)
	}
	if centerX {
		m := maxAbs(bounds.Min[0], bounds.Max[0])
		bounds.Min[0] = -m
		bounds.Max[0] = m
	}
	if centerY {
		m := maxAbs(bounds.Min[1], bounds.Max[1])
		bounds.Min[1] = -m
		bounds.Max[1] = m
	}
	return Transform{Frame: frame, Bounds: bounds}
}

func maxAbs(a, b float64) float64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}

// PositionFromValue maps a data-space value to screen space.
func (t *Transform) PositionFromValue(v Value) Pos {
	x := remap(v.X, t.Bounds.Min[0], t.Bounds.Max[0], float64(t.Frame.Min.X), float64(t.Frame.Max.X))
	y := remap(v.Y, t.Bounds.Min[1], t.Bounds.Max[1], float64(t.Frame.Max.Y), float64(t.Frame.Min.Y))
	return Pos{X: float32(x), Y: float32(y)}
}

// ValueFromPosition maps a screen position back to data space.
func (t *Transform) ValueFromPosition(p Pos) Value {
	x := remap(float64(p.X), float64(t.Frame.Min.X), float64(t.Frame.Max.X), t.Bounds.Min[0], t.Bounds.Max[0])
	y := remap(float64(p.Y), float64(t.Frame.Max.Y), float64(t.Frame.Min.Y), t.Bounds.Min[1], t.Bounds.Max[1])
	return Value{X: x, Y: y}
}

// remap linearly maps v from [from0,from1] to [to0,to1] without clamping.
func remap(v, from0, from1, to0, to1 float64) float64 {
	return to0 + (v-from0)/(from1-from0)*(to1-to0)
}

// DposDvalue returns pixels per data unit for each axis. The y component is
// negative because screen y grows downward.
func (t *Transform) DposDvalue() [2]float64 {
	return [2]float64{
		float64(t.Frame.Width()) / t.Bounds.Width(),
		-float64(t.Frame.Height()) / t.Bounds.Height(),
	}
}

// DvalueDpos returns data units per pixel for each axis (the inverse of
// DposDvalue).
func (t *Transform) DvalueDpos() [2]float64 {
	return [2]float64{
		t.Bounds.Width() / float64(t.Frame.Width()),
		-t.Bounds.Height() / float64(t.Frame.Height()),
	}
}

// TranslateBounds shifts the bounds by the data-space equivalent of the
// given screen delta. No clamping is applied.
func (t *Transform) TranslateBounds(delta Vec2) {
	dv := t.DvalueDpos()
	t.Bounds.Translate(float64(delta.X)*dv[0], float64(delta.Y)*dv[1])
}

// Zoom scales the bounds span per axis by 1/factor, keeping the data value
// under the screen anchor fixed in place. factor > 1 zooms in.
func (t *Transform) Zoom(factor Vec2, anchor Pos) {
	if factor.X <= 0 || factor.Y <= 0 {
		return
	}
	center := t.ValueFromPosition(anchor)
	t.Bounds.Min[0] = center.X + (t.Bounds.Min[0]-center.X)/float64(factor.X)
	t.Bounds.Max[0] = center.X + (t.Bounds.Max[0]-center.X)/float64(factor.X)
	t.Bounds.Min[1] = center.Y + (t.Bounds.Min[1]-center.Y)/float64(factor.Y)
	t.Bounds.Max[1] = center.Y + (t.Bounds.Max[1]-center.Y)/float64(factor.Y)
}

// Aspect returns the current (data units per x pixel) / (data units per y
// pixel) ratio.
func (t *Transform) Aspect() float64 {
	rw := float64(t.Frame.Width())
	rh := float64(t.Frame.Height())
	return (t.Bounds.Width() / rw) / (t.Bounds.Height() / rh)
}

// SetAspect adjusts one axis's span so Aspect() becomes the given ratio,
// expanding or shrinking the axis symmetrically around its center. With
// preserveY the y span is kept fixed and x is adjusted; otherwise x is kept
// and y is adjusted. The frame is never changed. Calling it again with the
// same ratio is a no-op.
func (t *Transform) SetAspect(aspect float64, preserveY bool) {
	current := t.Aspect()
	const epsilon = 1e-5
	if current-aspect < epsilon && aspect-current < epsilon {
		return
	}
	if preserveY {
		d := (aspect/current - 1) * t.Bounds.Width() / 2
		t.Bounds.Min[0] -= d
		t.Bounds.Max[0] += d
	} else {
		d := (current/aspect - 1) * t.Bounds.Height() / 2
		t.Bounds.Min[1] -= d
		t.Bounds.Max[1] += d
	}
}
