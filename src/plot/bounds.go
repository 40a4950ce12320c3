package plot

import (
	"encoding/json"
	"math"
	"strconv"
)

// Bounds is the visible axis-aligned rectangle in data space.
// Index 0 is the x axis, index 1 the y axis.
//
// A Bounds value is either valid (both axes finite and Min <= Max) or the
// "nothing" sentinel returned by NothingBounds. It never holds a mix of the
// two; callers detect the difference with IsValid and fall back to defaults.
type Bounds struct {
	Min [2]float64
	Max [2]float64
}

// NothingBounds returns the empty sentinel: every Extend or Merge against it
// behaves as if the bounds did not exist yet.
func NothingBounds() Bounds {
	return Bounds{
		Min: [2]float64{math.Inf(1), math.Inf(1)},
		Max: [2]float64{math.Inf(-1), math.Inf(-1)},
	}
}

// NewBounds returns bounds spanning [minX,maxX] x [minY,maxY].
func NewBounds(minX, maxX, minY, maxY float64) Bounds {
	return Bounds{Min: [2]float64{minX, minY}, Max: [2]float64{maxX, maxY}}
}

// IsValid reports whether both axes are finite with Min <= Max and a
// non-zero span.
func (b Bounds) IsValid() bool {
	for i := 0; i < 2; i++ {
		if !(b.Min[i] < b.Max[i]) || math.IsInf(b.Min[i], 0) || math.IsInf(b.Max[i], 0) ||
			math.IsNaN(b.Min[i]) || math.IsNaN(b.Max[i]) {
			return false
		}
	}
	return true
}

// Width returns the x-axis span.
func (b Bounds) Width() float64 { return b.Max[0] - b.Min[0] }

// Height returns the y-axis span.
func (b Bounds) Height() float64 { return b.Max[1] - b.Min[1] }

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Value {
	return Value{X: (b.Min[0] + b.Max[0]) / 2, Y: (b.Min[1] + b.Max[1]) / 2}
}

// RangeX returns the x-axis interval as (min, max).
func (b Bounds) RangeX() (float64, float64) { return b.Min[0], b.Max[0] }

// RangeY returns the y-axis interval as (min, max).
func (b Bounds) RangeY() (float64, float64) { return b.Min[1], b.Max[1] }

// ExtendWithX grows the x axis to include x. NaN is ignored.
func (b *Bounds) ExtendWithX(x float64) {
	if math.IsNaN(x) {
		return
	}
	b.Min[0] = math.Min(b.Min[0], x)
	b.Max[0] = math.Max(b.Max[0], x)
}

// ExtendWithY grows the y axis to include y. NaN is ignored.
func (b *Bounds) ExtendWithY(y float64) {
	if math.IsNaN(y) {
		return
	}
	b.Min[1] = math.Min(b.Min[1], y)
	b.Max[1] = math.Max(b.Max[1], y)
}

// Extend grows both axes to include v.
func (b *Bounds) Extend(v Value) {
	b.ExtendWithX(v.X)
	b.ExtendWithY(v.Y)
}

// Merge grows b to the per-axis union of b and other. Merging with the
// nothing sentinel leaves b unchanged, so NothingBounds is the identity
// element and Merge is commutative.
func (b *Bounds) Merge(other Bounds) {
	for i := 0; i < 2; i++ {
		b.Min[i] = math.Min(b.Min[i], other.Min[i])
		b.Max[i] = math.Max(b.Max[i], other.Max[i])
	}
}

// zeroSpanMargin is the half-span used to widen a degenerate (single point)
// axis so that a lone value still gets a usable viewport.
const zeroSpanMargin = 0.5

// AddRelativeMargin expands each axis by the given fraction of its span.
// An axis with zero span is widened by a fixed +-0.5 instead, the same
// fallback applied to degenerate ranges when building axis ticks.
func (b *Bounds) AddRelativeMargin(marginX, marginY float64) {
	w := b.Width()
	h := b.Height()
	if w <= 0 {
		w = 0
		b.Min[0] -= zeroSpanMargin
		b.Max[0] += zeroSpanMargin
	}
	if h <= 0 {
		h = 0
		b.Min[1] -= zeroSpanMargin
		b.Max[1] += zeroSpanMargin
	}
	b.Min[0] -= marginX * w
	b.Max[0] += marginX * w
	b.Min[1] -= marginY * h
	b.Max[1] += marginY * h
}

// Translate shifts both axes by the given data-space delta.
func (b *Bounds) Translate(dx, dy float64) {
	b.Min[0] += dx
	b.Max[0] += dx
	b.Min[1] += dy
	b.Max[1] += dy
}

// boundsJSON carries the axes as strings because the nothing sentinel's
// +-Inf values are not representable as JSON numbers.
type boundsJSON struct {
	Min [2]string `json:"min"`
	Max [2]string `json:"max"`
}

// MarshalJSON implements json.Marshaler, keeping the nothing sentinel
// lossless.
func (b Bounds) MarshalJSON() ([]byte, error) {
	var j boundsJSON
	for i := 0; i < 2; i++ {
		j.Min[i] = strconv.FormatFloat(b.Min[i], 'g', -1, 64)
		j.Max[i] = strconv.FormatFloat(b.Max[i], 'g', -1, 64)
	}
	return json.Marshal(j)
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bounds) UnmarshalJSON(data []byte) error {
	var j boundsJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	for i := 0; i < 2; i++ {
		lo, err := strconv.ParseFloat(j.Min[i], 64)
		if err != nil {
			return err
		}
		hi, err := strconv.ParseFloat(j.Max[i], 64)
		if err != nil {
			return err
		}
		b.Min[i], b.Max[i] = lo, hi
	}
	return nil
}
