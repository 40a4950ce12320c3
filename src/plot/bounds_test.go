package plot

import (
	"encoding/json"
	"math"
	"testing"
)

func TestMergeCommutative(t *testing.T) {
	a := NewBounds(0, 5, -2, 3)
	b := NewBounds(-1, 4, 1, 9)

	ab := a
	ab.Merge(b)
	ba := b
	ba.Merge(a)

	if ab != ba {
		t.Fatalf("merge not commutative: %+v vs %+v", ab, ba)
	}
	want := NewBounds(-1, 5, -2, 9)
	if ab != want {
		t.Fatalf("merge result: got %+v want %+v", ab, want)
	}
}

func TestMergeNothingIsIdentity(t *testing.T) {
	a := NewBounds(0, 5, -2, 3)
	got := a
	got.Merge(NothingBounds())
	if got != a {
		t.Fatalf("merge with nothing changed bounds: got %+v want %+v", got, a)
	}

	got = NothingBounds()
	got.Merge(a)
	if got != a {
		t.Fatalf("nothing merged with a: got %+v want %+v", got, a)
	}
}

func TestNothingBoundsInvalid(t *testing.T) {
	if NothingBounds().IsValid() {
		t.Fatalf("nothing bounds must be invalid")
	}
	if !NewBounds(0, 1, 0, 1).IsValid() {
		t.Fatalf("unit bounds must be valid")
	}
	if NewBounds(1, 0, 0, 1).IsValid() {
		t.Fatalf("inverted bounds must be invalid")
	}
	if NewBounds(0, math.NaN(), 0, 1).IsValid() {
		t.Fatalf("NaN bounds must be invalid")
	}
	if NewBounds(2, 2, 0, 1).IsValid() {
		t.Fatalf("zero-span bounds must be invalid")
	}
}

func TestExtend(t *testing.T) {
	b := NothingBounds()
	b.Extend(NewValue(1, 2))
	b.Extend(NewValue(-3, 5))
	want := NewBounds(-3, 1, 2, 5)
	if b != want {
		t.Fatalf("extend: got %+v want %+v", b, want)
	}
	// NaN is ignored, not absorbed.
	b.ExtendWithX(math.NaN())
	if b != want {
		t.Fatalf("NaN extend changed bounds: got %+v", b)
	}
}

func TestAddRelativeMargin(t *testing.T) {
	b := NewBounds(0, 10, 0, 20)
	b.AddRelativeMargin(0.1, 0.05)
	want := NewBounds(-1, 11, -1, 21)
	if b != want {
		t.Fatalf("margin: got %+v want %+v", b, want)
	}
}

func TestBoundsJSONRoundTrip(t *testing.T) {
	// The nothing sentinel holds +-Inf, which plain JSON numbers cannot
	// carry; the codec must keep it lossless.
	for _, b := range []Bounds{
		NewBounds(-1.5, 2.25, 0, 1e12),
		NothingBounds(),
	} {
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal %+v: %v", b, err)
		}
		var got Bounds
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if got != b {
			t.Fatalf("round trip: got %+v want %+v", got, b)
		}
	}
}

func TestAddRelativeMarginDegenerate(t *testing.T) {
	// A single data point still needs a usable viewport.
	b := NewBounds(5, 5, 7, 7)
	b.AddRelativeMargin(0.05, 0.05)
	if !b.IsValid() {
		t.Fatalf("degenerate bounds not widened: %+v", b)
	}
	if b.Min[0] >= 5 || b.Max[0] <= 5 || b.Min[1] >= 7 || b.Max[1] <= 7 {
		t.Fatalf("widened bounds do not contain the point: %+v", b)
	}
}
