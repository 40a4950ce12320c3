package plot

import "testing"

func TestMemoryEncodeDecodeRoundTrip(t *testing.T) {
	click := NewPos(12, 34)
	m := Memory{
		AutoBounds:          false,
		HoveredEntry:        "series-a",
		HiddenItems:         map[string]bool{"series-b": true},
		MinAutoBounds:       NewBounds(0, 1, 0, 1),
		LastTransform:       NewTransform(testFrame(), NewBounds(2, 8, 3, 7), false, false),
		LastClickPosForZoom: &click,
	}

	data, err := EncodeMemory(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeMemory(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.AutoBounds != m.AutoBounds || got.HoveredEntry != m.HoveredEntry {
		t.Fatalf("flags lost: %+v", got)
	}
	if !got.HiddenItems["series-b"] {
		t.Fatalf("hidden items lost: %+v", got.HiddenItems)
	}
	if got.LastTransform.Bounds != m.LastTransform.Bounds {
		t.Fatalf("bounds: got %+v want %+v", got.LastTransform.Bounds, m.LastTransform.Bounds)
	}
	if got.LastClickPosForZoom == nil || *got.LastClickPosForZoom != click {
		t.Fatalf("click pos lost: %v", got.LastClickPosForZoom)
	}
}

func TestEncodeMemoryDefaultRecord(t *testing.T) {
	// A default-configured plot has the nothing sentinel as its minimum
	// auto bounds; encoding must still succeed or persistence never works.
	m := newMemory(testFrame(), NothingBounds(), false, false)
	data, err := EncodeMemory(m)
	if err != nil {
		t.Fatalf("encode default record: %v", err)
	}
	got, err := DecodeMemory(data)
	if err != nil {
		t.Fatalf("decode default record: %v", err)
	}
	if got.MinAutoBounds != NothingBounds() {
		t.Fatalf("sentinel lost: %+v", got.MinAutoBounds)
	}
	if !got.AutoBounds {
		t.Fatalf("auto bounds flag lost")
	}
}

func TestDecodeMemoryRejectsGarbage(t *testing.T) {
	if _, err := DecodeMemory([]byte("{not json")); err == nil {
		t.Fatalf("expected error for corrupt record")
	}
}

func TestNewMemoryDefaults(t *testing.T) {
	m := newMemory(testFrame(), NothingBounds(), false, false)
	if !m.AutoBounds {
		t.Fatalf("auto bounds should default on without explicit minimum bounds")
	}

	m = newMemory(testFrame(), NewBounds(0, 5, 0, 5), false, false)
	if m.AutoBounds {
		t.Fatalf("valid minimum bounds should pin the view")
	}
	if m.LastTransform.Bounds != NewBounds(0, 5, 0, 5) {
		t.Fatalf("initial transform: got %+v", m.LastTransform.Bounds)
	}
}

func TestMapStoreKeysAreIndependent(t *testing.T) {
	s := NewMapStore()
	if _, ok := s.Get("a"); ok {
		t.Fatalf("empty store returned a record")
	}

	s.Put("a", Memory{HoveredEntry: "one"})
	s.Put("b", Memory{HoveredEntry: "two"})

	a, _ := s.Get("a")
	b, _ := s.Get("b")
	if a.HoveredEntry != "one" || b.HoveredEntry != "two" {
		t.Fatalf("cross-key interference: a=%+v b=%+v", a, b)
	}
}
