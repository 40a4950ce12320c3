package plot

import "encoding/json"

// Memory is the per-plot record that persists between frames: everything
// about the view that must survive until the next draw of the same plot id.
// The engine loads it at the start of Show and stores the updated record at
// the end; hosts only need to keep it somewhere keyed by the plot id.
type Memory struct {
	// AutoBounds selects automatic bounds fitting from item bounds plus
	// margin, as opposed to bounds fixed by an explicit interaction.
	AutoBounds bool `json:"auto_bounds"`

	// HoveredEntry is the legend entry currently hovered, if any. While
	// set, matching items are highlighted and plot hover rulers are
	// suppressed.
	HoveredEntry string `json:"hovered_entry,omitempty"`

	// HiddenItems holds names deselected through the legend.
	HiddenItems map[string]bool `json:"hidden_items,omitempty"`

	// MinAutoBounds is always included when fitting bounds automatically.
	MinAutoBounds Bounds `json:"min_auto_bounds"`

	// LastTransform is the previous frame's resolved transform. It answers
	// pointer queries made by the builder callback before the current
	// frame's bounds are known; that one-frame lag is intentional.
	LastTransform Transform `json:"last_transform"`

	// LastClickPosForZoom remembers where a box-zoom drag started, so an
	// in-progress drag survives across frames.
	LastClickPosForZoom *Pos `json:"last_click_pos_for_zoom,omitempty"`
}

// newMemory returns the documented first-draw default for a plot: automatic
// bounds unless the configured minimum bounds alone are already valid.
func newMemory(frame Rect, minAutoBounds Bounds, centerX, centerY bool) Memory {
	return Memory{
		AutoBounds:    !minAutoBounds.IsValid(),
		HiddenItems:   map[string]bool{},
		MinAutoBounds: minAutoBounds,
		LastTransform: NewTransform(frame, minAutoBounds, centerX, centerY),
	}
}

// EncodeMemory serializes a memory record for an external key-value store.
func EncodeMemory(m Memory) ([]byte, error) {
	return json.Marshal(m)
}

// DecodeMemory restores a record serialized with EncodeMemory.
func DecodeMemory(data []byte) (Memory, error) {
	var m Memory
	err := json.Unmarshal(data, &m)
	return m, err
}

// Store persists Memory records across frames, keyed by a caller-stable
// plot identity. Get returns ok=false when the id has never been stored;
// keys never interfere with each other.
type Store interface {
	Get(id string) (Memory, bool)
	Put(id string, m Memory)
}

// MapStore is the default in-process Store. The zero value is not usable;
// create one with NewMapStore. It is not safe for concurrent use, matching
// the engine's single-threaded frame model.
type MapStore struct {
	records map[string]Memory
}

// NewMapStore returns an empty in-memory store.
func NewMapStore() *MapStore {
	return &MapStore{records: map[string]Memory{}}
}

// Get returns the record for id.
func (s *MapStore) Get(id string) (Memory, bool) {
	m, ok := s.records[id]
	return m, ok
}

// Put stores the record for id, replacing any previous one.
func (s *MapStore) Put(id string, m Memory) {
	s.records[id] = m
}
