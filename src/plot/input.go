package plot

// PointerButton identifies a mouse button for drag gestures.
type PointerButton int

const (
	// ButtonPrimary is the main (usually left) button: pan and double-click reset.
	ButtonPrimary PointerButton = iota
	// ButtonSecondary is the usual box-zoom button.
	ButtonSecondary
	// ButtonMiddle is available for hosts that want a third gesture.
	ButtonMiddle
)

// Input is the host-supplied snapshot of pointer state for one frame.
// The host gathers its toolkit's events since the previous frame into this
// record; the engine consumes it exactly once per Show call.
//
// At most one drag button is active per frame (DragButton is meaningless
// unless Dragging is set); that single-active-drag invariant is what keeps
// pan and box-zoom mutually exclusive.
type Input struct {
	// PointerPos is the current hover position. Only meaningful when
	// PointerInside is set.
	PointerPos    Pos
	PointerInside bool

	// Dragging reports an in-progress drag with DragButton held, and
	// DragDelta the screen movement since the previous frame.
	Dragging    bool
	DragButton  PointerButton
	DragDelta   Vec2
	DragStarted bool
	// DragReleased reports that the drag button was released this frame.
	// DragButton still identifies which button ended.
	DragReleased bool

	// DoubleClicked reports a primary-button double click this frame.
	DoubleClicked bool

	// ScrollDelta is the wheel/trackpad scroll in pixels (translates bounds).
	ScrollDelta Vec2

	// ZoomDelta is the per-axis pinch/ctrl-scroll zoom factor for this
	// frame; Splat(1) means no zoom.
	ZoomDelta Vec2
}

// NewInput returns an idle input snapshot (no pointer, identity zoom).
func NewInput() Input {
	return Input{ZoomDelta: Splat(1)}
}

// draggedBy reports an active drag with the given button.
func (in *Input) draggedBy(b PointerButton) bool {
	return in.Dragging && in.DragButton == b
}

// releasedBy reports that a drag with the given button ended this frame.
func (in *Input) releasedBy(b PointerButton) bool {
	return in.DragReleased && in.DragButton == b
}

// hoverPos returns the pointer position if it is over the widget.
func (in *Input) hoverPos() (Pos, bool) {
	return in.PointerPos, in.PointerInside
}
