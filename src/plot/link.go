package plot

// LinkedAxisGroup makes several plots share the bounds of one or both axes.
// Create one with LinkX, LinkY or LinkBoth, keep it alive across frames, and
// pass the same group to every plot that should stay in sync.
//
// The group is a shared cell: every linked plot reads it before resolving
// its own bounds and writes its resolved bounds back after drawing, so the
// last plot drawn in a frame wins. Plots sharing a group must be drawn
// sequentially; the cell is not safe for concurrent use.
type LinkedAxisGroup struct {
	LinkX bool
	LinkY bool

	bounds *Bounds // nil until the first linked plot writes
}

// NewLinkedAxisGroup returns a group linking the requested axes.
func NewLinkedAxisGroup(linkX, linkY bool) *LinkedAxisGroup {
	return &LinkedAxisGroup{LinkX: linkX, LinkY: linkY}
}

// LinkXAxis returns a group that links only the x axis.
func LinkXAxis() *LinkedAxisGroup { return NewLinkedAxisGroup(true, false) }

// LinkYAxis returns a group that links only the y axis.
func LinkYAxis() *LinkedAxisGroup { return NewLinkedAxisGroup(false, true) }

// LinkBoth returns a group that links both axes. Individual plots still
// apply their own aspect ratio on top.
func LinkBoth() *LinkedAxisGroup { return NewLinkedAxisGroup(true, true) }

// Get returns the last-committed shared bounds, or ok=false if no plot in
// the group has drawn yet.
func (g *LinkedAxisGroup) Get() (Bounds, bool) {
	if g.bounds == nil {
		return Bounds{}, false
	}
	return *g.bounds, true
}

// Set stores the given bounds unconditionally.
func (g *LinkedAxisGroup) Set(b Bounds) {
	g.bounds = &b
}
