package grid

// Selection returns the retained selection rectangle.
func (g *Grid) Selection() (Rect, bool) {
	if !g.sel.active {
		return Rect{}, false
	}
	return RectFrom(g.sel.anchor, g.sel.end), true
}

// SelectionRaw returns the selection corners without normalization: anchor is
// where the drag started and end is where it currently is (or ended).
func (g *Grid) SelectionRaw() (anchor, end Pos, ok bool) {
	if !g.sel.active {
		return Pos{}, Pos{}, false
	}
	return g.sel.anchor, g.sel.end, true
}

// IsSelected reports whether p lies inside the retained selection.
func (g *Grid) IsSelected(p Pos) bool {
	r, ok := g.Selection()
	return ok && r.Contains(p)
}

// SelectedPositions lists the selected cells in row-major order.
func (g *Grid) SelectedPositions() []Pos {
	r, ok := g.Selection()
	if !ok {
		return nil
	}
	return r.Positions()
}

// Dragging reports whether a selection gesture is in progress.
func (g *Grid) Dragging() bool { return g.drag.active }

// DragAnchor returns the position the active gesture started from.
func (g *Grid) DragAnchor() (Pos, bool) {
	if !g.drag.active {
		return Pos{}, false
	}
	return g.drag.anchor, true
}

// BeginSelection starts a drag at p and selects only p.
//
// A covered position starts the drag from the anchor of its span.
func (g *Grid) BeginSelection(p Pos) Result {
	if !g.InBounds(p) {
		return RejectedOutOfBounds
	}
	p = g.resolveAnchor(p)

	cb := g.beginChange(ChangeSelect)
	nextSel := selectionState{active: true, anchor: p, end: p}
	nextDrag := dragState{active: true, anchor: p}
	if nextSel == g.sel && nextDrag == g.drag {
		return Unchanged
	}
	g.sel = nextSel
	g.drag = nextDrag
	g.bumpState()
	g.commitChange(cb, CellRect(p))
	return Applied
}

// ExtendSelection recomputes the selection as the rectangle between the drag
// anchor and p, inclusive. p is clamped into the grid.
//
// Without an active drag the call is rejected.
func (g *Grid) ExtendSelection(p Pos) Result {
	if !g.drag.active {
		return RejectedNotDragging
	}
	if g.rows == 0 || g.cols == 0 {
		return RejectedOutOfBounds
	}
	p = g.clampPos(p)

	next := selectionState{active: true, anchor: g.drag.anchor, end: p}
	if next == g.sel {
		return Unchanged
	}
	cb := g.beginChange(ChangeSelect)
	g.sel = next
	g.bumpState()
	g.commitChange(cb, RectFrom(next.anchor, next.end))
	return Applied
}

// EndSelection finishes the drag. The selection rectangle is kept for a
// following merge or clear.
func (g *Grid) EndSelection() Result {
	if !g.drag.active {
		return RejectedNotDragging
	}
	cb := g.beginChange(ChangeSelect)
	g.drag = dragState{}
	g.bumpState()
	r, _ := g.Selection()
	g.commitChange(cb, r)
	return Applied
}

// SelectRect selects r (clamped into the grid) without starting a drag.
// An active drag is cancelled.
func (g *Grid) SelectRect(r Rect) Result {
	clamped, ok := g.clampRect(r)
	if !ok {
		return RejectedOutOfBounds
	}
	next := selectionState{active: true, anchor: clamped.TopLeft(), end: clamped.BottomRight()}
	if next == g.sel && !g.drag.active {
		return Unchanged
	}
	cb := g.beginChange(ChangeSelect)
	g.sel = next
	g.drag = dragState{}
	g.bumpState()
	g.commitChange(cb, clamped)
	return Applied
}

// Deselect drops the selection and any active drag.
func (g *Grid) Deselect() Result {
	if !g.sel.active && !g.drag.active {
		return Unchanged
	}
	cb := g.beginChange(ChangeSelect)
	g.sel = selectionState{}
	g.drag = dragState{}
	g.bumpState()
	g.commitChange(cb, Rect{})
	return Applied
}
