package grid

// Merge merges the retained selection into one spanning cell.
func (g *Grid) Merge() Result {
	r, ok := g.Selection()
	if !ok {
		return RejectedEmptySelection
	}
	return g.MergeRect(r)
}

// MergeRect merges r into one span anchored at its top-left cell.
//
// The anchor keeps its text; text in every other cell of r is discarded.
// Spans lying entirely inside r are absorbed. A rectangle that cuts through
// an existing span is rejected. On success the selection becomes the anchor.
func (g *Grid) MergeRect(r Rect) Result {
	r = RectFrom(r.TopLeft(), r.BottomRight())
	if !g.InBounds(r.TopLeft()) || !g.InBounds(r.BottomRight()) {
		return RejectedOutOfBounds
	}
	if r.Area() < 2 {
		return RejectedInsufficientSelection
	}

	kept := make([]Rect, 0, len(g.spans)+1)
	for _, s := range g.spans {
		if s == r {
			return Unchanged
		}
		if !s.Overlaps(r) {
			kept = append(kept, s)
			continue
		}
		if !r.ContainsRect(s) {
			return RejectedSpanConflict
		}
	}

	cb := g.beginChange(ChangeMerge)
	anchor := r.TopLeft()
	for _, p := range r.Positions() {
		if p != anchor {
			g.cells[p.Row][p.Col] = ""
		}
	}
	g.spans = append(kept, r)
	g.sel = selectionState{active: true, anchor: anchor, end: anchor}
	g.drag = dragState{}
	g.bumpContent()
	g.commitChange(cb, r)
	return Applied
}
