package grid

// RenderCell is the render description of one grid position.
type RenderCell struct {
	Pos  Pos
	Text string

	// Covered cells are not rendered on their own; their area belongs to the
	// anchor of their span.
	Covered bool

	RowSpan int
	ColSpan int

	Selected bool
}

// Layout is the full render description of a grid. It depends only on grid
// content, spans, selection and drag state.
type Layout struct {
	Rows     int
	Cols     int
	Dragging bool

	Selection    Rect
	HasSelection bool

	Cells [][]RenderCell
	Spans []Rect
}

// At returns the render cell at p.
func (l Layout) At(p Pos) (RenderCell, bool) {
	if p.Row < 0 || p.Row >= len(l.Cells) || p.Col < 0 || p.Col >= len(l.Cells[p.Row]) {
		return RenderCell{}, false
	}
	return l.Cells[p.Row][p.Col], true
}

// SpanAt returns the span containing p, or the 1x1 rect at p when unmerged.
func (l Layout) SpanAt(p Pos) Rect {
	for _, s := range l.Spans {
		if s.Contains(p) {
			return s
		}
	}
	return CellRect(p)
}

// Layout derives the render description from current state.
func (g *Grid) Layout() Layout {
	sel, selOK := g.Selection()
	out := Layout{
		Rows:         g.rows,
		Cols:         g.cols,
		Dragging:     g.drag.active,
		Selection:    sel,
		HasSelection: selOK,
		Cells:        make([][]RenderCell, g.rows),
		Spans:        g.Spans(),
	}

	for r := 0; r < g.rows; r++ {
		row := make([]RenderCell, g.cols)
		for c := 0; c < g.cols; c++ {
			p := Pos{Row: r, Col: c}
			row[c] = RenderCell{
				Pos:      p,
				Text:     g.cells[r][c],
				RowSpan:  1,
				ColSpan:  1,
				Selected: selOK && sel.Contains(p),
			}
		}
		out.Cells[r] = row
	}

	for _, s := range g.spans {
		for _, p := range s.Positions() {
			rc := &out.Cells[p.Row][p.Col]
			if p == s.TopLeft() {
				rc.RowSpan = s.Rows()
				rc.ColSpan = s.Cols()
				continue
			}
			*rc = RenderCell{Pos: p, Covered: true}
		}
	}
	return out
}
