package gridview

import "github.com/iw2rmb/quilt/grid"

// HitKind classifies what lies under a screen coordinate.
type HitKind uint8

const (
	HitNone HitKind = iota
	HitCell
	HitGutter
	HitRowDelete
	HitHeader
	HitButton
)

// Hit is the result of mapping a screen coordinate onto the component.
type Hit struct {
	Kind HitKind

	// Pos is set for HitCell. Covered positions resolve to their anchor.
	Pos grid.Pos
	// Row is set for HitCell, HitGutter and HitRowDelete.
	Row int
	// Col is set for HitCell and HitHeader.
	Col int

	Action Action
}

// HitTest maps component-local coordinates to the element under them.
func (m Model) HitTest(x, y int) Hit {
	return (&m).hitTest(x, y)
}

// ScreenToCell maps component-local coordinates to a grid position.
// ok is false when (x, y) is not over a cell.
func (m Model) ScreenToCell(x, y int) (grid.Pos, bool) {
	h := (&m).hitTest(x, y)
	if h.Kind != HitCell {
		return grid.Pos{}, false
	}
	return h.Pos, true
}

// CellToScreen returns the component-local coordinates of the top-left
// corner of the block that renders p. ok is false when it is scrolled out of
// view.
func (m Model) CellToScreen(p grid.Pos) (x, y int, ok bool) {
	if m.grid == nil || !m.grid.InBounds(p) {
		return 0, 0, false
	}
	if s, merged := m.grid.SpanAt(p); merged {
		p = s.TopLeft()
	}
	geo := m.geometry()
	vs := m.ViewportState()
	if p.Row < vs.TopRow || p.Row >= vs.TopRow+vs.VisibleRows {
		return 0, 0, false
	}
	return geo.colX(p.Col), geo.bodyTop + p.Row - vs.TopRow, true
}

func (m *Model) hitTest(x, y int) Hit {
	if x < 0 || y < 0 {
		return Hit{}
	}
	geo := m.geometry()

	switch {
	case y == geo.toolbarY:
		if a := actionAt(x); a != ActionNone {
			return Hit{Kind: HitButton, Action: a}
		}
		return Hit{}
	case y == geo.headerY:
		if c, ok := geo.colAt(x); ok {
			return Hit{Kind: HitHeader, Col: c}
		}
		return Hit{}
	case y < geo.bodyTop:
		return Hit{}
	}

	vs := m.ViewportState()
	line := y - geo.bodyTop
	if line >= vs.VisibleRows {
		return Hit{}
	}
	row := vs.TopRow + line

	if x < geo.gutter {
		return Hit{Kind: HitGutter, Row: row}
	}
	if geo.deleteX >= 0 && x >= geo.deleteX && x < geo.deleteX+len(rowDeleteLabel) {
		return Hit{Kind: HitRowDelete, Row: row}
	}
	col, ok := geo.colAt(x)
	if !ok {
		return Hit{}
	}
	p := grid.Pos{Row: row, Col: col}
	if c, ok := m.grid.Cell(p); ok {
		p = c.Anchor
	}
	return Hit{Kind: HitCell, Pos: p, Row: row, Col: col}
}

// clampToCell maps a drag coordinate to the nearest cell. Positions outside
// the cell area clamp to the edge.
func (m *Model) clampToCell(x, y int) (grid.Pos, bool) {
	if m.grid == nil || m.grid.Rows() == 0 || m.grid.Cols() == 0 {
		return grid.Pos{}, false
	}
	geo := m.geometry()
	vs := m.ViewportState()

	row := vs.TopRow + y - geo.bodyTop
	col := 0
	if x > geo.gutter {
		col = (x - geo.gutter) / (geo.cellW + 1)
	}
	return grid.Pos{
		Row: clampInt(row, 0, geo.rows-1),
		Col: clampInt(col, 0, geo.cols-1),
	}, true
}
