package grid

// AddRow appends one row of empty cells at the bottom edge.
func (g *Grid) AddRow() Result {
	cb := g.beginChange(ChangeAddRow)
	g.cells = append(g.cells, make([]string, g.cols))
	g.rows++
	g.bumpContent()
	g.commitChange(cb, Rect{Top: g.rows - 1, Left: 0, Bottom: g.rows - 1, Right: g.cols - 1})
	return Applied
}

// AddColumn appends one empty cell to every row at the right edge.
func (g *Grid) AddColumn() Result {
	cb := g.beginChange(ChangeAddColumn)
	for r := range g.cells {
		g.cells[r] = append(g.cells[r], "")
	}
	g.cols++
	g.bumpContent()
	g.commitChange(cb, Rect{Top: 0, Left: g.cols - 1, Bottom: g.rows - 1, Right: g.cols - 1})
	return Applied
}

// DeleteRow removes row and shifts the rows below it up.
//
// Rows crossed by a merged span cannot be deleted. Selection and drag state
// are dropped because positions shift.
func (g *Grid) DeleteRow(row int) Result {
	if row < 0 || row >= g.rows {
		return RejectedOutOfBounds
	}
	for _, s := range g.spans {
		if row >= s.Top && row <= s.Bottom {
			return RejectedSpanConflict
		}
	}

	cb := g.beginChange(ChangeDeleteRow)
	g.cells = append(g.cells[:row], g.cells[row+1:]...)
	g.rows--
	for i, s := range g.spans {
		if s.Top > row {
			s.Top--
			s.Bottom--
			g.spans[i] = s
		}
	}
	g.sel = selectionState{}
	g.drag = dragState{}
	g.bumpContent()
	g.commitChange(cb, Rect{Top: row, Left: 0, Bottom: row, Right: g.cols - 1})
	return Applied
}

// EditCell overwrites the text at (row, col). Covered cells are not editable;
// editing an anchor edits the merged text.
func (g *Grid) EditCell(row, col int, text string) Result {
	p := Pos{Row: row, Col: col}
	if !g.InBounds(p) {
		return RejectedOutOfBounds
	}
	if g.isCovered(p) {
		return RejectedCovered
	}
	if g.cells[row][col] == text {
		return Unchanged
	}
	cb := g.beginChange(ChangeEdit)
	g.cells[row][col] = text
	g.bumpContent()
	g.commitChange(cb, CellRect(p))
	return Applied
}

// ClearSelectedCells empties the text of every selected cell. Spans are left
// as they are.
func (g *Grid) ClearSelectedCells() Result {
	r, ok := g.Selection()
	if !ok {
		return RejectedEmptySelection
	}
	cb := g.beginChange(ChangeClear)
	changed := false
	for _, p := range r.Positions() {
		if g.cells[p.Row][p.Col] != "" {
			g.cells[p.Row][p.Col] = ""
			changed = true
		}
	}
	if !changed {
		return Unchanged
	}
	g.bumpContent()
	g.commitChange(cb, r)
	return Applied
}

// Paste writes block into the grid with block[0][0] at origin. Covered cells
// and cells past the grid edge are skipped; the grid never grows.
func (g *Grid) Paste(origin Pos, block [][]string) Result {
	if !g.InBounds(origin) {
		return RejectedOutOfBounds
	}
	cb := g.beginChange(ChangePaste)
	touched := CellRect(origin)
	changed := false
	for i, row := range block {
		for j, text := range row {
			p := Pos{Row: origin.Row + i, Col: origin.Col + j}
			if !g.InBounds(p) || g.isCovered(p) {
				continue
			}
			touched.Bottom = maxInt(touched.Bottom, p.Row)
			touched.Right = maxInt(touched.Right, p.Col)
			if g.cells[p.Row][p.Col] == text {
				continue
			}
			g.cells[p.Row][p.Col] = text
			changed = true
		}
	}
	if !changed {
		return Unchanged
	}
	g.bumpContent()
	g.commitChange(cb, touched)
	return Applied
}
