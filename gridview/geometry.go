package gridview

import "strconv"

// geometry describes where each part of the component lands on screen.
// Coordinates are component-local terminal cells.
type geometry struct {
	rows  int
	cols  int
	cellW int

	gutter  int
	deleteX int // -1 when the row delete column is hidden

	toolbarY int // -1 when hidden
	headerY  int // -1 when hidden
	bodyTop  int
}

const rowDeleteLabel = "[x]"

func (m Model) geometry() geometry {
	g := geometry{
		cellW:    m.cfg.cellWidth(),
		deleteX:  -1,
		toolbarY: -1,
		headerY:  -1,
	}
	if m.grid != nil {
		g.rows = m.grid.Rows()
		g.cols = m.grid.Cols()
	}
	if m.cfg.ShowRowNums {
		g.gutter = len(strconv.Itoa(maxInt(g.rows, 1))) + 1
	}
	if m.cfg.ShowRowDelete {
		g.deleteX = g.colX(g.cols) + 1
	}

	y := 0
	if m.cfg.ShowToolbar {
		g.toolbarY = y
		y++
	}
	if m.cfg.ShowHeaders {
		g.headerY = y
		y++
	}
	g.bodyTop = y
	return g
}

// colX is the x of the first content cell of column c. Every column is
// followed by a one-cell separator.
func (g geometry) colX(c int) int {
	return g.gutter + c*(g.cellW+1)
}

// blockWidth is the width of columns left..right including their separators.
func (g geometry) blockWidth(left, right int) int {
	return (right - left + 1) * (g.cellW + 1)
}

// colAt maps x to a column index. ok is false outside the cell area.
func (g geometry) colAt(x int) (int, bool) {
	if x < g.gutter || g.cols == 0 {
		return 0, false
	}
	c := (x - g.gutter) / (g.cellW + 1)
	if c >= g.cols {
		return 0, false
	}
	return c, true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
