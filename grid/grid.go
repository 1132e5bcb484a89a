package grid

// Options configures a new Grid.
type Options struct {
	Rows int // default: 1
	Cols int // default: 2

	// Cells seeds initial content. The grid grows to fit it; missing entries
	// are empty.
	Cells [][]string
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

type dragState struct {
	active bool
	anchor Pos
}

// Grid is the pure grid state: cell text, merged spans, selection and the
// active drag gesture.
//
// A Grid is driven by one event loop and is not safe for concurrent use.
type Grid struct {
	cells [][]string
	rows  int
	cols  int

	// spans are pairwise disjoint merge rectangles, each at least 2 cells.
	spans []Rect

	sel  selectionState
	drag dragState

	version        uint64
	contentVersion uint64

	lastChange    Change
	hasLastChange bool
}

func New(opt Options) *Grid {
	if opt.Rows <= 0 {
		opt.Rows = 1
	}
	if opt.Cols <= 0 {
		opt.Cols = 2
	}
	rows, cols := opt.Rows, opt.Cols
	if len(opt.Cells) > rows {
		rows = len(opt.Cells)
	}
	for _, row := range opt.Cells {
		if len(row) > cols {
			cols = len(row)
		}
	}

	cells := make([][]string, rows)
	for r := range cells {
		cells[r] = make([]string, cols)
		if r < len(opt.Cells) {
			copy(cells[r], opt.Cells[r])
		}
	}
	return &Grid{
		cells: cells,
		rows:  rows,
		cols:  cols,
	}
}

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Cols() int { return g.cols }

// Version increments on every effective state change, selection included.
func (g *Grid) Version() uint64 { return g.version }

// ContentVersion increments only when text, shape, or spans change.
func (g *Grid) ContentVersion() uint64 { return g.contentVersion }

// InBounds reports whether p addresses an existing cell.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Bounds returns the rectangle covering the whole grid. ok is false when the
// grid has no cells.
func (g *Grid) Bounds() (Rect, bool) {
	if g.rows == 0 || g.cols == 0 {
		return Rect{}, false
	}
	return Rect{Top: 0, Left: 0, Bottom: g.rows - 1, Right: g.cols - 1}, true
}

// Cell returns the cell at p.
func (g *Grid) Cell(p Pos) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	span, ok := g.SpanAt(p)
	if !ok {
		return Cell{Kind: CellPlain, Text: g.cells[p.Row][p.Col], RowSpan: 1, ColSpan: 1, Anchor: p}, true
	}
	anchor := span.TopLeft()
	if p != anchor {
		return Cell{Kind: CellCovered, Anchor: anchor}, true
	}
	return Cell{
		Kind:    CellAnchor,
		Text:    g.cells[p.Row][p.Col],
		RowSpan: span.Rows(),
		ColSpan: span.Cols(),
		Anchor:  anchor,
	}, true
}

// Text returns the content at p. Covered and out-of-bounds cells read as "".
func (g *Grid) Text(p Pos) string {
	c, ok := g.Cell(p)
	if !ok {
		return ""
	}
	return c.Text
}

// Values returns a copy of the cell text in row-major order.
func (g *Grid) Values() [][]string {
	out := make([][]string, len(g.cells))
	for r, row := range g.cells {
		out[r] = append([]string(nil), row...)
	}
	return out
}

// Spans returns a copy of the merged rectangles in creation order.
func (g *Grid) Spans() []Rect {
	return append([]Rect(nil), g.spans...)
}

// SpanAt returns the merged rectangle containing p, if any.
func (g *Grid) SpanAt(p Pos) (Rect, bool) {
	for _, s := range g.spans {
		if s.Contains(p) {
			return s, true
		}
	}
	return Rect{}, false
}

func (g *Grid) isCovered(p Pos) bool {
	s, ok := g.SpanAt(p)
	return ok && s.TopLeft() != p
}

// resolveAnchor maps a covered position to the anchor of its span.
func (g *Grid) resolveAnchor(p Pos) Pos {
	if s, ok := g.SpanAt(p); ok {
		return s.TopLeft()
	}
	return p
}

func (g *Grid) clampPos(p Pos) Pos {
	return Pos{
		Row: clampInt(p.Row, 0, g.rows-1),
		Col: clampInt(p.Col, 0, g.cols-1),
	}
}

func (g *Grid) clampRect(r Rect) (Rect, bool) {
	b, ok := g.Bounds()
	if !ok {
		return Rect{}, false
	}
	r = RectFrom(r.TopLeft(), r.BottomRight())
	if !b.Overlaps(r) {
		return Rect{}, false
	}
	return Rect{
		Top:    maxInt(r.Top, b.Top),
		Left:   maxInt(r.Left, b.Left),
		Bottom: minInt(r.Bottom, b.Bottom),
		Right:  minInt(r.Right, b.Right),
	}, true
}

func (g *Grid) bumpState() { g.version++ }

func (g *Grid) bumpContent() {
	g.version++
	g.contentVersion++
}
