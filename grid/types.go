package grid

// Pos points at a cell by (row, col).
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Rect is an axis-aligned block of cells, inclusive on every edge.
// A normalized Rect satisfies Top <= Bottom and Left <= Right.
type Rect struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// RectFrom returns the rectangle spanned by corners a and b, inclusive.
func RectFrom(a, b Pos) Rect {
	return Rect{
		Top:    minInt(a.Row, b.Row),
		Left:   minInt(a.Col, b.Col),
		Bottom: maxInt(a.Row, b.Row),
		Right:  maxInt(a.Col, b.Col),
	}
}

// CellRect returns the 1x1 rectangle at p.
func CellRect(p Pos) Rect {
	return Rect{Top: p.Row, Left: p.Col, Bottom: p.Row, Right: p.Col}
}

func (r Rect) TopLeft() Pos { return Pos{Row: r.Top, Col: r.Left} }

func (r Rect) BottomRight() Pos { return Pos{Row: r.Bottom, Col: r.Right} }

func (r Rect) Rows() int { return r.Bottom - r.Top + 1 }

func (r Rect) Cols() int { return r.Right - r.Left + 1 }

// Area returns the number of cells in r.
func (r Rect) Area() int { return r.Rows() * r.Cols() }

func (r Rect) Contains(p Pos) bool {
	return p.Row >= r.Top && p.Row <= r.Bottom && p.Col >= r.Left && p.Col <= r.Right
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Top >= r.Top && o.Bottom <= r.Bottom && o.Left >= r.Left && o.Right <= r.Right
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.Top <= o.Bottom && o.Top <= r.Bottom && r.Left <= o.Right && o.Left <= r.Right
}

// Positions lists every cell in r in row-major order.
func (r Rect) Positions() []Pos {
	if r.Bottom < r.Top || r.Right < r.Left {
		return nil
	}
	out := make([]Pos, 0, r.Area())
	for row := r.Top; row <= r.Bottom; row++ {
		for col := r.Left; col <= r.Right; col++ {
			out = append(out, Pos{Row: row, Col: col})
		}
	}
	return out
}

// CellKind classifies a cell with respect to merged spans.
type CellKind uint8

const (
	// CellPlain is an unmerged 1x1 cell.
	CellPlain CellKind = iota
	// CellAnchor is the top-left cell of a span. It carries the span extent
	// and the visible merged text.
	CellAnchor
	// CellCovered is any other cell inside a span. It has no content of its own.
	CellCovered
)

func (k CellKind) String() string {
	switch k {
	case CellPlain:
		return "plain"
	case CellAnchor:
		return "anchor"
	case CellCovered:
		return "covered"
	default:
		return "unknown"
	}
}

// Cell is a read-only view of one grid position.
type Cell struct {
	Kind CellKind
	Text string

	// RowSpan and ColSpan are 1 for plain cells, the span extent for anchors,
	// and 0 for covered cells.
	RowSpan int
	ColSpan int

	// Anchor is the top-left position of the span the cell belongs to, or the
	// cell's own position when it is plain.
	Anchor Pos
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
