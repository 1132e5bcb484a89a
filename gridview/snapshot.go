package gridview

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/iw2rmb/quilt/grid"
)

// SnapshotToken identifies one rendered state. Tokens change whenever any
// render input changes.
type SnapshotToken uint64

// RowMap maps a body screen line to a grid row.
type RowMap struct {
	ScreenRow int
	GridRow   int
}

// ColumnMap maps a grid column to its screen x range.
type ColumnMap struct {
	Col    int
	StartX int
	Width  int
}

// RenderSnapshot is a stable host-facing view of the last render geometry.
type RenderSnapshot struct {
	Token       SnapshotToken
	GridVersion uint64
	Viewport    ViewportState
	Rows        []RowMap
	Columns     []ColumnMap
}

type snapshotSignature struct {
	gridVersion uint64

	viewportWidth   int
	viewportHeight  int
	viewportYOffset int

	focused  bool
	editing  bool
	editPos  grid.Pos
	input    string
	inputPos int

	status       string
	statusReject bool

	id        string
	cellWidth int
	flags     uint64
}

func (m *Model) currentSnapshotSignature() snapshotSignature {
	sig := snapshotSignature{
		viewportWidth:   m.viewport.Width,
		viewportHeight:  m.viewport.Height,
		viewportYOffset: m.viewport.YOffset,
		focused:         m.focused,
		editing:         m.editing,
		editPos:         m.editPos,
		input:           m.input.Value(),
		inputPos:        m.input.Position(),
		status:          m.status,
		statusReject:    m.statusReject,
		id:              m.id,
		cellWidth:       m.cfg.cellWidth(),
	}
	for i, on := range []bool{
		m.cfg.ShowToolbar,
		m.cfg.ShowHeaders,
		m.cfg.ShowRowNums,
		m.cfg.ShowRowDelete,
		m.cfg.ShowStatus,
		m.cfg.ReadOnly,
	} {
		if on {
			sig.flags |= 1 << i
		}
	}
	if m.grid != nil {
		sig.gridVersion = m.grid.Version()
	}
	return sig
}

func hashSnapshotSignature(sig snapshotSignature) SnapshotToken {
	h := fnv.New64a()
	writeU64 := func(v uint64) {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v)
		_, _ = h.Write(b[:])
	}
	writeI := func(v int) { writeU64(uint64(v)) }
	writeB := func(v bool) {
		if v {
			writeU64(1)
			return
		}
		writeU64(0)
	}
	writeS := func(v string) {
		writeU64(uint64(len(v)))
		_, _ = h.Write([]byte(v))
	}

	writeU64(sig.gridVersion)
	writeI(sig.viewportWidth)
	writeI(sig.viewportHeight)
	writeI(sig.viewportYOffset)
	writeB(sig.focused)
	writeB(sig.editing)
	writeI(sig.editPos.Row)
	writeI(sig.editPos.Col)
	writeS(sig.input)
	writeI(sig.inputPos)
	writeS(sig.status)
	writeB(sig.statusReject)
	writeS(sig.id)
	writeI(sig.cellWidth)
	writeU64(sig.flags)

	tok := SnapshotToken(h.Sum64())
	if tok == 0 {
		return 1
	}
	return tok
}

// RenderSnapshot returns the geometry of the current render.
func (m Model) RenderSnapshot() RenderSnapshot {
	s := RenderSnapshot{
		Token:    hashSnapshotSignature((&m).currentSnapshotSignature()),
		Viewport: m.ViewportState(),
	}
	if m.grid == nil {
		return s
	}
	s.GridVersion = m.grid.Version()

	geo := m.geometry()
	if s.Viewport.VisibleRows > 0 {
		s.Rows = make([]RowMap, 0, s.Viewport.VisibleRows)
		for i := 0; i < s.Viewport.VisibleRows; i++ {
			s.Rows = append(s.Rows, RowMap{
				ScreenRow: s.Viewport.BodyTop + i,
				GridRow:   s.Viewport.TopRow + i,
			})
		}
	}
	if geo.cols > 0 {
		s.Columns = make([]ColumnMap, 0, geo.cols)
		for c := 0; c < geo.cols; c++ {
			s.Columns = append(s.Columns, ColumnMap{Col: c, StartX: geo.colX(c), Width: geo.cellW})
		}
	}
	return s
}

func (m Model) snapshotMatchesCurrent(s RenderSnapshot) bool {
	if s.Token == 0 {
		return false
	}
	return s.Token == hashSnapshotSignature((&m).currentSnapshotSignature())
}

// ScreenToCellWithSnapshot maps coordinates using s. It fails when s no
// longer matches the current render.
func (m Model) ScreenToCellWithSnapshot(s RenderSnapshot, x, y int) (grid.Pos, bool) {
	if !m.snapshotMatchesCurrent(s) {
		return grid.Pos{}, false
	}
	return m.ScreenToCell(x, y)
}

// CellToScreenWithSnapshot maps p using s. It fails when s no longer matches
// the current render.
func (m Model) CellToScreenWithSnapshot(s RenderSnapshot, p grid.Pos) (x, y int, ok bool) {
	if !m.snapshotMatchesCurrent(s) {
		return 0, 0, false
	}
	return m.CellToScreen(p)
}
