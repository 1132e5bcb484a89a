package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendSelection_YieldsFullRectangle(t *testing.T) {
	g := New(Options{Rows: 5, Cols: 5})
	corners := []Pos{
		{Row: 0, Col: 0}, {Row: 4, Col: 4}, {Row: 2, Col: 3}, {Row: 4, Col: 0}, {Row: 1, Col: 1},
	}

	for _, a := range corners {
		for _, b := range corners {
			require.Equal(t, Applied, g.BeginSelection(a))
			require.True(t, g.ExtendSelection(b).OK())

			want := RectFrom(a, b)
			r, ok := g.Selection()
			require.True(t, ok)
			assert.Equal(t, want, r, "anchor=%v end=%v", a, b)

			got := g.SelectedPositions()
			wantCount := (absInt(a.Row-b.Row) + 1) * (absInt(a.Col-b.Col) + 1)
			assert.Len(t, got, wantCount, "anchor=%v end=%v", a, b)
			for row := 0; row < 5; row++ {
				for col := 0; col < 5; col++ {
					p := Pos{Row: row, Col: col}
					assert.Equal(t, want.Contains(p), g.IsSelected(p), "pos=%v anchor=%v end=%v", p, a, b)
				}
			}
			require.Equal(t, Applied, g.EndSelection())
		}
	}
}

func TestExtendSelection_ShrinksWhenDragReverses(t *testing.T) {
	g := New(Options{Rows: 4, Cols: 4})
	g.BeginSelection(Pos{Row: 0, Col: 0})
	g.ExtendSelection(Pos{Row: 3, Col: 3})
	g.ExtendSelection(Pos{Row: 1, Col: 0})

	r, ok := g.Selection()
	require.True(t, ok)
	assert.Equal(t, Rect{Top: 0, Left: 0, Bottom: 1, Right: 0}, r)
	assert.False(t, g.IsSelected(Pos{Row: 3, Col: 3}))
}

func TestExtendSelection_ClampsIntoGrid(t *testing.T) {
	g := New(Options{Rows: 2, Cols: 3})
	g.BeginSelection(Pos{Row: 1, Col: 1})
	require.Equal(t, Applied, g.ExtendSelection(Pos{Row: -4, Col: 99}))

	r, _ := g.Selection()
	assert.Equal(t, Rect{Top: 0, Left: 1, Bottom: 1, Right: 2}, r)
}

func TestBeginThenEnd_KeepsSingleCell(t *testing.T) {
	g := New(Options{Rows: 3, Cols: 3})
	p := Pos{Row: 2, Col: 1}
	require.Equal(t, Applied, g.BeginSelection(p))
	assert.True(t, g.Dragging())
	require.Equal(t, Applied, g.EndSelection())

	assert.False(t, g.Dragging())
	_, ok := g.DragAnchor()
	assert.False(t, ok)
	assert.Equal(t, []Pos{p}, g.SelectedPositions())
}

func TestExtendSelection_AfterEndIsRejected(t *testing.T) {
	g := New(Options{Rows: 3, Cols: 3})
	assert.Equal(t, RejectedNotDragging, g.ExtendSelection(Pos{Row: 1, Col: 1}))

	g.BeginSelection(Pos{Row: 0, Col: 0})
	g.ExtendSelection(Pos{Row: 1, Col: 1})
	g.EndSelection()
	before := g.Version()

	assert.Equal(t, RejectedNotDragging, g.ExtendSelection(Pos{Row: 2, Col: 2}))
	assert.Equal(t, RejectedNotDragging, g.EndSelection())
	assert.Equal(t, before, g.Version())

	r, _ := g.Selection()
	assert.Equal(t, Rect{Top: 0, Left: 0, Bottom: 1, Right: 1}, r)
}

func TestExtendSelection_UsesLatestAnchor(t *testing.T) {
	g := New(Options{Rows: 4, Cols: 4})
	g.BeginSelection(Pos{Row: 0, Col: 0})
	g.EndSelection()
	g.BeginSelection(Pos{Row: 3, Col: 3})
	g.ExtendSelection(Pos{Row: 2, Col: 2})

	r, _ := g.Selection()
	assert.Equal(t, Rect{Top: 2, Left: 2, Bottom: 3, Right: 3}, r)
	anchor, ok := g.DragAnchor()
	require.True(t, ok)
	assert.Equal(t, Pos{Row: 3, Col: 3}, anchor)
}

func TestBeginSelection_OutOfBoundsRejected(t *testing.T) {
	g := New(Options{})
	assert.Equal(t, RejectedOutOfBounds, g.BeginSelection(Pos{Row: 1, Col: 0}))
	assert.Equal(t, RejectedOutOfBounds, g.BeginSelection(Pos{Row: 0, Col: -1}))
	assert.False(t, g.Dragging())
	assert.Zero(t, g.Version())
}

func TestBeginSelection_CoveredCellResolvesToAnchor(t *testing.T) {
	g := New(Options{Rows: 3, Cols: 3})
	require.Equal(t, Applied, g.MergeRect(Rect{Top: 0, Left: 0, Bottom: 1, Right: 1}))

	require.Equal(t, Applied, g.BeginSelection(Pos{Row: 1, Col: 1}))
	anchor, ok := g.DragAnchor()
	require.True(t, ok)
	assert.Equal(t, Pos{Row: 0, Col: 0}, anchor)
}

func TestSelection_VersionsOnlyOnEffectiveChange(t *testing.T) {
	g := New(Options{Rows: 3, Cols: 3})
	g.BeginSelection(Pos{Row: 0, Col: 0})
	v := g.Version()

	assert.Equal(t, Unchanged, g.ExtendSelection(Pos{Row: 0, Col: 0}))
	assert.Equal(t, v, g.Version())

	assert.Equal(t, Applied, g.ExtendSelection(Pos{Row: 1, Col: 0}))
	assert.Equal(t, v+1, g.Version())
	assert.Zero(t, g.ContentVersion(), "selection must not bump content version")

	ch, ok := g.LastChange()
	require.True(t, ok)
	assert.Equal(t, ChangeSelect, ch.Kind)
	assert.Equal(t, SelectionState{Active: true, Rect: Rect{Top: 0, Left: 0, Bottom: 0, Right: 0}}, ch.SelectionBefore)
	assert.Equal(t, SelectionState{Active: true, Rect: Rect{Top: 0, Left: 0, Bottom: 1, Right: 0}}, ch.SelectionAfter)
}

func TestSelectRect_ClampsAndCancelsDrag(t *testing.T) {
	g := New(Options{Rows: 3, Cols: 3})
	g.BeginSelection(Pos{Row: 0, Col: 0})

	require.Equal(t, Applied, g.SelectRect(Rect{Top: 2, Left: 1, Bottom: 9, Right: 9}))
	assert.False(t, g.Dragging())
	r, _ := g.Selection()
	assert.Equal(t, Rect{Top: 2, Left: 1, Bottom: 2, Right: 2}, r)

	assert.Equal(t, RejectedOutOfBounds, g.SelectRect(Rect{Top: 5, Left: 5, Bottom: 6, Right: 6}))
}

func TestDeselect(t *testing.T) {
	g := New(Options{})
	assert.Equal(t, Unchanged, g.Deselect())

	g.BeginSelection(Pos{})
	assert.Equal(t, Applied, g.Deselect())
	assert.False(t, g.Dragging())
	_, ok := g.Selection()
	assert.False(t, ok)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
