package gridview

import "github.com/iw2rmb/quilt/grid"

// ChangeEvent is delivered to Config.OnChange after an effective change.
type ChangeEvent struct {
	Version        uint64
	ContentVersion uint64
	Rows           int
	Cols           int
	Selection      grid.SelectionState
	Dragging       bool

	// Change is the grid's most recent change. When several changes happen
	// within one Update, only the last is reported here.
	Change    grid.Change
	HasChange bool
}

func buildChangeEvent(g *grid.Grid) ChangeEvent {
	ev := ChangeEvent{
		Version:        g.Version(),
		ContentVersion: g.ContentVersion(),
		Rows:           g.Rows(),
		Cols:           g.Cols(),
		Dragging:       g.Dragging(),
	}
	if r, ok := g.Selection(); ok {
		ev.Selection = grid.SelectionState{Active: true, Rect: r}
	}
	ev.Change, ev.HasChange = g.LastChange()
	return ev
}
