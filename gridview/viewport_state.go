package gridview

// ViewportState is a host-facing snapshot of the body scroll state.
type ViewportState struct {
	// TopRow is the grid row rendered at the first body line.
	TopRow int
	// VisibleRows is the number of grid rows on screen.
	VisibleRows int
	// BodyTop is the component-local y of the first body line.
	BodyTop int
}

// ViewportState returns the current viewport state. An unsized component
// shows every row.
func (m Model) ViewportState() ViewportState {
	rows := 0
	if m.grid != nil {
		rows = m.grid.Rows()
	}
	top, visible := 0, rows
	if m.viewport.Height > 0 {
		top = clampInt(m.viewport.YOffset, 0, maxInt(rows-1, 0))
		visible = minInt(rows-top, m.viewport.Height)
	}
	return ViewportState{
		TopRow:      top,
		VisibleRows: maxInt(visible, 0),
		BodyTop:     m.geometry().bodyTop,
	}
}
