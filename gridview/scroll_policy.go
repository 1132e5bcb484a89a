package gridview

// ScrollPolicy controls whether the mouse wheel may scroll the rows.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the grid body.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFixed ignores wheel input; the host drives scrolling.
	ScrollFixed
)
