package gridview

// Config configures the grid Model.
type Config struct {
	// Initial shape and content for the internal grid. Forwarded to
	// grid.Options.
	Rows  int
	Cols  int
	Cells [][]string

	// CellWidth is the width of every column in terminal cells (default: 10).
	CellWidth int

	// Chrome. All off by default.
	ShowToolbar   bool
	ShowHeaders   bool
	ShowRowNums   bool
	ShowRowDelete bool
	ShowStatus    bool

	// ReadOnly allows selection but rejects every content mutation.
	ReadOnly bool

	Style  Style
	KeyMap KeyMap

	ScrollPolicy ScrollPolicy

	// MutationMode controls whether input mutates the grid, is emitted to
	// OnIntent, or both.
	MutationMode MutationMode
	OnIntent     func(IntentBatch) IntentDecision

	// OnChange is called once per effective grid state change observed by
	// Update. It is not called for no-ops.
	OnChange func(ChangeEvent)

	Clipboard Clipboard

	// ID distinguishes component instances in render snapshot tokens.
	// A random ID is assigned when empty.
	ID string
}

const defaultCellWidth = 10

func (c Config) cellWidth() int {
	if c.CellWidth <= 0 {
		return defaultCellWidth
	}
	return c.CellWidth
}
