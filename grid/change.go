package grid

// ChangeKind identifies the operation that produced a Change.
type ChangeKind uint8

const (
	ChangeSelect ChangeKind = iota
	ChangeEdit
	ChangeClear
	ChangeMerge
	ChangeAddRow
	ChangeAddColumn
	ChangeDeleteRow
	ChangePaste
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSelect:
		return "select"
	case ChangeEdit:
		return "edit"
	case ChangeClear:
		return "clear"
	case ChangeMerge:
		return "merge"
	case ChangeAddRow:
		return "add-row"
	case ChangeAddColumn:
		return "add-column"
	case ChangeDeleteRow:
		return "delete-row"
	case ChangePaste:
		return "paste"
	default:
		return "unknown"
	}
}

// SelectionState captures the selection rectangle at a point in time.
type SelectionState struct {
	Active bool
	Rect   Rect
}

// Change is a versioned description of one effective mutation.
type Change struct {
	Kind            ChangeKind
	VersionBefore   uint64
	VersionAfter    uint64
	SelectionBefore SelectionState
	SelectionAfter  SelectionState

	// Rect is the block of cells the change touched. For ChangeDeleteRow it
	// is the removed row as it was before removal.
	Rect Rect
}

type changeBuilder struct {
	kind            ChangeKind
	versionBefore   uint64
	selectionBefore SelectionState
}

// LastChange returns the most recent effective change.
func (g *Grid) LastChange() (Change, bool) {
	if !g.hasLastChange {
		return Change{}, false
	}
	return g.lastChange, true
}

func (g *Grid) selectionSnapshot() SelectionState {
	r, ok := g.Selection()
	if !ok {
		return SelectionState{}
	}
	return SelectionState{Active: true, Rect: r}
}

func (g *Grid) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:            kind,
		versionBefore:   g.version,
		selectionBefore: g.selectionSnapshot(),
	}
}

func (g *Grid) commitChange(cb changeBuilder, r Rect) {
	if g.version == cb.versionBefore {
		return
	}
	g.lastChange = Change{
		Kind:            cb.kind,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    g.version,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  g.selectionSnapshot(),
		Rect:            r,
	}
	g.hasLastChange = true
}
