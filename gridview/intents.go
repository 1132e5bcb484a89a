package gridview

import "github.com/iw2rmb/quilt/grid"

// MutationMode controls whether input handling mutates the local grid,
// emits intents to the host, or both.
type MutationMode uint8

const (
	// MutateInGrid applies every intent to the local grid.
	MutateInGrid MutationMode = iota
	// EmitIntentsOnly emits intents and does not apply local mutations.
	EmitIntentsOnly
	// EmitIntentsAndMutate emits intents and applies them locally when the
	// host decision allows it.
	EmitIntentsAndMutate
)

// IntentKind identifies the semantic action requested by input handling.
type IntentKind uint8

const (
	IntentBeginSelection IntentKind = iota
	IntentExtendSelection
	IntentEndSelection
	IntentDeselect
	IntentEdit
	IntentClear
	IntentMerge
	IntentAddRow
	IntentAddColumn
	IntentDeleteRow
	IntentPaste
)

func (k IntentKind) String() string {
	switch k {
	case IntentBeginSelection:
		return "begin-selection"
	case IntentExtendSelection:
		return "extend-selection"
	case IntentEndSelection:
		return "end-selection"
	case IntentDeselect:
		return "deselect"
	case IntentEdit:
		return "edit"
	case IntentClear:
		return "clear"
	case IntentMerge:
		return "merge"
	case IntentAddRow:
		return "add-row"
	case IntentAddColumn:
		return "add-column"
	case IntentDeleteRow:
		return "delete-row"
	case IntentPaste:
		return "paste"
	default:
		return "unknown"
	}
}

// GridState captures grid-local state before an intent is executed.
type GridState struct {
	Version   uint64
	Rows      int
	Cols      int
	Selection grid.SelectionState
	Dragging  bool
}

// Intent is a typed semantic action emitted from input processing.
// Payloads carry positions only; every decision is made by the grid.
type Intent struct {
	Kind    IntentKind
	Before  GridState
	Payload any
}

// IntentBatch groups intents produced from one input event.
type IntentBatch struct {
	Intents []Intent
}

// IntentDecision controls whether the component applies mutations locally.
// It is used in EmitIntentsAndMutate mode.
type IntentDecision struct {
	ApplyLocally bool
}

// SelectionIntentPayload carries the cell for begin/extend selection.
type SelectionIntentPayload struct {
	Pos grid.Pos
}

// EditIntentPayload describes a committed cell edit.
type EditIntentPayload struct {
	Pos  grid.Pos
	Text string
}

// DeleteRowIntentPayload names the row to delete.
type DeleteRowIntentPayload struct {
	Row int
}

// PasteIntentPayload describes a clipboard block pasted at Origin.
type PasteIntentPayload struct {
	Origin grid.Pos
	Block  [][]string
}

func gridStateFrom(g *grid.Grid) GridState {
	if g == nil {
		return GridState{}
	}
	st := GridState{
		Version:  g.Version(),
		Rows:     g.Rows(),
		Cols:     g.Cols(),
		Dragging: g.Dragging(),
	}
	if r, ok := g.Selection(); ok {
		st.Selection = grid.SelectionState{Active: true, Rect: r}
	}
	return st
}

func normalizeMutationMode(mode MutationMode) MutationMode {
	switch mode {
	case MutateInGrid, EmitIntentsOnly, EmitIntentsAndMutate:
		return mode
	default:
		return MutateInGrid
	}
}

func mutatesContent(k IntentKind) bool {
	switch k {
	case IntentEdit, IntentClear, IntentMerge, IntentAddRow, IntentAddColumn, IntentDeleteRow, IntentPaste:
		return true
	default:
		return false
	}
}

// dispatch routes one intent through the mutation mode and reports the grid
// result. Intents not applied locally report grid.Unchanged.
func (m *Model) dispatch(in Intent) grid.Result {
	if m.grid == nil {
		return grid.Unchanged
	}
	if m.cfg.ReadOnly && mutatesContent(in.Kind) {
		m.status = "read-only"
		m.statusReject = true
		return grid.Unchanged
	}
	in.Before = gridStateFrom(m.grid)

	switch normalizeMutationMode(m.cfg.MutationMode) {
	case EmitIntentsOnly:
		if m.cfg.OnIntent != nil {
			m.cfg.OnIntent(IntentBatch{Intents: []Intent{in}})
		}
		return grid.Unchanged
	case EmitIntentsAndMutate:
		if m.cfg.OnIntent != nil {
			dec := m.cfg.OnIntent(IntentBatch{Intents: []Intent{in}})
			if !dec.ApplyLocally {
				return grid.Unchanged
			}
		}
	}

	res := m.apply(in)
	if mutatesContent(in.Kind) {
		m.reportResult(res)
	}
	return res
}

func (m *Model) apply(in Intent) grid.Result {
	g := m.grid
	switch in.Kind {
	case IntentBeginSelection:
		p, _ := in.Payload.(SelectionIntentPayload)
		return g.BeginSelection(p.Pos)
	case IntentExtendSelection:
		p, _ := in.Payload.(SelectionIntentPayload)
		return g.ExtendSelection(p.Pos)
	case IntentEndSelection:
		return g.EndSelection()
	case IntentDeselect:
		return g.Deselect()
	case IntentEdit:
		p, _ := in.Payload.(EditIntentPayload)
		return g.EditCell(p.Pos.Row, p.Pos.Col, p.Text)
	case IntentClear:
		return g.ClearSelectedCells()
	case IntentMerge:
		return g.Merge()
	case IntentAddRow:
		return g.AddRow()
	case IntentAddColumn:
		return g.AddColumn()
	case IntentDeleteRow:
		p, _ := in.Payload.(DeleteRowIntentPayload)
		return g.DeleteRow(p.Row)
	case IntentPaste:
		p, _ := in.Payload.(PasteIntentPayload)
		return g.Paste(p.Origin, p.Block)
	default:
		return grid.Unchanged
	}
}

// reportResult updates the status line for content operations.
func (m *Model) reportResult(res grid.Result) {
	if res.OK() {
		m.status = ""
		m.statusReject = false
		return
	}
	m.status = res.String()
	m.statusReject = true
}
