package gridview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quilt/grid"
)

// startEditing opens the inline editor on the visible cell at the top-left of
// the selection. With replace set, seed replaces the current text.
func (m *Model) startEditing(seed string, replace bool) tea.Cmd {
	if m.grid == nil {
		return nil
	}
	if m.cfg.ReadOnly {
		m.status = "read-only"
		m.statusReject = true
		return nil
	}
	r, ok := m.grid.Selection()
	if !ok {
		m.reportResult(grid.RejectedEmptySelection)
		return nil
	}
	c, ok := m.grid.Cell(r.TopLeft())
	if !ok {
		return nil
	}
	anchor, _ := m.grid.Cell(c.Anchor)

	text := anchor.Text
	if replace {
		text = seed
	}

	geo := m.geometry()
	span, ok := m.grid.SpanAt(c.Anchor)
	if !ok {
		span = grid.CellRect(c.Anchor)
	}
	w := geo.blockWidth(span.Left, span.Right) - 1
	if w < 1 {
		w = 1
	}

	m.editPos = c.Anchor
	m.editing = true
	m.input.Width = w
	m.input.SetValue(text)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) commitEditing() {
	if !m.editing {
		return
	}
	text := m.input.Value()
	pos := m.editPos
	m.stopEditing()
	m.dispatch(Intent{
		Kind:    IntentEdit,
		Payload: EditIntentPayload{Pos: pos, Text: text},
	})
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
}

// editTargetValid reports whether the cell being edited still exists as a
// standalone cell.
func (m *Model) editTargetValid() bool {
	c, ok := m.grid.Cell(m.editPos)
	return ok && c.Kind != grid.CellCovered
}
