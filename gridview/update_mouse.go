package gridview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quilt/grid"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheelMouse(msg) {
		if m.cfg.ScrollPolicy == ScrollAllowManual {
			m.viewport, cmd = m.viewport.Update(msg)
		}
		return m, cmd
	}

	if !m.focused || m.grid == nil {
		return m, cmd
	}

	// Only left button interactions drive selection and buttons.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, cmd
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}
		m.commitEditing()

		hit := m.hitTest(msg.X, msg.Y)
		switch hit.Kind { //nolint:exhaustive
		case HitButton:
			m.runAction(hit.Action)
		case HitRowDelete:
			m.dispatch(Intent{Kind: IntentDeleteRow, Payload: DeleteRowIntentPayload{Row: hit.Row}})
		case HitCell:
			m.dispatch(Intent{Kind: IntentBeginSelection, Payload: SelectionIntentPayload{Pos: hit.Pos}})
		}

	case tea.MouseActionMotion:
		if !m.grid.Dragging() {
			return m, cmd
		}
		p, ok := m.clampToCell(msg.X, msg.Y)
		if !ok {
			return m, cmd
		}
		m.dispatch(Intent{Kind: IntentExtendSelection, Payload: SelectionIntentPayload{Pos: m.extendTarget(p)}})

	case tea.MouseActionRelease:
		if !m.grid.Dragging() {
			return m, cmd
		}
		if p, ok := m.clampToCell(msg.X, msg.Y); ok {
			m.dispatch(Intent{Kind: IntentExtendSelection, Payload: SelectionIntentPayload{Pos: m.extendTarget(p)}})
		}
		m.dispatch(Intent{Kind: IntentEndSelection})
	}

	return m, cmd
}

// extendTarget widens a drag target inside a merged span to the span corner
// farthest from the drag anchor, so dragging over a merged block selects all
// of it.
func (m *Model) extendTarget(p grid.Pos) grid.Pos {
	span, ok := m.grid.SpanAt(p)
	if !ok {
		return p
	}
	anchor, ok := m.grid.DragAnchor()
	if !ok {
		return p
	}
	out := grid.Pos{Row: span.Top, Col: span.Left}
	if anchor.Row <= span.Top {
		out.Row = span.Bottom
	}
	if anchor.Col <= span.Left {
		out.Col = span.Right
	}
	return out
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

// mouseInBounds reports whether (x, y) lies inside the component. An unsized
// component accepts every coordinate.
func (m Model) mouseInBounds(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return true
	}
	return x < m.viewport.Width && y < m.viewport.Height+m.chromeLines()
}
