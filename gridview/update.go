package gridview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quilt/grid"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.grid == nil {
		return m, nil
	}
	if m.editing {
		return m.updateEditingKey(msg)
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.AddRow):
		m.dispatch(Intent{Kind: IntentAddRow})
	case key.Matches(msg, km.AddColumn):
		m.dispatch(Intent{Kind: IntentAddColumn})
	case key.Matches(msg, km.DeleteRow):
		r, ok := m.grid.Selection()
		if !ok {
			m.reportResult(grid.RejectedEmptySelection)
			break
		}
		m.dispatch(Intent{Kind: IntentDeleteRow, Payload: DeleteRowIntentPayload{Row: r.Top}})
	case key.Matches(msg, km.Merge):
		m.dispatch(Intent{Kind: IntentMerge})
	case key.Matches(msg, km.Clear):
		m.dispatch(Intent{Kind: IntentClear})

	case key.Matches(msg, km.Edit):
		return m, m.startEditing("", false)
	case key.Matches(msg, km.Cancel):
		m.dispatch(Intent{Kind: IntentDeselect})

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	default:
		// Typing on a selected cell replaces its text, as in a spreadsheet.
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			return m, m.startEditing(string(msg.Runes), true)
		}
	}
	return m, nil
}

func (m Model) updateEditingKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Edit):
		m.commitEditing()
		return m, nil
	case key.Matches(msg, km.Cancel):
		m.stopEditing()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
