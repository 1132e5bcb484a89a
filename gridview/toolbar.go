package gridview

import "strings"

// Action is a toolbar button action.
type Action uint8

const (
	ActionNone Action = iota
	ActionAddRow
	ActionAddColumn
	ActionMerge
	ActionClear
)

func (a Action) String() string {
	switch a {
	case ActionAddRow:
		return "add-row"
	case ActionAddColumn:
		return "add-column"
	case ActionMerge:
		return "merge"
	case ActionClear:
		return "clear"
	default:
		return "none"
	}
}

type toolbarButton struct {
	action Action
	label  string
	x      int
}

var toolbarLabels = []struct {
	action Action
	label  string
}{
	{ActionAddRow, "[+row]"},
	{ActionAddColumn, "[+col]"},
	{ActionMerge, "[merge]"},
	{ActionClear, "[clear]"},
}

// toolbarButtons lays buttons out left to right, one space apart.
func toolbarButtons() []toolbarButton {
	out := make([]toolbarButton, 0, len(toolbarLabels))
	x := 0
	for _, b := range toolbarLabels {
		out = append(out, toolbarButton{action: b.action, label: b.label, x: x})
		x += len(b.label) + 1
	}
	return out
}

func actionAt(x int) Action {
	for _, b := range toolbarButtons() {
		if x >= b.x && x < b.x+len(b.label) {
			return b.action
		}
	}
	return ActionNone
}

func (m Model) renderToolbar() string {
	buttons := toolbarButtons()
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		parts = append(parts, m.cfg.Style.Button.Render(b.label))
	}
	return (&m).clipLine(strings.Join(parts, " "))
}

// runAction dispatches the intent behind a toolbar button.
func (m *Model) runAction(a Action) {
	switch a {
	case ActionAddRow:
		m.dispatch(Intent{Kind: IntentAddRow})
	case ActionAddColumn:
		m.dispatch(Intent{Kind: IntentAddColumn})
	case ActionMerge:
		m.dispatch(Intent{Kind: IntentMerge})
	case ActionClear:
		m.dispatch(Intent{Kind: IntentClear})
	}
}
