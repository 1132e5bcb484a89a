package gridview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the grid key bindings.
//
// There are no selection bindings; selection is mouse-driven.
type KeyMap struct {
	AddRow, AddColumn, DeleteRow key.Binding
	Merge, Clear                 key.Binding

	Edit, Cancel key.Binding
	Copy, Paste  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddRow:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "add row")),
		AddColumn: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "add column")),
		DeleteRow: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete row")),

		Merge: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "merge cells")),
		Clear: key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "clear cells")),

		Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit/commit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

func keyMapIsZero(km KeyMap) bool {
	for _, b := range []key.Binding{
		km.AddRow, km.AddColumn, km.DeleteRow,
		km.Merge, km.Clear,
		km.Edit, km.Cancel,
		km.Copy, km.Paste,
	} {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
