package gridview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quilt/grid"
)

func TestUpdate_AddRowAndColumnKeys(t *testing.T) {
	m := newTestModel(Config{})
	m = keyType(m, tea.KeyCtrlR)
	m = keyType(m, tea.KeyCtrlT)
	if got := m.Grid().Rows(); got != 2 {
		t.Fatalf("rows: got %d, want 2", got)
	}
	if got := m.Grid().Cols(); got != 3 {
		t.Fatalf("cols: got %d, want 3", got)
	}
}

func TestUpdate_DeleteRowKeyUsesSelectionTop(t *testing.T) {
	m := newTestModel(Config{Cells: [][]string{{"a"}, {"b"}, {"c"}}})
	m = press(m, 0, 1)
	m = release(m, 0, 1)
	m = keyType(m, tea.KeyCtrlD)

	if got := m.Grid().Values(); len(got) != 2 || got[0][0] != "a" || got[1][0] != "c" {
		t.Fatalf("values after delete: got %q", got)
	}
}

func TestUpdate_DeleteRowKeyWithoutSelectionReportsStatus(t *testing.T) {
	m := newTestModel(Config{})
	m = keyType(m, tea.KeyCtrlD)
	if got := m.Grid().Rows(); got != 1 {
		t.Fatalf("rows: got %d, want 1", got)
	}
	if got, want := m.Status(), grid.RejectedEmptySelection.String(); got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}
}

func TestUpdate_MergeWithSingleCellReportsStatus(t *testing.T) {
	m := newTestModel(Config{})
	m = press(m, 0, 0)
	m = release(m, 0, 0)
	m = keyType(m, tea.KeyCtrlG)
	if got := len(m.Grid().Spans()); got != 0 {
		t.Fatalf("spans: got %d, want 0", got)
	}
	if got, want := m.Status(), grid.RejectedInsufficientSelection.String(); got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}

	// A later successful operation clears the message.
	m = keyType(m, tea.KeyCtrlR)
	if got := m.Status(); got != "" {
		t.Fatalf("status after add row: got %q, want empty", got)
	}
}

func TestUpdate_ClearKeyEmptiesSelection(t *testing.T) {
	m := newTestModel(Config{Cells: [][]string{{"a", "b", "c"}}})
	m = drag(m, 0, 0, 4, 0)
	m = keyType(m, tea.KeyDelete)

	got := m.Grid().Values()[0]
	if got[0] != "" || got[1] != "" || got[2] != "c" {
		t.Fatalf("values after clear: got %q, want [\"\" \"\" \"c\"]", got)
	}
}

func TestUpdate_TypingEditsSelectedCell(t *testing.T) {
	m := newTestModel(Config{Cells: [][]string{{"old", "b"}}})
	m = press(m, 0, 0)
	m = release(m, 0, 0)

	m = typeRunes(m, "xy")
	if !m.Editing() {
		t.Fatalf("expected editing after typing")
	}
	if got := m.Grid().Text(grid.Pos{}); got != "old" {
		t.Fatalf("text before commit: got %q, want %q", got, "old")
	}

	m = keyType(m, tea.KeyEnter)
	if m.Editing() {
		t.Fatalf("expected enter to commit")
	}
	if got := m.Grid().Text(grid.Pos{}); got != "xy" {
		t.Fatalf("text after commit: got %q, want %q", got, "xy")
	}
}

func TestUpdate_EnterEditsExistingTextAndEscCancels(t *testing.T) {
	m := newTestModel(Config{Cells: [][]string{{"ab", "b"}}})
	m = press(m, 0, 0)
	m = release(m, 0, 0)

	m = keyType(m, tea.KeyEnter)
	if !m.Editing() {
		t.Fatalf("expected enter to start editing")
	}
	if got := m.input.Value(); got != "ab" {
		t.Fatalf("editor value: got %q, want %q", got, "ab")
	}
	m = typeRunes(m, "c")
	m = keyType(m, tea.KeyEsc)
	if m.Editing() {
		t.Fatalf("expected esc to cancel")
	}
	if got := m.Grid().Text(grid.Pos{}); got != "ab" {
		t.Fatalf("text after cancel: got %q, want %q", got, "ab")
	}
}

func TestUpdate_EditOnCoveredSelectionTargetsAnchor(t *testing.T) {
	m := newTestModel(Config{Rows: 2, Cols: 2})
	m.Grid().MergeRect(grid.Rect{Bottom: 1, Right: 1})
	m = press(m, 4, 1)
	m = release(m, 4, 1)
	m = typeRunes(m, "m")
	m = keyType(m, tea.KeyEnter)

	if got := m.Grid().Text(grid.Pos{}); got != "m" {
		t.Fatalf("anchor text: got %q, want %q", got, "m")
	}
}

func TestUpdate_EscDeselects(t *testing.T) {
	m := newTestModel(Config{})
	m = press(m, 0, 0)
	m = release(m, 0, 0)
	m = keyType(m, tea.KeyEsc)
	if _, ok := m.Grid().Selection(); ok {
		t.Fatalf("expected esc to drop the selection")
	}
}

func TestUpdate_ReadOnlyRejectsContentKeys(t *testing.T) {
	m := newTestModel(Config{Cells: [][]string{{"a", "b"}}, ReadOnly: true})
	m = press(m, 0, 0)
	m = release(m, 0, 0)
	if _, ok := m.Grid().Selection(); !ok {
		t.Fatalf("read-only must still allow selection")
	}

	m = keyType(m, tea.KeyCtrlR)
	m = keyType(m, tea.KeyDelete)
	m = typeRunes(m, "x")
	if m.Editing() {
		t.Fatalf("read-only must not open the editor")
	}
	if got := m.Grid().Rows(); got != 1 {
		t.Fatalf("rows: got %d, want 1", got)
	}
	if got := m.Grid().Text(grid.Pos{}); got != "a" {
		t.Fatalf("text: got %q, want %q", got, "a")
	}
	if got := m.Status(); got != "read-only" {
		t.Fatalf("status: got %q, want %q", got, "read-only")
	}
}

func TestUpdate_CopyAndPaste(t *testing.T) {
	clip := &memClipboard{}
	m := newTestModel(Config{Cells: [][]string{{"a", "b"}, {"c", "d"}}, Clipboard: clip})
	m = drag(m, 0, 0, 4, 1)
	m = keyType(m, tea.KeyCtrlC)
	if got, want := clip.s, "a\tb\nc\td"; got != want {
		t.Fatalf("copied: got %q, want %q", got, want)
	}

	clip.s = "x\ty\nz\tw\n"
	m = press(m, 0, 0)
	m = release(m, 0, 0)
	m = keyType(m, tea.KeyCtrlV)
	got := m.Grid().Values()
	if got[0][0] != "x" || got[0][1] != "y" || got[1][0] != "z" || got[1][1] != "w" {
		t.Fatalf("values after paste: got %q", got)
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := newTestModel(Config{})
	m = m.Blur()
	m = keyType(m, tea.KeyCtrlR)
	if got := m.Grid().Rows(); got != 1 {
		t.Fatalf("rows: got %d, want 1", got)
	}
}
