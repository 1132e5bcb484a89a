package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quilt/internal/config"
	"github.com/iw2rmb/quilt/internal/logging"
)

func TestDemoQuitKey(t *testing.T) {
	m := newModel(config.Default(), logging.Discard())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestDemoCopyPasteUsesClipboard(t *testing.T) {
	cfg := config.Default()
	cfg.View.ShowToolbar = false
	cfg.View.ShowHeaders = false
	cfg.View.ShowRowNums = false
	cfg.Grid.Cells = [][]string{{"a", "b"}}
	m := newModel(cfg, logging.Discard())

	step := func(msg tea.Msg) {
		updated, _ := m.Update(msg)
		m = updated.(model)
	}
	step(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	step(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease})
	step(tea.KeyMsg{Type: tea.KeyCtrlC})
	step(tea.MouseMsg{X: 13, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	step(tea.MouseMsg{X: 13, Y: 0, Action: tea.MouseActionRelease})
	step(tea.KeyMsg{Type: tea.KeyCtrlV})

	if got := m.grid.Grid().Values()[0][1]; got != "a" {
		t.Fatalf("pasted cell: got %q, want %q", got, "a")
	}
}

func TestDemoLogsStatusOnlyWhenItChanges(t *testing.T) {
	var buf bytes.Buffer
	m := newModel(config.Default(), logging.New(&buf, slog.LevelInfo))

	step := func(msg tea.Msg) {
		updated, _ := m.Update(msg)
		m = updated.(model)
	}
	// Toolbar and header lines sit above the first row; the gutter is two wide.
	step(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	step(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionRelease})
	step(tea.KeyMsg{Type: tea.KeyCtrlG})
	for i := 0; i < 3; i++ {
		step(tea.MouseMsg{X: 4 + i, Y: 2, Action: tea.MouseActionMotion})
	}
	if got := strings.Count(buf.String(), "grid status"); got != 1 {
		t.Fatalf("status records after repeated updates: got %d, want 1\n%s", got, buf.String())
	}

	step(tea.KeyMsg{Type: tea.KeyCtrlR})
	step(tea.KeyMsg{Type: tea.KeyCtrlG})
	if got := strings.Count(buf.String(), "grid status"); got != 2 {
		t.Fatalf("status records after a new rejection: got %d, want 2\n%s", got, buf.String())
	}
}
