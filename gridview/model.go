package gridview

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/iw2rmb/quilt/grid"
)

// Model is a Bubble Tea component that renders and interacts with a grid.
//
// Rendering is derived from grid.Layout on every change; the component never
// patches rendered output directly.
type Model struct {
	cfg  Config
	grid *grid.Grid
	id   string

	focused bool

	viewport viewport.Model

	editing bool
	editPos grid.Pos
	input   textinput.Model

	status       string
	statusReject bool

	lastVersion uint64
	lastRender  SnapshotToken
}

func New(cfg Config) Model {
	if keyMapIsZero(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	id := cfg.ID
	if id == "" {
		id = uuid.NewString()
	}

	in := textinput.New()
	in.Prompt = ""

	m := Model{
		cfg:      cfg,
		grid:     grid.New(grid.Options{Rows: cfg.Rows, Cols: cfg.Cols, Cells: cfg.Cells}),
		id:       id,
		focused:  true,
		viewport: viewport.New(0, 0),
		input:    in,
	}
	m.lastVersion = m.grid.Version()
	m.rebuildContent()
	return m
}

// Grid returns the backing grid. Hosts may mutate it directly; the next
// Update or View picks the change up.
func (m Model) Grid() *grid.Grid { return m.grid }

// ID returns the component instance ID used in snapshot tokens.
func (m Model) ID() string { return m.id }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	body := height - m.chromeLines()
	if body < 0 {
		body = 0
	}
	m.viewport.Width = width
	m.viewport.Height = body

	m.rebuildContent()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.commitEditing()
		m.focused = false
		m.syncFromGrid()
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Editing reports whether the inline cell editor is open.
func (m Model) Editing() bool { return m.editing }

// Status returns the current status line message, if any.
func (m Model) Status() string { return m.status }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	default:
		if m.editing {
			m.input, cmd = m.input.Update(msg)
		}
	}
	m.syncFromGrid()
	return m, cmd
}

func (m Model) View() string {
	// Pick up host-side grid mutations made outside Update.
	(&m).refreshContent()

	parts := make([]string, 0, 4)
	if m.cfg.ShowToolbar {
		parts = append(parts, m.renderToolbar())
	}
	if m.cfg.ShowHeaders {
		parts = append(parts, m.renderHeader())
	}
	if m.viewport.Height > 0 {
		parts = append(parts, m.viewport.View())
	} else {
		parts = append(parts, m.renderContent())
	}
	if m.cfg.ShowStatus {
		parts = append(parts, m.renderStatus())
	}
	return strings.Join(parts, "\n")
}

func (m Model) chromeLines() int {
	n := 0
	if m.cfg.ShowToolbar {
		n++
	}
	if m.cfg.ShowHeaders {
		n++
	}
	if m.cfg.ShowStatus {
		n++
	}
	return n
}

// syncFromGrid fires OnChange for a new grid version and re-renders when any
// render input changed.
func (m *Model) syncFromGrid() {
	if m.grid == nil {
		return
	}
	ver := m.grid.Version()
	if ver != m.lastVersion {
		m.lastVersion = ver
		if m.editing && !m.editTargetValid() {
			m.stopEditing()
		}
		m.refreshContent()
		if ch, ok := m.grid.LastChange(); ok && ch.Kind == grid.ChangeAddRow && m.viewport.Height > 0 {
			m.viewport.GotoBottom()
		}
		if m.cfg.OnChange != nil {
			m.cfg.OnChange(buildChangeEvent(m.grid))
		}
	}
	m.refreshContent()
}

func (m *Model) refreshContent() {
	tok := hashSnapshotSignature(m.currentSnapshotSignature())
	if tok == m.lastRender {
		return
	}
	m.rebuildContent()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
	m.lastRender = hashSnapshotSignature(m.currentSnapshotSignature())
}
