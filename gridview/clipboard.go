package gridview

import (
	"strings"

	"github.com/iw2rmb/quilt/grid"
)

// Clipboard provides grid-level clipboard integration.
//
// Errors must not crash the UI; failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// selectionTSV renders the selected block as tab-separated rows. Covered
// cells read as empty.
func selectionTSV(g *grid.Grid) (string, bool) {
	r, ok := g.Selection()
	if !ok {
		return "", false
	}
	var sb strings.Builder
	for row := r.Top; row <= r.Bottom; row++ {
		if row > r.Top {
			sb.WriteByte('\n')
		}
		for col := r.Left; col <= r.Right; col++ {
			if col > r.Left {
				sb.WriteByte('\t')
			}
			sb.WriteString(tsvField(g.Text(grid.Pos{Row: row, Col: col})))
		}
	}
	return sb.String(), true
}

func tsvField(s string) string {
	return strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

// parseTSV splits clipboard text into a block of rows and fields.
func parseTSV(s string) [][]string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	out := make([][]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, strings.Split(line, "\t"))
	}
	return out
}

func (m *Model) copySelection() {
	if m.cfg.Clipboard == nil || m.grid == nil {
		return
	}
	s, ok := selectionTSV(m.grid)
	if !ok {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.grid == nil {
		return
	}
	r, ok := m.grid.Selection()
	if !ok {
		m.reportResult(grid.RejectedEmptySelection)
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		return
	}
	block := parseTSV(s)
	if len(block) == 0 {
		return
	}
	m.dispatch(Intent{
		Kind:    IntentPaste,
		Payload: PasteIntentPayload{Origin: r.TopLeft(), Block: block},
	})
}
