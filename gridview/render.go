package gridview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xuri/excelize/v2"

	"github.com/iw2rmb/quilt/grid"
	"github.com/iw2rmb/quilt/internal/grapheme"
)

const separator = "│"

// renderContent renders one line per grid row from the grid layout.
func (m *Model) renderContent() string {
	if m.grid == nil {
		return ""
	}
	layout := m.grid.Layout()
	geo := m.geometry()

	lines := make([]string, 0, layout.Rows)
	for r := 0; r < layout.Rows; r++ {
		lines = append(lines, m.clipLine(m.renderRow(layout, geo, r)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(layout grid.Layout, geo geometry, r int) string {
	st := m.cfg.Style
	var sb strings.Builder

	if geo.gutter > 0 {
		sb.WriteString(st.RowNum.Render(fmt.Sprintf("%*d", geo.gutter-1, r+1)))
		sb.WriteByte(' ')
	}

	for c := 0; c < layout.Cols; {
		span := layout.SpanAt(grid.Pos{Row: r, Col: c})
		if span.Left != c {
			// Only reachable for malformed spans; render the cell on its own.
			span = grid.CellRect(grid.Pos{Row: r, Col: c})
		}
		sb.WriteString(m.renderBlockLine(layout, geo, span, r-span.Top))
		sb.WriteString(st.Border.Render(separator))
		c = span.Right + 1
	}

	if geo.deleteX >= 0 {
		sb.WriteByte(' ')
		sb.WriteString(st.RowDelete.Render(rowDeleteLabel))
	}
	return sb.String()
}

// renderBlockLine renders line i of the block covering span. Anchor text
// wraps across the lines of a merged block.
func (m *Model) renderBlockLine(layout grid.Layout, geo geometry, span grid.Rect, i int) string {
	st := m.cfg.Style
	w := geo.blockWidth(span.Left, span.Right) - 1
	anchor := span.TopLeft()

	style := st.Cell
	if span.Area() > 1 {
		style = st.Merged.Inherit(st.Cell)
	}
	// A block is selected exactly when its anchor is; clear and copy use the
	// same rule.
	rc, _ := layout.At(anchor)
	if rc.Selected {
		style = st.Selection.Inherit(style)
	}

	if m.editing && anchor == m.editPos {
		es := st.Editing.Inline(true).Width(w).MaxWidth(w)
		if i == 0 {
			return es.Render(m.input.View())
		}
		return es.Render("")
	}

	text := blockLines(rc.Text, w, span.Rows())[i]
	return style.Render(text)
}

// blockLines splits text into n lines of exactly width cells. Text that does
// not fit is cut on the last line.
func blockLines(text string, width, n int) []string {
	out := make([]string, n)
	if n == 1 {
		out[0] = grapheme.Fit(text, width)
		return out
	}

	line := 0
	var sb strings.Builder
	cur := 0
	for _, cl := range grapheme.Split(text) {
		if cl == "\n" || cl == "\r\n" {
			out[line] = grapheme.Fit(sb.String(), width)
			sb.Reset()
			cur = 0
			line++
			if line == n {
				return out
			}
			continue
		}
		cw := grapheme.ClusterWidth(cl)
		if cur+cw > width {
			out[line] = grapheme.Fit(sb.String(), width)
			sb.Reset()
			cur = 0
			line++
			if line == n {
				return out
			}
		}
		sb.WriteString(cl)
		cur += cw
	}
	out[line] = grapheme.Fit(sb.String(), width)
	for i := line + 1; i < n; i++ {
		out[i] = strings.Repeat(" ", width)
	}
	return out
}

func (m *Model) clipLine(s string) string {
	if m.viewport.Width <= 0 {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(m.viewport.Width).Render(s)
}

func (m Model) renderHeader() string {
	geo := m.geometry()
	st := m.cfg.Style
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", geo.gutter))
	for c := 0; c < geo.cols; c++ {
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			name = "?"
		}
		sb.WriteString(st.Header.Render(grapheme.Fit(name, geo.cellW)))
		sb.WriteString(st.Border.Render(separator))
	}
	return (&m).clipLine(sb.String())
}

func (m Model) renderStatus() string {
	return (&m).clipLine(m.statusText())
}

func (m Model) statusText() string {
	if m.status != "" {
		if m.statusReject {
			return m.cfg.Style.StatusReject.Render(m.status)
		}
		return m.cfg.Style.Status.Render(m.status)
	}
	if m.grid == nil {
		return ""
	}
	dims := fmt.Sprintf("%dx%d", m.grid.Rows(), m.grid.Cols())
	if r, ok := m.grid.Selection(); ok {
		return m.cfg.Style.Status.Render(rectLabel(r) + "  " + dims)
	}
	return m.cfg.Style.Status.Render(dims)
}

// rectLabel names r in A1 notation, e.g. "B2" or "B2:C3".
func rectLabel(r grid.Rect) string {
	tl, err := excelize.CoordinatesToCellName(r.Left+1, r.Top+1)
	if err != nil {
		return ""
	}
	if r.Area() == 1 {
		return tl
	}
	br, err := excelize.CoordinatesToCellName(r.Right+1, r.Bottom+1)
	if err != nil {
		return tl
	}
	return tl + ":" + br
}
