package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// ClusterWidth returns the terminal cell width of one grapheme cluster.
// Control characters and tabs count as one cell since cells render them as
// blanks.
func ClusterWidth(cluster string) int {
	if cluster == "\t" {
		return 1
	}
	w := runewidth.StringWidth(cluster)
	if w == 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w <= 0 {
		return 1
	}
	return w
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	n := 0
	for _, c := range Split(text) {
		n += ClusterWidth(c)
	}
	return n
}

// Truncate cuts text to at most width cells without splitting a cluster.
// Control characters are replaced with spaces.
func Truncate(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := ClusterWidth(c)
		if used+w > width {
			break
		}
		if isControl(c) {
			c = strings.Repeat(" ", w)
		}
		sb.WriteString(c)
		used += w
	}
	return sb.String()
}

// Fit truncates text to width cells and pads it with spaces to exactly width.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	out := Truncate(text, width)
	if pad := width - Width(out); pad > 0 {
		out += strings.Repeat(" ", pad)
	}
	return out
}

func isControl(cluster string) bool {
	for _, r := range cluster {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}
