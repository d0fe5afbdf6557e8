package styled

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// ANSI renders the line as a string with terminal escape sequences, for output
// written after the tcell screen has been released. Colors are dropped when
// stdout does not support them.
func (l Line) ANSI() string {
	var sb strings.Builder
	for _, r := range l.Runs {
		if r.Text == "" {
			continue
		}
		sb.WriteString(lipglossStyle(r.Style).Render(r.Text))
	}
	return sb.String()
}

func lipglossStyle(st tcell.Style) lipgloss.Style {
	fg, bg, attrs := st.Decompose()
	out := lipgloss.NewStyle()
	if c, ok := lipglossColor(fg); ok {
		out = out.Foreground(c)
	}
	if c, ok := lipglossColor(bg); ok {
		out = out.Background(c)
	}
	if attrs&tcell.AttrBold != 0 {
		out = out.Bold(true)
	}
	if attrs&tcell.AttrDim != 0 {
		out = out.Faint(true)
	}
	if attrs&tcell.AttrItalic != 0 {
		out = out.Italic(true)
	}
	if attrs&tcell.AttrReverse != 0 {
		out = out.Reverse(true)
	}
	if attrs&tcell.AttrStrikeThrough != 0 {
		out = out.Strikethrough(true)
	}
	if attrs&tcell.AttrBlink != 0 {
		out = out.Blink(true)
	}
	return out
}

func lipglossColor(c tcell.Color) (lipgloss.Color, bool) {
	if !c.Valid() {
		return "", false
	}
	if c.IsRGB() {
		return lipgloss.Color(c.CSS()), true
	}
	idx := int(c - tcell.ColorValid)
	if idx < 0 || idx > 255 {
		return "", false
	}
	return lipgloss.Color(strconv.Itoa(idx)), true
}
