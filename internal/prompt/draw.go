package prompt

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kobzarvs/qprompt/internal/styled"
)

type cell struct {
	main  rune
	comb  []rune
	style tcell.Style
	width int
}

// cells flattens a line into screen cells. Zero-width runes ride along as
// combining characters of the cell before them; leading ones are dropped.
func cells(line styled.Line) []cell {
	var out []cell
	for _, run := range line.Runs {
		for _, r := range run.Text {
			w := styled.RuneWidth(r)
			if w == 0 {
				if len(out) > 0 {
					last := &out[len(out)-1]
					last.comb = append(last.comb, r)
				}
				continue
			}
			out = append(out, cell{main: r, style: run.Style, width: w})
		}
	}
	return out
}

// drawLine writes line into the first row of area, clipping at its right
// edge. A wide glyph that would cross the edge is not drawn.
func drawLine(s tcell.Screen, area Rect, line styled.Line) {
	if area.Empty() {
		return
	}
	x, limit := area.X, area.X+area.Width
	for _, c := range cells(line) {
		if x+c.width > limit {
			return
		}
		s.SetContent(x, area.Y, c.main, c.comb, c.style)
		x += c.width
	}
}

func clearRect(s tcell.Screen, area Rect, style tcell.Style) {
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Paragraph is plain text soft-wrapped into an area. Each "\n" starts a new
// line; rows past the bottom of the area are dropped.
type Paragraph struct {
	Text  string
	Style tcell.Style
}

func (p Paragraph) Render(s tcell.Screen, area Rect) {
	clearRect(s, area, tcell.StyleDefault)
	row := 0
	for _, text := range strings.Split(p.Text, "\n") {
		if row >= area.Height {
			return
		}
		line := styled.NewLine(styled.NewRun(text, p.Style))
		wrapped := styled.Take(line.Wrap(area.Width), area.Height-row)
		for _, l := range wrapped {
			drawLine(s, area.Row(row), l)
			row++
		}
		if len(wrapped) == 0 {
			row++
		}
	}
}
