package styled

import "github.com/gdamore/tcell/v2"

// Run is a piece of text drawn with a single style. Runs are values; splitting
// a run produces two new runs and leaves the original untouched.
type Run struct {
	Text  string
	Style tcell.Style
}

func NewRun(text string, style tcell.Style) Run {
	return Run{Text: text, Style: style}
}

// Raw returns a run drawn with the screen's default style.
func Raw(text string) Run {
	return Run{Text: text, Style: tcell.StyleDefault}
}

func (r Run) Width() int {
	return StringWidth(r.Text)
}

// SplitAt cuts r at display column col. Every rune whose right edge stays
// within col goes to the first run, the rest to the second. Zero-width runes at
// the boundary stay with the first run. A double-width rune straddling col is
// moved whole to the second run, which leaves the first run one column short.
func (r Run) SplitAt(col int) (Run, Run) {
	if col <= 0 {
		return Run{Style: r.Style}, r
	}
	used := 0
	for i, ch := range r.Text {
		w := RuneWidth(ch)
		if used+w > col {
			return Run{Text: r.Text[:i], Style: r.Style}, Run{Text: r.Text[i:], Style: r.Style}
		}
		used += w
	}
	return r, Run{Style: r.Style}
}

// cutGlyph splits r after its first visible rune and any zero-width runes
// that follow it.
func (r Run) cutGlyph() (Run, Run, bool) {
	seen := false
	for i, ch := range r.Text {
		if RuneWidth(ch) == 0 {
			continue
		}
		if seen {
			return Run{Text: r.Text[:i], Style: r.Style}, Run{Text: r.Text[i:], Style: r.Style}, true
		}
		seen = true
	}
	return r, Run{Style: r.Style}, seen
}
