package styled

import "strings"

// Line is an ordered sequence of runs making up one row of output.
type Line struct {
	Runs []Run
}

func NewLine(runs ...Run) Line {
	return Line{Runs: runs}
}

// Width is the display width of the line in terminal cells.
func (l Line) Width() int {
	w := 0
	for _, r := range l.Runs {
		w += r.Width()
	}
	return w
}

// Text concatenates the text of all runs.
func (l Line) Text() string {
	var sb strings.Builder
	for _, r := range l.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Append returns a copy of l with runs added at the end.
func (l Line) Append(runs ...Run) Line {
	out := make([]Run, 0, len(l.Runs)+len(runs))
	out = append(out, l.Runs...)
	out = append(out, runs...)
	return Line{Runs: out}
}

// SplitAt cuts l at display column col. Runs that fit before col stay whole in
// the first line, the run straddling col is split with Run.SplitAt, and every
// following run goes to the second line. Empty runs produced by the cut are
// dropped.
func (l Line) SplitAt(col int) (Line, Line) {
	var first, rest Line
	used := 0
	cut := false
	for _, run := range l.Runs {
		if cut {
			rest.Runs = append(rest.Runs, run)
			continue
		}
		w := run.Width()
		if used+w <= col {
			first.Runs = append(first.Runs, run)
			used += w
			continue
		}
		head, tail := run.SplitAt(col - used)
		if head.Text != "" {
			first.Runs = append(first.Runs, head)
		}
		if tail.Text != "" {
			rest.Runs = append(rest.Runs, tail)
		}
		cut = true
	}
	return first, rest
}

// cutGlyph splits l after its first visible rune.
func (l Line) cutGlyph() (Line, Line) {
	var first, rest Line
	for i, run := range l.Runs {
		head, tail, ok := run.cutGlyph()
		if !ok {
			first.Runs = append(first.Runs, run)
			continue
		}
		first.Runs = append(first.Runs, head)
		if tail.Text != "" {
			rest.Runs = append(rest.Runs, tail)
		}
		rest.Runs = append(rest.Runs, l.Runs[i+1:]...)
		break
	}
	return first, rest
}
