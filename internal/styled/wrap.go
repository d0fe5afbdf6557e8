package styled

import "iter"

// Wrap breaks l into lines no wider than width. This is a character wrap, not a
// word wrap: runs are cut at whatever column the budget ends on.
//
// The returned sequence is lazy and can be ranged over any number of times.
// Joining the text of every yielded line reproduces l.Text(). A remainder of
// zero width ends the sequence, so no trailing empty line is produced. A
// non-positive width yields nothing.
//
// A single glyph wider than width is emitted on a line of its own, which is
// the only case where a yielded line exceeds width.
func (l Line) Wrap(width int) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		if width <= 0 {
			return
		}
		line := l
		for {
			w := line.Width()
			if w == 0 {
				return
			}
			if w <= width {
				yield(line)
				return
			}
			first, rest := line.SplitAt(width)
			if first.Width() == 0 {
				first, rest = line.cutGlyph()
			}
			if !yield(first) {
				return
			}
			line = rest
		}
	}
}

// Take collects at most n lines from seq.
func Take(seq iter.Seq[Line], n int) []Line {
	if n <= 0 {
		return nil
	}
	out := make([]Line, 0, n)
	for line := range seq {
		out = append(out, line)
		if len(out) == n {
			break
		}
	}
	return out
}
