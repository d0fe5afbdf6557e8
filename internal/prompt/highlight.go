package prompt

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kobzarvs/qprompt/internal/styled"
)

// Span marks value characters [Start, End) as a syntax kind. Offsets count
// characters, not bytes.
type Span struct {
	Start int
	End   int
	Kind  string
}

// Highlighter classifies parts of a value for coloring.
type Highlighter interface {
	Highlight(value string) []Span
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func(value string) []Span

func (f HighlighterFunc) Highlight(value string) []Span { return f(value) }

// highlightRuns splits value into runs styled by theme.Syntax. Where spans
// overlap the kind with the higher HighlightPriority wins; characters outside
// every known span keep base.
func highlightRuns(value string, spans []Span, theme Theme, base tcell.Style) []styled.Run {
	runes := []rune(value)
	if len(runes) == 0 {
		return nil
	}
	kinds := make([]string, len(runes))
	for _, sp := range spans {
		if _, ok := theme.Syntax[sp.Kind]; !ok {
			continue
		}
		start, end := max(sp.Start, 0), min(sp.End, len(runes))
		for i := start; i < end; i++ {
			if kinds[i] == "" || HighlightPriority(sp.Kind) > HighlightPriority(kinds[i]) {
				kinds[i] = sp.Kind
			}
		}
	}

	styleOf := func(kind string) tcell.Style {
		if kind == "" {
			return base
		}
		return theme.Syntax[kind]
	}
	var out []styled.Run
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && kinds[i] == kinds[start] {
			continue
		}
		out = append(out, styled.NewRun(string(runes[start:i]), styleOf(kinds[start])))
		start = i
	}
	return out
}
