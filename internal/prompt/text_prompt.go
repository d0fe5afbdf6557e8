package prompt

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kobzarvs/qprompt/internal/styled"
)

const separator = " › "

// TextPrompt renders a State as "<status> <label> › <value>", soft-wrapped to
// the area it is given. It holds configuration only; all session data lives in
// the State passed to each call.
type TextPrompt struct {
	label       string
	block       *Block
	renderStyle RenderStyle
	theme       Theme
	highlighter Highlighter
}

func NewTextPrompt(label string) TextPrompt {
	return TextPrompt{label: label, theme: DefaultTheme()}
}

func (p TextPrompt) WithBlock(b Block) TextPrompt {
	p.block = &b
	return p
}

func (p TextPrompt) WithRenderStyle(rs RenderStyle) TextPrompt {
	p.renderStyle = rs
	return p
}

func (p TextPrompt) WithTheme(t Theme) TextPrompt {
	p.theme = t
	return p
}

// WithHighlighter colors the value in RenderDefault. Masked styles never
// consult it.
func (p TextPrompt) WithHighlighter(h Highlighter) TextPrompt {
	p.highlighter = h
	return p
}

func (p TextPrompt) Label() string            { return p.label }
func (p TextPrompt) RenderStyle() RenderStyle { return p.renderStyle }

// Prefix is the decoration in front of the value.
func (p TextPrompt) Prefix(status Status) styled.Line {
	return styled.NewLine(
		status.Symbol(p.theme),
		styled.Raw(" "),
		styled.NewRun(p.label, p.theme.Label),
		styled.NewRun(separator, p.theme.Separator),
	)
}

// Line composes the full logical line for s before wrapping.
func (p TextPrompt) Line(s State) styled.Line {
	return p.Prefix(s.Status()).Append(p.valueRuns(s.Value())...)
}

func (p TextPrompt) valueRuns(value string) []styled.Run {
	text := p.renderStyle.Render(value)
	if text == "" {
		return nil
	}
	if p.renderStyle == RenderDefault && p.highlighter != nil {
		return highlightRuns(text, p.highlighter.Highlight(text), p.theme, p.theme.Value)
	}
	return []styled.Run{styled.NewRun(text, p.theme.Value)}
}

// Layout is the result of fitting a prompt into an area.
type Layout struct {
	// Inner is the area left after the block's borders.
	Inner Rect
	// Lines are the wrapped lines, at most Inner.Height of them.
	Lines []styled.Line
	// CursorX and CursorY are absolute screen coordinates.
	CursorX, CursorY int
}

// Layout computes what Render would draw without touching a screen or s.
func (p TextPrompt) Layout(area Rect, s State) Layout {
	inner := area
	if p.block != nil {
		inner = p.block.Inner(area)
	}
	prefix := p.Prefix(s.Status())
	line := prefix.Append(p.valueRuns(s.Value())...)
	lines := styled.Take(line.Wrap(inner.Width), inner.Height)

	offset := prefix.Width() + p.renderStyle.cursorOffset(s.Position())
	x, y := MapCursor(inner, offset)
	return Layout{Inner: inner, Lines: lines, CursorX: x, CursorY: y}
}

// Render draws the prompt into area and stores the cursor coordinates in s.
// The screen cursor is left alone.
func (p TextPrompt) Render(screen tcell.Screen, area Rect, s State) {
	if p.block != nil {
		p.block.Render(screen, area)
	}
	l := p.Layout(area, s)
	clearRect(screen, l.Inner, tcell.StyleDefault)
	for i, line := range l.Lines {
		drawLine(screen, l.Inner.Row(i), line)
	}
	s.SetCursor(l.CursorX, l.CursorY)
}

// Draw renders and, if s is focused, moves the screen cursor to the edit
// position.
func (p TextPrompt) Draw(screen tcell.Screen, area Rect, s State) {
	p.Render(screen, area, s)
	if s.Focused() {
		x, y := s.Cursor()
		screen.ShowCursor(x, y)
	}
}
