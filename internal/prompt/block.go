package prompt

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kobzarvs/qprompt/internal/styled"
)

// Rect is a screen area. Zero width or height is valid and holds nothing.
type Rect struct {
	X, Y          int
	Width, Height int
}

func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// SplitHorizontal cuts r into a left and right half.
func (r Rect) SplitHorizontal() (Rect, Rect) {
	left := r.Width / 2
	return NewRect(r.X, r.Y, left, r.Height), NewRect(r.X+left, r.Y, r.Width-left, r.Height)
}

// Row returns the one-line area at offset dy, clipped to r.
func (r Rect) Row(dy int) Rect {
	if dy < 0 || dy >= r.Height {
		return NewRect(r.X, r.Y+dy, r.Width, 0)
	}
	return NewRect(r.X, r.Y+dy, r.Width, 1)
}

// Borders is a set of box sides.
type Borders uint8

const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BorderNone Borders = 0
	BorderAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

func (b Borders) Has(side Borders) bool {
	return b&side == side
}

// ParseBorders reads "none", "all" or a comma separated list of sides.
func ParseBorders(s string) (Borders, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none":
		return BorderNone, nil
	case "all":
		return BorderAll, nil
	}
	var out Borders
	for _, part := range strings.Split(s, ",") {
		switch strings.TrimSpace(part) {
		case "top":
			out |= BorderTop
		case "right":
			out |= BorderRight
		case "bottom":
			out |= BorderBottom
		case "left":
			out |= BorderLeft
		default:
			return BorderNone, fmt.Errorf("unknown border side %q", part)
		}
	}
	return out, nil
}

// Block decorates an area with borders and a title.
type Block struct {
	Borders Borders
	Title   string
	Style   tcell.Style
}

// Inner is the area left for content after the borders take one cell per side.
func (b Block) Inner(area Rect) Rect {
	x, y, w, h := area.X, area.Y, area.Width, area.Height
	if b.Borders.Has(BorderLeft) {
		x++
		w--
	}
	if b.Borders.Has(BorderRight) {
		w--
	}
	if b.Borders.Has(BorderTop) {
		y++
		h--
	}
	if b.Borders.Has(BorderBottom) {
		h--
	}
	return NewRect(x, y, w, h)
}

func (b Block) Render(s tcell.Screen, area Rect) {
	if area.Empty() {
		return
	}
	left, right := area.X, area.X+area.Width-1
	top, bottom := area.Y, area.Y+area.Height-1

	if b.Borders.Has(BorderTop) {
		for x := left; x <= right; x++ {
			s.SetContent(x, top, '─', nil, b.Style)
		}
	}
	if b.Borders.Has(BorderBottom) {
		for x := left; x <= right; x++ {
			s.SetContent(x, bottom, '─', nil, b.Style)
		}
	}
	if b.Borders.Has(BorderLeft) {
		for y := top; y <= bottom; y++ {
			s.SetContent(left, y, '│', nil, b.Style)
		}
	}
	if b.Borders.Has(BorderRight) {
		for y := top; y <= bottom; y++ {
			s.SetContent(right, y, '│', nil, b.Style)
		}
	}
	corner := func(x, y int, sides Borders, r rune) {
		if b.Borders.Has(sides) {
			s.SetContent(x, y, r, nil, b.Style)
		}
	}
	corner(left, top, BorderTop|BorderLeft, '┌')
	corner(right, top, BorderTop|BorderRight, '┐')
	corner(left, bottom, BorderBottom|BorderLeft, '└')
	corner(right, bottom, BorderBottom|BorderRight, '┘')

	if b.Title == "" || !b.Borders.Has(BorderTop) {
		return
	}
	titleArea := NewRect(left, top, area.Width, 1)
	if b.Borders.Has(BorderLeft) {
		titleArea.X++
		titleArea.Width--
	}
	if b.Borders.Has(BorderRight) {
		titleArea.Width--
	}
	drawLine(s, titleArea, styled.NewLine(styled.NewRun(b.Title, b.Style)))
}
