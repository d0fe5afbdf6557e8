package prompt

import (
	"fmt"
	"unicode/utf8"
)

// State is everything an editable prompt needs to expose. The editing
// operations in this package (Push, Backspace, MoveLeft, ...) are written once
// against this interface, so any field type that stores these values gets the
// whole operation set.
//
// Position is a character (rune) index into Value. Cursor holds the screen
// coordinates computed by the last render and is output only.
type State interface {
	Status() Status
	SetStatus(Status)
	Focused() bool
	SetFocused(bool)
	Position() int
	SetPosition(int)
	Cursor() (x, y int)
	SetCursor(x, y int)
	Value() string
	SetValue(string)
}

// TextState is the stock State implementation.
type TextState struct {
	status   Status
	focused  bool
	position int
	cursorX  int
	cursorY  int
	value    string
}

func NewTextState() *TextState {
	return &TextState{}
}

// WithValue replaces the value. The position is left where it was.
func (s *TextState) WithValue(value string) *TextState {
	s.value = value
	return s
}

func (s *TextState) WithStatus(status Status) *TextState {
	s.status = status
	return s
}

func (s *TextState) WithFocus(focused bool) *TextState {
	s.focused = focused
	return s
}

func (s *TextState) Status() Status          { return s.status }
func (s *TextState) SetStatus(status Status) { s.status = status }
func (s *TextState) Focused() bool           { return s.focused }
func (s *TextState) SetFocused(focused bool) { s.focused = focused }
func (s *TextState) Position() int           { return s.position }
func (s *TextState) SetPosition(pos int)     { s.position = pos }
func (s *TextState) Cursor() (int, int)      { return s.cursorX, s.cursorY }
func (s *TextState) SetCursor(x, y int)      { s.cursorX, s.cursorY = x, y }
func (s *TextState) Value() string           { return s.value }
func (s *TextState) SetValue(value string)   { s.value = value }

func (s *TextState) IsFinished() bool { return s.status.IsFinished() }
func (s *TextState) IsFocused() bool  { return s.focused }

// Len is the number of characters in the value.
func (s *TextState) Len() int { return utf8.RuneCountInString(s.value) }

func (s *TextState) String() string {
	return fmt.Sprintf("TextState{status: %s, focused: %t, position: %d, cursor: (%d, %d), value: %q}",
		s.status, s.focused, s.position, s.cursorX, s.cursorY, s.value)
}
