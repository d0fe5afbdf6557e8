package prompt

import "unicode/utf8"

// Editing operations shared by every State. None of them fail: out of range
// positions are clamped and impossible edits are no-ops. Once a session is
// finished, value and position are frozen.

// Len is the number of characters in s's value.
func Len(s State) int {
	return utf8.RuneCountInString(s.Value())
}

func editable(s State) bool {
	return !s.Status().IsFinished()
}

// clampedPosition returns the position limited to [0, len].
func clampedPosition(s State, length int) int {
	pos := s.Position()
	if pos < 0 {
		return 0
	}
	if pos > length {
		return length
	}
	return pos
}

// Push inserts c at the cursor and moves the cursor past it.
func Push(s State, c rune) {
	if !editable(s) {
		return
	}
	runes := []rune(s.Value())
	pos := clampedPosition(s, len(runes))
	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:pos]...)
	out = append(out, c)
	out = append(out, runes[pos:]...)
	s.SetValue(string(out))
	s.SetPosition(pos + 1)
}

// Backspace removes the character before the cursor.
func Backspace(s State) {
	if !editable(s) {
		return
	}
	runes := []rune(s.Value())
	pos := clampedPosition(s, len(runes))
	if pos == 0 {
		return
	}
	s.SetValue(string(runes[:pos-1]) + string(runes[pos:]))
	s.SetPosition(pos - 1)
}

// Delete removes the character under the cursor.
func Delete(s State) {
	if !editable(s) {
		return
	}
	runes := []rune(s.Value())
	pos := s.Position()
	if pos < 0 || pos >= len(runes) {
		return
	}
	s.SetValue(string(runes[:pos]) + string(runes[pos+1:]))
}

func MoveLeft(s State) {
	if !editable(s) {
		return
	}
	pos := clampedPosition(s, Len(s))
	if pos > 0 {
		pos--
	}
	s.SetPosition(pos)
}

func MoveRight(s State) {
	if !editable(s) {
		return
	}
	length := Len(s)
	pos := clampedPosition(s, length)
	if pos < length {
		pos++
	}
	s.SetPosition(pos)
}

func MoveStart(s State) {
	if !editable(s) {
		return
	}
	s.SetPosition(0)
}

func MoveEnd(s State) {
	if !editable(s) {
		return
	}
	s.SetPosition(Len(s))
}

// Kill drops everything from the cursor to the end of the value.
func Kill(s State) {
	if !editable(s) {
		return
	}
	runes := []rune(s.Value())
	pos := s.Position()
	if pos < 0 {
		pos = 0
	}
	if pos >= len(runes) {
		return
	}
	s.SetValue(string(runes[:pos]))
}

// Truncate clears the value.
func Truncate(s State) {
	if !editable(s) {
		return
	}
	s.SetValue("")
	s.SetPosition(0)
}

// Complete ends the session successfully.
func Complete(s State) {
	if !editable(s) {
		return
	}
	s.SetStatus(StatusDone)
}

// Abort ends the session without a result.
func Abort(s State) {
	if !editable(s) {
		return
	}
	s.SetStatus(StatusAborted)
}

// Focus and Blur work in any status; form orchestration moves focus away
// from a field right after it completes.
func Focus(s State) { s.SetFocused(true) }
func Blur(s State)  { s.SetFocused(false) }
