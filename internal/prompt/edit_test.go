package prompt

import (
	"testing"
	"unicode/utf8"
)

func stateAt(value string, pos int) *TextState {
	s := NewTextState().WithValue(value)
	s.SetPosition(pos)
	return s
}

func TestNewTextState(t *testing.T) {
	s := NewTextState()
	if s.Status() != StatusPending {
		t.Fatalf("status = %v, want pending", s.Status())
	}
	if s.IsFocused() || s.IsFinished() {
		t.Fatalf("new state focused=%t finished=%t", s.IsFocused(), s.IsFinished())
	}
	if s.Value() != "" || s.Position() != 0 || s.Len() != 0 {
		t.Fatalf("new state = %s", s)
	}
}

func TestStatusIsFinished(t *testing.T) {
	for _, tc := range []struct {
		status Status
		want   bool
	}{
		{StatusPending, false},
		{StatusAborted, true},
		{StatusDone, true},
	} {
		if got := tc.status.IsFinished(); got != tc.want {
			t.Fatalf("%s.IsFinished() = %t, want %t", tc.status, got, tc.want)
		}
	}
}

func TestStatusSymbol(t *testing.T) {
	theme := DefaultTheme()
	for status, want := range map[Status]string{
		StatusPending: "?",
		StatusAborted: "✖",
		StatusDone:    "✔",
	} {
		if got := status.Symbol(theme).Text; got != want {
			t.Fatalf("%s symbol = %q, want %q", status, got, want)
		}
	}
}

func TestPushMultiByte(t *testing.T) {
	tests := []struct {
		pos     int
		want    string
		wantPos int
	}{
		{0, "Ïäë", 1},
		{1, "äÏë", 2},
		{2, "äëÏ", 3},
	}
	for _, tc := range tests {
		s := stateAt("äë", tc.pos)
		Push(s, 'Ï')
		if s.Value() != tc.want || s.Position() != tc.wantPos {
			t.Fatalf("push at %d = (%q, %d), want (%q, %d)", tc.pos, s.Value(), s.Position(), tc.want, tc.wantPos)
		}
		if !utf8.ValidString(s.Value()) {
			t.Fatalf("push at %d produced invalid UTF-8", tc.pos)
		}
	}
}

func TestBackspaceMultiByte(t *testing.T) {
	tests := []struct {
		pos     int
		want    string
		wantPos int
	}{
		{0, "äë", 0},
		{1, "ë", 0},
		{2, "ä", 1},
	}
	for _, tc := range tests {
		s := stateAt("äë", tc.pos)
		Backspace(s)
		if s.Value() != tc.want || s.Position() != tc.wantPos {
			t.Fatalf("backspace at %d = (%q, %d), want (%q, %d)", tc.pos, s.Value(), s.Position(), tc.want, tc.wantPos)
		}
	}
}

func TestDeleteMultiByte(t *testing.T) {
	tests := []struct {
		pos     int
		want    string
		wantPos int
	}{
		{0, "ë", 0},
		{1, "ä", 1},
		{2, "äë", 2},
	}
	for _, tc := range tests {
		s := stateAt("äë", tc.pos)
		Delete(s)
		if s.Value() != tc.want || s.Position() != tc.wantPos {
			t.Fatalf("delete at %d = (%q, %d), want (%q, %d)", tc.pos, s.Value(), s.Position(), tc.want, tc.wantPos)
		}
	}
}

func TestMovementSaturates(t *testing.T) {
	s := stateAt("äë", 0)
	MoveLeft(s)
	if s.Position() != 0 {
		t.Fatalf("move left at start = %d, want 0", s.Position())
	}
	MoveRight(s)
	MoveRight(s)
	MoveRight(s)
	if s.Position() != 2 {
		t.Fatalf("move right past end = %d, want 2", s.Position())
	}
	MoveStart(s)
	if s.Position() != 0 {
		t.Fatalf("move start = %d, want 0", s.Position())
	}
	MoveEnd(s)
	if s.Position() != 2 {
		t.Fatalf("move end = %d, want 2", s.Position())
	}
}

func TestMoveLeftFromBeyondEnd(t *testing.T) {
	s := stateAt("abc", 10)
	MoveLeft(s)
	if s.Position() != 2 {
		t.Fatalf("position = %d, want 2", s.Position())
	}
}

func TestKillAndTruncate(t *testing.T) {
	s := stateAt("hello world", 5)
	Kill(s)
	if s.Value() != "hello" || s.Position() != 5 {
		t.Fatalf("kill = (%q, %d), want (%q, 5)", s.Value(), s.Position(), "hello")
	}
	Kill(s)
	if s.Value() != "hello" {
		t.Fatalf("kill at end = %q, want %q", s.Value(), "hello")
	}

	s = stateAt("日本語", 1)
	Kill(s)
	if s.Value() != "日" {
		t.Fatalf("kill multi-byte = %q, want %q", s.Value(), "日")
	}

	Truncate(s)
	if s.Value() != "" || s.Position() != 0 {
		t.Fatalf("truncate = (%q, %d), want empty at 0", s.Value(), s.Position())
	}
}

func TestCompleteAndAbort(t *testing.T) {
	s := NewTextState()
	Complete(s)
	if s.Status() != StatusDone {
		t.Fatalf("status = %s, want done", s.Status())
	}
	Abort(s)
	if s.Status() != StatusDone {
		t.Fatalf("abort after complete changed status to %s", s.Status())
	}

	s = NewTextState()
	Abort(s)
	if s.Status() != StatusAborted {
		t.Fatalf("status = %s, want aborted", s.Status())
	}
}

func TestFinishedStateIsFrozen(t *testing.T) {
	ops := map[string]func(State){
		"push":       func(s State) { Push(s, 'x') },
		"backspace":  Backspace,
		"delete":     Delete,
		"move_left":  MoveLeft,
		"move_right": MoveRight,
		"move_start": MoveStart,
		"move_end":   MoveEnd,
		"kill":       Kill,
		"truncate":   Truncate,
	}
	for _, status := range []Status{StatusDone, StatusAborted} {
		for name, op := range ops {
			s := stateAt("hello", 2).WithStatus(status)
			op(s)
			if s.Value() != "hello" || s.Position() != 2 || s.Status() != status {
				t.Fatalf("%s on %s state changed it: %s", name, status, s)
			}
		}
	}
}

func TestFocusWorksWhenFinished(t *testing.T) {
	s := NewTextState().WithStatus(StatusDone)
	Focus(s)
	if !s.IsFocused() {
		t.Fatalf("focus on finished state did not focus")
	}
	Blur(s)
	if s.IsFocused() {
		t.Fatalf("blur on finished state did not blur")
	}
}

func TestCharacterCountTracksEdits(t *testing.T) {
	s := NewTextState()
	want := 0
	steps := []func(){
		func() { Push(s, 'ä'); want++ },
		func() { Push(s, '日'); want++ },
		func() { Push(s, '🔍'); want++ },
		func() { MoveLeft(s) },
		func() { Backspace(s); want-- },
		func() { Delete(s); want-- },
		func() { Delete(s) },
		func() { MoveStart(s) },
		func() { Backspace(s) },
		func() { Push(s, 'e'); want++ },
		func() { Push(s, '\u0301'); want++ },
	}
	for i, step := range steps {
		step()
		if got := s.Len(); got != want {
			t.Fatalf("step %d: len = %d, want %d (value %q)", i, got, want, s.Value())
		}
		if !utf8.ValidString(s.Value()) {
			t.Fatalf("step %d: invalid UTF-8 %q", i, s.Value())
		}
	}
}
