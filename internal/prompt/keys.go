package prompt

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyCode identifies a key independent of the terminal library.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyChar
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyTab
	KeyBacktab
	KeyPageUp
	KeyPageDown
	KeyInsert
)

var keyCodeNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeyBackspace: "backspace",
	KeyDelete:    "del",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyTab:       "tab",
	KeyBacktab:   "shift+tab",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdn",
	KeyInsert:    "insert",
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt

	ModNone Modifiers = 0
)

// KeyKind separates presses from releases. Only presses edit.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRelease
)

type KeyEvent struct {
	Code KeyCode
	Rune rune
	Mods Modifiers
	Kind KeyKind
}

// CharKey is a press of the character key r.
func CharKey(r rune) KeyEvent {
	return KeyEvent{Code: KeyChar, Rune: r}
}

// NamedKey is a press of a non-character key.
func NamedKey(code KeyCode) KeyEvent {
	return KeyEvent{Code: code}
}

// With returns a copy of e with mods added.
func (e KeyEvent) With(mods Modifiers) KeyEvent {
	e.Mods |= mods
	return e
}

// Released returns the release counterpart of e.
func (e KeyEvent) Released() KeyEvent {
	e.Kind = KeyRelease
	return e
}

// Name renders the event in keymap notation: "enter", "ctrl+a", "alt+left",
// "x", "space". The empty string means the key has no name.
func (e KeyEvent) Name() string {
	var base string
	switch e.Code {
	case KeyChar:
		if e.Rune == 0 {
			return ""
		}
		if e.Rune == ' ' {
			base = "space"
		} else if e.Mods&(ModCtrl|ModAlt) != 0 {
			base = string(unicode.ToLower(e.Rune))
		} else {
			return string(e.Rune)
		}
	default:
		base = keyCodeNames[e.Code]
		if base == "" {
			return ""
		}
	}
	var sb strings.Builder
	if e.Mods&ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if e.Mods&ModAlt != 0 {
		sb.WriteString("alt+")
	}
	if e.Mods&ModShift != 0 && e.Code != KeyChar && e.Code != KeyBacktab {
		sb.WriteString("shift+")
	}
	sb.WriteString(base)
	return sb.String()
}

func (e KeyEvent) String() string {
	name := e.Name()
	if name == "" {
		name = "unknown"
	}
	if e.Kind == KeyRelease {
		return name + " (release)"
	}
	return name
}

// KeyEventFromTcell converts a tcell key event. tcell reports presses only.
// ok is false for keys that have no counterpart here (function keys, ...).
func KeyEventFromTcell(ev *tcell.EventKey) (KeyEvent, bool) {
	mods := modifiersFromTcell(ev.Modifiers())
	key := ev.Key()

	if key == tcell.KeyRune {
		r := ev.Rune()
		if mods&ModCtrl != 0 {
			r = unicode.ToLower(r)
		}
		return KeyEvent{Code: KeyChar, Rune: r, Mods: mods}, true
	}

	// Tab, Enter and Backspace share codes with Ctrl-I, Ctrl-M and Ctrl-H, so
	// they are resolved before the control letters.
	switch key {
	case tcell.KeyTab:
		if mods&ModShift != 0 {
			return KeyEvent{Code: KeyBacktab, Mods: mods &^ ModShift}, true
		}
		return KeyEvent{Code: KeyTab, Mods: mods}, true
	case tcell.KeyBacktab:
		return KeyEvent{Code: KeyBacktab, Mods: mods &^ ModShift}, true
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Mods: mods}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Code: KeyBackspace, Mods: mods}, true
	case tcell.KeyEscape:
		return KeyEvent{Code: KeyEsc, Mods: mods}, true
	}

	if r, ok := ctrlLetter(key); ok {
		return KeyEvent{Code: KeyChar, Rune: r, Mods: mods | ModCtrl}, true
	}

	switch key {
	case tcell.KeyDelete:
		return KeyEvent{Code: KeyDelete, Mods: mods}, true
	case tcell.KeyLeft:
		return KeyEvent{Code: KeyLeft, Mods: mods}, true
	case tcell.KeyRight:
		return KeyEvent{Code: KeyRight, Mods: mods}, true
	case tcell.KeyUp:
		return KeyEvent{Code: KeyUp, Mods: mods}, true
	case tcell.KeyDown:
		return KeyEvent{Code: KeyDown, Mods: mods}, true
	case tcell.KeyHome:
		return KeyEvent{Code: KeyHome, Mods: mods}, true
	case tcell.KeyEnd:
		return KeyEvent{Code: KeyEnd, Mods: mods}, true
	case tcell.KeyPgUp:
		return KeyEvent{Code: KeyPageUp, Mods: mods}, true
	case tcell.KeyPgDn:
		return KeyEvent{Code: KeyPageDown, Mods: mods}, true
	case tcell.KeyInsert:
		return KeyEvent{Code: KeyInsert, Mods: mods}, true
	}
	return KeyEvent{}, false
}

// ctrlLetter maps Ctrl-A..Ctrl-Z to their letter. Depending on the terminal
// tcell delivers either its named KeyCtrl* codes or the raw ASCII control
// codes 1..26.
func ctrlLetter(key tcell.Key) (rune, bool) {
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return 'a' + rune(key-tcell.KeyCtrlA), true
	}
	if key >= 1 && key <= 26 {
		return 'a' + rune(key-1), true
	}
	return 0, false
}

func modifiersFromTcell(m tcell.ModMask) Modifiers {
	var mods Modifiers
	if m&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	return mods
}
