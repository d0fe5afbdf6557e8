package prompt

import (
	"fmt"
	"sort"
	"strings"
)

// Action names an editing operation a key can be bound to.
type Action string

const (
	ActionNone      Action = ""
	ActionPush      Action = "push"
	ActionComplete  Action = "complete"
	ActionAbort     Action = "abort"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionMoveStart Action = "move_start"
	ActionMoveEnd   Action = "move_end"
	ActionBackspace Action = "backspace"
	ActionDelete    Action = "delete"
	ActionKill      Action = "kill"
	ActionTruncate  Action = "truncate"

	// actionUnbind removes a default binding when used in overrides.
	actionUnbind Action = "none"
)

var actionFuncs = map[Action]func(State){
	ActionComplete:  Complete,
	ActionAbort:     Abort,
	ActionMoveLeft:  MoveLeft,
	ActionMoveRight: MoveRight,
	ActionMoveStart: MoveStart,
	ActionMoveEnd:   MoveEnd,
	ActionBackspace: Backspace,
	ActionDelete:    Delete,
	ActionKill:      Kill,
	ActionTruncate:  Truncate,
}

// ParseAction validates a configured action name.
func ParseAction(name string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := actionFuncs[a]; ok {
		return a, nil
	}
	return ActionNone, fmt.Errorf("unknown action %q (want one of %s)", name, strings.Join(actionNames(), ", "))
}

func actionNames() []string {
	names := make([]string, 0, len(actionFuncs))
	for a := range actionFuncs {
		names = append(names, string(a))
	}
	sort.Strings(names)
	return names
}

// Keymap binds key names (see KeyEvent.Name) to actions.
type Keymap map[string]Action

func DefaultKeymap() Keymap {
	return Keymap{
		"enter":     ActionComplete,
		"esc":       ActionAbort,
		"ctrl+c":    ActionAbort,
		"left":      ActionMoveLeft,
		"ctrl+b":    ActionMoveLeft,
		"right":     ActionMoveRight,
		"ctrl+f":    ActionMoveRight,
		"home":      ActionMoveStart,
		"ctrl+a":    ActionMoveStart,
		"end":       ActionMoveEnd,
		"ctrl+e":    ActionMoveEnd,
		"backspace": ActionBackspace,
		"ctrl+h":    ActionBackspace,
		"del":       ActionDelete,
		"ctrl+d":    ActionDelete,
		"ctrl+k":    ActionKill,
		"ctrl+u":    ActionTruncate,
	}
}

// Merge returns a copy of k with overrides applied. The action "none" removes
// a binding.
func (k Keymap) Merge(overrides map[string]string) (Keymap, error) {
	out := make(Keymap, len(k)+len(overrides))
	for name, a := range k {
		out[name] = a
	}
	for name, value := range overrides {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return k, fmt.Errorf("keymap: empty key name")
		}
		if Action(strings.ToLower(strings.TrimSpace(value))) == actionUnbind {
			delete(out, name)
			continue
		}
		a, err := ParseAction(value)
		if err != nil {
			return k, fmt.Errorf("keymap %q: %w", name, err)
		}
		out[name] = a
	}
	return out, nil
}

// Lookup resolves ev to an action without applying it. Bound names win; an
// unbound character typed with no modifier or only Shift pushes; a named key
// held with extra modifiers falls back to its plain binding.
func (k Keymap) Lookup(ev KeyEvent) Action {
	if ev.Kind != KeyPress {
		return ActionNone
	}
	if a, ok := k[ev.Name()]; ok {
		return a
	}
	if ev.Code == KeyChar {
		if ev.Rune != 0 && ev.Mods&^ModShift == 0 {
			return ActionPush
		}
		return ActionNone
	}
	if ev.Mods != ModNone {
		if a, ok := k[NamedKey(ev.Code).Name()]; ok {
			return a
		}
	}
	return ActionNone
}

// Dispatch applies the action bound to ev to s and reports it. Releases and
// unbound keys return ActionNone and leave s untouched.
func (k Keymap) Dispatch(s State, ev KeyEvent) Action {
	a := k.Lookup(ev)
	switch a {
	case ActionNone:
	case ActionPush:
		Push(s, ev.Rune)
	default:
		if fn, ok := actionFuncs[a]; ok {
			fn(s)
		}
	}
	return a
}

var defaultKeymap = DefaultKeymap()

// HandleKey dispatches ev through the default table.
func HandleKey(s State, ev KeyEvent) Action {
	return defaultKeymap.Dispatch(s, ev)
}
