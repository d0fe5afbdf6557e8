package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RenderStyle selects how the value is presented.
type RenderStyle int

const (
	RenderDefault RenderStyle = iota
	RenderPassword
	RenderInvisible
)

const passwordMask = '*'

func (r RenderStyle) String() string {
	switch r {
	case RenderPassword:
		return "password"
	case RenderInvisible:
		return "invisible"
	default:
		return "default"
	}
}

// Render returns the text displayed for value. Password output has exactly
// one mask character per character of value.
func (r RenderStyle) Render(value string) string {
	switch r {
	case RenderPassword:
		return strings.Repeat(string(passwordMask), utf8.RuneCountInString(value))
	case RenderInvisible:
		return ""
	default:
		return value
	}
}

// cursorOffset is the column offset of position inside the rendered value.
func (r RenderStyle) cursorOffset(position int) int {
	if r == RenderInvisible {
		return 0
	}
	return position
}

// Masked reports whether the value must not be shown or logged.
func (r RenderStyle) Masked() bool {
	return r != RenderDefault
}

func ParseRenderStyle(name string) (RenderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "text":
		return RenderDefault, nil
	case "password":
		return RenderPassword, nil
	case "invisible":
		return RenderInvisible, nil
	}
	return RenderDefault, fmt.Errorf("unknown render style %q", name)
}
