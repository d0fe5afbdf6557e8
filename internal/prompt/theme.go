package prompt

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the styles the composer and block draw with.
type Theme struct {
	Pending   tcell.Style
	Aborted   tcell.Style
	Done      tcell.Style
	Label     tcell.Style
	Separator tcell.Style
	Value     tcell.Style
	Border    tcell.Style
	Syntax    map[string]tcell.Style
}

func DefaultTheme() Theme {
	base := tcell.StyleDefault
	syntax := map[string]tcell.Style{}
	for kind, hex := range map[string]string{
		"keyword":     "#FFA759",
		"string":      "#BAE67E",
		"comment":     "#5C6773",
		"type":        "#5CCFE6",
		"function":    "#FFD173",
		"number":      "#D4BFFF",
		"constant":    "#FFDD8E",
		"operator":    "#F29668",
		"punctuation": "#C0C0C0",
		"field":       "#E6B673",
		"builtin":     "#73D0FF",
		"variable":    "#B3B1AD",
		"parameter":   "#B3B1AD",
	} {
		syntax[kind] = base.Foreground(ParseColor(hex, tcell.ColorDefault))
	}
	return Theme{
		Pending:   base.Foreground(tcell.ColorTeal),
		Aborted:   base.Foreground(tcell.ColorMaroon),
		Done:      base.Foreground(tcell.ColorGreen),
		Label:     base.Bold(true),
		Separator: base.Foreground(tcell.ColorTeal).Dim(true),
		Value:     base,
		Border:    base,
		Syntax:    syntax,
	}
}

// ParseColor accepts "#RRGGBB", "default" or any tcell color name.
func ParseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

// HighlightPriority decides which capture wins when spans overlap.
func HighlightPriority(kind string) int {
	switch kind {
	case "comment":
		return 7
	case "string":
		return 6
	case "keyword":
		return 5
	case "constant", "builtin":
		return 4
	case "parameter", "type", "function", "number":
		return 3
	case "field", "variable":
		return 2
	case "operator", "punctuation":
		return 1
	default:
		return 0
	}
}
