package styled

import "github.com/mattn/go-runewidth"

// cond measures runes the same way regardless of the user's locale: East Asian
// ambiguous runes are narrow, emoji presentation follows the Unicode tables.
var cond = newCondition()

func newCondition() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	c.StrictEmojiNeutral = true
	return c
}

// RuneWidth returns the number of terminal cells r occupies (0, 1 or 2).
func RuneWidth(r rune) int {
	return cond.RuneWidth(r)
}

// StringWidth returns the display width of s as the sum of its rune widths.
// StringWidth(a+b) == StringWidth(a)+StringWidth(b) for any split point.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += cond.RuneWidth(r)
	}
	return w
}
