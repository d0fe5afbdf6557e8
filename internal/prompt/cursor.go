package prompt

// MapCursor turns a column offset from the start of the first line into
// screen coordinates inside area, assuming every row above the cursor is
// filled to the full width.
//
// Offsets past the last cell of the area are clamped to that cell. The clamp
// only keeps the cursor inside the area: with a wrapped value it can still
// land beyond the value's last character. A degenerate area maps everything
// to its origin.
func MapCursor(area Rect, offset int) (x, y int) {
	if area.Empty() {
		return area.X, area.Y
	}
	if offset < 0 {
		offset = 0
	}
	if capacity := area.Width * area.Height; offset > capacity-1 {
		offset = capacity - 1
	}
	return area.X + offset%area.Width, area.Y + offset/area.Width
}
