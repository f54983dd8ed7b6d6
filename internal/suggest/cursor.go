package suggest

// NoSelection is the cursor index when no suggestion is highlighted.
const NoSelection = -1

// Cursor tracks the highlighted suggestion. It clamps at both ends and
// never wraps. The zero value is not usable; start with NewCursor.
type Cursor struct {
	index int
	size  int
}

// NewCursor returns a cursor with nothing selected over an empty set.
func NewCursor() Cursor {
	return Cursor{index: NoSelection}
}

// Index returns the highlighted position or NoSelection.
func (c Cursor) Index() int { return c.index }

// Selected reports whether a suggestion is highlighted.
func (c Cursor) Selected() bool { return c.index >= 0 }

// Reset clears the selection and sets the number of visible suggestions.
func (c *Cursor) Reset(size int) {
	if size < 0 {
		size = 0
	}
	c.size = size
	c.index = NoSelection
}

// Down moves one suggestion down. It reports whether the cursor moved.
func (c *Cursor) Down() bool {
	if c.index >= c.size-1 {
		return false
	}
	c.index++
	return true
}

// Up moves one suggestion up, back to NoSelection at most.
func (c *Cursor) Up() bool {
	if c.index <= NoSelection {
		return false
	}
	c.index--
	return true
}

// Set points the cursor at i if i is a visible position.
func (c *Cursor) Set(i int) bool {
	if i < 0 || i >= c.size {
		return false
	}
	c.index = i
	return true
}
