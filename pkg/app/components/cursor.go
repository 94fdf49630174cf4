package components

// Cursor is the slideshow position over a fixed number of strips.
// It clamps at both ends instead of wrapping around.
type Cursor struct {
	index  int
	length int
}

func NewCursor(length int) *Cursor {
	if length < 0 {
		length = 0
	}
	return &Cursor{length: length}
}

func (c *Cursor) Index() int {
	return c.index
}

func (c *Cursor) Len() int {
	return c.length
}

func (c *Cursor) AtStart() bool {
	return c.index == 0
}

func (c *Cursor) AtEnd() bool {
	return c.length == 0 || c.index == c.length-1
}

// Next moves one strip forward and reports whether the cursor moved
func (c *Cursor) Next() bool {
	if c.AtEnd() {
		return false
	}
	c.index++
	return true
}

// Prev moves one strip back and reports whether the cursor moved
func (c *Cursor) Prev() bool {
	if c.AtStart() {
		return false
	}
	c.index--
	return true
}

func (c *Cursor) First() bool {
	if c.AtStart() {
		return false
	}
	c.index = 0
	return true
}

func (c *Cursor) Last() bool {
	if c.AtEnd() {
		return false
	}
	c.index = c.length - 1
	return true
}
