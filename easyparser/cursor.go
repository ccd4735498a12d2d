package easyparser

// Position is an opaque snapshot of a Cursor's read offset, obtained from
// Mark and later handed back to Rewind. It carries no meaning outside the
// Cursor it came from.
type Position int

// Cursor walks a byte slice from left to right. It never copies the
// underlying bytes: Peek and Remaining return views into the original
// slice, and Rewind only ever moves the read offset backwards to a
// previously captured Position.
type Cursor struct {
	bytes []byte
	pos   int
}

// NewCursor wraps view for reading. view must outlive the Cursor.
func NewCursor(view []byte) *Cursor {
	return &Cursor{bytes: view}
}

// Peek returns the next unread byte without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.bytes) {
		return 0, false
	}

	return c.bytes[c.pos], true
}

// PeekAt returns the byte offset bytes ahead of the current position,
// without consuming anything. It is used by producers that need to look
// more than one byte ahead (e.g. QuotedStringProducer checking the byte
// after a backslash).
func (c *Cursor) PeekAt(offset int) (byte, bool) {
	i := c.pos + offset
	if i < 0 || i >= len(c.bytes) {
		return 0, false
	}

	return c.bytes[i], true
}

// Advance moves the read offset forward by n bytes. It never advances past
// the end of the input.
func (c *Cursor) Advance(n int) {
	c.pos += n
	if c.pos > len(c.bytes) {
		c.pos = len(c.bytes)
	}
}

// Mark captures the current position for a later Rewind.
func (c *Cursor) Mark() Position {
	return Position(c.pos)
}

// Rewind restores a previously captured Position. Rewinding to a Position
// ahead of the current one is a programming error and panics, since it
// would violate the cursor's monotone-forward-under-consumption contract.
func (c *Cursor) Rewind(p Position) {
	if int(p) > c.pos {
		panic("easyparser: rewind to a position ahead of the current one")
	}

	c.pos = int(p)
}

// EOF reports whether every byte of the input has been consumed.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.bytes)
}

// Remaining returns a view of the not-yet-consumed input.
func (c *Cursor) Remaining() []byte {
	return c.bytes[c.pos:]
}

// Pos returns the current byte offset, mostly useful for building
// ParseErrors from outside a producer.
func (c *Cursor) Pos() int {
	return c.pos
}
