package bind

// Cursor walks an immutable token slice. Only the read position ever changes;
// each invocation gets its own cursor, so no locking is involved.
type Cursor struct {
	args  []string
	index int
}

// NewCursor returns a cursor positioned before the first token.
func NewCursor(args []string) *Cursor {
	return &Cursor{args: args}
}

// Next consumes and returns the next token. ok is false once exhausted.
func (c *Cursor) Next() (string, bool) {
	if c.index >= len(c.args) {
		return "", false
	}
	tok := c.args[c.index]
	c.index++
	return tok, true
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (string, bool) {
	if c.index >= len(c.args) {
		return "", false
	}
	return c.args[c.index], true
}

// Back moves the read position one token backwards, so a token a later
// descriptor may still want can be re-read.
func (c *Cursor) Back() {
	if c.index > 0 {
		c.index--
	}
}

// Remaining returns the unconsumed tail without moving the position.
func (c *Cursor) Remaining() []string {
	return c.args[c.index:]
}

// ConsumeRest returns the unconsumed tail and jumps to the end.
func (c *Cursor) ConsumeRest() []string {
	rest := c.args[c.index:]
	c.index = len(c.args)
	return rest
}

// Finished reports whether every token has been consumed.
func (c *Cursor) Finished() bool {
	return c.index >= len(c.args)
}

// Reset rewinds the cursor to the first token.
func (c *Cursor) Reset() {
	c.index = 0
}
