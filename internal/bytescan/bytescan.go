// Package bytescan provides a forward cursor with one-byte lookahead over a
// byte buffer.
package bytescan

import "fmt"

// Cursor scans a byte buffer left to right. The position is an explicit index
// into the buffer; peeking never consumes.
type Cursor struct {
	buf []byte
	pos int
}

// New creates a Cursor over buf. The cursor never modifies buf.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Peek returns the next byte without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.buf) {
		return 0, false
	}

	return c.buf[c.pos], true
}

// Next consumes and returns the next byte.
func (c *Cursor) Next() (byte, bool) {
	b, ok := c.Peek()
	if ok {
		c.pos++
	}

	return b, ok
}

// Accept consumes the next byte only if it equals want, reporting whether it
// did.
func (c *Cursor) Accept(want byte) bool {
	b, ok := c.Peek()
	if !ok || b != want {
		return false
	}

	c.pos++

	return true
}

// MustNext consumes the next byte and panics unless it equals want.
// A mismatch means the caller consumed a byte it never peeked; that is a bug
// in the scanning logic, not malformed input.
func (c *Cursor) MustNext(want byte) {
	b, ok := c.Next()
	if !ok {
		panic(fmt.Sprintf("bytescan: want %q but buffer exhausted at offset %d", want, c.pos))
	}

	if b != want {
		panic(fmt.Sprintf("bytescan: want %q at offset %d, consumed %q", want, c.pos-1, b))
	}
}

// TakeWhile consumes the maximal run of bytes satisfying accept and returns
// it. The returned slice aliases the cursor's buffer and must not be modified.
func (c *Cursor) TakeWhile(accept func(byte) bool) []byte {
	start := c.pos
	for c.pos < len(c.buf) && accept(c.buf[c.pos]) {
		c.pos++
	}

	return c.buf[start:c.pos]
}
