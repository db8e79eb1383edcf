package lexer

import "unicode/utf8"

// EOF is the sentinel rune lookahead yields past the end of the source.
// It is not an error; predicates must treat it as "no character here".
const EOF rune = -1

// Pos is a byte offset into the source buffer. It only moves forward.
type Pos int

// Cursor is a forward-only scanner over source text with bounded
// lookahead. It borrows the source for the whole lexing session and
// never copies it; the runs it returns are slices of the original.
type Cursor struct {
	src string
	pos Pos
}

// NewCursor returns a cursor positioned at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() Pos {
	return c.pos
}

// Slice returns the source text between from and the current position.
func (c *Cursor) Slice(from Pos) string {
	return c.src[from:c.pos]
}

// First returns the rune under the cursor without consuming it.
func (c *Cursor) First() rune {
	return c.Nth(0)
}

// Second returns the rune one past the cursor without consuming it.
func (c *Cursor) Second() rune {
	return c.Nth(1)
}

// Nth returns the rune n positions past the cursor without consuming
// anything, or EOF when that offset is past the end of the source.
func (c *Cursor) Nth(n int) rune {
	off := int(c.pos)
	for {
		if off >= len(c.src) {
			return EOF
		}
		r, size := utf8.DecodeRuneInString(c.src[off:])
		if n == 0 {
			return r
		}
		n--
		off += size
	}
}

// Advance consumes one rune and returns it, or EOF when the source is
// exhausted.
func (c *Cursor) Advance() rune {
	if int(c.pos) >= len(c.src) {
		return EOF
	}
	r, size := utf8.DecodeRuneInString(c.src[c.pos:])
	c.pos += Pos(size)
	return r
}

// AdvanceBy consumes exactly n runes, stopping early at end of input.
// Callers use it to commit a multi-rune lookahead match such as "::".
func (c *Cursor) AdvanceBy(n int) {
	for i := 0; i < n; i++ {
		if c.Advance() == EOF {
			return
		}
	}
}

// ConsumeWhile consumes runes while pred holds and returns the consumed
// run. The run is empty when pred fails on the first rune; that is a
// valid outcome, not an error.
func (c *Cursor) ConsumeWhile(pred func(rune) bool) string {
	start := c.pos
	for {
		r := c.First()
		if r == EOF || !pred(r) {
			return c.Slice(start)
		}
		c.Advance()
	}
}

// ConsumeWhileCursor consumes one rune at a time and hands both the rune
// and the cursor to pred, so pred can do its own nested lookahead and
// consumption before deciding whether to stop. The block-comment
// recognizer needs this: on "*" it must peek for "/" and consume it only
// when the pair closes the comment. Whatever pred consumed is part of
// the returned run.
func (c *Cursor) ConsumeWhileCursor(pred func(*Cursor, rune) bool) string {
	start := c.pos
	for {
		r := c.First()
		if r == EOF {
			return c.Slice(start)
		}
		c.Advance()
		if !pred(c, r) {
			return c.Slice(start)
		}
	}
}
