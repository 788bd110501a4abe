// SPDX-License-Identifier: MIT
//
// Copyright © 2024 the go-messaging authors.

// Package cursor provides a forward-only byte iterator with a one-ahead
// preview that can be rewound without consuming, as required by the
// speculative grammars used by WSP and MMS (try production A, and on
// failure back up and try production B).
package cursor

import "errors"

// ErrEndOfInput indicates the cursor has no more bytes to return.
var ErrEndOfInput = errors.New("cursor: end of input")

// Cursor iterates over a borrowed byte slice.
type Cursor struct {
	src  []byte
	pos  int // consumed position
	peek int // preview position, always >= pos
}

// New returns a Cursor over src. The slice is borrowed, not copied.
func New(src []byte) *Cursor {
	return &Cursor{src: src}
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unconsumed bytes.
func (c *Cursor) Remaining() int {
	return len(c.src) - c.pos
}

// Next returns the byte at the consumed position and advances both the
// consumed and preview positions.
func (c *Cursor) Next() (byte, error) {
	if c.pos >= len(c.src) {
		return 0, ErrEndOfInput
	}
	b := c.src[c.pos]
	c.pos++
	if c.peek < c.pos {
		c.peek = c.pos
	}
	return b, nil
}

// Preview returns the byte at the preview position and advances only the
// preview position, leaving the consumed position unchanged.
func (c *Cursor) Preview() (byte, error) {
	if c.peek >= len(c.src) {
		return 0, ErrEndOfInput
	}
	b := c.src[c.peek]
	c.peek++
	return b, nil
}

// ResetPreview sets the preview position back to the consumed position,
// discarding any bytes read via Preview since the last Next or ResetPreview.
func (c *Cursor) ResetPreview() {
	c.peek = c.pos
}

// Commit advances the consumed position to the current preview position,
// turning a sequence of Preview reads into consumed ones.
func (c *Cursor) Commit() {
	c.pos = c.peek
}

// Take consumes and returns the next n bytes.
func (c *Cursor) Take(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.src) {
		return nil, ErrEndOfInput
	}
	b := c.src[c.pos : c.pos+n]
	c.pos += n
	c.peek = c.pos
	return b, nil
}

// Rest returns, and consumes, all remaining bytes.
func (c *Cursor) Rest() []byte {
	b := c.src[c.pos:]
	c.pos = len(c.src)
	c.peek = c.pos
	return b
}
