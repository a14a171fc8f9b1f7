package wire

import (
	"errors"
	"fmt"
)

// ErrBufferUnderrun reports a read that would run past the end of the
// payload. Every codec method checks length before touching the buffer, so
// a failed read never consumes bytes.
var ErrBufferUnderrun = errors.New("buffer underrun")

// Cursor is a read view over an immutable payload plus the current offset.
// A Cursor belongs to a single decode call and is never shared.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor wraps payload without copying it.
func NewCursor(payload []byte) *Cursor {
	return &Cursor{buf: payload}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int { return c.off }

// Remaining returns the number of bytes left to read.
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

func (c *Cursor) take(n int) ([]byte, error) {
	if c.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrBufferUnderrun, n, c.off, c.Remaining())
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// U8 reads a single byte.
func (c *Cursor) U8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Peek returns the next byte without advancing the cursor.
func (c *Cursor) Peek() (uint8, error) {
	if c.Remaining() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte at offset %d, have 0", ErrBufferUnderrun, c.off)
	}
	return c.buf[c.off], nil
}

// Bytes reads n raw bytes.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	return c.take(n)
}
