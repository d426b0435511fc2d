// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cursor

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/loveezu/UtinyRipper/lib/transfer"
	"github.com/loveezu/UtinyRipper/lib/version"
)

// Cursor is a sequential read head over one object's bytes.
type Cursor struct {
	data      []byte
	offset    int
	session   transfer.Session
	byteOrder binary.ByteOrder
	err       error
}

// New returns a cursor positioned at the start of data.
func New(data []byte, session transfer.Session) *Cursor {
	return &Cursor{
		data:      data,
		session:   session,
		byteOrder: session.ByteOrder(),
	}
}

// Session returns the session the cursor was created with.
func (c *Cursor) Session() transfer.Session { return c.session }

// Version returns the format version being decoded.
func (c *Cursor) Version() version.Version { return c.session.Version }

// Platform returns the target platform being decoded.
func (c *Cursor) Platform() transfer.Platform { return c.session.Platform }

// Flags returns the session transfer flags.
func (c *Cursor) Flags() transfer.Flags { return c.session.Flags }

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int { return c.offset }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.offset }

// Err returns the first error encountered, or nil.
func (c *Cursor) Err() error { return c.err }

// Fail records err as the cursor's error if none is set yet. Decoders
// use it to report value-level problems through the same channel as
// read failures.
func (c *Cursor) Fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// take returns the next n bytes, or nil after recording an error.
func (c *Cursor) take(n int) []byte {
	if c.err != nil {
		return nil
	}
	if n < 0 || n > c.Remaining() {
		c.err = fmt.Errorf("reading %d bytes at offset %d with %d remaining: %w",
			n, c.offset, c.Remaining(), ErrUnexpectedEndOfBuffer)
		return nil
	}
	chunk := c.data[c.offset : c.offset+n]
	c.offset += n
	return chunk
}

func (c *Cursor) Uint8() uint8 {
	b := c.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (c *Cursor) Int8() int8 { return int8(c.Uint8()) }

// Bool reads one byte; any non-zero value is true.
func (c *Cursor) Bool() bool { return c.Uint8() != 0 }

func (c *Cursor) Uint16() uint16 {
	b := c.take(2)
	if b == nil {
		return 0
	}
	return c.byteOrder.Uint16(b)
}

func (c *Cursor) Int16() int16 { return int16(c.Uint16()) }

func (c *Cursor) Uint32() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return c.byteOrder.Uint32(b)
}

func (c *Cursor) Int32() int32 { return int32(c.Uint32()) }

func (c *Cursor) Uint64() uint64 {
	b := c.take(8)
	if b == nil {
		return 0
	}
	return c.byteOrder.Uint64(b)
}

func (c *Cursor) Int64() int64 { return int64(c.Uint64()) }

func (c *Cursor) Float32() float32 { return math.Float32frombits(c.Uint32()) }

func (c *Cursor) Float64() float64 { return math.Float64frombits(c.Uint64()) }

// Bytes reads n bytes and returns a copy.
func (c *Cursor) Bytes(n int) []byte {
	chunk := c.take(n)
	if chunk == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, chunk)
	return out
}

// Count reads a signed 32-bit element count. A negative count, or one
// whose elements could not fit in the remaining bytes at minElementSize
// bytes each, records ErrMalformedLength and returns 0.
func (c *Cursor) Count(minElementSize int) int {
	raw := c.Int32()
	if c.err != nil {
		return 0
	}
	if raw < 0 {
		c.err = fmt.Errorf("count %d at offset %d: %w", raw, c.offset-4, ErrMalformedLength)
		return 0
	}
	count := int(raw)
	if minElementSize > 0 && int64(count)*int64(minElementSize) > int64(c.Remaining()) {
		c.err = fmt.Errorf("count %d of %d-byte elements at offset %d exceeds %d remaining bytes: %w",
			count, minElementSize, c.offset-4, c.Remaining(), ErrMalformedLength)
		return 0
	}
	return count
}

// ByteArray reads a length-prefixed byte blob without alignment.
func (c *Cursor) ByteArray() []byte {
	return c.Bytes(c.Count(1))
}

// ReadString reads a length-prefixed UTF-8 string without alignment.
func (c *Cursor) ReadString() string {
	return string(c.ByteArray())
}

// ReadAlignedString reads a length-prefixed string, then pads to the
// next 4-byte boundary.
func (c *Cursor) ReadAlignedString() string {
	value := c.ReadString()
	c.Align(4)
	return value
}

// AlignedByteArray reads a length-prefixed byte blob, then pads to the
// next 4-byte boundary.
func (c *Cursor) AlignedByteArray() []byte {
	value := c.ByteArray()
	c.Align(4)
	return value
}

// Align advances to the next multiple of n measured from the start of
// the object. Padding byte values are not inspected.
func (c *Cursor) Align(n int) {
	if n <= 1 {
		return
	}
	if padding := (n - c.offset%n) % n; padding > 0 {
		c.take(padding)
	}
}

// CheckConsumed compares the consumed byte count with the object's
// declared length. It returns the cursor's read error if one is set,
// a *ByteCountError on mismatch, and nil otherwise.
func (c *Cursor) CheckConsumed(declared int) error {
	if c.err != nil {
		return c.err
	}
	if c.offset != declared {
		return &ByteCountError{Consumed: c.offset, Declared: declared}
	}
	return nil
}

// ReadArray reads a length-prefixed array, decoding each element with
// decode. minElementSize is the smallest encoded size of one element and
// bounds the count against the remaining bytes.
func ReadArray[T any](c *Cursor, minElementSize int, decode func(*Cursor) T) []T {
	count := c.Count(minElementSize)
	if count == 0 {
		return nil
	}
	out := make([]T, 0, count)
	for range count {
		element := decode(c)
		if c.err != nil {
			return nil
		}
		out = append(out, element)
	}
	return out
}
