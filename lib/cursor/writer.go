// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cursor

import (
	"encoding/binary"
	"math"

	"github.com/loveezu/UtinyRipper/lib/transfer"
)

// Writer appends primitives in the same encoding Cursor reads. Alignment
// padding is written as zero bytes.
type Writer struct {
	buffer    []byte
	byteOrder binary.AppendByteOrder
}

// NewWriter returns an empty writer using the session's byte order.
func NewWriter(session transfer.Session) *Writer {
	// Both standard byte orders implement AppendByteOrder.
	return &Writer{byteOrder: session.ByteOrder().(binary.AppendByteOrder)}
}

// Bytes returns the bytes written so far. The slice aliases the writer's
// buffer until the next write.
func (w *Writer) Bytes() []byte { return w.buffer }

// Len returns the number of bytes written.
func (w *Writer) Len() int { return len(w.buffer) }

func (w *Writer) Uint8(v uint8) { w.buffer = append(w.buffer, v) }

func (w *Writer) Int8(v int8) { w.Uint8(uint8(v)) }

func (w *Writer) Bool(v bool) {
	if v {
		w.Uint8(1)
	} else {
		w.Uint8(0)
	}
}

func (w *Writer) Uint16(v uint16) { w.buffer = w.byteOrder.AppendUint16(w.buffer, v) }

func (w *Writer) Int16(v int16) { w.Uint16(uint16(v)) }

func (w *Writer) Uint32(v uint32) { w.buffer = w.byteOrder.AppendUint32(w.buffer, v) }

func (w *Writer) Int32(v int32) { w.Uint32(uint32(v)) }

func (w *Writer) Uint64(v uint64) { w.buffer = w.byteOrder.AppendUint64(w.buffer, v) }

func (w *Writer) Int64(v int64) { w.Uint64(uint64(v)) }

func (w *Writer) Float32(v float32) { w.Uint32(math.Float32bits(v)) }

func (w *Writer) Float64(v float64) { w.Uint64(math.Float64bits(v)) }

// Raw appends data verbatim.
func (w *Writer) Raw(data []byte) { w.buffer = append(w.buffer, data...) }

// Count writes an int32 element count.
func (w *Writer) Count(n int) { w.Int32(int32(n)) }

// ByteArray writes a length-prefixed blob.
func (w *Writer) ByteArray(data []byte) {
	w.Count(len(data))
	w.Raw(data)
}

// WriteString writes a length-prefixed string.
func (w *Writer) WriteString(value string) { w.ByteArray([]byte(value)) }

// WriteAlignedString writes a length-prefixed string followed by padding
// to the next 4-byte boundary.
func (w *Writer) WriteAlignedString(value string) {
	w.WriteString(value)
	w.Align(4)
}

// Align pads with zero bytes to the next multiple of n.
func (w *Writer) Align(n int) {
	if n <= 1 {
		return
	}
	for len(w.buffer)%n != 0 {
		w.buffer = append(w.buffer, 0)
	}
}
