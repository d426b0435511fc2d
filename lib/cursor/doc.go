// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cursor provides the forward-only, version-aware read head used
// to decode one serialized object.
//
// A [Cursor] wraps the byte slice holding exactly one object together
// with the container's [transfer.Session]. Offsets are relative to the
// start of that slice, which is why [Cursor.Align] pads to boundaries
// measured from the start of the object rather than the start of the
// container.
//
// Errors are sticky: the first failed read records its error, every
// later read returns the zero value without advancing, and the caller
// checks [Cursor.Err] once at the end. Decoders therefore read field
// after field without interleaved error checks, and the first failure
// is the one reported.
//
// Error kinds:
//
//   - [ErrUnexpectedEndOfBuffer] -- fewer bytes remain than a read needs
//   - [ErrMalformedLength] -- a length prefix is negative or larger than
//     the remaining bytes could hold
//   - [ErrShortRead] -- decode finished before the declared object length
//     (reported by [Cursor.CheckConsumed] as a [ByteCountError])
//   - [ErrTrailingData] -- the byte range supplied for an object extends
//     past its declared length
//
// The cursor never rejects a value because of its content; out-of-range
// enums and odd floats are stored as read.
//
// [Writer] mirrors every read and is used to build well-formed buffers
// for tests and fixtures.
package cursor
