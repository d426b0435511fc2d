// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cursor

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEndOfBuffer is returned when a read needs more bytes
	// than remain in the object.
	ErrUnexpectedEndOfBuffer = errors.New("unexpected end of buffer")

	// ErrMalformedLength is returned when an array or string length
	// prefix is negative or implausibly large.
	ErrMalformedLength = errors.New("malformed length")

	// ErrShortRead is returned when decode finished before consuming
	// the object's declared byte length. It almost always means the
	// layout chosen for the version is wrong or an alignment is missing.
	ErrShortRead = errors.New("short read")

	// ErrTrailingData is returned when the byte range handed in for an
	// object is longer than its declared length.
	ErrTrailingData = errors.New("trailing data")
)

// ByteCountError reports a mismatch between the bytes a decoder consumed
// and the object's declared length.
type ByteCountError struct {
	Consumed int
	Declared int
}

func (err *ByteCountError) Error() string {
	return fmt.Sprintf("read %d bytes, declared length is %d", err.Consumed, err.Declared)
}

// Is matches ErrShortRead, so callers can test the kind with errors.Is.
func (err *ByteCountError) Is(target error) bool {
	return target == ErrShortRead
}
