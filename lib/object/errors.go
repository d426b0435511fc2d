// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"errors"
	"fmt"

	"github.com/loveezu/UtinyRipper/lib/asset"
)

var (
	// ErrUnsupportedVariant is returned when no decoder is registered
	// for an object's class id. The object should be skipped; it is
	// not fatal to the container.
	ErrUnsupportedVariant = errors.New("unsupported variant")

	// ErrExportUnsupported is returned when an object or structure has
	// no representation in the requested export form. Callers can skip
	// just that object instead of treating it as a failure.
	ErrExportUnsupported = errors.New("export unsupported")
)

// DecodeError reports a failure to decode one object. It wraps the
// underlying cursor or layout error.
type DecodeError struct {
	Identity asset.Identity
	Err      error
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", err.Identity, err.Err)
}

func (err *DecodeError) Unwrap() error { return err.Err }

// ExportError reports a failure to export one object.
type ExportError struct {
	Identity asset.Identity
	Err      error
}

func (err *ExportError) Error() string {
	return fmt.Sprintf("exporting %s: %v", err.Identity, err.Err)
}

func (err *ExportError) Unwrap() error { return err.Err }
