// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"encoding/binary"
	"fmt"

	"github.com/loveezu/UtinyRipper/lib/version"
)

// Session is the immutable set of parameters shared by every object in
// one container: format version, target platform and transfer flags.
type Session struct {
	Version  version.Version
	Platform Platform
	Flags    Flags
}

// ByteOrder returns the byte order multi-byte primitives are stored in.
// Data is little-endian unless the flags request a swap or the platform
// is a big-endian console.
func (s Session) ByteOrder() binary.ByteOrder {
	if s.Flags.IsSwapEndianness() || s.Platform.BigEndian() {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// String formats the session for log lines.
func (s Session) String() string {
	return fmt.Sprintf("%s/%s/%s", s.Version, s.Platform, s.Flags)
}
