// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package asset

import (
	"encoding/hex"
	"fmt"
)

// GUID is the engine's 128-bit asset identifier, stored as four
// little-endian uint32 words. The zero GUID marks a container-local
// object with no project-wide identity.
type GUID [16]byte

// IsZero reports whether g is the zero GUID.
func (g GUID) IsZero() bool { return g == GUID{} }

// String returns the 32-character form used in meta files and external
// references. The engine prints each byte with its nibbles swapped, so
// the bytes 0x12 0x34 render as "2143".
func (g GUID) String() string {
	var out [32]byte
	const digits = "0123456789abcdef"
	for i, b := range g {
		out[i*2] = digits[b&0x0f]
		out[i*2+1] = digits[b>>4]
	}
	return string(out[:])
}

// ParseGUID parses the 32-character form produced by String.
func ParseGUID(text string) (GUID, error) {
	if len(text) != 32 {
		return GUID{}, fmt.Errorf("guid %q is %d characters, want 32", text, len(text))
	}
	swapped := make([]byte, 32)
	for i := 0; i < 32; i += 2 {
		swapped[i] = text[i+1]
		swapped[i+1] = text[i]
	}
	decoded, err := hex.DecodeString(string(swapped))
	if err != nil {
		return GUID{}, fmt.Errorf("parsing guid %q: %w", text, err)
	}
	var g GUID
	copy(g[:], decoded)
	return g, nil
}

// MarshalText implements encoding.TextMarshaler.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GUID) UnmarshalText(text []byte) error {
	parsed, err := ParseGUID(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
