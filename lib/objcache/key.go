// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package objcache

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/loveezu/UtinyRipper/lib/object"
)

// Key identifies one decode result.
type Key [32]byte

// String returns the key as lowercase hex.
func (k Key) String() string { return hex.EncodeToString(k[:]) }

// snapshotDomainKey separates snapshot keys from any other BLAKE3
// keyed hash of the same bytes. Changing it invalidates every cache.
var snapshotDomainKey = [32]byte{
	'u', 't', 'i', 'n', 'y', 'r', 'i', 'p', 'p', 'e', 'r', '.', 'o', 'b', 'j', 'c',
	'a', 'c', 'h', 'e', '.', 's', 'n', 'a', 'p', 's', 'h', 'o', 't', 0, 0, 0,
}

// KeyFor returns the cache key for decoding raw from file. Every
// variable-length field is length-prefixed so distinct inputs cannot
// concatenate to the same byte stream.
func KeyFor(raw object.RawObjectBytes, file object.File) Key {
	hasher, err := blake3.NewKeyed(snapshotDomainKey[:])
	if err != nil {
		panic("objcache: BLAKE3 keyed hash initialization failed: " + err.Error())
	}

	var header []byte
	header = binary.LittleEndian.AppendUint32(header, uint32(raw.Identity.ClassID))
	header = binary.LittleEndian.AppendUint64(header, uint64(raw.Identity.PathID))
	header = append(header, raw.Identity.GUID[:]...)
	header = appendString(header, string(raw.Identity.Container))
	header = appendString(header, file.Session.String())
	header = binary.AppendUvarint(header, uint64(len(file.Externals)))
	for _, external := range file.Externals {
		header = appendString(header, string(external))
	}
	header = binary.LittleEndian.AppendUint32(header, raw.DeclaredLength)
	header = binary.AppendUvarint(header, uint64(len(raw.Data)))
	hasher.Write(header)
	hasher.Write(raw.Data)

	var key Key
	copy(key[:], hasher.Sum(nil))
	return key
}

func appendString(buffer []byte, value string) []byte {
	buffer = binary.AppendUvarint(buffer, uint64(len(value)))
	return append(buffer, value...)
}
