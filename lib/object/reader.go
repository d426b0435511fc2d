// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/cursor"
	"github.com/loveezu/UtinyRipper/lib/version"
)

// Reader is a cursor over one object's bytes plus the file-index table
// needed to turn serialized references into container refs.
type Reader struct {
	*cursor.Cursor
	file File
}

// NewReader returns a reader over data decoded under file's session.
func NewReader(data []byte, file File) *Reader {
	return &Reader{
		Cursor: cursor.New(data, file.Session),
		file:   file,
	}
}

// File returns the decode source.
func (r *Reader) File() File { return r.file }

// PPtr reads a serialized reference: an int32 file index followed by
// the path id, which is int32 before 5.0 and int64 from 5.0. A zero
// path id is the null reference and decodes to the zero TypedRef
// whatever its file index.
func (r *Reader) PPtr() asset.TypedRef {
	fileIndex := r.Int32()
	var pathID int64
	if widePathID(r.Version()) {
		pathID = r.Int64()
	} else {
		pathID = int64(r.Int32())
	}
	if r.Err() != nil || pathID == 0 {
		return asset.TypedRef{}
	}
	return asset.TypedRef{Container: r.file.ResolveFileIndex(fileIndex), PathID: pathID}
}

// PPtrSize returns the encoded size of a reference under v.
func PPtrSize(v version.Version) int {
	if widePathID(v) {
		return 12
	}
	return 8
}

func widePathID(v version.Version) bool {
	return v.GreaterEqual(5)
}

// ReadArray reads a length-prefixed array whose elements need the full
// reader. minElementSize bounds the count against the remaining bytes.
func ReadArray[T any](r *Reader, minElementSize int, decode func(*Reader) T) []T {
	return cursor.ReadArray(r.Cursor, minElementSize, func(*cursor.Cursor) T {
		return decode(r)
	})
}

// ReadPPtrArray reads a length-prefixed array of references.
func ReadPPtrArray(r *Reader) []asset.TypedRef {
	return ReadArray(r, PPtrSize(r.Version()), (*Reader).PPtr)
}
