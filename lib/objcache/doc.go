// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package objcache caches decoded objects so that re-opening the same
// container skips decoding.
//
// Entries are content-addressed: a [Key] is the BLAKE3 keyed hash of
// everything a decode depends on (the object's identity, the container
// session, the container's external file table, the declared length
// and the raw bytes). Two decodes with equal keys produce equal
// objects, so a hit never needs validation beyond the snapshot
// envelope's class check.
//
// The cache has two tiers. The memory tier is an LRU of decoded
// objects, shared by reference since decoded objects are read-only.
// The optional disk tier stores CBOR snapshots (see package codec),
// each compressed with LZ4 or zstd and tagged so readers do not depend
// on the writer's configuration:
//
//	<root>/<first key byte, hex>/<key hex>.snap
//
// A disk file holds a 9-byte header (magic "OSNP", compression tag,
// uncompressed length as little-endian uint32) followed by the payload.
// Files are written to a temporary name and renamed into place, so
// concurrent writers of the same key are harmless.
//
// Corrupt or mismatched disk entries are treated as misses and logged.
package objcache
