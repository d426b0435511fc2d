// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec is the CBOR configuration used for decoded-object
// snapshots.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same object always produces identical bytes, so snapshots can be
// compared and content-addressed.
//
// Types implementing encoding.TextMarshaler (versions, platforms,
// GUIDs) encode as CBOR text strings through MarshalText and decode
// through UnmarshalText.
//
// A snapshot wraps one object's encoding in an envelope recording the
// snapshot format and the object's class id:
//
//	data, err := codec.EncodeSnapshot(int32(obj.ClassID()), obj)
//	err = codec.DecodeSnapshot(data, int32(classID), target)
//
// Decoding rejects snapshots written under another format or for
// another class with ErrSnapshotMismatch, so a cache never hands back an
// object decoded into the wrong variant.
package codec
