// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package asset

import "fmt"

// ContainerRef names a loaded container. It is opaque to this package;
// the container layer decides what the string holds (typically the
// container's file name).
type ContainerRef string

// Key is the (container, path id) pair that uniquely identifies an
// object among all loaded containers.
type Key struct {
	Container ContainerRef
	PathID    int64
}

// String formats the key as "container:pathID".
func (k Key) String() string {
	return fmt.Sprintf("%s:%d", k.Container, k.PathID)
}

// Identity is the per-object metadata attached at construction. It is a
// value type and is never modified after the object is created.
type Identity struct {
	Container ContainerRef
	PathID    int64
	ClassID   ClassID
	GUID      GUID
}

// Key returns the identity's join key.
func (id Identity) Key() Key {
	return Key{Container: id.Container, PathID: id.PathID}
}

// Ref returns a reference pointing at this identity.
func (id Identity) Ref() TypedRef {
	return TypedRef{Container: id.Container, PathID: id.PathID}
}

// String formats the identity for log lines, e.g. "GameObject[level0:12]".
func (id Identity) String() string {
	return fmt.Sprintf("%s[%s:%d]", id.ClassID, id.Container, id.PathID)
}

// TypedRef is a weak, possibly-null, possibly-dangling reference to an
// object. PathID zero is the null reference.
type TypedRef struct {
	Container ContainerRef
	PathID    int64
}

// IsNull reports whether the reference points at nothing.
func (r TypedRef) IsNull() bool { return r.PathID == 0 }

// Key returns the join key of the referenced object.
func (r TypedRef) Key() Key {
	return Key{Container: r.Container, PathID: r.PathID}
}

// String formats the reference for log lines.
func (r TypedRef) String() string {
	if r.IsNull() {
		return "null"
	}
	return r.Key().String()
}

// Asset is anything with an identity. Decoded objects satisfy it.
type Asset interface {
	Identity() Identity
}

// Lookup resolves references against the set of currently loaded
// containers. Implementations must be safe for concurrent use and must
// report a missing container or path id as (nil, false).
type Lookup interface {
	Resolve(container ContainerRef, pathID int64) (Asset, bool)
}

// Resolve is a convenience for resolving a TypedRef. Null references
// and nil lookups resolve to nothing.
func Resolve(lookup Lookup, ref TypedRef) (Asset, bool) {
	if lookup == nil || ref.IsNull() {
		return nil, false
	}
	return lookup.Resolve(ref.Container, ref.PathID)
}
