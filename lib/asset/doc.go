// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package asset defines object identity and cross-object references.
//
// Every decoded object carries an [Identity]: the container it came from,
// its path id (unique within that container), its [ClassID] and an
// optional [GUID]. Identity is fixed at construction and is the join key
// for both dependency resolution and export anchor assignment.
//
// Objects never own each other. A reference is a [TypedRef], a
// by-value (container, path id) pair that may dangle. Resolving one is a
// lookup against a [Lookup] capability supplied by whoever owns the set
// of loaded containers; a failed lookup is an absent result, not an
// error. This keeps cyclic scene graphs free of ownership cycles.
//
// [ClassID] is the single source of truth for an object kind: it is the
// registry dispatch key in the object model, the document tag in export
// output, and (through [ClassID.String]) the root key of each exported
// document.
package asset
