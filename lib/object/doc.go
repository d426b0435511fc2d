// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package object is the decodable object model: one Go type per engine
// class, each owning a version-conditional binary layout and a matching
// export layout.
//
// Every variant embeds [Base], the common header carrying the object's
// identity, hide flags and the optional instance-id pair. Variants that
// the engine derives from Component or Behaviour embed [Component] or
// [Behaviour] instead, which embed Base in turn. Composition replaces
// the engine's class hierarchy: a variant overrides Decode and Export
// and calls the embedded header's methods first.
//
// Layout rules follow one pattern everywhere. Field presence and order
// are pure functions of the session (version, platform, transfer
// flags), evaluated top to bottom with GreaterEqual comparisons against
// the version a field was introduced or removed in. Boolean and byte
// runs are followed by Align(4). Decode never returns an error directly;
// the [Reader] records the first failure and [Registry.Decode] reports
// it together with the end-of-object byte count check.
//
// Export re-derives the same conditionals from the export context's
// version and flags, which may differ from the decode session when
// re-targeting output to another engine version.
//
// Objects reference each other only through [asset.TypedRef] values.
// References lists every reference-typed field in declaration order,
// including references nested in arrays and structures; resolving them
// is the job of package dependency.
//
// The registry is keyed by [asset.ClassID], the same value that tags
// exported documents, so the class id enum is the single mapping from
// numeric type to variant.
package object
