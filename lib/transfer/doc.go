// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package transfer holds the session-wide serialization parameters a
// container header supplies once and every decode and export call reads:
// the target [Platform], the [Flags] bitset, and the [Session] that
// bundles them with the format version.
//
// A Session is a plain value. It is computed once per container and
// never mutated while objects are being decoded, so it can be shared by
// any number of concurrent decoders.
package transfer
