// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package dependency resolves the references of a decoded object into
// the objects they point at.
//
// [Dependencies] returns a lazy, restartable sequence: each iteration
// walks the object's references afresh, in field declaration order and
// then array index order, and resolves each through an [asset.Lookup].
// Null references are skipped. Unresolved references are skipped too,
// because cross-container references routinely point at containers that
// are not loaded; [WithUnresolved] and [WithLogger] observe them. No
// deduplication is done; [Unique] filters a sequence to first
// occurrences for callers that need a set.
package dependency
