// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package export builds and renders the tagged, indentation-sensitive
// text notation the engine uses for asset files.
//
// Exporting is split in two. Object exporters build a tree of nodes
// ([Mapping], [Sequence], [Scalar]) inside a [Context]; the [Encoder]
// then renders finished [Document] values. The tree carries no
// formatting decisions beyond the flow style of small mappings, so the
// notation rules live in one place:
//
//	%YAML 1.1
//	%TAG !u! tag:unity3d.com,2011:
//	--- !u!1 &1
//	GameObject:
//	  m_ObjectHideFlags: 0
//	  m_Component:
//	  - component: {fileID: 2}
//	  m_Name: Player
//	  m_IsActive: 1
//
// Mapping entries render as "key: value" with two spaces of indent per
// level. Sequences of scalars render inline ("[1, 2, 3]"); other
// sequences render as block items prefixed with "- " at the parent
// key's indent. Booleans render as 0 and 1, floats as the shortest
// decimal that round-trips, byte blobs as lowercase hex. Strings are
// quoted only when they contain characters that are special in the
// notation. External re-import tooling depends on every one of these
// choices.
//
// The [Context] owns the anchor map. [Context.GetOrAssignAnchor] hands
// out anchors on first touch in increasing order starting at
// [FirstAnchor]; it is safe for concurrent use, but anchors are only
// deterministic when assignment happens in a fixed order, which is why
// parallel exporters assign every anchor in a sequential pre-pass.
package export
