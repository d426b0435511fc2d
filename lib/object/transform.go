// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/export"
	"github.com/loveezu/UtinyRipper/lib/version"
)

// Transform places a GameObject in the scene hierarchy.
type Transform struct {
	Component
	LocalRotation Quaternionf
	LocalPosition Vector3f
	LocalScale    Vector3f
	Children      []asset.TypedRef
	Father        asset.TypedRef
}

func NewTransform(identity asset.Identity) *Transform {
	return &Transform{Component: Component{Base: NewBase(identity, asset.ClassTransform)}}
}

// hasRootOrder reports whether exports for v carry m_RootOrder (5.4+).
func hasRootOrder(v version.Version) bool { return v.GreaterEqual(5, 4) }

func (t *Transform) Decode(r *Reader) {
	t.Component.Decode(r)
	t.LocalRotation = ReadQuaternionf(r)
	t.LocalPosition = ReadVector3f(r)
	t.LocalScale = ReadVector3f(r)
	t.Children = ReadPPtrArray(r)
	t.Father = r.PPtr()
}

func (t *Transform) Export(ctx *export.Context) (*export.Mapping, error) {
	node := t.ExportHeader(ctx)
	node.Add("m_LocalRotation", t.LocalRotation.Export())
	node.Add("m_LocalPosition", t.LocalPosition.Export())
	node.Add("m_LocalScale", t.LocalScale.Export())
	node.Add("m_Children", exportReferences(ctx, t.Children))
	node.Add("m_Father", ctx.Reference(t.Father))
	if hasRootOrder(ctx.Version()) {
		node.AddInt("m_RootOrder", int64(t.RootOrder(contextLookup{ctx})))
	}
	return node, nil
}

// RootOrder returns the transform's index among its father's children.
// Roots and transforms whose father cannot be resolved report 0.
func (t *Transform) RootOrder(lookup asset.Lookup) int {
	target, ok := asset.Resolve(lookup, t.Father)
	if !ok {
		return 0
	}
	father, ok := target.(*Transform)
	if !ok {
		return 0
	}
	self := t.ID.Key()
	for i, child := range father.Children {
		if child.Key() == self {
			return i
		}
	}
	return 0
}

// References lists m_GameObject, each child, then m_Father.
func (t *Transform) References() []asset.TypedRef {
	refs := make([]asset.TypedRef, 0, len(t.Children)+2)
	refs = append(refs, t.GameObject)
	refs = append(refs, t.Children...)
	return append(refs, t.Father)
}
