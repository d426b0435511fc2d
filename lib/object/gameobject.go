// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"strconv"

	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/export"
	"github.com/loveezu/UtinyRipper/lib/version"
)

// ComponentPair is one entry of a GameObject's component list. ClassID
// is only serialized before 5.5 and is zero when decoded from newer data.
type ComponentPair struct {
	ClassID   asset.ClassID
	Component asset.TypedRef
}

// GameObject is a scene node: a named, tagged bag of components.
type GameObject struct {
	Base
	Components []ComponentPair
	Layer      uint32
	Name       string
	Tag        uint16
	IsActive   bool
}

func NewGameObject(identity asset.Identity) *GameObject {
	return &GameObject{Base: NewBase(identity, asset.ClassGameObject)}
}

// hasComponentClassIDs reports whether component entries carry the
// component's class id in front of the reference (before 5.5).
func hasComponentClassIDs(v version.Version) bool { return v.Less(5, 5) }

func (g *GameObject) Decode(r *Reader) {
	g.Base.Decode(r)
	if hasComponentClassIDs(r.Version()) {
		g.Components = ReadArray(r, 4+PPtrSize(r.Version()), func(r *Reader) ComponentPair {
			classID := asset.ClassID(r.Int32())
			return ComponentPair{ClassID: classID, Component: r.PPtr()}
		})
	} else {
		g.Components = ReadArray(r, PPtrSize(r.Version()), func(r *Reader) ComponentPair {
			return ComponentPair{Component: r.PPtr()}
		})
	}
	g.Layer = r.Uint32()
	g.Name = r.ReadAlignedString()
	g.Tag = r.Uint16()
	g.IsActive = r.Bool()
	r.Align(4)
}

func (g *GameObject) Export(ctx *export.Context) (*export.Mapping, error) {
	hideFlags := g.HideFlagsFor(ctx.Flags())
	if !ReadsHideFlags(ctx.Flags()) && g.RootDepth(ctx) > 1 {
		hideFlags = 1
	}
	node := newHeader(hideFlags)

	components := export.NewSequence()
	for _, pair := range g.Components {
		key := "component"
		if hasComponentClassIDs(ctx.Version()) {
			key = strconv.Itoa(int(g.componentClassID(ctx, pair)))
		}
		components.Append(export.NewMapping().Add(key, ctx.Reference(pair.Component)))
	}
	node.Add("m_Component", components)
	node.AddUint("m_Layer", uint64(g.Layer))
	node.AddString("m_Name", g.Name)
	node.AddString("m_TagString", TagName(g.Tag))
	node.AddBool("m_IsActive", g.IsActive)
	return node, nil
}

// componentClassID returns the class id written in front of a component
// reference by pre-5.5 exports. Entries decoded from newer data carry
// no class id, so it is taken from the resolved component. Unresolvable
// components fall back to the Component base class.
func (g *GameObject) componentClassID(ctx *export.Context, pair ComponentPair) asset.ClassID {
	if pair.ClassID != 0 {
		return pair.ClassID
	}
	if target, ok := ctx.Resolve(pair.Component); ok {
		return target.Identity().ClassID
	}
	return asset.ClassComponent
}

func (g *GameObject) References() []asset.TypedRef {
	refs := make([]asset.TypedRef, len(g.Components))
	for i, pair := range g.Components {
		refs[i] = pair.Component
	}
	return refs
}

// Transform returns the GameObject's Transform, if it can be resolved.
func (g *GameObject) Transform(lookup asset.Lookup) (*Transform, bool) {
	for _, pair := range g.Components {
		if pair.ClassID != 0 && pair.ClassID != asset.ClassTransform {
			continue
		}
		target, ok := asset.Resolve(lookup, pair.Component)
		if !ok {
			continue
		}
		if transform, ok := target.(*Transform); ok {
			return transform, true
		}
	}
	return nil, false
}

// RootDepth returns the number of ancestors of the GameObject's
// Transform that can be resolved through the context. Zero means a
// scene root or an unresolvable hierarchy.
func (g *GameObject) RootDepth(ctx *export.Context) int {
	lookup := contextLookup{ctx}
	transform, ok := g.Transform(lookup)
	if !ok {
		return 0
	}
	depth := 0
	visited := map[asset.Key]bool{transform.ID.Key(): true}
	for !transform.Father.IsNull() {
		target, ok := asset.Resolve(lookup, transform.Father)
		if !ok {
			break
		}
		father, ok := target.(*Transform)
		if !ok || visited[father.ID.Key()] {
			break
		}
		visited[father.ID.Key()] = true
		transform = father
		depth++
	}
	return depth
}

// contextLookup adapts an export context's resolver to asset.Lookup.
type contextLookup struct{ ctx *export.Context }

func (l contextLookup) Resolve(container asset.ContainerRef, pathID int64) (asset.Asset, bool) {
	return l.ctx.Resolve(asset.TypedRef{Container: container, PathID: pathID})
}

// builtinTags are the tag names every project defines. Project-specific
// tags live in the tag manager, which is not decoded here.
var builtinTags = map[uint16]string{
	0: "Untagged",
	1: "Respawn",
	2: "Finish",
	3: "EditorOnly",
	5: "MainCamera",
	6: "Player",
	7: "GameController",
}

// TagName returns the name of a built-in tag. Unknown tags render as
// "Untagged".
func TagName(tag uint16) string {
	if name, ok := builtinTags[tag]; ok {
		return name
	}
	return "Untagged"
}
