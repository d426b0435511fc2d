// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"sync"

	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/transfer"
	"github.com/loveezu/UtinyRipper/lib/version"
)

// FirstAnchor is the anchor assigned to the first object touched in an
// export session. Anchor 0 is reserved for the null reference.
const FirstAnchor int64 = 1

// externalReferenceType is the "type" value of a reference into another
// asset file.
const externalReferenceType = 2

// Options configures a Context.
type Options struct {
	// Session is the version, platform and flags export-time
	// conditionals are evaluated against. It may differ from the
	// session the objects were decoded under.
	Session transfer.Session

	// Container is the container being exported. References into it
	// render as local anchors; references elsewhere render as external
	// file references.
	Container asset.ContainerRef

	// Lookup resolves references for exporters that need to inspect a
	// referenced object. May be nil.
	Lookup asset.Lookup

	// ExternalGUIDs maps other containers to the GUID their exported
	// asset file will carry. Containers missing from the map render
	// with the zero GUID.
	ExternalGUIDs map[asset.ContainerRef]asset.GUID
}

// Context is one export session: the anchor map, the export-time
// session parameters, and the accumulated documents. Create one per
// output file and discard it after encoding.
type Context struct {
	options Options

	mu        sync.Mutex
	anchors   map[asset.Key]int64
	keys      map[int64]asset.Key
	next      int64
	documents []*Document
}

// NewContext returns an empty export session.
func NewContext(options Options) *Context {
	return &Context{
		options: options,
		anchors: make(map[asset.Key]int64),
		keys:    make(map[int64]asset.Key),
		next:    FirstAnchor,
	}
}

// Session returns the export-time session parameters.
func (c *Context) Session() transfer.Session { return c.options.Session }

// Version returns the export version.
func (c *Context) Version() version.Version { return c.options.Session.Version }

// Flags returns the export transfer flags.
func (c *Context) Flags() transfer.Flags { return c.options.Session.Flags }

// Platform returns the export platform.
func (c *Context) Platform() transfer.Platform { return c.options.Session.Platform }

// Container returns the container being exported.
func (c *Context) Container() asset.ContainerRef { return c.options.Container }

// Resolve looks up a referenced object through the configured Lookup.
func (c *Context) Resolve(ref asset.TypedRef) (asset.Asset, bool) {
	return asset.Resolve(c.options.Lookup, ref)
}

// GetOrAssignAnchor returns the anchor for key, assigning the next one
// on first use. Repeated calls with the same key return the same anchor.
func (c *Context) GetOrAssignAnchor(key asset.Key) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if anchor, ok := c.anchors[key]; ok {
		return anchor
	}
	anchor := c.next
	c.next++
	c.anchors[key] = anchor
	c.keys[anchor] = key
	return anchor
}

// KeyForAnchor returns the key an anchor was assigned to.
func (c *Context) KeyForAnchor(anchor int64) (asset.Key, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key, ok := c.keys[anchor]
	return key, ok
}

// AnchorCount returns how many anchors have been assigned.
func (c *Context) AnchorCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.anchors)
}

// Reference renders a reference field:
//
//	{fileID: 0}                                  null
//	{fileID: 7}                                  same container
//	{fileID: 12, guid: 0123..., type: 2}         other container
//
// Local references are given anchors on first touch, so a reference
// may claim an anchor before its target document is exported.
func (c *Context) Reference(ref asset.TypedRef) *Mapping {
	node := NewFlowMapping()
	if ref.IsNull() {
		return node.AddInt("fileID", 0)
	}
	if ref.Container == c.options.Container {
		return node.AddInt("fileID", c.GetOrAssignAnchor(ref.Key()))
	}
	guid := c.options.ExternalGUIDs[ref.Container]
	node.AddInt("fileID", ref.PathID)
	node.AddString("guid", guid.String())
	node.AddInt("type", externalReferenceType)
	return node
}

// AddDocument appends a finished document.
func (c *Context) AddDocument(document *Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.documents = append(c.documents, document)
}

// Documents returns the documents added so far, in insertion order.
func (c *Context) Documents() []*Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Document, len(c.documents))
	copy(out, c.documents)
	return out
}
