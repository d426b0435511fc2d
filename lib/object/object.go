// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"fmt"
	"io"
	"path"

	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/export"
	"github.com/loveezu/UtinyRipper/lib/transfer"
)

// Object is one decoded engine object. Objects are created by a
// registry factory, populated once by Decode, and read-only afterwards.
type Object interface {
	asset.Asset

	// ClassID returns the engine class id, which is also the export tag.
	ClassID() asset.ClassID

	// HideFlags returns the decoded editor hide flags.
	HideFlags() uint32

	// Decode reads the object's fields. Failures are recorded on the
	// reader and reported by the registry.
	Decode(r *Reader)

	// Export builds the object's field mapping for the export session.
	Export(ctx *export.Context) (*export.Mapping, error)

	// References returns every reference-typed field in declaration
	// order, then array index order. Null references are included.
	References() []asset.TypedRef

	// ExportName is the object's base file name in an exported project.
	ExportName() string

	// ExportExtension is the file extension of the exported asset.
	ExportExtension() string

	// ExportBinary writes the object's non-text payload. Objects without
	// one return ErrExportUnsupported.
	ExportBinary(w io.Writer) error
}

// RawObjectBytes is one object as handed over by the container reader.
type RawObjectBytes struct {
	Identity       asset.Identity
	Data           []byte
	DeclaredLength uint32
}

// File is the decode source shared by every object of one container:
// the container's own ref, the external containers its references index
// into, and the session it was written under.
type File struct {
	Container asset.ContainerRef
	Externals []asset.ContainerRef
	Session   transfer.Session

	// Scripts names the class behind a MonoBehaviour's m_Script
	// reference. A MonoBehaviour's layout is defined by its script, so
	// with a nil resolver, or for an unknown script, MonoBehaviours do
	// not decode.
	Scripts ScriptResolver
}

// ScriptResolver returns the full class name of the script a reference
// points at, e.g. "UnityEngine.GUISkin".
type ScriptResolver func(script asset.TypedRef) (className string, ok bool)

// ScriptClass resolves script through the file's resolver.
func (f File) ScriptClass(script asset.TypedRef) (string, bool) {
	if f.Scripts == nil || script.IsNull() {
		return "", false
	}
	return f.Scripts(script)
}

// ResolveFileIndex maps a serialized file index to a container. Index 0
// is the file itself and index i is Externals[i-1]. Indices outside the
// table map to a synthetic container that no lookup can resolve, so the
// reference dangles instead of failing the decode.
func (f File) ResolveFileIndex(index int32) asset.ContainerRef {
	switch {
	case index == 0:
		return f.Container
	case index > 0 && int(index) <= len(f.Externals):
		return f.Externals[index-1]
	default:
		return asset.ContainerRef(fmt.Sprintf("%s#missing-%d", f.Container, index))
	}
}

// ReadsHideFlags reports whether the common header carries hide flags
// under flags. Release builds and prefab serialization omit them.
func ReadsHideFlags(flags transfer.Flags) bool {
	return !flags.IsRelease() && !flags.IsForPrefab()
}

// ReadsInstanceID reports whether the common header carries the
// instance-id pair under flags.
func ReadsInstanceID(flags transfer.Flags) bool {
	return flags.HasInstanceIDs()
}

// Base is the common header embedded by every variant.
type Base struct {
	ID              asset.Identity
	ObjectHideFlags uint32

	// Present only when the session carries instance ids.
	InstanceID            int32
	LocalIdentifierInFile int64
}

// NewBase returns a header for identity. It panics when the identity's
// class id is not classID: constructing a variant from another class's
// data is a programming error.
func NewBase(identity asset.Identity, classID asset.ClassID) Base {
	if identity.ClassID != classID {
		panic(fmt.Sprintf("object: constructing %s from %s asset data", classID, identity.ClassID))
	}
	return Base{ID: identity}
}

func (b *Base) Identity() asset.Identity { return b.ID }

func (b *Base) ClassID() asset.ClassID { return b.ID.ClassID }

func (b *Base) HideFlags() uint32 { return b.ObjectHideFlags }

// Decode reads the flag-gated header fields.
func (b *Base) Decode(r *Reader) {
	if ReadsHideFlags(r.Flags()) {
		b.ObjectHideFlags = r.Uint32()
	}
	if ReadsInstanceID(r.Flags()) {
		b.InstanceID = r.Int32()
		b.LocalIdentifierInFile = r.Int64()
	}
}

// Export returns a mapping holding only the header.
func (b *Base) Export(ctx *export.Context) (*export.Mapping, error) {
	return b.ExportHeader(ctx), nil
}

// ExportHeader starts an object's mapping with m_ObjectHideFlags.
func (b *Base) ExportHeader(ctx *export.Context) *export.Mapping {
	return newHeader(b.HideFlagsFor(ctx.Flags()))
}

// HideFlagsFor returns the hide flags to export under flags: the decoded
// value when flags would carry it, zero otherwise.
func (b *Base) HideFlagsFor(flags transfer.Flags) uint32 {
	if ReadsHideFlags(flags) {
		return b.ObjectHideFlags
	}
	return 0
}

func newHeader(hideFlags uint32) *export.Mapping {
	return export.NewMapping().AddUint("m_ObjectHideFlags", uint64(hideFlags))
}

func (b *Base) References() []asset.TypedRef { return nil }

// ExportName defaults to "Assets/<ClassName>".
func (b *Base) ExportName() string {
	return path.Join("Assets", b.ID.ClassID.String())
}

func (b *Base) ExportExtension() string { return "asset" }

func (b *Base) ExportBinary(io.Writer) error {
	return fmt.Errorf("%s has no binary form: %w", b.ID, ErrExportUnsupported)
}

// Component is the header of objects attached to a GameObject.
type Component struct {
	Base
	GameObject asset.TypedRef
}

func (c *Component) Decode(r *Reader) {
	c.Base.Decode(r)
	c.GameObject = r.PPtr()
}

func (c *Component) Export(ctx *export.Context) (*export.Mapping, error) {
	return c.ExportHeader(ctx), nil
}

// ExportHeader writes the common header and m_GameObject.
func (c *Component) ExportHeader(ctx *export.Context) *export.Mapping {
	return c.Base.ExportHeader(ctx).Add("m_GameObject", ctx.Reference(c.GameObject))
}

func (c *Component) References() []asset.TypedRef {
	return []asset.TypedRef{c.GameObject}
}

// Behaviour is a Component that can be enabled and disabled.
type Behaviour struct {
	Component
	Enabled bool
}

func (b *Behaviour) Decode(r *Reader) {
	b.Component.Decode(r)
	b.Enabled = r.Bool()
	r.Align(4)
}

func (b *Behaviour) Export(ctx *export.Context) (*export.Mapping, error) {
	return b.ExportHeader(ctx), nil
}

// ExportHeader writes the component header and m_Enabled.
func (b *Behaviour) ExportHeader(ctx *export.Context) *export.Mapping {
	return b.Component.ExportHeader(ctx).AddBool("m_Enabled", b.Enabled)
}
