// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"fmt"
	"slices"
	"sync"

	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/cursor"
	"github.com/loveezu/UtinyRipper/lib/export"
)

// Factory constructs an empty variant for identity.
type Factory func(identity asset.Identity) Object

// Registry maps class ids to variant factories. It is safe for
// concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[asset.ClassID]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[asset.ClassID]Factory)}
}

// Register adds the factory for classID. Registering a class id twice
// panics.
func (r *Registry) Register(classID asset.ClassID, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[classID]; exists {
		panic(fmt.Sprintf("object: %s registered twice", classID))
	}
	r.factories[classID] = factory
}

// Supports reports whether classID has a registered factory.
func (r *Registry) Supports(classID asset.ClassID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[classID]
	return ok
}

// ClassIDs returns the registered class ids in ascending order.
func (r *Registry) ClassIDs() []asset.ClassID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]asset.ClassID, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// New returns an empty variant for identity without decoding anything.
func (r *Registry) New(identity asset.Identity) (Object, error) {
	r.mu.RLock()
	factory, ok := r.factories[identity.ClassID]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", identity, ErrUnsupportedVariant)
	}
	return factory(identity), nil
}

// Decode constructs the variant for raw's class id and decodes it from
// exactly raw.DeclaredLength bytes. The byte count check always runs: a
// decode that stops short fails with cursor.ErrShortRead, and a byte
// range longer than the declared length fails with
// cursor.ErrTrailingData. Failures other than an unsupported class id
// are returned as *DecodeError; a variant that recognizes its data as a
// layout it cannot read (a MonoBehaviour of an unknown script) reports a
// *DecodeError wrapping ErrUnsupportedVariant.
func (r *Registry) Decode(raw RawObjectBytes, file File) (Object, error) {
	obj, err := r.New(raw.Identity)
	if err != nil {
		return nil, err
	}

	declared := int(raw.DeclaredLength)
	if len(raw.Data) > declared {
		return nil, &DecodeError{
			Identity: raw.Identity,
			Err: fmt.Errorf("%d bytes supplied for declared length %d: %w",
				len(raw.Data), declared, cursor.ErrTrailingData),
		}
	}

	reader := NewReader(raw.Data, file)
	obj.Decode(reader)
	if err := reader.CheckConsumed(declared); err != nil {
		return nil, &DecodeError{Identity: raw.Identity, Err: err}
	}
	return obj, nil
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(asset.ClassGameObject, func(id asset.Identity) Object { return NewGameObject(id) })
	r.Register(asset.ClassTransform, func(id asset.Identity) Object { return NewTransform(id) })
	r.Register(asset.ClassTextAsset, func(id asset.Identity) Object { return NewTextAsset(id) })
	r.Register(asset.ClassMonoBehaviour, func(id asset.Identity) Object { return NewGUISkin(id) })
	r.Register(asset.ClassHalo, func(id asset.Identity) Object { return NewHalo(id) })
	r.Register(asset.ClassClusterInputManager, func(id asset.Identity) Object { return NewClusterInputManager(id) })
	r.Register(asset.ClassAvatarMask, func(id asset.Identity) Object { return NewAvatarMask(id) })
	return r
}

// Default returns the registry holding every built-in variant.
func Default() *Registry { return defaultRegistry }

// Register adds a factory to the default registry.
func Register(classID asset.ClassID, factory Factory) {
	defaultRegistry.Register(classID, factory)
}

// Decode decodes raw with the default registry.
func Decode(raw RawObjectBytes, file File) (Object, error) {
	return defaultRegistry.Decode(raw, file)
}

// BuildDocument exports obj into a document without adding it to the
// context. The object's anchor is assigned on first touch.
func BuildDocument(obj Object, ctx *export.Context) (*export.Document, error) {
	anchor := ctx.GetOrAssignAnchor(obj.Identity().Key())
	root, err := obj.Export(ctx)
	if err != nil {
		return nil, &ExportError{Identity: obj.Identity(), Err: err}
	}
	return &export.Document{
		Tag:       int32(obj.ClassID()),
		Anchor:    anchor,
		ClassName: obj.ClassID().String(),
		Root:      root,
	}, nil
}

// ExportDocument exports obj and appends the document to the context.
func ExportDocument(obj Object, ctx *export.Context) (*export.Document, error) {
	document, err := BuildDocument(obj, ctx)
	if err != nil {
		return nil, err
	}
	ctx.AddDocument(document)
	return document, nil
}
