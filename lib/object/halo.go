// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/export"
)

// Halo is a glow drawn around a light. Its layout has not changed
// across the supported versions.
type Halo struct {
	Behaviour
	Color ColorRGBA32
	Size  float32
}

func NewHalo(identity asset.Identity) *Halo {
	return &Halo{Behaviour: Behaviour{Component: Component{Base: NewBase(identity, asset.ClassHalo)}}}
}

func (h *Halo) Decode(r *Reader) {
	h.Behaviour.Decode(r)
	h.Color = ReadColorRGBA32(r)
	h.Size = r.Float32()
}

func (h *Halo) Export(ctx *export.Context) (*export.Mapping, error) {
	return h.ExportHeader(ctx).
		Add("m_Color", h.Color.Export()).
		AddFloat("m_Size", h.Size), nil
}
