// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"fmt"
	"path"

	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/export"
)

// AvatarMask selects the humanoid body parts and transform paths an
// animation layer drives. Its transform elements are a skeleton mask,
// which has no text form, so the mask decodes but does not export.
type AvatarMask struct {
	Base
	Name string

	// Mask holds one enabled flag per humanoid body part.
	Mask     []uint32
	Elements SkeletonMask
}

func NewAvatarMask(identity asset.Identity) *AvatarMask {
	return &AvatarMask{Base: NewBase(identity, asset.ClassAvatarMask)}
}

func (m *AvatarMask) Decode(r *Reader) {
	m.Base.Decode(r)
	m.Name = r.ReadAlignedString()
	m.Mask = ReadArray(r, 4, func(r *Reader) uint32 { return r.Uint32() })
	m.Elements = ReadSkeletonMask(r)
}

// Export fails with ErrExportUnsupported from the skeleton mask.
func (m *AvatarMask) Export(ctx *export.Context) (*export.Mapping, error) {
	_, err := m.Elements.Export(ctx)
	return nil, fmt.Errorf("m_Elements: %w", err)
}

func (m *AvatarMask) ExportName() string {
	if m.Name == "" {
		return m.Base.ExportName()
	}
	return path.Join("Assets", "AvatarMask", m.Name)
}

func (m *AvatarMask) ExportExtension() string { return "mask" }
