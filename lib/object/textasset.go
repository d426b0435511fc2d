// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"fmt"
	"io"
	"path"

	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/export"
	"github.com/loveezu/UtinyRipper/lib/version"
)

// TextAsset is an imported text or binary file.
type TextAsset struct {
	Base
	Name   string
	Script []byte

	// Before 2017.1.
	PathName string
}

func NewTextAsset(identity asset.Identity) *TextAsset {
	return &TextAsset{Base: NewBase(identity, asset.ClassTextAsset)}
}

func hasPathName(v version.Version) bool { return v.Less(2017, 1) }

func (t *TextAsset) Decode(r *Reader) {
	t.Base.Decode(r)
	t.Name = r.ReadAlignedString()
	t.Script = r.AlignedByteArray()
	if hasPathName(r.Version()) {
		t.PathName = r.ReadAlignedString()
	}
}

func (t *TextAsset) Export(ctx *export.Context) (*export.Mapping, error) {
	node := t.ExportHeader(ctx)
	node.AddString("m_Name", t.Name)
	node.AddString("m_Script", string(t.Script))
	if hasPathName(ctx.Version()) {
		node.AddString("m_PathName", t.PathName)
	}
	return node, nil
}

// ExportName is the asset's own name when it has one.
func (t *TextAsset) ExportName() string {
	if t.Name == "" {
		return t.Base.ExportName()
	}
	return path.Join("Assets", t.ID.ClassID.String(), t.Name)
}

func (t *TextAsset) ExportExtension() string { return "bytes" }

// ExportBinary writes the script contents verbatim.
func (t *TextAsset) ExportBinary(w io.Writer) error {
	if _, err := w.Write(t.Script); err != nil {
		return fmt.Errorf("writing %s: %w", t.ID, err)
	}
	return nil
}
