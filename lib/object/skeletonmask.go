// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"fmt"

	"github.com/loveezu/UtinyRipper/lib/export"
)

// SkeletonMaskElement weights one bone path of an animator layer mask.
type SkeletonMaskElement struct {
	Path   string
	Weight float32
}

// SkeletonMask is the per-bone mask of an animator controller layer.
// It decodes but has no text form.
type SkeletonMask struct {
	Elements []SkeletonMaskElement
}

const skeletonMaskElementSize = 8

func ReadSkeletonMask(r *Reader) SkeletonMask {
	return SkeletonMask{Elements: ReadArray(r, skeletonMaskElementSize, func(r *Reader) SkeletonMaskElement {
		return SkeletonMaskElement{Path: r.ReadAlignedString(), Weight: r.Float32()}
	})}
}

// Export always fails with ErrExportUnsupported.
func (SkeletonMask) Export(*export.Context) (*export.Mapping, error) {
	return nil, fmt.Errorf("skeleton mask: %w", ErrExportUnsupported)
}
