// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import "github.com/loveezu/UtinyRipper/lib/export"

type Vector2f struct{ X, Y float32 }

func ReadVector2f(r *Reader) Vector2f {
	return Vector2f{X: r.Float32(), Y: r.Float32()}
}

func (v Vector2f) Export() *export.Mapping {
	return export.NewFlowMapping().AddFloat("x", v.X).AddFloat("y", v.Y)
}

type Vector3f struct{ X, Y, Z float32 }

func ReadVector3f(r *Reader) Vector3f {
	return Vector3f{X: r.Float32(), Y: r.Float32(), Z: r.Float32()}
}

func (v Vector3f) Export() *export.Mapping {
	return export.NewFlowMapping().AddFloat("x", v.X).AddFloat("y", v.Y).AddFloat("z", v.Z)
}

type Quaternionf struct{ X, Y, Z, W float32 }

func ReadQuaternionf(r *Reader) Quaternionf {
	return Quaternionf{X: r.Float32(), Y: r.Float32(), Z: r.Float32(), W: r.Float32()}
}

func (q Quaternionf) Export() *export.Mapping {
	return export.NewFlowMapping().
		AddFloat("x", q.X).AddFloat("y", q.Y).AddFloat("z", q.Z).AddFloat("w", q.W)
}

// ColorRGBAf is a color with float channels.
type ColorRGBAf struct{ R, G, B, A float32 }

func ReadColorRGBAf(r *Reader) ColorRGBAf {
	return ColorRGBAf{R: r.Float32(), G: r.Float32(), B: r.Float32(), A: r.Float32()}
}

func (c ColorRGBAf) Export() *export.Mapping {
	return export.NewFlowMapping().
		AddFloat("r", c.R).AddFloat("g", c.G).AddFloat("b", c.B).AddFloat("a", c.A)
}

// ColorRGBA32 is a color packed into one word, red in the low byte.
type ColorRGBA32 struct{ RGBA uint32 }

func ReadColorRGBA32(r *Reader) ColorRGBA32 {
	return ColorRGBA32{RGBA: r.Uint32()}
}

func (c ColorRGBA32) R() uint8 { return uint8(c.RGBA) }
func (c ColorRGBA32) G() uint8 { return uint8(c.RGBA >> 8) }
func (c ColorRGBA32) B() uint8 { return uint8(c.RGBA >> 16) }
func (c ColorRGBA32) A() uint8 { return uint8(c.RGBA >> 24) }

func (c ColorRGBA32) Export() *export.Mapping {
	return export.NewFlowMapping().AddUint("rgba", uint64(c.RGBA))
}

// RectOffset is a set of edge insets used by GUI styles.
type RectOffset struct {
	Left, Right, Top, Bottom int32
}

func ReadRectOffset(r *Reader) RectOffset {
	return RectOffset{Left: r.Int32(), Right: r.Int32(), Top: r.Int32(), Bottom: r.Int32()}
}

func (o RectOffset) Export() *export.Mapping {
	return export.NewMapping().
		AddInt("m_Left", int64(o.Left)).
		AddInt("m_Right", int64(o.Right)).
		AddInt("m_Top", int64(o.Top)).
		AddInt("m_Bottom", int64(o.Bottom))
}
