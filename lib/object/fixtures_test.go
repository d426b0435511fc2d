// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"slices"
	"testing"

	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/cursor"
	"github.com/loveezu/UtinyRipper/lib/transfer"
	"github.com/loveezu/UtinyRipper/lib/version"
)

const (
	testContainer   asset.ContainerRef = "level0"
	sharedContainer asset.ContainerRef = "sharedassets0"
)

func testSession(raw string, flags transfer.Flags) transfer.Session {
	return transfer.Session{
		Version:  version.MustParse(raw),
		Platform: transfer.StandaloneWindows64,
		Flags:    flags,
	}
}

func testFile(session transfer.Session) File {
	return File{
		Container: testContainer,
		Externals: []asset.ContainerRef{sharedContainer},
		Session:   session,
		Scripts:   builtinScripts,
	}
}

// builtinScripts knows only the GUISkin script, which the samples keep
// in the shared container.
func builtinScripts(script asset.TypedRef) (string, bool) {
	if script == (asset.TypedRef{Container: sharedContainer, PathID: 9}) {
		return GUISkinScriptClass, true
	}
	return "", false
}

func localRef(pathID int64) asset.TypedRef {
	return asset.TypedRef{Container: testContainer, PathID: pathID}
}

func identity(classID asset.ClassID, pathID int64) asset.Identity {
	return asset.Identity{Container: testContainer, PathID: pathID, ClassID: classID}
}

// encoder writes objects in the layout the decoders expect. It mirrors
// the decoders field by field so tests can build buffers from values.
type encoder struct {
	w       *cursor.Writer
	session transfer.Session
}

func newEncoder(session transfer.Session) *encoder {
	return &encoder{w: cursor.NewWriter(session), session: session}
}

func (e *encoder) version() version.Version { return e.session.Version }

func (e *encoder) bytes() []byte { return e.w.Bytes() }

func (e *encoder) base(b Base) {
	if ReadsHideFlags(e.session.Flags) {
		e.w.Uint32(b.ObjectHideFlags)
	}
	if ReadsInstanceID(e.session.Flags) {
		e.w.Int32(b.InstanceID)
		e.w.Int64(b.LocalIdentifierInFile)
	}
}

func (e *encoder) component(c Component) {
	e.base(c.Base)
	e.pptr(c.GameObject)
}

func (e *encoder) behaviour(b Behaviour) {
	e.component(b.Component)
	e.w.Bool(b.Enabled)
	e.w.Align(4)
}

func (e *encoder) pptr(ref asset.TypedRef) {
	var fileIndex int32
	switch ref.Container {
	case "", testContainer:
		fileIndex = 0
	case sharedContainer:
		fileIndex = 1
	default:
		fileIndex = 9
	}
	e.w.Int32(fileIndex)
	if widePathID(e.version()) {
		e.w.Int64(ref.PathID)
	} else {
		e.w.Int32(int32(ref.PathID))
	}
}

func (e *encoder) pptrs(refs []asset.TypedRef) {
	e.w.Count(len(refs))
	for _, ref := range refs {
		e.pptr(ref)
	}
}

func (e *encoder) vector2(v Vector2f) { e.w.Float32(v.X); e.w.Float32(v.Y) }

func (e *encoder) vector3(v Vector3f) { e.w.Float32(v.X); e.w.Float32(v.Y); e.w.Float32(v.Z) }

func (e *encoder) quaternion(q Quaternionf) {
	e.w.Float32(q.X)
	e.w.Float32(q.Y)
	e.w.Float32(q.Z)
	e.w.Float32(q.W)
}

func (e *encoder) color(c ColorRGBAf) {
	e.w.Float32(c.R)
	e.w.Float32(c.G)
	e.w.Float32(c.B)
	e.w.Float32(c.A)
}

func (e *encoder) rectOffset(o RectOffset) {
	e.w.Int32(o.Left)
	e.w.Int32(o.Right)
	e.w.Int32(o.Top)
	e.w.Int32(o.Bottom)
}

func (e *encoder) guiStyleState(s GUIStyleState) {
	e.pptr(s.Background)
	if hasScaledBackgrounds(e.version()) {
		e.pptrs(s.ScaledBackgrounds)
	}
	e.color(s.TextColor)
}

func (e *encoder) guiStyle(s GUIStyle) {
	e.w.WriteAlignedString(s.Name)
	for _, state := range s.states() {
		e.guiStyleState(*state)
	}
	e.rectOffset(s.Border)
	if isBuiltInStyle(e.version()) {
		e.rectOffset(s.Margin)
		e.rectOffset(s.Padding)
	} else {
		e.rectOffset(s.Padding)
		e.rectOffset(s.Margin)
	}
	e.rectOffset(s.Overflow)
	e.pptr(s.Font)

	if isBuiltInStyle(e.version()) {
		e.w.Int32(s.FontSize)
		e.w.Int32(s.FontStyle)
		e.w.Int32(s.Alignment)
		e.w.Bool(s.WordWrap)
		e.w.Bool(s.RichText)
		e.w.Align(4)
		e.w.Int32(s.TextClipping)
		e.w.Int32(s.ImagePosition)
		e.vector2(s.ContentOffset)
		e.w.Float32(s.FixedWidth)
		e.w.Float32(s.FixedHeight)
		e.w.Bool(s.StretchWidth)
		e.w.Bool(s.StretchHeight)
		e.w.Align(4)
		return
	}

	e.w.Int32(s.ImagePosition)
	e.w.Int32(s.Alignment)
	e.w.Bool(s.WordWrap)
	e.w.Align(4)
	e.w.Int32(s.TextClipping)
	e.vector2(s.ContentOffset)
	e.vector2(s.ClipOffset)
	e.w.Float32(s.FixedWidth)
	e.w.Float32(s.FixedHeight)
	if hasLegacyFontSize(e.version()) {
		e.w.Int32(s.FontSize)
		e.w.Int32(s.FontStyle)
	}
	e.w.Bool(s.StretchWidth)
	e.w.Align(4)
	e.w.Bool(s.StretchHeight)
	e.w.Align(4)
}

func (e *encoder) guiSettings(s GUISettings) {
	e.w.Bool(s.DoubleClickSelectsWord)
	e.w.Bool(s.TripleClickSelectsLine)
	e.w.Align(4)
	e.color(s.CursorColor)
	e.w.Float32(s.CursorFlashSpeed)
	e.color(s.SelectionColor)
}

func (e *encoder) gameObject(g *GameObject) {
	e.base(g.Base)
	e.w.Count(len(g.Components))
	for _, pair := range g.Components {
		if hasComponentClassIDs(e.version()) {
			e.w.Int32(int32(pair.ClassID))
		}
		e.pptr(pair.Component)
	}
	e.w.Uint32(g.Layer)
	e.w.WriteAlignedString(g.Name)
	e.w.Uint16(g.Tag)
	e.w.Bool(g.IsActive)
	e.w.Align(4)
}

func (e *encoder) transform(t *Transform) {
	e.component(t.Component)
	e.quaternion(t.LocalRotation)
	e.vector3(t.LocalPosition)
	e.vector3(t.LocalScale)
	e.pptrs(t.Children)
	e.pptr(t.Father)
}

func (e *encoder) textAsset(t *TextAsset) {
	e.base(t.Base)
	e.w.WriteAlignedString(t.Name)
	e.w.ByteArray(t.Script)
	e.w.Align(4)
	if hasPathName(e.version()) {
		e.w.WriteAlignedString(t.PathName)
	}
}

func (e *encoder) halo(h *Halo) {
	e.behaviour(h.Behaviour)
	e.w.Uint32(h.Color.RGBA)
	e.w.Float32(h.Size)
}

func (e *encoder) guiSkin(s *GUISkin) {
	e.behaviour(s.Behaviour)
	editor := hasEditorFields(e.version(), e.session.Flags)
	if editor {
		e.w.Uint32(s.EditorHideFlags)
	}
	e.pptr(s.Script)
	e.w.WriteAlignedString(s.Name)
	if editor {
		e.w.WriteAlignedString(s.EditorClassIdentifier)
	}
	e.pptr(s.Font)
	for _, style := range s.styles() {
		e.guiStyle(*style)
	}
	e.w.Count(len(s.CustomStyles))
	for _, style := range s.CustomStyles {
		e.guiStyle(style)
	}
	e.guiSettings(s.Settings)
}

func (e *encoder) clusterInputManager(m *ClusterInputManager) {
	e.base(m.Base)
	e.w.Count(len(m.Inputs))
	for _, input := range m.Inputs {
		e.w.WriteAlignedString(input.Name)
		e.w.WriteAlignedString(input.DeviceName)
		e.w.Int32(input.ServerIndex)
		e.w.Int32(input.Index)
		e.w.Int32(input.Type)
	}
}

func (e *encoder) avatarMask(m *AvatarMask) {
	e.base(m.Base)
	e.w.WriteAlignedString(m.Name)
	e.w.Count(len(m.Mask))
	for _, part := range m.Mask {
		e.w.Uint32(part)
	}
	e.w.Count(len(m.Elements.Elements))
	for _, element := range m.Elements.Elements {
		e.w.WriteAlignedString(element.Path)
		e.w.Float32(element.Weight)
	}
}

// encode dispatches to the variant's encoder.
func (e *encoder) encode(t *testing.T, obj Object) []byte {
	t.Helper()
	switch v := obj.(type) {
	case *GameObject:
		e.gameObject(v)
	case *Transform:
		e.transform(v)
	case *TextAsset:
		e.textAsset(v)
	case *Halo:
		e.halo(v)
	case *GUISkin:
		e.guiSkin(v)
	case *ClusterInputManager:
		e.clusterInputManager(v)
	case *AvatarMask:
		e.avatarMask(v)
	default:
		t.Fatalf("no test encoder for %T", obj)
	}
	return e.bytes()
}

func rawBytes(obj Object, data []byte) RawObjectBytes {
	return RawObjectBytes{Identity: obj.Identity(), Data: data, DeclaredLength: uint32(len(data))}
}

// mapLookup resolves references against a fixed set of objects.
type mapLookup map[asset.Key]Object

func newMapLookup(objects ...Object) mapLookup {
	lookup := make(mapLookup)
	for _, obj := range objects {
		lookup[obj.Identity().Key()] = obj
	}
	return lookup
}

func (l mapLookup) Resolve(container asset.ContainerRef, pathID int64) (asset.Asset, bool) {
	obj, ok := l[asset.Key{Container: container, PathID: pathID}]
	if !ok {
		return nil, false
	}
	return obj, true
}

func sampleStyle(name string, seed int32) GUIStyle {
	state := func(offset int32) GUIStyleState {
		return GUIStyleState{
			Background:        localRef(int64(100 + seed + offset)),
			ScaledBackgrounds: []asset.TypedRef{localRef(int64(200 + seed + offset))},
			TextColor:         ColorRGBAf{R: 0.25, G: 0.5, B: 0.75, A: 1},
		}
	}
	return GUIStyle{
		Name:          name,
		Normal:        state(0),
		Hover:         state(1),
		Active:        state(2),
		Focused:       state(3),
		OnNormal:      state(4),
		OnHover:       state(5),
		OnActive:      state(6),
		OnFocused:     state(7),
		Border:        RectOffset{Left: 1, Right: 2, Top: 3, Bottom: 4},
		Margin:        RectOffset{Left: 5, Right: 6, Top: 7, Bottom: 8},
		Padding:       RectOffset{Left: 9, Right: 10, Top: 11, Bottom: 12},
		Overflow:      RectOffset{Left: -1, Right: -2, Top: -3, Bottom: -4},
		Font:          asset.TypedRef{Container: sharedContainer, PathID: int64(50 + seed)},
		FontSize:      14,
		FontStyle:     1,
		Alignment:     4,
		WordWrap:      true,
		RichText:      true,
		TextClipping:  1,
		ImagePosition: 2,
		ContentOffset: Vector2f{X: 1.5, Y: -0.5},
		FixedWidth:    64,
		FixedHeight:   16,
		StretchWidth:  true,
		StretchHeight: false,
		ClipOffset:    Vector2f{X: 3, Y: 4},
	}
}

// forVersion zeroes the style fields that v does not serialize.
func (s GUIStyle) forVersion(v version.Version) GUIStyle {
	out := s
	for i, state := range out.states() {
		copied := *s.states()[i]
		if !hasScaledBackgrounds(v) {
			copied.ScaledBackgrounds = nil
		} else {
			copied.ScaledBackgrounds = slices.Clone(copied.ScaledBackgrounds)
		}
		*state = copied
	}
	if isBuiltInStyle(v) {
		out.ClipOffset = Vector2f{}
	} else {
		out.RichText = false
		if !hasLegacyFontSize(v) {
			out.FontSize = 0
			out.FontStyle = 0
		}
	}
	return out
}
