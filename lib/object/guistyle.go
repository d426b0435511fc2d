// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/export"
	"github.com/loveezu/UtinyRipper/lib/version"
)

// GUIStyleState is the look of a GUI style in one interaction state.
type GUIStyleState struct {
	Background asset.TypedRef

	// From 5.4.
	ScaledBackgrounds []asset.TypedRef

	TextColor ColorRGBAf
}

func hasScaledBackgrounds(v version.Version) bool { return v.GreaterEqual(5, 4) }

func ReadGUIStyleState(r *Reader) GUIStyleState {
	var state GUIStyleState
	state.Background = r.PPtr()
	if hasScaledBackgrounds(r.Version()) {
		state.ScaledBackgrounds = ReadPPtrArray(r)
	}
	state.TextColor = ReadColorRGBAf(r)
	return state
}

func (s *GUIStyleState) Export(ctx *export.Context) *export.Mapping {
	node := export.NewMapping().Add("m_Background", ctx.Reference(s.Background))
	if hasScaledBackgrounds(ctx.Version()) {
		node.Add("m_ScaledBackgrounds", exportReferences(ctx, s.ScaledBackgrounds))
	}
	return node.Add("m_TextColor", s.TextColor.Export())
}

func (s *GUIStyleState) References() []asset.TypedRef {
	refs := make([]asset.TypedRef, 0, 1+len(s.ScaledBackgrounds))
	refs = append(refs, s.Background)
	return append(refs, s.ScaledBackgrounds...)
}

// GUIStyle describes how one kind of GUI element is drawn.
type GUIStyle struct {
	Name string

	Normal    GUIStyleState
	Hover     GUIStyleState
	Active    GUIStyleState
	Focused   GUIStyleState
	OnNormal  GUIStyleState
	OnHover   GUIStyleState
	OnActive  GUIStyleState
	OnFocused GUIStyleState

	Border   RectOffset
	Margin   RectOffset
	Padding  RectOffset
	Overflow RectOffset
	Font     asset.TypedRef

	FontSize      int32
	FontStyle     int32
	Alignment     int32
	WordWrap      bool
	RichText      bool
	TextClipping  int32
	ImagePosition int32
	ContentOffset Vector2f
	FixedWidth    float32
	FixedHeight   float32
	StretchWidth  bool
	StretchHeight bool

	// Only present before 4.0.
	ClipOffset Vector2f
}

// isBuiltInStyle reports whether v uses the layout introduced in 4.0,
// which also swaps the order of Margin and Padding.
func isBuiltInStyle(v version.Version) bool { return v.GreaterEqual(4) }

func hasLegacyFontSize(v version.Version) bool { return v.GreaterEqual(3, 0) }

func ReadGUIStyle(r *Reader) GUIStyle {
	var style GUIStyle
	style.Name = r.ReadAlignedString()
	for _, state := range style.states() {
		*state = ReadGUIStyleState(r)
	}
	style.Border = ReadRectOffset(r)
	if isBuiltInStyle(r.Version()) {
		style.Margin = ReadRectOffset(r)
		style.Padding = ReadRectOffset(r)
	} else {
		style.Padding = ReadRectOffset(r)
		style.Margin = ReadRectOffset(r)
	}
	style.Overflow = ReadRectOffset(r)
	style.Font = r.PPtr()

	if isBuiltInStyle(r.Version()) {
		style.FontSize = r.Int32()
		style.FontStyle = r.Int32()
		style.Alignment = r.Int32()
		style.WordWrap = r.Bool()
		style.RichText = r.Bool()
		r.Align(4)

		style.TextClipping = r.Int32()
		style.ImagePosition = r.Int32()
		style.ContentOffset = ReadVector2f(r)
		style.FixedWidth = r.Float32()
		style.FixedHeight = r.Float32()
		style.StretchWidth = r.Bool()
		style.StretchHeight = r.Bool()
		r.Align(4)
		return style
	}

	style.ImagePosition = r.Int32()
	style.Alignment = r.Int32()
	style.WordWrap = r.Bool()
	r.Align(4)

	style.TextClipping = r.Int32()
	style.ContentOffset = ReadVector2f(r)
	style.ClipOffset = ReadVector2f(r)
	style.FixedWidth = r.Float32()
	style.FixedHeight = r.Float32()
	if hasLegacyFontSize(r.Version()) {
		style.FontSize = r.Int32()
		style.FontStyle = r.Int32()
	}
	style.StretchWidth = r.Bool()
	r.Align(4)
	style.StretchHeight = r.Bool()
	r.Align(4)
	return style
}

func (s *GUIStyle) states() []*GUIStyleState {
	return []*GUIStyleState{
		&s.Normal, &s.Hover, &s.Active, &s.Focused,
		&s.OnNormal, &s.OnHover, &s.OnActive, &s.OnFocused,
	}
}

var guiStyleStateKeys = []string{
	"m_Normal", "m_Hover", "m_Active", "m_Focused",
	"m_OnNormal", "m_OnHover", "m_OnActive", "m_OnFocused",
}

func (s *GUIStyle) Export(ctx *export.Context) *export.Mapping {
	node := export.NewMapping().AddString("m_Name", s.Name)
	for i, state := range s.states() {
		node.Add(guiStyleStateKeys[i], state.Export(ctx))
	}
	node.Add("m_Border", s.Border.Export())
	node.Add("m_Margin", s.Margin.Export())
	node.Add("m_Padding", s.Padding.Export())
	node.Add("m_Overflow", s.Overflow.Export())
	node.Add("m_Font", ctx.Reference(s.Font))
	node.AddInt("m_FontSize", int64(s.FontSize))
	node.AddInt("m_FontStyle", int64(s.FontStyle))
	node.AddInt("m_Alignment", int64(s.Alignment))
	node.AddBool("m_WordWrap", s.WordWrap)
	node.AddBool("m_RichText", s.RichText)
	node.AddInt("m_TextClipping", int64(s.TextClipping))
	node.AddInt("m_ImagePosition", int64(s.ImagePosition))
	node.Add("m_ContentOffset", s.ContentOffset.Export())
	node.AddFloat("m_FixedWidth", s.FixedWidth)
	node.AddFloat("m_FixedHeight", s.FixedHeight)
	node.AddBool("m_StretchWidth", s.StretchWidth)
	node.AddBool("m_StretchHeight", s.StretchHeight)
	return node
}

// References lists the state backgrounds in state order, then the font.
func (s *GUIStyle) References() []asset.TypedRef {
	var refs []asset.TypedRef
	for _, state := range s.states() {
		refs = append(refs, state.References()...)
	}
	return append(refs, s.Font)
}

// GUISettings holds skin-wide text editing settings.
type GUISettings struct {
	DoubleClickSelectsWord bool
	TripleClickSelectsLine bool
	CursorColor            ColorRGBAf
	CursorFlashSpeed       float32
	SelectionColor         ColorRGBAf
}

func ReadGUISettings(r *Reader) GUISettings {
	var settings GUISettings
	settings.DoubleClickSelectsWord = r.Bool()
	settings.TripleClickSelectsLine = r.Bool()
	r.Align(4)
	settings.CursorColor = ReadColorRGBAf(r)
	settings.CursorFlashSpeed = r.Float32()
	settings.SelectionColor = ReadColorRGBAf(r)
	return settings
}

func (s GUISettings) Export() *export.Mapping {
	return export.NewMapping().
		AddBool("m_DoubleClickSelectsWord", s.DoubleClickSelectsWord).
		AddBool("m_TripleClickSelectsLine", s.TripleClickSelectsLine).
		Add("m_CursorColor", s.CursorColor.Export()).
		AddFloat("m_CursorFlashSpeed", s.CursorFlashSpeed).
		Add("m_SelectionColor", s.SelectionColor.Export())
}

func exportReferences(ctx *export.Context, refs []asset.TypedRef) *export.Sequence {
	sequence := export.NewSequence()
	for _, ref := range refs {
		sequence.Append(ctx.Reference(ref))
	}
	return sequence
}
