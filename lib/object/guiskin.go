// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"fmt"

	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/export"
	"github.com/loveezu/UtinyRipper/lib/transfer"
	"github.com/loveezu/UtinyRipper/lib/version"
)

// GUISkinScriptClass is the script class whose MonoBehaviours decode
// as a GUISkin.
const GUISkinScriptClass = "UnityEngine.GUISkin"

// GUISkin is a MonoBehaviour whose script is the built-in GUISkin
// class. It is the only MonoBehaviour layout known without script
// metadata; MonoBehaviours of any other script fail to decode with
// ErrUnsupportedVariant.
type GUISkin struct {
	Behaviour
	Script asset.TypedRef
	Name   string

	// Editor-only, from 2019.1.
	EditorHideFlags       uint32
	EditorClassIdentifier string

	Font                           asset.TypedRef
	Box                            GUIStyle
	Button                         GUIStyle
	Toggle                         GUIStyle
	Label                          GUIStyle
	TextField                      GUIStyle
	TextArea                       GUIStyle
	Window                         GUIStyle
	HorizontalSlider               GUIStyle
	HorizontalSliderThumb          GUIStyle
	VerticalSlider                 GUIStyle
	VerticalSliderThumb            GUIStyle
	HorizontalScrollbar            GUIStyle
	HorizontalScrollbarThumb       GUIStyle
	HorizontalScrollbarLeftButton  GUIStyle
	HorizontalScrollbarRightButton GUIStyle
	VerticalScrollbar              GUIStyle
	VerticalScrollbarThumb         GUIStyle
	VerticalScrollbarUpButton      GUIStyle
	VerticalScrollbarDownButton    GUIStyle
	ScrollView                     GUIStyle
	CustomStyles                   []GUIStyle
	Settings                       GUISettings
}

func NewGUISkin(identity asset.Identity) *GUISkin {
	return &GUISkin{Behaviour: Behaviour{Component: Component{Base: NewBase(identity, asset.ClassMonoBehaviour)}}}
}

// guiSkinStyleKeys are the export keys of the built-in styles, in
// serialized order. They pair with GUISkin.styles.
var guiSkinStyleKeys = [...]string{
	"m_box",
	"m_button",
	"m_toggle",
	"m_label",
	"m_textField",
	"m_textArea",
	"m_window",
	"m_horizontalSlider",
	"m_horizontalSliderThumb",
	"m_verticalSlider",
	"m_verticalSliderThumb",
	"m_horizontalScrollbar",
	"m_horizontalScrollbarThumb",
	"m_horizontalScrollbarLeftButton",
	"m_horizontalScrollbarRightButton",
	"m_verticalScrollbar",
	"m_verticalScrollbarThumb",
	"m_verticalScrollbarUpButton",
	"m_verticalScrollbarDownButton",
	"m_ScrollView",
}

// styles returns the built-in styles in serialized order.
func (s *GUISkin) styles() [len(guiSkinStyleKeys)]*GUIStyle {
	return [...]*GUIStyle{
		&s.Box,
		&s.Button,
		&s.Toggle,
		&s.Label,
		&s.TextField,
		&s.TextArea,
		&s.Window,
		&s.HorizontalSlider,
		&s.HorizontalSliderThumb,
		&s.VerticalSlider,
		&s.VerticalSliderThumb,
		&s.HorizontalScrollbar,
		&s.HorizontalScrollbarThumb,
		&s.HorizontalScrollbarLeftButton,
		&s.HorizontalScrollbarRightButton,
		&s.VerticalScrollbar,
		&s.VerticalScrollbarThumb,
		&s.VerticalScrollbarUpButton,
		&s.VerticalScrollbarDownButton,
		&s.ScrollView,
	}
}

// hasEditorFields reports whether the MonoBehaviour header carries the
// editor hide flags and class identifier.
func hasEditorFields(v version.Version, flags transfer.Flags) bool {
	return !flags.IsRelease() && v.GreaterEqual(2019, 1)
}

// minGUIStyleSize is a lower bound on an encoded style: an empty name,
// eight states without scaled backgrounds, four offsets, the font and
// the shortest scalar tail of either branch.
func minGUIStyleSize(v version.Version) int {
	state := PPtrSize(v) + 16
	if hasScaledBackgrounds(v) {
		state += 4
	}
	return 4 + 8*state + 64 + PPtrSize(v) + 36
}

// isGUISkinScript accepts the built-in class with or without its
// namespace.
func isGUISkinScript(className string) bool {
	return className == GUISkinScriptClass || className == "GUISkin"
}

func (s *GUISkin) Decode(r *Reader) {
	s.Behaviour.Decode(r)
	editor := hasEditorFields(r.Version(), r.Flags())
	if editor {
		s.EditorHideFlags = r.Uint32()
	}
	s.Script = r.PPtr()
	s.Name = r.ReadAlignedString()
	if editor {
		s.EditorClassIdentifier = r.ReadAlignedString()
	}
	if r.Err() != nil {
		return
	}
	if className, ok := r.File().ScriptClass(s.Script); !ok || !isGUISkinScript(className) {
		r.Fail(fmt.Errorf("MonoBehaviour script %s (%q): %w", s.Script, className, ErrUnsupportedVariant))
		return
	}

	s.Font = r.PPtr()
	for _, style := range s.styles() {
		*style = ReadGUIStyle(r)
	}
	s.CustomStyles = ReadArray(r, minGUIStyleSize(r.Version()), ReadGUIStyle)
	s.Settings = ReadGUISettings(r)
}

func (s *GUISkin) Export(ctx *export.Context) (*export.Mapping, error) {
	editor := hasEditorFields(ctx.Version(), ctx.Flags())
	node := s.ExportHeader(ctx)
	if editor {
		node.AddUint("m_EditorHideFlags", uint64(s.EditorHideFlags))
	}
	node.Add("m_Script", ctx.Reference(s.Script))
	node.AddString("m_Name", s.Name)
	if editor {
		node.AddString("m_EditorClassIdentifier", s.EditorClassIdentifier)
	}

	node.Add("m_Font", ctx.Reference(s.Font))
	for i, style := range s.styles() {
		node.Add(guiSkinStyleKeys[i], style.Export(ctx))
	}
	custom := export.NewSequence()
	for i := range s.CustomStyles {
		custom.Append(s.CustomStyles[i].Export(ctx))
	}
	node.Add("m_CustomStyles", custom)
	node.Add("m_Settings", s.Settings.Export())
	return node, nil
}

// References lists m_GameObject, m_Script, m_Font, then every style's
// references in field order.
func (s *GUISkin) References() []asset.TypedRef {
	refs := []asset.TypedRef{s.GameObject, s.Script, s.Font}
	for _, style := range s.styles() {
		refs = append(refs, style.References()...)
	}
	for i := range s.CustomStyles {
		refs = append(refs, s.CustomStyles[i].References()...)
	}
	return refs
}

// ExportName is the skin's own name when it has one.
func (s *GUISkin) ExportName() string {
	if s.Name == "" {
		return s.Base.ExportName()
	}
	return "Assets/GUISkin/" + s.Name
}
