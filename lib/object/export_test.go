// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/export"
	"github.com/loveezu/UtinyRipper/lib/transfer"
)

func exportContext(session transfer.Session, lookup asset.Lookup) *export.Context {
	return export.NewContext(export.Options{
		Session:       session,
		Container:     testContainer,
		Lookup:        lookup,
		ExternalGUIDs: map[asset.ContainerRef]asset.GUID{sharedContainer: {0xab, 0xcd}},
	})
}

func render(t *testing.T, ctx *export.Context) string {
	t.Helper()
	var buffer bytes.Buffer
	if err := ctx.Flush(&buffer); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	return buffer.String()
}

func TestMinimalContainerScenario(t *testing.T) {
	session := testSession("5.0.0", transfer.NoFlags)
	halo := &Halo{
		Behaviour: Behaviour{
			Component: Component{Base: NewBase(identity(asset.ClassHalo, 3), asset.ClassHalo), GameObject: localRef(1)},
			Enabled:   true,
		},
		Color: ColorRGBA32{RGBA: 0xff8040c0},
		Size:  2.5,
	}
	data := newEncoder(session).encode(t, halo)

	decoded, err := Decode(rawBytes(halo, data), testFile(session))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	ctx := exportContext(session, nil)
	document, err := ExportDocument(decoded, ctx)
	if err != nil {
		t.Fatalf("ExportDocument: %v", err)
	}

	wantKeys := []string{"m_ObjectHideFlags", "m_GameObject", "m_Enabled", "m_Color", "m_Size"}
	if diff := cmp.Diff(wantKeys, document.Root.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	want := export.StreamHeader +
		"--- !u!122 &1\n" +
		"Halo:\n" +
		"  m_ObjectHideFlags: 0\n" +
		"  m_GameObject: {fileID: 2}\n" +
		"  m_Enabled: 1\n" +
		"  m_Color: {rgba: 4286595264}\n" +
		"  m_Size: 2.5\n"
	if diff := cmp.Diff(want, render(t, ctx)); diff != "" {
		t.Errorf("rendered text mismatch (-want +got):\n%s", diff)
	}
}

func TestGameObjectComponentLayout(t *testing.T) {
	modern := testSession("5.5.0f3", transfer.SerializeGameRelease)
	objects := sampleObjects(modern)
	gameObject := objects[0].(*GameObject)
	lookup := newMapLookup(objects...)

	tests := []struct {
		name    string
		session transfer.Session
		lookup  asset.Lookup
		want    string
	}{
		{"current layout", modern, lookup, "  m_Component:\n  - component: {fileID: 2}\n  - component: {fileID: 3}\n"},
		{"legacy layout from lookup", testSession("5.4.6f3", transfer.SerializeGameRelease), lookup,
			"  m_Component:\n  - 4: {fileID: 2}\n  - 122: {fileID: 3}\n"},
		{"legacy layout without lookup", testSession("5.4.6f3", transfer.SerializeGameRelease), nil,
			"  m_Component:\n  - 2: {fileID: 2}\n  - 2: {fileID: 3}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := exportContext(tt.session, tt.lookup)
			if _, err := ExportDocument(gameObject, ctx); err != nil {
				t.Fatalf("ExportDocument: %v", err)
			}
			text := render(t, ctx)
			if !strings.Contains(text, tt.want) {
				t.Errorf("rendered text lacks\n%s\ngot:\n%s", tt.want, text)
			}
			if !strings.Contains(text, "  m_TagString: Player\n  m_IsActive: 1\n") {
				t.Errorf("rendered text lacks tag and active lines:\n%s", text)
			}
		})
	}
}

func TestGameObjectKeepsDecodedClassIDs(t *testing.T) {
	legacy := testSession("5.4.6f3", transfer.SerializeGameRelease)
	gameObject := sampleObjects(legacy)[0].(*GameObject)
	ctx := exportContext(legacy, nil)
	if _, err := ExportDocument(gameObject, ctx); err != nil {
		t.Fatalf("ExportDocument: %v", err)
	}
	if text := render(t, ctx); !strings.Contains(text, "  - 4: {fileID: 2}\n  - 122: {fileID: 3}\n") {
		t.Errorf("decoded class ids were not used:\n%s", text)
	}
}

// hierarchy builds root <- middle <- leaf transforms, each owned by a
// GameObject, and returns the GameObjects from root to leaf.
func hierarchy() ([]*GameObject, mapLookup) {
	lookup := make(mapLookup)
	var gameObjects []*GameObject
	var father asset.TypedRef
	for depth := range 3 {
		goID := int64(100 + depth)
		transformID := int64(200 + depth)
		gameObject := NewGameObject(identity(asset.ClassGameObject, goID))
		gameObject.ObjectHideFlags = 8
		gameObject.Components = []ComponentPair{{Component: localRef(transformID)}}

		transform := NewTransform(identity(asset.ClassTransform, transformID))
		transform.GameObject = localRef(goID)
		transform.Father = father
		if !father.IsNull() {
			parent := lookup[father.Key()].(*Transform)
			parent.Children = append(parent.Children, localRef(99), localRef(transformID))
		}
		father = localRef(transformID)

		lookup[gameObject.ID.Key()] = gameObject
		lookup[transform.ID.Key()] = transform
		gameObjects = append(gameObjects, gameObject)
	}
	return gameObjects, lookup
}

func TestGameObjectHideFlagsFromDepth(t *testing.T) {
	gameObjects, lookup := hierarchy()
	release := testSession("2017.3.0f3", transfer.SerializeGameRelease)
	editor := testSession("2017.3.0f3", transfer.NoFlags)

	tests := []struct {
		name    string
		session transfer.Session
		index   int
		depth   int
		want    uint64
	}{
		{"root in release", release, 0, 0, 0},
		{"child in release", release, 1, 1, 0},
		{"grandchild in release", release, 2, 2, 1},
		{"grandchild in editor keeps decoded flags", editor, 2, 2, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := exportContext(tt.session, lookup)
			if depth := gameObjects[tt.index].RootDepth(ctx); depth != tt.depth {
				t.Errorf("RootDepth = %d, want %d", depth, tt.depth)
			}
			node, err := gameObjects[tt.index].Export(ctx)
			if err != nil {
				t.Fatalf("Export: %v", err)
			}
			value, _ := node.Get("m_ObjectHideFlags")
			if got := value.(export.Scalar).Uint; got != tt.want {
				t.Errorf("m_ObjectHideFlags = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRootDepthStopsOnCycle(t *testing.T) {
	gameObjects, lookup := hierarchy()
	root := lookup[asset.Key{Container: testContainer, PathID: 200}].(*Transform)
	root.Father = localRef(202)

	ctx := exportContext(testSession("2017.3.0f3", transfer.SerializeGameRelease), lookup)
	if depth := gameObjects[2].RootDepth(ctx); depth != 2 {
		t.Errorf("RootDepth with a cycle = %d, want 2", depth)
	}
}

func TestTransformRootOrder(t *testing.T) {
	_, lookup := hierarchy()
	leaf := lookup[asset.Key{Container: testContainer, PathID: 202}].(*Transform)

	for _, tt := range []struct {
		version string
		want    bool
	}{
		{"5.3.8f2", false},
		{"5.4.0f3", true},
	} {
		ctx := exportContext(testSession(tt.version, transfer.SerializeGameRelease), lookup)
		node, err := leaf.Export(ctx)
		if err != nil {
			t.Fatalf("Export: %v", err)
		}
		value, ok := node.Get("m_RootOrder")
		if ok != tt.want {
			t.Fatalf("%s: m_RootOrder present = %v, want %v", tt.version, ok, tt.want)
		}
		if ok && value.(export.Scalar).Int != 1 {
			t.Errorf("%s: m_RootOrder = %d, want 1", tt.version, value.(export.Scalar).Int)
		}
	}
}

func TestTransformReferences(t *testing.T) {
	for _, children := range []int{0, 1, 4} {
		transform := NewTransform(identity(asset.ClassTransform, 2))
		transform.GameObject = localRef(1)
		for i := range children {
			transform.Children = append(transform.Children, localRef(int64(10+i)))
		}
		transform.Father = localRef(20)

		refs := transform.References()
		if len(refs) != 2+children {
			t.Fatalf("%d children: %d references, want %d", children, len(refs), 2+children)
		}
		if refs[0] != transform.GameObject || refs[len(refs)-1] != transform.Father {
			t.Errorf("%d children: references out of field order: %v", children, refs)
		}
		for i := range children {
			if refs[1+i] != transform.Children[i] {
				t.Errorf("reference %d = %v, want child %d", 1+i, refs[1+i], i)
			}
		}
	}
}

func TestTextAssetExport(t *testing.T) {
	for _, tt := range []struct {
		version  string
		pathName bool
	}{
		{"5.6.0f3", true},
		{"2017.1.0f3", false},
	} {
		session := testSession(tt.version, transfer.SerializeGameRelease)
		textAsset := sampleObjects(testSession("5.6.0f3", transfer.SerializeGameRelease))[3].(*TextAsset)
		node, err := textAsset.Export(exportContext(session, nil))
		if err != nil {
			t.Fatalf("Export: %v", err)
		}
		want := []string{"m_ObjectHideFlags", "m_Name", "m_Script"}
		if tt.pathName {
			want = append(want, "m_PathName")
		}
		if diff := cmp.Diff(want, node.Keys()); diff != "" {
			t.Errorf("%s keys mismatch (-want +got):\n%s", tt.version, diff)
		}
	}
}

func TestTextAssetBinaryScript(t *testing.T) {
	session := testSession("2017.3.0f3", transfer.SerializeGameRelease)
	textAsset := &TextAsset{
		Base:   NewBase(identity(asset.ClassTextAsset, 4), asset.ClassTextAsset),
		Name:   "payload",
		Script: []byte{0xff, 0xfe, 0x00, 'a', 0xc3, 0xa9},
	}
	ctx := exportContext(session, nil)
	if _, err := ExportDocument(textAsset, ctx); err != nil {
		t.Fatalf("ExportDocument: %v", err)
	}
	text := render(t, ctx)
	if !utf8.ValidString(text) {
		t.Fatalf("rendered document is not valid UTF-8: %q", text)
	}
	if want := "  m_Script: \"\\xff\\xfe\\0a\u00e9\"\n"; !strings.Contains(text, want) {
		t.Errorf("rendered document %q does not contain %q", text, want)
	}
}

func TestExportBinary(t *testing.T) {
	objects := sampleObjects(testSession("2017.3.0f3", 0))
	textAsset := objects[3].(*TextAsset)

	var buffer bytes.Buffer
	if err := textAsset.ExportBinary(&buffer); err != nil {
		t.Fatalf("TextAsset.ExportBinary: %v", err)
	}
	if buffer.String() != "hello\nworld" {
		t.Errorf("TextAsset.ExportBinary wrote %q", buffer.String())
	}
	if textAsset.ExportName() != "Assets/TextAsset/notes" || textAsset.ExportExtension() != "bytes" {
		t.Errorf("TextAsset export path = %s.%s", textAsset.ExportName(), textAsset.ExportExtension())
	}

	halo := objects[2]
	if err := halo.ExportBinary(&buffer); !errors.Is(err, ErrExportUnsupported) {
		t.Errorf("Halo.ExportBinary = %v, want ErrExportUnsupported", err)
	}
	if halo.ExportName() != "Assets/Halo" || halo.ExportExtension() != "asset" {
		t.Errorf("Halo export path = %s.%s", halo.ExportName(), halo.ExportExtension())
	}
}

func TestGUISkinExport(t *testing.T) {
	for _, tt := range []struct {
		name   string
		flags  transfer.Flags
		editor bool
	}{
		{"editor", transfer.NoFlags, true},
		{"release", transfer.SerializeGameRelease, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			session := testSession("2019.1.0f2", tt.flags)
			skin := sampleObjects(session)[4].(*GUISkin)
			node, err := skin.Export(exportContext(session, nil))
			if err != nil {
				t.Fatalf("Export: %v", err)
			}

			want := []string{"m_ObjectHideFlags", "m_GameObject", "m_Enabled"}
			if tt.editor {
				want = append(want, "m_EditorHideFlags")
			}
			want = append(want, "m_Script", "m_Name")
			if tt.editor {
				want = append(want, "m_EditorClassIdentifier")
			}
			want = append(want, "m_Font",
				"m_box", "m_button", "m_toggle", "m_label", "m_textField", "m_textArea", "m_window",
				"m_horizontalSlider", "m_horizontalSliderThumb", "m_verticalSlider", "m_verticalSliderThumb",
				"m_horizontalScrollbar", "m_horizontalScrollbarThumb",
				"m_horizontalScrollbarLeftButton", "m_horizontalScrollbarRightButton",
				"m_verticalScrollbar", "m_verticalScrollbarThumb",
				"m_verticalScrollbarUpButton", "m_verticalScrollbarDownButton",
				"m_ScrollView", "m_CustomStyles", "m_Settings")
			if diff := cmp.Diff(want, node.Keys()); diff != "" {
				t.Errorf("keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGUIStyleExportKeys(t *testing.T) {
	style := sampleStyle("box", 0)
	node := style.Export(exportContext(testSession("5.4.0f3", 0), nil))
	want := []string{
		"m_Name", "m_Normal", "m_Hover", "m_Active", "m_Focused",
		"m_OnNormal", "m_OnHover", "m_OnActive", "m_OnFocused",
		"m_Border", "m_Margin", "m_Padding", "m_Overflow", "m_Font",
		"m_FontSize", "m_FontStyle", "m_Alignment", "m_WordWrap", "m_RichText",
		"m_TextClipping", "m_ImagePosition", "m_ContentOffset",
		"m_FixedWidth", "m_FixedHeight", "m_StretchWidth", "m_StretchHeight",
	}
	if diff := cmp.Diff(want, node.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	normal, _ := node.Get("m_Normal")
	stateKeys := normal.(*export.Mapping).Keys()
	if diff := cmp.Diff([]string{"m_Background", "m_ScaledBackgrounds", "m_TextColor"}, stateKeys); diff != "" {
		t.Errorf("state keys mismatch (-want +got):\n%s", diff)
	}
	old := style.Normal.Export(exportContext(testSession("5.3.8f2", 0), nil))
	if _, ok := old.Get("m_ScaledBackgrounds"); ok {
		t.Error("5.3 export carries m_ScaledBackgrounds")
	}
}

func TestGUISkinReferences(t *testing.T) {
	session := testSession("5.4.0f3", transfer.SerializeGameRelease)
	skin := sampleObjects(session)[4].(*GUISkin)
	refs := skin.References()

	// Three header references, then for each of the twenty built-in
	// styles and the custom style eight states of two references each
	// plus the font.
	if want := 3 + 21*(8*2+1); len(refs) != want {
		t.Fatalf("len(References) = %d, want %d", len(refs), want)
	}
	if refs[0] != skin.GameObject || refs[1] != skin.Script || refs[2] != skin.Font {
		t.Errorf("header references = %v", refs[:3])
	}
	if refs[3] != skin.Box.Normal.Background || refs[4] != skin.Box.Normal.ScaledBackgrounds[0] {
		t.Errorf("first style references = %v", refs[3:5])
	}
	if scrollView := 3 + 19*(8*2+1); refs[scrollView] != skin.ScrollView.Normal.Background {
		t.Errorf("reference %d = %v, want the ScrollView background", scrollView, refs[scrollView])
	}
	if refs[len(refs)-1] != skin.CustomStyles[0].Font {
		t.Errorf("last reference = %v, want the custom style font", refs[len(refs)-1])
	}
}

func TestClusterInputManagerExport(t *testing.T) {
	session := testSession("2017.3.0f3", transfer.SerializeGameRelease)
	manager := sampleObjects(session)[5]
	ctx := exportContext(session, nil)
	if _, err := ExportDocument(manager, ctx); err != nil {
		t.Fatalf("ExportDocument: %v", err)
	}

	want := export.StreamHeader +
		"--- !u!236 &1\n" +
		"ClusterInputManager:\n" +
		"  m_ObjectHideFlags: 0\n" +
		"  m_Inputs:\n" +
		"  - m_Name: Horizontal\n" +
		"    m_DeviceName: Tracker0\n" +
		"    m_ServerIndex: 0\n" +
		"    m_Index: 1\n" +
		"    m_Type: 2\n" +
		"  - m_Name: Fire\n" +
		"    m_DeviceName: \n" +
		"    m_ServerIndex: 1\n" +
		"    m_Index: 0\n" +
		"    m_Type: 0\n"
	if diff := cmp.Diff(want, render(t, ctx)); diff != "" {
		t.Errorf("rendered text mismatch (-want +got):\n%s", diff)
	}
}

func TestExternalReferenceExport(t *testing.T) {
	session := testSession("2017.3.0f3", transfer.SerializeGameRelease)
	transform := sampleObjects(session)[1]
	ctx := exportContext(session, nil)
	if _, err := ExportDocument(transform, ctx); err != nil {
		t.Fatalf("ExportDocument: %v", err)
	}
	guid := asset.GUID{0xab, 0xcd}.String()
	want := "  m_GameObject: {fileID: 2}\n" +
		"  m_LocalRotation: {x: 0, y: 0.70710677, z: 0, w: 0.70710677}\n" +
		"  m_LocalPosition: {x: 1, y: 2.5, z: -3}\n" +
		"  m_LocalScale: {x: 1, y: 1, z: 1}\n" +
		"  m_Children:\n" +
		"  - {fileID: 3}\n" +
		"  - {fileID: 11, guid: " + guid + ", type: 2}\n" +
		"  m_Father: {fileID: 4}\n" +
		"  m_RootOrder: 0\n"
	if text := render(t, ctx); !strings.Contains(text, want) {
		t.Errorf("rendered text lacks\n%s\ngot:\n%s", want, text)
	}
}

type failingExport struct{ Base }

func (f *failingExport) Export(*export.Context) (*export.Mapping, error) {
	return nil, ErrExportUnsupported
}

func TestBuildDocumentWrapsExportErrors(t *testing.T) {
	obj := &failingExport{Base: NewBase(identity(asset.ClassShader, 9), asset.ClassShader)}
	ctx := exportContext(testSession("2017.3.0f3", 0), nil)

	_, err := ExportDocument(obj, ctx)
	if !errors.Is(err, ErrExportUnsupported) {
		t.Fatalf("ExportDocument = %v, want ErrExportUnsupported", err)
	}
	var exportErr *ExportError
	if !errors.As(err, &exportErr) || exportErr.Identity != obj.Identity() {
		t.Errorf("error %v does not carry the object identity", err)
	}
	if len(ctx.Documents()) != 0 {
		t.Error("a failed export added a document")
	}
}
