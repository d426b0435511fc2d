// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package asset

import "testing"

func TestClassIDString(t *testing.T) {
	tests := []struct {
		id   ClassID
		want string
	}{
		{ClassGameObject, "GameObject"},
		{ClassMonoBehaviour, "MonoBehaviour"},
		{ClassClusterInputManager, "ClusterInputManager"},
		{ClassID(9999), "ClassID(9999)"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("ClassID(%d).String() = %q, want %q", int32(tt.id), got, tt.want)
		}
	}
	if ClassID(9999).Known() {
		t.Error("ClassID(9999) should not be known")
	}
}

func TestGUIDNibbleSwappedFormat(t *testing.T) {
	g := GUID{0x12, 0x34, 0xab, 0xcd}
	text := g.String()
	if text[:8] != "2143badc" {
		t.Errorf("String() prefix = %q, want %q", text[:8], "2143badc")
	}

	parsed, err := ParseGUID(text)
	if err != nil {
		t.Fatalf("ParseGUID: %v", err)
	}
	if parsed != g {
		t.Errorf("ParseGUID roundtrip = %x, want %x", parsed, g)
	}

	if _, err := ParseGUID("short"); err == nil {
		t.Error("ParseGUID should reject short input")
	}
	if _, err := ParseGUID("zz000000000000000000000000000000"); err == nil {
		t.Error("ParseGUID should reject non-hex input")
	}
}

func TestIdentityKeyAndRef(t *testing.T) {
	id := Identity{Container: "level0", PathID: 12, ClassID: ClassGameObject}
	if id.Key() != (Key{Container: "level0", PathID: 12}) {
		t.Errorf("Key() = %v", id.Key())
	}
	if id.Ref().Key() != id.Key() {
		t.Errorf("Ref().Key() = %v, want %v", id.Ref().Key(), id.Key())
	}
	if id.String() != "GameObject[level0:12]" {
		t.Errorf("String() = %q", id.String())
	}
}

type mapLookup map[Key]Asset

func (m mapLookup) Resolve(container ContainerRef, pathID int64) (Asset, bool) {
	found, ok := m[Key{Container: container, PathID: pathID}]
	return found, ok
}

type stubAsset Identity

func (s stubAsset) Identity() Identity { return Identity(s) }

func TestResolve(t *testing.T) {
	target := stubAsset{Container: "a", PathID: 5, ClassID: ClassTransform}
	lookup := mapLookup{{Container: "a", PathID: 5}: target}

	if _, ok := Resolve(lookup, TypedRef{}); ok {
		t.Error("null reference should not resolve")
	}
	if _, ok := Resolve(nil, TypedRef{Container: "a", PathID: 5}); ok {
		t.Error("nil lookup should not resolve")
	}
	if _, ok := Resolve(lookup, TypedRef{Container: "b", PathID: 5}); ok {
		t.Error("reference into an unloaded container should not resolve")
	}
	found, ok := Resolve(lookup, TypedRef{Container: "a", PathID: 5})
	if !ok || found.Identity() != Identity(target) {
		t.Errorf("Resolve = %v, %v", found, ok)
	}
}
