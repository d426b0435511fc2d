// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"fmt"
	"strings"
)

// Flags is the transfer-instruction bitset: the serialization mode the
// container was written under. Bit positions match the engine's own.
type Flags uint32

const (
	NoFlags                        Flags = 0
	ReadWriteFromSerializedFile    Flags = 1 << 0
	AssetMetaDataOnly              Flags = 1 << 1
	HandleDrivenProperties         Flags = 1 << 2
	LoadAndUnloadAssetsDuringBuild Flags = 1 << 3
	SerializeDebugProperties       Flags = 1 << 4
	IgnoreDebugPropertiesForIndex  Flags = 1 << 5
	BuildPlayerOnlySerialize       Flags = 1 << 6
	IsCloningObject                Flags = 1 << 7
	SerializeGameRelease           Flags = 1 << 8
	SwapEndianness                 Flags = 1 << 9
	ResolveStreamedResourceSources Flags = 1 << 10
	DontReadObjectsFromDisk        Flags = 1 << 11
	SerializeMonoReload            Flags = 1 << 12
	DontRequireAllMetaFlags        Flags = 1 << 13
	SerializeForPrefabSystem       Flags = 1 << 14
	SerializeInstanceIDs           Flags = 1 << 24
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{ReadWriteFromSerializedFile, "read_write_from_serialized_file"},
	{AssetMetaDataOnly, "asset_meta_data_only"},
	{HandleDrivenProperties, "handle_driven_properties"},
	{LoadAndUnloadAssetsDuringBuild, "load_and_unload_assets_during_build"},
	{SerializeDebugProperties, "serialize_debug_properties"},
	{IgnoreDebugPropertiesForIndex, "ignore_debug_properties_for_index"},
	{BuildPlayerOnlySerialize, "build_player_only_serialize"},
	{IsCloningObject, "is_cloning_object"},
	{SerializeGameRelease, "release"},
	{SwapEndianness, "swap_endianness"},
	{ResolveStreamedResourceSources, "resolve_streamed_resource_sources"},
	{DontReadObjectsFromDisk, "dont_read_objects_from_disk"},
	{SerializeMonoReload, "serialize_mono_reload"},
	{DontRequireAllMetaFlags, "dont_require_all_meta_flags"},
	{SerializeForPrefabSystem, "for_prefab"},
	{SerializeInstanceIDs, "instance_ids"},
}

// IsRelease reports whether the data was written for a player build.
func (f Flags) IsRelease() bool { return f&SerializeGameRelease != 0 }

// IsForPrefab reports whether the data was written by the prefab system.
func (f Flags) IsForPrefab() bool { return f&SerializeForPrefabSystem != 0 }

// HasInstanceIDs reports whether every object carries its runtime
// instance id and local file identifier after the hide flags.
func (f Flags) HasInstanceIDs() bool { return f&SerializeInstanceIDs != 0 }

// IsSwapEndianness reports whether multi-byte values are big-endian.
func (f Flags) IsSwapEndianness() bool { return f&SwapEndianness != 0 }

// String lists the set flag names joined with '|', or "none".
func (f Flags) String() string {
	if f == NoFlags {
		return "none"
	}
	var names []string
	remaining := f
	for _, entry := range flagNames {
		if f&entry.flag != 0 {
			names = append(names, entry.name)
			remaining &^= entry.flag
		}
	}
	if remaining != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(remaining)))
	}
	return strings.Join(names, "|")
}

// ParseFlags combines flag names as produced by String. Used by
// configuration files, which list flags by name.
func ParseFlags(names []string) (Flags, error) {
	var result Flags
	for _, name := range names {
		found := false
		for _, entry := range flagNames {
			if entry.name == name {
				result |= entry.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown transfer flag %q", name)
		}
	}
	return result, nil
}
