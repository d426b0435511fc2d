// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package asset

import "fmt"

// ClassID is the engine's numeric type identifier. The values are part
// of the on-disk format and of the exported text notation.
type ClassID int32

const (
	ClassObject              ClassID = 0
	ClassGameObject          ClassID = 1
	ClassComponent           ClassID = 2
	ClassLevelGameManager    ClassID = 3
	ClassTransform           ClassID = 4
	ClassTimeManager         ClassID = 5
	ClassGlobalGameManager   ClassID = 6
	ClassBehaviour           ClassID = 8
	ClassMaterial            ClassID = 21
	ClassTexture2D           ClassID = 28
	ClassShader              ClassID = 48
	ClassTextAsset           ClassID = 49
	ClassMonoBehaviour       ClassID = 114
	ClassMonoScript          ClassID = 115
	ClassHalo                ClassID = 122
	ClassFont                ClassID = 128
	ClassRectTransform       ClassID = 224
	ClassClusterInputManager ClassID = 236
	ClassAvatarMask          ClassID = 319
)

var classNames = map[ClassID]string{
	ClassObject:              "Object",
	ClassGameObject:          "GameObject",
	ClassComponent:           "Component",
	ClassLevelGameManager:    "LevelGameManager",
	ClassTransform:           "Transform",
	ClassTimeManager:         "TimeManager",
	ClassGlobalGameManager:   "GlobalGameManager",
	ClassBehaviour:           "Behaviour",
	ClassMaterial:            "Material",
	ClassTexture2D:           "Texture2D",
	ClassShader:              "Shader",
	ClassTextAsset:           "TextAsset",
	ClassMonoBehaviour:       "MonoBehaviour",
	ClassMonoScript:          "MonoScript",
	ClassHalo:                "Halo",
	ClassFont:                "Font",
	ClassRectTransform:       "RectTransform",
	ClassClusterInputManager: "ClusterInputManager",
	ClassAvatarMask:          "AvatarMask",
}

// String returns the engine class name. Unknown ids format as
// "ClassID(N)" so they remain distinguishable in logs.
func (id ClassID) String() string {
	if name, ok := classNames[id]; ok {
		return name
	}
	return fmt.Sprintf("ClassID(%d)", int32(id))
}

// Known reports whether id has a registered class name.
func (id ClassID) Known() bool {
	_, ok := classNames[id]
	return ok
}
