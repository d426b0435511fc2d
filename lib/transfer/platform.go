// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"fmt"
	"strings"
)

// Platform is the build target recorded in a container header. Values
// are the engine's own build-target numbers.
type Platform int32

const (
	NoTarget            Platform = -2
	AnyPlatform         Platform = -1
	StandaloneOSX       Platform = 2
	StandaloneWindows   Platform = 5
	WebPlayer           Platform = 6
	Wii                 Platform = 8
	IOS                 Platform = 9
	PS3                 Platform = 10
	XBox360             Platform = 11
	Android             Platform = 13
	StandaloneLinux     Platform = 17
	StandaloneWindows64 Platform = 19
	WebGL               Platform = 20
	WSAPlayer           Platform = 21
	StandaloneLinux64   Platform = 24
	PS4                 Platform = 31
	XboxOne             Platform = 33
	TVOS                Platform = 37
	Switch              Platform = 38
)

var platformNames = map[Platform]string{
	NoTarget:            "NoTarget",
	AnyPlatform:         "AnyPlatform",
	StandaloneOSX:       "StandaloneOSX",
	StandaloneWindows:   "StandaloneWindows",
	WebPlayer:           "WebPlayer",
	Wii:                 "Wii",
	IOS:                 "iOS",
	PS3:                 "PS3",
	XBox360:             "XBox360",
	Android:             "Android",
	StandaloneLinux:     "StandaloneLinux",
	StandaloneWindows64: "StandaloneWindows64",
	WebGL:               "WebGL",
	WSAPlayer:           "WSAPlayer",
	StandaloneLinux64:   "StandaloneLinux64",
	PS4:                 "PS4",
	XboxOne:             "XboxOne",
	TVOS:                "tvOS",
	Switch:              "Switch",
}

// String returns the engine's name for the platform.
func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Platform(%d)", int32(p))
}

// ParsePlatform accepts either the engine name (case-insensitive) or
// the decimal build-target number.
func ParsePlatform(name string) (Platform, error) {
	for platform, candidate := range platformNames {
		if strings.EqualFold(candidate, name) {
			return platform, nil
		}
	}
	var number int32
	if _, err := fmt.Sscanf(name, "%d", &number); err == nil {
		return Platform(number), nil
	}
	return 0, fmt.Errorf("unknown platform %q", name)
}

// WordSize is the pointer width in bytes assumed by layouts that embed
// native words. Targets not known to be 64-bit are treated as 32-bit.
func (p Platform) WordSize() int {
	switch p {
	case StandaloneWindows64, StandaloneLinux64, StandaloneOSX, PS4, XboxOne, Switch:
		return 8
	default:
		return 4
	}
}

// BigEndian reports whether the target's serialized data is big-endian.
// Only the legacy PowerPC consoles qualify.
func (p Platform) BigEndian() bool {
	switch p {
	case Wii, PS3, XBox360:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error {
	parsed, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
