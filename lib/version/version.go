// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildType is the release channel letter of a version string. The
// numeric values define the tie-break order between versions that share
// major, minor and patch numbers.
type BuildType uint8

const (
	Alpha BuildType = iota
	Beta
	China
	Final
	Patch
	Experimental
)

var buildTypeLetters = [...]byte{
	Alpha:        'a',
	Beta:         'b',
	China:        'c',
	Final:        'f',
	Patch:        'p',
	Experimental: 'x',
}

// String returns the single-letter form used in version strings.
func (t BuildType) String() string {
	if int(t) < len(buildTypeLetters) {
		return string(buildTypeLetters[t])
	}
	return fmt.Sprintf("unknown(%d)", t)
}

func parseBuildType(letter byte) (BuildType, bool) {
	for index, candidate := range buildTypeLetters {
		if candidate == letter {
			return BuildType(index), true
		}
	}
	return 0, false
}

// Version is an engine version. The zero value is 0.0.0a0, which sorts
// before every real release.
type Version struct {
	Major int
	Minor int
	Patch int
	Type  BuildType
	Build int
}

// New returns a final-channel version with the given numeric components.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch, Type: Final, Build: 1}
}

// Parse parses a version string in the engine's native form. Accepted
// shapes:
//
//	"5"            -> 5.0.0f1
//	"2017.3"       -> 2017.3.0f1
//	"2017.3.0"     -> 2017.3.0f1
//	"2017.3.0f3"   -> 2017.3.0f3
//	"5.6.1p2"      -> 5.6.1p2
//
// A string without a build type is treated as a final release.
func Parse(raw string) (Version, error) {
	if raw == "" {
		return Version{}, fmt.Errorf("empty version string")
	}

	parts := strings.SplitN(raw, ".", 3)
	result := Version{Type: Final, Build: 1}

	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return Version{}, fmt.Errorf("invalid major version in %q", raw)
	}
	result.Major = major

	if len(parts) > 1 {
		minor, err := strconv.Atoi(parts[1])
		if err != nil || minor < 0 {
			return Version{}, fmt.Errorf("invalid minor version in %q", raw)
		}
		result.Minor = minor
	}

	if len(parts) > 2 {
		tail := parts[2]
		digits := 0
		for digits < len(tail) && tail[digits] >= '0' && tail[digits] <= '9' {
			digits++
		}
		if digits == 0 {
			return Version{}, fmt.Errorf("invalid patch version in %q", raw)
		}
		patch, err := strconv.Atoi(tail[:digits])
		if err != nil {
			return Version{}, fmt.Errorf("invalid patch version in %q", raw)
		}
		result.Patch = patch

		if digits < len(tail) {
			buildType, ok := parseBuildType(tail[digits])
			if !ok {
				return Version{}, fmt.Errorf("unknown build type %q in %q", tail[digits], raw)
			}
			result.Type = buildType

			buildNumber := tail[digits+1:]
			if buildNumber == "" {
				return Version{}, fmt.Errorf("missing build number in %q", raw)
			}
			build, err := strconv.Atoi(buildNumber)
			if err != nil || build < 0 {
				return Version{}, fmt.Errorf("invalid build number in %q", raw)
			}
			result.Build = build
		}
	}

	return result, nil
}

// MustParse is like Parse but panics on error. Intended for package-level
// threshold constants and tests.
func MustParse(raw string) Version {
	parsed, err := Parse(raw)
	if err != nil {
		panic("version: " + err.Error())
	}
	return parsed
}

// String returns the native form, e.g. "2017.3.0f3".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d%s%d", v.Major, v.Minor, v.Patch, v.Type, v.Build)
}

// IsZero reports whether v is the zero value.
func (v Version) IsZero() bool { return v == Version{} }

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal
// to, or after other.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}
	if c := compareInt(int(v.Type), int(other.Type)); c != 0 {
		return c
	}
	return compareInt(v.Build, other.Build)
}

// GreaterEqual reports whether v is at or after the threshold
// major.minor.patch. Omitted components are zero and the build-type
// tail is ignored, so any prerelease of the threshold counts as reaching
// it.
func (v Version) GreaterEqual(major int, rest ...int) bool {
	return v.compareNumeric(major, rest) >= 0
}

// Less is the negation of GreaterEqual.
func (v Version) Less(major int, rest ...int) bool {
	return v.compareNumeric(major, rest) < 0
}

// AtLeast reports whether v sorts at or after threshold under the full
// order, build type and number included.
func (v Version) AtLeast(threshold Version) bool {
	return v.Compare(threshold) >= 0
}

func (v Version) compareNumeric(major int, rest []int) int {
	minor, patch := 0, 0
	if len(rest) > 0 {
		minor = rest[0]
	}
	if len(rest) > 1 {
		patch = rest[1]
	}
	if c := compareInt(v.Major, major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, minor); c != 0 {
		return c
	}
	return compareInt(v.Patch, patch)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler so versions serialize as
// their native string in YAML, JSON and CBOR.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
