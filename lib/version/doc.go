// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version models the engine version stamped on every serialized
// container.
//
// A [Version] is the ordered tuple (major, minor, patch, build type,
// build number), written in the engine's native form as
// "2017.3.0f3". Layout decisions throughout the object model are
// expressed as threshold comparisons against a Version:
//
//	if r.Version().GreaterEqual(5, 5) {
//		// layout introduced in 5.5.0
//	}
//
// The total order compares major, minor and patch numerically, then
// build type in release order (alpha, beta, china, final, patch,
// experimental), then the build number. Thresholds written with fewer
// components compare missing components as zero, so GreaterEqual(4) is
// true for every 4.x release including 4.0.0a1.
//
// This package depends on no other packages in this module.
package version
