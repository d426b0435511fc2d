// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the ripper's configuration.
//
// Configuration is loaded from a single file specified by either the
// RIPPER_CONFIG environment variable (via [Load]) or an explicit path
// (via [LoadFile]). There is no discovery and no environment variable
// overrides individual values.
//
// Files ending in .json or .jsonc are parsed as JSON with comments and
// trailing commas; everything else is parsed as YAML. Both formats use
// the same keys:
//
//	decode:
//	  workers: 8
//	export:
//	  version: 2019.4.0f1
//	  platform: StandaloneWindows64
//	  flags: [release]
//	cache:
//	  directory: ${HOME}/.cache/utinyripper
//	  memory_entries: 4096
//	  compression: zstd
//	log:
//	  level: info
//	  format: auto
//
// ${HOME} and ${VAR:-default} patterns are expanded in the cache
// directory after loading.
//
// [Config.Validate] reports every problem at once. [Config.NewLogger] builds
// the process logger from the log section.
package config
