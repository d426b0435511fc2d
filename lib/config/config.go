// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/loveezu/UtinyRipper/lib/container"
	"github.com/loveezu/UtinyRipper/lib/objcache"
	"github.com/loveezu/UtinyRipper/lib/transfer"
	"github.com/loveezu/UtinyRipper/lib/version"
)

// EnvironmentVariable names the configuration file for Load.
const EnvironmentVariable = "RIPPER_CONFIG"

// Config is the complete ripper configuration.
type Config struct {
	Decode DecodeConfig `yaml:"decode" json:"decode"`
	Export ExportConfig `yaml:"export" json:"export"`
	Cache  CacheConfig  `yaml:"cache" json:"cache"`
	Log    LogConfig    `yaml:"log" json:"log"`
}

// DecodeConfig configures container decoding.
type DecodeConfig struct {
	// Workers bounds concurrent object decodes. Zero means GOMAXPROCS.
	Workers int `yaml:"workers" json:"workers"`
}

// ExportConfig configures the session exports are rendered for. An
// unset version exports under each container's own session.
type ExportConfig struct {
	Version  version.Version   `yaml:"version" json:"version"`
	Platform transfer.Platform `yaml:"platform" json:"platform"`

	// Flags lists transfer flag names, e.g. release or for_prefab.
	Flags []string `yaml:"flags" json:"flags"`

	// Workers bounds concurrent object renders. Zero means GOMAXPROCS.
	Workers int `yaml:"workers" json:"workers"`
}

// CacheConfig configures the decoded object cache.
type CacheConfig struct {
	// Directory enables the disk tier. Empty keeps the cache in memory.
	Directory string `yaml:"directory" json:"directory"`

	MemoryEntries int                     `yaml:"memory_entries" json:"memory_entries"`
	Compression   objcache.CompressionTag `yaml:"compression" json:"compression"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" json:"level"`

	// Format is text, json, or auto (text on a terminal, json
	// otherwise).
	Format string `yaml:"format" json:"format"`
}

// Default returns the configuration every file is merged over.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			Platform: transfer.StandaloneWindows64,
		},
		Cache: CacheConfig{
			MemoryEntries: objcache.DefaultMemoryEntries,
			Compression:   objcache.CompressionLZ4,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load loads the file named by RIPPER_CONFIG.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of a YAML or JSONC config file", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path, merged over Default.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data, formatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Format is a configuration file syntax.
type Format int

const (
	FormatYAML Format = iota
	FormatJSONC
)

func formatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSONC
	default:
		return FormatYAML
	}
}

// Parse parses configuration data, merged over Default.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatJSONC:
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing JSONC config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML config: %w", err)
		}
	}
	cfg.expandVariables()
	return cfg, nil
}

func (c *Config) expandVariables() {
	vars := map[string]string{"HOME": os.Getenv("HOME")}
	c.Cache.Directory = expandVars(c.Cache.Directory, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

var logFormats = []string{"auto", "text", "json"}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Decode.Workers < 0 {
		errs = append(errs, fmt.Errorf("decode.workers must not be negative"))
	}
	if c.Export.Workers < 0 {
		errs = append(errs, fmt.Errorf("export.workers must not be negative"))
	}
	if _, err := transfer.ParseFlags(c.Export.Flags); err != nil {
		errs = append(errs, fmt.Errorf("export.flags: %w", err))
	}
	if c.Cache.MemoryEntries <= 0 {
		errs = append(errs, fmt.Errorf("cache.memory_entries must be positive"))
	}
	if c.Cache.Compression > objcache.CompressionZstd {
		errs = append(errs, fmt.Errorf("cache.compression: unsupported tag %d", c.Cache.Compression))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", logFormats))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ExportSession returns the session to export under. When no export
// version is configured, fallback (normally the container's own
// session) is returned unchanged.
func (c *Config) ExportSession(fallback transfer.Session) (transfer.Session, error) {
	if c.Export.Version.IsZero() {
		return fallback, nil
	}
	flags, err := transfer.ParseFlags(c.Export.Flags)
	if err != nil {
		return transfer.Session{}, fmt.Errorf("export.flags: %w", err)
	}
	return transfer.Session{
		Version:  c.Export.Version,
		Platform: c.Export.Platform,
		Flags:    flags,
	}, nil
}

// CacheOptions returns the objcache options for the cache section.
func (c *Config) CacheOptions() objcache.Options {
	return objcache.Options{
		MemoryEntries: c.Cache.MemoryEntries,
		Directory:     c.Cache.Directory,
		Compression:   c.Cache.Compression,
	}
}

// Decoder returns a container decoder bounded by decode.workers. cache
// may be nil.
func (c *Config) Decoder(cache *objcache.Cache, logger *slog.Logger) *container.Decoder {
	return &container.Decoder{
		Cache:   cache,
		Workers: c.Decode.Workers,
		Logger:  logger,
	}
}

// Exporter returns a container exporter bounded by export.workers.
func (c *Config) Exporter(logger *slog.Logger) *container.Exporter {
	return &container.Exporter{
		Workers: c.Export.Workers,
		Logger:  logger,
	}
}

// EnsurePaths creates the cache directory if one is configured.
func (c *Config) EnsurePaths() error {
	if c.Cache.Directory == "" {
		return nil
	}
	if err := os.MkdirAll(c.Cache.Directory, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", c.Cache.Directory, err)
	}
	return nil
}

