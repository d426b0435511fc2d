// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("unknown level %q", name)
	}
	return level, nil
}

// NewLogger creates the process logger writing to stderr. With format
// auto, a terminal gets slog.TextHandler for human-readable output and
// anything else gets slog.JSONHandler.
func (c *Config) NewLogger() (*slog.Logger, error) {
	return c.newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
}

func (c *Config) newLogger(w io.Writer, terminal bool) (*slog.Logger, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	options := &slog.HandlerOptions{Level: level}

	text := terminal
	switch c.Log.Format {
	case "text":
		text = true
	case "json":
		text = false
	case "auto", "":
	default:
		return nil, fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler), nil
}
