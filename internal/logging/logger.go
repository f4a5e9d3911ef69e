// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides structured logging and error presentation for querydash.
// Logging goes through pterm's structured Logger so debug output shares styling
// with the rest of the terminal UI. User-supplied text is sanitised before it is
// echoed back to the terminal, and errors are formatted for display.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// EnvVerbose forces debug logging when set to "1".
const EnvVerbose = "QUERYDASH_VERBOSE"

// ParseLevel maps a config log level onto a pterm level.
// Unknown values fall back to info.
func ParseLevel(level string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	case "disabled", "off", "none":
		return pterm.LogLevelDisabled
	default:
		return pterm.LogLevelInfo
	}
}

// New returns a logger writing to w at the given level.
// A nil writer means stderr, keeping stdout free for rendered results.
func New(level string, w io.Writer) *pterm.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl := ParseLevel(level)
	if os.Getenv(EnvVerbose) == "1" && lvl > pterm.LogLevelDebug {
		lvl = pterm.LogLevelDebug
	}
	return pterm.DefaultLogger.
		WithLevel(lvl).
		WithWriter(w).
		WithTime(false)
}

// Discard returns a logger that drops everything. Used as the default
// for components constructed without an explicit logger.
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled).WithWriter(io.Discard)
}
