// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config loads and stores CLI configuration in the XDG config dir.
// Values from the file can be overridden by QUERYDASH_* environment variables,
// and command-line flags override both.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	qerrors "querydash/cli/internal/errors"
	"querydash/cli/internal/xdg"
)

// Environment variables that override file settings.
const (
	EnvLatencyMS   = "QUERYDASH_LATENCY_MS"
	EnvFailureRate = "QUERYDASH_FAILURE_RATE"
	EnvLogLevel    = "QUERYDASH_LOG_LEVEL"
)

// Defaults applied when the config file is missing.
const (
	DefaultLogLevel    = "info"
	DefaultLatencyMS   = 1500
	DefaultFailureRate = 0.1
)

// Config holds CLI settings.
type Config struct {
	LogLevel    string  `json:"log_level"`
	LatencyMS   int     `json:"latency_ms"`
	FailureRate float64 `json:"failure_rate"`
}

// Keys lists the settable keys in display order.
var Keys = []string{"log_level", "latency_ms", "failure_rate"}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:    DefaultLogLevel,
		LatencyMS:   DefaultLatencyMS,
		FailureRate: DefaultFailureRate,
	}
}

// Latency returns the simulated processing delay.
func (c Config) Latency() time.Duration {
	return time.Duration(c.LatencyMS) * time.Millisecond
}

// Validate rejects values the processor cannot work with.
func (c Config) Validate() error {
	if c.LatencyMS < 0 {
		return qerrors.New(qerrors.InvalidConfig, fmt.Sprintf("latency_ms must be >= 0, got %d", c.LatencyMS))
	}
	if c.FailureRate < 0 || c.FailureRate > 1 {
		return qerrors.New(qerrors.InvalidConfig, fmt.Sprintf("failure_rate must be within [0,1], got %g", c.FailureRate))
	}
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return qerrors.New(qerrors.InvalidConfig, fmt.Sprintf("unknown log_level %q", c.LogLevel))
	}
	return nil
}

// Set assigns a single key from its string form.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "log_level":
		c.LogLevel = strings.ToLower(value)
	case "latency_ms":
		n, err := strconv.Atoi(value)
		if err != nil {
			return qerrors.Wrap(qerrors.InvalidConfig, "latency_ms must be an integer", err)
		}
		c.LatencyMS = n
	case "failure_rate":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return qerrors.Wrap(qerrors.InvalidConfig, "failure_rate must be a number", err)
		}
		c.FailureRate = f
	default:
		return qerrors.New(qerrors.InvalidConfig, fmt.Sprintf("unknown key %q (valid: %s)", key, strings.Join(Keys, ", ")))
	}
	return c.Validate()
}

// Get returns the string form of a single key.
func (c Config) Get(key string) (string, bool) {
	switch key {
	case "log_level":
		return c.LogLevel, true
	case "latency_ms":
		return strconv.Itoa(c.LatencyMS), true
	case "failure_rate":
		return strconv.FormatFloat(c.FailureRate, 'g', -1, 64), true
	}
	return "", false
}

// ApplyEnv overrides fields from QUERYDASH_* environment variables.
// Unset or blank variables are ignored.
func (c *Config) ApplyEnv() error {
	for key, env := range map[string]string{
		"latency_ms":   EnvLatencyMS,
		"failure_rate": EnvFailureRate,
		"log_level":    EnvLogLevel,
	} {
		v := strings.TrimSpace(os.Getenv(env))
		if v == "" {
			continue
		}
		if err := c.Set(key, v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
// Fields absent from the file keep their default values.
func Load() (Config, error) {
	c := Default()
	p, err := Path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", p, err)
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	p, err := Path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
