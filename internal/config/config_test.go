// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	qerrors "querydash/cli/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c != Default() {
		t.Errorf("Load() = %+v, want %+v", c, Default())
	}
	if c.Latency() != 1500*time.Millisecond {
		t.Errorf("Latency() = %v, want 1.5s", c.Latency())
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Config{LogLevel: "debug", LatencyMS: 10, FailureRate: 0.5}
	if err := Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	p, err := Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	info, err := os.Stat(p)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config perm = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	dir := filepath.Join(base, "querydash")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"latency_ms": 0}`), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.LatencyMS != 0 {
		t.Errorf("LatencyMS = %d, want 0", c.LatencyMS)
	}
	if c.FailureRate != DefaultFailureRate || c.LogLevel != DefaultLogLevel {
		t.Errorf("defaults not kept: %+v", c)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	err := Save(Config{LogLevel: "info", LatencyMS: -1})
	if !qerrors.IsKind(err, qerrors.InvalidConfig) {
		t.Fatalf("Save() error = %v, want invalid_config", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: Default()},
		{name: "zero latency and certain failure", cfg: Config{LogLevel: "warn", LatencyMS: 0, FailureRate: 1}},
		{name: "negative latency", cfg: Config{LogLevel: "info", LatencyMS: -5}, wantErr: true},
		{name: "failure rate above one", cfg: Config{LogLevel: "info", FailureRate: 1.5}, wantErr: true},
		{name: "failure rate below zero", cfg: Config{LogLevel: "info", FailureRate: -0.1}, wantErr: true},
		{name: "unknown level", cfg: Config{LogLevel: "loud"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetAndGet(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    string
		wantErr bool
	}{
		{key: "latency_ms", value: "250", want: "250"},
		{key: "failure_rate", value: "0.25", want: "0.25"},
		{key: "log_level", value: "DEBUG", want: "debug"},
		{key: "latency_ms", value: "soon", wantErr: true},
		{key: "failure_rate", value: "2", wantErr: true},
		{key: "color", value: "red", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			c := Default()
			err := c.Set(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			got, ok := c.Get(tt.key)
			if !ok || got != tt.want {
				t.Errorf("Get(%q) = %q, %v; want %q", tt.key, got, ok, tt.want)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLatencyMS, "0")
	t.Setenv(EnvFailureRate, "1")
	t.Setenv(EnvLogLevel, "")

	c := Default()
	if err := c.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	want := Config{LogLevel: DefaultLogLevel, LatencyMS: 0, FailureRate: 1}
	if c != want {
		t.Errorf("ApplyEnv() = %+v, want %+v", c, want)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv(EnvFailureRate, "many")
	c := Default()
	if err := c.ApplyEnv(); !qerrors.IsKind(err, qerrors.InvalidConfig) {
		t.Fatalf("ApplyEnv() error = %v, want invalid_config", err)
	}
}
