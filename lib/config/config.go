// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/manage/lib/term"
)

// EnvironmentVariable names the config file when no --config flag is
// given.
const EnvironmentVariable = "MANAGE_CONFIG"

// Config holds output preferences.
type Config struct {
	// Color selects styled output: auto, always, or never.
	Color term.ColorMode `yaml:"color"`
}

// Default returns the configuration used when no file is named.
func Default() *Config {
	return &Config{Color: term.ColorAuto}
}

// LoadFromEnvironment loads the file named by MANAGE_CONFIG, or
// returns Default when the variable is unset or empty.
func LoadFromEnvironment() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Load reads and validates the config file at path. Unknown keys are
// rejected so that typos surface instead of silently falling back to
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate normalizes and checks the configuration. An empty color
// mode becomes auto.
func (c *Config) Validate() error {
	mode, err := term.ParseColorMode(string(c.Color))
	if err != nil {
		return fmt.Errorf("color: %w", err)
	}
	c.Color = mode
	return nil
}
