// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/strassen/strassen"
)

// config is the effective command configuration: defaults, then the YAML
// file, then explicitly set flags.
type config struct {
	Print     bool   `yaml:"print"`
	Threshold int    `yaml:"threshold"`
	LogLevel  string `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		Threshold: strassen.DefaultThreshold,
		LogLevel:  "warn",
	}
}

// loadConfig overlays the YAML file at path onto c. Keys absent from the
// file keep their current values.
func loadConfig(path string, c *config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	return nil
}

// validate checks the values that the engine would otherwise panic on.
func (c config) validate() error {
	if c.Threshold < 1 {
		return fmt.Errorf("threshold must be >= 1, got %d", c.Threshold)
	}
	if _, err := c.level(); err != nil {
		return err
	}

	return nil
}

// level parses LogLevel ("debug", "info", "warn", "error").
func (c config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}

	return lvl, nil
}
