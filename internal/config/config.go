// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Semantic Git-CZ - An interactive helper for composing semantic, versioned commit messages.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/semantic-git-cz/internal/vcs"
)

// FileName is looked up in the working directory when no path is given.
const FileName = ".semantic-git-cz.yaml"

type Config struct {
	Backend   string `yaml:"backend"`
	GitBinary string `yaml:"git_binary"`
	Verbose   bool   `yaml:"verbose"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Backend:   vcs.BackendCLI,
		GitBinary: "git",
	}
}

// Load reads and validates the file at path. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the user's --config flag
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads explicit when non-empty (it must exist), otherwise FileName
// inside dir if present, otherwise the defaults.
func Resolve(explicit, dir string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	return Load(path)
}

func (c *Config) Validate() error {
	switch c.Backend {
	case vcs.BackendCLI, vcs.BackendGoGit:
	default:
		return fmt.Errorf("backend must be %q or %q, got %q", vcs.BackendCLI, vcs.BackendGoGit, c.Backend)
	}
	if c.GitBinary == "" {
		return errors.New("git_binary must not be empty")
	}
	return nil
}
