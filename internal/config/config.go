// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

// Package config handles the snapgen project configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Connection is one saved database connection.
type Connection struct {
	Driver      string `yaml:"driver"`
	DSN         string `yaml:"dsn"`
	Description string `yaml:"description,omitempty"`
}

// Config represents the snapgen.yaml project configuration file.
type Config struct {
	Version     int                   `yaml:"version"`
	Connections map[string]Connection `yaml:"connections,omitempty"`
}

// Drivers lists the database/sql driver names the generate command can
// open. They match the blank driver imports in the commands package.
var Drivers = []string{"pgx", "mysql", "sqlserver", "sqlite3"}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks the config is usable by this build.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return fmt.Errorf("unsupported config version %d (want %d)", c.Version, CurrentConfigVersion)
	}
	for name, conn := range c.Connections {
		if !ValidDriver(conn.Driver) {
			return fmt.Errorf("connection %q: unknown driver %q (supported: %v)", name, conn.Driver, Drivers)
		}
		if conn.DSN == "" {
			return fmt.Errorf("connection %q: dsn is required", name)
		}
	}
	return nil
}

// ValidDriver reports whether name is one of the supported driver names.
func ValidDriver(name string) bool {
	for _, d := range Drivers {
		if d == name {
			return true
		}
	}
	return false
}
