// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/snapgen/cli/internal/config"
)

var (
	// ErrNotInitialized indicates no snapgen.yaml was found in the current
	// directory.
	ErrNotInitialized = errors.New("not in a snapgen project (snapgen.yaml not found; run 'snapgen init' or pass --driver/--dsn)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigFileName is the name of the snapgen configuration file.
const ConfigFileName = "snapgen.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration.
type Context struct {
	// Config is the parsed project configuration.
	Config *config.Config

	// ConfigPath is where the configuration was loaded from, so commands
	// that mutate connections can save it back.
	ConfigPath string
}

// LoadProject loads the project context from the current working directory.
func LoadProject() (*Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	return &Context{Config: cfg, ConfigPath: configPath}, nil
}

// Load loads the project context and returns a new context.Context with it
// stored inside.
func Load(ctx context.Context) (context.Context, error) {
	sessCtx, err := LoadProject()
	if err != nil {
		return nil, err
	}
	return context.WithValue(ctx, contextKey{}, sessCtx), nil
}

// From extracts the snapgen Context from a context.Context. Returns nil if
// no Context is stored.
func From(ctx context.Context) *Context {
	if sessCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessCtx
	}
	return nil
}

// Save writes the context's configuration back to the file it came from.
func (c *Context) Save() error {
	return c.Config.Save(c.ConfigPath)
}
