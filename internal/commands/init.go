// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/snapgen/cli/internal/config"
	"github.com/snapgen/cli/internal/prompts"
	"github.com/snapgen/cli/internal/session"
	"github.com/spf13/cobra"
)

func registerInitCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a snapgen.yaml in the current directory",
		RunE:  runInit,
	}
	parent.AddCommand(cmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	path := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", session.ConfigFileName)
	}

	cfg := &config.Config{Version: config.CurrentConfigVersion}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: path},
	}, "Project initialized. Add connections with 'snapgen connections add'")

	return nil
}
