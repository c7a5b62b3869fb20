// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/snapgen/cli/internal/session"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "snapgen",
		Short: "Generate offline Go test fixtures from live tabular data",
		Long: `snapgen captures a snapshot of a query result (columns, types and rows)
and generates Go source code that rebuilds the same table in memory, so
tests can run against a deterministic fake instead of a live database.`,
	}

	registerInitCmd(rootCmd)
	registerGenerateCmd(rootCmd)
	registerTargetsCmd(rootCmd)
	registerConnectionsCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerConnectionsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "connections",
		Short:             "Manage saved database connections",
		PersistentPreRunE: session.PreRunLoad,
	}

	registerConnectionsAddCmd(cmd)
	registerConnectionsListCmd(cmd)
	registerConnectionsRemoveCmd(cmd)

	parent.AddCommand(cmd)
}
