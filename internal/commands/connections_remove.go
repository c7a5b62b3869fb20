// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package commands

import (
	"fmt"

	"github.com/snapgen/cli/internal/prompts"
	"github.com/snapgen/cli/internal/session"
	"github.com/spf13/cobra"
)

func registerConnectionsRemoveCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a saved connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runConnectionsRemove(ctx, args[0])
		},
	}
	parent.AddCommand(cmd)
}

func runConnectionsRemove(ctx *session.Context, name string) error {
	if _, ok := ctx.Config.Connections[name]; !ok {
		return fmt.Errorf("connection %q not found", name)
	}

	delete(ctx.Config.Connections, name)
	if err := ctx.Save(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Connection", Value: name},
	}, "Connection removed")
	return nil
}
