// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package commands

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/snapgen/cli/internal/session"
	"github.com/spf13/cobra"
)

func registerConnectionsListCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runConnectionsList(ctx)
		},
	}
	parent.AddCommand(cmd)
}

func runConnectionsList(ctx *session.Context) error {
	if len(ctx.Config.Connections) == 0 {
		fmt.Println("No connections saved. Add one with 'snapgen connections add'.")
		return nil
	}

	names := make([]string, 0, len(ctx.Config.Connections))
	for name := range ctx.Config.Connections {
		names = append(names, name)
	}
	sort.Strings(names)

	bold := lipgloss.NewStyle().Bold(true)
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))

	for _, name := range names {
		conn := ctx.Config.Connections[name]
		line := fmt.Sprintf("%s  %s", bold.Render(name), gray.Render(conn.Driver))
		if conn.Description != "" {
			line += "  " + conn.Description
		}
		fmt.Println(line)
	}
	return nil
}
