// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/snapgen/cli/internal/generate"
	"github.com/spf13/cobra"

	// Import targets to auto-register
	_ "github.com/snapgen/cli/internal/generate/memtable"
	_ "github.com/snapgen/cli/internal/generate/sqlmockrows"
)

func registerTargetsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List available dataset target families",
		RunE:  runTargets,
	}
	parent.AddCommand(cmd)
}

func runTargets(cmd *cobra.Command, args []string) error {
	name := lipgloss.NewStyle().Bold(true)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))

	for _, target := range generate.Available() {
		d, err := generate.Get(target)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", name.Render(d.Name), desc.Render(d.Summary))
	}
	return nil
}
