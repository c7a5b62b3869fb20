// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package prompts

import (
	"sort"

	"github.com/charmbracelet/huh"
	"github.com/snapgen/cli/internal/config"
)

// RunGenerateForm prompts for whatever the generate command is still
// missing: the saved connection, the query, and the target family. Fields
// already set by flags are skipped.
func RunGenerateForm(
	connection, query, target *string,
	conns map[string]config.Connection,
	targets []string,
) error {
	var fields []huh.Field

	if *connection == "" && len(conns) > 0 {
		names := make([]string, 0, len(conns))
		for name := range conns {
			names = append(names, name)
		}
		sort.Strings(names)

		options := make([]huh.Option[string], len(names))
		for i, name := range names {
			label := name
			if desc := conns[name].Description; desc != "" {
				label = name + " (" + desc + ")"
			}
			options[i] = huh.NewOption(label, name)
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Connection").
			Options(options...).
			Value(connection))
	}

	if *query == "" {
		fields = append(fields, huh.NewInput().
			Title("Query").
			Prompt(": ").
			Inline(true).
			Placeholder("SELECT * FROM customers").
			Value(query).
			Validate(requiredValidator("query")))
	}

	if *target == "" {
		options := make([]huh.Option[string], len(targets))
		for i, t := range targets {
			options[i] = huh.NewOption(t, t)
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Target").
			Options(options...).
			Value(target))
	}

	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
