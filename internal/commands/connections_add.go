// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package commands

import (
	"fmt"

	"github.com/snapgen/cli/internal/config"
	"github.com/snapgen/cli/internal/prompts"
	"github.com/snapgen/cli/internal/session"
	"github.com/spf13/cobra"
)

type connectionsAddOptions struct {
	name        string
	driver      string
	dsn         string
	description string
}

func registerConnectionsAddCmd(parent *cobra.Command) {
	opts := &connectionsAddOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a new database connection",
		Example: `  # Interactive mode
  snapgen connections add

  # Non-interactive
  snapgen connections add -n staging --driver pgx --dsn postgres://localhost/app`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runConnectionsAdd(cmd, ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Connection name")
	cmd.Flags().StringVar(&opts.driver, "driver", "", "Database driver (pgx, mysql, sqlserver, sqlite3)")
	cmd.Flags().StringVar(&opts.dsn, "dsn", "", "Connection string")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Description")

	parent.AddCommand(cmd)
}

func runConnectionsAdd(cmd *cobra.Command, ctx *session.Context, opts *connectionsAddOptions) error {
	var name, driver, dsn, description string

	if cmd.Flags().Changed("name") {
		name = opts.name
		driver = opts.driver
		dsn = opts.dsn
		description = opts.description

		if name == "" {
			return fmt.Errorf("--name cannot be empty")
		}
		if !config.ValidDriver(driver) {
			return fmt.Errorf("--driver must be one of %v", config.Drivers)
		}
		if dsn == "" {
			return fmt.Errorf("--dsn is required when --name is specified")
		}
		if _, exists := ctx.Config.Connections[name]; exists {
			return fmt.Errorf("connection %q already exists", name)
		}
	} else {
		if err := prompts.RunConnectionsAddForm(
			&name, &driver, &dsn, &description,
			ctx.Config.Connections,
		); err != nil {
			return err
		}
	}

	if ctx.Config.Connections == nil {
		ctx.Config.Connections = make(map[string]config.Connection)
	}
	ctx.Config.Connections[name] = config.Connection{
		Driver:      driver,
		DSN:         dsn,
		Description: description,
	}

	if err := ctx.Save(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Connection", Value: name},
		{Label: "Driver", Value: driver},
	}, "Connection saved")

	return nil
}
