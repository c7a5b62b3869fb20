// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package commands

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/snapgen/cli/internal/generate"
	"github.com/snapgen/cli/internal/prompts"
	"github.com/snapgen/cli/internal/session"
	"github.com/snapgen/cli/internal/sink"
	"github.com/snapgen/cli/internal/snapshot/sqlsource"
	"github.com/spf13/cobra"

	// Import targets to auto-register
	_ "github.com/snapgen/cli/internal/generate/memtable"
	_ "github.com/snapgen/cli/internal/generate/sqlmockrows"

	// Database drivers selected by connection config
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/microsoft/go-mssqldb"
)

type generateOptions struct {
	connection string
	driver     string
	dsn        string
	query      string
	table      string

	target      string
	mode        string
	appendMode  string
	maxRows     int
	name        string
	funcName    string
	unitName    string
	rightMargin int
	indent      string

	output    string
	clipboard bool
}

func registerGenerateCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Capture a query result and generate fixture code",
		Long: fmt.Sprintf(`Capture a query result and generate Go fixture code that rebuilds it.

Available targets: %s`, strings.Join(generate.Available(), ", ")),
		Example: `  # Interactive mode (saved connections from snapgen.yaml)
  snapgen generate

  # Whole table via a saved connection, to stdout
  snapgen generate -c staging -t customers

  # Explicit DSN, full unit written to a file
  snapgen generate --driver pgx --dsn postgres://localhost/app \
    -q "SELECT * FROM orders WHERE status = 'open'" \
    --mode unit --unit fixtures -o fixtures/orders.go

  # sqlmock rows on the clipboard
  snapgen generate -c staging -t orders --target sqlmock --clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.connection, "connection", "c", "", "Saved connection name from snapgen.yaml")
	cmd.Flags().StringVar(&opts.driver, "driver", "", "Database driver (pgx, mysql, sqlserver, sqlite3)")
	cmd.Flags().StringVar(&opts.dsn, "dsn", "", "Connection string (bypasses snapgen.yaml)")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Query to snapshot")
	cmd.Flags().StringVarP(&opts.table, "table", "t", "", "Table to snapshot (shorthand for SELECT * FROM <table>)")

	cmd.Flags().StringVar(&opts.target, "target", "", fmt.Sprintf("Target family (%s)", strings.Join(generate.Available(), ", ")))
	cmd.Flags().StringVar(&opts.mode, "mode", "function", "Scope of emitted code (structure, append, function, unit)")
	cmd.Flags().StringVar(&opts.appendMode, "append-mode", "multiline", "Row rendering (multiline, singleline, rowarray)")
	cmd.Flags().IntVar(&opts.maxRows, "max-rows", generate.DefaultMaxRows, "Cap on rendered rows")
	cmd.Flags().StringVar(&opts.name, "name", "", "Table name inside the generated code (default: the queried table)")
	cmd.Flags().StringVar(&opts.funcName, "func", "", "Function name in function/unit modes")
	cmd.Flags().StringVar(&opts.unitName, "unit", "", "Package name in unit mode")
	cmd.Flags().IntVar(&opts.rightMargin, "right-margin", generate.DefaultRightMargin, "Column threshold for string wrapping (0 disables)")
	cmd.Flags().StringVar(&opts.indent, "indent", generate.DefaultIndent, "Indentation unit")

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write generated code to a file")
	cmd.Flags().BoolVar(&opts.clipboard, "clipboard", false, "Copy generated code to the clipboard")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	if opts.output != "" && opts.clipboard {
		return fmt.Errorf("--output and --clipboard are mutually exclusive")
	}
	if opts.query != "" && opts.table != "" {
		return fmt.Errorf("--query and --table are mutually exclusive")
	}
	if opts.table != "" {
		opts.query = "SELECT * FROM " + opts.table
	}

	driver, dsn, err := resolveConnection(opts)
	if err != nil {
		return err
	}

	genOpts, err := buildOptions(opts)
	if err != nil {
		return err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	snap, err := sqlsource.Query(ctx, db, opts.query)
	if err != nil {
		return err
	}

	res, err := generate.Generate(snap, genOpts)
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		prompts.PrintWarning(fmt.Sprintf("column %q (%s): %s", w.Column, w.SourceType, w.Message))
	}

	switch {
	case opts.output != "":
		if err := (sink.File{Path: opts.output}).Write(res.Lines); err != nil {
			return err
		}
		printGenerateSummary(res, "Written to "+opts.output)
	case opts.clipboard:
		if err := (sink.Clipboard{}).Write(res.Lines); err != nil {
			return err
		}
		printGenerateSummary(res, "Copied to clipboard")
	default:
		fmt.Print(res.Text())
	}

	return nil
}

// resolveConnection decides where the data comes from: an explicit
// --driver/--dsn pair wins; otherwise the saved connection from the project
// config, prompting for anything still missing.
func resolveConnection(opts *generateOptions) (driver, dsn string, err error) {
	if opts.dsn != "" {
		if opts.driver == "" {
			return "", "", fmt.Errorf("--driver is required when --dsn is specified")
		}
		if opts.query == "" {
			return "", "", fmt.Errorf("--query or --table is required when --dsn is specified")
		}
		return opts.driver, opts.dsn, nil
	}

	sessCtx, err := session.LoadProject()
	if err != nil {
		return "", "", err
	}
	if len(sessCtx.Config.Connections) == 0 {
		return "", "", errors.New("no saved connections; run 'snapgen connections add' or pass --driver/--dsn")
	}

	if err := prompts.RunGenerateForm(
		&opts.connection, &opts.query, &opts.target,
		sessCtx.Config.Connections, generate.Available(),
	); err != nil {
		return "", "", err
	}

	conn, ok := sessCtx.Config.Connections[opts.connection]
	if !ok {
		return "", "", fmt.Errorf("connection %q not found in %s", opts.connection, session.ConfigFileName)
	}
	return conn.Driver, conn.DSN, nil
}

func buildOptions(opts *generateOptions) (generate.Options, error) {
	mode, err := generate.ParseMode(opts.mode)
	if err != nil {
		return generate.Options{}, err
	}
	appendMode, err := generate.ParseAppendMode(opts.appendMode)
	if err != nil {
		return generate.Options{}, err
	}

	tableName := opts.name
	if tableName == "" {
		tableName = opts.table
	}

	return generate.Options{
		Indent:      opts.indent,
		Mode:        mode,
		AppendMode:  appendMode,
		Target:      opts.target,
		MaxRows:     opts.maxRows,
		TableName:   tableName,
		FuncName:    opts.funcName,
		UnitName:    opts.unitName,
		RightMargin: opts.rightMargin,
	}, nil
}

func printGenerateSummary(res *generate.Result, successMsg string) {
	fields := []prompts.ResultField{
		{Label: "Rows", Value: fmt.Sprintf("%d", res.RowsRendered)},
	}
	if res.RowsDropped > 0 {
		fields = append(fields, prompts.ResultField{
			Label: "Dropped", Value: fmt.Sprintf("%d (over --max-rows)", res.RowsDropped),
		})
	}
	prompts.PrintResult(fields, successMsg)
}
