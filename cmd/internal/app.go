// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

// Package internal wires the command tree to the process, keeping main
// itself trivial.
package internal

import (
	"context"

	"github.com/snapgen/cli/internal/commands"
)

// Run executes the root command under ctx. Cancelling ctx aborts a running
// query mid-capture.
func Run(ctx context.Context) error {
	return commands.NewRootCmd().ExecuteContext(ctx)
}
