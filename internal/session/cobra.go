// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package session

import (
	"errors"

	"github.com/spf13/cobra"
)

// PreRunLoad is a cobra PersistentPreRunE: it loads the project context
// once and stores it in the command's context for every subcommand under
// the parent.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	ctx, err := Load(cmd.Context())
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}

// RequireFromCommand returns the Context stored by PreRunLoad, or an error
// when the command runs outside a loaded project.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	if sessCtx := From(cmd.Context()); sessCtx != nil {
		return sessCtx, nil
	}
	return nil, errors.New("project context not loaded")
}
