// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

// Command gendocs renders the snapgen command tree as markdown, one page
// per command, for the docs site.
//
//	go run ./cmd/gendocs [output-dir]
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/snapgen/cli/internal/commands"
	"github.com/spf13/cobra/doc"
)

const defaultDir = "./docs/cli"

func main() {
	dir := defaultDir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := run(dir); err != nil {
		fmt.Fprintln(os.Stderr, "gendocs:", err)
		os.Exit(1)
	}
	fmt.Println("documentation written to", dir)
}

func run(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	root := commands.NewRootCmd()
	root.DisableAutoGenTag = true
	if err := doc.GenMarkdownTree(root, dir); err != nil {
		return err
	}

	// The docs site expects the root page at index.md.
	rootPage := filepath.Join(dir, "snapgen.md")
	if err := os.Rename(rootPage, filepath.Join(dir, "index.md")); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
