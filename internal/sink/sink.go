// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

// Package sink delivers generated lines to their destination. Every sink is
// all-or-nothing: a failed write leaves no partial output behind.
package sink

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrSinkFailure marks an unwritable destination. Fatal to the current
// call; no retries.
var ErrSinkFailure = errors.New("sink write failed")

// Sink accepts an ordered sequence of text lines.
type Sink interface {
	Write(lines []string) error
}

// Buffer collects lines in memory. Its Write never fails.
type Buffer struct {
	Lines []string
}

// Write implements Sink.
func (b *Buffer) Write(lines []string) error {
	b.Lines = append(b.Lines, lines...)
	return nil
}

// String joins the buffered lines, newline-terminated.
func (b *Buffer) String() string { return join(b.Lines) }

// File writes the lines to Path with overwrite semantics. The content goes
// to a temporary file in the same directory first and is renamed into
// place, so a failure mid-write never leaves a truncated destination.
type File struct {
	Path string
}

// Write implements Sink.
func (f File) Write(lines []string) error {
	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, ".snapgen-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSinkFailure, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(join(lines)); err != nil {
		tmp.Close()        //nolint:errcheck
		os.Remove(tmpPath) //nolint:errcheck
		return fmt.Errorf("%w: %v", ErrSinkFailure, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath) //nolint:errcheck
		return fmt.Errorf("%w: %v", ErrSinkFailure, err)
	}
	if err := os.Rename(tmpPath, f.Path); err != nil {
		os.Remove(tmpPath) //nolint:errcheck
		return fmt.Errorf("%w: %v", ErrSinkFailure, err)
	}
	return nil
}

// Clipboard writes the lines to the system clipboard.
type Clipboard struct{}

// Write implements Sink.
func (Clipboard) Write(lines []string) error {
	if err := clipboard.WriteAll(join(lines)); err != nil {
		return fmt.Errorf("%w: %v", ErrSinkFailure, err)
	}
	return nil
}

func join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
