// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

// Package generate turns a captured snapshot into source text that rebuilds
// the same table in memory. Rendering is a pure function of (snapshot,
// options): no shared state, no I/O; concurrent calls on independent inputs
// need no coordination.
package generate

import (
	"fmt"
	"strings"

	"github.com/snapgen/cli/internal/sink"
	"github.com/snapgen/cli/internal/snapshot"
)

// Result is the outcome of one generation call.
type Result struct {
	Lines    []string
	Warnings []Warning

	// RowsRendered and RowsDropped report the MaxRows cap. Truncation is
	// silent in the emitted code; callers surface it from here.
	RowsRendered int
	RowsDropped  int
}

// Text joins the lines into a single newline-terminated string.
func (r *Result) Text() string {
	if len(r.Lines) == 0 {
		return ""
	}
	return strings.Join(r.Lines, "\n") + "\n"
}

// Generate is the fully configurable entry point. It validates the options,
// checks the snapshot's shape, and renders the configured scope. The only
// recoverable degradation is an unsupported column kind, reported through
// Result.Warnings; every other failure aborts before output exists.
func Generate(snap *snapshot.Snapshot, opts Options) (*Result, error) {
	if snap == nil {
		return nil, fmt.Errorf("%w: nil snapshot", ErrInvalidConfig)
	}

	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	d, err := Get(opts.Target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := validateShape(snap); err != nil {
		return nil, err
	}

	r := newRenderer(snap, d, opts)
	switch opts.Mode {
	case ModeStructure:
		r.renderStructure()
	case ModeAppend:
		r.renderAppend()
	case ModeFunction:
		r.renderFunction()
	case ModeUnit:
		r.renderUnit()
	}

	// Structure mode renders no rows, so the MaxRows cap does not apply and
	// nothing counts as dropped.
	rendered, dropped := 0, 0
	if opts.Mode != ModeStructure {
		rendered = len(snap.Rows)
		if rendered > opts.MaxRows {
			rendered = opts.MaxRows
		}
		dropped = len(snap.Rows) - rendered
	}

	return &Result{
		Lines:        r.w.lines,
		Warnings:     r.warns,
		RowsRendered: rendered,
		RowsDropped:  dropped,
	}, nil
}

// Text renders with the default configuration and returns the generated
// source as one string.
func Text(snap *snapshot.Snapshot) (*Result, error) {
	return Generate(snap, DefaultOptions())
}

// ToFile renders with the default configuration and writes the result to
// path, all-or-nothing.
func ToFile(snap *snapshot.Snapshot, path string) (*Result, error) {
	res, err := Generate(snap, DefaultOptions())
	if err != nil {
		return nil, err
	}
	if err := (sink.File{Path: path}).Write(res.Lines); err != nil {
		return nil, err
	}
	return res, nil
}

// ToClipboard renders with the default configuration and copies the result
// to the system clipboard.
func ToClipboard(snap *snapshot.Snapshot) (*Result, error) {
	res, err := Generate(snap, DefaultOptions())
	if err != nil {
		return nil, err
	}
	if err := (sink.Clipboard{}).Write(res.Lines); err != nil {
		return nil, err
	}
	return res, nil
}

// HasTemporalValues reports whether any non-null date, time or date-time
// value sits inside the capped row range. Target dialects use it to decide
// whether a generated unit needs the time import.
func HasTemporalValues(snap *snapshot.Snapshot, maxRows int) bool {
	rows := snap.Rows
	if len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	for _, row := range rows {
		for _, v := range row {
			switch v.Tag() {
			case snapshot.TagDate, snapshot.TagTime, snapshot.TagDateTime:
				return true
			}
		}
	}
	return false
}

// validateShape enforces the snapshot invariant: every row exactly as wide
// as the column list, every tag positionally kind-compatible.
func validateShape(snap *snapshot.Snapshot) error {
	for i, row := range snap.Rows {
		if len(row) != len(snap.Columns) {
			return fmt.Errorf("%w: row %d has %d values, want %d",
				ErrShapeViolation, i, len(row), len(snap.Columns))
		}
		for j, v := range row {
			if !v.CompatibleWith(snap.Columns[j].Kind) {
				return fmt.Errorf("%w: row %d column %q holds a value incompatible with kind %s",
					ErrShapeViolation, i, snap.Columns[j].Name, snap.Columns[j].Kind)
			}
		}
	}
	return nil
}
