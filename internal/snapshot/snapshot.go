// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package snapshot

import "fmt"

// Column describes one column of a snapshot. Immutable once captured.
type Column struct {
	Name string
	Kind Kind

	// Length is the declared width for text and binary columns; zero means
	// unspecified (variable width).
	Length int64

	// Precision and Scale apply to decimal columns; zero means unspecified.
	Precision int64
	Scale     int64

	// SourceType is the driver-reported type name, kept verbatim for
	// diagnostics and unsupported-kind warnings.
	SourceType string
}

// Snapshot is a point-in-time, read-only copy of a tabular source: ordered
// columns plus ordered rows of positionally aligned values. It holds no
// reference back to the source, so everything downstream of capture is a
// pure function of the snapshot.
type Snapshot struct {
	Columns []Column
	Rows    [][]Value
}

// Empty reports whether the snapshot has no columns and no rows. An empty
// snapshot is valid input for every generator mode.
func (s *Snapshot) Empty() bool {
	return len(s.Columns) == 0 && len(s.Rows) == 0
}

// Source is an ordered, read-only, forward-only traversal over a tabular
// source. It mirrors the database/sql rows idiom: Next advances, Row yields
// the current row, Err reports the first traversal error after Next returns
// false.
type Source interface {
	Columns() ([]Column, error)
	Next() bool
	Row() ([]Value, error)
	Err() error
}

// Capture drains src into a Snapshot, visiting columns and rows in the
// source's native order. A source with zero rows or zero columns captures
// to a valid empty snapshot.
func Capture(src Source) (*Snapshot, error) {
	cols, err := src.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var rows [][]Value
	for src.Next() {
		row, err := src.Row()
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows), err)
		}
		if len(row) != len(cols) {
			return nil, fmt.Errorf("row %d has %d values, want %d", len(rows), len(row), len(cols))
		}
		rows = append(rows, row)
	}
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("scan rows: %w", err)
	}

	return &Snapshot{Columns: cols, Rows: rows}, nil
}

// SliceSource adapts in-memory columns and rows to the Source contract.
// Used by tests and by sources that already hold their data.
type SliceSource struct {
	cols []Column
	rows [][]Value
	pos  int
}

// NewSliceSource returns a Source over the given columns and rows.
func NewSliceSource(cols []Column, rows [][]Value) *SliceSource {
	return &SliceSource{cols: cols, rows: rows}
}

// Columns implements Source.
func (s *SliceSource) Columns() ([]Column, error) { return s.cols, nil }

// Next implements Source.
func (s *SliceSource) Next() bool {
	if s.pos >= len(s.rows) {
		return false
	}
	s.pos++
	return true
}

// Row implements Source.
func (s *SliceSource) Row() ([]Value, error) { return s.rows[s.pos-1], nil }

// Err implements Source.
func (s *SliceSource) Err() error { return nil }
