// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

// Package memsource adapts a pkg/memtable Table to the snapshot.Source
// contract, so a table built by generated code can be captured again and
// compared against the snapshot it came from.
package memsource

import (
	"fmt"
	"strconv"
	"time"

	"github.com/snapgen/cli/internal/snapshot"
	"github.com/snapgen/cli/pkg/memtable"
)

// Source traverses a memtable.Table in declaration and insertion order.
type Source struct {
	tbl  *memtable.Table
	cols []snapshot.Column
	pos  int
}

// New returns a Source over tbl. The table must not be mutated while the
// Source is in use.
func New(tbl *memtable.Table) *Source {
	fields := tbl.Fields()
	cols := make([]snapshot.Column, len(fields))
	for i, f := range fields {
		cols[i] = column(f)
	}
	return &Source{tbl: tbl, cols: cols}
}

// Columns implements snapshot.Source.
func (s *Source) Columns() ([]snapshot.Column, error) { return s.cols, nil }

// Next implements snapshot.Source.
func (s *Source) Next() bool {
	if s.pos >= s.tbl.RowCount() {
		return false
	}
	s.pos++
	return true
}

// Row implements snapshot.Source.
func (s *Source) Row() ([]snapshot.Value, error) {
	raw := s.tbl.Row(s.pos - 1)
	row := make([]snapshot.Value, len(raw))
	for i, v := range raw {
		row[i] = value(v, s.cols[i])
	}
	return row, nil
}

// Err implements snapshot.Source.
func (s *Source) Err() error { return nil }

func column(f memtable.Field) snapshot.Column {
	col := snapshot.Column{Name: f.Name, Kind: kind(f.Type), SourceType: f.Type.String()}
	switch col.Kind {
	case snapshot.KindText, snapshot.KindFixedText, snapshot.KindBinary:
		col.Length = int64(f.Size)
	case snapshot.KindDecimal:
		col.Scale = int64(f.Size)
	}
	return col
}

func kind(ft memtable.FieldType) snapshot.Kind {
	switch ft {
	case memtable.Integer:
		return snapshot.KindInteger
	case memtable.Float:
		return snapshot.KindFloat
	case memtable.Currency:
		return snapshot.KindDecimal
	case memtable.Boolean:
		return snapshot.KindBool
	case memtable.String:
		return snapshot.KindText
	case memtable.FixedString:
		return snapshot.KindFixedText
	case memtable.Date:
		return snapshot.KindDate
	case memtable.Time:
		return snapshot.KindTime
	case memtable.DateTime:
		return snapshot.KindDateTime
	case memtable.Bytes:
		return snapshot.KindBinary
	default:
		return snapshot.KindUnsupported
	}
}

func value(raw any, col snapshot.Column) snapshot.Value {
	if raw == memtable.Null {
		return snapshot.Null()
	}

	switch v := raw.(type) {
	case int64:
		return snapshot.Int(v)
	case float64:
		if col.Kind == snapshot.KindDecimal {
			scale := -1
			if col.Scale > 0 {
				scale = int(col.Scale)
			}
			return snapshot.Decimal(strconv.FormatFloat(v, 'f', scale, 64))
		}
		return snapshot.Float(v)
	case bool:
		return snapshot.Bool(v)
	case string:
		if col.Kind == snapshot.KindDecimal {
			return snapshot.Decimal(v)
		}
		return snapshot.Text(v)
	case time.Time:
		switch col.Kind {
		case snapshot.KindDate:
			return snapshot.Date(v)
		case snapshot.KindTime:
			return snapshot.TimeOfDay(v)
		default:
			return snapshot.Timestamp(v)
		}
	case []byte:
		return snapshot.Binary(v)
	default:
		return snapshot.Text(fmt.Sprint(v))
	}
}
