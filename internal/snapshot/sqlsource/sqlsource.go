// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

// Package sqlsource adapts a database/sql result set to the snapshot.Source
// contract, classifying columns from the driver's reported metadata.
package sqlsource

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/snapgen/cli/internal/snapshot"
)

// Source wraps *sql.Rows as a snapshot.Source. It performs a single forward
// scan and never repositions the cursor.
type Source struct {
	rows *sql.Rows
	cols []snapshot.Column
	cur  []snapshot.Value
	err  error
}

// New reads column metadata from rows and returns a Source over them. The
// caller keeps ownership of rows and must Close them.
func New(rows *sql.Rows) (*Source, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("column types: %w", err)
	}

	cols := make([]snapshot.Column, len(types))
	for i, ct := range types {
		length, _ := ct.Length()
		precision, scale, _ := ct.DecimalSize()
		kind := snapshot.Classify(ct.DatabaseTypeName(), length)
		cols[i] = snapshot.Column{
			Name:       ct.Name(),
			Kind:       kind,
			Length:     length,
			Precision:  precision,
			Scale:      scale,
			SourceType: ct.DatabaseTypeName(),
		}
	}
	return &Source{rows: rows, cols: cols}, nil
}

// Query runs query against db and captures the full result set.
func Query(ctx context.Context, db *sql.DB, query string) (*snapshot.Snapshot, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	src, err := New(rows)
	if err != nil {
		return nil, err
	}
	return snapshot.Capture(src)
}

// Columns implements snapshot.Source.
func (s *Source) Columns() ([]snapshot.Column, error) { return s.cols, nil }

// Next implements snapshot.Source.
func (s *Source) Next() bool {
	if s.err != nil || !s.rows.Next() {
		return false
	}

	raw := make([]any, len(s.cols))
	ptrs := make([]any, len(s.cols))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	if err := s.rows.Scan(ptrs...); err != nil {
		s.err = err
		return false
	}

	row := make([]snapshot.Value, len(s.cols))
	for i, v := range raw {
		row[i] = convert(v, s.cols[i])
	}
	s.cur = row
	return true
}

// Row implements snapshot.Source.
func (s *Source) Row() ([]snapshot.Value, error) { return s.cur, nil }

// Err implements snapshot.Source.
func (s *Source) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.rows.Err()
}

// convert coerces one scanned driver value toward its column's logical
// kind. A value that still does not fit the kind after coercion degrades to
// text, the universal representation, so capture never yields a snapshot
// the generator's shape check rejects.
func convert(raw any, col snapshot.Column) snapshot.Value {
	v := coerce(raw, col)
	if v.CompatibleWith(col.Kind) {
		return v
	}
	return snapshot.Text(rawText(raw))
}

func coerce(raw any, col snapshot.Column) snapshot.Value {
	if raw == nil {
		return snapshot.Null()
	}

	switch v := raw.(type) {
	case int64:
		switch col.Kind {
		case snapshot.KindBool:
			return snapshot.Bool(v != 0)
		case snapshot.KindFloat:
			return snapshot.Float(float64(v))
		case snapshot.KindDecimal:
			return snapshot.Decimal(strconv.FormatInt(v, 10))
		default:
			return snapshot.Int(v)
		}
	case uint64:
		if v <= 1<<63-1 {
			return coerce(int64(v), col)
		}
		return snapshot.Decimal(strconv.FormatUint(v, 10))
	case float64:
		if col.Kind == snapshot.KindDecimal {
			return snapshot.Decimal(formatDecimal(v, col.Scale))
		}
		return snapshot.Float(v)
	case bool:
		return snapshot.Bool(v)
	case time.Time:
		switch col.Kind {
		case snapshot.KindDate:
			return snapshot.Date(v)
		case snapshot.KindTime:
			return snapshot.TimeOfDay(v)
		default:
			return snapshot.Timestamp(v)
		}
	case string:
		return convertText(v, col)
	case []byte:
		if col.Kind == snapshot.KindBinary {
			return snapshot.Binary(bytes.Clone(v))
		}
		// The mysql driver reports most non-binary values as []byte.
		return convertText(string(v), col)
	default:
		return snapshot.Text(fmt.Sprint(v))
	}
}

// convertText re-types a textual driver value per the column kind, keeping
// the text as-is when parsing fails or no stronger kind applies.
func convertText(s string, col snapshot.Column) snapshot.Value {
	switch col.Kind {
	case snapshot.KindInteger:
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return snapshot.Int(n)
		}
	case snapshot.KindFloat:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return snapshot.Float(f)
		}
	case snapshot.KindDecimal:
		return snapshot.Decimal(s)
	case snapshot.KindBool:
		switch s {
		case "1", "t", "true", "TRUE":
			return snapshot.Bool(true)
		case "0", "f", "false", "FALSE":
			return snapshot.Bool(false)
		}
	case snapshot.KindDate:
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return snapshot.Date(t)
		}
	case snapshot.KindTime:
		for _, layout := range []string{"15:04:05.999999999", "15:04:05"} {
			if t, err := time.Parse(layout, s); err == nil {
				return snapshot.TimeOfDay(t)
			}
		}
	case snapshot.KindDateTime:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999", "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, s); err == nil {
				return snapshot.Timestamp(t)
			}
		}
	}
	return snapshot.Text(s)
}

// rawText renders a driver value for the text fallback.
func rawText(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

func formatDecimal(v float64, scale int64) string {
	if scale > 0 {
		return strconv.FormatFloat(v, 'f', int(scale), 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
