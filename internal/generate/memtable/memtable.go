// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

// Package memtable registers the "memtable" target: generated fixtures
// build a table on the bundled pkg/memtable runtime.
package memtable

import (
	"fmt"

	"github.com/snapgen/cli/internal/generate"
	"github.com/snapgen/cli/internal/snapshot"
)

const importPath = "github.com/snapgen/cli/pkg/memtable"

func init() {
	// Auto-register on import
	generate.Register(New())
}

// New returns the memtable dialect definition.
func New() *generate.Dialect {
	return &generate.Dialect{
		Name:    "memtable",
		Summary: "in-memory table built on the bundled memtable runtime",

		Null:       "memtable.Null",
		Var:        "tbl",
		ResultType: "*memtable.Table",

		Construct: func(table string) string {
			return fmt.Sprintf("tbl := memtable.New(%q)", table)
		},
		Field: fieldDecl,
		Open:  []string{"tbl.Open()"},

		BeginRow: "tbl.Append()",
		SetField: func(col snapshot.Column) (string, string) {
			return fmt.Sprintf("tbl.SetValue(%q, ", col.Name), ")"
		},
		// memtable.Append starts every field at Null, so null cells need no
		// statement at all.
		SkipNulls: true,
		PostRow:   "tbl.Post()",

		RecordPrefix: "tbl.AppendRecord(",
		RecordSuffix: ")",

		RowsOpen:  "tbl.AppendRows([][]any{",
		RowOpen:   "{",
		RowClose:  "},",
		RowsClose: "})",

		Signature: func(funcName string) string {
			return fmt.Sprintf("func %s(tb testing.TB) *memtable.Table {", funcName)
		},
		Prologue: []string{"tb.Helper()"},
		Return:   "return tbl",

		Imports: imports,
	}
}

func fieldDecl(col snapshot.Column) string {
	return fmt.Sprintf("tbl.AddField(%q, memtable.%s, %d)", col.Name, fieldType(col.Kind), fieldSize(col))
}

// fieldType maps logical kinds onto the runtime's FieldType constants.
func fieldType(k snapshot.Kind) string {
	switch k {
	case snapshot.KindInteger:
		return "Integer"
	case snapshot.KindFloat:
		return "Float"
	case snapshot.KindDecimal:
		return "Currency"
	case snapshot.KindBool:
		return "Boolean"
	case snapshot.KindText:
		return "String"
	case snapshot.KindFixedText:
		return "FixedString"
	case snapshot.KindBinary:
		return "Bytes"
	case snapshot.KindDate:
		return "Date"
	case snapshot.KindTime:
		return "Time"
	case snapshot.KindDateTime:
		return "DateTime"
	default:
		return "Unknown"
	}
}

// fieldSize carries the kind-relevant width metadata: declared length for
// text and binary, scale for decimals.
func fieldSize(col snapshot.Column) int64 {
	switch col.Kind {
	case snapshot.KindText, snapshot.KindFixedText, snapshot.KindBinary:
		return col.Length
	case snapshot.KindDecimal:
		return col.Scale
	default:
		return 0
	}
}

func imports(snap *snapshot.Snapshot, opts generate.Options) []string {
	paths := []string{"testing", importPath}
	if generate.HasTemporalValues(snap, opts.MaxRows) {
		paths = append(paths, "time")
	}
	return paths
}
