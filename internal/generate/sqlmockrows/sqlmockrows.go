// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

// Package sqlmockrows registers the "sqlmock" target: generated fixtures
// build *sqlmock.Rows for DATA-DOG/go-sqlmock, ready to hand to
// ExpectQuery(...).WillReturnRows.
package sqlmockrows

import (
	"fmt"

	"github.com/snapgen/cli/internal/generate"
	"github.com/snapgen/cli/internal/snapshot"
)

const importPath = "github.com/DATA-DOG/go-sqlmock"

func init() {
	// Auto-register on import
	generate.Register(New())
}

// New returns the sqlmock dialect definition.
func New() *generate.Dialect {
	return &generate.Dialect{
		Name:    "sqlmock",
		Summary: "sqlmock.Rows fixtures for DATA-DOG/go-sqlmock",

		Null:       "nil",
		Var:        "rows",
		ResultType: "*sqlmock.Rows",

		// sqlmock declares columns as a name list; the logical kind travels
		// in a trailing comment since the target API carries no types.
		Construct: func(string) string {
			return "rows := sqlmock.NewRows([]string{"
		},
		NestedFields:   true,
		Field:          fieldDecl,
		CloseConstruct: "})",

		BeginRow:  "rows.AddRow(",
		NestedRow: true,
		SetField: func(col snapshot.Column) (string, string) {
			return "", ", // " + col.Name
		},
		// AddRow is positional; null cells must appear explicitly.
		SkipNulls: false,
		PostRow:   ")",

		RecordPrefix: "rows.AddRow(",
		RecordSuffix: ")",

		RowsOpen:  "rows.AddRows(",
		RowOpen:   "[]driver.Value{",
		RowClose:  "},",
		RowsClose: ")",

		Signature: func(funcName string) string {
			return fmt.Sprintf("func %s(tb testing.TB) *sqlmock.Rows {", funcName)
		},
		Prologue: []string{"tb.Helper()"},
		Return:   "return rows",

		Imports: imports,
	}
}

func fieldDecl(col snapshot.Column) string {
	return fmt.Sprintf("%q, // %s", col.Name, kindTag(col))
}

// kindTag renders the declaration comment: the logical kind plus whatever
// width or precision metadata the kind carries.
func kindTag(col snapshot.Column) string {
	switch {
	case col.Kind.Textual() && col.Length > 0:
		return fmt.Sprintf("%s(%d)", col.Kind, col.Length)
	case col.Kind == snapshot.KindDecimal && col.Precision > 0:
		return fmt.Sprintf("%s(%d,%d)", col.Kind, col.Precision, col.Scale)
	case col.Kind == snapshot.KindUnsupported:
		return fmt.Sprintf("unsupported: %s", col.SourceType)
	default:
		return col.Kind.String()
	}
}

func imports(snap *snapshot.Snapshot, opts generate.Options) []string {
	paths := []string{"testing", importPath}
	if opts.AppendMode == generate.AppendRowArray && len(snap.Rows) > 0 && opts.MaxRows > 0 {
		paths = append(paths, "database/sql/driver")
	}
	if generate.HasTemporalValues(snap, opts.MaxRows) {
		paths = append(paths, "time")
	}
	return paths
}
