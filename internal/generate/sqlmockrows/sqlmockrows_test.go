// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package sqlmockrows

import (
	"testing"

	"github.com/snapgen/cli/internal/generate"
	"github.com/snapgen/cli/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistersOnImport(t *testing.T) {
	d, err := generate.Get("sqlmock")
	require.NoError(t, err)
	assert.Equal(t, "sqlmock", d.Name)
	assert.Equal(t, "nil", d.Null)
	assert.Equal(t, "*sqlmock.Rows", d.ResultType)
	assert.False(t, d.SkipNulls)
	assert.True(t, d.NestedFields)
}

func TestFieldDecl(t *testing.T) {
	tests := []struct {
		name string
		col  snapshot.Column
		want string
	}{
		{"integer", snapshot.Column{Name: "Id", Kind: snapshot.KindInteger},
			`"Id", // integer`},
		{"text with length", snapshot.Column{Name: "Name", Kind: snapshot.KindText, Length: 30},
			`"Name", // text(30)`},
		{"text without length", snapshot.Column{Name: "Body", Kind: snapshot.KindText},
			`"Body", // text`},
		{"decimal with precision", snapshot.Column{Name: "Price", Kind: snapshot.KindDecimal, Precision: 10, Scale: 2},
			`"Price", // decimal(10,2)`},
		{"unsupported names source type", snapshot.Column{Name: "Shape", Kind: snapshot.KindUnsupported, SourceType: "GEOMETRY"},
			`"Shape", // unsupported: GEOMETRY`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldDecl(tt.col))
		})
	}
}

func TestImports(t *testing.T) {
	snap := &snapshot.Snapshot{
		Columns: []snapshot.Column{{Name: "Id", Kind: snapshot.KindInteger}},
		Rows:    [][]snapshot.Value{{snapshot.Int(1)}},
	}

	opts := generate.DefaultOptions()
	opts.Target = "sqlmock"
	assert.Equal(t, []string{"testing", importPath}, imports(snap, opts))

	// driver.Value literals only exist in row-array output.
	opts.AppendMode = generate.AppendRowArray
	assert.Contains(t, imports(snap, opts), "database/sql/driver")

	snap.Rows = nil
	assert.NotContains(t, imports(snap, opts), "database/sql/driver")
}
