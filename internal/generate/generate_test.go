// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package generate_test

import (
	"strings"
	"testing"
	"time"

	"github.com/snapgen/cli/internal/generate"
	"github.com/snapgen/cli/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/snapgen/cli/internal/generate/memtable"
	_ "github.com/snapgen/cli/internal/generate/sqlmockrows"
)

func employeeSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Columns: []snapshot.Column{
			{Name: "Id", Kind: snapshot.KindInteger, SourceType: "INT4"},
			{Name: "Name", Kind: snapshot.KindText, Length: 30, SourceType: "VARCHAR"},
			{Name: "HireDate", Kind: snapshot.KindDate, SourceType: "DATE"},
			{Name: "Notes", Kind: snapshot.KindText, SourceType: "TEXT"},
			{Name: "Salary", Kind: snapshot.KindInteger, SourceType: "INT4"},
		},
		Rows: [][]snapshot.Value{
			{
				snapshot.Int(1),
				snapshot.Text("Team integration"),
				snapshot.Date(time.Date(2019, 9, 16, 0, 0, 0, 0, time.UTC)),
				snapshot.Null(),
				snapshot.Int(1200),
			},
			{
				snapshot.Int(2),
				snapshot.Text("Field research"),
				snapshot.Date(time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC)),
				snapshot.Text("remote"),
				snapshot.Int(980),
			},
		},
	}
}

func options(mode generate.Mode, am generate.AppendMode, target string) generate.Options {
	opts := generate.DefaultOptions()
	opts.Mode = mode
	opts.AppendMode = am
	opts.Target = target
	opts.TableName = "Employees"
	return opts
}

func TestGenerate_Deterministic(t *testing.T) {
	snap := employeeSnapshot()
	opts := options(generate.ModeUnit, generate.AppendMultiline, "memtable")

	first, err := generate.Generate(snap, opts)
	require.NoError(t, err)
	second, err := generate.Generate(snap, opts)
	require.NoError(t, err)

	assert.Equal(t, first.Lines, second.Lines)
	assert.Equal(t, first.Warnings, second.Warnings)
}

func TestGenerate_StructureMode(t *testing.T) {
	snap := &snapshot.Snapshot{
		Columns: []snapshot.Column{
			{Name: "Id", Kind: snapshot.KindInteger},
			{Name: "Name", Kind: snapshot.KindText, Length: 30},
		},
	}

	res, err := generate.Generate(snap, options(generate.ModeStructure, generate.AppendMultiline, "memtable"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		`tbl.AddField("Id", memtable.Integer, 0)`,
		`tbl.AddField("Name", memtable.String, 30)`,
	}, res.Lines)
	assert.Equal(t, 0, res.RowsRendered)
}

func TestGenerate_StructureModeIgnoresRows(t *testing.T) {
	snap := employeeSnapshot()

	res, err := generate.Generate(snap, options(generate.ModeStructure, generate.AppendMultiline, "memtable"))
	require.NoError(t, err)

	assert.Len(t, res.Lines, len(snap.Columns))
	assert.Equal(t, 0, res.RowsRendered)
	assert.Equal(t, 0, res.RowsDropped)
}

func TestGenerate_AppendSingleline(t *testing.T) {
	snap := employeeSnapshot()

	res, err := generate.Generate(snap, options(generate.ModeAppend, generate.AppendSingleline, "memtable"))
	require.NoError(t, err)

	text := res.Text()
	assert.Contains(t, text, "tbl.Open()")
	assert.Contains(t, text,
		`tbl.AppendRecord(1, "Team integration", time.Date(2019, 9, 16, 0, 0, 0, 0, time.UTC), memtable.Null, 1200)`)
	assert.Contains(t, text,
		`tbl.AppendRecord(2, "Field research", time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC), "remote", 980)`)
	assert.Equal(t, 2, res.RowsRendered)
}

func TestGenerate_AppendMultiline_SkipsNulls(t *testing.T) {
	snap := employeeSnapshot()

	res, err := generate.Generate(snap, options(generate.ModeAppend, generate.AppendMultiline, "memtable"))
	require.NoError(t, err)

	text := res.Text()
	assert.Contains(t, text, "tbl.Append()")
	assert.Contains(t, text, `tbl.SetValue("Id", 1)`)
	assert.Contains(t, text, `tbl.SetValue("Name", "Team integration")`)
	assert.Contains(t, text, "tbl.Post()")
	// Null cells default to null on Append; the first row never touches Notes.
	assert.NotContains(t, text, `tbl.SetValue("Notes", memtable.Null)`)
	assert.Contains(t, text, `tbl.SetValue("Notes", "remote")`)
}

func TestGenerate_AppendMultiline_SqlmockKeepsNulls(t *testing.T) {
	snap := employeeSnapshot()

	res, err := generate.Generate(snap, options(generate.ModeAppend, generate.AppendMultiline, "sqlmock"))
	require.NoError(t, err)

	text := res.Text()
	assert.Contains(t, text, "rows.AddRow(")
	// AddRow is positional: a nil must hold the Notes slot in the first row.
	assert.Contains(t, text, "nil, // Notes")
	assert.Contains(t, text, `"remote", // Notes`)
}

func TestGenerate_AppendRowArray(t *testing.T) {
	snap := employeeSnapshot()

	res, err := generate.Generate(snap, options(generate.ModeAppend, generate.AppendRowArray, "sqlmock"))
	require.NoError(t, err)

	text := res.Text()
	assert.Contains(t, text, "rows.AddRows(")
	assert.Contains(t, text,
		`[]driver.Value{1, "Team integration", time.Date(2019, 9, 16, 0, 0, 0, 0, time.UTC), nil, 1200},`)
	assert.Contains(t, text, ")")
}

func TestGenerate_AppendRowArray_EmptyRowsEmitNothing(t *testing.T) {
	snap := &snapshot.Snapshot{
		Columns: []snapshot.Column{{Name: "Id", Kind: snapshot.KindInteger}},
	}

	res, err := generate.Generate(snap, options(generate.ModeAppend, generate.AppendRowArray, "memtable"))
	require.NoError(t, err)
	assert.NotContains(t, res.Text(), "AppendRows")
}

func TestGenerate_FunctionMode(t *testing.T) {
	snap := employeeSnapshot()

	res, err := generate.Generate(snap, options(generate.ModeFunction, generate.AppendSingleline, "memtable"))
	require.NoError(t, err)

	require.NotEmpty(t, res.Lines)
	assert.Equal(t, "func NewEmployees(tb testing.TB) *memtable.Table {", res.Lines[0])
	assert.Equal(t, "  tb.Helper()", res.Lines[1])
	assert.Equal(t, `  tbl := memtable.New("Employees")`, res.Lines[2])
	assert.Equal(t, "  return tbl", res.Lines[len(res.Lines)-2])
	assert.Equal(t, "}", res.Lines[len(res.Lines)-1])
}

func TestGenerate_FunctionMode_CustomFuncName(t *testing.T) {
	snap := employeeSnapshot()
	opts := options(generate.ModeFunction, generate.AppendSingleline, "memtable")
	opts.FuncName = "LoadFixture"

	res, err := generate.Generate(snap, opts)
	require.NoError(t, err)
	assert.Equal(t, "func LoadFixture(tb testing.TB) *memtable.Table {", res.Lines[0])
}

func TestGenerate_UnitMode(t *testing.T) {
	snap := employeeSnapshot()
	opts := options(generate.ModeUnit, generate.AppendSingleline, "memtable")
	opts.UnitName = "fixtures"

	res, err := generate.Generate(snap, opts)
	require.NoError(t, err)

	assert.Equal(t, "// Code generated by snapgen. DO NOT EDIT.", res.Lines[0])
	assert.Equal(t, "", res.Lines[1])
	assert.Equal(t, "package fixtures", res.Lines[2])

	text := res.Text()
	assert.Contains(t, text, `"testing"`)
	assert.Contains(t, text, `"time"`)
	assert.Contains(t, text, `"github.com/snapgen/cli/pkg/memtable"`)
}

func TestGenerate_UnitMode_NoTimeImportWithoutTemporalValues(t *testing.T) {
	snap := &snapshot.Snapshot{
		Columns: []snapshot.Column{{Name: "Id", Kind: snapshot.KindInteger}},
		Rows:    [][]snapshot.Value{{snapshot.Int(1)}},
	}

	res, err := generate.Generate(snap, options(generate.ModeUnit, generate.AppendSingleline, "memtable"))
	require.NoError(t, err)
	assert.NotContains(t, res.Text(), `"time"`)
}

func TestGenerate_UnitMode_RowArrayImportsDriver(t *testing.T) {
	snap := employeeSnapshot()

	res, err := generate.Generate(snap, options(generate.ModeUnit, generate.AppendRowArray, "sqlmock"))
	require.NoError(t, err)

	text := res.Text()
	assert.Contains(t, text, `"database/sql/driver"`)
	assert.Contains(t, text, `"github.com/DATA-DOG/go-sqlmock"`)
}

func TestGenerate_MaxRowsKeepsOrderedPrefix(t *testing.T) {
	snap := &snapshot.Snapshot{
		Columns: []snapshot.Column{{Name: "Id", Kind: snapshot.KindInteger}},
	}
	for i := 1; i <= 5; i++ {
		snap.Rows = append(snap.Rows, []snapshot.Value{snapshot.Int(int64(i))})
	}

	opts := options(generate.ModeAppend, generate.AppendSingleline, "memtable")
	opts.MaxRows = 2

	res, err := generate.Generate(snap, opts)
	require.NoError(t, err)

	text := res.Text()
	assert.Contains(t, text, "tbl.AppendRecord(1)")
	assert.Contains(t, text, "tbl.AppendRecord(2)")
	assert.NotContains(t, text, "tbl.AppendRecord(3)")
	assert.Equal(t, 2, res.RowsRendered)
	assert.Equal(t, 3, res.RowsDropped)
}

func TestGenerate_MaxRowsZeroDropsAllRows(t *testing.T) {
	snap := employeeSnapshot()
	opts := options(generate.ModeAppend, generate.AppendSingleline, "memtable")
	opts.MaxRows = 0

	res, err := generate.Generate(snap, opts)
	require.NoError(t, err)
	assert.NotContains(t, res.Text(), "AppendRecord")
	assert.Equal(t, 0, res.RowsRendered)
	assert.Equal(t, 2, res.RowsDropped)
}

func TestGenerate_EmptySnapshotAllModes(t *testing.T) {
	snap := &snapshot.Snapshot{}

	for _, mode := range []generate.Mode{
		generate.ModeStructure, generate.ModeAppend, generate.ModeFunction, generate.ModeUnit,
	} {
		t.Run(mode.String(), func(t *testing.T) {
			res, err := generate.Generate(snap, options(mode, generate.AppendMultiline, "memtable"))
			require.NoError(t, err)
			assert.Equal(t, 0, res.RowsRendered)
			assert.Empty(t, res.Warnings)
		})
	}
}

func TestGenerate_UnsupportedColumnWarnsOnce(t *testing.T) {
	snap := &snapshot.Snapshot{
		Columns: []snapshot.Column{
			{Name: "Shape", Kind: snapshot.KindUnsupported, SourceType: "GEOMETRY"},
		},
		Rows: [][]snapshot.Value{
			{snapshot.Text("POINT(1 2)")},
			{snapshot.Text("POINT(3 4)")},
		},
	}

	res, err := generate.Generate(snap, options(generate.ModeAppend, generate.AppendSingleline, "memtable"))
	require.NoError(t, err)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "Shape", res.Warnings[0].Column)
	assert.Equal(t, "GEOMETRY", res.Warnings[0].SourceType)
	// Values still render, as quoted text.
	assert.Contains(t, res.Text(), `"POINT(1 2)"`)
}

func TestGenerate_TextWrappingEmitsContinuationLines(t *testing.T) {
	snap := &snapshot.Snapshot{
		Columns: []snapshot.Column{{Name: "Body", Kind: snapshot.KindText}},
		Rows: [][]snapshot.Value{
			{snapshot.Text(strings.Repeat("the quick brown fox ", 15))},
		},
	}

	opts := options(generate.ModeAppend, generate.AppendSingleline, "memtable")
	opts.RightMargin = 60

	res, err := generate.Generate(snap, opts)
	require.NoError(t, err)

	// Lines: AddField, Open, then the wrapped AppendRecord statement.
	require.Greater(t, len(res.Lines), 3)
	assert.True(t, strings.HasSuffix(res.Lines[2], " +"), "wrapped line ends with concatenation: %q", res.Lines[2])
	// Continuation lines sit one level deeper than the statement.
	assert.True(t, strings.HasPrefix(res.Lines[3], "  "), "continuation is indented: %q", res.Lines[3])
}

func TestGenerate_SinglelineWrapCountsPrecedingValues(t *testing.T) {
	snap := &snapshot.Snapshot{
		Columns: []snapshot.Column{
			{Name: "A", Kind: snapshot.KindText},
			{Name: "B", Kind: snapshot.KindText},
		},
		Rows: [][]snapshot.Value{
			// The second literal fits the margin measured from the statement
			// prefix but not from its actual position after the first value.
			{snapshot.Text("short"), snapshot.Text("abcdefghijklmnopqr")},
		},
	}
	opts := options(generate.ModeAppend, generate.AppendSingleline, "memtable")
	opts.RightMargin = 40

	res, err := generate.Generate(snap, opts)
	require.NoError(t, err)

	// Lines: two AddField, Open, then the wrapped AppendRecord statement.
	require.Len(t, res.Lines, 5)
	assert.Equal(t, `tbl.AppendRecord("short", "abcdefghijkl" +`, res.Lines[3])
	assert.Equal(t, `  "mnopqr")`, res.Lines[4])
}

func TestHasTemporalValues_RespectsRowCap(t *testing.T) {
	snap := &snapshot.Snapshot{
		Columns: []snapshot.Column{{Name: "Born", Kind: snapshot.KindDate}},
		Rows: [][]snapshot.Value{
			{snapshot.Null()},
			{snapshot.Date(time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC))},
		},
	}

	// The only non-null temporal value sits outside a cap of one row.
	assert.False(t, generate.HasTemporalValues(snap, 1))
	assert.True(t, generate.HasTemporalValues(snap, 2))
}

func TestGenerate_UnitMode_NoTimeImportForCappedTemporalRows(t *testing.T) {
	snap := &snapshot.Snapshot{
		Columns: []snapshot.Column{
			{Name: "Id", Kind: snapshot.KindInteger},
			{Name: "Born", Kind: snapshot.KindDate},
		},
		Rows: [][]snapshot.Value{
			{snapshot.Int(1), snapshot.Null()},
			{snapshot.Int(2), snapshot.Date(time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC))},
		},
	}
	opts := options(generate.ModeUnit, generate.AppendSingleline, "memtable")
	opts.MaxRows = 1

	res, err := generate.Generate(snap, opts)
	require.NoError(t, err)
	assert.NotContains(t, res.Text(), `"time"`)
}

func TestGenerate_Errors(t *testing.T) {
	snap := employeeSnapshot()

	tests := []struct {
		name    string
		snap    *snapshot.Snapshot
		mutate  func(*generate.Options)
		wantErr error
	}{
		{"nil snapshot", nil, nil, generate.ErrInvalidConfig},
		{"unknown target", snap, func(o *generate.Options) { o.Target = "protobuf" }, generate.ErrInvalidConfig},
		{"negative max rows", snap, func(o *generate.Options) { o.MaxRows = -1 }, generate.ErrInvalidConfig},
		{"negative margin", snap, func(o *generate.Options) { o.RightMargin = -5 }, generate.ErrInvalidConfig},
		{"bad function name", snap, func(o *generate.Options) { o.FuncName = "9lives" }, generate.ErrInvalidConfig},
		{"bad unit name", snap, func(o *generate.Options) { o.Mode = generate.ModeUnit; o.UnitName = "My Pkg" }, generate.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options(generate.ModeFunction, generate.AppendMultiline, "memtable")
			if tt.mutate != nil {
				tt.mutate(&opts)
			}
			_, err := generate.Generate(tt.snap, opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerate_ShapeViolations(t *testing.T) {
	ragged := &snapshot.Snapshot{
		Columns: []snapshot.Column{{Name: "Id", Kind: snapshot.KindInteger}},
		Rows:    [][]snapshot.Value{{snapshot.Int(1), snapshot.Text("extra")}},
	}
	_, err := generate.Generate(ragged, options(generate.ModeAppend, generate.AppendSingleline, "memtable"))
	assert.ErrorIs(t, err, generate.ErrShapeViolation)

	mistyped := &snapshot.Snapshot{
		Columns: []snapshot.Column{{Name: "Id", Kind: snapshot.KindInteger}},
		Rows:    [][]snapshot.Value{{snapshot.Bool(true)}},
	}
	_, err = generate.Generate(mistyped, options(generate.ModeAppend, generate.AppendSingleline, "memtable"))
	assert.ErrorIs(t, err, generate.ErrShapeViolation)
}

func TestText_UsesDefaults(t *testing.T) {
	snap := employeeSnapshot()

	res, err := generate.Text(snap)
	require.NoError(t, err)

	text := res.Text()
	assert.Contains(t, text, "func NewDataset(tb testing.TB) *memtable.Table {")
	assert.Contains(t, text, `tbl := memtable.New("Dataset")`)
	assert.True(t, strings.HasSuffix(text, "\n"))
}

func TestAvailable_ListsRegisteredTargets(t *testing.T) {
	assert.Equal(t, []string{"memtable", "sqlmock"}, generate.Available())
}
